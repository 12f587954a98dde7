package frame

import (
	"sort"

	"github.com/kgocks/bamboo/pkg/errors"
)

// ExtensionFunc is a named frame operation that can be registered on a
// Registry and invoked by name through a Dispatcher.
type ExtensionFunc func(f *Frame, args ...any) (any, error)

// Registry is an explicit table of named frame operations. It is the
// extension point for user-defined operations: registered names take
// precedence over the built-in operation table during dispatch.
type Registry struct {
	funcs map[string]ExtensionFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]ExtensionFunc)}
}

// Register adds a named operation. Names must be non-empty and unique.
func (r *Registry) Register(name string, fn ExtensionFunc) error {
	if name == "" {
		return errors.NewValidationError("name", "operation name must be non-empty", name)
	}
	if fn == nil {
		return errors.NewValidationError("fn", "operation func must be non-nil", name)
	}
	if _, dup := r.funcs[name]; dup {
		return errors.NewValidationError("name", "operation already registered", name)
	}
	r.funcs[name] = fn
	return nil
}

// Lookup returns the operation registered under name.
func (r *Registry) Lookup(name string) (ExtensionFunc, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Names returns the registered operation names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Dispatcher resolves operation names against a registry first and the
// built-in operation table second, then invokes the match. Unknown
// names produce a KeyError; there is no dynamic fallback beyond the
// two tables.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher creates a dispatcher over the given registry. A nil
// registry leaves only the built-in operations reachable.
func NewDispatcher(registry *Registry) *Dispatcher {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Dispatcher{registry: registry}
}

// Invoke runs the named operation against a frame.
func (d *Dispatcher) Invoke(f *Frame, name string, args ...any) (any, error) {
	fn, err := d.resolve(name)
	if err != nil {
		return nil, err
	}
	return fn(f, args...)
}

// InvokeGrouped runs the named operation against a grouped frame. Group
// built-ins ("size", "keys", "min_count") answer directly; any other
// name resolves to a frame operation applied per group, returning a
// map keyed by group value.
func (d *Dispatcher) InvokeGrouped(g *GroupBy, name string, args ...any) (any, error) {
	if fn, ok := groupOps[name]; ok {
		return fn(g)
	}
	fn, err := d.resolve(name)
	if err != nil {
		return nil, err
	}
	out := make(map[any]any, g.NumGroups())
	applyErr := g.Each(func(key any, sub *Frame) error {
		result, err := fn(sub, args...)
		if err != nil {
			return errors.Wrapf(err, "group %v", key)
		}
		out[key] = result
		return nil
	})
	if applyErr != nil {
		return nil, applyErr
	}
	return out, nil
}

// Ops returns every reachable operation name in sorted order.
func (d *Dispatcher) Ops() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, name := range d.registry.Names() {
		seen[name] = struct{}{}
		out = append(out, name)
	}
	for name := range builtinOps {
		if _, dup := seen[name]; !dup {
			out = append(out, name)
		}
	}
	for name := range groupOps {
		if _, dup := seen[name]; !dup {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func (d *Dispatcher) resolve(name string) (ExtensionFunc, error) {
	if fn, ok := d.registry.Lookup(name); ok {
		return fn, nil
	}
	if fn, ok := builtinOps[name]; ok {
		return fn, nil
	}
	return nil, errors.NewKeyError("Dispatcher.Invoke", "operation", name)
}

// builtinOps is the fixed table of frame operations reachable by name.
var builtinOps = map[string]ExtensionFunc{
	"shape": func(f *Frame, args ...any) (any, error) {
		return []int{f.NumRows(), f.NumCols()}, nil
	},
	"columns": func(f *Frame, args ...any) (any, error) {
		return f.Columns(), nil
	},
	"dtypes": func(f *Frame, args ...any) (any, error) {
		dtypes := f.DTypes()
		out := make(map[string]string, len(dtypes))
		for i, name := range f.Columns() {
			out[name] = dtypes[i].String()
		}
		return out, nil
	},
	"index": func(f *Frame, args ...any) (any, error) {
		return f.Index(), nil
	},
	"head": func(f *Frame, args ...any) (any, error) {
		n, err := intArg("head", args, 0, 5)
		if err != nil {
			return nil, err
		}
		return f.Head(n)
	},
	"numeric": func(f *Frame, args ...any) (any, error) {
		return f.SelectNumeric()
	},
	"select": func(f *Frame, args ...any) (any, error) {
		names, err := stringArgs("select", args)
		if err != nil {
			return nil, err
		}
		return f.Select(names)
	},
	"drop": func(f *Frame, args ...any) (any, error) {
		names, err := stringArgs("drop", args)
		if err != nil {
			return nil, err
		}
		return f.Drop(names...)
	},
}

// groupOps is the fixed table of grouped operations.
var groupOps = map[string]func(g *GroupBy) (any, error){
	"size": func(g *GroupBy) (any, error) {
		return g.Counts(), nil
	},
	"keys": func(g *GroupBy) (any, error) {
		return g.Keys(), nil
	},
	"min_count": func(g *GroupBy) (any, error) {
		return g.MinCount(), nil
	},
}

func intArg(op string, args []any, i, fallback int) (int, error) {
	if i >= len(args) {
		return fallback, nil
	}
	n, ok := args[i].(int)
	if !ok {
		return 0, errors.NewValidationError("args",
			"expected int argument for operation "+op, args[i])
	}
	return n, nil
}

func stringArgs(op string, args []any) ([]string, error) {
	out := make([]string, len(args))
	for i, a := range args {
		s, ok := a.(string)
		if !ok {
			return nil, errors.NewValidationError("args",
				"expected string arguments for operation "+op, a)
		}
		out[i] = s
	}
	return out, nil
}
