package frame

import (
	"sort"

	"github.com/kgocks/bamboo/pkg/errors"
)

// GroupBy is a partition of row positions keyed by the values of one
// series. Group keys iterate in ascending order and positions within a
// group keep their original ascending row order, so operations built on
// a GroupBy are deterministic.
type GroupBy struct {
	key    *Series
	frame  *Frame
	keys   []any
	groups map[any][]int
}

func newGroupBy(key *Series, f *Frame) *GroupBy {
	groups := make(map[any][]int)
	var keys []any
	for i := 0; i < key.Len(); i++ {
		v := key.Value(i)
		if _, ok := groups[v]; !ok {
			keys = append(keys, v)
		}
		groups[v] = append(groups[v], i)
	}
	sort.Slice(keys, func(i, j int) bool {
		return lessValue(keys[i], keys[j])
	})
	return &GroupBy{key: key, frame: f, keys: keys, groups: groups}
}

// Key returns the series the partition was built from.
func (g *GroupBy) Key() *Series { return g.key }

// Keys returns the distinct group keys in ascending order.
func (g *GroupBy) Keys() []any {
	out := make([]any, len(g.keys))
	copy(out, g.keys)
	return out
}

// NumGroups returns the number of distinct groups.
func (g *GroupBy) NumGroups() int { return len(g.keys) }

// Positions returns the row positions of the given group in ascending
// order, and whether the group exists.
func (g *GroupBy) Positions(key any) ([]int, bool) {
	positions, ok := g.groups[key]
	if !ok {
		return nil, false
	}
	out := make([]int, len(positions))
	copy(out, positions)
	return out, true
}

// Count returns the number of rows in the given group, 0 if absent.
func (g *GroupBy) Count(key any) int {
	return len(g.groups[key])
}

// Counts returns the per-group row counts keyed by group value.
func (g *GroupBy) Counts() map[any]int {
	out := make(map[any]int, len(g.keys))
	for k, positions := range g.groups {
		out[k] = len(positions)
	}
	return out
}

// MinCount returns the smallest group size, 0 when there are no groups.
func (g *GroupBy) MinCount() int {
	min := 0
	for i, k := range g.keys {
		n := len(g.groups[k])
		if i == 0 || n < min {
			min = n
		}
	}
	return min
}

// Get materializes the subframe for one group. The partition must have
// been built from a frame.
func (g *GroupBy) Get(key any) (*Frame, error) {
	if g.frame == nil {
		return nil, errors.NewValueError("GroupBy.Get", "partition has no source frame")
	}
	positions, ok := g.groups[key]
	if !ok {
		return nil, errors.NewKeyError("GroupBy.Get", "label", key)
	}
	return g.frame.TakeRows(positions)
}

// Frames materializes every group's subframe in ascending key order.
// The partition must have been built from a frame.
func (g *GroupBy) Frames() ([]*Frame, error) {
	if g.frame == nil {
		return nil, errors.NewValueError("GroupBy.Frames", "partition has no source frame")
	}
	out := make([]*Frame, 0, len(g.keys))
	for _, k := range g.keys {
		sub, err := g.frame.TakeRows(g.groups[k])
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, nil
}

// Each calls fn for every group in ascending key order with the group's
// materialized subframe. The partition must have been built from a frame.
func (g *GroupBy) Each(fn func(key any, sub *Frame) error) error {
	if g.frame == nil {
		return errors.NewValueError("GroupBy.Each", "partition has no source frame")
	}
	for _, k := range g.keys {
		sub, err := g.frame.TakeRows(g.groups[k])
		if err != nil {
			return err
		}
		if err := fn(k, sub); err != nil {
			return err
		}
	}
	return nil
}
