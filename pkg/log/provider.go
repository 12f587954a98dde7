// Package log provides the default slog-backed logger provider.
//
// This file contains the package-level entry points (GetLogger,
// GetLoggerWithName) used throughout bamboo, together with a provider
// implementation that delegates to Go's log/slog default logger. The
// provider can be swapped out for testing via SetProvider.

package log

import (
	"context"
	"log/slog"
	"sync"
)

// slogAdapter adapts *slog.Logger to the Logger interface.
type slogAdapter struct {
	logger *slog.Logger
	level  *slog.LevelVar
}

// Debug implements Logger.Debug.
func (s *slogAdapter) Debug(msg string, fields ...any) {
	s.logger.Debug(msg, normalizeFields(fields)...)
}

// Info implements Logger.Info.
func (s *slogAdapter) Info(msg string, fields ...any) {
	s.logger.Info(msg, normalizeFields(fields)...)
}

// Warn implements Logger.Warn.
func (s *slogAdapter) Warn(msg string, fields ...any) {
	s.logger.Warn(msg, normalizeFields(fields)...)
}

// Error implements Logger.Error.
func (s *slogAdapter) Error(msg string, fields ...any) {
	s.logger.Error(msg, normalizeFields(fields)...)
}

// With implements Logger.With.
func (s *slogAdapter) With(fields ...any) Logger {
	return &slogAdapter{
		logger: s.logger.With(normalizeFields(fields)...),
		level:  s.level,
	}
}

// Enabled implements Logger.Enabled.
func (s *slogAdapter) Enabled(ctx context.Context, level Level) bool {
	return s.logger.Enabled(ctx, slog.Level(level))
}

// normalizeFields routes bare error values through ErrAttr so that
// ErrFmtHandler can surface their stack traces.
func normalizeFields(fields []any) []any {
	out := make([]any, 0, len(fields))
	for _, f := range fields {
		if err, ok := f.(error); ok {
			out = append(out, ErrAttr(err))
			continue
		}
		out = append(out, f)
	}
	return out
}

// slogProvider is the default LoggerProvider backed by slog.Default().
type slogProvider struct {
	level *slog.LevelVar
}

func newSlogProvider() *slogProvider {
	return &slogProvider{level: &slog.LevelVar{}}
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *slogProvider) GetLogger() Logger {
	return &slogAdapter{logger: slog.Default(), level: p.level}
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName.
// The name is attached under ComponentKey so every record from a named
// logger identifies the package that produced it.
func (p *slogProvider) GetLoggerWithName(name string) Logger {
	return &slogAdapter{
		logger: slog.Default().With(ComponentKey, name),
		level:  p.level,
	}
}

// SetLevel implements LoggerProvider.SetLevel.
func (p *slogProvider) SetLevel(level Level) {
	p.level.Set(slog.Level(level))
}

var (
	providerMu      sync.RWMutex
	currentProvider LoggerProvider = newSlogProvider()
)

// SetProvider replaces the package-level logger provider.
// Pass a TestLoggerProvider in tests to capture log output.
func SetProvider(p LoggerProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	currentProvider = p
}

// GetLogger returns the default logger from the current provider.
func GetLogger() Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return currentProvider.GetLogger()
}

// GetLoggerWithName returns a named logger from the current provider.
// Use the package name as the component identifier:
//
//	logger := log.GetLoggerWithName("modeling")
func GetLoggerWithName(name string) Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return currentProvider.GetLoggerWithName(name)
}

// SetLevel sets the minimum level on the current provider.
func SetLevel(level Level) {
	providerMu.RLock()
	defer providerMu.RUnlock()
	currentProvider.SetLevel(level)
}
