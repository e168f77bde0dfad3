// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package diag provides the leveled diagnostic sink the scoring engines
// report skip and fallback conditions through. Engines call the sink for
// visibility only; no calculation depends on it.
package diag

import "log/slog"

// Sink accepts leveled diagnostic messages with slog-style alternating
// key/value arguments.
type Sink interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// slogSink adapts a *slog.Logger to the Sink interface.
type slogSink struct {
	l *slog.Logger
}

// New returns a Sink backed by the given structured logger.
func New(l *slog.Logger) Sink {
	return &slogSink{l: l}
}

// Default returns a Sink backed by the process-wide default slog logger.
func Default() Sink {
	return &slogSink{l: slog.Default()}
}

func (s *slogSink) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *slogSink) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *slogSink) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *slogSink) Error(msg string, args ...any) { s.l.Error(msg, args...) }

// Nop is a Sink that discards everything.
type Nop struct{}

func (Nop) Debug(string, ...any) {}
func (Nop) Info(string, ...any)  {}
func (Nop) Warn(string, ...any)  {}
func (Nop) Error(string, ...any) {}

// Record is one message captured by a Recorder.
type Record struct {
	Level   slog.Level
	Message string
	Args    []any
}

// Recorder is a Sink that captures messages for test assertions.
// Scoring runs are single-threaded, so no locking is needed.
type Recorder struct {
	Records []Record
}

func (r *Recorder) Debug(msg string, args ...any) { r.append(slog.LevelDebug, msg, args) }
func (r *Recorder) Info(msg string, args ...any)  { r.append(slog.LevelInfo, msg, args) }
func (r *Recorder) Warn(msg string, args ...any)  { r.append(slog.LevelWarn, msg, args) }
func (r *Recorder) Error(msg string, args ...any) { r.append(slog.LevelError, msg, args) }

func (r *Recorder) append(level slog.Level, msg string, args []any) {
	r.Records = append(r.Records, Record{Level: level, Message: msg, Args: args})
}

// MessagesAt returns the captured messages at the given level, in order.
func (r *Recorder) MessagesAt(level slog.Level) []string {
	var out []string
	for _, rec := range r.Records {
		if rec.Level == level {
			out = append(out, rec.Message)
		}
	}
	return out
}
