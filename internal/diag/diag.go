// Package diag collects build diagnostics instead of writing them to
// process-global state. Every component reports through a Sink, so callers
// (and tests) can inspect exactly what a build surfaced.
package diag

import (
	"fmt"
	"io"
)

type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Message is one diagnostic entry, in emission order.
type Message struct {
	Level Level
	Text  string
}

// Sink accumulates messages and mirrors them to a writer as they arrive.
type Sink struct {
	w        io.Writer
	messages []Message
}

// NewSink creates a sink mirroring to w. A nil writer discards the mirror
// output; the messages are still collected.
func NewSink(w io.Writer) *Sink {
	if w == nil {
		w = io.Discard
	}
	return &Sink{w: w}
}

func (s *Sink) Infof(format string, args ...any) {
	s.emit(LevelInfo, fmt.Sprintf(format, args...))
}

func (s *Sink) Warnf(format string, args ...any) {
	s.emit(LevelWarn, fmt.Sprintf(format, args...))
}

func (s *Sink) Errorf(format string, args ...any) {
	s.emit(LevelError, fmt.Sprintf(format, args...))
}

func (s *Sink) emit(level Level, text string) {
	s.messages = append(s.messages, Message{Level: level, Text: text})
	if level == LevelInfo {
		fmt.Fprintln(s.w, text)
		return
	}
	fmt.Fprintf(s.w, "%s: %s\n", level, text)
}

// Messages returns everything emitted so far, in order.
func (s *Sink) Messages() []Message {
	return s.messages
}

// HasErrors reports whether any LevelError message was emitted.
func (s *Sink) HasErrors() bool {
	for _, m := range s.messages {
		if m.Level == LevelError {
			return true
		}
	}
	return false
}
