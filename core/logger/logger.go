package logger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/josephlewis42/shtree/core/shell"
)

// LogRecorder is a callback that stores events in an external datastore.
type LogRecorder func(le *LogEntry) error

// LogEntry is a single line of the event log.
type LogEntry struct {
	TimestampMicros int64       `json:"timestamp_micros"`
	SessionID       string      `json:"session_id,omitempty"`
	Parse           *ParseEvent `json:"parse,omitempty"`
}

// ParseEvent describes the outcome of parsing one command line.
type ParseEvent struct {
	Input     string   `json:"input"`
	Commands  []string `json:"commands,omitempty"`
	Operators int      `json:"operators"`
	Depth     int      `json:"depth"`
	ErrorKind string   `json:"error_kind,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// Failed reports whether the line was rejected.
func (e *ParseEvent) Failed() bool {
	return e.Error != ""
}

// NewParseEvent summarizes the result of shell.Parse for input.
func NewParseEvent(input string, n shell.Node, err error) *ParseEvent {
	event := &ParseEvent{Input: input}
	if err != nil {
		event.ErrorKind = ErrorKind(err)
		event.Error = err.Error()
		return event
	}

	for _, p := range shell.Programs(n) {
		event.Commands = append(event.Commands, p.Name())
	}
	event.Operators = shell.Operators(n)
	event.Depth = shell.Depth(n)
	return event
}

// ErrorKind names the kind of a lex or parse error, or "unknown".
func ErrorKind(err error) string {
	var lexErr *shell.LexError
	var parseErr *shell.ParseError
	switch {
	case errors.As(err, &lexErr):
		return lexErr.Kind.String()
	case errors.As(err, &parseErr):
		return parseErr.Kind.String()
	default:
		return "unknown"
	}
}

// Logger captures parse events.
type Logger struct {
	Record LogRecorder

	// Now is used to timestamp entries, time.Now if nil.
	Now func() time.Time
}

// NewJsonLinesLogRecorder creates a Logger that exports logs in newline
// delimited JSON object format.
func NewJsonLinesLogRecorder(w io.Writer) *Logger {
	return &Logger{
		Record: func(le *LogEntry) error {
			entry, err := json.Marshal(le)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(entry))
			return err
		},
	}
}

// NewDiscardLogger creates a Logger that drops every entry.
func NewDiscardLogger() *Logger {
	return &Logger{
		Record: func(*LogEntry) error { return nil },
	}
}

func (l *Logger) now() time.Time {
	if l.Now == nil {
		return time.Now()
	}
	return l.Now()
}

func (l *Logger) recordParse(sessionID string, event *ParseEvent) error {
	le := &LogEntry{}
	le.TimestampMicros = l.now().UnixMicro()
	le.SessionID = sessionID
	le.Parse = event

	return l.Record(le)
}

// NewSession creates a logger with a fresh session ID attached.
func (l *Logger) NewSession() *SessionLogger {
	return &SessionLogger{Logger: l, sessionID: uuid.NewString()}
}

// Sessionless creates a logger with no session ID.
func (l *Logger) Sessionless() *SessionLogger {
	return &SessionLogger{Logger: l, sessionID: ""}
}

// SessionLogger logs messages with a shared session ID.
type SessionLogger struct {
	*Logger
	sessionID string
}

// SessionID returns the ID attached to every entry.
func (l *SessionLogger) SessionID() string {
	return l.sessionID
}

// RecordParse logs the result of parsing input.
func (l *SessionLogger) RecordParse(input string, n shell.Node, err error) error {
	return l.recordParse(l.sessionID, NewParseEvent(input, n, err))
}
