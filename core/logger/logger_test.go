package logger

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/josephlewis42/shtree/core/shell"
	"github.com/stretchr/testify/assert"
)

func TestNewParseEvent(t *testing.T) {
	cases := map[string]struct {
		input string
		want  ParseEvent
	}{
		"pipeline": {
			input: "cat /dev/urandom | tr -dc A-Za-z0-9 | head -c 32",
			want: ParseEvent{
				Input:     "cat /dev/urandom | tr -dc A-Za-z0-9 | head -c 32",
				Commands:  []string{"cat", "tr", "head"},
				Operators: 2,
				Depth:     2,
			},
		},
		"empty": {
			input: "()",
			want:  ParseEvent{Input: "()"},
		},
		"parse error": {
			input: "a |",
			want: ParseEvent{
				Input:     "a |",
				ErrorKind: "stack underflow",
				Error:     `2: syntax error near "|": missing operand`,
			},
		},
		"lex error": {
			input: "echo 'x",
			want: ParseEvent{
				Input:     "echo 'x",
				ErrorKind: "unterminated quote",
				Error:     "5: unterminated quote",
			},
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			n, err := shell.Parse(tc.input)
			got := NewParseEvent(tc.input, n, err)
			assert.Equal(t, &tc.want, got)
			assert.Equal(t, tc.want.Error != "", got.Failed())
		})
	}
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "unknown", ErrorKind(errors.New("boom")))
	assert.Equal(t, "unclosed paren", ErrorKind(&shell.ParseError{Kind: shell.UnclosedParen}))
}

func TestJsonLinesRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewJsonLinesLogRecorder(buf)
	l.Now = func() time.Time { return time.UnixMicro(1234) }

	session := l.NewSession()
	assert.NotEmpty(t, session.SessionID())

	for _, line := range []string{"a | b", "a |", "ls"} {
		n, err := shell.Parse(line)
		assert.Nil(t, session.RecordParse(line, n, err))
	}
	assert.Nil(t, l.Sessionless().RecordParse("(a)", shell.MustParse("(a)"), nil))

	var entries []*LogEntry
	assert.Nil(t, ReadJSONLinesLog(buf, func(le *LogEntry) {
		entries = append(entries, le)
	}))

	if assert.Len(t, entries, 4) {
		assert.Equal(t, int64(1234), entries[0].TimestampMicros)
		assert.Equal(t, session.SessionID(), entries[0].SessionID)
		assert.Equal(t, "a | b", entries[0].Parse.Input)
		assert.True(t, entries[1].Parse.Failed())
		assert.Equal(t, "", entries[3].SessionID)
	}
}

func TestNewDiscardLogger(t *testing.T) {
	assert.Nil(t, NewDiscardLogger().NewSession().RecordParse("a", shell.MustParse("a"), nil))
}
