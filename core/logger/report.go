package logger

import (
	"encoding/json"
	"io"
	"sort"
)

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var logEntry LogEntry
		if err := decoder.Decode(&logEntry); err != nil {
			return err
		}

		handler(&logEntry)
	}
	return nil
}

// Report holds statistics about the logged events.
type Report struct {
	LogEntries     int        `json:"log_entries"`
	InvalidEntries int        `json:"invalid_entries,omitempty"`
	Sessions       StrCounter `json:"sessions"`

	Parse ParseReport `json:"parse_report"`
}

func (r *Report) Update(le *LogEntry) {
	r.LogEntries++

	if le.Parse == nil {
		r.InvalidEntries++
		return
	}

	if le.SessionID != "" {
		r.Sessions.Increment(le.SessionID)
	}
	r.Parse.update(le.Parse)
}

// ParseReport aggregates parse events.
type ParseReport struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	MaxDepth  int `json:"max_depth"`

	// Name of each command seen and its count.
	CommandNames StrCounter `json:"command_names"`
	// Failures grouped by kind and message.
	Errors *PathCounter `json:"errors"`
}

func (r *ParseReport) update(event *ParseEvent) {
	if r.Errors == nil {
		r.Errors = NewPathCounter("kind", "error")
	}

	if event.Failed() {
		r.Failed++
		r.Errors.Increment(event.ErrorKind, event.Error)
		return
	}

	r.Succeeded++
	if event.Depth > r.MaxDepth {
		r.MaxDepth = event.Depth
	}
	for _, name := range event.Commands {
		r.CommandNames.Increment(name)
	}
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// Count returns the number of times key was seen.
func (s *StrCounter) Count(key string) int {
	return s.internal[key]
}

// MarshalJSON implements a custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	if s.internal == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.internal)
}

func NewPathCounter(cols ...string) *PathCounter {
	return &PathCounter{
		cols:     cols,
		internal: make(map[string]int),
	}
}

// PathCounter counts tuples of strings seen.
type PathCounter struct {
	cols     []string
	internal map[string]int
}

// Increment adds one to the given key.
func (ctr *PathCounter) Increment(toAdd ...string) {
	if len(toAdd) != len(ctr.cols) {
		panic("wrong number of columns to add")
	}

	ctr.internal[toKey(toAdd...)]++
}

// Count returns the number of times the tuple was seen.
func (ctr *PathCounter) Count(vals ...string) int {
	return ctr.internal[toKey(vals...)]
}

// MarshalJSON implements a custom JSON marshaler.
func (ctr *PathCounter) MarshalJSON() ([]byte, error) {
	type Count struct {
		Count  int               `json:"count"`
		Fields map[string]string `json:"event"`
		Path   string            `json:"-"`
	}

	out := []Count{}
	for k, v := range ctr.internal {
		count := Count{
			Count:  v,
			Path:   k,
			Fields: make(map[string]string),
		}

		splitPath := fromKey(k)
		for colNum, colVal := range ctr.cols {
			count.Fields[colVal] = splitPath[colNum]
		}

		out = append(out, count)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Path < out[j].Path
		}
		return out[i].Count > out[j].Count
	})

	return json.Marshal(out)
}

func toKey(vals ...string) string {
	key, _ := json.Marshal(vals)
	return string(key)
}

func fromKey(key string) (out []string) {
	json.Unmarshal([]byte(key), &out)
	return
}
