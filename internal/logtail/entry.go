package logtail

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Entry is one parsed log event.
type Entry struct {
	Time      time.Time
	Level     string
	Component string
	Message   string
	Fields    map[string]string
	Raw       bool
}

// Reserved keys are shown in fixed columns instead of Fields.
var reserved = map[string]struct{}{
	"time":      {},
	"level":     {},
	"component": {},
	"message":   {},
	"session":   {},
}

// Parse decodes a single line.
func Parse(line string) Entry {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return Entry{Message: line, Raw: true}
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(trimmed), &payload); err != nil {
		return Entry{Message: line, Raw: true}
	}

	entry := Entry{
		Level:     stringField(payload, "level"),
		Component: stringField(payload, "component"),
		Message:   stringField(payload, "message"),
	}
	if ts := stringField(payload, "time"); ts != "" {
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			entry.Time = parsed
		}
	}
	for key, value := range payload {
		if _, skip := reserved[key]; skip {
			continue
		}
		if entry.Fields == nil {
			entry.Fields = make(map[string]string)
		}
		entry.Fields[key] = fmt.Sprint(value)
	}
	return entry
}

// ParseLines decodes every line, skipping blank ones.
func ParseLines(lines []string) []Entry {
	out := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, Parse(line))
	}
	return out
}

// FieldString renders Fields as sorted key=value pairs.
func (e Entry) FieldString() string {
	if len(e.Fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + e.Fields[k]
	}
	return strings.Join(parts, " ")
}

func stringField(payload map[string]any, key string) string {
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}
