package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "stockdeck.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "read all (0)", maxLines: 0, expected: expectedAll},
		{name: "read all (negative)", maxLines: -1, expected: expectedAll},
		{name: "read partial (5)", maxLines: 5, expected: expectedAll[5:]},
		{name: "read exactly all (10)", maxLines: 10, expected: expectedAll},
		{name: "read more than exists (20)", maxLines: 20, expected: expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "absent.log"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestParseJSON(t *testing.T) {
	line := `{"level":"warn","session":"s1","component":"catalog","kind":"stock_mismatch","subject":"p3","time":"2026-10-18T09:15:00Z","message":"fixture issue"}`

	entry := Parse(line)

	if entry.Raw {
		t.Fatalf("Parse() marked JSON line as raw")
	}
	if entry.Level != "warn" || entry.Component != "catalog" || entry.Message != "fixture issue" {
		t.Fatalf("Parse() = %+v", entry)
	}
	if entry.Time.IsZero() || entry.Time.Hour() != 9 {
		t.Fatalf("Time = %v, want 09:15", entry.Time)
	}
	if got, want := entry.FieldString(), "kind=stock_mismatch subject=p3"; got != want {
		t.Fatalf("FieldString() = %q, want %q", got, want)
	}
}

func TestParseRaw(t *testing.T) {
	tests := []string{
		"2026-10-18 09:15:00 INF hello",
		"{not json",
	}
	for _, line := range tests {
		entry := Parse(line)
		if !entry.Raw || entry.Message != line {
			t.Errorf("Parse(%q) = %+v, want raw entry", line, entry)
		}
	}
}

func TestParseLinesSkipsBlank(t *testing.T) {
	entries := ParseLines([]string{`{"level":"info","message":"a"}`, "  ", "plain"})
	if len(entries) != 2 {
		t.Fatalf("ParseLines() returned %d entries, want 2", len(entries))
	}
	if entries[1].Message != "plain" {
		t.Fatalf("entries[1].Message = %q, want plain", entries[1].Message)
	}
	if entries[0].FieldString() != "" {
		t.Fatalf("FieldString() = %q, want empty", entries[0].FieldString())
	}
}
