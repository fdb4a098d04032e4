package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	specs := []struct {
		in       string
		out      Level
		expError string
	}{
		{"debug", Debug, ""},
		{"INFO", Info, ""},
		{"warning", Warning, ""},
		{"loud", Notice, `log: unknown level "loud"`},
	}

	for idx, s := range specs {
		level, err := ParseLevel(s.in)
		if s.expError != "" {
			if err == nil || err.Error() != s.expError {
				t.Fatalf("[spec %d] expected error %s; got %v", idx, s.expError, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", idx, err)
		}
		if level != s.out {
			t.Fatalf("[spec %d] expected level %d; got %d", idx, s.out, level)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)
	defer SetLevel(Notice)

	logger := New("test")
	SetLevel(Warning)
	logger.Notice("hidden")
	logger.Warning("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected notice message to be filtered; got %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "[test]") {
		t.Fatalf("expected warning message tagged with module name; got %q", out)
	}
}
