package logrusadapter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLogger_DefaultsToInfoLevel(t *testing.T) {
	logger := NewLogger(Options{Level: "not-a-level"})

	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}

	var buf bytes.Buffer
	logger.log.SetOutput(&buf)

	logger.Debug("hidden", nil)
	logger.Info("visible", nil)

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Error("debug message should be suppressed at info level")
	}
	if !strings.Contains(output, "visible") {
		t.Error("info message should be emitted at info level")
	}
}

func TestLogger_JSONFormatIncludesFields(t *testing.T) {
	logger := NewLogger(Options{Level: "debug", JSONFormat: true})

	var buf bytes.Buffer
	logger.log.SetOutput(&buf)

	logger.Info("Search completed", map[string]interface{}{
		"query":   "roads",
		"results": 3,
	})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry["msg"] != "Search completed" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["query"] != "roads" {
		t.Errorf("query field = %v", entry["query"])
	}
}

func TestLogger_AllLevels(t *testing.T) {
	logger := NewLogger(Options{Level: "debug"})

	var buf bytes.Buffer
	logger.log.SetOutput(&buf)

	logger.Debug("d", nil)
	logger.Info("i", nil)
	logger.Warn("w", nil)
	logger.Error("e", nil)

	output := buf.String()
	for _, level := range []string{"debug", "info", "warning", "error"} {
		if !strings.Contains(output, level) {
			t.Errorf("output should contain a %s entry", level)
		}
	}
}
