package shared

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLoggerJSON(t *testing.T) {
	var buffer bytes.Buffer
	logger, err := NewLogger(&buffer, "debug", LogFormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug().Str("token_id", "0.0.1234").Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buffer.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buffer.String(), err)
	}
	if entry["message"] != "hello" || entry["token_id"] != "0.0.1234" {
		t.Fatalf("unexpected log entry: %v", entry)
	}
}

func TestNewLoggerConsoleFiltersByLevel(t *testing.T) {
	var buffer bytes.Buffer
	logger, err := NewLogger(&buffer, "warn", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	output := buffer.String()
	if strings.Contains(output, "hidden") || !strings.Contains(output, "shown") {
		t.Fatalf("unexpected console output: %q", output)
	}
}

func TestNewLoggerRejectsBadInput(t *testing.T) {
	if _, err := NewLogger(&bytes.Buffer{}, "loud", ""); err == nil {
		t.Fatal("expected error for invalid level")
	}
	if _, err := NewLogger(&bytes.Buffer{}, "info", "xml"); err == nil {
		t.Fatal("expected error for invalid format")
	}
}
