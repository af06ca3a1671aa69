package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestNew_LevelAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	logger, closer, err := New(Options{Level: "debug", Format: "json", File: path})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("GetLevel() = %v, want debug", logger.GetLevel())
	}
	logger.WithField("seat", 1).Debug("moved")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"seat":1`) {
		t.Errorf("log file = %q, want a JSON seat field", data)
	}
}

func TestNew_Errors(t *testing.T) {
	if _, _, err := New(Options{Level: "loud"}); err == nil {
		t.Error("New with level loud returned nil error")
	}
	if _, _, err := New(Options{Format: "xml"}); err == nil {
		t.Error("New with format xml returned nil error")
	}
}
