package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_WritesMessages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	t.Cleanup(func() { Close() })

	if !Enabled() {
		t.Fatal("Enabled() = false after Init")
	}

	Log("opened %s", "popover")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "opened popover") {
		t.Errorf("log = %q, want it to contain the message", string(data))
	}
}

func TestClose_StopsLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if err := Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	Log("after close")

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "after close") {
		t.Error("messages after Close must be dropped")
	}
}
