package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huynhanx03/go-pqueue/pkg/settings"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"debug", "debug", false},
		{"info", "info", false},
		{"error", "error", false},
		{"invalid", "loud", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(&settings.Logger{LogLevel: tt.level})
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && l == nil {
				t.Error("New() returned nil logger")
			}
		})
	}
}

func TestNew_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pq.log")
	l, err := New(&settings.Logger{LogLevel: "info", FileLogName: path, MaxSize: 1})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.Info("queue drained")
	_ = l.Sync()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(raw), `"msg":"queue drained"`) {
		t.Errorf("log file = %q, want JSON entry", raw)
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Error("OrNop(nil) returned nil")
	}
}
