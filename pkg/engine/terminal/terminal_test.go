package terminal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetSize_NotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer f.Close()

	tests := []struct {
		name string
		file *os.File
	}{
		{"nil file", nil},
		{"regular file", f},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := GetSize(tt.file)
			if w != DefaultWidth || h != DefaultHeight {
				t.Errorf("GetSize() = %d, %d, want %d, %d", w, h, DefaultWidth, DefaultHeight)
			}
			if IsTerminal(tt.file) {
				t.Error("IsTerminal() = true, want false")
			}
		})
	}
}
