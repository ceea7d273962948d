package mmap

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"small", "hello\nworld\n"},
		{"page", string(make([]byte, 5000))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			f, err := Open(path)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			if string(f.Bytes()) != tt.content || f.Len() != len(tt.content) {
				t.Errorf("contents differ: got %d bytes, want %d", f.Len(), len(tt.content))
			}
			if err := f.Close(); err != nil {
				t.Errorf("Close: %v", err)
			}
			if f.Bytes() != nil {
				t.Error("Bytes() should be nil after Close")
			}
		})
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing")); !os.IsNotExist(err) {
		t.Errorf("Open(missing) error = %v, want not-exist", err)
	}
}
