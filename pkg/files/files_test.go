package files

import (
	"path/filepath"
	"testing"
)

func TestNewEntry_PanicsOnNameWithPath(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for entry name with path")
		}
	}()
	_ = NewEntry(".", filepath.Join("parent", "child"))
}

func TestEntry(t *testing.T) {
	t.Run("absolute_dir", func(t *testing.T) {
		e := NewEntry("/home/user", "test.txt")
		if e.Name() != "test.txt" {
			t.Errorf("expected Name() = %v, got %v", "test.txt", e.Name())
		}
		expected := filepath.Join("/home/user", "test.txt")
		if e.FullName() != expected {
			t.Errorf("expected FullName() = %v, got %v", expected, e.FullName())
		}
		if e.String() != expected {
			t.Errorf("expected String() = %v, got %v", expected, e.String())
		}
	})

	t.Run("current_dir", func(t *testing.T) {
		e := NewEntry(".", "sub")
		if e.FullName() != "sub" {
			t.Errorf("expected FullName() = %v, got %v", "sub", e.FullName())
		}
	})
}
