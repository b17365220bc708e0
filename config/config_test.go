package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quadpath/quadpath/config"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeTempConfig(t, "path:\n  allow_diagonal: true\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Grid.CellSize != 10 {
		t.Errorf("Grid.CellSize = %d; want default 10", cfg.Grid.CellSize)
	}
	if cfg.QTree.MinSize != 5 {
		t.Errorf("QTree.MinSize = %d; want default 5", cfg.QTree.MinSize)
	}
	if !cfg.Path.AllowDiagonal {
		t.Error("Path.AllowDiagonal = false; want true from file")
	}
	if cfg.Color.Border != ([3]uint8{51, 51, 51}) {
		t.Errorf("Color.Border = %v; want default (51,51,51)", cfg.Color.Border)
	}
}

func TestLoad_RespectsExplicitValues(t *testing.T) {
	path := writeTempConfig(t, "grid:\n  cell_size: 25\nqtree:\n  min_size: 8\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Grid.CellSize != 25 {
		t.Errorf("Grid.CellSize = %d; want 25", cfg.Grid.CellSize)
	}
	if cfg.QTree.MinSize != 8 {
		t.Errorf("QTree.MinSize = %d; want 8", cfg.QTree.MinSize)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := config.Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Load() on a missing file: want error, got nil")
	}
}
