package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.DecompressTool != "dcmdjpeg" {
		t.Errorf("DecompressTool = %q", cfg.DecompressTool)
	}
	if cfg.DicomdirTool != "dcmmkdir" {
		t.Errorf("DicomdirTool = %q", cfg.DicomdirTool)
	}
	if cfg.ReadLimit != 5 {
		t.Errorf("ReadLimit = %d, want 5", cfg.ReadLimit)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d", cfg.Workers)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DecompressTool != "dcmdjpeg" {
		t.Errorf("DecompressTool = %q", cfg.DecompressTool)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dicom-tools.yaml")
	data := []byte("decompress_tool: gdcmconv\nread_limit: 10\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DecompressTool != "gdcmconv" {
		t.Errorf("DecompressTool = %q, want gdcmconv", cfg.DecompressTool)
	}
	if cfg.ReadLimit != 10 {
		t.Errorf("ReadLimit = %d, want 10", cfg.ReadLimit)
	}
	// Untouched fields keep their defaults.
	if cfg.DicomdirTool != "dcmmkdir" {
		t.Errorf("DicomdirTool = %q", cfg.DicomdirTool)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dicom-tools.yaml")
	if err := os.WriteFile(path, []byte("decompress_tool: from_file\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("DICOM_DECOMPRESS_TOOL", "from_env")
	t.Setenv("DICOM_WORKERS", "3")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DecompressTool != "from_env" {
		t.Errorf("DecompressTool = %q, want from_env", cfg.DecompressTool)
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Workers)
	}
}

func TestLoadClampsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dicom-tools.yaml")
	if err := os.WriteFile(path, []byte("workers: -2\nread_limit: 0\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if cfg.ReadLimit != 1 {
		t.Errorf("ReadLimit = %d, want 1", cfg.ReadLimit)
	}
}
