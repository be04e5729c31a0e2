package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseScanMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ScanMode
		wantErr bool
	}{
		{"object", ModeObject, false},
		{"OBJECT", ModeObject, false},
		{"Collection", ModeCollection, false},
		{"file", ModeFile, false},
		{"scene", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseScanMode(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseScanMode(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseScanMode(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseScanMode(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	// Point at a nonexistent file location to exercise pure defaults.
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !cfg.ExcludeHighPoly {
		t.Error("ExcludeHighPoly default = false, want true")
	}
	if cfg.AAACheck || cfg.HeroAsset || cfg.AssetCollectionMode {
		t.Error("strictness modes must default off")
	}
	if cfg.ScanMode != ModeObject {
		t.Errorf("ScanMode = %v, want OBJECT", cfg.ScanMode)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if cfg.Thresholds != DefaultThresholds {
		t.Errorf("Thresholds = %+v, want defaults", cfg.Thresholds)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
aaa_check: true
scan_mode: collection
target_collection: Props
workers: 4
thresholds:
  bone_budget: 128
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !cfg.AAACheck {
		t.Error("AAACheck not read from file")
	}
	if cfg.ScanMode != ModeCollection {
		t.Errorf("ScanMode = %v, want COLLECTION", cfg.ScanMode)
	}
	if cfg.TargetCollection != "Props" {
		t.Errorf("TargetCollection = %q", cfg.TargetCollection)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if cfg.Thresholds.BoneBudget != 128 {
		t.Errorf("BoneBudget = %d, want the file override", cfg.Thresholds.BoneBudget)
	}
	// Unset thresholds keep their defaults.
	if cfg.Thresholds.MinResolution != DefaultThresholds.MinResolution {
		t.Errorf("MinResolution = %d, want default", cfg.Thresholds.MinResolution)
	}
}

func TestLoadRejectsBadScanMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("scan_mode: everything\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown scan mode")
	}
}
