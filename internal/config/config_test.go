package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
theme = "Papirus"
size = 48
scale = 2
prefer_raster = true
base_dirs = ["/opt/icons", "/usr/share/icons"]
log_level = "debug"

[notify]
found = true
missing = false
`
	r := strings.NewReader(input)
	cfg, err := Parse(r)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "Papirus" {
		t.Errorf("Expected theme 'Papirus', got '%s'", cfg.Theme)
	}
	if cfg.Size != 48 || cfg.Scale != 2 {
		t.Errorf("Expected size 48 scale 2, got %d %d", cfg.Size, cfg.Scale)
	}
	if !cfg.Cache {
		t.Error("Expected cache to keep its default of true")
	}
	if !cfg.PreferRaster {
		t.Error("Expected prefer_raster to be true")
	}
	if !reflect.DeepEqual(cfg.BaseDirs, []string{"/opt/icons", "/usr/share/icons"}) {
		t.Errorf("Unexpected base_dirs: %v", cfg.BaseDirs)
	}
	if !cfg.Notify.Found {
		t.Error("Expected notify.found to be true")
	}
	if cfg.Notify.Missing {
		t.Error("Expected notify.missing to be false")
	}
}

func TestParseRejects(t *testing.T) {
	tests := map[string]string{
		"unknown key": "colour = \"red\"\n",
		"bad size":    "size = 0\n",
		"bad type":    "scale = \"two\"\n",
		"bad syntax":  "theme = \n",
	}
	for name, input := range tests {
		if _, err := Parse(strings.NewReader(input)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestCircular(t *testing.T) {
	input := `theme = "Adwaita"
size = 32
cache = false
log_level = "info"

[notify]
found = true
missing = true
`
	// 1. Parse initial input
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	// 2. Generate string representation
	generated := cfg.String()

	// 3. Parse generated string
	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v\n%s", err, generated)
	}

	// 4. Compare
	if !reflect.DeepEqual(cfg, cfg2) {
		t.Errorf("Config mismatch: %+v vs %+v", cfg, cfg2)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ICONLOOKUP_THEME", "Breeze")
	t.Setenv("ICONLOOKUP_SIZE", "64")
	t.Setenv("ICONLOOKUP_BASE_DIRS", "/a:/b")

	cfg := New()
	cfg.Scale = 2
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Theme != "Breeze" || cfg.Size != 64 {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.Scale != 2 {
		t.Errorf("unset variable changed scale to %d", cfg.Scale)
	}
	if !reflect.DeepEqual(cfg.BaseDirs, []string{"/a", "/b"}) {
		t.Errorf("BaseDirs = %v", cfg.BaseDirs)
	}

	t.Setenv("ICONLOOKUP_SCALE", "0")
	if err := New().ApplyEnv(); err == nil {
		t.Error("expected error for scale 0")
	}
}

func TestLoaderPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	override := filepath.Join(dir, "override.toml")

	l := NewLoader("v1.0.0", override)
	if got := l.GetConfigPath(); got != "" {
		t.Fatalf("GetConfigPath with no files = %q", got)
	}

	xdg := filepath.Join(dir, "xdg", "iconlookup", "config.toml")
	if err := Save(&Config{Size: 16, Scale: 1, LogLevel: "warn"}, xdg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := l.GetConfigPath(); got != xdg {
		t.Fatalf("GetConfigPath = %q, want %q", got, xdg)
	}

	if err := os.WriteFile(override, []byte("size = 96\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := l.GetConfigPath(); got != override {
		t.Fatalf("GetConfigPath = %q, want %q", got, override)
	}

	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Size != 96 {
		t.Fatalf("Size = %d, want 96", cfg.Size)
	}
}
