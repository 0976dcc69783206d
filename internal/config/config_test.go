package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := Defaults()
	if err := validate(cfg); err != nil {
		t.Fatalf("default config should validate, got: %v", err)
	}
	if cfg.Browser.Headless != true {
		t.Error("expected headless by default")
	}
	if cfg.Output.LeaguesFile != "data/intermediate/leagues.json" {
		t.Errorf("unexpected default leagues file: %s", cfg.Output.LeaguesFile)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "harava.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileOverrides(t *testing.T) {
	path := writeConfig(t, `{
		// local overrides
		"browser": {"headless": false, "window_size": "1280,720"},
		"delays": {"page_load": 0},
		"output": {"leagues_file": "out/leagues.json"}
	}`)

	cfg := Defaults()
	if err := loadFile(cfg, path); err != nil {
		t.Fatalf("loadFile failed: %v", err)
	}

	if cfg.Browser.Headless {
		t.Error("explicit headless=false should override the default")
	}
	if cfg.Browser.WindowSize != "1280,720" {
		t.Errorf("window size not overridden: %s", cfg.Browser.WindowSize)
	}
	if cfg.Delays.PageLoad != 0 {
		t.Errorf("explicit page_load=0 should override the default, got %v", cfg.Delays.PageLoad)
	}
	if cfg.Output.LeaguesFile != "out/leagues.json" {
		t.Errorf("leagues file not overridden: %s", cfg.Output.LeaguesFile)
	}
	// Untouched sections keep defaults
	if cfg.Output.TeamsFile != DefaultTeamsFile {
		t.Errorf("teams file should keep default, got %s", cfg.Output.TeamsFile)
	}
	if cfg.Site.CategoriesURL != DefaultCategoriesURL {
		t.Errorf("categories url should keep default, got %s", cfg.Site.CategoriesURL)
	}
}

func TestLoadFileEmptyFilterSkipsFilter(t *testing.T) {
	path := writeConfig(t, `{
		"site": {"filters": {"gender": "", "area": ""}}
	}`)

	cfg := Defaults()
	if err := loadFile(cfg, path); err != nil {
		t.Fatalf("loadFile failed: %v", err)
	}

	if cfg.Site.Filters.Gender != "" {
		t.Errorf(`explicit gender="" should override the default, got %q`, cfg.Site.Filters.Gender)
	}
	if cfg.Site.Filters.Area != "" {
		t.Errorf(`explicit area="" should override the default, got %q`, cfg.Site.Filters.Area)
	}
	// Filters the file does not mention keep their defaults
	if cfg.Site.Filters.Sport != DefaultFilterSport {
		t.Errorf("sport should keep default, got %q", cfg.Site.Filters.Sport)
	}
	if cfg.Site.Filters.Type != DefaultFilterType {
		t.Errorf("type should keep default, got %q", cfg.Site.Filters.Type)
	}
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	cases := []string{
		`{"browsers": {"headless": true}}`,
		`{"browser": {"headles": true}}`,
		`{"site": {"filters": {"sports": "football"}}}`,
		`{"browser": "headless"}`,
	}
	for _, content := range cases {
		cfg := Defaults()
		if err := loadFile(cfg, writeConfig(t, content)); err == nil {
			t.Errorf("expected rejection for %s", content)
		}
	}
}

func TestLoadFileRejectsMalformed(t *testing.T) {
	cfg := Defaults()
	if err := loadFile(cfg, writeConfig(t, `{"browser": {"headless": tru`)); err == nil {
		t.Error("expected parse error for truncated file")
	}
	cfg = Defaults()
	if err := loadFile(cfg, writeConfig(t, `{"delays": {"page_load": "fast"}}`)); err == nil {
		t.Error("expected type error for string page_load")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Defaults()
	cfg.Browser.WindowSize = "huge"
	if err := validate(cfg); err == nil {
		t.Error("expected invalid window size to fail validation")
	}

	cfg = Defaults()
	cfg.Delays.PageLoad = -1
	if err := validate(cfg); err == nil {
		t.Error("expected negative page_load to fail validation")
	}

	cfg = Defaults()
	cfg.Logging.Level = "loud"
	if err := validate(cfg); err == nil {
		t.Error("expected unknown log level to fail validation")
	}

	cfg = Defaults()
	cfg.Site.CategoriesURL = "ftp://example.com"
	if err := validate(cfg); err == nil {
		t.Error("expected non-http categories url to fail validation")
	}
}

func TestParseWindowSize(t *testing.T) {
	tests := []struct {
		in   string
		w, h int
		ok   bool
	}{
		{"1920x1080", 1920, 1080, true},
		{"1280,720", 1280, 720, true},
		{"800 x 600", 800, 600, true},
		{"1920", 0, 0, false},
		{"0x600", 0, 0, false},
		{"widextall", 0, 0, false},
	}
	for _, tt := range tests {
		w, h, err := ParseWindowSize(tt.in)
		if tt.ok && err != nil {
			t.Errorf("ParseWindowSize(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if !tt.ok {
			if err == nil {
				t.Errorf("ParseWindowSize(%q) expected error", tt.in)
			}
			continue
		}
		if w != tt.w || h != tt.h {
			t.Errorf("ParseWindowSize(%q) = %dx%d, want %dx%d", tt.in, w, h, tt.w, tt.h)
		}
	}
}

func TestDefaultFileTemplateRoundTrips(t *testing.T) {
	path := writeConfig(t, DefaultFileTemplate)

	cfg := Defaults()
	if err := loadFile(cfg, path); err != nil {
		t.Fatalf("the init template must pass the strict loader: %v", err)
	}
	if err := validate(cfg); err != nil {
		t.Fatalf("the init template must validate: %v", err)
	}

	// The template documents the defaults, it must not change them
	if *cfg != *Defaults() {
		t.Errorf("template drifted from defaults:\n got %+v\nwant %+v", cfg, Defaults())
	}
}
