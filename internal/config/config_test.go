package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvBaseURL, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.TimeoutSecs != 10 {
		t.Errorf("timeout = %d, want 10", cfg.API.TimeoutSecs)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if !cfg.General.Cache {
		t.Error("cache not enabled by default")
	}
	if _, err := cfg.BaseURL(); err == nil {
		t.Error("missing base URL not reported")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvBaseURL, "")

	want := Default()
	want.API.BaseURL = "http://localhost:8000"
	want.Appearance.Theme = "terminal"
	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.API.BaseURL != want.API.BaseURL {
		t.Errorf("base url = %q, want %q", got.API.BaseURL, want.API.BaseURL)
	}
	if got.Appearance.Theme != "terminal" {
		t.Errorf("theme = %q, want terminal", got.Appearance.Theme)
	}
}

func TestEnvOverridesBaseURL(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.API.BaseURL = "http://from-file:8000"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	t.Setenv(EnvBaseURL, "http://from-env:9000")
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.API.BaseURL != "http://from-env:9000" {
		t.Errorf("base url = %q, want env override", got.API.BaseURL)
	}
}

func TestDirHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if got, want := Dir(), filepath.Join(dir, "nbntrack"); got != want {
		t.Errorf("Dir = %q, want %q", got, want)
	}
	if got := Path(); filepath.Base(got) != "config.toml" {
		t.Errorf("Path = %q", got)
	}
}

func TestTimeoutFloor(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvBaseURL, "")

	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte("[api]\ntimeout_secs = -5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.TimeoutSecs != 10 {
		t.Errorf("timeout = %d, want floor of 10", cfg.API.TimeoutSecs)
	}
}
