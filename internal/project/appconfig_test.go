package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/BarCut/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultSawKerf = 4.0
	cfg.DefaultStdLength = 4800
	cfg.MinOffcutLength = 500
	cfg.RecentJobs = []string{"/tmp/job1.yaml", "/tmp/job2.json"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.DefaultSawKerf != 4.0 {
		t.Errorf("expected DefaultSawKerf=4.0, got %f", loaded.DefaultSawKerf)
	}
	if loaded.DefaultStdLength != 4800 {
		t.Errorf("expected DefaultStdLength=4800, got %f", loaded.DefaultStdLength)
	}
	if loaded.MinOffcutLength != 500 {
		t.Errorf("expected MinOffcutLength=500, got %f", loaded.MinOffcutLength)
	}
	if len(loaded.RecentJobs) != 2 {
		t.Errorf("expected 2 recent jobs, got %d", len(loaded.RecentJobs))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	defaults := model.DefaultAppConfig()
	if cfg.DefaultSawKerf != defaults.DefaultSawKerf {
		t.Errorf("expected default kerf %f, got %f", defaults.DefaultSawKerf, cfg.DefaultSawKerf)
	}
}

func TestLoadAppConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"default_saw_kerf":2.5}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.DefaultSawKerf != 2.5 {
		t.Errorf("expected kerf 2.5, got %f", cfg.DefaultSawKerf)
	}
	if cfg.DefaultStdLength != model.DefaultAppConfig().DefaultStdLength {
		t.Errorf("missing fields should keep defaults, got std length %f", cfg.DefaultStdLength)
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("not valid json{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadAppConfig(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestSaveAppConfigCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", "config.json")

	if err := SaveAppConfig(path, model.DefaultAppConfig()); err != nil {
		t.Fatalf("SaveAppConfig should create parent dirs: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}
}

func TestLoadAppConfigNilRecentJobs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := []byte(`{"default_saw_kerf":3.2,"recent_jobs":null}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.RecentJobs == nil {
		t.Error("RecentJobs should not be nil after loading")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if filepath.Base(path) != "config.json" {
		t.Errorf("expected config.json, got %s", filepath.Base(path))
	}
	if filepath.Base(filepath.Dir(path)) != ".barcut" {
		t.Errorf("expected parent dir .barcut, got %s", filepath.Dir(path))
	}
}

func TestInventoryPath(t *testing.T) {
	cfg := model.DefaultAppConfig()
	if InventoryPath(cfg) != DefaultInventoryPath() {
		t.Error("expected default inventory path")
	}
	cfg.InventoryPath = "/srv/shop/leftovers.json"
	if InventoryPath(cfg) != "/srv/shop/leftovers.json" {
		t.Errorf("expected configured path, got %s", InventoryPath(cfg))
	}
}
