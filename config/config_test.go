package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	dataHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("XDG_DATA_HOME", dataHome)

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Storage.Driver != "file" {
		t.Errorf("Storage.Driver = %q, want file", c.Storage.Driver)
	}
	if want := filepath.Join(dataHome, "invoicify"); c.Storage.Dir != want {
		t.Errorf("Storage.Dir = %q, want %q", c.Storage.Dir, want)
	}
	if c.ExportPath() != "invoice.pdf" {
		t.Errorf("ExportPath() = %q, want invoice.pdf", c.ExportPath())
	}
	if c.Print.Command != "lp" || c.Currency != "USD" || c.Verbose {
		t.Errorf("unexpected defaults %+v", c)
	}
}

func TestDirs(t *testing.T) {
	home := t.TempDir()
	tests := []struct {
		name     string
		env      map[string]string
		wantCfg  string
		wantData string
	}{
		{
			name:     "xdg",
			env:      map[string]string{"XDG_CONFIG_HOME": "/xdg/config", "XDG_DATA_HOME": "/xdg/data"},
			wantCfg:  filepath.Join("/xdg/config", "invoicify"),
			wantData: filepath.Join("/xdg/data", "invoicify"),
		},
		{
			name:     "home",
			env:      map[string]string{"XDG_CONFIG_HOME": "", "XDG_DATA_HOME": ""},
			wantCfg:  filepath.Join(home, ".config", "invoicify"),
			wantData: filepath.Join(home, ".local", "share", "invoicify"),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("HOME", home)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if got, err := Dir(); err != nil || got != tc.wantCfg {
				t.Errorf("Dir() = %q, %v, want %q", got, err, tc.wantCfg)
			}
			if got, err := DataDir(); err != nil || got != tc.wantData {
				t.Errorf("DataDir() = %q, %v, want %q", got, err, tc.wantData)
			}
		})
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	dir := filepath.Join(home, "invoicify")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	yaml := "storage:\n  driver: sqlite\nexport:\n  dir: /tmp/out\ncurrency: eur\n"
	if err := os.WriteFile(filepath.Join(dir, "invoicify.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("INVOICIFY_PRINT_COMMAND", "lpr")

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Storage.Driver != "sqlite" {
		t.Errorf("Storage.Driver = %q, want sqlite", c.Storage.Driver)
	}
	if c.ExportPath() != filepath.Join("/tmp/out", "invoice.pdf") {
		t.Errorf("ExportPath() = %q", c.ExportPath())
	}
	if c.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", c.Currency)
	}
	if c.Print.Command != "lpr" {
		t.Errorf("Print.Command = %q, want lpr from the environment", c.Print.Command)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("Load(missing file) succeeded, want an error")
	}
}
