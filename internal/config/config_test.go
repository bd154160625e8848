package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func boolPtr(b bool) *bool { return &b }

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvOutputDir, "")
	t.Setenv(EnvLookup, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), false)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := &Config{
		Currency:        "USD",
		ReceiptLeadDays: 30,
		Lookup:          LookupConfig{Enabled: boolPtr(true), Timeout: "10s"},
		Log:             LogConfig{Level: "warn"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("default mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), true); err == nil {
		t.Fatalf("expected error for explicit missing file")
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `templates_dir: /srv/templates
output_dir: /srv/out
filename_pattern: "{{ vendor }}_{{ title }}.json"
currency: CAD
receipt_lead_days: 14
lookup:
  enabled: false
  base_url: http://localhost:9999/api/books
  timeout: 3s
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv(EnvOutputDir, "/tmp/orders")
	t.Setenv(EnvLookup, "true")

	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := &Config{
		TemplatesDir:    "/srv/templates",
		OutputDir:       "/tmp/orders",
		FilenamePattern: "{{ vendor }}_{{ title }}.json",
		Currency:        "CAD",
		ReceiptLeadDays: 14,
		Lookup:          LookupConfig{Enabled: boolPtr(true), BaseURL: "http://localhost:9999/api/books", Timeout: "3s"},
		Log:             LogConfig{Level: "debug"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}

	timeout, err := cfg.LookupTimeout()
	if err != nil || timeout != 3*time.Second {
		t.Fatalf("unexpected timeout %v (%v)", timeout, err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"yaml":    "currency: [",
		"timeout": "lookup:\n  timeout: soon\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yaml")
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, err := Load(path, true); err == nil {
				t.Fatalf("expected error")
			}
		})
	}

	t.Setenv(EnvLookup, "maybe")
	if _, err := Load("", false); err == nil {
		t.Fatalf("expected error for bad %s", EnvLookup)
	}
}
