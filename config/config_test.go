package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const minimalConfig = `
prunflow:
  name: prunflow
  version: 1.0.0
`

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeFile(t, minimalConfig))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.FIO.URLRoot != DefaultURLRoot {
		t.Errorf("url_root = %q, want default", cfg.FIO.URLRoot)
	}
	if cfg.FIO.CacheTTL.Std() != 360*time.Second {
		t.Errorf("cache_ttl = %v, want 360s", cfg.FIO.CacheTTL)
	}
	if cfg.FIO.RateLimit.RequestsPerSecond != 4 || cfg.FIO.RateLimit.BurstSize != 2 {
		t.Errorf("rate limit defaults = %+v", cfg.FIO.RateLimit)
	}
	if cfg.Analysis.ResupplyDays != 21 || cfg.Analysis.SupplyWarnDays != 21 {
		t.Errorf("analysis defaults = %+v", cfg.Analysis)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeFile(t, `
prunflow:
  name: prunflow
  version: 1.0.0
fio:
  url_root: https://example.test/api/
  cache_dir: /tmp/prunflow-cache
  cache_ttl: 120s
analysis:
  resupply_days: 30
  exchange: NC1
  company_code: XYZ
`))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.FIO.URLRoot != "https://example.test/api" {
		t.Errorf("url_root = %q, trailing slash should be trimmed", cfg.FIO.URLRoot)
	}
	if cfg.FIO.CacheTTL.Std() != 120*time.Second {
		t.Errorf("cache_ttl = %v, want 120s", cfg.FIO.CacheTTL)
	}
	if cfg.Analysis.ResupplyDays != 30 || cfg.Analysis.Exchange != "NC1" {
		t.Errorf("analysis = %+v", cfg.Analysis)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"missing name",
			"prunflow:\n  version: 1.0.0\n",
			"prunflow.name is required",
		},
		{
			"zero rate limit",
			minimalConfig + "fio:\n  rate_limit:\n    requests_per_second: -1\n",
			"requests_per_second",
		},
		{
			"cloudwatch without namespace",
			minimalConfig + "metrics:\n  cloudwatch:\n    enabled: true\n",
			"namespace is required",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, c.content))
			if err == nil || !strings.Contains(err.Error(), c.wantErr) {
				t.Errorf("err = %v, want %q", err, c.wantErr)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("missing file should error")
	}
}
