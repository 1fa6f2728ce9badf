package config

import (
	"os"
	"path/filepath"
	"testing"
)

const overridesFile = `
planets:
  Katoa:
    resupply: 30
    materials:
      DW: 100
      RAT: 80
    materials-override:
      SF: 300
    materials-max:
      COF: 20
  Montem:
    materials:
      MCG: 500
galactic_needs:
  FF: 1000
`

func writeOverrides(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write overrides: %v", err)
	}
	return path
}

func TestLoadOverrides(t *testing.T) {
	o, err := LoadOverrides(writeOverrides(t, overridesFile))
	if err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}

	katoa := o.Planet("Katoa")
	if katoa == nil {
		t.Fatalf("Katoa missing")
	}
	if katoa.ResupplyDays != 30 {
		t.Errorf("resupply = %d, want 30", katoa.ResupplyDays)
	}
	cases := []struct {
		ticker string
		kind   OverrideKind
		amount float64
	}{
		{"DW", OverrideMinimum, 100},
		{"RAT", OverrideMinimum, 80},
		{"SF", OverrideAbsolute, 300},
		{"COF", OverrideMaximum, 20},
	}
	for _, c := range cases {
		got := katoa.Material(c.ticker)
		if got.Kind != c.kind || got.Amount != c.amount {
			t.Errorf("%s = %+v, want %v %v", c.ticker, got, c.kind, c.amount)
		}
	}
	if got := katoa.Material("XXX"); got.Kind != OverrideNone {
		t.Errorf("unconfigured ticker = %+v, want none", got)
	}
	if o.Planet("Promitor") != nil {
		t.Errorf("unknown planet should be nil")
	}
	if o.GalacticNeeds["FF"] != 1000 {
		t.Errorf("galactic needs = %+v", o.GalacticNeeds)
	}
}

func TestOverrideApply(t *testing.T) {
	cases := []struct {
		override MaterialOverride
		natural  float64
		want     float64
	}{
		{MaterialOverride{Kind: OverrideNone}, 42, 42},
		{MaterialOverride{Kind: OverrideMinimum, Amount: 100}, 42, 100},
		{MaterialOverride{Kind: OverrideMinimum, Amount: 10}, 42, 42},
		{MaterialOverride{Kind: OverrideMaximum, Amount: 10}, 42, 10},
		{MaterialOverride{Kind: OverrideMaximum, Amount: 100}, 42, 42},
		{MaterialOverride{Kind: OverrideAbsolute, Amount: 7}, 42, 7},
	}
	for _, c := range cases {
		if got := c.override.Apply(c.natural); got != c.want {
			t.Errorf("%v.Apply(%v) = %v, want %v", c.override, c.natural, got, c.want)
		}
	}
}

func TestOverrideStoreReload(t *testing.T) {
	store := NewOverrideStore()
	if store.Current().Planet("Katoa") != nil {
		t.Fatalf("fresh store should be empty")
	}

	path := writeOverrides(t, overridesFile)
	if err := store.Reload(path); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if store.Current().Planet("Katoa") == nil {
		t.Errorf("Katoa missing after reload")
	}

	// A failed reload keeps the previous table.
	bad := writeOverrides(t, "planets: [not a map")
	if err := store.Reload(bad); err == nil {
		t.Fatalf("malformed file should error")
	}
	if store.Current().Planet("Katoa") == nil {
		t.Errorf("previous table lost after failed reload")
	}
}
