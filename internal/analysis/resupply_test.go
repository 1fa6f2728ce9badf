package analysis

import (
	"math"
	"testing"

	"prunflow/config"
)

func consumingBalance(rates map[string]float64) *Balance {
	b := &Balance{Net: map[string]float64{}}
	for ticker, rate := range rates {
		b.Consuming = append(b.Consuming, Flow{Ticker: ticker, Rate: rate})
		b.Net[ticker] = -rate
	}
	return b
}

func TestResupplyNaturalTarget(t *testing.T) {
	balance := consumingBalance(map[string]float64{"RAT": 4})
	storage := storageWith(map[string]float64{"RAT": 20})

	items := ResupplyTargets(balance, storage, nil, 21)
	if len(items) != 1 {
		t.Fatalf("items = %+v, want one", items)
	}
	if math.Abs(items[0].Target-84.0) > 1e-9 {
		t.Errorf("target = %v, want 84.0", items[0].Target)
	}
	if math.Abs(items[0].AmountToBuy-64.0) > 1e-9 {
		t.Errorf("amount to buy = %v, want 64.0", items[0].AmountToBuy)
	}
}

func TestResupplySkipsSatisfiedMaterials(t *testing.T) {
	balance := consumingBalance(map[string]float64{"RAT": 1})
	storage := storageWith(map[string]float64{"RAT": 500})
	if items := ResupplyTargets(balance, storage, nil, 21); len(items) != 0 {
		t.Errorf("fully stocked material reported: %+v", items)
	}
}

func TestResupplyAppliesOverrides(t *testing.T) {
	balance := consumingBalance(map[string]float64{"DW": 2, "RAT": 2, "OVE": 2})
	storage := storageWith(map[string]float64{})

	overrides := &config.PlanetOverrides{
		ResupplyDays: 10,
		Materials: map[string]config.MaterialOverride{
			"DW":  {Kind: config.OverrideMinimum, Amount: 100},
			"RAT": {Kind: config.OverrideMaximum, Amount: 5},
			"OVE": {Kind: config.OverrideAbsolute, Amount: 7},
		},
	}

	items := ResupplyTargets(balance, storage, overrides, 21)
	targets := map[string]float64{}
	for _, item := range items {
		targets[item.Ticker] = item.Target
	}
	// Natural target is 2/day × 10 days = 20.
	if targets["DW"] != 100 {
		t.Errorf("DW target = %v, want minimum override 100", targets["DW"])
	}
	if targets["RAT"] != 5 {
		t.Errorf("RAT target = %v, want maximum override 5", targets["RAT"])
	}
	if targets["OVE"] != 7 {
		t.Errorf("OVE target = %v, want absolute override 7", targets["OVE"])
	}
}

func TestOverrideIdempotence(t *testing.T) {
	natural := 42.0
	for _, o := range []config.MaterialOverride{
		{Kind: config.OverrideNone},
		{Kind: config.OverrideMinimum, Amount: 100},
		{Kind: config.OverrideMaximum, Amount: 10},
		{Kind: config.OverrideAbsolute, Amount: 55},
	} {
		once := o.Apply(natural)
		twice := o.Apply(once)
		if once != twice {
			t.Errorf("%v not idempotent: %v then %v", o.Kind, once, twice)
		}
	}
}

func TestGalacticResupply(t *testing.T) {
	overrides := &config.Overrides{
		GalacticNeeds: map[string]float64{"SF": 300, "FF": 50},
	}
	storage := storageWith(map[string]float64{"SF": 120, "FF": 60})

	items := GalacticResupply(overrides, storage)
	if len(items) != 1 {
		t.Fatalf("items = %+v, want one", items)
	}
	if items[0].Ticker != "SF" || math.Abs(items[0].AmountToBuy-180.0) > 1e-9 {
		t.Errorf("got %+v, want SF shortfall 180", items[0])
	}
}
