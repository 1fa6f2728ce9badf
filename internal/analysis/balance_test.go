package analysis

import (
	"math"
	"testing"

	"prunflow/internal/model"
)

func storageWith(items map[string]float64) *model.Storage {
	s := &model.Storage{Items: map[string]model.StorageItem{}}
	for ticker, amount := range items {
		s.Items[ticker] = model.StorageItem{Ticker: ticker, Amount: amount}
	}
	return s
}

func TestDaysOfSupplyWarnsBelowThreshold(t *testing.T) {
	workforce := &model.PlanetWorkforce{
		Tiers: []model.WorkforceTier{
			{Name: "PIONEER", Needs: []model.WorkforceNeed{
				{Ticker: "DW", UnitsPerInterval: 5},
			}},
		},
	}
	storage := storageWith(map[string]float64{"DW": 100})

	balance, err := DailyBalance(nil, storage, workforce, DefaultSupplyWarnDays)
	if err != nil {
		t.Fatalf("DailyBalance: %v", err)
	}
	if len(balance.Consuming) != 1 {
		t.Fatalf("consuming = %+v, want one entry", balance.Consuming)
	}
	dw := balance.Consuming[0]
	if dw.Ticker != "DW" || math.Abs(dw.DaysOfSupply-20.0) > 1e-9 {
		t.Errorf("DW days-of-supply = %v, want 20.0", dw.DaysOfSupply)
	}
	if !dw.Warning {
		t.Errorf("20 days of supply should warn at the 21-day threshold")
	}
}

func TestDailyBalanceSplitsProducersAndConsumers(t *testing.T) {
	lines := []model.ProductionLine{
		{
			Capacity: 1,
			Orders: []model.ProductionOrder{
				{
					Recurring:  true,
					DurationMs: 86_400_000,
					Inputs:     []model.ProductionMaterial{{Ticker: "H2O", Amount: 2}},
					Outputs:    []model.ProductionMaterial{{Ticker: "GRN", Amount: 4}},
				},
			},
		},
	}
	storage := storageWith(map[string]float64{"H2O": 10})

	balance, err := DailyBalance(lines, storage, nil, 0)
	if err != nil {
		t.Fatalf("DailyBalance: %v", err)
	}
	if len(balance.Producing) != 1 || balance.Producing[0].Ticker != "GRN" {
		t.Fatalf("producing = %+v, want GRN", balance.Producing)
	}
	if math.Abs(balance.Producing[0].Rate-4.0) > 1e-9 {
		t.Errorf("GRN rate = %v, want 4.0", balance.Producing[0].Rate)
	}
	if len(balance.Consuming) != 1 || balance.Consuming[0].Ticker != "H2O" {
		t.Fatalf("consuming = %+v, want H2O", balance.Consuming)
	}
	if math.Abs(balance.Consuming[0].DaysOfSupply-5.0) > 1e-9 {
		t.Errorf("H2O days = %v, want 5.0", balance.Consuming[0].DaysOfSupply)
	}
}

func TestDailyBalanceUnknownTickerIsSkew(t *testing.T) {
	workforce := &model.PlanetWorkforce{
		Tiers: []model.WorkforceTier{
			{Needs: []model.WorkforceNeed{{Ticker: "ZZZ", UnitsPerInterval: 1}}},
		},
	}
	if _, err := DailyBalance(nil, nil, workforce, 0); err == nil {
		t.Fatalf("unknown ticker should surface an error")
	}
}

func TestDailyBalanceNetProductionAndConsumptionCancel(t *testing.T) {
	lines := []model.ProductionLine{
		{
			Capacity: 1,
			Orders: []model.ProductionOrder{
				{
					Recurring:  true,
					DurationMs: 86_400_000,
					Outputs:    []model.ProductionMaterial{{Ticker: "DW", Amount: 5}},
				},
			},
		},
	}
	workforce := &model.PlanetWorkforce{
		Tiers: []model.WorkforceTier{
			{Needs: []model.WorkforceNeed{{Ticker: "DW", UnitsPerInterval: 5}}},
		},
	}
	balance, err := DailyBalance(lines, nil, workforce, 0)
	if err != nil {
		t.Fatalf("DailyBalance: %v", err)
	}
	if len(balance.Producing) != 0 || len(balance.Consuming) != 0 {
		t.Errorf("balanced material should appear on neither side: %+v", balance)
	}
}
