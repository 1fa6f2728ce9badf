package analysis

import (
	"sort"

	"prunflow/config"
	"prunflow/internal/model"
)

// DefaultResupplyDays is the holding period used when neither the planet
// override nor the runtime configuration sets one.
const DefaultResupplyDays = 21

// ResupplyItem is one material the planet should restock.
type ResupplyItem struct {
	Ticker      string
	Target      float64
	Inventory   float64
	AmountToBuy float64
	Override    config.OverrideKind
}

// ResupplyTargets derives the shopping list for a planet: for each consumed
// material the natural target is rate × resupply days, adjusted by the
// planet's override policy. Only positive buy amounts are reported.
func ResupplyTargets(balance *Balance, storage *model.Storage, overrides *config.PlanetOverrides, defaultDays int) []ResupplyItem {
	days := defaultDays
	if days <= 0 {
		days = DefaultResupplyDays
	}
	if overrides != nil && overrides.ResupplyDays > 0 {
		days = overrides.ResupplyDays
	}

	items := []ResupplyItem{}
	for _, flow := range balance.Consuming {
		override := overrides.Material(flow.Ticker)
		target := override.Apply(flow.Rate * float64(days))

		inventory := 0.0
		if storage != nil {
			inventory = storage.Quantity(flow.Ticker)
		}
		buy := target - inventory
		if buy <= 0 {
			continue
		}
		items = append(items, ResupplyItem{
			Ticker:      flow.Ticker,
			Target:      target,
			Inventory:   inventory,
			AmountToBuy: buy,
			Override:    override.Kind,
		})
	}
	return items
}

// GalacticResupply reports shortfalls against the cross-planet needs table.
// Inventory already on the planet counts against the need.
func GalacticResupply(overrides *config.Overrides, storage *model.Storage) []ResupplyItem {
	if overrides == nil {
		return nil
	}
	items := []ResupplyItem{}
	for ticker, need := range overrides.GalacticNeeds {
		inventory := 0.0
		if storage != nil {
			inventory = storage.Quantity(ticker)
		}
		if buy := need - inventory; buy > 0 {
			items = append(items, ResupplyItem{
				Ticker:      ticker,
				Target:      need,
				Inventory:   inventory,
				AmountToBuy: buy,
			})
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Ticker < items[j].Ticker })
	return items
}
