// Package analysis derives decision-support figures from fetched documents:
// net daily balances, resupply targets, cost of goods manufactured, profit
// estimates and local-market deal classification.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"prunflow/internal/model"
	"prunflow/internal/static"
)

// DefaultSupplyWarnDays is the days-of-supply threshold below which a
// consumed material is flagged.
const DefaultSupplyWarnDays = 21.0

// Flow is one material's net daily rate on a planet. Rate is always
// positive; the producing/consuming split carries the sign. DaysOfSupply is
// only meaningful on the consuming side.
type Flow struct {
	Ticker       string
	Rate         float64
	DaysOfSupply float64
	Warning      bool
}

// Balance is a planet's steady-state daily material balance.
type Balance struct {
	Producing []Flow
	Consuming []Flow
	Net       map[string]float64
}

// DailyBalance sums production outputs, subtracts production inputs and
// workforce consumption, and splits the result into producing and consuming
// materials. Consuming materials get a days-of-supply figure from the
// planet's inventory. A ticker missing from the static database is a data
// version skew and surfaces as an error.
func DailyBalance(lines []model.ProductionLine, storage *model.Storage, workforce *model.PlanetWorkforce, warnDays float64) (*Balance, error) {
	if warnDays <= 0 {
		warnDays = DefaultSupplyWarnDays
	}

	net := map[string]float64{}
	for i := range lines {
		rates := model.DailyProduction(&lines[i])
		for ticker, rate := range rates.Outputs {
			net[ticker] += rate
		}
		for ticker, rate := range rates.Inputs {
			net[ticker] -= rate
		}
	}
	if workforce != nil {
		for _, tier := range workforce.Tiers {
			for _, need := range tier.Needs {
				net[need.Ticker] -= need.UnitsPerInterval
			}
		}
	}

	balance := &Balance{Net: net}
	for ticker, rate := range net {
		if _, ok := static.MaterialByTicker(ticker); !ok {
			return nil, fmt.Errorf("material %s not in static database", ticker)
		}
		switch {
		case rate > 0:
			balance.Producing = append(balance.Producing, Flow{Ticker: ticker, Rate: rate})
		case rate < 0:
			flow := Flow{Ticker: ticker, Rate: -rate, DaysOfSupply: math.Inf(1)}
			if storage != nil {
				flow.DaysOfSupply = storage.Quantity(ticker) / -rate
			}
			flow.Warning = flow.DaysOfSupply < warnDays
			balance.Consuming = append(balance.Consuming, flow)
		}
	}

	sortFlows(balance.Producing)
	sortFlows(balance.Consuming)
	return balance, nil
}

// sortFlows orders flows by material category, then ticker, so rendered
// tables group related materials.
func sortFlows(flows []Flow) {
	sort.Slice(flows, func(i, j int) bool {
		a, _ := static.MaterialByTicker(flows[i].Ticker)
		b, _ := static.MaterialByTicker(flows[j].Ticker)
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return flows[i].Ticker < flows[j].Ticker
	})
}
