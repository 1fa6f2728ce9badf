package analysis

import (
	"fmt"
	"math"

	"prunflow/internal/model"
	"prunflow/internal/static"
)

const (
	secondsPerDay  = 86400.0
	repairCycleDay = 90.0
)

// PriceBook maps material tickers to their quotes at the planet's nearest
// exchange. A missing entry prices the material with the zero-cost fallback.
type PriceBook map[string]*model.Ticker

// CostOptions tune the COGM derivation. OwnCosts is the shared per-material
// cost table fed back from other planets' results.
type CostOptions struct {
	UseLux1  bool
	UseLux2  bool
	OwnCosts map[string]float64
}

// CostResult is the COGM breakdown for one output material of one building.
type CostResult struct {
	Building      string
	Output        string
	DailyOutput   float64
	RepairCost    float64
	WorkforceCost float64
	MarketInputs  float64
	OwnInputs     float64
}

// MarketPerUnit is the COGM per output unit with all inputs priced at the
// exchange.
func (r *CostResult) MarketPerUnit() float64 {
	if r.DailyOutput == 0 {
		return 0
	}
	return (r.RepairCost + r.WorkforceCost + r.MarketInputs) / r.DailyOutput
}

// OwnPerUnit substitutes the shared cost table for inputs where available.
func (r *CostResult) OwnPerUnit() float64 {
	if r.DailyOutput == 0 {
		return 0
	}
	return (r.RepairCost + r.WorkforceCost + r.OwnInputs) / r.DailyOutput
}

// buyCost prices acquiring amount units: the instant-buy sweep when the
// selling book covers it, else the rolling average, else any quoted price,
// else zero.
func buyCost(t *model.Ticker, amount float64) float64 {
	if t == nil || amount <= 0 {
		return 0
	}
	units := int(math.Ceil(amount))
	if trade := t.InstantBuy(units); trade != nil {
		return trade.TotalValue
	}
	if t.Average > 0 {
		return t.Average * float64(units)
	}
	if t.Price > 0 {
		return t.Price * float64(units)
	}
	return 0
}

// dailyRepairCost prices the building's construction bill and spreads the
// unrecovered half over the 90-day degradation cycle.
func dailyRepairCost(building *static.Building, prices PriceBook) float64 {
	construction := 0.0
	for _, q := range building.Bill {
		construction += buyCost(prices[q.Ticker], float64(q.Amount))
	}
	return (construction - math.Floor(construction*0.5)) / repairCycleDay
}

// dailyWorkforceCost prices one day of the building's crew consumption at
// the per-100-worker rates.
func dailyWorkforceCost(building *static.Building, prices PriceBook, opts CostOptions) float64 {
	cost := 0.0
	for tier, count := range building.Workforce {
		if count == 0 {
			continue
		}
		for _, need := range static.TierNeeds(static.WorkforceTier(tier)) {
			if need.Kind == static.NeedLuxury1 && !opts.UseLux1 {
				continue
			}
			if need.Kind == static.NeedLuxury2 && !opts.UseLux2 {
				continue
			}
			units := need.UnitsPer100 * float64(count) / 100
			cost += buyCost(prices[need.Ticker], units)
		}
	}
	return cost
}

// RecipeCOGM derives the cost of goods manufactured for one output of a
// standard recipe running at the given efficiency.
func RecipeCOGM(building *static.Building, recipe *static.Recipe, output string, efficiency float64, prices PriceBook, opts CostOptions) (*CostResult, error) {
	var outAmount float64
	for _, q := range recipe.Outputs {
		if q.Ticker == output {
			outAmount = float64(q.Amount)
		}
	}
	if outAmount == 0 {
		return nil, fmt.Errorf("recipe %s does not produce %s", recipe.StandardName(), output)
	}

	duration := recipe.Duration.Seconds()
	result := &CostResult{
		Building:      building.Ticker,
		Output:        output,
		DailyOutput:   outAmount * efficiency * secondsPerDay / duration,
		RepairCost:    dailyRepairCost(building, prices),
		WorkforceCost: dailyWorkforceCost(building, prices, opts),
	}

	for _, in := range recipe.Inputs {
		daily := float64(in.Amount) * efficiency * secondsPerDay / duration
		market := buyCost(prices[in.Ticker], daily)
		result.MarketInputs += market
		if own, ok := opts.OwnCosts[in.Ticker]; ok {
			result.OwnInputs += own * math.Ceil(daily)
		} else {
			result.OwnInputs += market
		}
	}
	return result, nil
}

// ExtractionCOGM derives COGM for an extraction building, one result per
// matching deposit on the planet. The daily base yield is the deposit factor
// scaled by the building's extraction rate constant.
func ExtractionCOGM(building *static.Building, planet *model.Planet, efficiency float64, prices PriceBook, opts CostOptions) ([]CostResult, error) {
	spec, ok := static.ExtractionFor(building.Ticker)
	if !ok {
		return nil, fmt.Errorf("building %s is not an extractor", building.Ticker)
	}

	repair := dailyRepairCost(building, prices)
	workforce := dailyWorkforceCost(building, prices, opts)

	results := []CostResult{}
	for _, deposit := range planet.Resources {
		if string(deposit.Type) != spec.Resource {
			continue
		}
		base := deposit.Factor * spec.DailyRate
		if base <= 0 {
			continue
		}
		results = append(results, CostResult{
			Building:      building.Ticker,
			Output:        deposit.Ticker,
			DailyOutput:   base * efficiency,
			RepairCost:    repair,
			WorkforceCost: workforce,
		})
	}
	return results, nil
}

// ExtractionCycle reports the unit batching of an extraction building on a
// deposit: units per cycle and the cycle time in days.
func ExtractionCycle(building string, deposit model.Deposit, efficiency float64) (units int, cycleDays float64, err error) {
	spec, ok := static.ExtractionFor(building)
	if !ok {
		return 0, 0, fmt.Errorf("building %s is not an extractor", building)
	}
	base := deposit.Factor * spec.DailyRate
	if base <= 0 || efficiency <= 0 {
		return 0, 0, fmt.Errorf("deposit %s yields nothing", deposit.Ticker)
	}
	units = int(math.Ceil(base / spec.CycleDivisor))
	cycleDays = float64(units) / base / efficiency
	return units, cycleDays, nil
}
