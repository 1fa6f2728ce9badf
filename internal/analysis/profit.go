package analysis

import "math"

// ProfitEstimate brackets the daily profit of producing one material.
type ProfitEstimate struct {
	Ticker   string
	BestCase float64
	Worst    float64
}

// DailyProfit brackets a cost result against the exchange. The cost side
// uses the lower of own and market COGM. The best case sells at the higher
// of the instant-sell price per unit and the rolling average; the worst case
// at the lower.
func DailyProfit(cost *CostResult, prices PriceBook) ProfitEstimate {
	estimate := ProfitEstimate{Ticker: cost.Output}
	perUnit := math.Min(cost.MarketPerUnit(), cost.OwnPerUnit())
	dailyCost := perUnit * cost.DailyOutput

	t := prices[cost.Output]
	if t == nil {
		estimate.BestCase = -dailyCost
		estimate.Worst = -dailyCost
		return estimate
	}

	sellPerUnit := 0.0
	units := int(math.Ceil(cost.DailyOutput))
	if trade := t.InstantSell(units); trade != nil && units > 0 {
		sellPerUnit = trade.TotalValue / float64(units)
	}

	high := math.Max(sellPerUnit, t.Average)
	low := math.Min(sellPerUnit, t.Average)
	estimate.BestCase = high*cost.DailyOutput - dailyCost
	estimate.Worst = low*cost.DailyOutput - dailyCost
	return estimate
}
