package model

const msPerDay = 86_400_000.0

// ProductionMaterial is one input or output of a production order.
type ProductionMaterial struct {
	Ticker string  `json:"MaterialTicker"`
	Amount float64 `json:"MaterialAmount"`
}

// ProductionOrder is a single order in a production line's queue.
type ProductionOrder struct {
	Inputs             []ProductionMaterial `json:"Inputs"`
	Outputs            []ProductionMaterial `json:"Outputs"`
	CreatedEpochMs     int64                `json:"CreatedEpochMs"`
	StartedEpochMs     *int64               `json:"StartedEpochMs"`
	DurationMs         int64                `json:"DurationMs"`
	CompletionEpochMs  *int64               `json:"CompletedEpochMs"`
	Recurring          bool                 `json:"Recurring"`
	StandardRecipeName string               `json:"StandardRecipeName"`
}

// queued reports whether the order belongs to the steady-state recurring mix:
// flagged recurring and not yet started.
func (o *ProductionOrder) queued() bool {
	return o.Recurring && o.StartedEpochMs == nil
}

// ProductionLine is one building type's production state on a site.
type ProductionLine struct {
	SiteID     string            `json:"SiteId"`
	PlanetID   string            `json:"PlanetId"`
	NaturalID  string            `json:"PlanetNaturalId"`
	Type       string            `json:"Type"`
	Capacity   int               `json:"Capacity"`
	Efficiency float64           `json:"Efficiency"`
	Condition  float64           `json:"Condition"`
	Orders     []ProductionOrder `json:"Orders"`
}

// DailyRates holds per-day material flows attributed to a production line.
type DailyRates struct {
	Outputs map[string]float64
	Inputs  map[string]float64
}

// DailyProduction derives the steady-state per-day material rates of a line
// from its queued recurring orders. Each order is weighted by its share of the
// total queued duration; capacity multiplies parallel slots. Efficiency is
// already baked into the durations the upstream reports, so it does not appear
// here.
func DailyProduction(line *ProductionLine) DailyRates {
	rates := DailyRates{
		Outputs: map[string]float64{},
		Inputs:  map[string]float64{},
	}

	totalDays := 0.0
	for i := range line.Orders {
		if line.Orders[i].queued() {
			totalDays += float64(line.Orders[i].DurationMs) / msPerDay
		}
	}
	if totalDays == 0 {
		return rates
	}

	for i := range line.Orders {
		order := &line.Orders[i]
		if !order.queued() {
			continue
		}
		days := float64(order.DurationMs) / msPerDay
		scale := days / totalDays
		perSlot := scale * float64(line.Capacity) / days
		for _, out := range order.Outputs {
			rates.Outputs[out.Ticker] += perSlot * out.Amount
		}
		for _, in := range order.Inputs {
			rates.Inputs[in.Ticker] += perSlot * in.Amount
		}
	}
	return rates
}
