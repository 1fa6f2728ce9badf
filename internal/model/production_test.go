package model

import (
	"math"
	"testing"
)

const dayMs = int64(86_400_000)

func queuedOrder(durationMs int64, outputs []ProductionMaterial) ProductionOrder {
	return ProductionOrder{
		Recurring:  true,
		DurationMs: durationMs,
		Outputs:    outputs,
	}
}

func TestDailyProductionSplit(t *testing.T) {
	line := ProductionLine{
		Capacity: 2,
		Orders: []ProductionOrder{
			queuedOrder(dayMs, []ProductionMaterial{{Ticker: "X", Amount: 10}}),
			queuedOrder(3*dayMs, []ProductionMaterial{{Ticker: "X", Amount: 30}}),
		},
	}
	rates := DailyProduction(&line)
	if got := rates.Outputs["X"]; math.Abs(got-20.0) > 1e-9 {
		t.Errorf("X rate = %v, want 20.0", got)
	}
}

func TestDailyProductionIgnoresStartedAndOneShotOrders(t *testing.T) {
	started := int64(1000)
	line := ProductionLine{
		Capacity: 1,
		Orders: []ProductionOrder{
			{Recurring: true, StartedEpochMs: &started, DurationMs: dayMs, Outputs: []ProductionMaterial{{Ticker: "X", Amount: 10}}},
			{Recurring: false, DurationMs: dayMs, Outputs: []ProductionMaterial{{Ticker: "X", Amount: 10}}},
			queuedOrder(dayMs, []ProductionMaterial{{Ticker: "X", Amount: 4}}),
		},
	}
	rates := DailyProduction(&line)
	if got := rates.Outputs["X"]; math.Abs(got-4.0) > 1e-9 {
		t.Errorf("X rate = %v, want 4.0", got)
	}
}

func TestDailyProductionScaleInvariance(t *testing.T) {
	build := func(k int64) ProductionLine {
		return ProductionLine{
			Capacity: 3,
			Orders: []ProductionOrder{
				{
					Recurring:  true,
					DurationMs: k * 6 * 3_600_000,
					Inputs:     []ProductionMaterial{{Ticker: "H2O", Amount: 2}},
					Outputs:    []ProductionMaterial{{Ticker: "GRN", Amount: 4}},
				},
				{
					Recurring:  true,
					DurationMs: k * 17 * 3_600_000,
					Inputs:     []ProductionMaterial{{Ticker: "H2O", Amount: 1}},
					Outputs:    []ProductionMaterial{{Ticker: "BEA", Amount: 4}},
				},
			},
		}
	}

	one := build(1)
	scaled := build(5)
	r1 := DailyProduction(&one)
	r5 := DailyProduction(&scaled)

	// Uniform duration scaling stretches the whole queue, so absolute rates
	// drop by the same factor while the output mix stays fixed.
	for ticker, rate := range r1.Outputs {
		if math.Abs(rate-5*r5.Outputs[ticker]) > 1e-9 {
			t.Errorf("output %s = %v scaled, want %v", ticker, r5.Outputs[ticker], rate/5)
		}
	}
	ratio1 := r1.Outputs["GRN"] / r1.Outputs["BEA"]
	ratio5 := r5.Outputs["GRN"] / r5.Outputs["BEA"]
	if math.Abs(ratio1-ratio5) > 1e-9 {
		t.Errorf("output mix changed under scaling: %v vs %v", ratio1, ratio5)
	}
	ratioIn1 := r1.Inputs["H2O"] / r1.Outputs["GRN"]
	ratioIn5 := r5.Inputs["H2O"] / r5.Outputs["GRN"]
	if math.Abs(ratioIn1-ratioIn5) > 1e-9 {
		t.Errorf("input/output ratio changed under scaling: %v vs %v", ratioIn1, ratioIn5)
	}
}

func TestDailyProductionEmptyQueue(t *testing.T) {
	line := ProductionLine{Capacity: 2}
	rates := DailyProduction(&line)
	if len(rates.Outputs) != 0 || len(rates.Inputs) != 0 {
		t.Errorf("empty queue should produce empty rates: %+v", rates)
	}
}
