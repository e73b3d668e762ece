// Copyright 2026 fragware. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scentalloc

import "github.com/shopspring/decimal"

// RunSummary aggregates one engine's allocation run.
type RunSummary struct {
	Engine          string          `json:"engine"`
	Stores          int             `json:"stores"`
	TotalProfit     decimal.Decimal `json:"total_profit"`
	AvgSatisfaction float64         `json:"avg_satisfaction"`
	FullyFilled     int             `json:"fully_filled"`
	UnitsAllocated  int             `json:"units_allocated"`
}

// Summarize rolls allocation results up into a RunSummary.
func Summarize(engine string, results []*StoreRequirement, totalProfit decimal.Decimal) RunSummary {
	summ := RunSummary{
		Engine:      engine,
		Stores:      len(results),
		TotalProfit: totalProfit,
	}
	total := 0.0
	for _, s := range results {
		total += s.Satisfaction
		summ.UnitsAllocated += len(s.Allocated)
		if s.RemainingQuantity() <= 0 {
			summ.FullyFilled++
		}
	}
	if len(results) > 0 {
		summ.AvgSatisfaction = total / float64(len(results))
	}
	return summ
}

// Comparison is the side-by-side delta of the optimized engine against the
// random baseline.
type Comparison struct {
	Optimized RunSummary `json:"optimized"`
	Baseline  RunSummary `json:"baseline"`

	ProfitDelta       decimal.Decimal `json:"profit_delta"`
	SatisfactionDelta float64         `json:"satisfaction_delta"`
}

// Compare builds the comparison of an optimized run against a baseline run.
func Compare(optimized, baseline RunSummary) Comparison {
	return Comparison{
		Optimized:         optimized,
		Baseline:          baseline,
		ProfitDelta:       optimized.TotalProfit.Sub(baseline.TotalProfit),
		SatisfactionDelta: optimized.AvgSatisfaction - baseline.AvgSatisfaction,
	}
}
