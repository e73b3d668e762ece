// Copyright 2026 fragware. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scentalloc

import (
	"math/rand"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type randomAllocator struct {
	cfg    Config
	scorer Scorer
	rng    *rand.Rand
	log    *zap.Logger
}

// NewRandomAllocator returns the unoptimized comparison engine: per store it
// shuffles the affordable in-stock items and takes them in that order while
// budget and quantity allow. Satisfaction still comes from the real scorer so
// side-by-side comparisons stay fair. The rand source is caller-supplied so
// runs can be reproduced from a seed.
func NewRandomAllocator(cfg Config, scorer Scorer, rng *rand.Rand, log *zap.Logger) Allocator {
	if log == nil {
		log = zap.NewNop()
	}
	return &randomAllocator{cfg: cfg, scorer: scorer, rng: rng, log: log}
}

func (r *randomAllocator) Allocate(stores []*StoreRequirement, catalog []*Perfume) ([]*StoreRequirement, decimal.Decimal) {
	inv := NewInventory(catalog)
	led := &ledger{margin: r.cfg.BaselineMargin}

	results := make([]*StoreRequirement, 0, len(stores))
	for _, store := range stores {
		ws := store.Clone()
		ws.Allocated = nil
		ws.TotalSpent = decimal.Zero

		available := r.availablePerfumes(ws, inv)
		r.rng.Shuffle(len(available), func(i, j int) {
			available[i], available[j] = available[j], available[i]
		})

		for _, p := range available {
			if ws.RemainingQuantity() <= 0 {
				break
			}
			if p.Price.GreaterThan(ws.RemainingBudget()) {
				continue
			}
			if !inv.Take(p.Key()) {
				continue
			}
			ws.Allocated = append(ws.Allocated, p.Clone())
			ws.TotalSpent = ws.TotalSpent.Add(p.Price)
			led.credit(p.Price)
		}

		ws.Satisfaction = r.satisfactionOf(ws)
		results = append(results, ws)
	}

	r.log.Info("baseline run complete",
		zap.Int("stores", len(results)),
		zap.String("total_profit", led.total.StringFixed(2)),
	)
	return results, led.total
}

// availablePerfumes ignores every preference except stock and the price
// ceiling, sorted by key so only the shuffle decides the order.
func (r *randomAllocator) availablePerfumes(store *StoreRequirement, inv Inventory) []*Perfume {
	var available []*Perfume
	for _, p := range inv {
		if p.Stock > 0 && !p.Price.GreaterThan(store.MaxPrice) {
			available = append(available, p)
		}
	}
	sortPerfumesByKey(available)
	return available
}

func (r *randomAllocator) satisfactionOf(store *StoreRequirement) float64 {
	if len(store.Allocated) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range store.Allocated {
		total += minFloat(r.scorer.Score(p, store), 100.0)
	}
	return minFloat(total/float64(len(store.Allocated)), 100.0)
}
