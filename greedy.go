// Copyright 2026 fragware. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scentalloc

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type greedyAllocator struct {
	cfg    Config
	scorer Scorer
	log    *zap.Logger
}

// NewGreedyAllocator returns the optimizing engine: a priority-ordered greedy
// assignment pass per store, a relaxed fallback pass, then local-search
// rebalancing with bounded backtracking for stores below the satisfaction
// target. A nil logger disables logging.
func NewGreedyAllocator(cfg Config, scorer Scorer, log *zap.Logger) Allocator {
	if log == nil {
		log = zap.NewNop()
	}
	return &greedyAllocator{cfg: cfg, scorer: scorer, log: log}
}

// perfumeMatch pairs an inventory perfume with its match score for one store.
type perfumeMatch struct {
	score   float64
	perfume *Perfume
}

// ledger accumulates profit at a fixed margin rate. A single ledger spans one
// run so swap reversals stay easy to audit.
type ledger struct {
	margin decimal.Decimal
	total  decimal.Decimal
}

func (l *ledger) credit(price decimal.Decimal) {
	l.total = l.total.Add(price.Mul(l.margin))
}

func (l *ledger) debit(price decimal.Decimal) {
	l.total = l.total.Sub(price.Mul(l.margin))
}

func (g *greedyAllocator) Allocate(stores []*StoreRequirement, catalog []*Perfume) ([]*StoreRequirement, decimal.Decimal) {
	log := g.log.With(zap.String("run_id", uuid.NewString()))

	inv := NewInventory(catalog)
	led := &ledger{margin: g.cfg.ProfitMargin}

	// Larger budgets get first pick of scarce stock.
	sorted := make([]*StoreRequirement, len(stores))
	copy(sorted, stores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Budget.GreaterThan(sorted[j].Budget)
	})

	results := make([]*StoreRequirement, 0, len(sorted))
	for _, store := range sorted {
		ws := store.Clone()
		ws.Allocated = nil
		ws.TotalSpent = decimal.Zero

		g.fill(ws, inv, led)
		ws.Satisfaction = g.satisfactionOf(ws)

		log.Debug("store filled",
			zap.String("store", ws.StoreName),
			zap.Int("allocated", len(ws.Allocated)),
			zap.Int("missing", ws.RemainingQuantity()),
			zap.Float64("satisfaction", ws.Satisfaction),
		)
		results = append(results, ws)
	}

	// Rebalancing competes for whatever stock the greedy passes left over.
	for _, ws := range results {
		if ws.Satisfaction < g.cfg.TargetSatisfaction {
			g.rebalance(ws, inv, led, log)
		}
	}

	log.Info("allocation run complete",
		zap.Int("stores", len(results)),
		zap.String("total_profit", led.total.StringFixed(2)),
	)
	return results, led.total
}

// fill runs the primary pass and, for whatever quantity is still missing, the
// relaxed fallback pass.
func (g *greedyAllocator) fill(store *StoreRequirement, inv Inventory, led *ledger) {
	primary := g.buildCandidates(store, inv, g.cfg.PrimaryThreshold, -1)
	g.allocateList(store, inv, led, primary)

	if store.RemainingQuantity() > 0 {
		fallback := g.buildCandidates(store, inv, g.cfg.FallbackFloor, g.cfg.PrimaryThreshold)
		g.allocateList(store, inv, led, fallback)
	}
}

// buildCandidates collects in-stock perfumes within the store's price ceiling
// whose score falls in [lo, hi); hi < 0 means no upper bound. The list is
// sorted by score descending with the inventory key as a stable tie break.
func (g *greedyAllocator) buildCandidates(store *StoreRequirement, inv Inventory, lo, hi float64) []perfumeMatch {
	var matches []perfumeMatch
	for _, p := range inv {
		if p.Stock <= 0 || p.Price.GreaterThan(store.MaxPrice) {
			continue
		}
		score := g.scorer.Score(p, store)
		if score < lo || (hi >= 0 && score >= hi) {
			continue
		}
		matches = append(matches, perfumeMatch{score: score, perfume: p})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].perfume.Key() < matches[j].perfume.Key()
	})
	return matches
}

// allocateList walks the sorted candidates, taking one unit of each affordable
// candidate until the quantity is filled. Each candidate is offered at most
// once per pass.
func (g *greedyAllocator) allocateList(store *StoreRequirement, inv Inventory, led *ledger, candidates []perfumeMatch) {
	for _, m := range candidates {
		if store.RemainingQuantity() <= 0 {
			return
		}
		p := m.perfume
		if p.Price.GreaterThan(store.RemainingBudget()) {
			continue
		}
		if !inv.Take(p.Key()) {
			continue
		}
		store.Allocated = append(store.Allocated, p.Clone())
		store.TotalSpent = store.TotalSpent.Add(p.Price)
		led.credit(p.Price)
	}
}

// satisfactionOf averages the per-item match scores, each capped at 100, with
// the average itself capped at 100. No allocations means zero satisfaction.
func (g *greedyAllocator) satisfactionOf(store *StoreRequirement) float64 {
	if len(store.Allocated) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range store.Allocated {
		total += minFloat(g.scorer.Score(p, store), 100.0)
	}
	return minFloat(total/float64(len(store.Allocated)), 100.0)
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
