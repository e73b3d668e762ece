// Copyright 2026 fragware. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scentalloc

import (
	"sort"

	"go.uber.org/zap"
)

// rebalance tries to lift an under-target store: first by swapping its worst
// allocations for clearly better ones, then by a bounded backtracking search
// when that is not enough.
func (g *greedyAllocator) rebalance(store *StoreRequirement, inv Inventory, led *ledger, log *zap.Logger) {
	before := store.Satisfaction

	g.improveOnce(store, inv, led)
	if store.Satisfaction < g.cfg.TargetSatisfaction {
		g.backtrack(store, inv, led, log)
	}

	log.Debug("store rebalanced",
		zap.String("store", store.StoreName),
		zap.Float64("before", before),
		zap.Float64("after", store.Satisfaction),
	)
}

// improveOnce replaces the worst quarter (at least one) of the store's
// allocations whenever the inventory holds an affordable item scoring at
// least ImprovementMargin better.
func (g *greedyAllocator) improveOnce(store *StoreRequirement, inv Inventory, led *ledger) {
	if len(store.Allocated) == 0 {
		return
	}

	ranked := g.rankAllocated(store)
	count := len(ranked) / 4
	if count < 1 {
		count = 1
	}

	for i := 0; i < count && i < len(ranked); i++ {
		worst := ranked[i]
		repl := g.findReplacement(store, inv, worst)
		if repl == nil {
			continue
		}
		g.swap(store, inv, led, worst.perfume, repl)
	}
	store.Satisfaction = g.satisfactionOf(store)
}

// rankAllocated returns the store's allocations worst-scoring first.
func (g *greedyAllocator) rankAllocated(store *StoreRequirement) []perfumeMatch {
	ranked := make([]perfumeMatch, len(store.Allocated))
	for i, p := range store.Allocated {
		ranked[i] = perfumeMatch{score: g.scorer.Score(p, store), perfume: p}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score < ranked[j].score
		}
		return ranked[i].perfume.Key() < ranked[j].perfume.Key()
	})
	return ranked
}

// findReplacement searches the inventory for the best-scoring in-stock item
// that beats the outgoing allocation by at least ImprovementMargin, fits the
// budget once the outgoing item is returned, and respects the price ceiling.
func (g *greedyAllocator) findReplacement(store *StoreRequirement, inv Inventory, out perfumeMatch) *Perfume {
	budget := store.RemainingBudget().Add(out.perfume.Price)
	floor := out.score + g.cfg.ImprovementMargin

	var best *Perfume
	bestScore := 0.0
	for _, p := range inv {
		if p.Stock <= 0 || p.Price.GreaterThan(budget) || p.Price.GreaterThan(store.MaxPrice) {
			continue
		}
		score := g.scorer.Score(p, store)
		if score < floor {
			continue
		}
		if best == nil || score > bestScore ||
			(score == bestScore && p.Key() < best.Key()) {
			best = p
			bestScore = score
		}
	}
	return best
}

// swap returns out to the inventory and allocates in, keeping spent totals
// and the profit ledger in step. out must be one of the store's allocated
// slots.
func (g *greedyAllocator) swap(store *StoreRequirement, inv Inventory, led *ledger, out, in *Perfume) {
	idx := -1
	for i, p := range store.Allocated {
		if p == out {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	inv.Put(out.Key())
	led.debit(out.Price)
	store.Allocated = append(store.Allocated[:idx], store.Allocated[idx+1:]...)
	store.TotalSpent = store.TotalSpent.Sub(out.Price)

	inv.Take(in.Key())
	led.credit(in.Price)
	store.Allocated = append(store.Allocated, in.Clone())
	store.TotalSpent = store.TotalSpent.Add(in.Price)
}
