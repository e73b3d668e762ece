// Copyright 2026 fragware. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scentalloc

import (
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// backtracker is the state of one bounded depth-first swap search. The
// allocation and inventory are mutated in place and fully undone on every
// path; bestItems/bestSat/bestSpent snapshot the best state seen by value.
type backtracker struct {
	g     *greedyAllocator
	store *StoreRequirement
	inv   Inventory
	led   *ledger
	cands []perfumeMatch

	iterations int

	bestItems []*Perfume
	bestSat   float64
	bestSpent decimal.Decimal
}

// backtrack runs the bounded recursive swap search and applies the best
// allocation found. When nothing beats the starting point the store is left
// exactly as the simple-improvement phase left it.
func (g *greedyAllocator) backtrack(store *StoreRequirement, inv Inventory, led *ledger, log *zap.Logger) {
	if len(store.Allocated) == 0 {
		return
	}
	cands := g.backtrackCandidates(store, inv)
	if len(cands) == 0 {
		return
	}

	start := store.Satisfaction
	b := &backtracker{
		g:         g,
		store:     store,
		inv:       inv,
		led:       led,
		cands:     cands,
		bestItems: clonePerfumes(store.Allocated),
		bestSat:   start,
		bestSpent: store.TotalSpent,
	}
	b.search(0)

	if b.bestSat > start {
		b.apply()
		log.Debug("backtracking improved store",
			zap.String("store", store.StoreName),
			zap.Float64("from", start),
			zap.Float64("to", store.Satisfaction),
			zap.Int("iterations", b.iterations),
		)
	}
}

// backtrackCandidates precomputes the swap pool once for the whole search:
// every catalog item within the price ceiling scoring at least BacktrackFloor,
// sorted by score descending. Stock is rechecked per swap since it moves
// during the search.
func (g *greedyAllocator) backtrackCandidates(store *StoreRequirement, inv Inventory) []perfumeMatch {
	var matches []perfumeMatch
	for _, p := range inv {
		if p.Price.GreaterThan(store.MaxPrice) {
			continue
		}
		if score := g.scorer.Score(p, store); score >= g.cfg.BacktrackFloor {
			matches = append(matches, perfumeMatch{score: score, perfume: p})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].perfume.Key() < matches[j].perfume.Key()
	})
	return matches
}

// search explores swap sequences depth first. It returns true once the
// satisfaction target is reached, which unwinds the whole search; the state
// is still fully undone on the way out and the winning allocation is carried
// in the snapshot.
func (b *backtracker) search(depth int) bool {
	if b.iterations >= b.g.cfg.MaxIterations || depth >= b.g.cfg.MaxDepth {
		return false
	}
	b.iterations++

	for i := range b.store.Allocated {
		out := b.store.Allocated[i]
		for _, c := range b.cands {
			in := c.perfume
			if in.Key() == out.Key() || in.Stock <= 0 {
				continue
			}
			if in.Price.GreaterThan(b.store.RemainingBudget().Add(out.Price)) {
				continue
			}

			b.swapAt(i, in)
			sat := b.g.satisfactionOf(b.store)

			reached := sat >= b.g.cfg.TargetSatisfaction
			if sat > b.bestSat+b.g.cfg.BacktrackMargin || (reached && sat > b.bestSat) {
				b.snapshot(sat)
			}
			if reached || b.search(depth+1) {
				b.undoSwapAt(i, out, in)
				return true
			}
			b.undoSwapAt(i, out, in)
		}
	}
	return false
}

// swapAt replaces allocated slot i with in, moving stock and profit.
func (b *backtracker) swapAt(i int, in *Perfume) {
	out := b.store.Allocated[i]
	b.inv.Put(out.Key())
	b.led.debit(out.Price)
	b.inv.Take(in.Key())
	b.led.credit(in.Price)
	b.store.Allocated[i] = in.Clone()
	b.store.TotalSpent = b.store.TotalSpent.Sub(out.Price).Add(in.Price)
}

// undoSwapAt restores slot i to out, reversing swapAt exactly.
func (b *backtracker) undoSwapAt(i int, out, in *Perfume) {
	b.inv.Put(in.Key())
	b.led.debit(in.Price)
	b.inv.Take(out.Key())
	b.led.credit(out.Price)
	b.store.Allocated[i] = out
	b.store.TotalSpent = b.store.TotalSpent.Sub(in.Price).Add(out.Price)
}

func (b *backtracker) snapshot(sat float64) {
	b.bestItems = clonePerfumes(b.store.Allocated)
	b.bestSat = sat
	b.bestSpent = b.store.TotalSpent
}

// apply replaces the store's current allocation with the best snapshot,
// routing every unit through the inventory so stock counts and the profit
// ledger stay consistent.
func (b *backtracker) apply() {
	for _, p := range b.store.Allocated {
		b.inv.Put(p.Key())
		b.led.debit(p.Price)
	}
	b.store.Allocated = make([]*Perfume, 0, len(b.bestItems))
	for _, p := range b.bestItems {
		b.inv.Take(p.Key())
		b.led.credit(p.Price)
		b.store.Allocated = append(b.store.Allocated, p.Clone())
	}
	b.store.TotalSpent = b.bestSpent
	b.store.Satisfaction = b.g.satisfactionOf(b.store)
}

func clonePerfumes(items []*Perfume) []*Perfume {
	out := make([]*Perfume, len(items))
	for i, p := range items {
		out[i] = p.Clone()
	}
	return out
}
