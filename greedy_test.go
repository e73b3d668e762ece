// Copyright 2026 fragware. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scentalloc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func makePerfume(brand, name string, price int64, stock int) *Perfume {
	return &Perfume{
		Name:       name,
		Brand:      brand,
		Gender:     "Unisex",
		Longevity:  5,
		Projection: 5,
		Price:      decimal.NewFromInt(price),
		Stock:      stock,
	}
}

func makeStore(name string, budget int64, quantity int, maxPrice int64) *StoreRequirement {
	return &StoreRequirement{
		StoreName:      name,
		Budget:         decimal.NewFromInt(budget),
		QuantityNeeded: quantity,
		MaxPrice:       decimal.NewFromInt(maxPrice),
	}
}

// stubScorer returns fixed scores by inventory key so tests control exactly
// which band every perfume lands in.
type stubScorer struct {
	scores map[string]float64
	def    float64
}

func (s stubScorer) Score(p *Perfume, _ *StoreRequirement) float64 {
	if v, ok := s.scores[p.Key()]; ok {
		return v
	}
	return s.def
}

func fullScorer() stubScorer {
	return stubScorer{def: 100}
}

func TestGreedyAllocator_Basic(t *testing.T) {
	t.Run("FillsWithinBudget", func(t *testing.T) {
		catalog := []*Perfume{
			makePerfume("Aqua", "Mist", 50, 5),
			makePerfume("Bloom", "Dawn", 80, 5),
			makePerfume("Cedar", "Night", 120, 5),
		}
		store := makeStore("Main", 200, 2, 100)

		engine := NewGreedyAllocator(DefaultConfig(), fullScorer(), zaptest.NewLogger(t))
		results, profit := engine.Allocate([]*StoreRequirement{store}, catalog)

		require.Len(t, results, 1)
		got := results[0]
		assert.Len(t, got.Allocated, 2)
		assert.True(t, got.TotalSpent.Equal(decimal.NewFromInt(130)), "spent %s", got.TotalSpent)
		assert.True(t, got.RemainingBudget().Equal(decimal.NewFromInt(70)))
		assert.InDelta(t, 100.0, got.Satisfaction, 0.001)

		wantProfit := decimal.NewFromInt(130).Mul(decimal.NewFromFloat(0.30))
		assert.True(t, profit.Equal(wantProfit), "profit %s", profit)
	})

	t.Run("InsufficientStock", func(t *testing.T) {
		catalog := []*Perfume{
			makePerfume("Aqua", "Mist", 40, 1),
			makePerfume("Bloom", "Dawn", 40, 1),
		}
		store := makeStore("Main", 1000, 5, 100)

		engine := NewGreedyAllocator(DefaultConfig(), fullScorer(), zaptest.NewLogger(t))
		results, _ := engine.Allocate([]*StoreRequirement{store}, catalog)

		require.Len(t, results, 1)
		assert.Len(t, results[0].Allocated, 2)
		assert.Equal(t, 3, results[0].RemainingQuantity())
	})

	t.Run("NoEligibleItems", func(t *testing.T) {
		catalog := []*Perfume{
			makePerfume("Cedar", "Night", 500, 5), // above the price ceiling
		}
		store := makeStore("Main", 1000, 2, 100)

		engine := NewGreedyAllocator(DefaultConfig(), fullScorer(), zaptest.NewLogger(t))
		results, profit := engine.Allocate([]*StoreRequirement{store}, catalog)

		require.Len(t, results, 1)
		assert.Empty(t, results[0].Allocated)
		assert.Zero(t, results[0].Satisfaction)
		assert.True(t, profit.IsZero())
	})
}

func TestGreedyAllocator_BudgetPriority(t *testing.T) {
	// One unit of stock, two stores: the bigger budget is served first.
	catalog := []*Perfume{
		makePerfume("Aqua", "Mist", 60, 1),
	}
	small := makeStore("Small", 500, 1, 100)
	big := makeStore("Big", 1000, 1, 100)

	engine := NewGreedyAllocator(DefaultConfig(), fullScorer(), zaptest.NewLogger(t))
	results, _ := engine.Allocate([]*StoreRequirement{small, big}, catalog)

	require.Len(t, results, 2)
	assert.Equal(t, "Big", results[0].StoreName)
	assert.Len(t, results[0].Allocated, 1)
	assert.Equal(t, "Small", results[1].StoreName)
	assert.Empty(t, results[1].Allocated)
}

func TestGreedyAllocator_FallbackBand(t *testing.T) {
	catalog := []*Perfume{
		makePerfume("Aqua", "Mist", 50, 1),
		makePerfume("Bloom", "Dawn", 50, 5),
		makePerfume("Cedar", "Night", 50, 5),
	}
	scorer := stubScorer{scores: map[string]float64{
		"Aqua_Mist":   90, // primary band
		"Bloom_Dawn":  50, // fallback band
		"Cedar_Night": 30, // below the fallback floor
	}}
	store := makeStore("Main", 1000, 3, 100)

	engine := NewGreedyAllocator(DefaultConfig(), scorer, zaptest.NewLogger(t))
	results, _ := engine.Allocate([]*StoreRequirement{store}, catalog)

	require.Len(t, results, 1)
	got := results[0]

	// Each pass offers a candidate at most once, so the quantity stays
	// partially unfilled even though fallback stock remains.
	require.Len(t, got.Allocated, 2)
	assert.Equal(t, "Aqua_Mist", got.Allocated[0].Key())
	assert.Equal(t, "Bloom_Dawn", got.Allocated[1].Key())
}

func TestGreedyAllocator_Invariants(t *testing.T) {
	catalog := []*Perfume{
		makePerfume("Aqua", "Mist", 30, 2),
		makePerfume("Bloom", "Dawn", 55, 3),
		makePerfume("Cedar", "Night", 80, 1),
		makePerfume("Dune", "Rose", 45, 4),
		makePerfume("Ember", "Oud", 95, 2),
	}
	scorer := stubScorer{
		def: 75,
		scores: map[string]float64{
			"Bloom_Dawn": 45,
			"Dune_Rose":  55,
			"Ember_Oud":  35,
		},
	}
	stores := []*StoreRequirement{
		makeStore("A", 300, 4, 100),
		makeStore("B", 150, 3, 60),
		makeStore("C", 90, 2, 50),
	}

	original := make(map[string]int)
	for _, p := range catalog {
		original[p.Key()] += p.Stock
	}

	engine := NewGreedyAllocator(DefaultConfig(), scorer, zaptest.NewLogger(t))
	results, _ := engine.Allocate(stores, catalog)
	require.Len(t, results, 3)

	// Conservation: allocations per key never exceed the original stock.
	allocated := make(map[string]int)
	for _, s := range results {
		for _, p := range s.Allocated {
			allocated[p.Key()]++
		}
	}
	for key, n := range allocated {
		assert.LessOrEqual(t, n, original[key], "key %s", key)
	}

	for _, s := range results {
		// Budget invariant.
		assert.True(t, s.TotalSpent.LessThanOrEqual(s.Budget), "store %s spent %s", s.StoreName, s.TotalSpent)
		sum := decimal.Zero
		for _, p := range s.Allocated {
			sum = sum.Add(p.Price)
		}
		assert.True(t, s.TotalSpent.Equal(sum), "store %s spent %s != sum %s", s.StoreName, s.TotalSpent, sum)

		// Quantity invariant.
		assert.LessOrEqual(t, len(s.Allocated), s.QuantityNeeded)
	}

	// Inputs stay untouched.
	for _, s := range stores {
		assert.Empty(t, s.Allocated)
		assert.True(t, s.TotalSpent.IsZero())
	}
	for i, p := range catalog {
		assert.Equal(t, original[p.Key()], catalog[i].Stock)
	}
}

func TestLedger(t *testing.T) {
	led := &ledger{margin: decimal.NewFromFloat(0.30)}
	price := decimal.NewFromInt(100)

	led.credit(price)
	assert.True(t, led.total.Equal(decimal.NewFromInt(30)))

	led.debit(price)
	assert.True(t, led.total.IsZero())
}
