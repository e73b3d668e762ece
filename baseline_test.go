// Copyright 2026 fragware. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scentalloc

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baselineCatalog() []*Perfume {
	return []*Perfume{
		makePerfume("Aqua", "Mist", 40, 2),
		makePerfume("Bloom", "Dawn", 70, 2),
		makePerfume("Cedar", "Night", 120, 1),
		makePerfume("Dune", "Rose", 55, 3),
	}
}

func TestRandomAllocator_Deterministic(t *testing.T) {
	run := func(seed int64) ([]*StoreRequirement, decimal.Decimal) {
		engine := NewRandomAllocator(DefaultConfig(), fullScorer(), rand.New(rand.NewSource(seed)), nil)
		stores := []*StoreRequirement{
			makeStore("Alpha", 300, 3, 100),
			makeStore("Beta", 150, 2, 100),
		}
		return engine.Allocate(stores, baselineCatalog())
	}

	first, firstProfit := run(7)
	second, secondProfit := run(7)

	require.Len(t, second, len(first))
	assert.True(t, firstProfit.Equal(secondProfit))
	for i := range first {
		require.Len(t, second[i].Allocated, len(first[i].Allocated))
		for j := range first[i].Allocated {
			assert.Equal(t, first[i].Allocated[j].Key(), second[i].Allocated[j].Key())
		}
	}
}

func TestRandomAllocator_Invariants(t *testing.T) {
	catalog := baselineCatalog()
	stores := []*StoreRequirement{
		makeStore("Alpha", 300, 3, 100),
		makeStore("Beta", 150, 2, 100),
	}
	engine := NewRandomAllocator(DefaultConfig(), fullScorer(), rand.New(rand.NewSource(1)), nil)

	results, profit := engine.Allocate(stores, catalog)

	var spent decimal.Decimal
	taken := make(map[string]int)
	for _, res := range results {
		assert.True(t, res.TotalSpent.LessThanOrEqual(res.Budget), "%s overspent", res.StoreName)
		assert.LessOrEqual(t, len(res.Allocated), res.QuantityNeeded)
		for _, p := range res.Allocated {
			assert.True(t, p.Price.LessThanOrEqual(res.MaxPrice))
			taken[p.Key()]++
			spent = spent.Add(p.Price)
		}
	}
	for _, p := range catalog {
		assert.LessOrEqual(t, taken[p.Key()], p.Stock, "oversold %s", p.Key())
	}
	assert.True(t, profit.Equal(spent.Mul(DefaultConfig().BaselineMargin)),
		"profit %s, spent %s", profit, spent)

	// The Cedar item is over Beta's and Alpha's price ceiling.
	assert.Zero(t, taken["Cedar_Night"])
}

func TestRandomAllocator_IgnoresPreferences(t *testing.T) {
	// A scorer that hates everything must not stop the baseline from
	// allocating; it only drags satisfaction down.
	engine := NewRandomAllocator(DefaultConfig(), stubScorer{def: 0}, rand.New(rand.NewSource(3)), nil)
	stores := []*StoreRequirement{makeStore("Alpha", 500, 4, 100)}

	results, _ := engine.Allocate(stores, baselineCatalog())

	require.Len(t, results, 1)
	assert.NotEmpty(t, results[0].Allocated)
	assert.Zero(t, results[0].Satisfaction)
}
