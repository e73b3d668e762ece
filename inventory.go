// Copyright 2026 fragware. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scentalloc

import "sort"

// Inventory is the mutable, run-scoped working copy of a catalog, keyed by
// Perfume.Key. One inventory belongs to exactly one allocation run and must
// not be shared across concurrent runs.
type Inventory map[string]*Perfume

// NewInventory deep-copies the catalog into a working inventory. Duplicate
// keys merge their stock.
func NewInventory(catalog []*Perfume) Inventory {
	inv := make(Inventory, len(catalog))
	for _, p := range catalog {
		if cur, ok := inv[p.Key()]; ok {
			cur.Stock += p.Stock
			continue
		}
		inv[p.Key()] = p.Clone()
	}
	return inv
}

// Take removes one unit of stock for key. It returns false when the key is
// unknown or out of stock; stock never goes negative.
func (inv Inventory) Take(key string) bool {
	p, ok := inv[key]
	if !ok || p.Stock <= 0 {
		return false
	}
	p.Stock--
	return true
}

// Put returns one unit of stock for key, reversing a Take.
func (inv Inventory) Put(key string) {
	if p, ok := inv[key]; ok {
		p.Stock++
	}
}

// StockOf returns the current stock for key, zero when unknown.
func (inv Inventory) StockOf(key string) int {
	if p, ok := inv[key]; ok {
		return p.Stock
	}
	return 0
}

func sortPerfumesByKey(items []*Perfume) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].Key() < items[j].Key()
	})
}
