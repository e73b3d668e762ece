// Copyright 2026 fragware. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scentalloc provides perfume allocation algorithms that assign a
// shared, depleting inventory to competing store requests while maximizing
// each store's preference satisfaction under budget, quantity and price
// constraints.
package scentalloc

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Allocator runs one complete allocation over a catalog snapshot. Results are
// clones of the input stores carrying the allocation outcome; neither the
// input stores nor the catalog are mutated.
type Allocator interface {
	Allocate(stores []*StoreRequirement, catalog []*Perfume) (results []*StoreRequirement, totalProfit decimal.Decimal)
}

// Scorer computes a 0-100 compatibility score between a perfume and a store
// requirement. Implementations must be pure: identical inputs always yield
// identical scores.
type Scorer interface {
	Score(p *Perfume, s *StoreRequirement) float64
}

// Perfume is one inventory unit. Brand plus Name form the inventory key.
type Perfume struct {
	Name        string
	Brand       string
	Gender      string // Men, Women, Unisex
	TopNotes    string
	MiddleNotes string
	BaseNotes   string
	MainAccord  string
	Longevity   int // 0-10
	Projection  int // 0-10
	Price       decimal.Decimal
	Stock       int
}

// Key returns the unique inventory key for this perfume.
func (p *Perfume) Key() string {
	return p.Brand + "_" + p.Name
}

func (p *Perfume) String() string {
	return p.Brand + " - " + p.Name
}

// Clone returns a deep copy.
func (p *Perfume) Clone() *Perfume {
	c := *p
	return &c
}

// Validate checks catalog-level invariants before a perfume enters a run.
func (p *Perfume) Validate() error {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Brand) == "" {
		return fmt.Errorf("perfume %q: name and brand are required", p.Key())
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("perfume %q: negative price %s", p.Key(), p.Price)
	}
	if p.Stock < 0 {
		return fmt.Errorf("perfume %q: negative stock %d", p.Key(), p.Stock)
	}
	if p.Longevity < 0 || p.Longevity > 10 {
		return fmt.Errorf("perfume %q: longevity %d out of range [0,10]", p.Key(), p.Longevity)
	}
	if p.Projection < 0 || p.Projection > 10 {
		return fmt.Errorf("perfume %q: projection %d out of range [0,10]", p.Key(), p.Projection)
	}
	return nil
}

// StoreRequirement is one store's demand plus its allocation state. Empty
// preference fields (or zero minimums) mean "any".
type StoreRequirement struct {
	StoreName      string
	Budget         decimal.Decimal
	QuantityNeeded int

	Gender               string
	PreferredAccord      string
	PreferredTopNotes    string
	PreferredMiddleNotes string
	PreferredBaseNotes   string
	MinLongevity         int
	MinProjection        int
	MaxPrice             decimal.Decimal

	// Allocation state, populated by the engines.
	Allocated    []*Perfume
	TotalSpent   decimal.Decimal
	Satisfaction float64 // 0-100
}

// RemainingBudget returns Budget minus TotalSpent.
func (s *StoreRequirement) RemainingBudget() decimal.Decimal {
	return s.Budget.Sub(s.TotalSpent)
}

// RemainingQuantity returns how many units the store still needs.
func (s *StoreRequirement) RemainingQuantity() int {
	return s.QuantityNeeded - len(s.Allocated)
}

// Clone returns a deep copy including the allocated perfumes.
func (s *StoreRequirement) Clone() *StoreRequirement {
	c := *s
	c.Allocated = make([]*Perfume, len(s.Allocated))
	for i, p := range s.Allocated {
		c.Allocated[i] = p.Clone()
	}
	return &c
}

// Validate checks request-level invariants before a store enters a run.
func (s *StoreRequirement) Validate() error {
	if strings.TrimSpace(s.StoreName) == "" {
		return fmt.Errorf("store: name is required")
	}
	if !s.Budget.IsPositive() {
		return fmt.Errorf("store %q: budget %s must be positive", s.StoreName, s.Budget)
	}
	if s.QuantityNeeded <= 0 {
		return fmt.Errorf("store %q: quantity %d must be positive", s.StoreName, s.QuantityNeeded)
	}
	if !s.MaxPrice.IsPositive() {
		return fmt.Errorf("store %q: max price %s must be positive", s.StoreName, s.MaxPrice)
	}
	if s.MinLongevity < 0 || s.MinLongevity > 10 {
		return fmt.Errorf("store %q: min longevity %d out of range [0,10]", s.StoreName, s.MinLongevity)
	}
	if s.MinProjection < 0 || s.MinProjection > 10 {
		return fmt.Errorf("store %q: min projection %d out of range [0,10]", s.StoreName, s.MinProjection)
	}
	return nil
}

// Config holds every tunable of the allocation engines.
type Config struct {
	// PrimaryThreshold is the minimum match score for the primary pass.
	PrimaryThreshold float64
	// FallbackFloor is the lower score bound of the fallback band
	// [FallbackFloor, PrimaryThreshold).
	FallbackFloor float64
	// TargetSatisfaction is the satisfaction goal; stores below it are
	// rebalanced after the greedy passes.
	TargetSatisfaction float64
	// ImprovementMargin is how much better a replacement must score during
	// simple rebalancing.
	ImprovementMargin float64
	// BacktrackFloor is the minimum score for backtracking swap candidates.
	BacktrackFloor float64
	// BacktrackMargin is how much a new best must beat the previous best
	// satisfaction before it is snapshotted.
	BacktrackMargin float64
	// MaxIterations caps recursive calls across one backtracking search.
	MaxIterations int
	// MaxDepth caps the backtracking recursion depth.
	MaxDepth int
	// ProfitMargin is the per-unit profit rate of the optimizing engine.
	ProfitMargin decimal.Decimal
	// BaselineMargin is the per-unit profit rate of the baseline engine.
	BaselineMargin decimal.Decimal
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		PrimaryThreshold:   60.0,
		FallbackFloor:      40.0,
		TargetSatisfaction: 70.0,
		ImprovementMargin:  10.0,
		BacktrackFloor:     50.0,
		BacktrackMargin:    1.0,
		MaxIterations:      10000,
		MaxDepth:           6,
		ProfitMargin:       decimal.NewFromFloat(0.30),
		BaselineMargin:     decimal.NewFromFloat(0.27),
	}
}
