// Copyright 2026 fragware. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matchscore scores how well a perfume matches a store's stated
// preferences, as a 0-100 percentage of satisfied criteria. Scoring is a pure
// function of its inputs; callers that want variability across runs must
// inject it themselves.
package matchscore

import (
	"strings"

	"github.com/fragware/scentalloc"
)

// Weights sets the contribution of each criterion kind. Notes applies to
// every preferred note individually.
type Weights struct {
	Gender     float64
	Accord     float64
	Longevity  float64
	Projection float64
	Price      float64
	Notes      float64
}

// Uniform weighs every criterion equally.
func Uniform() Weights {
	return Weights{Gender: 1, Accord: 1, Longevity: 1, Projection: 1, Price: 1, Notes: 1}
}

// NoteBiased weighs note matches six times the other criteria, for catalogs
// where note fidelity dominates buying decisions.
func NoteBiased() Weights {
	w := Uniform()
	w.Notes = 6
	return w
}

// Scorer implements scentalloc.Scorer over a fixed weight table.
type Scorer struct {
	w Weights
}

func New(w Weights) *Scorer {
	return &Scorer{w: w}
}

// Default returns a uniformly weighted scorer.
func Default() *Scorer {
	return New(Uniform())
}

// Score returns the weighted percentage of the store's criteria the perfume
// satisfies. A store with no criteria at all is fully compatible with
// everything and scores 100.
func (s *Scorer) Score(p *scentalloc.Perfume, store *scentalloc.StoreRequirement) float64 {
	var total, matched float64

	if store.Gender != "" {
		total += s.w.Gender
		if genderMatches(p.Gender, store.Gender) {
			matched += s.w.Gender
		}
	}

	if store.PreferredAccord != "" {
		total += s.w.Accord
		if anyOf(store.PreferredAccord) || strings.EqualFold(p.MainAccord, store.PreferredAccord) {
			matched += s.w.Accord
		}
	}

	if store.MinLongevity > 0 {
		total += s.w.Longevity
		if p.Longevity >= store.MinLongevity {
			matched += s.w.Longevity
		}
	}

	if store.MinProjection > 0 {
		total += s.w.Projection
		if p.Projection >= store.MinProjection {
			matched += s.w.Projection
		}
	}

	if store.MaxPrice.IsPositive() {
		total += s.w.Price
		if !p.Price.GreaterThan(store.MaxPrice) {
			matched += s.w.Price
		}
	}

	total, matched = s.scoreNotes(p.TopNotes, store.PreferredTopNotes, total, matched)
	total, matched = s.scoreNotes(p.MiddleNotes, store.PreferredMiddleNotes, total, matched)
	total, matched = s.scoreNotes(p.BaseNotes, store.PreferredBaseNotes, total, matched)

	if total == 0 {
		return 100.0
	}
	return matched / total * 100.0
}

// scoreNotes treats every preferred note as its own criterion, satisfied by
// containment in the perfume's note field.
func (s *Scorer) scoreNotes(field, preferred string, total, matched float64) (float64, float64) {
	for _, note := range splitNotes(preferred) {
		total += s.w.Notes
		if containsNote(field, note) {
			matched += s.w.Notes
		}
	}
	return total, matched
}

func genderMatches(have, want string) bool {
	return anyOf(want) ||
		strings.EqualFold(have, "Unisex") ||
		strings.EqualFold(have, want)
}

func anyOf(want string) bool {
	return strings.EqualFold(want, "Any")
}

func splitNotes(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	notes := parts[:0]
	for _, part := range parts {
		if note := strings.TrimSpace(part); note != "" {
			notes = append(notes, note)
		}
	}
	return notes
}

func containsNote(field, note string) bool {
	return strings.Contains(strings.ToLower(field), strings.ToLower(note))
}
