// Copyright 2026 fragware. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/fragware/scentalloc"
)

// Store is the wire form of one store request.
type Store struct {
	Name          string          `json:"name"`
	Budget        decimal.Decimal `json:"budget"`
	Quantity      int             `json:"quantity"`
	Gender        string          `json:"gender,omitempty"`
	Accord        string          `json:"accord,omitempty"`
	TopNotes      string          `json:"top_notes,omitempty"`
	MiddleNotes   string          `json:"middle_notes,omitempty"`
	BaseNotes     string          `json:"base_notes,omitempty"`
	MinLongevity  int             `json:"min_longevity,omitempty"`
	MinProjection int             `json:"min_projection,omitempty"`
	MaxPrice      decimal.Decimal `json:"max_price"`
}

type storeFile struct {
	Stores []Store `json:"stores"`
}

// LoadStores reads a store request file and validates every entry.
func LoadStores(path string) ([]*scentalloc.StoreRequirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stores: %w", err)
	}

	var file storeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode stores: %w", err)
	}

	stores := make([]*scentalloc.StoreRequirement, 0, len(file.Stores))
	for i, in := range file.Stores {
		s := &scentalloc.StoreRequirement{
			StoreName:            in.Name,
			Budget:               in.Budget,
			QuantityNeeded:       in.Quantity,
			Gender:               in.Gender,
			PreferredAccord:      in.Accord,
			PreferredTopNotes:    in.TopNotes,
			PreferredMiddleNotes: in.MiddleNotes,
			PreferredBaseNotes:   in.BaseNotes,
			MinLongevity:         in.MinLongevity,
			MinProjection:        in.MinProjection,
			MaxPrice:             in.MaxPrice,
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("stores entry %d: %w", i, err)
		}
		stores = append(stores, s)
	}
	return stores, nil
}

// WriteStores writes store requests in the format LoadStores reads.
func WriteStores(path string, stores []*scentalloc.StoreRequirement) error {
	file := storeFile{Stores: make([]Store, len(stores))}
	for i, s := range stores {
		file.Stores[i] = Store{
			Name:          s.StoreName,
			Budget:        s.Budget,
			Quantity:      s.QuantityNeeded,
			Gender:        s.Gender,
			Accord:        s.PreferredAccord,
			TopNotes:      s.PreferredTopNotes,
			MiddleNotes:   s.PreferredMiddleNotes,
			BaseNotes:     s.PreferredBaseNotes,
			MinLongevity:  s.MinLongevity,
			MinProjection: s.MinProjection,
			MaxPrice:      s.MaxPrice,
		}
	}

	data, err := json.MarshalIndent(file, "", "   ")
	if err != nil {
		return fmt.Errorf("encode stores: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write stores: %w", err)
	}
	return nil
}
