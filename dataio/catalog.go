// Copyright 2026 fragware. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataio reads and writes the flat-file formats around an allocation
// run: the semicolon-delimited perfume catalog, store request files and the
// per-store result export.
package dataio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fragware/scentalloc"
)

// catalog rows carry 11 fixed fields in this order.
const catalogFields = 11

var catalogHeader = []string{
	"Name", "Brand", "Gender", "TopNotes", "MiddleNotes", "BaseNotes",
	"MainAccord", "Longevity", "Projection", "AveragePrice", "Stock",
}

// LoadCatalog reads a semicolon-delimited catalog file. The first line is a
// header and is skipped; blank lines are skipped; malformed rows are
// rejected with their line number.
func LoadCatalog(path string) ([]*scentalloc.Perfume, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var catalog []*scentalloc.Perfume
	for i, record := range records {
		if i == 0 {
			continue // header
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		p, err := parseCatalogRow(record, i+1)
		if err != nil {
			return nil, err
		}
		catalog = append(catalog, p)
	}
	return catalog, nil
}

func parseCatalogRow(record []string, line int) (*scentalloc.Perfume, error) {
	if len(record) < catalogFields {
		return nil, fmt.Errorf("catalog line %d: want %d fields, got %d", line, catalogFields, len(record))
	}

	longevity, err := strconv.Atoi(strings.TrimSpace(record[7]))
	if err != nil {
		return nil, fmt.Errorf("catalog line %d: longevity: %w", line, err)
	}
	projection, err := strconv.Atoi(strings.TrimSpace(record[8]))
	if err != nil {
		return nil, fmt.Errorf("catalog line %d: projection: %w", line, err)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(record[9]))
	if err != nil {
		return nil, fmt.Errorf("catalog line %d: price: %w", line, err)
	}
	stock, err := strconv.Atoi(strings.TrimSpace(record[10]))
	if err != nil {
		return nil, fmt.Errorf("catalog line %d: stock: %w", line, err)
	}

	p := &scentalloc.Perfume{
		Name:        strings.TrimSpace(record[0]),
		Brand:       strings.TrimSpace(record[1]),
		Gender:      strings.TrimSpace(record[2]),
		TopNotes:    strings.TrimSpace(record[3]),
		MiddleNotes: strings.TrimSpace(record[4]),
		BaseNotes:   strings.TrimSpace(record[5]),
		MainAccord:  strings.TrimSpace(record[6]),
		Longevity:   longevity,
		Projection:  projection,
		Price:       price,
		Stock:       stock,
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("catalog line %d: %w", line, err)
	}
	return p, nil
}

// WriteCatalog writes the catalog in the same semicolon format LoadCatalog
// reads.
func WriteCatalog(path string, catalog []*scentalloc.Perfume) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create catalog: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'

	if err := w.Write(catalogHeader); err != nil {
		return fmt.Errorf("write catalog header: %w", err)
	}
	for _, p := range catalog {
		record := []string{
			p.Name, p.Brand, p.Gender, p.TopNotes, p.MiddleNotes, p.BaseNotes,
			p.MainAccord,
			strconv.Itoa(p.Longevity),
			strconv.Itoa(p.Projection),
			p.Price.String(),
			strconv.Itoa(p.Stock),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write catalog row %q: %w", p.Key(), err)
		}
	}
	w.Flush()
	return w.Error()
}
