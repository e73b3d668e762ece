// Copyright 2026 fragware. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/fragware/scentalloc"
)

var resultsHeader = []string{
	"Store", "Budget", "QuantityNeeded", "SatisfactionPercentage",
	"TotalSpent", "RemainingBudget", "AllocatedPerfumes",
}

// WriteResults exports allocation results, one comma-separated row per store
// with the allocated perfumes joined as a "Brand Name" list.
func WriteResults(path string, results []*scentalloc.StoreRequirement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create results: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(resultsHeader); err != nil {
		return fmt.Errorf("write results header: %w", err)
	}

	for _, s := range results {
		allocated := make([]string, len(s.Allocated))
		for i, p := range s.Allocated {
			allocated[i] = p.Brand + " " + p.Name
		}

		record := []string{
			s.StoreName,
			s.Budget.String(),
			fmt.Sprintf("%d", s.QuantityNeeded),
			fmt.Sprintf("%.2f%%", s.Satisfaction),
			s.TotalSpent.String(),
			s.RemainingBudget().String(),
			strings.Join(allocated, "; "),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write results row %q: %w", s.StoreName, err)
		}
	}

	w.Flush()
	return w.Error()
}
