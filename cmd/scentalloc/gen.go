// Copyright 2026 fragware. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fragware/scentalloc"
	"github.com/fragware/scentalloc/dataio"
)

var (
	genGenders = []string{"Any", "Men", "Women", "Unisex"}
	genAccords = []string{
		"Any", "Aromatic", "Woody", "Fresh", "Sweet", "Floral", "Citrus",
		"Oriental", "Fruity", "Spicy", "Gourmand", "Leather", "Tobacco",
	}

	genBrands = []string{
		"Cedarworks", "Fleur", "Aqua Lab", "Maison Or", "Velvet Atelier",
		"Northwind", "Amber House", "Solstice",
	}
	genNames = []string{
		"Noir", "Petal", "Surf", "Opulent", "Ember", "Drift", "Halo",
		"Saffron Veil", "Midnight", "Meadow",
	}
	genTopNotes = []string{
		"Bergamot", "Lemon", "Peach", "Saffron", "Pepper", "Sea Salt",
		"Lavender", "Grapefruit",
	}
	genMiddleNotes = []string{
		"Cedar", "Jasmine", "Rose", "Oud", "Mint", "Iris", "Geranium",
		"Cinnamon",
	}
	genBaseNotes = []string{
		"Musk", "Amber", "Vetiver", "Vanilla", "Sandalwood", "Patchouli",
		"Tonka Bean", "Leather",
	}
)

// doGen writes count random store requests whose note preferences are drawn
// from the catalog, so the generated demand is satisfiable. The catalog is
// either loaded from catalogFile or synthesized (perfumes entries) and written
// to catalogOut.
func doGen(catalogFile, catalogOut, outFile string, count, perfumes int, seed int64) error {
	rng := rand.New(rand.NewSource(seed))

	var catalog []*scentalloc.Perfume
	var err error
	switch {
	case catalogFile != "":
		catalog, err = dataio.LoadCatalog(catalogFile)
		if err != nil {
			return fmt.Errorf("load catalog file failed: %w", err)
		}
		if len(catalog) == 0 {
			return errors.New("catalog is empty")
		}
	case catalogOut != "":
		catalog = genCatalog(rng, perfumes)
		if err = dataio.WriteCatalog(catalogOut, catalog); err != nil {
			return fmt.Errorf("write catalog file failed: %w", err)
		}
	default:
		return errors.New("either --catalog or --catalog-out is required")
	}

	stores := make([]*scentalloc.StoreRequirement, count)
	for i := range stores {
		stores[i] = &scentalloc.StoreRequirement{
			StoreName:            fmt.Sprintf("Store_%d", i+1),
			Budget:               decimal.NewFromInt(int64(rng.Intn(4501) + 500)), // 500-5000
			QuantityNeeded:       rng.Intn(16) + 5,                                // 5-20
			Gender:               genGenders[rng.Intn(len(genGenders))],
			PreferredAccord:      genAccords[rng.Intn(len(genAccords))],
			PreferredTopNotes:    firstNote(pick(rng, catalog).TopNotes),
			PreferredMiddleNotes: firstNote(pick(rng, catalog).MiddleNotes),
			PreferredBaseNotes:   firstNote(pick(rng, catalog).BaseNotes),
			MinLongevity:         rng.Intn(11),
			MinProjection:        rng.Intn(11),
			MaxPrice:             decimal.NewFromInt(int64(rng.Intn(351) + 50)), // 50-400
		}
	}

	if err := dataio.WriteStores(outFile, stores); err != nil {
		return fmt.Errorf("write store file failed: %w", err)
	}
	return nil
}

// genCatalog synthesizes a random but valid catalog. Keys stay unique through
// the numbered names.
func genCatalog(rng *rand.Rand, count int) []*scentalloc.Perfume {
	catalog := make([]*scentalloc.Perfume, count)
	for i := range catalog {
		catalog[i] = &scentalloc.Perfume{
			Name:        fmt.Sprintf("%s %d", genNames[rng.Intn(len(genNames))], i+1),
			Brand:       genBrands[rng.Intn(len(genBrands))],
			Gender:      genGenders[rng.Intn(3)+1], // never "Any"
			TopNotes:    pickNotes(rng, genTopNotes),
			MiddleNotes: pickNotes(rng, genMiddleNotes),
			BaseNotes:   pickNotes(rng, genBaseNotes),
			MainAccord:  genAccords[rng.Intn(len(genAccords)-1)+1], // never "Any"
			Longevity:   rng.Intn(10) + 1,
			Projection:  rng.Intn(10) + 1,
			Price:       decimal.NewFromInt(int64(rng.Intn(281) + 20)), // 20-300
			Stock:       rng.Intn(10) + 1,
		}
	}
	return catalog
}

// pickNotes joins one to three distinct notes from the pool.
func pickNotes(rng *rand.Rand, pool []string) string {
	n := rng.Intn(3) + 1
	idx := rng.Perm(len(pool))[:n]
	notes := make([]string, n)
	for i, j := range idx {
		notes[i] = pool[j]
	}
	return strings.Join(notes, ", ")
}

func pick(rng *rand.Rand, catalog []*scentalloc.Perfume) *scentalloc.Perfume {
	return catalog[rng.Intn(len(catalog))]
}

func firstNote(notes string) string {
	first, _, _ := strings.Cut(notes, ",")
	return strings.TrimSpace(first)
}
