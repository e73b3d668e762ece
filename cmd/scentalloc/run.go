// Copyright 2026 fragware. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/fragware/scentalloc"
	"github.com/fragware/scentalloc/dataio"
	"github.com/fragware/scentalloc/matchscore"
)

func doRun(catalogFile, storeFile, outFile, configFile, logLevel string, noteBiased bool) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	log := newLogger(logLevel)
	defer log.Sync()

	catalog, err := dataio.LoadCatalog(catalogFile)
	if err != nil {
		return fmt.Errorf("load catalog file failed: %w", err)
	}
	stores, err := dataio.LoadStores(storeFile)
	if err != nil {
		return fmt.Errorf("load store file failed: %w", err)
	}

	engine := scentalloc.NewGreedyAllocator(cfg, newScorer(noteBiased), log)
	results, profit := engine.Allocate(stores, catalog)

	if err := dataio.WriteResults(outFile, results); err != nil {
		return fmt.Errorf("write results file failed: %w", err)
	}

	summ := scentalloc.Summarize("greedy", results, profit)
	fmt.Printf("%+v\n", summ)
	return nil
}

func doCompare(catalogFile, storeFile, outFile, configFile, logLevel string, seed int64) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	log := newLogger(logLevel)
	defer log.Sync()

	catalog, err := dataio.LoadCatalog(catalogFile)
	if err != nil {
		return fmt.Errorf("load catalog file failed: %w", err)
	}
	stores, err := dataio.LoadStores(storeFile)
	if err != nil {
		return fmt.Errorf("load store file failed: %w", err)
	}

	scorer := matchscore.Default()

	optimized := scentalloc.NewGreedyAllocator(cfg, scorer, log)
	optResults, optProfit := optimized.Allocate(stores, catalog)

	rng := rand.New(rand.NewSource(seed))
	baseline := scentalloc.NewRandomAllocator(cfg, scorer, rng, log)
	baseResults, baseProfit := baseline.Allocate(stores, catalog)

	if outFile != "" {
		if err := dataio.WriteResults(outFile, optResults); err != nil {
			return fmt.Errorf("write results file failed: %w", err)
		}
	}

	comparison := scentalloc.Compare(
		scentalloc.Summarize("greedy", optResults, optProfit),
		scentalloc.Summarize("random", baseResults, baseProfit),
	)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "   ")
	return enc.Encode(comparison)
}

func newScorer(noteBiased bool) *matchscore.Scorer {
	if noteBiased {
		return matchscore.New(matchscore.NoteBiased())
	}
	return matchscore.Default()
}
