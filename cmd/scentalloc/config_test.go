// Copyright 2026 fragware. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fragware/scentalloc"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := loadConfig("")
		require.NoError(t, err)

		def := scentalloc.DefaultConfig()
		assert.Equal(t, def.PrimaryThreshold, cfg.PrimaryThreshold)
		assert.Equal(t, def.FallbackFloor, cfg.FallbackFloor)
		assert.Equal(t, def.TargetSatisfaction, cfg.TargetSatisfaction)
		assert.Equal(t, def.MaxIterations, cfg.MaxIterations)
		assert.Equal(t, def.MaxDepth, cfg.MaxDepth)
		assert.True(t, def.ProfitMargin.Equal(cfg.ProfitMargin))
		assert.True(t, def.BaselineMargin.Equal(cfg.BaselineMargin))
	})

	t.Run("FileOverrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"primary_threshold: 65\ntarget_satisfaction: 80\nmax_depth: 4\n"), 0644))

		cfg, err := loadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, 65.0, cfg.PrimaryThreshold)
		assert.Equal(t, 80.0, cfg.TargetSatisfaction)
		assert.Equal(t, 4, cfg.MaxDepth)
		// Untouched keys keep their defaults.
		assert.Equal(t, scentalloc.DefaultConfig().FallbackFloor, cfg.FallbackFloor)
	})

	t.Run("FileMissing", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("RejectsInvertedBands", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"fallback_floor: 70\nprimary_threshold: 60\n"), 0644))

		_, err := loadConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fallback_floor")
	})

	t.Run("RejectsZeroCaps", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("max_depth: 0\n"), 0644))

		_, err := loadConfig(path)
		assert.Error(t, err)
	})
}
