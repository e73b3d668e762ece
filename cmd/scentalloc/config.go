// Copyright 2026 fragware. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fragware/scentalloc"
)

// loadConfig builds the engine tuning from defaults, an optional yaml file
// and SCENTALLOC_* environment overrides.
func loadConfig(path string) (scentalloc.Config, error) {
	def := scentalloc.DefaultConfig()

	v := viper.New()
	v.SetDefault("primary_threshold", def.PrimaryThreshold)
	v.SetDefault("fallback_floor", def.FallbackFloor)
	v.SetDefault("target_satisfaction", def.TargetSatisfaction)
	v.SetDefault("improvement_margin", def.ImprovementMargin)
	v.SetDefault("backtrack_floor", def.BacktrackFloor)
	v.SetDefault("backtrack_margin", def.BacktrackMargin)
	v.SetDefault("max_iterations", def.MaxIterations)
	v.SetDefault("max_depth", def.MaxDepth)
	v.SetDefault("profit_margin", def.ProfitMargin.InexactFloat64())
	v.SetDefault("baseline_margin", def.BaselineMargin.InexactFloat64())
	v.SetEnvPrefix("SCENTALLOC")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return scentalloc.Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := scentalloc.Config{
		PrimaryThreshold:   v.GetFloat64("primary_threshold"),
		FallbackFloor:      v.GetFloat64("fallback_floor"),
		TargetSatisfaction: v.GetFloat64("target_satisfaction"),
		ImprovementMargin:  v.GetFloat64("improvement_margin"),
		BacktrackFloor:     v.GetFloat64("backtrack_floor"),
		BacktrackMargin:    v.GetFloat64("backtrack_margin"),
		MaxIterations:      v.GetInt("max_iterations"),
		MaxDepth:           v.GetInt("max_depth"),
		ProfitMargin:       decimal.NewFromFloat(v.GetFloat64("profit_margin")),
		BaselineMargin:     decimal.NewFromFloat(v.GetFloat64("baseline_margin")),
	}
	if cfg.FallbackFloor > cfg.PrimaryThreshold {
		return scentalloc.Config{}, fmt.Errorf("fallback_floor %.1f above primary_threshold %.1f",
			cfg.FallbackFloor, cfg.PrimaryThreshold)
	}
	if cfg.MaxIterations <= 0 || cfg.MaxDepth <= 0 {
		return scentalloc.Config{}, fmt.Errorf("max_iterations and max_depth must be positive")
	}
	return cfg, nil
}

func newLogger(levelStr string) *zap.Logger {
	level := zapcore.InfoLevel
	switch levelStr {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	log, _ := cfg.Build()
	return log
}
