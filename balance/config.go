// SPDX-License-Identifier: MIT
// Package: expdesign/balance
//
// config.go — resolved per-call configuration and defaults.
//
// Defaults:
//   • rng      = process-wide source (math/rand top-level functions, unseeded)
//   • hasStart = false (start position drawn from rng)
//   • logger   = zap.NewNop()

package balance

import "go.uber.org/zap"

// config aggregates the knobs of one balancing call. It is built once per
// exported call and passed by pointer to the internal stages so that every
// stage draws from the same rng.
type config struct {
	rng      Source
	startPos int
	hasStart bool
	logger   *zap.Logger
}

// newConfig applies opts in order over the defaults; last option wins.
func newConfig(opts ...Option) *config {
	cfg := &config{
		rng:    processSource{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// withoutStart returns a copy of c that draws its own start position.
// Sub-condition runs use it so an explicit top-level start does not leak.
func (c *config) withoutStart() *config {
	cp := *c
	cp.hasStart = false
	cp.startPos = 0
	return &cp
}
