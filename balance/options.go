// SPDX-License-Identifier: MIT
// Package: expdesign/balance
//
// options.go — functional options for the balancing functions.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors panic on meaningless inputs (nil RNG, nil logger).
//     Range checks that depend on the call (WithStartPos) surface as
//     ErrInvalidArgument from the algorithm instead.
//   • Determinism is explicit: WithSeed or WithRand. Without either, draws come
//     from the process-wide source and differ between runs.

package balance

import (
	"math/rand"

	"go.uber.org/zap"
)

// Option customizes a single balancing call.
type Option func(*config)

// WithSeed creates a private *rand.Rand seeded with seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand routes every draw of the call through r. Sharing one r across
// several calls reproduces a whole study from a single seed.
// *rand.Rand is not goroutine-safe; do not share r across goroutines.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("balance: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSource is WithRand for any Source implementation. Panics on nil.
func WithSource(src Source) Option {
	if src == nil {
		panic("balance: WithSource(nil)")
	}
	return func(c *config) {
		c.rng = src
	}
}

// WithStartPos fixes the index into conds where cycling begins.
// Zero is a valid explicit position. An index outside [0, len(conds)) makes
// the call fail with ErrInvalidArgument.
//
// For BalanceSessions the position applies to the single long run that is cut
// into sessions. For nested balancing it applies to the top-level conditions
// only; sub-condition sequences always start at a random position.
func WithStartPos(pos int) Option {
	return func(c *config) {
		c.startPos = pos
		c.hasStart = true
	}
}

// WithLogger sets the sink for non-fatal balance warnings. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("balance: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
