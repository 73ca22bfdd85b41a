// SPDX-License-Identifier: MIT
// Package: expdesign/balance
//
// rng.go — the random capability used by all balancers.
//
// Balancers need exactly two primitives: a uniform index draw (random start
// position) and a uniform in-place permutation (Fisher–Yates). Both are
// provided by *math/rand.Rand, which therefore satisfies Source directly.
//
// Concurrency:
//   • processSource delegates to the math/rand top-level functions, which are
//     safe for concurrent use and seeded randomly at process start.
//   • A *rand.Rand supplied with WithRand/WithSeed is NOT goroutine-safe.

package balance

import "math/rand"

// Source is the random capability a balancing call draws from.
type Source interface {
	// Intn returns a uniform int in [0, n). n > 0.
	Intn(n int) int
	// Shuffle permutes n elements uniformly through swap.
	Shuffle(n int, swap func(i, j int))
}

// processSource is the default, process-wide Source.
type processSource struct{}

func (processSource) Intn(n int) int { return rand.Intn(n) }

func (processSource) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// shuffleInPlace permutes s uniformly using src.
// Complexity: O(len(s)) time, O(1) extra space.
func shuffleInPlace[T any](s []T, src Source) {
	if len(s) <= 1 {
		return
	}
	src.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
