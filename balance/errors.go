// SPDX-License-Identifier: MIT
// Package: expdesign/balance
//
// errors.go — sentinel errors for the balance package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with balanceErrorf, which keeps the sentinel in the
//     chain ("BalanceTrials: startPos 5 out of range [0,3): balance: invalid argument").
//   • Algorithms never panic on user input. Option constructors (WithX) panic
//     on meaningless values such as WithRand(nil).

package balance

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates that the caller supplied parameters that cannot
// be balanced: empty or duplicated labels, non-positive counts, an out-of-range
// start position, a set shuffle whose trial count is not a multiple of the
// condition count, or violated nested preconditions.
var ErrInvalidArgument = errors.New("balance: invalid argument")

// ErrInternalInvariant indicates that nested weaving ran out of sub-conditions
// for a top-level condition. Well-formed calls never observe it; seeing it
// means the top-level sequence was not balanced within a session.
var ErrInternalInvariant = errors.New("balance: internal invariant violated")

// Canonical method names used as error and log context.
const (
	MethodTrials   = "BalanceTrials"
	MethodSessions = "BalanceSessions"
	MethodNested   = "BalanceNestedConditions"
	MethodCheck    = "CheckNested"
)

// balanceErrorf formats "<method>: <detail>: <sentinel>" and wraps sentinel
// so that errors.Is keeps working for callers.
func balanceErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
