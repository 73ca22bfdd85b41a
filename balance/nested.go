package balance

import (
	"fmt"

	"go.uber.org/zap"
)

// CheckNested validates a nested design without drawing random numbers.
//
// It returns ErrInvalidArgument when the design cannot be balanced at the top
// level, and a list of best-effort warnings when sub-conditions cannot be
// perfectly balanced within a session or across the experiment. A nil error
// with warnings means BalanceNestedConditions will succeed.
//
// Preconditions (nConds = len(conds)):
//   - conds non-empty, unique labels; every Sub non-empty with unique codes.
//   - nTrials > 0, nSessions > 0.
//   - (nTrials*nSessions) % nConds == 0 and nTrials % nConds == 0.
//
// Warnings, with minTrials = nConds * max(len(Sub)):
//   - ScopeSession    when nTrials % minTrials != 0.
//   - ScopeExperiment when (nTrials*nSessions) % minTrials != 0.
func CheckNested[T comparable, S comparable](conds []Nested[T, S], nTrials, nSessions int) ([]Warning, error) {
	return checkNested(MethodCheck, conds, nTrials, nSessions)
}

func checkNested[T comparable, S comparable](method string, conds []Nested[T, S], nTrials, nSessions int) ([]Warning, error) {
	if len(conds) == 0 {
		return nil, balanceErrorf(method, ErrInvalidArgument, "conds must be non-empty")
	}
	labels := make([]T, len(conds))
	maxSub := 0
	for i, c := range conds {
		labels[i] = c.Label
		if len(c.Sub) == 0 {
			return nil, balanceErrorf(method, ErrInvalidArgument, "condition %v has no sub-conditions", c.Label)
		}
		if a, b, dup := firstDuplicate(c.Sub); dup {
			return nil, balanceErrorf(method, ErrInvalidArgument,
				"condition %v: duplicate sub-condition %v at positions %d and %d", c.Label, c.Sub[b], a, b)
		}
		if len(c.Sub) > maxSub {
			maxSub = len(c.Sub)
		}
	}
	if err := validateConds(method, labels); err != nil {
		return nil, err
	}
	if err := validateCount(method, "nTrials", nTrials); err != nil {
		return nil, err
	}
	if err := validateCount(method, "nSessions", nSessions); err != nil {
		return nil, err
	}

	nConds := len(conds)
	total := nTrials * nSessions
	if total%nConds != 0 {
		return nil, balanceErrorf(method, ErrInvalidArgument,
			"total number of trials (%d) must be a multiple of %d so all top-level conditions can be balanced",
			total, nConds)
	}
	if nTrials%nConds != 0 {
		return nil, balanceErrorf(method, ErrInvalidArgument,
			"number of trials per session (%d) must be a multiple of %d", nTrials, nConds)
	}

	var warnings []Warning
	minTrials := maxSub * nConds
	if nTrials%minTrials != 0 {
		warnings = append(warnings, Warning{
			Scope: ScopeSession,
			Message: fmt.Sprintf("sub-conditions will not be perfectly balanced within session "+
				"(%d trials per session is not a multiple of %d)", nTrials, minTrials),
		})
	}
	if total%minTrials != 0 {
		warnings = append(warnings, Warning{
			Scope: ScopeExperiment,
			Message: fmt.Sprintf("sub-conditions will not be perfectly balanced within experiment "+
				"(%d trials in total is not a multiple of %d)", total, minTrials),
		})
	}
	return warnings, nil
}

// BalanceNestedConditions balances top-level conditions and their
// sub-conditions across nSessions sessions of nTrials trials, returning the
// sub-condition code of every trial as [session][trial].
//
// shuffle applies to the top-level conditions only; sub-condition order is
// always randomized within each session. Best-effort warnings (see
// CheckNested) are written to the WithLogger sink and do not fail the call.
//
// Errors:
//   - ErrInvalidArgument   — any CheckNested precondition, or an out-of-range WithStartPos.
//   - ErrInternalInvariant — a top-level condition received more slots in a
//     session than its sub-condition sequence supplies.
//
// Complexity: O(nTrials·nSessions) time and space.
func BalanceNestedConditions[T comparable, S comparable](conds []Nested[T, S], nTrials, nSessions int, shuffle ShuffleType, opts ...Option) ([][]S, error) {
	woven, err := BalanceNestedAssignments(conds, nTrials, nSessions, shuffle, opts...)
	if err != nil {
		return nil, err
	}
	out := make([][]S, len(woven))
	for i, sess := range woven {
		out[i] = make([]S, len(sess))
		for j, a := range sess {
			out[i][j] = a.Sub
		}
	}
	return out, nil
}

// BalanceNestedAssignments is BalanceNestedConditions returning the composite
// (top-level label, sub-condition) of every trial.
func BalanceNestedAssignments[T comparable, S comparable](conds []Nested[T, S], nTrials, nSessions int, shuffle ShuffleType, opts ...Option) ([][]Assignment[T, S], error) {
	if err := validateShuffle(MethodNested, shuffle); err != nil {
		return nil, err
	}
	warnings, err := checkNested(MethodNested, conds, nTrials, nSessions)
	if err != nil {
		return nil, err
	}

	cfg := newConfig(opts...)
	for _, w := range warnings {
		cfg.logger.Warn(w.Message,
			zap.String("method", MethodNested),
			zap.String("scope", string(w.Scope)),
			zap.Int("n_conds", len(conds)),
			zap.Int("n_trials", nTrials),
			zap.Int("n_sessions", nSessions),
		)
	}

	nConds := len(conds)

	// [session][trial] -> top-level condition index.
	indices := make([]int, nConds)
	for i := range indices {
		indices[i] = i
	}
	condInds, err := balanceSessions(MethodNested, cfg, indices, nTrials, nSessions, shuffle)
	if err != nil {
		return nil, err
	}

	// [cond][session][n] -> sub-condition of the n-th trial of cond in session.
	subCfg := cfg.withoutStart()
	perCond := nTrials / nConds
	subConds := make([][][]S, nConds)
	for i, c := range conds {
		subConds[i], err = balanceSessions(MethodNested, subCfg, c.Sub, perCond, nSessions, ShuffleAll)
		if err != nil {
			return nil, err
		}
	}

	return weave(conds, condInds, subConds)
}

// weave consumes each condition's per-session sub-sequence front to back,
// in the order its slots appear in condInds. Cursors reset every session.
func weave[T comparable, S comparable](conds []Nested[T, S], condInds [][]int, subConds [][][]S) ([][]Assignment[T, S], error) {
	cursor := make([]int, len(conds))
	out := make([][]Assignment[T, S], len(condInds))
	for sess, slots := range condInds {
		for i := range cursor {
			cursor[i] = 0
		}
		row := make([]Assignment[T, S], len(slots))
		for j, ci := range slots {
			pool := subConds[ci][sess]
			if cursor[ci] >= len(pool) {
				return nil, balanceErrorf(MethodNested, ErrInternalInvariant,
					"session %d trial %d: condition %v has no sub-conditions left (%d consumed)",
					sess, j, conds[ci].Label, len(pool))
			}
			row[j] = Assignment[T, S]{Cond: conds[ci].Label, Sub: pool[cursor[ci]]}
			cursor[ci]++
		}
		out[sess] = row
	}
	return out, nil
}
