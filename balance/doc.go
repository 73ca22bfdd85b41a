// Package balance sequences experimental conditions across trials and
// sessions so that every condition occurs equally often.
//
// 🚀 What does it balance?
//
//	A trial is one measurement and gets exactly one condition. Sessions are
//	arbitrary groups of trials (one sitting, one day) and act as balancing
//	boundaries. Conditions are opaque caller labels of any comparable type.
//
// ✨ Three layers, leaves first:
//   - BalanceTrials            — cycle a flat condition set over nTrials.
//   - BalanceSessions          — one long balanced run, cut into sessions.
//   - BalanceNestedConditions  — top-level conditions balanced per session,
//     each with its own sub-condition sequence woven in.
//
// Shuffle policies (ShuffleType):
//
//	ShuffleNone  A B C A B C A          strict cyclic order
//	ShuffleSet   C B A | C A B          each full pass permuted on its own
//	ShuffleAll   C A C B B A C          whole sequence (per session) permuted
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/expdesign/balance"
//
//	seq, err := balance.BalanceTrials([]string{"A", "B", "C"}, 7,
//		balance.ShuffleNone, balance.WithStartPos(0))
//
//	nested := []balance.Nested[string, string]{
//		{Label: "congruent", Sub: []string{"c1", "c2"}},
//		{Label: "incongruent", Sub: []string{"i1", "i2"}},
//	}
//	warns, err := balance.CheckNested(nested, 8, 4)   // pre-flight, no RNG
//	sessions, err := balance.BalanceNestedConditions(nested, 8, 4,
//		balance.ShuffleAll, balance.WithSeed(42), balance.WithLogger(logger))
//
// Randomness:
//
//	Without WithSeed/WithRand/WithSource, draws come from the process-wide
//	math/rand source and differ from run to run. No function seeds anything
//	itself. Pass one *rand.Rand to a series of calls to reproduce a study.
//
// Errors are sentinels (ErrInvalidArgument, ErrInternalInvariant) wrapped
// with call context; match them with errors.Is. A failed call returns no
// partial output.
//
// Performance: every call is O(nTrials·nSessions) time and space.
package balance
