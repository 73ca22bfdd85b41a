// Package expdesign balances experimental conditions across trials and
// sessions for behavioral and psychological research.
//
// 🚀 What is expdesign?
//
//	Given condition labels (optionally with nested sub-conditions), it
//	assigns one condition to every trial so that all conditions appear
//	equally often, with a configurable randomization of order:
//		• Trials:   cycle a flat condition set, optionally shuffled
//		• Sessions: one balanced run cut into equal session blocks
//		• Nested:   top-level conditions balanced per session, each with
//		            its own sub-condition sequence woven in
//
// ✨ Why expdesign?
//
//   - Generic labels – any comparable Go type is a condition
//   - Explicit randomness – inject a seeded *rand.Rand for reproducible studies
//   - Sentinel errors – branch with errors.Is, never on strings
//   - Warnings through zap – best-effort imbalance never fails a call
//
// Layout:
//
//	balance/        — the balancing algorithms, options, errors
//	plan/           — YAML plan files, validation, schedules and encoders
//	cmd/expdesign/  — command-line front end
//
//	go get github.com/katalvlaran/expdesign/balance
package expdesign
