// Package plan describes one balancing job as a YAML document, validates
// it, and runs it through package balance into a Schedule.
//
// A plan carries either a flat condition set (balanced with
// balance.BalanceSessions) or a nested set (balanced with
// balance.BalanceNestedAssignments), never both:
//
//	name: stroop-pilot
//	shuffle: set        # all | none | set (default all)
//	trials: 8           # per session
//	sessions: 4
//	seed: 42            # optional, reproducible schedule
//	nested:
//	  - label: congruent
//	    sub: [c1, c2]
//	  - label: incongruent
//	    sub: [i1, i2, i3, i4]
//
// Schedules can be written as YAML, JSON or a text table.
package plan
