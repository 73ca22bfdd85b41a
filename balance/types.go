package balance

import (
	"fmt"
	"strings"
)

// ShuffleType selects how trial order is randomized.
//
//   - ShuffleAll  — cycle the conditions, then permute the whole sequence
//     (per session in BalanceSessions). This is the zero value and the default.
//   - ShuffleNone — strict cyclic order from the start position.
//   - ShuffleSet  — permute within each complete pass through the condition
//     set; nTrials must be a multiple of the number of conditions.
type ShuffleType int

const (
	// ShuffleAll randomizes the entire resulting sequence.
	ShuffleAll ShuffleType = iota

	// ShuffleNone keeps strict cyclic order.
	ShuffleNone

	// ShuffleSet randomizes within each full cycle of the condition set.
	ShuffleSet
)

// String returns the canonical lowercase name ("all", "none", "set").
func (s ShuffleType) String() string {
	switch s {
	case ShuffleAll:
		return "all"
	case ShuffleNone:
		return "none"
	case ShuffleSet:
		return "set"
	default:
		return fmt.Sprintf("ShuffleType(%d)", int(s))
	}
}

// Valid reports whether s is one of the defined policies.
func (s ShuffleType) Valid() bool {
	return s == ShuffleAll || s == ShuffleNone || s == ShuffleSet
}

// ParseShuffleType maps "all", "none" or "set" (case-insensitive, surrounding
// blanks ignored) to a ShuffleType. An empty string yields ShuffleAll.
func ParseShuffleType(s string) (ShuffleType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return ShuffleAll, nil
	case "none":
		return ShuffleNone, nil
	case "set":
		return ShuffleSet, nil
	default:
		return ShuffleAll, fmt.Errorf("unknown shuffle type %q: %w", s, ErrInvalidArgument)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s ShuffleType) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("marshal %s: %w", s, ErrInvalidArgument)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ShuffleType) UnmarshalText(text []byte) error {
	v, err := ParseShuffleType(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Nested is one top-level condition together with its sub-condition codes.
// Different top-level conditions may carry different numbers of sub-conditions.
type Nested[T comparable, S comparable] struct {
	Label T
	Sub   []S
}

// Assignment is the composite condition of a single nested trial.
type Assignment[T comparable, S comparable] struct {
	Cond T
	Sub  S
}

// WarningScope names the scope a best-effort imbalance applies to.
type WarningScope string

const (
	// ScopeSession: sub-conditions cannot be perfectly balanced within a session.
	ScopeSession WarningScope = "session"

	// ScopeExperiment: sub-conditions cannot be perfectly balanced across the experiment.
	ScopeExperiment WarningScope = "experiment"
)

// Warning is a non-fatal balance diagnostic. The call that produced it still
// returns a valid, best-effort result.
type Warning struct {
	Scope   WarningScope
	Message string
}

// String renders the warning for humans.
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Scope, w.Message)
}
