package balance

// validateConds checks that conds is non-empty and holds unique labels.
// Complexity: O(n) time, O(n) space.
func validateConds[T comparable](method string, conds []T) error {
	if len(conds) == 0 {
		return balanceErrorf(method, ErrInvalidArgument, "conds must be non-empty")
	}
	if i, j, dup := firstDuplicate(conds); dup {
		return balanceErrorf(method, ErrInvalidArgument,
			"duplicate condition %v at positions %d and %d", conds[j], i, j)
	}
	return nil
}

// firstDuplicate returns the positions i < j of the first repeated value.
func firstDuplicate[T comparable](s []T) (i, j int, dup bool) {
	seen := make(map[T]int, len(s))
	for j, v := range s {
		if i, ok := seen[v]; ok {
			return i, j, true
		}
		seen[v] = j
	}
	return 0, 0, false
}

// validateCount rejects non-positive counts such as nTrials or nSessions.
func validateCount(method, name string, n int) error {
	if n <= 0 {
		return balanceErrorf(method, ErrInvalidArgument, "%s must be positive, got %d", name, n)
	}
	return nil
}

// validateShuffle rejects ShuffleType values outside the defined policies.
func validateShuffle(method string, s ShuffleType) error {
	if !s.Valid() {
		return balanceErrorf(method, ErrInvalidArgument, "unknown shuffle type %s", s)
	}
	return nil
}
