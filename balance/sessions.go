package balance

// BalanceSessions balances conds across nSessions sessions of nTrials each.
//
// One run of nTrials*nSessions trials is built by the trial balancer
// (ShuffleSet keeps per-set shuffling over the whole run; ShuffleNone and
// ShuffleAll build it in pure cyclic order). The run is cut into contiguous
// blocks, first block first. Under ShuffleAll each block is then permuted on
// its own, so randomization never moves a trial across a session boundary.
//
// The result always has nSessions entries of length nTrials, each backed by
// its own array.
//
// Errors: ErrInvalidArgument for invalid conds, non-positive counts, an
// out-of-range WithStartPos, or ShuffleSet with a run length that is not a
// multiple of len(conds).
//
// Complexity: O(nTrials·nSessions) time and space.
func BalanceSessions[T comparable](conds []T, nTrials, nSessions int, shuffle ShuffleType, opts ...Option) ([][]T, error) {
	if err := validateConds(MethodSessions, conds); err != nil {
		return nil, err
	}
	if err := validateCount(MethodSessions, "nTrials", nTrials); err != nil {
		return nil, err
	}
	if err := validateCount(MethodSessions, "nSessions", nSessions); err != nil {
		return nil, err
	}
	if err := validateShuffle(MethodSessions, shuffle); err != nil {
		return nil, err
	}
	return balanceSessions(MethodSessions, newConfig(opts...), conds, nTrials, nSessions, shuffle)
}

func balanceSessions[T any](method string, cfg *config, conds []T, nTrials, nSessions int, shuffle ShuffleType) ([][]T, error) {
	runShuffle := ShuffleNone
	if shuffle == ShuffleSet {
		runShuffle = ShuffleSet
	}
	run, err := balanceTrials(method, cfg, conds, nTrials*nSessions, runShuffle)
	if err != nil {
		return nil, err
	}

	sessions := make([][]T, nSessions)
	for i := range sessions {
		block := make([]T, nTrials)
		copy(block, run[i*nTrials:(i+1)*nTrials])
		if shuffle == ShuffleAll {
			shuffleInPlace(block, cfg.rng)
		}
		sessions[i] = block
	}
	return sessions, nil
}
