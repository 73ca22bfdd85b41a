package balance

// BalanceTrials assigns one label from conds to each of nTrials trials so that
// every label appears floor(nTrials/nConds) or ceil(nTrials/nConds) times.
//
// Algorithm:
//  1. Start index: WithStartPos if given, else a uniform draw in [0, nConds).
//  2. ShuffleSet: nTrials must be a multiple of nConds. Emit nTrials/nConds
//     sets; each set cycles conds from the running index and is permuted on
//     its own, so every block of nConds trials is a full permutation.
//  3. ShuffleNone / ShuffleAll: cycle conds from the start index for nTrials
//     trials. ShuffleAll then permutes the whole sequence once.
//
// Errors:
//   - ErrInvalidArgument — empty or duplicated conds, nTrials <= 0, start
//     position out of range, or ShuffleSet with nTrials % nConds != 0.
//
// Complexity: O(nTrials) time and space.
//
// Example:
//
//	seq, err := BalanceTrials([]string{"A", "B", "C"}, 7, ShuffleNone, WithStartPos(0))
//	// seq == [A B C A B C A]
func BalanceTrials[T comparable](conds []T, nTrials int, shuffle ShuffleType, opts ...Option) ([]T, error) {
	if err := validateConds(MethodTrials, conds); err != nil {
		return nil, err
	}
	if err := validateCount(MethodTrials, "nTrials", nTrials); err != nil {
		return nil, err
	}
	if err := validateShuffle(MethodTrials, shuffle); err != nil {
		return nil, err
	}
	return balanceTrials(MethodTrials, newConfig(opts...), conds, nTrials, shuffle)
}

// balanceTrials is BalanceTrials on pre-validated labels and counts.
// method names the exported entry point for error context.
func balanceTrials[T any](method string, cfg *config, conds []T, nTrials int, shuffle ShuffleType) ([]T, error) {
	nConds := len(conds)

	condInd, err := startIndex(method, cfg, nConds)
	if err != nil {
		return nil, err
	}

	trials := make([]T, 0, nTrials)
	if shuffle == ShuffleSet {
		if nTrials%nConds != 0 {
			return nil, balanceErrorf(method, ErrInvalidArgument,
				"set shuffling needs nTrials (%d) to be a multiple of %d conditions", nTrials, nConds)
		}
		for s := 0; s < nTrials/nConds; s++ {
			set := make([]T, nConds)
			for j := range set {
				set[j] = conds[condInd%nConds]
				condInd++
			}
			shuffleInPlace(set, cfg.rng)
			trials = append(trials, set...)
		}
		return trials, nil
	}

	for i := 0; i < nTrials; i++ {
		trials = append(trials, conds[condInd%nConds])
		condInd++
	}
	if shuffle == ShuffleAll {
		shuffleInPlace(trials, cfg.rng)
	}
	return trials, nil
}

// startIndex resolves the cycling start: the explicit position if one was
// given (0 included), else a uniform draw.
func startIndex(method string, cfg *config, nConds int) (int, error) {
	if !cfg.hasStart {
		return cfg.rng.Intn(nConds), nil
	}
	if cfg.startPos < 0 || cfg.startPos >= nConds {
		return 0, balanceErrorf(method, ErrInvalidArgument,
			"startPos %d out of range [0,%d)", cfg.startPos, nConds)
	}
	return cfg.startPos, nil
}
