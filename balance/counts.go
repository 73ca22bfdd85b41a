package balance

// Counts tallies how often each label occurs in seq.
func Counts[T comparable](seq []T) map[T]int {
	out := make(map[T]int)
	for _, v := range seq {
		out[v]++
	}
	return out
}

// SessionCounts applies Counts to every session of a Session Sequence.
func SessionCounts[T comparable](sessions [][]T) []map[T]int {
	out := make([]map[T]int, len(sessions))
	for i, s := range sessions {
		out[i] = Counts(s)
	}
	return out
}
