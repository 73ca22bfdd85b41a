package balance_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// reverseSource is a scripted Source: Intn always returns n-1 and Shuffle
// reverses the slice. It makes randomized paths fully predictable.
type reverseSource struct {
	intnCalls    int
	shuffleCalls int
}

func (r *reverseSource) Intn(n int) int {
	r.intnCalls++
	return n - 1
}

func (r *reverseSource) Shuffle(n int, swap func(i, j int)) {
	r.shuffleCalls++
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

// sortedCopy returns a sorted copy of s without touching s.
func sortedCopy(s []string) []string {
	out := append([]string(nil), s...)
	sort.Strings(out)
	return out
}

// requireNearlyBalanced asserts that every label of conds occurs
// floor(n/k) or ceil(n/k) times in seq and nothing else occurs.
func requireNearlyBalanced(t *testing.T, conds, seq []string) {
	t.Helper()
	n, k := len(seq), len(conds)
	lo, hi := n/k, (n+k-1)/k
	counts := make(map[string]int, k)
	for _, v := range seq {
		counts[v]++
	}
	total := 0
	for _, c := range conds {
		got := counts[c]
		require.Truef(t, got == lo || got == hi, "label %q occurs %d times, want %d or %d", c, got, lo, hi)
		total += got
	}
	require.Equal(t, n, total, "only labels from conds may appear")
}
