package similarity

import "strings"

// Ratio returns the textual similarity of a and b as a percentage in [0,100].
// Case-insensitive. Empty input on either side scores 0.
//
// The metric is the classic sequence-matcher ratio 2*M/T, where M is the total
// length of matching blocks found by recursively taking the longest common
// substring, and T is the combined length of both strings.
func Ratio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	x := []rune(strings.ToLower(a))
	y := []rune(strings.ToLower(b))

	matched := matchingBlocksLen(x, 0, len(x), y, 0, len(y))
	total := len(x) + len(y)

	return 2 * float64(matched) / float64(total) * 100
}

// matchingBlocksLen sums matching-block lengths in x[alo:ahi] vs y[blo:bhi]:
// take the longest common substring, then recurse on the pieces to its left
// and right.
func matchingBlocksLen(x []rune, alo, ahi int, y []rune, blo, bhi int) int {
	i, j, size := longestMatch(x, alo, ahi, y, blo, bhi)
	if size == 0 {
		return 0
	}
	return matchingBlocksLen(x, alo, i, y, blo, j) +
		size +
		matchingBlocksLen(x, i+size, ahi, y, j+size, bhi)
}

// longestMatch finds the longest common substring of x[alo:ahi] and y[blo:bhi].
// Earliest occurrence in x, then in y, wins among equals.
func longestMatch(x []rune, alo, ahi int, y []rune, blo, bhi int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo

	// j2len[j] = length of the common run ending at x[i-1], y[j]
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		next := make(map[int]int)
		for j := blo; j < bhi; j++ {
			if x[i] != y[j] {
				continue
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = next
	}
	return besti, bestj, bestsize
}
