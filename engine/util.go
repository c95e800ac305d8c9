package engine

import (
	"golang.org/x/exp/constraints"
)

func min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func fileOf(sq int) int {
	return sq & 7
}

func rankOf(sq int) int {
	return sq >> 3
}

// relativeRank is the rank of sq from side's point of view: 0 for the home
// rank, 7 for the promotion rank.
func relativeRank(side, sq int) int {
	if side == white {
		return rankOf(sq)
	}
	return 7 - rankOf(sq)
}

// chebyshevDist is the king-move distance between two squares.
func chebyshevDist(a, b int) int {
	dx := absInt(fileOf(a) - fileOf(b))
	dy := absInt(rankOf(a) - rankOf(b))
	return max(dx, dy)
}
