package engine

// knownEndgame recognizes trivially drawn and technically won material
// configurations before the main evaluation runs. Hits return a
// white-positive score and true.
func (e *Eval) knownEndgame() (int, bool) {
	wLone := e.allPieces[white] == e.pieces[white][king]
	bLone := e.allPieces[black] == e.pieces[black][king]

	switch {
	case wLone && bLone:
		return 0, true
	case bLone:
		if e.insufficientToWin(white) {
			return 0, true
		}
		return e.knownWinScore(white), true
	case wLone:
		if e.insufficientToWin(black) {
			return 0, true
		}
		return e.knownWinScore(black), true
	}
	return 0, false
}

// insufficientToWin reports whether side cannot force mate against a lone
// king: a bare minor, or two knights.
func (e *Eval) insufficientToWin(side int) bool {
	if e.counts[side][pawn] > 0 || e.counts[side][rook] > 0 || e.counts[side][queen] > 0 {
		return false
	}
	n, b := e.counts[side][knight], e.counts[side][bishop]
	if b == 0 {
		return n <= 2
	}
	return n == 0 && b == 1
}

// knownWinScore drives the winning side toward mate: material plus a bonus
// for herding the defending king to a corner and closing in with the own
// king.
func (e *Eval) knownWinScore(winner int) int {
	loser := winner ^ 1
	v := KnownWin + e.npMat[winner] + pieceValues[EG][pawn]*e.counts[winner][pawn]
	v += 10 * centerManhattanDistance[e.kingSq[loser]]
	v += 4 * (7 - chebyshevDist(e.kingSq[winner], e.kingSq[loser]))
	if winner == black {
		v = -v
	}
	return v
}

// adjustEndgame shifts the endgame term toward the draw when the stronger
// side's winning chances are structurally poor: few pawns, symmetric pawn
// files and a distant king. The adjustment never flips the sign.
func (e *Eval) adjustEndgame(eg int) int {
	if eg == 0 {
		return 0
	}
	strong := white
	if eg < 0 {
		strong = black
	}

	asym := 0
	for f := 0; f < 8; f++ {
		w := e.pieces[white][pawn]&fileMasks[f] != 0
		b := e.pieces[black][pawn]&fileMasks[f] != 0
		if w != b {
			asym++
		}
	}

	adj := endgameBase +
		pawnCountBonus*e.counts[strong][pawn] +
		pawnAsymmetryBonus*asym +
		kingOppositionDistanceBonus*manhattanDist[e.kingSq[white]][e.kingSq[black]]

	if eg > 0 {
		return max(0, eg+adj)
	}
	return min(0, eg-adj)
}

// scaleFactor selects the endgame scale out of maxScaleFactor for drawish
// material: opposite-colored bishops and pawnless advantages.
func (e *Eval) scaleFactor(eg int) int {
	if eg == 0 {
		return maxScaleFactor
	}
	strong := white
	if eg < 0 {
		strong = black
	}
	weak := strong ^ 1

	if e.counts[white][bishop] == 1 && e.counts[black][bishop] == 1 {
		wLight := e.pieces[white][bishop]&lightSquares != 0
		bLight := e.pieces[black][bishop]&lightSquares != 0
		if wLight != bLight {
			others := e.counts[white][knight] + e.counts[white][rook] + e.counts[white][queen] +
				e.counts[black][knight] + e.counts[black][rook] + e.counts[black][queen]
			if others == 0 {
				return oppositeBishopScaling[0]
			}
			return oppositeBishopScaling[1]
		}
	}

	if e.counts[strong][pawn] == 0 {
		adv := (e.npMat[strong] - e.npMat[weak]) / egFactorPieceVals[knight]
		return pawnlessScaling[max(0, min(3, adv))]
	}
	return maxScaleFactor
}
