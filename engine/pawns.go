package engine

import "math/bits"

// pawnStructure scores side's pawns: passers with their path and king
// distance terms, then the static structure faults and supports.
func (e *Eval) pawnStructure(side int) Score {
	them := side ^ 1
	var s Score

	own := e.pieces[side][pawn]
	opp := e.pieces[them][pawn]
	ownAtt := pawnAttacks(side, own)
	oppAtt := pawnAttacks(them, opp)

	for x := own; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		f := fileOf(sq)
		rr := relativeRank(side, sq)
		b := squareBB(sq)

		stop := sq + 8
		if side == black {
			stop = sq - 8
		}

		isolated := adjacentFilesMask[f]&own == 0
		doubled := frontSpan[side][sq]&own != 0
		semiopen := frontSpan[side][sq]&opp == 0
		connected := b&ownAtt != 0
		phalanx := (b&^fileHMask)<<1&own != 0

		passed := !doubled && passedPawnMask[side][sq]&opp == 0
		if passed {
			s += passerBonus[rr] + passerFileBonus[f]

			promoSq := f
			if side == white {
				promoSq = f + 56
			}
			path := frontSpan[side][sq]
			switch {
			case path&e.occupied == 0:
				s += freePromotionBonus
			case squareBB(stop)&e.occupied == 0 && squareBB(stop)&e.ei.fullAttackMaps[them] == 0:
				s += freeStopBonus
			}
			if path&^e.ei.fullAttackMaps[side] == 0 {
				s += fullyDefendedPasserBonus
			} else if squareBB(stop)&e.ei.fullAttackMaps[side] != 0 {
				s += defendedPasserBonus
			}
			s += oppKingDist.times(manhattanDist[promoSq][e.kingSq[them]])
			s -= ownKingDist.times(manhattanDist[promoSq][e.kingSq[side]])
		}

		if doubled {
			s += doubledPenalty
		}
		if isolated {
			s += isolatedPenalty
			if semiopen {
				s += isolatedSemiopenPenalty
			}
		} else if !passed {
			// Backward: every friendly pawn on a neighboring file stands
			// strictly ahead and an enemy pawn covers the stop square.
			beside := adjacentFilesMask[f] & rankMasks[rankOf(sq)]
			behindOrBeside := (passedPawnMask[them][sq] | beside) & adjacentFilesMask[f]
			if own&behindOrBeside == 0 && squareBB(stop)&oppAtt != 0 {
				s += backwardPenalty
				if semiopen {
					s += backwardSemiopenPenalty
				}
			} else if !connected && !phalanx {
				s += undefendedPawnPenalty
			}
		}

		if phalanx {
			s += pawnPhalanxBonus[rr]
		}
		if connected {
			s += pawnConnectedBonus[rr]
		}
	}
	return s
}

// kingPawnTropism credits the side whose king stands closer to the pawns,
// averaged over every pawn on the board. Endgame only.
func (e *Eval) kingPawnTropism() Score {
	pawns := e.pieces[white][pawn] | e.pieces[black][pawn]
	if pawns == 0 {
		return 0
	}
	var wd, bd, n int
	for x := pawns; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		wd += manhattanDist[e.kingSq[white]][sq]
		bd += manhattanDist[e.kingSq[black]][sq]
		n++
	}
	return E(0, kingTropismValue*(bd-wd)/n)
}
