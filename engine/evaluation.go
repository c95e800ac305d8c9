package engine

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// Tuning hooks, in percent of the fitted values. 100 is neutral.
var (
	materialScale   = 100
	kingSafetyScale = 100
)

func SetMaterialScale(pct int)   { materialScale = pct }
func SetKingSafetyScale(pct int) { kingSafetyScale = pct }

// Eval carries the per-call working state of one static evaluation. A zero
// Eval is ready to use; nothing in it survives the call, so evaluations are
// safe to run concurrently on separate Eval values.
type Eval struct {
	ei        EvalInfo
	pieces    [2][6]uint64
	allPieces [2]uint64
	counts    [2][6]int
	npMat     [2]int
	kingSq    [2]int
	kingZone  [2]uint64
	occupied  uint64

	sideToMove int

	// Attacking pieces per side and type (N..Q) with attacks into the enemy
	// king neighborhood, filled by evalPieces for the king safety pass.
	ksAttackers [2][4]int

	trace *EvalTrace
}

// Evaluate statically scores the position in centipawns from the side to
// move's point of view.
func Evaluate(b *dragontoothmg.Board) int {
	var e Eval
	return e.evaluate(b)
}

// EvaluateDebug scores the position and returns a per-term breakdown.
func EvaluateDebug(b *dragontoothmg.Board) (int, *EvalTrace) {
	e := Eval{trace: &EvalTrace{}}
	v := e.evaluate(b)
	e.trace.Total = v
	return v, e.trace
}

func (e *Eval) load(b *dragontoothmg.Board) {
	for side, bb := range [2]*dragontoothmg.Bitboards{&b.White, &b.Black} {
		e.pieces[side][pawn] = bb.Pawns
		e.pieces[side][knight] = bb.Knights
		e.pieces[side][bishop] = bb.Bishops
		e.pieces[side][rook] = bb.Rooks
		e.pieces[side][queen] = bb.Queens
		e.pieces[side][king] = bb.Kings
		e.allPieces[side] = bb.All

		for pt := pawn; pt <= king; pt++ {
			e.counts[side][pt] = bits.OnesCount64(e.pieces[side][pt])
		}
		e.kingSq[side] = bits.TrailingZeros64(bb.Kings)
		e.kingZone[side] = kingAttacks[e.kingSq[side]] | bb.Kings

		np := 0
		for pt := knight; pt <= queen; pt++ {
			np += egFactorPieceVals[pt] * e.counts[side][pt]
		}
		e.npMat[side] = np
	}
	e.occupied = e.allPieces[white] | e.allPieces[black]

	e.sideToMove = black
	if b.Wtomove {
		e.sideToMove = white
	}
}

func (e *Eval) evaluate(b *dragontoothmg.Board) int {
	e.load(b)
	e.initEvalInfo()

	if v, ok := e.knownEndgame(); ok {
		if e.sideToMove == black {
			v = -v
		}
		return v
	}

	score := EvalZero
	prev := score

	score += e.materialScore()
	if e.trace != nil {
		e.trace.Material = score - prev + EvalZero
		prev = score
	}

	score += e.psqtScore(white) - e.psqtScore(black)
	if e.trace != nil {
		e.trace.PieceSquares = score - prev + EvalZero
		prev = score
	}

	score += e.evalPieces(white) - e.evalPieces(black)
	if e.trace != nil {
		e.trace.Pieces = score - prev + EvalZero
		prev = score
	}

	score += e.threats(white) - e.threats(black)
	if e.trace != nil {
		e.trace.Threats = score - prev + EvalZero
		prev = score
	}

	score += e.pawnStructure(white) - e.pawnStructure(black)
	score += e.kingPawnTropism()
	if e.trace != nil {
		e.trace.Pawns = score - prev + EvalZero
	}

	// King safety is mg-only. Each side's attack is priced against the
	// defender, with the current mg balance feeding the sustained-pressure
	// term for the attacker.
	mgDiff := score.Mg()
	wAttack := e.kingSafety(white, max(0, mgDiff))
	bAttack := e.kingSafety(black, max(0, -mgDiff))
	score += E(wAttack, 0)
	score -= E(bAttack, 0)
	if e.trace != nil {
		e.trace.KingSafety = [2]int{wAttack, bAttack}
	}

	if e.sideToMove == white {
		score += E(tempoValue, 0)
	} else {
		score -= E(tempoValue, 0)
	}

	factor := egFactor(e.npMat[white] + e.npMat[black])
	mg := score.Mg()
	eg := e.adjustEndgame(score.Eg())
	scale := e.scaleFactor(eg)
	eg = eg * scale / maxScaleFactor
	if e.trace != nil {
		e.trace.Phase = factor
		e.trace.Scale = scale
		e.trace.Mg = mg
		e.trace.Eg = eg
	}

	v := (mg*factor + eg*(egFactorRes-factor)) / egFactorRes
	if e.sideToMove == black {
		v = -v
	}
	return v
}

// materialScore prices raw material, the bishop pair and the pairwise
// material imbalance, scaled by the material tuning hook. White-positive.
func (e *Eval) materialScore() Score {
	acc := EvalZero
	for side := white; side <= black; side++ {
		var s Score
		for pt := pawn; pt <= queen; pt++ {
			s += E(pieceValues[MG][pt], pieceValues[EG][pt]).times(e.counts[side][pt])
		}
		if e.counts[side][bishop] >= 2 {
			s += E(bishopPairValue, bishopPairValue)
		}
		s += e.imbalance(side)
		if side == white {
			acc += s
		} else {
			acc -= s
		}
	}
	return E(acc.Mg()*materialScale/100, acc.Eg()*materialScale/100)
}

// imbalance sums the pairwise own-vs-opponent piece terms. Only unordered
// pairs below the diagonal are populated, so each pairing is counted once.
func (e *Eval) imbalance(side int) Score {
	them := side ^ 1
	var s Score
	for pt := knight; pt <= queen; pt++ {
		for opp := pawn; opp < pt; opp++ {
			n := e.counts[side][pt] * e.counts[them][opp]
			if n != 0 {
				s += E(ownOppImbalance[MG][pt][opp], ownOppImbalance[EG][pt][opp]).times(n)
			}
		}
	}
	return s
}

func (e *Eval) psqtScore(side int) Score {
	var s Score
	for pt := pawn; pt <= king; pt++ {
		for x := e.pieces[side][pt]; x != 0; x &= x - 1 {
			sq := bits.TrailingZeros64(x)
			s += E(psqt[side][MG][pt][sq], psqt[side][EG][pt][sq])
		}
	}
	return s
}

// evalPieces walks each non-pawn piece once, scoring mobility and the
// piece-specific positional terms, and records which pieces bear on the enemy
// king neighborhood for the king safety pass.
func (e *Eval) evalPieces(side int) Score {
	them := side ^ 1
	var s Score

	ownPawns := e.pieces[side][pawn]
	oppPawns := e.pieces[them][pawn]
	area := ^(e.allPieces[side] | e.ei.attackMaps[them][pawn])
	oppKingZone := e.kingZone[them]

	for x := e.pieces[side][knight]; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		att := knightAttacks[sq]
		s += e.mobility(knight, att&area)
		if att&oppKingZone != 0 {
			e.ksAttackers[side][knight-1]++
		}
		s += e.outpost(side, sq, knightOutpostBonus, knightOutpostPawnDefBonus,
			knightPotentialOutpostBonus, knightPotentialOutpostPawnDefBonus)
		if e.pawnShielded(side, sq) {
			s += shieldedMinorBonus
		}
	}
	// Knights gain in positions locked by rammed pawns.
	s += E(knightClosedBonus[MG], knightClosedBonus[EG]).
		times(e.counts[side][knight] * bits.OnesCount64(e.ei.rammedPawns[side]))

	for x := e.pieces[side][bishop]; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		att := dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), e.occupied)
		s += e.mobility(bishop, att&area)
		if att&oppKingZone != 0 {
			e.ksAttackers[side][bishop-1]++
		}
		s += e.outpost(side, sq, bishopOutpostBonus, bishopOutpostPawnDefBonus,
			bishopPotentialOutpostBonus, bishopPotentialOutpostPawnDefBonus)
		if e.pawnShielded(side, sq) {
			s += shieldedMinorBonus
		}

		sameColor := lightSquares
		if squareBB(sq)&darkSquares != 0 {
			sameColor = darkSquares
		}
		s += bishopPawnColorPenalty.times(bits.OnesCount64(ownPawns & sameColor))
		s += bishopRammedPawnColorPenalty.times(bits.OnesCount64(e.ei.rammedPawns[side] & sameColor))

		for i, fsq := range fianchettoSquares[side] {
			if sq == fsq && ownPawns&squareBB(fianchettoBlocker[side][i]) == 0 {
				s += bishopFianchettoBonus
			}
		}
	}

	for x := e.pieces[side][rook]; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		att := dragontoothmg.CalculateRookMoveBitboard(uint8(sq), e.occupied)
		s += e.mobility(rook, att&area)
		if att&oppKingZone != 0 {
			e.ksAttackers[side][rook-1]++
		}

		f := fileOf(sq)
		switch {
		case fileMasks[f]&(ownPawns|oppPawns) == 0:
			s += rookOpenFileBonus
		case fileMasks[f]&ownPawns == 0:
			s += rookSemiopenFileBonus
			for p := oppPawns & fileMasks[f]; p != 0; p &= p - 1 {
				psq := bits.TrailingZeros64(p)
				s += rookPawnRankThreat.times(max(0, relativeRank(them, psq)-1))
			}
		}
	}

	for x := e.pieces[side][queen]; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		att := dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), e.occupied) |
			dragontoothmg.CalculateRookMoveBitboard(uint8(sq), e.occupied)
		s += e.mobility(queen, att&area)
		if att&oppKingZone != 0 {
			e.ksAttackers[side][queen-1]++
		}
	}

	s += e.centerControl(side)
	s += e.space(side)

	return s
}

// centerControl pays for every extended-center square side attacks, with an
// extra bonus for the four central squares.
func (e *Eval) centerControl(side int) Score {
	att := e.ei.fullAttackMaps[side]
	s := extendedCenterVal.times(bits.OnesCount64(att & extendedCenterMask))
	s += centerBonus.times(bits.OnesCount64(att & centerMask))
	return s
}

// space scores pawn-free squares on relative ranks 2 to 4 that stand safe
// from enemy pawn attack. Squares tucked behind an own pawn count the most,
// squares blocking an enemy pawn's advance less, center files over the rest.
func (e *Eval) space(side int) Score {
	them := side ^ 1
	own := e.pieces[side][pawn]
	opp := e.pieces[them][pawn]

	area := rankMasks[1] | rankMasks[2] | rankMasks[3]
	if side == black {
		area = rankMasks[4] | rankMasks[5] | rankMasks[6]
	}
	area &^= own | opp | e.ei.attackMaps[them][pawn]

	behindOwn := area & rearFill(side, own)
	frontOpp := area & rearFill(side, opp) &^ behindOwn

	center := fileMasks[3] | fileMasks[4]
	mg := spaceBonus[0][0]*bits.OnesCount64(behindOwn&^center) +
		spaceBonus[0][1]*bits.OnesCount64(behindOwn&center) +
		spaceBonus[1][0]*bits.OnesCount64(frontOpp&^center) +
		spaceBonus[1][1]*bits.OnesCount64(frontOpp&center)
	return E(mg, 0)
}

// rearFill smears pawns toward side's back rank, marking every square an own
// advance would have to have passed through.
func rearFill(side int, pawns uint64) uint64 {
	if side == white {
		pawns >>= 8
		pawns |= pawns >> 8
		pawns |= pawns >> 16
		pawns |= pawns >> 32
		return pawns
	}
	pawns <<= 8
	pawns |= pawns << 8
	pawns |= pawns << 16
	pawns |= pawns << 32
	return pawns
}

func (e *Eval) mobility(pt int, reach uint64) Score {
	n := bits.OnesCount64(reach)
	return E(mobilityTable[MG][pt-1][n], mobilityTable[EG][pt-1][n])
}

// outpost scores a minor piece sitting in the opponent's half where no enemy
// pawn can ever evict it (full outpost) or where it is merely safe from pawn
// attack for now (potential outpost).
func (e *Eval) outpost(side, sq int, full, fullDef, pot, potDef Score) Score {
	if squareBB(sq)&outpostZone[side] == 0 {
		return 0
	}
	them := side ^ 1
	sentries := passedPawnMask[side][sq] &^ frontSpan[side][sq] & e.pieces[them][pawn]
	defended := squareBB(sq)&pawnAttacks(side, e.pieces[side][pawn]) != 0

	if sentries == 0 {
		if defended {
			return full + fullDef
		}
		return full
	}
	if squareBB(sq)&pawnAttacks(them, e.pieces[them][pawn]) == 0 {
		if defended {
			return pot + potDef
		}
		return pot
	}
	return 0
}

func (e *Eval) pawnShielded(side, sq int) bool {
	fsq := sq + 8
	if side == black {
		fsq = sq - 8
	}
	return fsq >= 0 && fsq < 64 && e.pieces[side][pawn]&squareBB(fsq) != 0
}

// threats prices side's pieces that stand attacked, hanging or loose. All
// terms are penalties against side.
func (e *Eval) threats(side int) Score {
	them := side ^ 1
	var s Score

	ownPawns := e.pieces[side][pawn]
	minors := e.pieces[side][knight] | e.pieces[side][bishop]
	defended := e.ei.fullAttackMaps[side]
	attacked := e.ei.fullAttackMaps[them]

	s += undefendedPawn.times(bits.OnesCount64(ownPawns & attacked &^ defended))
	s += undefendedMinor.times(bits.OnesCount64(minors & attacked &^ defended))

	pawnAtt := e.ei.attackMaps[them][pawn]
	s += pawnPieceThreat.times(bits.OnesCount64((e.allPieces[side] &^ ownPawns) & pawnAtt))

	minorAtt := e.ei.attackMaps[them][knight] | e.ei.attackMaps[them][bishop]
	s += minorRookThreat.times(bits.OnesCount64(e.pieces[side][rook] & minorAtt))
	s += minorQueenThreat.times(bits.OnesCount64(e.pieces[side][queen] & minorAtt))
	s += rookQueenThreat.times(bits.OnesCount64(e.pieces[side][queen] & e.ei.attackMaps[them][rook]))

	loose := ^attacked &^ defended
	s += loosePawn.times(bits.OnesCount64(ownPawns & loose))
	s += looseMinor.times(bits.OnesCount64(minors & loose))

	return s
}
