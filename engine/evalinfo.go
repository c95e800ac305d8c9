package engine

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// EvalInfo holds the derived position features consumed by the scoring
// passes: per-piece-type attack maps, combined and double attack maps, rammed
// pawns and the open-file set. It is recomputed from scratch for every
// evaluation and never outlives the call.
type EvalInfo struct {
	attackMaps       [2][5]uint64 // pawn..queen
	fullAttackMaps   [2]uint64
	doubleAttackMaps [2]uint64
	rammedPawns      [2]uint64
	openFiles        uint64
}

func (ei *EvalInfo) clear() {
	*ei = EvalInfo{}
}

// initEvalInfo derives all attack bitboards for both sides. Pawn attacks come
// from shifts, knight and king attacks from the precomputed masks, and
// sliding attacks from the board library's occupancy-dependent generators.
func (e *Eval) initEvalInfo() {
	e.ei.clear()
	occ := e.allPieces[white] | e.allPieces[black]

	for side := white; side <= black; side++ {
		var nw, ne uint64
		if side == white {
			nw = (e.pieces[side][pawn] &^ fileAMask) << 7
			ne = (e.pieces[side][pawn] &^ fileHMask) << 9
		} else {
			nw = (e.pieces[side][pawn] &^ fileHMask) >> 7
			ne = (e.pieces[side][pawn] &^ fileAMask) >> 9
		}
		e.ei.attackMaps[side][pawn] = nw | ne
		double := nw & ne
		full := nw | ne

		for x := e.pieces[side][knight]; x != 0; x &= x - 1 {
			a := knightAttacks[bits.TrailingZeros64(x)]
			e.ei.attackMaps[side][knight] |= a
			double |= full & a
			full |= a
		}
		for x := e.pieces[side][bishop]; x != 0; x &= x - 1 {
			sq := bits.TrailingZeros64(x)
			a := dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), occ)
			e.ei.attackMaps[side][bishop] |= a
			double |= full & a
			full |= a
		}
		for x := e.pieces[side][rook]; x != 0; x &= x - 1 {
			sq := bits.TrailingZeros64(x)
			a := dragontoothmg.CalculateRookMoveBitboard(uint8(sq), occ)
			e.ei.attackMaps[side][rook] |= a
			double |= full & a
			full |= a
		}
		for x := e.pieces[side][queen]; x != 0; x &= x - 1 {
			sq := bits.TrailingZeros64(x)
			a := dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), occ) |
				dragontoothmg.CalculateRookMoveBitboard(uint8(sq), occ)
			e.ei.attackMaps[side][queen] |= a
			double |= full & a
			full |= a
		}

		a := kingAttacks[e.kingSq[side]]
		double |= full & a
		full |= a

		e.ei.fullAttackMaps[side] = full
		e.ei.doubleAttackMaps[side] = double
	}

	e.ei.rammedPawns[white] = e.pieces[white][pawn] & (e.pieces[black][pawn] >> 8)
	e.ei.rammedPawns[black] = e.pieces[black][pawn] & (e.pieces[white][pawn] << 8)

	allPawns := e.pieces[white][pawn] | e.pieces[black][pawn]
	for f := 0; f < 8; f++ {
		if allPawns&fileMasks[f] == 0 {
			e.ei.openFiles |= fileMasks[f]
		}
	}
}
