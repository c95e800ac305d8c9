package engine

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// kingSafety prices side att's attack against the enemy king in mg
// centipawns. Attack units accumulate from attacker presence and coverage in
// the king neighborhood, defenseless squares, available safe checks and the
// state of the defending pawn cover; the total converts through a quadratic
// ramp capped at ksValueCeiling.
func (e *Eval) kingSafety(att, pressureMg int) int {
	def := att ^ 1
	ksq := e.kingSq[def]
	zone := e.kingZone[def]

	units := ksBase
	for pt := knight; pt <= queen; pt++ {
		units += kingThreatMultiplier[pt-1] * e.ksAttackers[att][pt-1]
		units += kingThreatSquare[pt-1] * bits.OnesCount64(e.ei.attackMaps[att][pt]&zone)
	}

	// Attacked neighborhood squares no piece but the king defends.
	cover := e.ei.attackMaps[def][pawn]
	for pt := knight; pt <= queen; pt++ {
		cover |= e.ei.attackMaps[def][pt]
	}
	units += kingDefenselessSquare * bits.OnesCount64(zone&e.ei.fullAttackMaps[att]&^cover)

	units -= e.pawnCover(def) * ksPawnFactor / 100

	// Safe checks: checking squares the attacker reaches and the defender
	// does not cover.
	safe := ^e.allPieces[att] &^ e.ei.fullAttackMaps[def]
	rookRays := dragontoothmg.CalculateRookMoveBitboard(uint8(ksq), e.occupied)
	bishopRays := dragontoothmg.CalculateBishopMoveBitboard(uint8(ksq), e.occupied)
	units += safeCheckBonus[knight-1] * bits.OnesCount64(knightAttacks[ksq]&safe&e.ei.attackMaps[att][knight])
	units += safeCheckBonus[bishop-1] * bits.OnesCount64(bishopRays&safe&e.ei.attackMaps[att][bishop])
	units += safeCheckBonus[rook-1] * bits.OnesCount64(rookRays&safe&e.ei.attackMaps[att][rook])
	units += safeCheckBonus[queen-1] * bits.OnesCount64((rookRays|bishopRays)&safe&e.ei.attackMaps[att][queen])

	if e.ei.attackMaps[def][knight]&zone == 0 {
		units += ksNoKnightDefender
	}
	if e.ei.attackMaps[def][bishop]&zone == 0 {
		units += ksNoBishopDefender
	}
	if e.ei.attackMaps[att][bishop]&zone != 0 {
		units += ksBishopPressure
	}
	if e.counts[att][queen] == 0 {
		units += ksNoQueen
	}

	// Sustained pressure: a material or positional mg edge keeps the attack
	// alive.
	units += kingPressure * pressureMg / ksKingPressureFactor

	if units <= 0 {
		return 0
	}
	v := min(units*units/ksArrayFactor, ksValueCeiling)
	return v * kingSafetyScale / 100
}

// pawnCover scores the defending king's pawn shelter in centipawns, higher
// meaning safer. It reads the king file and its neighbors, crediting the
// nearest own shield pawn ahead of the king and debiting the nearest enemy
// storm pawn, classified by whether its file is open for it or it stands
// blocked.
func (e *Eval) pawnCover(def int) int {
	att := def ^ 1
	ksq := e.kingSq[def]
	kf := fileOf(ksq)
	kr := relativeRank(def, ksq)
	own := e.pieces[def][pawn]
	opp := e.pieces[att][pawn]

	kingStop := ksq + 8
	if def == black {
		kingStop = ksq - 8
	}

	cover := 0
	for f := max(0, kf-1); f <= min(7, kf+1); f++ {
		cat := min(f, 7-f)

		shieldRank := 8
		for p := own & fileMasks[f]; p != 0; p &= p - 1 {
			r := relativeRank(def, bits.TrailingZeros64(p))
			if r > kr && r < shieldRank {
				shieldRank = r
			}
		}
		if shieldRank < 8 {
			cover += pawnShieldValue[cat][shieldRank]
		} else {
			cover += pawnShieldValue[cat][0]
		}

		stormRank, stormSq := 8, -1
		for p := opp & fileMasks[f]; p != 0; p &= p - 1 {
			psq := bits.TrailingZeros64(p)
			r := relativeRank(def, psq)
			if r > kr && r < stormRank {
				stormRank, stormSq = r, psq
			}
		}
		if stormRank == 8 {
			cover -= pawnStormValue[0][cat][1]
			continue
		}
		typ := 2
		if shieldRank == 8 {
			typ = 0
		} else if e.ei.rammedPawns[att]&squareBB(stormSq) != 0 {
			typ = 1
		}
		cover -= pawnStormValue[typ][cat][stormRank]
		if stormSq == kingStop {
			cover -= pawnStormShieldingKing
		}
	}
	return cover
}
