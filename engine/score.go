package engine

// Score packs a midgame and an endgame evaluation term into one 32-bit word,
// endgame in the high half and midgame in the low half. Terms are stored as
// plain two's complement halves; an evaluation accumulates terms on top of
// EvalZero, which biases each half by 2^15 so the running total can be summed
// with ordinary unsigned adds and no borrow crosses between the halves.
type Score uint32

// EvalZero is the zero point of an evaluation accumulator.
const EvalZero Score = 0x80008000

// E packs a midgame and an endgame term. Both must fit in a signed 16-bit
// half once accumulated.
func E(mg, eg int) Score {
	return Score(uint32(int32(eg))<<16 + uint32(int32(mg)))
}

// Mg unpacks the midgame half of an accumulated score (one that includes the
// EvalZero bias).
func (s Score) Mg() int {
	return int(s&0xffff) - 0x8000
}

// Eg unpacks the endgame half of an accumulated score.
func (s Score) Eg() int {
	return int(s>>16) - 0x8000
}

// times scales an unbiased term by a non-negative factor. Multiplication
// distributes over the packed halves because both wrap mod 2^16.
func (s Score) times(n int) Score {
	return Score(uint32(s) * uint32(n))
}

// egFactor maps total non-pawn material into [0, egFactorRes]: egFactorRes at
// egFactorBeta material or more (pure midgame), 0 at egFactorAlpha or less
// (pure endgame), linear in between.
func egFactor(npMaterial int) int {
	f := (npMaterial - egFactorAlpha) * egFactorRes / (egFactorBeta - egFactorAlpha)
	return max(0, min(egFactorRes, f))
}

// taperedEval interpolates the two halves of an accumulated score by the
// phase factor.
func taperedEval(s Score, factor int) int {
	return (s.Mg()*factor + s.Eg()*(egFactorRes-factor)) / egFactorRes
}
