package engine

import (
	"fmt"
	"strings"
)

// EvalTrace is the per-term breakdown produced by EvaluateDebug. The packed
// terms are white-positive and carry the accumulator bias, so Mg and Eg
// decode them directly.
type EvalTrace struct {
	Material     Score
	PieceSquares Score
	Pieces       Score
	Threats      Score
	Pawns        Score

	// King safety penalties in mg centipawns, indexed by attacking side.
	KingSafety [2]int

	Phase int // taper factor, egFactorRes is pure midgame
	Scale int // endgame scale factor out of maxScaleFactor
	Mg    int
	Eg    int
	Total int // side-to-move relative
}

func (tr *EvalTrace) String() string {
	var sb strings.Builder
	line := func(name string, s Score) {
		fmt.Fprintf(&sb, "%-14s mg %5d  eg %5d\n", name, s.Mg(), s.Eg())
	}
	line("material", tr.Material)
	line("piece squares", tr.PieceSquares)
	line("pieces", tr.Pieces)
	line("threats", tr.Threats)
	line("pawns", tr.Pawns)
	fmt.Fprintf(&sb, "%-14s white %d  black %d\n", "king attack", tr.KingSafety[white], tr.KingSafety[black])
	fmt.Fprintf(&sb, "phase %d/%d  scale %d/%d  mg %d  eg %d  total %d\n",
		tr.Phase, egFactorRes, tr.Scale, maxScaleFactor, tr.Mg, tr.Eg, tr.Total)
	return sb.String()
}
