package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestPawnCoverPrefersShelteredKing(t *testing.T) {
	sheltered := makeEval(t, "6k1/5ppp/8/8/8/8/5PPP/6K1 w - - 0 1")
	exposed := makeEval(t, "6k1/5ppp/8/8/4K3/8/8/8 w - - 0 1")

	cs := sheltered.pawnCover(white)
	ce := exposed.pawnCover(white)
	if cs <= ce {
		t.Fatalf("castled king cover %d should beat a bare king in the center %d", cs, ce)
	}
	if cs <= 0 {
		t.Fatalf("intact shield should score positive, got %d", cs)
	}
}

func TestKingSafetyChargesAttack(t *testing.T) {
	e := makeEval(t, "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4")
	e.evalPieces(white)
	e.evalPieces(black)

	v := e.kingSafety(white, 0)
	if v <= 0 {
		t.Fatalf("queen and bishop on f7 should register an attack, got %d", v)
	}
	if v > ksValueCeiling {
		t.Fatalf("attack value %d exceeds the ceiling %d", v, ksValueCeiling)
	}

	// More midgame pressure never weakens the attack.
	if vp := e.kingSafety(white, 240); vp < v {
		t.Fatalf("pressure decreased the attack value: %d -> %d", v, vp)
	}
}

func TestKingSafetyScaleHook(t *testing.T) {
	defer SetKingSafetyScale(100)

	e := makeEval(t, "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4")
	e.evalPieces(white)
	e.evalPieces(black)

	SetKingSafetyScale(100)
	full := e.kingSafety(white, 0)
	SetKingSafetyScale(50)
	half := e.kingSafety(white, 0)
	if half != full*50/100 {
		t.Fatalf("scale hook at 50%% gave %d, want %d", half, full*50/100)
	}
}

func TestQuietPositionNoAttack(t *testing.T) {
	e := makeEval(t, dragontoothmg.Startpos)
	e.evalPieces(white)
	e.evalPieces(black)
	if v := e.kingSafety(white, 0); v != 0 {
		t.Fatalf("startpos should carry no king attack, got %d", v)
	}
}
