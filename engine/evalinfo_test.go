package engine

import (
	"math/bits"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func makeEval(t *testing.T, fen string) *Eval {
	t.Helper()
	board := dragontoothmg.ParseFen(fen)
	e := &Eval{}
	e.load(&board)
	e.initEvalInfo()
	return e
}

func TestRammedPawnsAndOpenFiles(t *testing.T) {
	e := makeEval(t, "4k3/8/3p4/3P4/8/8/8/4K3 w - - 0 1")

	d5, d6 := squareBB(35), squareBB(43)
	if e.ei.rammedPawns[white] != d5 {
		t.Fatalf("white rammed pawns %x, want d5 only", e.ei.rammedPawns[white])
	}
	if e.ei.rammedPawns[black] != d6 {
		t.Fatalf("black rammed pawns %x, want d6 only", e.ei.rammedPawns[black])
	}

	if e.ei.openFiles&fileMasks[3] != 0 {
		t.Fatalf("d file should not be open")
	}
	if got := bits.OnesCount64(e.ei.openFiles); got != 56 {
		t.Fatalf("expected 7 open files, got %d squares", got)
	}

	c6, e6 := squareBB(42), squareBB(44)
	if e.ei.attackMaps[white][pawn] != c6|e6 {
		t.Fatalf("white pawn attacks %x, want c6 and e6", e.ei.attackMaps[white][pawn])
	}
}

func TestStartposAttackMaps(t *testing.T) {
	e := makeEval(t, dragontoothmg.Startpos)

	// Pawns cover the whole third rank.
	if e.ei.attackMaps[white][pawn] != rankMasks[2] {
		t.Fatalf("white pawn attacks %x, want rank 3", e.ei.attackMaps[white][pawn])
	}
	if e.ei.attackMaps[black][pawn] != rankMasks[5] {
		t.Fatalf("black pawn attacks %x, want rank 6", e.ei.attackMaps[black][pawn])
	}

	// d3 is hit by two pawns, a3 and h3 by a pawn and a knight.
	for _, sq := range []int{16, 19, 23} {
		if e.ei.doubleAttackMaps[white]&squareBB(sq) == 0 {
			t.Fatalf("square %d should be doubly attacked", sq)
		}
	}

	// Nothing reaches past the third rank from the start position.
	if e.ei.fullAttackMaps[white]&rankMasks[3] != 0 {
		t.Fatalf("white attacks reach rank 4: %x", e.ei.fullAttackMaps[white])
	}
	if e.ei.fullAttackMaps[black]&rankMasks[4] != 0 {
		t.Fatalf("black attacks reach rank 5: %x", e.ei.fullAttackMaps[black])
	}
}

func TestSliderAttacksRespectBlockers(t *testing.T) {
	// Rook a1 runs the open a file but stops at the a7 pawn.
	e := makeEval(t, "4k3/p7/8/8/8/8/8/R3K3 w - - 0 1")

	rook := e.ei.attackMaps[white][rook]
	if rook&squareBB(48) == 0 {
		t.Fatalf("rook should attack the a7 blocker")
	}
	if rook&squareBB(56) != 0 {
		t.Fatalf("rook attack passes through the a7 pawn")
	}
	if rook&squareBB(4) == 0 {
		t.Fatalf("rook should attack its own king square as a blocker")
	}
	if rook&squareBB(5) != 0 {
		t.Fatalf("rook attack passes through the king on e1")
	}
}
