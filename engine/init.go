package engine

// Side and piece-type indices used throughout the evaluator. Piece bitboards
// copied from the board are indexed the same way.
const (
	white = 0
	black = 1
)

const (
	pawn = iota
	knight
	bishop
	rook
	queen
	king
)

// Phase indices
const (
	MG = 0
	EG = 1
)

var fileMasks = [8]uint64{
	0x0101010101010101, 0x0202020202020202, 0x0404040404040404, 0x0808080808080808,
	0x1010101010101010, 0x2020202020202020, 0x4040404040404040, 0x8080808080808080,
}

var rankMasks = [8]uint64{
	0xFF, 0xFF00, 0xFF0000, 0xFF000000,
	0xFF00000000, 0xFF0000000000, 0xFF000000000000, 0xFF00000000000000,
}

const (
	fileAMask uint64 = 0x0101010101010101
	fileHMask uint64 = 0x8080808080808080

	lightSquares uint64 = 0x55AA55AA55AA55AA
	darkSquares  uint64 = 0xAA55AA55AA55AA55

	// c3-f6 and the four central squares within it.
	extendedCenterMask uint64 = 0x00003C3C3C3C0000
	centerMask         uint64 = 0x0000001818000000
)

// Outpost zones: ranks 4-6 for white, 5-3 for black, edge files excluded.
var outpostZone = [2]uint64{
	0x00007e7e7e000000,
	0x0000007e7e7e0000,
}

// Fianchetto bishop homes and the long-diagonal square a friendly pawn must
// not block, per side.
var fianchettoSquares = [2][2]int{
	{9, 14},  // b2, g2
	{49, 54}, // b7, g7
}
var fianchettoBlocker = [2][2]int{
	{18, 21}, // c3, f3
	{42, 45}, // c6, f6
}

var centerManhattanDistance = [64]int{
	6, 5, 4, 3, 3, 4, 5, 6,
	5, 4, 3, 2, 2, 3, 4, 5,
	4, 3, 2, 1, 1, 2, 3, 4,
	3, 2, 1, 0, 0, 1, 2, 3,
	3, 2, 1, 0, 0, 1, 2, 3,
	4, 3, 2, 1, 1, 2, 3, 4,
	5, 4, 3, 2, 2, 3, 4, 5,
	6, 5, 4, 3, 3, 4, 5, 6,
}

// Derived lookup tables, populated by InitEvalTables and InitDistances.
var (
	psqt [2][2][6][64]int // [color][phase][pieceType][square]

	knightAttacks [64]uint64
	kingAttacks   [64]uint64

	adjacentFilesMask [8]uint64
	frontSpan         [2][64]uint64 // own file, strictly ahead
	passedPawnMask    [2][64]uint64 // own + adjacent files, strictly ahead

	manhattanDist [64][64]int
)

func squareBB(sq int) uint64 {
	return 1 << uint(sq)
}

// InitEvalTables expands the half-board piece-square tables into per-color
// full-board tables and builds the attack and pawn-span masks the evaluator
// indexes by square. Must run before the first Evaluate call; safe to call
// again (the tables are pure functions of the constants).
func InitEvalTables() {
	for pt := pawn; pt <= king; pt++ {
		for ph := MG; ph <= EG; ph++ {
			for sq := 0; sq < 64; sq++ {
				f := min(fileOf(sq), 7-fileOf(sq))
				psqt[white][ph][pt][sq] = pieceSquareTable[ph][pt][(7-rankOf(sq))*4+f]
				psqt[black][ph][pt][sq] = pieceSquareTable[ph][pt][rankOf(sq)*4+f]
			}
		}
	}

	for sq := 0; sq < 64; sq++ {
		b := squareBB(sq)

		e := (b &^ fileHMask) << 1
		w := (b &^ fileAMask) >> 1
		horiz := b | e | w
		kingAttacks[sq] = (horiz | horiz<<8 | horiz>>8) &^ b

		ee := (b &^ (fileMasks[6] | fileMasks[7])) << 2
		ww := (b &^ (fileMasks[0] | fileMasks[1])) >> 2
		knightAttacks[sq] = (e|w)<<16 | (e|w)>>16 | (ee|ww)<<8 | (ee|ww)>>8
	}

	for f := 0; f < 8; f++ {
		adjacentFilesMask[f] = 0
		if f > 0 {
			adjacentFilesMask[f] |= fileMasks[f-1]
		}
		if f < 7 {
			adjacentFilesMask[f] |= fileMasks[f+1]
		}
	}

	for sq := 0; sq < 64; sq++ {
		var ahead, behind uint64
		for r := rankOf(sq) + 1; r < 8; r++ {
			ahead |= rankMasks[r]
		}
		for r := 0; r < rankOf(sq); r++ {
			behind |= rankMasks[r]
		}
		f := fileOf(sq)
		frontSpan[white][sq] = fileMasks[f] & ahead
		frontSpan[black][sq] = fileMasks[f] & behind
		passedPawnMask[white][sq] = (fileMasks[f] | adjacentFilesMask[f]) & ahead
		passedPawnMask[black][sq] = (fileMasks[f] | adjacentFilesMask[f]) & behind
	}
}

// InitDistances builds the taxicab distance table used by the passed-pawn and
// endgame terms. Idempotent; must run before the first Evaluate call.
func InitDistances() {
	for a := 0; a < 64; a++ {
		for b := 0; b < 64; b++ {
			manhattanDist[a][b] = absInt(fileOf(a)-fileOf(b)) + absInt(rankOf(a)-rankOf(b))
		}
	}
}

func whitePawnAttacks(pawns uint64) uint64 {
	return (pawns&^fileAMask)<<7 | (pawns&^fileHMask)<<9
}

func blackPawnAttacks(pawns uint64) uint64 {
	return (pawns&^fileAMask)>>9 | (pawns&^fileHMask)>>7
}

func pawnAttacks(side int, pawns uint64) uint64 {
	if side == white {
		return whitePawnAttacks(pawns)
	}
	return blackPawnAttacks(pawns)
}
