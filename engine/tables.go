package engine

// Tuned evaluation constants. Everything in this file is data: the tables were
// fitted against game results and should be edited by retuning, not by hand.

// Game-phase material weights for the midgame/endgame taper. The phase factor
// is computed from non-pawn material only and rescaled into [0, egFactorRes].
var egFactorPieceVals = [5]int{33, 370, 373, 675, 1574}

const (
	egFactorAlpha = 2210
	egFactorBeta  = 6350
	egFactorRes   = 1000
)

// Material values, [phase][pieceType] for P, N, B, R, Q.
var pieceValues = [2][5]int{
	{100, 396, 438, 681, 1349},
	{134, 407, 451, 746, 1441},
}

// KnownWin is a score threshold for technically won endgames; TBWin marks
// positions a tablebase would call won.
var (
	KnownWin = pieceValues[EG][pawn] * 75
	TBWin    = pieceValues[EG][pawn] * 125
)

// Piece-square tables, [phase][pieceType][32]. Each table covers the a-d
// files of the board from the eighth rank down; the e-h files are mirrored.
var pieceSquareTable = [2][6][32]int{
	// Midgame
	{
		{ // Pawns
			0, 0, 0, 0,
			18, 10, 28, 42,
			8, 15, 30, 35,
			-2, 5, 2, 16,
			-12, -4, 2, 9,
			-10, -1, 0, 2,
			-6, 6, -1, 0,
			0, 0, 0, 0,
		},
		{ // Knights
			-128, -44, -37, -32,
			-26, -16, -1, 14,
			-5, 7, 17, 32,
			12, 10, 26, 30,
			5, 10, 18, 22,
			-13, 6, 6, 16,
			-17, -10, -6, 3,
			-50, -16, -11, -8,
		},
		{ // Bishops
			-16, -20, -15, -15,
			-20, -15, -10, -8,
			10, 5, 1, 2,
			0, 12, 5, 15,
			5, 6, 6, 16,
			1, 10, -3, 8,
			5, 3, 10, 2,
			-10, 3, -5, -2,
		},
		{ // Rooks
			-5, 0, 0, 0,
			5, 10, 10, 10,
			-5, 0, 0, 0,
			-5, 0, 0, 0,
			-5, 0, 0, 0,
			-5, 0, 0, 0,
			-5, 0, 0, 0,
			-5, 0, 0, 0,
		},
		{ // Queens
			-25, -21, -10, -5,
			-13, -24, -9, -8,
			-8, 0, 0, 2,
			-5, -3, -3, -6,
			-3, 0, -3, -6,
			-6, 5, -1, -2,
			-10, 2, 4, 2,
			-16, -16, -10, -2,
		},
		{ // Kings
			-37, -32, -34, -45,
			-34, -28, -32, -38,
			-32, -24, -28, -30,
			-31, -27, -30, -31,
			-35, -20, -32, -32,
			-9, 20, -17, -23,
			35, 52, 9, -14,
			34, 59, 21, -10,
		},
	},
	// Endgame
	{
		{ // Pawns
			0, 0, 0, 0,
			28, 28, 30, 30,
			26, 26, 20, 20,
			8, 8, 2, 2,
			-5, -3, -2, -2,
			-12, -3, 0, 0,
			-12, -3, 2, 2,
			0, 0, 0, 0,
		},
		{ // Knights
			-65, -27, -18, -7,
			-10, 0, 6, 10,
			0, 5, 13, 18,
			4, 11, 18, 25,
			0, 9, 16, 24,
			-7, 3, 7, 17,
			-10, 0, -3, 6,
			-31, -14, -8, 0,
		},
		{ // Bishops
			-12, -10, -7, -4,
			-8, -7, 0, 0,
			-2, 2, 0, 1,
			-3, 2, 3, 1,
			-3, 0, 2, 2,
			-5, -1, 0, 2,
			-8, -6, -3, -2,
			-13, -12, 0, -2,
		},
		{ // Rooks
			0, 0, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
		},
		{ // Queens
			-14, -5, -1, -1,
			-6, 5, 10, 16,
			-2, 13, 18, 22,
			0, 16, 20, 26,
			0, 16, 20, 24,
			-4, 4, 8, 10,
			-19, -14, -12, -8,
			-26, -23, -23, -18,
		},
		{ // Kings
			-68, -18, -14, -7,
			-12, 20, 28, 28,
			7, 34, 40, 42,
			-8, 25, 34, 36,
			-13, 14, 24, 27,
			-20, -2, 10, 14,
			-26, -7, 4, 6,
			-64, -36, -20, -17,
		},
	},
}

// Material terms
const (
	bishopPairValue = 56
	tempoValue      = 21
)

// Pairwise material imbalance, [phase][ownPieceType][oppPieceType]. Only the
// sub-diagonal half is populated; each unordered pair is counted once.
var ownOppImbalance = [2][5][5]int{
	{
		//       Opponent's
		//    P    N    B    R   Q
		{0},                   // Own pawns
		{2, 0},                // Own knights
		{-1, -3, 0},           // Own bishops
		{-5, -5, -16, 0},      // Own rooks
		{11, -10, -8, -17, 0}, // Own queens
	},
	{
		{0},
		{6, 0},
		{5, 6, 0},
		{1, -15, -21, 0},
		{13, 0, 7, 27, 0},
	},
}

// Bonus per knight per rammed pawn pair beyond the closed-position threshold.
var knightClosedBonus = [2]int{1, 4}

// Mobility bonus by piece type and reachable-square count, [phase][N..Q,K][28].
// The king row is carried with the fitted data but the mobility pass skips
// kings.
var mobilityTable = [2][5][28]int{
	// Midgame
	{
		{ // Knights
			-60, -9, 12, 23, 30, 34, 37, 40, 46},
		{ // Bishops
			-46, -17, 0, 10, 18, 22, 25, 29, 31, 33, 39, 43, 49, 53},
		{ // Rooks
			-97, -55, -18, -6, -2, 3, 7, 11, 15, 19, 22, 25, 27, 29, 32},
		{ // Queens
			-98, -80, -60, -37, -26, -17, -11, -8, -5, -3, -1, 2, 5, 7,
			10, 12, 15, 17, 19, 21, 23, 25, 26, 27, 29, 30, 31, 32},
		{ // Kings
			-20, 14, 25, 16, 11, 6, -2, -6, -5},
	},
	// Endgame
	{
		{ // Knights
			-98, -49, -4, 8, 18, 26, 30, 32, 33},
		{ // Bishops
			-98, -53, -20, 3, 12, 22, 26, 31, 35, 38, 42, 45, 47, 48},
		{ // Rooks
			-102, -63, -4, 25, 36, 48, 55, 61, 67, 72, 77, 81, 86, 90, 94},
		{ // Queens
			-105, -82, -66, -44, -29, -20, -11, -2, 4, 10, 15, 18, 20, 23,
			25, 27, 29, 31, 33, 35, 37, 39, 41, 43, 45, 47, 49, 51},
		{ // Kings
			-50, -14, 0, 17, 18, 13, 18, 17, 6},
	},
}

// Space: pawn-free squares on the home half that sit behind an own pawn or
// block an enemy pawn, split by center files (d/e) against the rest.
var spaceBonus = [2][2]int{
	{12, 37}, // behind own pawn
	{0, 10},  // in front of enemy pawn
}

// Center control, per attacked extended-center square, with an extra bonus
// on top for the four central squares.
var (
	extendedCenterVal = E(2, 0)
	centerBonus       = E(4, 0)
)

// King-pawn tropism: endgame weight for the king standing nearer the pawns.
const kingTropismValue = 17

// King safety: pawn shield values by file category and pawn rank. The file
// categories are edge (a/h), knight (b/g), bishop (c/f) and center (d/e)
// files; the first rank slot is the penalty for a missing shield pawn.
var pawnShieldValue = [4][8]int{
	{-15, 22, 25, 11, 6, 7, 3, 0},  // open h file, h2, h3, ...
	{-20, 39, 24, 0, -6, 2, 2, 0},  // g/b file
	{-17, 38, 2, -6, -5, -3, 3, 0}, // f/c file
	{-6, 14, 8, 5, -5, -10, -5, 0}, // d/e file
}

// Pawn storm values, [storm type][file category][rank of storming pawn].
// Storm types: file open in front of the storming pawn, storming pawn blocked
// by a defending pawn, and unblocked storming pawn. Rank 1 of the open table
// doubles as the no-opposing-pawn penalty.
var pawnStormValue = [3][4][8]int{
	// Open file
	{
		{14, -24, 35, 21, 15, 0, 0, 0},
		{17, -23, 56, 16, 9, 0, 0, 0},
		{10, 15, 53, 27, 19, 0, 0, 0},
		{11, 0, 30, 19, 14, 0, 0, 0},
	},
	// Blocked pawn
	{
		{0, 0, 26, 1, 0, 0, 0, 0},
		{0, 0, 62, 3, 1, 0, 0, 0},
		{0, 0, 66, 4, 0, 0, 0, 0},
		{0, 0, 57, 11, 3, 0, 0, 0},
	},
	// Non-blocked pawn
	{
		{0, -2, 26, 16, 3, 0, 0, 0},
		{0, -8, 28, 17, 12, 0, 0, 0},
		{0, -1, 37, 21, 11, 0, 0, 0},
		{0, -3, 10, 22, 7, 0, 0, 0},
	},
}

// Penalty when the defending king hides behind an opposing storming pawn.
const pawnStormShieldingKing = -139

// King safety attack-unit weights and the unit-to-centipawn conversion.
const (
	ksArrayFactor         = 128
	ksValueCeiling        = 650
	ksPawnFactor          = 10
	kingPressure          = 3
	ksKingPressureFactor  = 24
	kingDefenselessSquare = 24
	ksNoKnightDefender    = 15
	ksNoBishopDefender    = 15
	ksBishopPressure      = 8
	ksNoQueen             = -44
	ksBase                = -18
)

// Attack units per attacking piece type (N, B, R, Q) and per attacked square
// in the king neighborhood, plus bonus units per safe check available.
var (
	kingThreatMultiplier = [4]int{8, 5, 7, 3}
	kingThreatSquare     = [4]int{8, 10, 7, 10}
	safeCheckBonus       = [4]int{56, 25, 65, 53}
)

// Minor pieces
var (
	bishopPawnColorPenalty       = E(-8, -6)
	bishopRammedPawnColorPenalty = E(-3, -9)
	shieldedMinorBonus           = E(13, 0)

	knightOutpostBonus                 = E(29, 23)
	knightOutpostPawnDefBonus          = E(23, 9)
	knightPotentialOutpostBonus        = E(9, 14)
	knightPotentialOutpostPawnDefBonus = E(14, 12)
	bishopOutpostBonus                 = E(27, 18)
	bishopOutpostPawnDefBonus          = E(26, 14)
	bishopPotentialOutpostBonus        = E(6, 12)
	bishopPotentialOutpostPawnDefBonus = E(17, 7)

	bishopFianchettoBonus = E(26, 0)
)

// Rooks
var (
	rookOpenFileBonus     = E(37, 11)
	rookSemiopenFileBonus = E(22, 1)
	rookPawnRankThreat    = E(7, 14)
)

// Threats
var (
	undefendedPawn   = E(-1, -17)
	undefendedMinor  = E(-21, -40)
	pawnPieceThreat  = E(-75, -31)
	minorRookThreat  = E(-71, -20)
	minorQueenThreat = E(-71, -33)
	rookQueenThreat  = E(-78, -34)

	loosePawn  = E(-14, -2)
	looseMinor = E(-15, -6)
)

// Pawn structure
var (
	passerBonus = [8]Score{
		E(0, 0), E(1, 5), E(1, 5), E(10, 18),
		E(30, 27), E(60, 54), E(114, 118), E(0, 0),
	}
	passerFileBonus = [8]Score{
		E(15, 17), E(8, 11), E(-8, 1), E(-12, -7),
		E(-12, -7), E(-8, 1), E(8, 11), E(15, 17),
	}
	freePromotionBonus       = E(8, 24)
	freeStopBonus            = E(6, 11)
	fullyDefendedPasserBonus = E(10, 14)
	defendedPasserBonus      = E(9, 9)
	ownKingDist              = E(0, 3)
	oppKingDist              = E(0, 7)

	doubledPenalty          = E(-3, -20)
	isolatedPenalty         = E(-15, -8)
	isolatedSemiopenPenalty = E(-8, -13)
	backwardPenalty         = E(-9, -7)
	backwardSemiopenPenalty = E(-20, -12)
	undefendedPawnPenalty   = E(-6, -2)

	pawnPhalanxBonus = [8]Score{
		E(0, 0), E(5, 2), E(5, 2), E(12, 9),
		E(29, 22), E(54, 44), E(75, 74), E(0, 0),
	}
	pawnConnectedBonus = [8]Score{
		E(0, 0), E(0, 0), E(14, 5), E(7, 6),
		E(16, 12), E(37, 32), E(68, 62), E(0, 0),
	}
)

// Endgame win probability adjustment
const (
	pawnAsymmetryBonus          = 3
	pawnCountBonus              = 5
	kingOppositionDistanceBonus = 2
	endgameBase                 = -38
)

// Scale factors for drawish endgames. The endgame term is multiplied by the
// selected factor over maxScaleFactor before tapering.
const maxScaleFactor = 32

var (
	oppositeBishopScaling = [2]int{13, 29}
	pawnlessScaling       = [4]int{1, 4, 8, 23}
)
