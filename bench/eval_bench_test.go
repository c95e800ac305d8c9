package bench

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"chess-eval/engine"
)

func init() {
	engine.InitEvalTables()
	engine.InitDistances()
}

func benchEvaluate(b *testing.B, fen string) {
	board := dragontoothmg.ParseFen(fen)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.Evaluate(&board)
	}
}

func BenchmarkEvaluate_Initial(b *testing.B) {
	benchEvaluate(b, dragontoothmg.Startpos)
}

func BenchmarkEvaluate_Kiwipete(b *testing.B) {
	benchEvaluate(b, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
}

func BenchmarkEvaluate_Middlegame(b *testing.B) {
	benchEvaluate(b, "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10")
}

func BenchmarkEvaluate_PawnEndgame(b *testing.B) {
	benchEvaluate(b, "8/8/1p6/p1p2kp1/P1P2p2/1P3P1P/4K1P1/8 b - - 0 1")
}

func BenchmarkTransTableAdd(b *testing.B) {
	tt := engine.NewTransTable(64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tt.Add(uint64(i)*0x9E3779B97F4A7C15+1, uint16(i), int16(i), engine.PVNode, int8(i&63))
	}
}

func BenchmarkTransTableGet(b *testing.B) {
	tt := engine.NewTransTable(64)
	const n = 1 << 16
	for i := 0; i < n; i++ {
		tt.Add(uint64(i)*0x9E3779B97F4A7C15+1, uint16(i), int16(i), engine.PVNode, 10)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tt.Get(uint64(i%n)*0x9E3779B97F4A7C15 + 1)
	}
}
