package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"chess-eval/engine"
)

// A small built-in suite used when no FEN file is given.
var defaultFens = []string{
	dragontoothmg.Startpos,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"8/8/1p6/p1p2kp1/P1P2p2/1P3P1P/4K1P1/8 b - - 0 1",
	"r2q1rk1/ppp2ppp/2npbn2/2b1p3/2B1P3/2NP1N2/PPP2PPP/R1BQR1K1 w - - 6 8",
}

func main() {
	fenFile := flag.String("fens", "", "file with one FEN per line (empty = built-in suite)")
	repeat := flag.Int("repeat", 10000, "evaluations per position")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel evaluation workers")
	hashMB := flag.Int("hash", 64, "transposition cache size in MB")
	debugFen := flag.String("debug", "", "print the evaluation breakdown for one FEN and exit")
	profileMode := flag.String("profile", "", "write a profile: cpu or mem")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if *verbose {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	engine.InitEvalTables()
	engine.InitDistances()

	if *debugFen != "" {
		board := dragontoothmg.ParseFen(*debugFen)
		v, trace := engine.EvaluateDebug(&board)
		fmt.Print(trace)
		logger.Info().Int("score", v).Msg("static evaluation")
		return
	}

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		logger.Fatal().Str("profile", *profileMode).Msg("unknown profile mode")
	}

	fens := defaultFens
	if *fenFile != "" {
		var err error
		fens, err = readFens(*fenFile)
		if err != nil {
			logger.Fatal().Err(err).Str("file", *fenFile).Msg("load FEN suite")
		}
	}
	logger.Info().Int("positions", len(fens)).Int("repeat", *repeat).
		Int("workers", *workers).Msg("starting evaluation benchmark")

	tt := engine.NewTransTable(*hashMB)
	bar := progressbar.Default(int64(len(fens)), "evaluating")

	start := time.Now()
	var g errgroup.Group
	g.SetLimit(max(1, *workers))
	for _, fen := range fens {
		fen := fen
		g.Go(func() error {
			board := dragontoothmg.ParseFen(fen)
			v := engine.Evaluate(&board)
			for i := 1; i < *repeat; i++ {
				if got := engine.Evaluate(&board); got != v {
					return fmt.Errorf("unstable evaluation for %q: %d then %d", fen, v, got)
				}
			}
			tt.Add(board.Hash(), 0, int16(clampScore(v)), engine.PVNode, 0)
			logger.Debug().Str("fen", fen).Int("score", v).Msg("position done")
			return bar.Add(1)
		})
	}
	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("benchmark failed")
	}
	elapsed := time.Since(start)

	total := int64(len(fens)) * int64(*repeat)
	logger.Info().
		Int64("evals", total).
		Dur("elapsed", elapsed).
		Float64("evals_per_sec", float64(total)/elapsed.Seconds()).
		Int("hashfull", tt.EstimateHashfull()).
		Msg("benchmark complete")
}

func clampScore(v int) int {
	const lim = 32000
	if v > lim {
		return lim
	}
	if v < -lim {
		return -lim
	}
	return v
}

func readFens(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var fens []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return fens, nil
}
