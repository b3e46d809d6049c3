package engine

import (
	"context"
	"errors"
	"testing"

	. "github.com/ChizhovVadim/CounterCheckers/pkg/common"
)

var testFENs = []string{
	InitialPositionFen,
	"xx1x/x1xx/1x1x/x3/1o1o/o1o1/2oo/oooo x",
	"4/1X2/4/2O1/4/o3/4/4 x",
	"x3/3X/4/1o2/4/2x1/4/3O o",
	"4/4/xx2/4/xx2/1O2/4/4 o",
	"xxx1/1x1x/x1x1/4/1o2/o1oo/oo1o/o3 o",
}

func testOptions(alphaBeta, transTable, quiescence bool, depth int) Options {
	var options = NewOptions()
	options.AlphaBeta = alphaBeta
	options.TransTable = transTable
	options.Quiescence = quiescence
	options.Depth = depth
	return options
}

func search(t *testing.T, options Options, p *Position) SearchInfo {
	t.Helper()
	var e, err = NewEngine(options)
	if err != nil {
		t.Fatal(err)
	}
	info, err := e.ChooseMove(context.Background(), p)
	if err != nil {
		t.Fatal(p.String(), err)
	}
	return info
}

func parseFEN(t *testing.T, fen string) Position {
	t.Helper()
	var p, err = NewPositionFromFEN(fen)
	if err != nil {
		t.Fatal(fen, err)
	}
	return p
}

func TestAlphaBetaEquivalence(t *testing.T) {
	for _, fen := range testFENs {
		var p = parseFEN(t, fen)
		for depth := 1; depth <= 5; depth++ {
			for _, quiescence := range []bool{false, true} {
				var minimax = search(t, testOptions(false, false, quiescence, depth), &p)
				var alphaBeta = search(t, testOptions(true, false, quiescence, depth), &p)
				if minimax.Score != alphaBeta.Score || minimax.Move != alphaBeta.Move {
					t.Error(fen, depth, quiescence, minimax.Move, minimax.Score, alphaBeta.Move, alphaBeta.Score)
				}
				if alphaBeta.Stats.Explored > minimax.Stats.Explored {
					t.Error(fen, depth, alphaBeta.Stats.Explored, minimax.Stats.Explored)
				}
				if minimax.Stats.BetaCuts != 0 {
					t.Error(fen, depth, minimax.Stats.BetaCuts)
				}
			}
		}
	}
}

func TestTransTableTransparency(t *testing.T) {
	var p = NewInitialPosition()
	for depth := 1; depth <= 6; depth++ {
		for _, alphaBeta := range []bool{false, true} {
			var plain = search(t, testOptions(alphaBeta, false, true, depth), &p)
			var cached = search(t, testOptions(alphaBeta, true, true, depth), &p)
			if plain.Score != cached.Score {
				t.Error(depth, alphaBeta, plain.Score, cached.Score)
			}
		}
	}
}

func TestTransTableTransparencyKings(t *testing.T) {
	var fens = []string{
		"4/1X2/4/2O1/4/o3/4/4 x",
		"x3/3X/4/1o2/4/2x1/4/3O o",
		"4/4/4/1X2/4/2O1/4/O3 x",
	}
	var maxDepth = 9
	if testing.Short() {
		maxDepth = 7
	}
	for _, fen := range fens {
		var p = parseFEN(t, fen)
		for _, eval := range []string{"v1", "v2", "v3"} {
			for depth := 1; depth <= maxDepth; depth++ {
				for _, alphaBeta := range []bool{false, true} {
					for _, quiescence := range []bool{false, true} {
						var options = testOptions(alphaBeta, false, quiescence, depth)
						options.Eval = eval
						var plain = search(t, options, &p)
						options.TransTable = true
						var cached = search(t, options, &p)
						if plain.Score != cached.Score {
							t.Error(fen, eval, depth, alphaBeta, quiescence, plain.Score, cached.Score)
						}
					}
				}
			}
		}
	}
}

func TestTransTableAcrossMoves(t *testing.T) {
	var p = parseFEN(t, "4/1X2/4/2O1/4/o3/4/4 x")
	var e, err = NewEngine(testOptions(true, true, true, 7))
	if err != nil {
		t.Fatal(err)
	}
	for ply := 0; ply < 6; ply++ {
		var info, err = e.ChooseMove(context.Background(), &p)
		if err != nil {
			break
		}
		var plain = search(t, testOptions(true, false, true, 7), &p)
		if plain.Score != info.Score {
			t.Error(ply, p.String(), plain.Score, info.Score)
		}
		var child Position
		p.MakeMove(info.Move, &child)
		p = child
	}
}

func TestOptionsFixed(t *testing.T) {
	var e, err = NewEngine(testOptions(true, true, true, 3))
	if err != nil {
		t.Fatal(err)
	}
	var options = e.Options()
	options.Depth = 9
	options.AlphaBeta = false
	if e.Options().Depth != 3 || !e.Options().AlphaBeta {
		t.Error(e.Options())
	}
	var p = NewInitialPosition()
	info, err := e.ChooseMove(context.Background(), &p)
	if err != nil {
		t.Fatal(err)
	}
	if info.Depth != 3 {
		t.Error(info.Depth)
	}
}

func TestTransTableHits(t *testing.T) {
	var p = NewInitialPosition()
	var plain = search(t, testOptions(false, false, false, 5), &p)
	var cached = search(t, testOptions(false, true, false, 5), &p)
	if cached.Stats.TTExact == 0 || cached.Stats.TTCuts != 0 {
		t.Error(cached.Stats)
	}
	if cached.Stats.Explored >= plain.Stats.Explored {
		t.Error(cached.Stats.Explored, plain.Stats.Explored)
	}
}

func TestIterativeDeepening(t *testing.T) {
	for _, fen := range testFENs {
		var p = parseFEN(t, fen)
		for depth := 1; depth <= 5; depth++ {
			var fixed = search(t, testOptions(true, false, true, depth), &p)
			var options = testOptions(true, false, true, depth)
			options.Iterative = true
			var iterative = search(t, options, &p)
			if fixed.Score != iterative.Score || fixed.Move != iterative.Move ||
				iterative.Depth != depth {
				t.Error(fen, depth, fixed.Move, fixed.Score, iterative.Move, iterative.Score)
			}
		}
	}

	var p = NewInitialPosition()
	for depth := 1; depth <= 6; depth++ {
		var fixed = search(t, testOptions(true, true, true, depth), &p)
		var options = testOptions(true, true, true, depth)
		options.Iterative = true
		var iterative = search(t, options, &p)
		if fixed.Score != iterative.Score {
			t.Error(depth, fixed.Score, iterative.Score)
		}
	}
}

func TestIterativeDeepeningCancel(t *testing.T) {
	var options = testOptions(true, true, true, 10)
	options.Iterative = true
	var e, err = NewEngine(options)
	if err != nil {
		t.Fatal(err)
	}
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	var p = NewInitialPosition()
	info, err := e.ChooseMove(ctx, &p)
	if err != nil {
		t.Fatal(err)
	}
	if info.Depth != 1 || info.Move == MoveEmpty {
		t.Error(info)
	}
}

func TestNegamaxIdentity(t *testing.T) {
	var buffer [MaxMoves]Move
	for _, fen := range testFENs {
		var p = parseFEN(t, fen)
		for depth := 2; depth <= 4; depth++ {
			var options = testOptions(true, false, true, depth)
			var root = search(t, options, &p)
			var best = -valueInfinity
			for _, move := range p.GenerateMoves(buffer[:]) {
				var child Position
				p.MakeMove(move, &child)
				var score = lossIn(1)
				if child.HasMoves() {
					options.Depth = depth - 1
					// one ply deeper than its own root
					score = valueFromTT(search(t, options, &child).Score, 1)
				}
				best = Max(best, -score)
			}
			if root.Score != best {
				t.Error(fen, depth, root.Score, best)
			}
		}
	}
}

func TestMirrorSymmetry(t *testing.T) {
	for _, eval := range []string{"v1", "v2", "v3"} {
		for _, fen := range testFENs {
			var p = parseFEN(t, fen)
			var mirror = MirrorPosition(&p)
			var options = testOptions(true, true, true, 4)
			options.Eval = eval
			var score = search(t, options, &p).Score
			var mirrorScore = search(t, options, &mirror).Score
			if score != mirrorScore {
				t.Error(eval, fen, score, mirrorScore)
			}
		}
	}
}

func TestQuiescence(t *testing.T) {
	// a3-b4 is the only move and loses the last man to c5xa3
	var p = parseFEN(t, "4/4/4/1x2/4/o3/4/4 o")

	var plain = search(t, testOptions(true, false, false, 1), &p)
	if plain.Score != 0 || plain.Stats.Explored != 1 || plain.Stats.MaxDepth != 1 {
		t.Error(plain.Score, plain.Stats)
	}

	var quiet = search(t, testOptions(true, false, true, 1), &p)
	if quiet.Score != lossIn(2) || quiet.Stats.Explored != 2 || quiet.Stats.MaxDepth != 2 {
		t.Error(quiet.Score, quiet.Stats)
	}

	var options = testOptions(true, false, true, 1)
	options.QuiescenceDepth = 0
	var capped = search(t, options, &p)
	if capped.Score != plain.Score {
		t.Error(capped.Score)
	}
}

func TestQuiescenceTerminates(t *testing.T) {
	for _, fen := range testFENs {
		var p = parseFEN(t, fen)
		var info = search(t, testOptions(true, true, true, 2), &p)
		if info.Move == MoveEmpty {
			t.Error(fen)
		}
		if info.Stats.MaxDepth < 1 || info.Stats.MaxDepth > 2+NewOptions().QuiescenceDepth {
			t.Error(fen, info.Stats.MaxDepth)
		}
	}
}

func TestSingleMove(t *testing.T) {
	var p = parseFEN(t, "4/4/4/4/4/o3/4/4 o")
	for _, quiescence := range []bool{false, true} {
		var info = search(t, testOptions(true, true, quiescence, 1), &p)
		if info.Stats.Explored != 1 || info.Stats.MaxDepth != 1 {
			t.Error(quiescence, info.Stats)
		}
		if info.Move.String() != "a3-b4" {
			t.Error(info.Move)
		}
	}
}

func TestWinningCapture(t *testing.T) {
	var p = parseFEN(t, "4/4/4/4/1x2/1o2/4/o3 o")
	var info = search(t, testOptions(true, true, true, 6), &p)
	if info.Move.String() != "c3xe5" || info.Score < valueWin {
		t.Error(info.Move, info.Score)
	}
}

func TestAlphaGreaterThanBetaPanics(t *testing.T) {
	var e, err = NewEngine(NewOptions())
	if err != nil {
		t.Fatal(err)
	}
	e.searcher.stack[1].position = NewInitialPosition()
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic")
		}
	}()
	e.searcher.negamax(10, -10, 2, 1)
}

func TestNoLegalMove(t *testing.T) {
	var p = parseFEN(t, "x3/o3/4/4/4/4/4/4 o")
	for _, kind := range []string{KindAI, KindRandom} {
		var options = NewOptions()
		options.Kind = kind
		var e, err = New(options)
		if err != nil {
			t.Fatal(err)
		}
		_, err = e.ChooseMove(context.Background(), &p)
		if !errors.Is(err, ErrNoLegalMove) {
			t.Error(kind, err)
		}
	}
}

func TestInvalidOptions(t *testing.T) {
	var tests = []func(o *Options){
		func(o *Options) { o.Depth = 0 },
		func(o *Options) { o.Depth = stackSize },
		func(o *Options) { o.Eval = "v9" },
		func(o *Options) { o.Kind = "human" },
		func(o *Options) { o.TableSize = 0 },
		func(o *Options) { o.QuiescenceDepth = -1 },
	}
	for i, test := range tests {
		var options = NewOptions()
		test(&options)
		if _, err := New(options); !errors.Is(err, ErrInvalidOptions) {
			t.Error(i, err)
		}
	}
	var options = NewOptions()
	options.Kind = KindRandom
	options.Depth = 0
	if _, err := New(options); err != nil {
		t.Error(err)
	}
}

func TestClear(t *testing.T) {
	var e, err = NewEngine(testOptions(false, true, false, 4))
	if err != nil {
		t.Fatal(err)
	}
	var p = NewInitialPosition()
	var first, _ = e.ChooseMove(context.Background(), &p)
	e.Clear()
	var second, _ = e.ChooseMove(context.Background(), &p)
	if first.Score != second.Score || first.Stats != second.Stats {
		t.Error(first.Stats, second.Stats)
	}
}
