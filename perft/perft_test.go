package perft

import "testing"

import "github.com/x0x/hive/board"

type scenario struct {
	fen   string
	depth int
	nodes uint64
}

// These are the standard published perft positions and node counts
// used across the chess programming community as a generator's
// correctness oracle.
var scenarios = []scenario{
	{board.FENStartPos, 4, 197281},
	{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3, 97862},
	{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4, 43238},
	// Deep enough that underpromotions (a7-a8=N/B/R as well as =Q)
	// and Black's capturing promotions on a1 all get exercised.
	{"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 4, 422333},
	// White keeps its kingside castling option through both of its
	// moves at this depth; d7 can promote by capturing on c8.
	{"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 4, 2103487},
	{"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 4, 3894594},
}

func TestPerftVariantsAgree(t *testing.T) {
	for _, s := range scenarios {
		b := board.FromFEN(s.fen)
		plain := Perft(b, s.depth)
		if plain != s.nodes {
			t.Errorf("Perft(%q, %d) = %d, want %d", s.fen, s.depth, plain, s.nodes)
		}
		if got := PerftLegal(b, s.depth); got != plain {
			t.Errorf("PerftLegal(%q, %d) = %d, want %d (Perft's count)", s.fen, s.depth, got, plain)
		}
		if got := PerftOrdered(b, s.depth); got != plain {
			t.Errorf("PerftOrdered(%q, %d) = %d, want %d (Perft's count)", s.fen, s.depth, got, plain)
		}
		if got := PerftTT(b, s.depth, NewTTCache()); got != plain {
			t.Errorf("PerftTT(%q, %d) = %d, want %d (Perft's count)", s.fen, s.depth, got, plain)
		}
	}
}

func TestPerftStartPosDepth5(t *testing.T) {
	b := board.FromFEN(board.FENStartPos)
	if got := Perft(b, 5); got != 4865609 {
		t.Errorf("Perft(startpos, 5) = %d, want 4865609", got)
	}
}

func TestDivideSumsToPerftTotal(t *testing.T) {
	b := board.FromFEN(board.FENStartPos)
	div := Divide(b, 3)
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if want := Perft(b, 3); sum != want {
		t.Errorf("divide sum = %d, want %d", sum, want)
	}
}

func TestTTCacheHitsAfterFirstCall(t *testing.T) {
	b := board.FromFEN(board.FENStartPos)
	tt := NewTTCache()
	PerftTT(b, 3, tt)
	if tt.Len() == 0 {
		t.Fatalf("expected cache to be populated after a run")
	}
	if _, ok := tt.Get(b.Hash, 3); !ok {
		t.Fatalf("expected root position cached at depth 3")
	}
}
