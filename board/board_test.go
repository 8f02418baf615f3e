package board

import "testing"

func countMoves(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var list MoveList
	b.GenLegal(&list)
	if depth == 1 {
		return uint64(list.Len())
	}
	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		nb, ok := b.MakeMove(list.At(i))
		if !ok {
			t0 := "illegal move returned by GenLegal"
			panic(t0)
		}
		nodes += countMoves(&nb, depth-1)
	}
	return nodes
}

func TestStartPosMoveCounts(t *testing.T) {
	b := FromFEN(FENStartPos)
	if !b.IsValid() {
		t.Fatalf("start position failed IsValid: %s", b.String())
	}
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, c := range cases {
		got := countMoves(&b, c.depth)
		if got != c.want {
			t.Errorf("depth %d: got %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestKiwipeteMoveCounts(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	b := FromFEN(fen)
	if !b.IsValid() {
		t.Fatalf("kiwipete position failed IsValid: %s", b.String())
	}
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 48},
		{2, 2039},
	}
	for _, c := range cases {
		got := countMoves(&b, c.depth)
		if got != c.want {
			t.Errorf("depth %d: got %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		b := FromFEN(fen)
		if got := b.ToFEN(); got != fen {
			t.Errorf("round trip mismatch: got %q, want %q", got, fen)
		}
		if !b.IsValid() {
			t.Errorf("position from %q is invalid", fen)
		}
	}
}

func TestHashIncrementalMatchesRecompute(t *testing.T) {
	b := FromFEN(FENStartPos)
	var list MoveList
	b.GenLegal(&list)
	for i := 0; i < list.Len(); i++ {
		nb, ok := b.MakeMove(list.At(i))
		if !ok {
			continue
		}
		if nb.Hash != nb.ComputeZobrist() {
			t.Fatalf("move %s: incremental hash %x != recomputed %x", list.At(i), nb.Hash, nb.ComputeZobrist())
		}
	}
}

func TestCastlingRightsClearedByRookCapture(t *testing.T) {
	b := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	// Ra1xa8 captures Black's queenside rook on its home square and
	// also moves White's queenside rook off its own home square.
	m := NewMove(NewSquare(FileA, 0), NewSquare(FileA, 7), TagCapture)
	nb, ok := b.MakeMove(m)
	if !ok {
		t.Fatalf("expected legal move")
	}
	if nb.CastleRights.Has(Queenside, Black) {
		t.Fatalf("expected Black queenside right cleared after its rook was captured on a8")
	}
	if !nb.CastleRights.Has(Kingside, Black) {
		t.Fatalf("expected Black kingside right retained")
	}
	if nb.CastleRights.Has(Queenside, White) {
		t.Fatalf("expected White queenside right cleared after rook move")
	}
	if !nb.CastleRights.Has(Kingside, White) {
		t.Fatalf("expected White kingside right retained")
	}
}

func TestEnPassantCapture(t *testing.T) {
	b := FromFEN("4k3/8/8/3pP3/8/8/8/6K1 w - d6 0 1")
	m := NewMove(NewSquare(FileE, 4), NewSquare(FileD, 5), TagEPCapture)
	if !b.Legal(m) {
		t.Fatalf("expected en passant capture to be legal")
	}
	nb, ok := b.MakeMove(m)
	if !ok {
		t.Fatalf("expected en passant capture to succeed")
	}
	if nb.PieceAt(NewSquare(FileD, 4)) != NoPiece {
		t.Fatalf("expected captured pawn removed from d5")
	}
	if nb.PieceAt(NewSquare(FileD, 5)) != NewPiece(Pawn, White) {
		t.Fatalf("expected white pawn on d6")
	}
}

func TestSEEEqualTrade(t *testing.T) {
	b := FromFEN("6k1/4q1p1/4n3/8/2B5/8/8/6K1 w - - 0 1")
	m := NewMove(NewSquare(FileC, 3), NewSquare(FileE, 5), TagCapture)
	if got := b.SEE(m); got != 0 {
		t.Errorf("expected SEE 0 for a bishop trading itself for a knight defended by the queen, got %d", got)
	}
}

func TestLegalMatchesGenLegal(t *testing.T) {
	positions := []string{
		FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range positions {
		b := FromFEN(fen)
		var legal, pseudo MoveList
		b.GenLegal(&legal)
		legalSet := map[Move]bool{}
		for i := 0; i < legal.Len(); i++ {
			legalSet[legal.At(i)] = true
		}

		b.GenPseudoLegal(&pseudo)
		for i := 0; i < pseudo.Len(); i++ {
			m := pseudo.At(i)
			want := legalSet[m]
			got := b.Legal(m)
			if got != want {
				t.Errorf("%s: Legal(%s) = %v, want %v (GenLegal membership)", fen, m, got, want)
			}
		}
	}
}

func TestSEEWinningCapture(t *testing.T) {
	b := FromFEN("4k3/8/8/4q3/4R3/8/8/4K3 w - - 0 1")
	m := NewMove(NewSquare(FileE, 3), NewSquare(FileE, 4), TagCapture)
	if got := b.SEE(m); got != SEEValue[Queen] {
		t.Errorf("expected SEE %d for winning the undefended queen, got %d", SEEValue[Queen], got)
	}
}
