package moveorder

import (
	"testing"

	"github.com/x0x/hive/board"
)

func drain(mo *MoveOrder) []board.Move {
	var out []board.Move
	for {
		m := mo.Next()
		if m == board.MoveNull {
			return out
		}
		out = append(out, m)
	}
}

func TestOrdererNoDuplicatesAndAllLegal(t *testing.T) {
	b := board.FromFEN(board.FENStartPos)
	var legal board.MoveList
	b.GenLegal(&legal)
	legalSet := map[board.Move]bool{}
	for i := 0; i < legal.Len(); i++ {
		legalSet[legal.At(i)] = true
	}

	mo := New(&b, 0, 4, board.MoveNull, NewHistories(), board.MoveNull, false)
	seen := map[board.Move]bool{}
	for _, m := range drain(mo) {
		if seen[m] {
			t.Fatalf("move %s returned twice", m)
		}
		seen[m] = true
		if !legalSet[m] {
			t.Fatalf("move %s returned by orderer is not legal", m)
		}
	}
	if len(seen) != len(legalSet) {
		t.Fatalf("expected %d moves, got %d", len(legalSet), len(seen))
	}
}

func assertOrdererMatchesLegal(t *testing.T, fen string, mo *MoveOrder) {
	t.Helper()
	b := board.FromFEN(fen)
	var legal board.MoveList
	b.GenLegal(&legal)
	legalSet := map[board.Move]bool{}
	for i := 0; i < legal.Len(); i++ {
		legalSet[legal.At(i)] = true
	}

	seen := map[board.Move]bool{}
	for _, m := range drain(mo) {
		if seen[m] {
			t.Fatalf("move %s returned twice", m)
		}
		seen[m] = true
		if !legalSet[m] {
			t.Fatalf("move %s returned by orderer is not legal in %q", m, fen)
		}
	}
	if len(seen) != len(legalSet) {
		t.Fatalf("expected %d moves, got %d", len(legalSet), len(seen))
	}
}

func TestOrdererSkipsIllegalMovesFromPinnedPiece(t *testing.T) {
	// White's e2 knight is pinned to its king by the e8 rook: every
	// Ne2-* pseudo-legal move is illegal and must never reach the
	// caller.
	fen := "4rk2/8/8/8/8/8/4N3/4K3 w - - 0 1"
	b := board.FromFEN(fen)
	mo := New(&b, 0, 4, board.MoveNull, NewHistories(), board.MoveNull, false)
	assertOrdererMatchesLegal(t, fen, mo)
}

func TestOrdererInCheckEmitsOnlyLegalEvasions(t *testing.T) {
	// White king in check from the e8 rook along the e-file; only
	// king moves off the file, blocks on e-squares, or capturing the
	// rook resolve it.
	fen := "4rk2/8/8/8/8/8/8/4K3 w - - 0 1"
	b := board.FromFEN(fen)
	if !b.InCheck() {
		t.Fatalf("expected starting position to be in check")
	}
	mo := New(&b, 0, 4, board.MoveNull, NewHistories(), board.MoveNull, false)
	assertOrdererMatchesLegal(t, fen, mo)
}

func TestOrdererHashMoveFirst(t *testing.T) {
	b := board.FromFEN(board.FENStartPos)
	hash := board.NewMove(board.NewSquare(board.FileE, 1), board.NewSquare(board.FileE, 3), board.TagDoublePawnPush)

	mo := New(&b, 0, 4, hash, NewHistories(), board.MoveNull, false)
	if got := mo.Next(); got != hash {
		t.Fatalf("expected hash move first, got %s", got)
	}
	for _, m := range drain(mo) {
		if m == hash {
			t.Fatalf("hash move %s emitted a second time", hash)
		}
	}
}

func TestOrdererQuiescenceStopsAfterCapturesWhenNotInCheck(t *testing.T) {
	b := board.FromFEN("4k3/8/8/4q3/4R3/8/8/4K3 w - - 0 1")
	mo := New(&b, 0, 1, board.MoveNull, NewHistories(), board.MoveNull, true)
	moves := drain(mo)
	for _, m := range moves {
		if !m.IsCapture() && !m.IsEPCapture() {
			t.Fatalf("quiescence mode returned a non-capture move %s", m)
		}
	}
}

func TestOrdererKillerSkippedIfIllegal(t *testing.T) {
	b := board.FromFEN(board.FENStartPos)
	h := NewHistories()
	bogus := board.NewMove(board.NewSquare(board.FileA, 0), board.NewSquare(board.FileA, 7), board.TagQuiet)
	h.FailHigh(bogus, board.MoveNull, board.White, 2, 0, board.Rook)

	mo := New(&b, 0, 4, board.MoveNull, h, board.MoveNull, false)
	for _, m := range drain(mo) {
		if m == bogus {
			t.Fatalf("illegal killer %s must never be emitted", bogus)
		}
	}
}
