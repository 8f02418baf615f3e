package position

import (
	"testing"

	"github.com/x0x/hive/board"
)

func mustMove(t *testing.T, p *Position, from, to board.Square, tag board.MoveTag) {
	t.Helper()
	if !p.Make(board.NewMove(from, to, tag), false) {
		t.Fatalf("move %s%s rejected as illegal", from, to)
	}
}

func TestThreefoldRepetition(t *testing.T) {
	p := New(board.FromFEN(board.FENStartPos))

	knightShuffle := func() {
		mustMove(t, p, board.NewSquare(board.FileG, 0), board.NewSquare(board.FileF, 2), board.TagQuiet)
		mustMove(t, p, board.NewSquare(board.FileG, 7), board.NewSquare(board.FileF, 5), board.TagQuiet)
		mustMove(t, p, board.NewSquare(board.FileF, 2), board.NewSquare(board.FileG, 0), board.TagQuiet)
		mustMove(t, p, board.NewSquare(board.FileF, 5), board.NewSquare(board.FileG, 7), board.TagQuiet)
	}

	if p.IsDraw(false) {
		t.Fatalf("fresh start position reported as a draw")
	}
	knightShuffle()
	if p.IsDraw(false) {
		t.Fatalf("one shuffle cycle should not yet be a draw")
	}
	knightShuffle()
	if !p.IsDraw(false) {
		t.Fatalf("expected threefold repetition after two full shuffle cycles")
	}
}

func TestFiftyMoveRule(t *testing.T) {
	p := New(board.FromFEN("8/8/8/4k3/8/8/8/4K3 w - - 99 50"))
	if p.IsDraw(false) {
		t.Fatalf("halfmove clock 99 should not yet be a draw")
	}
	mustMove(t, p, board.NewSquare(board.FileE, 0), board.NewSquare(board.FileD, 0), board.TagQuiet)
	if !p.IsDraw(false) {
		t.Fatalf("expected fifty-move draw after halfmove clock reaches 100")
	}
}

func TestUnmakeRestoresPosition(t *testing.T) {
	p := New(board.FromFEN(board.FENStartPos))
	before := p.Board()
	mustMove(t, p, board.NewSquare(board.FileE, 1), board.NewSquare(board.FileE, 3), board.TagDoublePawnPush)
	if p.Ply() != 1 {
		t.Fatalf("expected ply 1 after one move, got %d", p.Ply())
	}
	p.Unmake()
	if p.Ply() != 0 {
		t.Fatalf("expected ply 0 after unmake, got %d", p.Ply())
	}
	if p.Board().Hash != before.Hash {
		t.Fatalf("unmake did not restore the original hash")
	}
}

func TestExtensionCounting(t *testing.T) {
	p := New(board.FromFEN(board.FENStartPos))
	if !p.Make(board.NewMove(board.NewSquare(board.FileE, 1), board.NewSquare(board.FileE, 3), board.TagDoublePawnPush), true) {
		t.Fatalf("expected legal move")
	}
	if p.NumExtensions() != 1 {
		t.Fatalf("expected 1 extension, got %d", p.NumExtensions())
	}
	p.Unmake()
	if p.NumExtensions() != 0 {
		t.Fatalf("expected 0 extensions after unmake, got %d", p.NumExtensions())
	}
}
