// Package position layers a move history on top of a board.Board so
// draw detection (repetition, the fifty-move rule) and search-time
// bookkeeping (extension counts, a search-root marker) have somewhere
// to live outside the board itself.
package position

import "github.com/x0x/hive/board"

// minReversiblePlies is the fewest half-moves that could possibly
// repeat a position with the same side to move: each side needs to
// move a piece away and back.
const minReversiblePlies = 4

// Position is a value-typed board plus the ply history needed to
// answer draw questions and to unwind search-time moves. The zero
// value is not usable; build one with New.
type Position struct {
	boards   []board.Board
	moves    []board.Move
	extended []bool

	numExtensions int
	initPly       int
}

// New returns a Position rooted at b, with no history yet.
func New(b board.Board) *Position {
	return &Position{boards: []board.Board{b}}
}

// Board returns the current position.
func (p *Position) Board() board.Board { return p.boards[len(p.boards)-1] }

// Hash returns the current position's Zobrist hash.
func (p *Position) Hash() uint64 { return p.Board().Hash }

// Ply returns the number of moves played since New, i.e. the depth of
// the history stack.
func (p *Position) Ply() int { return len(p.moves) }

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool { b := p.Board(); return b.InCheck() }

// NumExtensions returns the running count of plies made with
// extended=true still on the history stack.
func (p *Position) NumExtensions() int { return p.numExtensions }

// SetInitPly marks the current ply as the search root. IsDraw(true)
// accepts a single earlier occurrence only if it is at or after this
// ply, so a position that repeated once before the search started is
// not treated as a draw; a full threefold repetition is reported
// wherever its earlier occurrences lie.
func (p *Position) SetInitPly() { p.initPly = p.Ply() }

// Make plays m, pushing a new ply onto the history stack. It returns
// false, leaving the position unchanged, only when m would leave the
// mover's own king in check; it does not otherwise verify that m is
// legal here (board.Legal does).
// extended marks this ply as a search extension, for NumExtensions.
func (p *Position) Make(m board.Move, extended bool) bool {
	b := p.Board()
	nb, ok := b.MakeMove(m)
	if !ok {
		return false
	}
	p.boards = append(p.boards, nb)
	p.moves = append(p.moves, m)
	p.extended = append(p.extended, extended)
	if extended {
		p.numExtensions++
	}
	return true
}

// MakeNull plays a null move (passes the turn without moving a piece).
// Callers must check !InCheck() themselves first.
func (p *Position) MakeNull() {
	b := p.Board()
	nb := b.MakeNullMove()
	p.boards = append(p.boards, nb)
	p.moves = append(p.moves, board.MoveNull)
	p.extended = append(p.extended, false)
}

// Unmake pops the most recent ply, whether it was a real move or a
// null move. It is a no-op at the root.
func (p *Position) Unmake() {
	n := len(p.moves)
	if n == 0 {
		return
	}
	if p.extended[n-1] {
		p.numExtensions--
	}
	p.boards = p.boards[:len(p.boards)-1]
	p.moves = p.moves[:n-1]
	p.extended = p.extended[:n-1]
}

// UnmakeNull undoes MakeNull. It's the same operation as Unmake;
// the separate name documents intent at call sites.
func (p *Position) UnmakeNull() { p.Unmake() }

// IsDraw reports whether the current position is a draw by the
// fifty-move rule or by repetition. A real threefold repetition (two
// earlier occurrences of the current hash, making three total) is
// always a draw. With unique=true, a single earlier occurrence is
// also enough as long as it happened at or after the last SetInitPly
// call: within the current search tree, the side to move could simply
// repeat into that position, so it's treated as a draw even though the
// actual game history hasn't repeated three times yet.
func (p *Position) IsDraw(unique bool) bool {
	b := p.Board()
	if b.HalfmoveClock >= 100 {
		return true
	}
	n := len(p.boards) - 1
	if n < minReversiblePlies {
		return false
	}
	limit := n - b.HalfmoveClock
	if limit < 0 {
		limit = 0
	}
	matches := 0
	firstIdx := -1
	for i := n - 2; i >= limit; i -= 2 {
		if p.boards[i].Hash == b.Hash {
			matches++
			if firstIdx == -1 {
				firstIdx = i
			}
			if matches >= 2 {
				return true
			}
		}
	}
	return unique && matches >= 1 && firstIdx >= p.initPly
}
