package board

// MakeMove applies m to b and returns the resulting position. The
// second return value is false if m leaves the mover's own king in
// check, in which case the returned Board is meaningless and must be
// discarded — callers never need to "undo" a move, since b itself is
// untouched and the caller already holds it.
func (b *Board) MakeMove(m Move) (Board, bool) {
	nb := *b
	from, to := m.From(), m.To()
	us := nb.Turn
	them := us.Other()

	if nb.EnPassant != SquareNull {
		nb.Hash ^= epFileKey(nb.EnPassant)
		nb.EnPassant = SquareNull
	}

	moving := nb.removePiece(from)
	pt := moving.Type()

	if m.IsEPCapture() {
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		nb.removePiece(capSq)
	} else if m.IsCapture() {
		if side, c, ok := rookHomeSquareRight(to); ok {
			nb.clearCastleRight(side, c)
		}
		nb.removePiece(to)
	}

	placed := moving
	if m.IsPromotion() {
		placed = NewPiece(m.PromoPiece(), us)
	}
	nb.addPiece(to, placed)

	if m.IsCastle() {
		info := castleInfoFor(us, sideForTag(m.Tag()))
		rook := nb.removePiece(info.rookFrom)
		nb.addPiece(info.rookTo, rook)
	}

	switch {
	case pt == Pawn, m.IsCapture():
		nb.HalfmoveClock = 0
	default:
		nb.HalfmoveClock++
	}

	switch pt {
	case King:
		nb.clearCastleRight(Kingside, us)
		nb.clearCastleRight(Queenside, us)
	case Rook:
		if side, c, ok := rookHomeSquareRight(from); ok && c == us {
			nb.clearCastleRight(side, c)
		}
	}

	if m.IsDoublePawnPush() {
		epSq := from + 8
		if us == Black {
			epSq = from - 8
		}
		nb.EnPassant = epSq
		nb.Hash ^= epFileKey(epSq)
	}

	if us == Black {
		nb.FullmoveNumber++
	}
	nb.Turn = them
	nb.Hash ^= zobristSideToMove
	nb.recomputeCheckers()

	if nb.IsAttacked(nb.KingSquare(us), them) {
		return Board{}, false
	}
	return nb, true
}

// MakeNullMove returns the position reached by passing the turn
// without moving a piece: side to move flips, the en passant square is
// cleared, nothing else changes. It is never legality-checked — a null
// move is always "legal" except when the side to move is in check, which
// callers must check themselves via InCheck before using it.
func (b *Board) MakeNullMove() Board {
	nb := *b
	if nb.EnPassant != SquareNull {
		nb.Hash ^= epFileKey(nb.EnPassant)
		nb.EnPassant = SquareNull
	}
	nb.Turn = nb.Turn.Other()
	nb.Hash ^= zobristSideToMove
	nb.recomputeCheckers()
	return nb
}

func (b *Board) clearCastleRight(side CastleSide, c Color) {
	if b.CastleRights.Has(side, c) {
		b.Hash ^= castleKey(side, c)
		b.CastleRights.Clear(side, c)
	}
}
