package board

// Legal reports whether m is a legal move in the current position. It
// runs the same structural checks a position's move generator would
// never violate by construction, so it only matters for moves coming
// from an external source — a transposition-table hash move, a killer,
// or a countermove recalled from a different position than the one
// that produced it.
func (b *Board) Legal(m Move) bool {
	if !m.IsValid() {
		return false
	}
	from, to := m.From(), m.To()
	if from == to {
		return false
	}
	ours := b.ColorOccupancy(b.Turn)
	if !ours.Test(from) || ours.Test(to) {
		return false
	}
	piece := b.PieceAt(from)
	pt := piece.Type()

	if m.IsEPCapture() {
		if b.EnPassant == SquareNull || to != b.EnPassant {
			return false
		}
	} else {
		destOccupied := b.Occupancy().Test(to)
		if destOccupied != m.IsCapture() {
			return false
		}
	}

	if pt != Pawn && (m.IsDoublePawnPush() || m.IsEPCapture() || m.IsPromotion()) {
		return false
	}
	if pt != King && m.IsCastle() {
		return false
	}
	if pt == Pawn && m.IsCastle() {
		return false
	}

	occ := b.Occupancy()
	switch pt {
	case Pawn:
		if !b.legalPawnGeometry(m, occ) {
			return false
		}
	case Knight:
		if KnightAttacks(from)&BB(to) == 0 {
			return false
		}
	case Bishop:
		if BishopAttacks(from, occ)&BB(to) == 0 {
			return false
		}
	case Rook:
		if RookAttacks(from, occ)&BB(to) == 0 {
			return false
		}
	case Queen:
		if QueenAttacks(from, occ)&BB(to) == 0 {
			return false
		}
	case King:
		if m.IsCastle() {
			if !b.legalCastle(m) {
				return false
			}
		} else if KingAttacks(from)&BB(to) == 0 {
			return false
		}
	default:
		return false
	}

	_, ok := b.MakeMove(m)
	return ok
}

// legalPawnGeometry checks a pawn move's destination, promotion-rank
// consistency, and (for non-captures) that the path is unobstructed.
func (b *Board) legalPawnGeometry(m Move, occ Bitboard) bool {
	from, to := m.From(), m.To()
	c := b.Turn
	dir := 1
	lastRank := 7
	startRank := 1
	if c == Black {
		dir = -1
		lastRank = 0
		startRank = 6
	}

	if m.IsPromotion() != (to.Rank() == lastRank) {
		return false
	}

	if m.IsCapture() {
		return PawnAttacks(from, c).Test(to)
	}
	if m.IsDoublePawnPush() {
		if from.Rank() != startRank {
			return false
		}
		mid := Square(int(from) + 8*dir)
		want := Square(int(from) + 16*dir)
		return to == want && !occ.Test(mid) && !occ.Test(to)
	}
	want := Square(int(from) + 8*dir)
	return to == want && !occ.Test(to)
}

// legalCastle checks castling rights, the required empty squares, and
// that the king neither starts, passes through, nor lands on an
// attacked square.
func (b *Board) legalCastle(m Move) bool {
	side := sideForTag(m.Tag())
	info := castleInfoFor(b.Turn, side)
	if m.From() != info.kingFrom || m.To() != info.kingTo {
		return false
	}
	if !b.CastleRights.Has(side, b.Turn) {
		return false
	}
	if b.Occupancy()&info.empty != 0 {
		return false
	}
	them := b.Turn.Other()
	for _, sq := range info.path {
		if b.IsAttacked(sq, them) {
			return false
		}
	}
	return true
}
