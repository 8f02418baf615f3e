package board

// castleInfo describes the squares involved in one castling path: the
// king's and rook's from/to squares, the squares that must be empty,
// and the squares the king transits (which must not be attacked).
type castleInfo struct {
	kingFrom, kingTo Square
	rookFrom, rookTo Square
	empty            Bitboard
	path             [3]Square
}

func castleInfoFor(c Color, side CastleSide) castleInfo {
	if c == White {
		if side == Kingside {
			return castleInfo{kingFrom: 4, kingTo: 6, rookFrom: 7, rookTo: 5,
				empty: BB(5) | BB(6), path: [3]Square{4, 5, 6}}
		}
		return castleInfo{kingFrom: 4, kingTo: 2, rookFrom: 0, rookTo: 3,
			empty: BB(1) | BB(2) | BB(3), path: [3]Square{4, 3, 2}}
	}
	if side == Kingside {
		return castleInfo{kingFrom: 60, kingTo: 62, rookFrom: 63, rookTo: 61,
			empty: BB(61) | BB(62), path: [3]Square{60, 61, 62}}
	}
	return castleInfo{kingFrom: 60, kingTo: 58, rookFrom: 56, rookTo: 59,
		empty: BB(57) | BB(58) | BB(59), path: [3]Square{60, 59, 58}}
}

func sideForTag(tag MoveTag) CastleSide {
	if tag == TagKingCastle {
		return Kingside
	}
	return Queenside
}

// rookHomeSquareRight reports which castling right is lost when a rook
// leaves (or is captured on) sq; ok is false if sq isn't a rook's home
// square.
func rookHomeSquareRight(sq Square) (side CastleSide, c Color, ok bool) {
	switch sq {
	case 0:
		return Queenside, White, true
	case 7:
		return Kingside, White, true
	case 56:
		return Queenside, Black, true
	case 63:
		return Kingside, Black, true
	default:
		return 0, 0, false
	}
}
