package board

var promoPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

// GenCaptures appends all pseudo-legal captures, capturing promotions,
// and en passant captures to list.
func (b *Board) GenCaptures(list *MoveList) {
	us := b.Turn
	them := us.Other()
	occ := b.Occupancy()
	enemy := b.ColorOccupancy(them)
	own := b.pieces[us]

	b.genPawnCaptures(list, us, enemy)

	b.genLeaperCaptures(list, own.Knights, KnightAttacks, enemy)
	b.genLeaperCaptures(list, own.Kings, KingAttacks, enemy)
	b.genSliderCaptures(list, own.Bishops|own.Queens, occ, enemy, true)
	b.genSliderCaptures(list, own.Rooks|own.Queens, occ, enemy, false)
}

// GenQuiets appends all pseudo-legal non-capturing moves, including
// quiet promotions and castling, to list.
func (b *Board) GenQuiets(list *MoveList) {
	us := b.Turn
	occ := b.Occupancy()
	empty := ^occ
	own := b.pieces[us]

	b.genPawnQuiets(list, us, empty)

	b.genLeaperQuiets(list, own.Knights, KnightAttacks, empty)
	b.genLeaperQuiets(list, own.Kings, KingAttacks, empty)
	b.genSliderQuiets(list, own.Bishops|own.Queens, occ, empty, true)
	b.genSliderQuiets(list, own.Rooks|own.Queens, occ, empty, false)

	for _, side := range [2]CastleSide{Kingside, Queenside} {
		if b.CastleRights.Has(side, us) {
			info := castleInfoFor(us, side)
			tag := TagKingCastle
			if side == Queenside {
				tag = TagQueenCastle
			}
			m := NewMove(info.kingFrom, info.kingTo, tag)
			if b.legalCastle(m) {
				list.Add(m)
			}
		}
	}
}

// GenPseudoLegal appends every pseudo-legal move (captures then quiets).
func (b *Board) GenPseudoLegal(list *MoveList) {
	b.GenCaptures(list)
	b.GenQuiets(list)
}

// GenEvasions appends pseudo-legal moves available while the side to
// move is in check: king moves off the checked square, captures of
// the checking piece, and — for a single check by a slider — moves
// interposing on the ray between the checker and the king. A double
// check admits only king moves, since no single move can both escape
// one attacker and block or capture the other.
//
// The result is still only pseudo-legal: a king move can step into a
// different attacker's line, and a capture or block can be played by
// a pinned piece. Callers run it through Legal/MakeMove as usual.
func (b *Board) GenEvasions(list *MoveList) {
	us := b.Turn
	them := us.Other()
	occ := b.Occupancy()
	enemy := b.ColorOccupancy(them)
	own := b.pieces[us]
	kingSq := b.KingSquare(us)

	for t := KingAttacks(kingSq) &^ own.All; t != 0; {
		to := t.PopLSB()
		tag := TagQuiet
		if enemy.Test(to) {
			tag = TagCapture
		}
		list.Add(NewMove(kingSq, to, tag))
	}

	if b.Checkers.PopCount() != 1 {
		return
	}
	checkerSq := b.Checkers.LSB()
	block := squaresBetween(kingSq, checkerSq)
	captureMask := BB(checkerSq)

	b.genPawnEvasions(list, us, block, checkerSq)
	b.genLeaperCaptures(list, own.Knights, KnightAttacks, captureMask)
	b.genLeaperQuiets(list, own.Knights, KnightAttacks, block)
	b.genSliderCaptures(list, own.Bishops|own.Queens, occ, captureMask, true)
	b.genSliderQuiets(list, own.Bishops|own.Queens, occ, block, true)
	b.genSliderCaptures(list, own.Rooks|own.Queens, occ, captureMask, false)
	b.genSliderQuiets(list, own.Rooks|own.Queens, occ, block, false)
}

// genPawnEvasions handles the two pawn-specific evasion shapes that
// don't fit the leaper/slider helpers: capturing the checker and
// pushing (single or double) onto a block square, plus the corner
// case where the checking pawn is removable en passant.
func (b *Board) genPawnEvasions(list *MoveList, us Color, block Bitboard, checkerSq Square) {
	them := us.Other()
	lastRank := 7
	startRank := 1
	dir := 1
	if us == Black {
		lastRank = 0
		startRank = 6
		dir = -1
	}
	empty := ^b.Occupancy()
	pawns := b.pieces[us].Pawns
	for bb := pawns; bb != 0; {
		from := bb.PopLSB()
		if PawnAttacks(from, us).Test(checkerSq) {
			addPawnMove(list, from, checkerSq, lastRank, TagQuiet, TagCapture, true)
		}
		to1 := Square(int(from) + 8*dir)
		if to1 >= 0 && to1 < 64 && empty.Test(to1) {
			if block.Test(to1) {
				addPawnMove(list, from, to1, lastRank, TagQuiet, TagCapture, false)
			}
			if from.Rank() == startRank {
				to2 := Square(int(from) + 16*dir)
				if empty.Test(to2) && block.Test(to2) {
					list.Add(NewMove(from, to2, TagDoublePawnPush))
				}
			}
		}
	}
	if b.EnPassant != SquareNull {
		capturedSq := Square(int(b.EnPassant) - 8*dir)
		if capturedSq == checkerSq {
			for a := PawnAttacks(b.EnPassant, them) & pawns; a != 0; {
				list.Add(NewMove(a.PopLSB(), b.EnPassant, TagEPCapture))
			}
		}
	}
}

// squaresBetween returns the squares strictly between a and b,
// exclusive, when they share a rank, file, or diagonal — the
// interposing squares for a single slider check. It returns 0 for
// unaligned or adjacent squares.
func squaresBetween(a, b Square) Bitboard {
	af, ar := a.File(), a.Rank()
	bf, br := b.File(), b.Rank()
	df, dr := sign(bf-af), sign(br-ar)
	if df == 0 && dr == 0 {
		return 0
	}
	if df != 0 && dr != 0 && abs(bf-af) != abs(br-ar) {
		return 0
	}
	var bb Bitboard
	for f, r := af+df, ar+dr; f != bf || r != br; f, r = f+df, r+dr {
		bb.Set(NewSquare(f, r))
	}
	return bb
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// GenLegal appends every legal move: every pseudo-legal move that
// doesn't leave the mover's own king in check.
func (b *Board) GenLegal(list *MoveList) {
	var pseudo MoveList
	b.GenPseudoLegal(&pseudo)
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		if _, ok := b.MakeMove(m); ok {
			list.Add(m)
		}
	}
}

func addPawnMove(list *MoveList, from, to Square, lastRank int, quietTag, captureTag MoveTag, isCapture bool) {
	if to.Rank() != lastRank {
		if isCapture {
			list.Add(NewMove(from, to, captureTag))
		} else {
			list.Add(NewMove(from, to, quietTag))
		}
		return
	}
	for _, pt := range promoPieces {
		q, c := promoTags(pt)
		if isCapture {
			list.Add(NewMove(from, to, c))
		} else {
			list.Add(NewMove(from, to, q))
		}
	}
}

func (b *Board) genPawnCaptures(list *MoveList, us Color, enemy Bitboard) {
	them := us.Other()
	lastRank := 7
	if us == Black {
		lastRank = 0
	}
	pawns := b.pieces[us].Pawns
	for bb := pawns; bb != 0; {
		from := bb.PopLSB()
		targets := PawnAttacks(from, us) & enemy
		for t := targets; t != 0; {
			to := t.PopLSB()
			addPawnMove(list, from, to, lastRank, TagQuiet, TagCapture, true)
		}
	}
	if b.EnPassant != SquareNull {
		attackers := PawnAttacks(b.EnPassant, them) & pawns
		for a := attackers; a != 0; {
			from := a.PopLSB()
			list.Add(NewMove(from, b.EnPassant, TagEPCapture))
		}
	}
}

func (b *Board) genPawnQuiets(list *MoveList, us Color, empty Bitboard) {
	lastRank := 7
	startRank := 1
	dir := 1
	if us == Black {
		lastRank = 0
		startRank = 6
		dir = -1
	}
	pawns := b.pieces[us].Pawns
	for bb := pawns; bb != 0; {
		from := bb.PopLSB()
		to1 := Square(int(from) + 8*dir)
		if to1 < 0 || to1 > 63 || !empty.Test(to1) {
			continue
		}
		addPawnMove(list, from, to1, lastRank, TagQuiet, TagCapture, false)
		if from.Rank() == startRank {
			to2 := Square(int(from) + 16*dir)
			if empty.Test(to2) {
				list.Add(NewMove(from, to2, TagDoublePawnPush))
			}
		}
	}
}

func (b *Board) genLeaperCaptures(list *MoveList, pieces Bitboard, attacks func(Square) Bitboard, enemy Bitboard) {
	for bb := pieces; bb != 0; {
		from := bb.PopLSB()
		for t := attacks(from) & enemy; t != 0; {
			list.Add(NewMove(from, t.PopLSB(), TagCapture))
		}
	}
}

func (b *Board) genLeaperQuiets(list *MoveList, pieces Bitboard, attacks func(Square) Bitboard, empty Bitboard) {
	for bb := pieces; bb != 0; {
		from := bb.PopLSB()
		for t := attacks(from) & empty; t != 0; {
			list.Add(NewMove(from, t.PopLSB(), TagQuiet))
		}
	}
}

func sliderAttacks(from Square, occ Bitboard, diagonal bool) Bitboard {
	if diagonal {
		return BishopAttacks(from, occ)
	}
	return RookAttacks(from, occ)
}

func (b *Board) genSliderCaptures(list *MoveList, pieces, occ, enemy Bitboard, diagonal bool) {
	for bb := pieces; bb != 0; {
		from := bb.PopLSB()
		for t := sliderAttacks(from, occ, diagonal) & enemy; t != 0; {
			list.Add(NewMove(from, t.PopLSB(), TagCapture))
		}
	}
}

func (b *Board) genSliderQuiets(list *MoveList, pieces, occ, empty Bitboard, diagonal bool) {
	for bb := pieces; bb != 0; {
		from := bb.PopLSB()
		for t := sliderAttacks(from, occ, diagonal) & empty; t != 0; {
			list.Add(NewMove(from, t.PopLSB(), TagQuiet))
		}
	}
}
