package board

// SEE runs a static exchange evaluation of the capture (or any move,
// including quiets) m: the net material gain if both sides keep
// recapturing on m.To() with their least valuable attacker until
// neither wants to continue. It walks a gain array forward (one entry
// per capture in the exchange), then folds it backward with alternating
// min/max so each side only "takes" when doing so doesn't make their
// position worse — the same alternating-capture idea as classical
// exchange evaluators, adapted here to the board's own attacker
// bitboards so sliders are naturally x-rayed as blockers are removed.
func (b *Board) SEE(m Move) int {
	from, to := m.From(), m.To()
	us := b.Turn
	occ := b.Occupancy()
	moverType := b.PieceAt(from).Type()

	var gain [32]int
	depth := 0

	if m.IsEPCapture() {
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		gain[0] = SEEValue[Pawn]
		occ &^= BB(capSq)
	} else {
		gain[0] = SEEValue[b.PieceAt(to).Type()]
	}
	occ &^= BB(from)

	side := us.Other()
	curValue := SEEValue[moverType]
	for {
		depth++
		gain[depth] = curValue - gain[depth-1]
		if max(-gain[depth-1], gain[depth]) < 0 {
			break
		}
		attackers := b.Attackers(to, occ, side) & occ
		if attackers == 0 {
			break
		}
		sq, pt := leastValuableAttacker(&b.pieces[side], attackers)
		occ &^= BB(sq)
		curValue = SEEValue[pt]
		side = side.Other()
	}

	for d := depth - 1; d > 0; d-- {
		gain[d-1] = -max(-gain[d-1], gain[d])
	}
	return gain[0]
}

// SEEGE reports whether m's static exchange evaluation is at least
// threshold, the question the move orderer and quiescence pruning
// actually need answered.
func (b *Board) SEEGE(m Move, threshold int) bool { return b.SEE(m) >= threshold }

var attackerOrder = [6]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

func leastValuableAttacker(cb *ColorBitboards, attackers Bitboard) (Square, PieceType) {
	for _, pt := range attackerOrder {
		if bb := *bbFieldFor(cb, pt) & attackers; bb != 0 {
			return bb.LSB(), pt
		}
	}
	return SquareNull, PieceNone
}
