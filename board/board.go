package board

import "strings"

// ColorBitboards groups one side's per-piece-type bitboards plus their
// union, a shape SEE and move generation both find convenient to pass
// around.
type ColorBitboards struct {
	Pawns, Knights, Bishops, Rooks, Queens, Kings, All Bitboard
}

// PhaseWeight is the per-piece-type contribution to the game phase
// counter (knights/bishops=1, rooks=2, queens=4); PhaseTotal is the
// starting-position sum, matching the conventional tapered-eval scale.
var PhaseWeight = [numPieceTypes]int{Knight: 1, Bishop: 1, Rook: 2, Queen: 4}

const PhaseTotal = 24

// Board is the value-typed chess position at one ply: piece placement,
// side to move, castling rights, en passant square, the two clocks, and
// a set of incrementally maintained aggregates (hash, material, phase,
// checkers). It has no pointers or slices, so assigning one Board to
// another (`nb := b`) is a real, independent copy — the value semantics
// MakeMove relies on to return a successor position without aliasing
// the receiver.
type Board struct {
	pieces       [2]ColorBitboards
	mailbox      [64]Piece
	Turn         Color
	CastleRights CastlingRights
	EnPassant    Square
	HalfmoveClock  int
	FullmoveNumber int

	Hash     uint64
	Material int // White material minus Black material, in PieceValue units
	Phase    int
	Checkers Bitboard
}

// PieceAt returns the piece occupying sq, or NoPiece.
func (b *Board) PieceAt(sq Square) Piece { return b.mailbox[sq] }

// Occupancy returns the union of both sides' pieces.
func (b *Board) Occupancy() Bitboard { return b.pieces[White].All | b.pieces[Black].All }

// ColorOccupancy returns one side's combined occupancy.
func (b *Board) ColorOccupancy(c Color) Bitboard { return b.pieces[c].All }

// Bitboards returns a copy of one side's per-piece bitboards.
func (b *Board) Bitboards(c Color) ColorBitboards { return b.pieces[c] }

// KingSquare returns the square of color c's king.
func (b *Board) KingSquare(c Color) Square { return b.pieces[c].Kings.LSB() }

func bbFieldFor(cb *ColorBitboards, pt PieceType) *Bitboard {
	switch pt {
	case Pawn:
		return &cb.Pawns
	case Knight:
		return &cb.Knights
	case Bishop:
		return &cb.Bishops
	case Rook:
		return &cb.Rooks
	case Queen:
		return &cb.Queens
	case King:
		return &cb.Kings
	default:
		return nil
	}
}

// addPiece places p on sq (assumed empty) and updates bitboards, the
// mailbox, the hash, and material/phase.
func (b *Board) addPiece(sq Square, p Piece) {
	if p == NoPiece {
		return
	}
	c := p.Color()
	cb := &b.pieces[c]
	*bbFieldFor(cb, p.Type()) |= BB(sq)
	cb.All |= BB(sq)
	b.mailbox[sq] = p
	b.Hash ^= pieceSquareKey(p, sq)
	b.Material += c.Multiplier() * PieceValue[p.Type()]
	b.Phase = b.phaseFromPieces()
}

// removePiece clears sq (assumed occupied) and returns the piece that
// was there, with the same bookkeeping as addPiece run in reverse.
func (b *Board) removePiece(sq Square) Piece {
	p := b.mailbox[sq]
	if p == NoPiece {
		return NoPiece
	}
	c := p.Color()
	cb := &b.pieces[c]
	*bbFieldFor(cb, p.Type()) &^= BB(sq)
	cb.All &^= BB(sq)
	b.mailbox[sq] = NoPiece
	b.Hash ^= pieceSquareKey(p, sq)
	b.Material -= c.Multiplier() * PieceValue[p.Type()]
	b.Phase = b.phaseFromPieces()
	return p
}

// phaseFromPieces returns PhaseTotal minus the phase weight of every
// piece on the board, clamped at 0.
func (b *Board) phaseFromPieces() int {
	phase := PhaseTotal
	for pt := Pawn; pt <= King; pt++ {
		count := bbFieldFor(&b.pieces[White], pt).PopCount() + bbFieldFor(&b.pieces[Black], pt).PopCount()
		phase -= count * PhaseWeight[pt]
	}
	if phase < 0 {
		return 0
	}
	return phase
}

// recomputeCheckers refreshes b.Checkers from scratch: the set of enemy
// pieces attacking the side-to-move's king.
func (b *Board) recomputeCheckers() {
	b.Checkers = b.Attackers(b.KingSquare(b.Turn), b.Occupancy(), b.Turn.Other())
}

// InCheck reports whether the side to move is in check.
func (b *Board) InCheck() bool { return b.Checkers != 0 }

// Attackers returns the set of by's pieces attacking sq, given an
// assumed occupancy (which may differ from b.Occupancy(), as SEE needs
// when walking a simulated exchange).
func (b *Board) Attackers(sq Square, occ Bitboard, by Color) Bitboard {
	cb := &b.pieces[by]
	var attackers Bitboard
	attackers |= PawnAttacks(sq, by.Other()) & cb.Pawns
	attackers |= KnightAttacks(sq) & cb.Knights
	attackers |= KingAttacks(sq) & cb.Kings
	attackers |= RookAttacks(sq, occ) & (cb.Rooks | cb.Queens)
	attackers |= BishopAttacks(sq, occ) & (cb.Bishops | cb.Queens)
	return attackers
}

// IsAttacked reports whether sq is attacked by color by, given the
// board's actual current occupancy.
func (b *Board) IsAttacked(sq Square, by Color) bool {
	return b.Attackers(sq, b.Occupancy(), by) != 0
}

// IsValid self-checks every structural invariant a legal Board must
// satisfy. It is the oracle assertions and tests use; a false result is
// always a bug, either in move generation/make-move or in a caller's
// direct mutation.
func (b *Board) IsValid() bool {
	if b.pieces[White].Kings.PopCount() != 1 || b.pieces[Black].Kings.PopCount() != 1 {
		return false
	}
	for pt := Pawn; pt <= King; pt++ {
		w := *bbFieldFor(&b.pieces[White], pt)
		blk := *bbFieldFor(&b.pieces[Black], pt)
		if w&blk != 0 {
			return false
		}
	}
	var union Bitboard
	for c := White; c <= Black; c++ {
		cb := &b.pieces[c]
		combined := cb.Pawns | cb.Knights | cb.Bishops | cb.Rooks | cb.Queens | cb.Kings
		if combined != cb.All {
			return false
		}
		if combined&union != 0 {
			return false
		}
		union |= combined
	}
	if union != b.Occupancy() {
		return false
	}
	for sq := Square(0); sq < 64; sq++ {
		p := b.mailbox[sq]
		if p == NoPiece {
			if b.Occupancy().Test(sq) {
				return false
			}
			continue
		}
		if !bbFieldFor(&b.pieces[p.Color()], p.Type()).Test(sq) {
			return false
		}
	}
	if b.Hash != b.ComputeZobrist() {
		return false
	}
	expectPhase := PhaseTotal
	for pt := Pawn; pt <= King; pt++ {
		count := bbFieldFor(&b.pieces[White], pt).PopCount() + bbFieldFor(&b.pieces[Black], pt).PopCount()
		expectPhase -= count * PhaseWeight[pt]
	}
	if expectPhase < 0 {
		expectPhase = 0
	}
	if b.Phase != expectPhase {
		return false
	}
	// The side that just moved must not be in check.
	if b.IsAttacked(b.KingSquare(b.Turn.Other()), b.Turn) {
		return false
	}
	if b.recomputedCheckers() != b.Checkers {
		return false
	}
	if b.EnPassant != SquareNull {
		if b.Turn == White {
			if b.EnPassant.Rank() != 5 { // rank 6 (0-indexed 5) for White to move
				return false
			}
			if b.PieceAt(NewSquare(b.EnPassant.File(), 4)) != NewPiece(Pawn, Black) {
				return false
			}
		} else {
			if b.EnPassant.Rank() != 2 { // rank 3 for Black to move
				return false
			}
			if b.PieceAt(NewSquare(b.EnPassant.File(), 3)) != NewPiece(Pawn, White) {
				return false
			}
		}
	}
	return true
}

func (b *Board) recomputedCheckers() Bitboard {
	return b.Attackers(b.KingSquare(b.Turn), b.Occupancy(), b.Turn.Other())
}

// String renders an ASCII board dump (rank 8 at top) for debugging.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sb.WriteString(b.PieceAt(NewSquare(file, rank)).String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(b.ToFEN())
	return sb.String()
}
