package board

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN of the initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func fenPiece(c byte) Piece {
	var color Color = White
	lc := c
	if c >= 'a' && c <= 'z' {
		color = Black
	} else {
		lc = c + 32
	}
	var pt PieceType
	switch lc {
	case 'p':
		pt = Pawn
	case 'n':
		pt = Knight
	case 'b':
		pt = Bishop
	case 'r':
		pt = Rook
	case 'q':
		pt = Queen
	case 'k':
		pt = King
	default:
		return NoPiece
	}
	return NewPiece(pt, color)
}

func pieceFEN(p Piece) byte {
	if p == NoPiece {
		return '.'
	}
	c := p.Type().String()[0]
	if p.Color() == White {
		return c - 32
	}
	return c
}

// FromFEN parses a FEN string into a Board. Unrecognized placement
// tokens are skipped (yielding a board missing that piece); missing
// trailing fields default to "- 0 1", and the fullmove counter is
// clamped to >= 1.
func FromFEN(fen string) Board {
	var b Board
	fields := strings.Fields(fen)
	for len(fields) < 6 {
		fields = append(fields, defaultFenField(len(fields)))
	}

	rank, file := 7, 0
	for _, ch := range fields[0] {
		switch {
		case ch == '/':
			rank--
			file = 0
		case ch >= '1' && ch <= '8':
			file += int(ch - '0')
		default:
			p := fenPiece(byte(ch))
			if p != NoPiece && rank >= 0 && file < 8 {
				b.addPiece(NewSquare(file, rank), p)
			}
			file++
		}
	}

	if fields[1] == "b" {
		b.Turn = Black
	} else {
		b.Turn = White
	}

	for _, ch := range fields[2] {
		switch ch {
		case 'K':
			b.CastleRights |= WhiteKingside
		case 'Q':
			b.CastleRights |= WhiteQueenside
		case 'k':
			b.CastleRights |= BlackKingside
		case 'q':
			b.CastleRights |= BlackQueenside
		}
	}

	ep, err := ParseSquare(fields[3])
	if err != nil {
		ep = SquareNull
	}
	b.EnPassant = ep

	if hm, err := strconv.Atoi(fields[4]); err == nil && hm >= 0 {
		b.HalfmoveClock = hm
	}
	fm, err := strconv.Atoi(fields[5])
	if err != nil || fm < 1 {
		fm = 1
	}
	b.FullmoveNumber = fm

	if b.Turn == Black {
		b.Hash ^= zobristSideToMove
	}
	if b.CastleRights.Has(Kingside, White) {
		b.Hash ^= castleKey(Kingside, White)
	}
	if b.CastleRights.Has(Queenside, White) {
		b.Hash ^= castleKey(Queenside, White)
	}
	if b.CastleRights.Has(Kingside, Black) {
		b.Hash ^= castleKey(Kingside, Black)
	}
	if b.CastleRights.Has(Queenside, Black) {
		b.Hash ^= castleKey(Queenside, Black)
	}
	if b.EnPassant != SquareNull {
		b.Hash ^= epFileKey(b.EnPassant)
	}

	b.recomputeCheckers()
	return b
}

func defaultFenField(idx int) string {
	switch idx {
	case 1:
		return "w"
	case 2:
		return "-"
	case 3:
		return "-"
	case 4:
		return "0"
	case 5:
		return "1"
	default:
		return "-"
	}
}

// ToFEN emits the canonical FEN for b.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.PieceAt(NewSquare(file, rank))
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(pieceFEN(p))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(b.Turn.String())
	sb.WriteByte(' ')
	sb.WriteString(b.CastleRights.String())
	sb.WriteByte(' ')
	sb.WriteString(b.EnPassant.String())
	fmt.Fprintf(&sb, " %d %d", b.HalfmoveClock, b.FullmoveNumber)
	return sb.String()
}
