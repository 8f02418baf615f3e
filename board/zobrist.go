package board

import "math/rand"

// Zobrist keys are generated once at package init from a fixed seed so
// hashes are stable across runs and tests can assert on exact values.
const zobristSeed = 0xC0FFEE1867

var (
	zobristPieceSquare [numPieceTypes][2][64]uint64 // [pieceType][color][square]
	zobristSideToMove  uint64
	zobristCastle      [2][2]uint64 // [side][color], side: 0=Kingside 1=Queenside
	zobristEPFile      [8]uint64
)

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for pt := Pawn; pt <= King; pt++ {
		for c := White; c <= Black; c++ {
			for sq := 0; sq < 64; sq++ {
				zobristPieceSquare[pt][c][sq] = r.Uint64()
			}
		}
	}
	zobristSideToMove = r.Uint64()
	for _, side := range [2]CastleSide{Kingside, Queenside} {
		for c := White; c <= Black; c++ {
			zobristCastle[side-1][c] = r.Uint64()
		}
	}
	for f := 0; f < 8; f++ {
		zobristEPFile[f] = r.Uint64()
	}
}

func pieceSquareKey(p Piece, sq Square) uint64 {
	if p == NoPiece {
		return 0
	}
	return zobristPieceSquare[p.Type()][p.Color()][sq]
}

func castleKey(side CastleSide, c Color) uint64 { return zobristCastle[side-1][c] }

func epFileKey(sq Square) uint64 { return zobristEPFile[sq.File()] }

// ComputeZobrist recomputes the Zobrist hash of b from scratch, ignoring
// the incrementally maintained b.Hash field. It is the oracle IsValid
// and the incremental-hash tests check the maintained value against.
func (b *Board) ComputeZobrist() uint64 {
	var key uint64
	for sq := Square(0); sq < 64; sq++ {
		key ^= pieceSquareKey(b.mailbox[sq], sq)
	}
	if b.Turn == Black {
		key ^= zobristSideToMove
	}
	if b.CastleRights.Has(Kingside, White) {
		key ^= castleKey(Kingside, White)
	}
	if b.CastleRights.Has(Queenside, White) {
		key ^= castleKey(Queenside, White)
	}
	if b.CastleRights.Has(Kingside, Black) {
		key ^= castleKey(Kingside, Black)
	}
	if b.CastleRights.Has(Queenside, Black) {
		key ^= castleKey(Queenside, Black)
	}
	if b.EnPassant != SquareNull {
		key ^= epFileKey(b.EnPassant)
	}
	return key
}
