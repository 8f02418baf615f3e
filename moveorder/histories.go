// Package moveorder staged-orders legal moves for search: hash move,
// then captures (MVV-LVA), then a countermove and one killer (the
// first legal one of three slots), then quiets ordered by history score.
package moveorder

import "github.com/x0x/hive/board"

// NumKillers is the number of killer-move slots kept per ply.
const NumKillers = 3

// MaxPly bounds the killer table's ply dimension; no search here goes
// deeper than this including extensions.
const MaxPly = 128

// historyClamp is the saturating bound applied to every history
// score, keeping a long game's accumulated bonuses from overflowing
// int32 or drowning out a single fail-high's signal.
const historyClamp = 1 << 22

// Histories accumulates move-ordering signal across a search: a
// butterfly table (from/to history, keyed by side to move), a
// piece-type/destination table, a killer-move table indexed by ply,
// and a one-slot countermove table indexed by the previous move.
type Histories struct {
	butterfly   [2][64][64]int32
	pieceDest   [7][64]int32
	killers     [NumKillers][MaxPly]board.Move
	countermove [64][64]board.Move
}

// NewHistories returns a cleared Histories table.
func NewHistories() *Histories {
	h := &Histories{}
	h.Clear()
	return h
}

// Clear resets every table to zero / null-move.
func (h *Histories) Clear() {
	h.butterfly = [2][64][64]int32{}
	h.pieceDest = [7][64]int32{}
	for i := range h.killers {
		for j := range h.killers[i] {
			h.killers[i][j] = board.MoveNull
		}
	}
	for i := range h.countermove {
		for j := range h.countermove[i] {
			h.countermove[i][j] = board.MoveNull
		}
	}
}

func clamp(v int32) int32 {
	switch {
	case v > historyClamp:
		return historyClamp
	case v < -historyClamp:
		return -historyClamp
	default:
		return v
	}
}

// AddBonus applies bonus (positive or negative) to the butterfly and
// piece-type/destination tables for move, used for every move tried
// at a node — not just the one that fails high — so that moves which
// consistently fail to raise alpha get actively penalized.
func (h *Histories) AddBonus(move board.Move, turn board.Color, piece board.PieceType, bonus int32) {
	h.butterfly[turn][move.From()][move.To()] = clamp(h.butterfly[turn][move.From()][move.To()] + bonus)
	h.pieceDest[piece][move.To()] = clamp(h.pieceDest[piece][move.To()] + bonus)
}

// FailHigh records move as the cause of a beta cutoff at the given
// depth and ply: it gets a depth-squared history bonus, becomes the
// countermove for prevMove, and is promoted into the killer table for
// this ply (a no-op if it's already there).
func (h *Histories) FailHigh(move, prevMove board.Move, turn board.Color, depth, ply int, piece board.PieceType) {
	bonus := int32(depth * depth)
	h.AddBonus(move, turn, piece, bonus)
	if prevMove != board.MoveNull {
		h.countermove[prevMove.From()][prevMove.To()] = move
	}

	if h.IsKiller(move, ply) {
		return
	}
	for i := NumKillers - 1; i > 0; i-- {
		h.killers[i][ply] = h.killers[i-1][ply]
	}
	h.killers[0][ply] = move
}

// IsKiller reports whether move is already stored as a killer at ply.
func (h *Histories) IsKiller(move board.Move, ply int) bool {
	for i := 0; i < NumKillers; i++ {
		if h.killers[i][ply] == move {
			return true
		}
	}
	return false
}

// ButterflyScore returns the accumulated from/to history for turn.
func (h *Histories) ButterflyScore(move board.Move, turn board.Color) int32 {
	return h.butterfly[turn][move.From()][move.To()]
}

// PieceTypeScore returns the accumulated piece-type/destination history.
func (h *Histories) PieceTypeScore(move board.Move, piece board.PieceType) int32 {
	return h.pieceDest[piece][move.To()]
}

// GetKiller returns the index'th killer move recorded at ply.
func (h *Histories) GetKiller(index, ply int) board.Move { return h.killers[index][ply] }

// Countermove returns the move that has most recently refuted prev.
func (h *Histories) Countermove(prev board.Move) board.Move {
	return h.countermove[prev.From()][prev.To()]
}
