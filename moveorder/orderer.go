package moveorder

import (
	"slices"

	"github.com/x0x/hive/board"
)

type stage int

const (
	stageHash stage = iota
	stageCapturesInit
	stageCaptures
	stageCapturesEnd
	stageCountermove
	stageKillers
	stageQuietInit
	stageQuiet
	stageDone
)

// pieceScore is the MVV-LVA ordering table, matching board.PieceValue
// but indexed so PieceNone scores 0.
var pieceScore = board.PieceValue

// MoveOrder streams the moves of one search node in staged priority
// order: the transposition-table hash move, then captures (best
// MVV-LVA first), then a recorded countermove, then the first legal
// killer move of the ply's three slots, then quiet moves (best history
// score first, with a depth-scaled threshold dropping the worst ones).
//
// Each move Next() returns has already been confirmed legal in the
// current position; callers don't need to re-check.
type MoveOrder struct {
	b          *board.Board
	ply, depth int
	hashMove   board.Move
	histories  *Histories
	prevMove   board.Move
	quiescence bool
	inCheck    bool

	stage       stage
	moves       board.MoveList
	cursor      int
	countermove board.Move
	killer      board.Move
}

// New starts a staged move order for the position b. depth and ply are
// the search's remaining-depth and distance-from-root counters, used
// to index the killer table and scale the quiet-move threshold.
// prevMove is the move that led to b (board.MoveNull at the root),
// used to look up the countermove slot. quiescence restricts the
// stream to captures only, unless b's side to move is in check.
func New(b *board.Board, ply, depth int, hashMove board.Move, histories *Histories, prevMove board.Move, quiescence bool) *MoveOrder {
	return &MoveOrder{
		b: b, ply: ply, depth: depth, hashMove: hashMove,
		histories: histories, prevMove: prevMove, quiescence: quiescence,
		inCheck:     b.InCheck(),
		countermove: board.MoveNull, killer: board.MoveNull,
	}
}

// CaptureScore is the MVV-LVA score for a (pseudo-legal) capture: the
// value of the captured piece minus the value of the capturing piece,
// so a pawn taking a queen sorts far ahead of a queen taking a pawn.
// Also used to order the captures-and-blocks evasion list in check,
// where a non-capturing block scores 0 minus the mover's value.
func (mo *MoveOrder) CaptureScore(m board.Move) int {
	from := pieceScore[mo.b.PieceAt(m.From()).Type()]
	var to int
	if m.IsEPCapture() {
		to = pieceScore[board.Pawn]
	} else {
		to = pieceScore[mo.b.PieceAt(m.To()).Type()]
	}
	return to - from
}

// QuietScore combines the butterfly and piece-type/destination
// history tables for a quiet move.
func (mo *MoveOrder) QuietScore(m board.Move) int {
	piece := mo.b.PieceAt(m.From()).Type()
	return int(mo.histories.ButterflyScore(m, mo.b.Turn) + mo.histories.PieceTypeScore(m, piece))
}

func (mo *MoveOrder) next(move *board.Move) bool {
	if mo.cursor >= mo.moves.Len() {
		return false
	}
	*move = mo.moves.At(mo.cursor)
	mo.cursor++
	return true
}

// thresholdMoves partitions mo.moves in place, keeping only the moves
// whose QuietScore exceeds threshold, and truncates the list to that
// prefix.
func (mo *MoveOrder) thresholdMoves(threshold int) {
	kept := mo.moves.Partition(func(m board.Move) bool { return mo.QuietScore(m) > threshold })
	mo.moves.Truncate(kept)
}

// Next returns the next move in staged order, or board.MoveNull when
// the stream is exhausted (or, in non-check quiescence, once captures
// run out).
func (mo *MoveOrder) Next() board.Move {
	var move board.Move
	for {
		switch mo.stage {
		case stageHash:
			mo.stage = stageCapturesInit
			if mo.hashMove != board.MoveNull && mo.b.Legal(mo.hashMove) {
				return mo.hashMove
			}

		case stageCapturesInit:
			mo.stage = stageCaptures
			mo.moves.Clear()
			if mo.inCheck {
				mo.b.GenEvasions(&mo.moves)
			} else {
				mo.b.GenCaptures(&mo.moves)
			}
			slices.SortFunc(mo.moves.Slice(), func(a, bb board.Move) int {
				return mo.CaptureScore(bb) - mo.CaptureScore(a)
			})
			mo.cursor = 0

		case stageCaptures:
			for mo.next(&move) {
				if move != mo.hashMove && mo.b.Legal(move) {
					return move
				}
			}
			mo.stage = stageCapturesEnd

		case stageCapturesEnd:
			if mo.quiescence && !mo.b.InCheck() {
				return board.MoveNull
			}
			mo.stage = stageCountermove

		case stageCountermove:
			mo.stage = stageKillers
			candidate := mo.histories.Countermove(mo.prevMove)
			if candidate != board.MoveNull && candidate != mo.hashMove && mo.b.Legal(candidate) {
				mo.countermove = candidate
				return candidate
			}

		case stageKillers:
			mo.stage = stageQuietInit
			for i := 0; i < NumKillers; i++ {
				candidate := mo.histories.GetKiller(i, mo.ply)
				if candidate != board.MoveNull && candidate != mo.hashMove &&
					candidate != mo.countermove && mo.b.Legal(candidate) {
					mo.killer = candidate
					return candidate
				}
			}

		case stageQuietInit:
			mo.stage = stageQuiet
			mo.moves.Clear()
			// In check, stageCapturesInit already generated the full
			// evasion set (captures and blocks alike); there's nothing
			// further to stream here.
			if !mo.inCheck {
				mo.b.GenQuiets(&mo.moves)
				mo.thresholdMoves(-3000 * mo.depth)
				slices.SortFunc(mo.moves.Slice(), func(a, bb board.Move) int {
					return mo.QuietScore(bb) - mo.QuietScore(a)
				})
			}
			mo.cursor = 0

		case stageQuiet:
			for mo.next(&move) {
				if move != mo.hashMove && move != mo.killer && move != mo.countermove && mo.b.Legal(move) {
					return move
				}
			}
			mo.stage = stageDone

		default:
			return board.MoveNull
		}
	}
}
