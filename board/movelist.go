package board

// MaxMoves upper-bounds the legal moves reachable from any legal chess
// position; 256 is the conventional safe capacity.
const MaxMoves = 256

// MoveList is a fixed-capacity, non-allocating scratch buffer of moves.
// The search's hot path fills and drains these without touching the heap.
type MoveList struct {
	moves [MaxMoves]Move
	n     int
}

// Add appends m to the list. Callers are responsible for keeping within
// MaxMoves; no legal chess position comes close.
func (l *MoveList) Add(m Move) {
	l.moves[l.n] = m
	l.n++
}

func (l *MoveList) Len() int      { return l.n }
func (l *MoveList) At(i int) Move { return l.moves[i] }
func (l *MoveList) Clear()        { l.n = 0 }

// Slice returns the populated prefix as a slice, aliasing the array. The
// slice is only valid until the next Add/Clear on this list.
func (l *MoveList) Slice() []Move { return l.moves[:l.n] }

// Partition reorders the list in place so moves for which keep returns
// true come first, returning the count kept. Used by the move orderer's
// quiet-stage threshold filter.
func (l *MoveList) Partition(keep func(Move) bool) int {
	k := 0
	for i := 0; i < l.n; i++ {
		if keep(l.moves[i]) {
			l.moves[k], l.moves[i] = l.moves[i], l.moves[k]
			k++
		}
	}
	return k
}

// Truncate drops the list down to the first n moves (used after Partition).
func (l *MoveList) Truncate(n int) { l.n = n }
