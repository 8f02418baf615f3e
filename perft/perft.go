// Package perft counts leaf nodes reachable from a position at an
// exact depth, the standard correctness oracle for a move generator.
// Several counting strategies are provided; on a correct generator they
// must all agree.
package perft

import (
	"github.com/x0x/hive/board"
	"github.com/x0x/hive/moveorder"
)

// Perft counts leaf nodes at exactly depth plies using plain
// pseudo-legal generation: every pseudo-legal move is tried via
// board.MakeMove, which itself rejects the ones that leave the mover
// in check.
func Perft(b board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var list board.MoveList
	b.GenPseudoLegal(&list)
	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		nb, ok := b.MakeMove(list.At(i))
		if !ok {
			continue
		}
		if depth == 1 {
			nodes++
			continue
		}
		nodes += Perft(nb, depth-1)
	}
	return nodes
}

// PerftLegal counts leaf nodes by filtering pseudo-legal moves through
// board.Legal instead of relying on MakeMove's rejection as Perft does.
// Both must produce identical counts; a mismatch means the two
// legality paths (Legal and MakeMove's own check) disagree.
func PerftLegal(b board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var list board.MoveList
	b.GenPseudoLegal(&list)
	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if !b.Legal(m) {
			continue
		}
		if depth == 1 {
			nodes++
			continue
		}
		nb, ok := b.MakeMove(m)
		if !ok {
			panic("Legal accepted a move MakeMove rejects")
		}
		nodes += PerftLegal(nb, depth-1)
	}
	return nodes
}

// PerftOrdered counts leaf nodes by draining a moveorder.MoveOrder
// instead of calling the generator directly, so the orderer's staged
// traversal is exercised against the same oracle: it must visit every
// legal move exactly once, in some order, for the count to match.
func PerftOrdered(b board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	histories := moveorder.NewHistories()
	return perftOrdered(b, depth, histories)
}

func perftOrdered(b board.Board, depth int, histories *moveorder.Histories) uint64 {
	if depth == 0 {
		return 1
	}
	mo := moveorder.New(&b, 0, depth, board.MoveNull, histories, board.MoveNull, false)
	var nodes uint64
	for {
		m := mo.Next()
		if m == board.MoveNull {
			break
		}
		nb, ok := b.MakeMove(m)
		if !ok {
			continue
		}
		if depth == 1 {
			nodes++
			continue
		}
		nodes += perftOrdered(nb, depth-1, histories)
	}
	return nodes
}

// PerftTT counts leaf nodes like Perft, but memoizes subtree counts in
// an in-memory table keyed by (hash, depth), so positions transposed
// into repeatedly (a very common occurrence a few plies into any
// perft tree) are only expanded once.
func PerftTT(b board.Board, depth int, tt *TTCache) uint64 {
	if depth == 0 {
		return 1
	}
	if v, ok := tt.Get(b.Hash, depth); ok {
		return v
	}
	var list board.MoveList
	b.GenPseudoLegal(&list)
	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		nb, ok := b.MakeMove(list.At(i))
		if !ok {
			continue
		}
		if depth == 1 {
			nodes++
			continue
		}
		nodes += PerftTT(nb, depth-1, tt)
	}
	tt.Put(b.Hash, depth, nodes)
	return nodes
}

// Divide returns, for every legal move at the root, the subtree node
// count at depth-1 plies below it. Used to localize a perft mismatch
// against a reference count by bisecting on the diverging root move.
func Divide(b board.Board, depth int) map[board.Move]uint64 {
	result := make(map[board.Move]uint64)
	if depth <= 0 {
		return result
	}
	var list board.MoveList
	b.GenLegal(&list)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		nb, ok := b.MakeMove(m)
		if !ok {
			continue
		}
		result[m] = Perft(nb, depth-1)
	}
	return result
}
