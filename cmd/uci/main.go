package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/x0x/hive/board"
	"github.com/x0x/hive/internal/logsink"
	"github.com/x0x/hive/perft"
	"github.com/x0x/hive/position"
)

func atoi(s string) int { v, _ := strconv.Atoi(s); return v }

// findMove resolves a UCI move string ("e2e4", "e7e8q") against the
// legal moves available in p: the wire format alone doesn't carry a
// move-type tag, so the match has to go through generation.
func findMove(p *position.Position, uci string) (board.Move, bool) {
	if len(uci) < 4 {
		return board.MoveNull, false
	}
	from, err := board.ParseSquare(uci[0:2])
	if err != nil {
		return board.MoveNull, false
	}
	to, err := board.ParseSquare(uci[2:4])
	if err != nil {
		return board.MoveNull, false
	}
	var promo board.PieceType = board.PieceNone
	if len(uci) == 5 {
		switch uci[4] {
		case 'q':
			promo = board.Queen
		case 'r':
			promo = board.Rook
		case 'b':
			promo = board.Bishop
		case 'n':
			promo = board.Knight
		}
	}

	b := p.Board()
	var list board.MoveList
	b.GenLegal(&list)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() && m.PromoPiece() != promo {
			continue
		}
		if !m.IsPromotion() && promo != board.PieceNone {
			continue
		}
		return m, true
	}
	return board.MoveNull, false
}

func main() {
	log := logsink.Discard()
	reader := bufio.NewReader(os.Stdin)
	pos := position.New(board.FromFEN(board.FENStartPos))

	fmt.Println("id name hive")
	fmt.Println("id author x0x")
	fmt.Println("uciok")

	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			if err != nil {
				return
			}
			continue
		}
		parts := strings.Fields(line)
		switch parts[0] {
		case "quit":
			return
		case "uci":
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			pos = position.New(board.FromFEN(board.FENStartPos))
		case "position":
			handlePosition(pos, parts, log)
		case "go":
			handleGo(pos, parts)
		}
	}
}

func handlePosition(p *position.Position, parts []string, log interface {
	Info(string, ...any)
}) {
	if len(parts) < 2 {
		return
	}
	movesIdx := -1
	var fen string
	switch parts[1] {
	case "startpos":
		fen = board.FENStartPos
		movesIdx = 2
	case "fen":
		i := 2
		for i < len(parts) && parts[i] != "moves" {
			i++
		}
		fen = strings.Join(parts[2:i], " ")
		movesIdx = i
	default:
		return
	}

	np := position.New(board.FromFEN(fen))
	*p = *np
	p.SetInitPly()

	if movesIdx < len(parts) && parts[movesIdx] == "moves" {
		for _, uci := range parts[movesIdx+1:] {
			m, ok := findMove(p, uci)
			if !ok {
				log.Info("could not resolve move", "uci", uci)
				break
			}
			p.Make(m, false)
		}
	}
}

// handleGo implements only "go perft <n>", the one search-shaped
// command this front door supports without a search or evaluator:
// it runs perft.Perft from the current position and prints a divide
// in the conventional GUI-debug format.
func handleGo(p *position.Position, parts []string) {
	for i := 1; i < len(parts); i++ {
		if parts[i] != "perft" || i+1 >= len(parts) {
			continue
		}
		depth := atoi(parts[i+1])
		div := perft.Divide(p.Board(), depth)
		var total uint64
		for m, n := range div {
			fmt.Printf("%s: %d\n", m.String(), n)
			total += n
		}
		fmt.Printf("\nNodes searched: %d\n", total)
		return
	}
	fmt.Println("bestmove (none)")
}
