package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/x0x/hive/board"
	"github.com/x0x/hive/internal/logsink"
	"github.com/x0x/hive/perft"
)

type scenario struct {
	name  string
	fen   string
	depth int
	nodes uint64
}

var scenarios = []scenario{
	{"startpos", board.FENStartPos, 5, 4865609},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4, 4085603},
	{"endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 6, 11030083},
	{"promotion", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 5, 15833292},
	{"castling", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 5, 89941194},
	{"symmetric", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 5, 164075551},
}

func main() {
	fen := flag.String("fen", "", "FEN string; if empty, runs the published scenario suite")
	depth := flag.Int("depth", 0, "perft depth (required with -fen)")
	mode := flag.String("mode", "plain", "perft variant: plain, legal, ordered, tt")
	divide := flag.Bool("divide", false, "print per-root-move node counts instead of the total")
	parallel := flag.Bool("parallel", false, "split the root move list across goroutines (-fen mode only)")
	verbose := flag.Bool("v", false, "log progress via logsink instead of discarding it")
	flag.Parse()

	log := logsink.Discard()
	if *verbose {
		log = logsink.New("perft")
	}

	if *fen == "" {
		runSuite(log)
		return
	}

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0 when -fen is set")
		os.Exit(2)
	}
	b := board.FromFEN(*fen)
	if !b.IsValid() {
		log.Info("invalid position", "fen", *fen)
		fmt.Fprintf(os.Stderr, "invalid position: %s\n", b.String())
		os.Exit(2)
	}

	if *divide {
		runDivide(b, *depth)
		return
	}

	start := time.Now()
	var nodes uint64
	if *parallel {
		nodes = runParallel(b, *depth)
	} else {
		nodes = run(b, *depth, *mode)
	}
	elapsed := time.Since(start)
	nps := float64(nodes) / elapsed.Seconds()
	fmt.Printf("depth %d: %d nodes in %s (%.0f nps)\n", *depth, nodes, elapsed, nps)
}

func run(b board.Board, depth int, mode string) uint64 {
	switch mode {
	case "legal":
		return perft.PerftLegal(b, depth)
	case "ordered":
		return perft.PerftOrdered(b, depth)
	case "tt":
		return perft.PerftTT(b, depth, perft.NewTTCache())
	default:
		return perft.Perft(b, depth)
	}
}

func runParallel(b board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	div := perft.Divide(b, depth)
	moves := make([]board.Move, 0, len(div))
	for m := range div {
		moves = append(moves, m)
	}

	var g errgroup.Group
	counts := make([]uint64, len(moves))
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			nb, ok := b.MakeMove(m)
			if !ok {
				return nil
			}
			counts[i] = perft.Perft(nb, depth-1)
			return nil
		})
	}
	_ = g.Wait()

	var total uint64
	for _, c := range counts {
		total += c
	}
	return total
}

func runDivide(b board.Board, depth int) {
	div := perft.Divide(b, depth)
	type kv struct {
		m board.Move
		n uint64
	}
	arr := make([]kv, 0, len(div))
	var sum uint64
	for m, n := range div {
		arr = append(arr, kv{m, n})
		sum += n
	}
	sort.Slice(arr, func(i, j int) bool { return arr[i].m.String() < arr[j].m.String() })
	for _, x := range arr {
		fmt.Printf("%s: %d\n", x.m.String(), x.n)
	}
	fmt.Printf("total: %d\n", sum)
}

func runSuite(log logr) {
	fail := 0
	for _, s := range scenarios {
		b := board.FromFEN(s.fen)
		if !b.IsValid() {
			fmt.Printf("%-10s FEN failed validation: %s\n", s.name, s.fen)
			fail++
			continue
		}
		start := time.Now()
		got := perft.Perft(b, s.depth)
		elapsed := time.Since(start)
		ok := got == s.nodes
		status := "ok"
		if !ok {
			status = "MISMATCH"
			fail++
			log.Info("perft mismatch", "scenario", s.name, "got", got, "want", s.nodes)
		}
		fmt.Printf("%-10s depth %d: got %d want %d [%s] (%s)\n", s.name, s.depth, got, s.nodes, status, elapsed)
	}
	if fail > 0 {
		fmt.Printf("%d scenario(s) failed\n", fail)
		os.Exit(1)
	}
}

// logr is the narrow slice of logr.Logger's API this package needs.
type logr interface {
	Info(msg string, keysAndValues ...any)
}
