// gambit-bench is a manual/CI smoke-test harness for the search core. It
// decodes a position, runs iterative deepening to a depth or deadline
// limit, and prints the ranked root moves. It is not a UCI or FFI surface.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/leafline-go/leafline/pkg/board/fen"
	"github.com/leafline-go/leafline/pkg/eval"
	"github.com/leafline-go/leafline/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

var (
	position = flag.String("fen", "", "Start position (default to standard)")
	depth    = flag.Uint("depth", 4, "Depth limit for iterative deepening")
	deadline = flag.Duration("deadline", 0, "Soft wall-clock deadline (zero for none)")
	hash     = flag.Float64("hash", 0.0625, "Transposition table size, as a fraction of a gibibyte")
	material = flag.Bool("material-only", false, "Use the material-only evaluator instead of the positional one")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: gambit-bench [options]

gambit-bench decodes a position and ranks its root moves by iterative
deepening search.

Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	ctx := context.Background()
	flag.Parse()

	logw.Infof(ctx, "gambit-bench %v", version)

	if *position == "" {
		*position = fen.Initial
	}

	pos, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen %q: %v", *position, err)
	}

	var e eval.Evaluator = eval.Standard{}
	if *material {
		e = eval.Material{}
	}

	tt := search.NewTranspositionTable(ctx, *hash)

	opt := search.Options{DepthLimit: lang.Some(*depth)}
	if *deadline > 0 {
		opt.Deadline = lang.Some(time.Now().Add(*deadline))
	}

	start := time.Now()
	h, out := search.IterativeDeepen(ctx, pos, e, tt, opt)

	var last search.RootResult
	for result := range out {
		last = result
		logw.Debugf(ctx, "depth=%v nodes=%v elapsed=%v", result.Depth, result.Nodes, time.Since(start))
	}
	h.Halt()

	fmt.Printf("fen: %v\n", fen.Encode(pos))
	fmt.Printf("depth: %v  nodes: %v  elapsed: %v  tt-used: %.1f%%\n", last.Depth, last.Nodes, time.Since(start), tt.Used()*100)

	for i, r := range last.Rankings {
		fmt.Printf("%2d. %-6v %v\n", i+1, r.Move, r.Lodestar)
	}

	if len(last.Rankings) == 0 {
		status := "stalemate"
		if pos.InCheck(pos.SideToMove()) {
			status = "checkmate"
		}
		fmt.Printf("no legal moves (%v)\n", status)
	}
}
