package search

import (
	"context"
	"sync"
	"time"

	"github.com/leafline-go/leafline/pkg/board"
	"github.com/leafline-go/leafline/pkg/eval"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

// Options hold the dynamic limits governing an iterative-deepening search.
type Options struct {
	// DepthLimit, if set, stops deepening once this ply depth is reached.
	DepthLimit lang.Optional[uint]
	// Deadline, if set, is the soft wall-clock cutoff observed by Root.
	Deadline lang.Optional[time.Time]
}

// Handle manages a running iterative-deepening search. Halt is idempotent
// and blocks until the search has produced its first completed iteration or
// has stopped without completing one, in which case it returns a zero
// RootResult.
type Handle interface {
	// Halt stops the search and returns the deepest completed iteration.
	Halt() RootResult
}

// IterativeDeepen launches depth=1, 2, ... root searches against pos,
// adopting each iteration's ranking as the next iteration's move order, and
// returns a Handle plus a channel of completed iterations (closed when the
// search stops). The driver stops when opt.Deadline is exceeded, when
// opt.DepthLimit is reached, or when Root reports an abort (the deepest
// completed iteration is retained either way).
func IterativeDeepen(ctx context.Context, pos board.Position, e eval.Evaluator, tt TranspositionTable, opt Options) (Handle, <-chan RootResult) {
	out := make(chan RootResult, 1)
	h := &handle{init: iox.NewAsyncCloser(), quit: iox.NewAsyncCloser()}
	go h.run(ctx, pos, e, tt, opt, out)
	return h, out
}

type handle struct {
	init, quit iox.AsyncCloser

	mu     sync.Mutex
	latest RootResult
}

func (h *handle) run(ctx context.Context, pos board.Position, e eval.Evaluator, tt TranspositionTable, opt Options, out chan RootResult) {
	defer h.init.Close()
	defer close(out)

	var order []board.Move
	depth := 1

	for !h.quit.IsClosed() {
		start := time.Now()

		result, ok := Root(ctx, pos, depth, e, tt, order, opt.Deadline)
		if !ok {
			logw.Debugf(ctx, "Iterative deepening stopped at depth=%v: root search aborted", depth)
			return
		}

		logw.Debugf(ctx, "Searched depth=%v nodes=%v time=%v hash=%v", depth, result.Nodes, time.Since(start), pos.DebugHash())

		h.mu.Lock()
		h.latest = result
		h.mu.Unlock()

		select {
		case out <- result:
		default:
			select {
			case <-out:
			default:
			}
			out <- result
		}

		h.init.Close()

		order = rankingsToMoves(result.Rankings)

		if limit, ok := opt.DepthLimit.V(); ok && uint(depth) >= limit {
			return
		}
		if deadline, ok := opt.Deadline.V(); ok && time.Now().After(deadline) {
			return
		}
		depth++
	}
}

func (h *handle) Halt() RootResult {
	<-h.init.Closed()
	h.quit.Close()

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest
}

func rankingsToMoves(rankings []Ranking) []board.Move {
	moves := make([]board.Move, len(rankings))
	for i, r := range rankings {
		moves[i] = r.Move
	}
	return moves
}

// FixedDepths runs Root at each depth in depths, in ascending order,
// carrying move ordering forward between iterations the same way
// IterativeDeepen does. Used for offline analysis and tests, where a
// deadline isn't wanted.
func FixedDepths(ctx context.Context, pos board.Position, e eval.Evaluator, tt TranspositionTable, depths []int) []RootResult {
	var order []board.Move
	results := make([]RootResult, 0, len(depths))

	for _, depth := range depths {
		result, ok := Root(ctx, pos, depth, e, tt, order, lang.Optional[time.Time]{})
		if !ok {
			break
		}
		results = append(results, result)
		order = rankingsToMoves(result.Rankings)
	}
	return results
}
