package search

import (
	"context"
	"sort"
	"time"

	"github.com/leafline-go/leafline/pkg/board"
	"github.com/leafline-go/leafline/pkg/eval"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

// pollInterval is the root poller's sleep between non-blocking drains of the
// worker result channel.
const pollInterval = 2 * time.Millisecond

// Ranking is a single root move paired with the Lodestar its subtree
// produced.
type Ranking struct {
	Move     board.Move
	Lodestar Lodestar
}

// RootResult is a completed root search: its move rankings, sorted by
// descending score (ties preserve generation order), and the depth reached.
type RootResult struct {
	Rankings []Ranking
	Depth    int
	Nodes    uint64
}

// Root forks one worker per legal root move, each exploring its subtree to
// depth-1 with the full window and the shared transposition table. order, if
// non-nil, is consulted to seed move generation order ahead of MVV-LVA
// (adopted from a prior iterative-deepening pass); moves absent from order
// follow the ordered ones, in their MVV-LVA order. When deadline is set and
// wall-clock time exceeds it before every worker reports in, Root aborts and
// returns (RootResult{}, false); stragglers' results are discarded. Workers
// run under a context carrying the same deadline, so once it passes they stop
// expanding further moves.
func Root(ctx context.Context, pos board.Position, depth int, e eval.Evaluator, tt TranspositionTable, order []board.Move, deadline lang.Optional[time.Time]) (RootResult, bool) {
	moves := orderedMoves(pos, order)
	if len(moves) == 0 {
		return RootResult{Depth: depth}, true
	}

	type workerResult struct {
		move  board.Move
		star  Lodestar
		nodes uint64
	}

	results := make(chan workerResult, len(moves))

	wctx := ctx
	if d, ok := deadline.V(); ok {
		var cancel context.CancelFunc
		wctx, cancel = context.WithDeadline(ctx, d)
		defer cancel()
	}

	for _, m := range moves {
		m := m
		go func() {
			successor := pos.Apply(m).Position
			child, nodes := negamax(wctx, successor, depth-1, eval.NegInf, eval.Inf, e, tt, []board.Move{m})
			results <- workerResult{move: m, star: Lodestar{Score: -child.Score, PV: child.PV}, nodes: nodes}
		}()
	}

	collected := make(map[board.Move]workerResult, len(moves))
	for len(collected) < len(moves) {
		if d, ok := deadline.V(); ok && time.Now().After(d) {
			logw.Debugf(ctx, "Root search aborted at depth=%v: deadline exceeded with %v/%v workers reported", depth, len(collected), len(moves))
			return RootResult{}, false
		}

		select {
		case r := <-results:
			collected[r.move] = r
		default:
			time.Sleep(pollInterval)
		}
	}

	var nodes uint64
	rankings := make([]Ranking, 0, len(moves))
	for _, m := range moves {
		r := collected[m]
		rankings = append(rankings, Ranking{Move: m, Lodestar: r.star})
		nodes += r.nodes
	}
	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].Lodestar.Score > rankings[j].Lodestar.Score
	})

	return RootResult{Rankings: rankings, Depth: depth, Nodes: nodes}, true
}

// orderedMoves returns pos's legal moves, MVV-LVA ordered, with any move
// also present in order moved to the front in order's relative sequence.
func orderedMoves(pos board.Position, order []board.Move) []board.Move {
	moves := pos.LegalMoves()
	if len(order) == 0 {
		return moves
	}

	rank := make(map[board.Move]int, len(order))
	for i, m := range order {
		rank[m] = i
	}

	ranked := append([]board.Move{}, moves...)
	sort.SliceStable(ranked, func(i, j int) bool {
		ri, iok := rank[ranked[i]]
		rj, jok := rank[ranked[j]]
		switch {
		case iok && jok:
			return ri < rj
		case iok:
			return true
		case jok:
			return false
		default:
			return false
		}
	})
	return ranked
}
