package search

import (
	"context"

	"github.com/leafline-go/leafline/pkg/board"
	"github.com/leafline-go/leafline/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// negamax implements fail-hard alpha-beta negamax. pv is the accumulated
// move sequence from the search root to pos; the returned Lodestar's PV
// extends it to the position actually reached at the horizon. nodes counts
// interior and leaf nodes visited in this call's own subtree; a transposition
// hit counts as one node and is not expanded.
//
// Contract (unchanged from the core's specification): at depth 0 or with no
// legal moves, return the oriented static evaluation. Otherwise generate
// legal moves in MVV-LVA order and, for each successor, either reuse a
// memoized score on a transposition hit (without extending the PV) or
// recurse with a negated, swapped window and memoize the result.
func negamax(ctx context.Context, pos board.Position, depth int, alpha, beta eval.Score, e eval.Evaluator, tt TranspositionTable, pv []board.Move) (Lodestar, uint64) {
	moves := pos.LegalMoves()
	if depth == 0 || len(moves) == 0 {
		return Lodestar{Score: eval.Orient(e.Evaluate(ctx, pos), pos.SideToMove()), PV: pv}, 1
	}

	var nodes uint64 = 1
	best := Lodestar{Score: eval.NegInf, PV: pv}

	for _, m := range moves {
		if contextx.IsCancelled(ctx) {
			break
		}

		successor := pos.Apply(m).Position

		var score eval.Score
		var resultPV []board.Move

		if cached, ok := tt.Read(successor); ok {
			score = cached.Score
			resultPV = pv // a TT hit reuses the score without extending the PV
			nodes++
		} else {
			extended := extendPV(pv, m)
			child, childNodes := negamax(ctx, successor, depth-1, -beta, -alpha, e, tt, extended)
			nodes += childNodes

			score = -child.Score
			resultPV = child.PV
			// The memo records no search depth: a later Read from a deeper
			// search reuses this score as-is.
			tt.Write(successor, Lodestar{Score: score, PV: resultPV})
		}

		if score > best.Score {
			best = Lodestar{Score: score, PV: resultPV}
		}
		if best.Score > alpha {
			alpha = best.Score
		}
		if alpha >= beta {
			break // cutoff
		}
	}

	// Fail-hard: the returned score is clamped into [alpha, beta].
	if alpha > beta {
		alpha = beta
	}
	best.Score = alpha
	return best, nodes
}

func extendPV(pv []board.Move, m board.Move) []board.Move {
	extended := make([]board.Move, len(pv), len(pv)+1)
	copy(extended, pv)
	return append(extended, m)
}

// Search runs negamax from pos to the given depth with the full window,
// returning the Lodestar and the number of nodes visited.
func Search(ctx context.Context, pos board.Position, depth int, e eval.Evaluator, tt TranspositionTable) (Lodestar, uint64) {
	return negamax(ctx, pos, depth, eval.NegInf, eval.Inf, e, tt, nil)
}
