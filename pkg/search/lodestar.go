// Package search implements alpha-beta negamax search over board.Position,
// backed by a bounded transposition memo and a parallel root.
package search

import (
	"fmt"

	"github.com/leafline-go/leafline/pkg/board"
	"github.com/leafline-go/leafline/pkg/eval"
)

// Lodestar is the result of searching a position to some depth: the score
// achieved (oriented to whichever side was to move at the position this
// Lodestar was computed for) and the principal variation of moves leading
// to it.
type Lodestar struct {
	Score eval.Score
	PV    []board.Move
}

func (l Lodestar) String() string {
	return fmt.Sprintf("score=%v pv=%v", l.Score, board.FormatMoves(l.PV))
}
