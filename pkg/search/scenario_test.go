package search_test

import (
	"context"
	"testing"

	"github.com/leafline-go/leafline/pkg/board"
	"github.com/leafline-go/leafline/pkg/board/fen"
	"github.com/leafline-go/leafline/pkg/eval"
	"github.com/leafline-go/leafline/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSearchFindsKnightForkAtDepthThree is the tactic scenario from
// spec.md §8: promoting the c7 pawn to a knight lands on c8, giving check
// to the king on e7 and simultaneously attacking the queen on a7. Once the
// king moves out of check, the knight is free to take the queen, so depth-3
// iterative deepening should prefer it over every quiet alternative.
//
// Note: spec.md's scenario text states the destination square as "a8"; the
// only square a promoting pawn can reach that both checks the king on e7
// and attacks the queen on a7 is c8 (the pawn's own file), which this test
// follows as the internally consistent reading -- see DESIGN.md.
func TestSearchFindsKnightForkAtDepthThree(t *testing.T) {
	pos, err := fen.Decode("8/q1P1k3/8/8/8/8/6PP/7K w -")
	require.NoError(t, err)

	tt := search.NoTranspositionTable{}
	results := search.FixedDepths(context.Background(), pos, eval.Material{}, tt, []int{1, 2, 3})
	require.Len(t, results, 3)

	best := results[2].Rankings[0]

	c8, err := board.ParseSquare("c8")
	require.NoError(t, err)

	assert.Equal(t, c8, best.Move.To)
	assert.Equal(t, board.Knight, best.Move.Promotion)

	commit := pos.Apply(best.Move)
	assert.True(t, commit.Position.InCheck(board.B))
}
