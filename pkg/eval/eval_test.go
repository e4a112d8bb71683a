package eval_test

import (
	"context"
	"testing"

	"github.com/leafline-go/leafline/pkg/board"
	"github.com/leafline-go/leafline/pkg/eval"
	"github.com/stretchr/testify/assert"
)

func TestInitialPositionIsSymmetric(t *testing.T) {
	score := eval.Standard{}.Evaluate(context.Background(), board.Initial())
	assert.Equal(t, eval.Score(0), score)
}

func TestMaterialOnlyIgnoresPosition(t *testing.T) {
	score := eval.Material{}.Evaluate(context.Background(), board.Initial())
	assert.Equal(t, eval.Score(0), score)
}

func TestMaterialBalanceFavorsExtraQueen(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: board.E1, Piece: board.Piece{Team: board.A, Role: board.King}},
		{Square: board.E8, Piece: board.Piece{Team: board.B, Role: board.King}},
		{Square: board.D1, Piece: board.Piece{Team: board.A, Role: board.Queen}},
	}, board.NoCastling, board.A)
	assert.NoError(t, err)

	score := eval.Material{}.Evaluate(context.Background(), pos)
	assert.Equal(t, eval.NominalValue(board.Queen), score)
}

func TestOrientFlipsSignForTeamB(t *testing.T) {
	assert.Equal(t, eval.Score(5), eval.Orient(eval.Score(5), board.A))
	assert.Equal(t, eval.Score(-5), eval.Orient(eval.Score(5), board.B))
}

func TestBishopPairBonus(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: board.E1, Piece: board.Piece{Team: board.A, Role: board.King}},
		{Square: board.E8, Piece: board.Piece{Team: board.B, Role: board.King}},
		{Square: board.C1, Piece: board.Piece{Team: board.A, Role: board.Bishop}},
		{Square: board.F1, Piece: board.Piece{Team: board.A, Role: board.Bishop}},
	}, board.NoCastling, board.A)
	assert.NoError(t, err)

	score := eval.Standard{}.Evaluate(context.Background(), pos)
	assert.True(t, score > 0)
}
