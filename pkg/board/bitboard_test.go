package board_test

import (
	"testing"

	"github.com/leafline-go/leafline/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestBitBoardBasics(t *testing.T) {
	b := board.EmptyBitBoard
	assert.False(t, b.Has(board.A1))

	b = b.Add(board.A1).Add(board.H8)
	assert.True(t, b.Has(board.A1))
	assert.True(t, b.Has(board.H8))
	assert.Equal(t, 2, b.PopCount())

	b = b.Remove(board.A1)
	assert.False(t, b.Has(board.A1))
	assert.Equal(t, 1, b.PopCount())
}

func TestBitBoardTransit(t *testing.T) {
	b := board.Mask(board.A1)
	b = b.Transit(board.A1, board.A8)
	assert.False(t, b.Has(board.A1))
	assert.True(t, b.Has(board.A8))
}

func TestBitBoardSquares(t *testing.T) {
	b := board.Mask(board.A1).Union(board.Mask(board.H1)).Union(board.Mask(board.H8))
	assert.Equal(t, []board.Square{board.A1, board.H1, board.H8}, b.Squares())
}

func TestKnightAttacksCorner(t *testing.T) {
	attacks := board.KnightAttacks(board.A1)
	assert.Equal(t, 2, attacks.PopCount())
	assert.True(t, attacks.Has(board.NewSquare(1, 2)))
	assert.True(t, attacks.Has(board.NewSquare(2, 1)))
}

func TestKingAttacksCorner(t *testing.T) {
	attacks := board.KingAttacks(board.A1)
	assert.Equal(t, 3, attacks.PopCount())
}
