package board_test

import (
	"testing"

	"github.com/leafline-go/leafline/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareRoundTrip(t *testing.T) {
	tests := []struct {
		str string
		sq  board.Square
	}{
		{"a1", board.A1},
		{"e1", board.E1},
		{"h1", board.H1},
		{"a8", board.A8},
		{"h8", board.H8},
		{"e4", board.NewSquare(3, 4)},
	}

	for _, tt := range tests {
		sq, err := board.ParseSquare(tt.str)
		require.NoError(t, err)
		assert.Equal(t, tt.sq, sq)
		assert.Equal(t, tt.str, sq.String())
	}
}

func TestSquareInvalid(t *testing.T) {
	for _, str := range []string{"", "a", "a9", "i1", "e44"} {
		_, err := board.ParseSquare(str)
		assert.Error(t, err)
	}
}

func TestSquareDisplace(t *testing.T) {
	sq, ok := board.A1.Displace(1, 1)
	require.True(t, ok)
	assert.Equal(t, board.NewSquare(1, 1), sq)

	_, ok = board.A1.Displace(-1, 0)
	assert.False(t, ok)

	_, ok = board.H8.Displace(0, 1)
	assert.False(t, ok)
}
