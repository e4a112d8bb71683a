package board_test

import (
	"testing"

	"github.com/leafline-go/leafline/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialPosition(t *testing.T) {
	pos := board.Initial()
	assert.Equal(t, board.A, pos.SideToMove())
	assert.Equal(t, board.FullCastling, pos.Castling())
	assert.Equal(t, 20, len(pos.LegalMoves()))

	wp, ok := pos.PieceAt(board.NewSquare(1, 4))
	require.True(t, ok)
	assert.Equal(t, board.Piece{Team: board.A, Role: board.Pawn}, wp)
}

func TestNewPositionRejectsDuplicatePlacement(t *testing.T) {
	_, err := board.NewPosition([]board.Placement{
		{Square: board.A1, Piece: board.Piece{Team: board.A, Role: board.King}},
		{Square: board.A1, Piece: board.Piece{Team: board.B, Role: board.King}},
	}, board.NoCastling, board.A)
	assert.Error(t, err)
}

func TestNewPositionRequiresOneKingPerTeam(t *testing.T) {
	_, err := board.NewPosition([]board.Placement{
		{Square: board.A1, Piece: board.Piece{Team: board.A, Role: board.King}},
	}, board.NoCastling, board.A)
	assert.Error(t, err)
}

func TestPawnPromotionGeneratesFourMoves(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: board.NewSquare(6, 3), Piece: board.Piece{Team: board.A, Role: board.Pawn}},
		{Square: board.E1, Piece: board.Piece{Team: board.A, Role: board.King}},
		{Square: board.E8, Piece: board.Piece{Team: board.B, Role: board.King}},
	}, board.NoCastling, board.A)
	require.NoError(t, err)

	var promotions int
	for _, m := range pos.LegalMoves() {
		if m.IsPromotion() {
			promotions++
		}
	}
	assert.Equal(t, 4, promotions)
}

func TestNoCastlingOutOfCheck(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: board.E1, Piece: board.Piece{Team: board.A, Role: board.King}},
		{Square: board.H1, Piece: board.Piece{Team: board.A, Role: board.Rook}},
		{Square: board.E8, Piece: board.Piece{Team: board.B, Role: board.King}},
		{Square: board.E2, Piece: board.Piece{Team: board.B, Role: board.Rook}},
	}, board.FullCastling, board.A)
	require.NoError(t, err)

	require.True(t, pos.InCheck(board.A))
	for _, m := range pos.LegalMoves() {
		assert.False(t, m.IsCastling())
	}
}

func TestNoCastlingThroughAttackedSquare(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: board.E1, Piece: board.Piece{Team: board.A, Role: board.King}},
		{Square: board.H1, Piece: board.Piece{Team: board.A, Role: board.Rook}},
		{Square: board.E8, Piece: board.Piece{Team: board.B, Role: board.King}},
		{Square: board.NewSquare(5, 5), Piece: board.Piece{Team: board.B, Role: board.Rook}}, // f6 attacks f1
	}, board.FullCastling, board.A)
	require.NoError(t, err)

	for _, m := range pos.LegalMoves() {
		assert.False(t, m.IsCastling())
	}
}

func TestCastlingEmittedAndSerialized(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: board.E1, Piece: board.Piece{Team: board.A, Role: board.King}},
		{Square: board.H1, Piece: board.Piece{Team: board.A, Role: board.Rook}},
		{Square: board.E8, Piece: board.Piece{Team: board.B, Role: board.King}},
	}, board.FullCastling, board.A)
	require.NoError(t, err)

	var found board.Move
	var ok bool
	for _, m := range pos.LegalMoves() {
		if m.IsCastling() {
			found, ok = m, true
		}
	}
	require.True(t, ok)
	assert.Equal(t, "e1g1", found.String())

	commit := pos.Apply(found)
	rook, present := commit.Position.PieceAt(board.NewSquare(0, 5))
	require.True(t, present)
	assert.Equal(t, board.Rook, rook.Role)
	assert.False(t, commit.Position.Castling().Allows(board.KingSide(board.A)))
}

func TestApplyLegalRejectsSelfCheck(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: board.E1, Piece: board.Piece{Team: board.A, Role: board.King}},
		{Square: board.E2, Piece: board.Piece{Team: board.A, Role: board.Rook}},
		{Square: board.E8, Piece: board.Piece{Team: board.B, Role: board.King}},
		{Square: board.E4, Piece: board.Piece{Team: board.B, Role: board.Rook}},
	}, board.NoCastling, board.A)
	require.NoError(t, err)

	for _, m := range pos.LegalMoves() {
		assert.False(t, m.Piece.Role == board.Rook && m.From == board.NewSquare(1, 4) && m.To.File() != 4)
	}
}

func TestFoolsMate(t *testing.T) {
	pos := board.Initial()

	apply := func(p board.Position, from, to string) board.Position {
		f, err := board.ParseSquare(from)
		require.NoError(t, err)
		tt, err := board.ParseSquare(to)
		require.NoError(t, err)
		piece, ok := p.PieceAt(f)
		require.True(t, ok)
		captured, capturedOK := p.PieceAt(tt)
		commit, ok := p.ApplyLegal(board.Move{Piece: piece, From: f, To: tt, Captured: captured, CapturedOK: capturedOK})
		require.True(t, ok)
		return commit.Position
	}

	pos = apply(pos, "f2", "f3")
	pos = apply(pos, "e7", "e5")
	pos = apply(pos, "g2", "g4")
	pos = apply(pos, "d8", "h4")

	assert.True(t, pos.InCheck(board.A))
	assert.Empty(t, pos.LegalMoves())
}
