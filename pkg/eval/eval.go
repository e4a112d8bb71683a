// Package eval contains static position evaluation.
package eval

import (
	"context"

	"github.com/leafline-go/leafline/pkg/board"
)

// Evaluator is a static position evaluator. It is referentially transparent
// and holds no hidden state; ctx is threaded through purely so callers can
// trace evaluation calls with logw the same way they trace search.
type Evaluator interface {
	// Evaluate returns the position score in centipawn-equivalents, from
	// team A's perspective.
	Evaluate(ctx context.Context, pos board.Position) Score
}

// Material is the nominal material evaluator: the material table only, no
// positional terms.
type Material struct{}

func (Material) Evaluate(ctx context.Context, pos board.Position) Score {
	return materialBalance(pos)
}

// Standard is the full evaluator described by the core: material plus the
// positional terms (bishop pair, center presence, rook on seventh, advanced
// pawns, castling option).
type Standard struct{}

func (Standard) Evaluate(ctx context.Context, pos board.Position) Score {
	return materialBalance(pos) + positionalBalance(pos)
}

// NominalValue is the absolute material value of a role, in
// centipawn-equivalents. The King's value (20000) is arbitrary but large
// enough to dominate every other term.
func NominalValue(r board.Role) Score {
	switch r {
	case board.Pawn:
		return 1.0
	case board.Knight:
		return 3.2
	case board.Bishop:
		return 3.3
	case board.Rook:
		return 5.1
	case board.Queen:
		return 8.8
	case board.King:
		return 20000.0
	default:
		return 0
	}
}

// NominalGain is the nominal material gain realized by playing m: the
// captured piece's value, plus any promotion gain over a plain pawn.
func NominalGain(m board.Move) Score {
	var gain Score
	if m.CapturedOK {
		gain += NominalValue(m.Captured.Role)
	}
	if m.IsPromotion() && m.Promotion != board.Pawn {
		gain += NominalValue(m.Promotion) - NominalValue(board.Pawn)
	}
	return gain
}

func materialBalance(pos board.Position) Score {
	var balance Score
	for r := board.Pawn; r < board.NumRoles; r++ {
		a := pos.Board(board.A, r).PopCount()
		b := pos.Board(board.B, r).PopCount()
		balance += Score(a-b) * NominalValue(r)
	}
	return balance
}

const (
	bishopPairBonus    Score = 0.5
	centerPresenceUnit Score = 0.1
	rookOnSeventhUnit  Score = 0.5
	rank7PawnUnit      Score = 1.8
	rank6PawnUnit      Score = 0.6
	castlingOptionUnit Score = 0.1
)

var centerBlock = func() board.BitBoard {
	var bb board.BitBoard
	for rank := 2; rank <= 5; rank++ {
		for file := 2; file <= 5; file++ {
			bb = bb.Add(board.NewSquare(rank, file))
		}
	}
	return bb
}()

func positionalBalance(pos board.Position) Score {
	var balance Score

	for _, t := range [2]board.Team{board.A, board.B} {
		sign := Score(t.Orientation())

		// Each team's terms are totalled before the signed total is added, so
		// mirror-image positions cancel exactly.
		var team Score

		if pos.Board(t, board.Bishop).PopCount() >= 2 {
			team += bishopPairBonus
		}

		centerCount := pos.Board(t, board.Pawn).Intersect(centerBlock).PopCount() +
			pos.Board(t, board.Knight).Intersect(centerBlock).PopCount()
		team += centerPresenceUnit * Score(centerCount)

		seventh := 6
		if t == board.B {
			seventh = 1
		}
		rookCount := 0
		for _, sq := range pos.Board(t, board.Rook).Squares() {
			if sq.Rank() == seventh {
				rookCount++
			}
		}
		team += rookOnSeventhUnit * Score(rookCount)

		rank7, rank6 := 6, 5
		if t == board.B {
			rank7, rank6 = 1, 2
		}
		for _, sq := range pos.Board(t, board.Pawn).Squares() {
			switch sq.Rank() {
			case rank7:
				team += rank7PawnUnit
			case rank6:
				team += rank6PawnUnit
			}
		}

		if pos.Castling().Allows(board.KingSide(t)) || pos.Castling().Allows(board.QueenSide(t)) {
			team += castlingOptionUnit
		}

		balance += sign * team
	}

	return balance
}
