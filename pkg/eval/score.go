package eval

import (
	"fmt"

	"github.com/leafline-go/leafline/pkg/board"
)

// Score is a signed centipawn-equivalent value, measured from team A's
// perspective. Positive favors A. The King's nominal value (20000) is large
// enough that a checkmate-adjacent position swings the score far outside any
// realistic material balance, without requiring the evaluator to special-case
// checkmate itself -- disambiguating "no legal moves" into checkmate versus
// stalemate is a collaborator-layer concern.
type Score float64

const (
	NegInf         = MinScore - 1
	MinScore Score = -1000000
	MaxScore Score = 1000000
	Inf            = MaxScore + 1
)

func (s Score) String() string {
	return fmt.Sprintf("%.2f", float64(s))
}

// Orient converts an A-perspective Score into t's perspective: +1 for A, -1 for B.
func Orient(s Score, t board.Team) Score {
	return Score(t.Orientation()) * s
}

// Crop clamps s into [MinScore, MaxScore].
func Crop(s Score) Score {
	switch {
	case s > MaxScore:
		return MaxScore
	case s < MinScore:
		return MinScore
	default:
		return s
	}
}

// Max returns the larger of two scores.
func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// Min returns the smaller of two scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}
