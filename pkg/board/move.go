package board

import (
	"fmt"
	"strings"
)

// Move represents a not-necessarily-legal move, along with the contextual
// metadata needed to apply it. Castling is identified structurally by a king
// file-delta of ±2; promotion is identified structurally by a pawn reaching
// its far rank. Both kinds of move carry no separate "type" tag -- the
// structural shape of From/To/Piece/Promotion is the only source of truth.
type Move struct {
	Piece      Piece
	From, To   Square
	Captured   Piece // zero value ({0,0}=(A,Pawn)) is disambiguated by CapturedOK
	CapturedOK bool
	Promotion  Role // zero value (Pawn) is disambiguated by IsPromotion
}

// IsCastling reports whether m is structurally a castling move: a king move
// whose file delta is ±2.
func (m Move) IsCastling() bool {
	return m.Piece.Role == King && abs(m.To.File()-m.From.File()) == 2
}

// IsPromotion reports whether m is structurally a promotion: a pawn reaching
// its far rank (rank 7 for team A, rank 0 for team B).
func (m Move) IsPromotion() bool {
	if m.Piece.Role != Pawn {
		return false
	}
	farRank := 7
	if m.Piece.Team == B {
		farRank = 0
	}
	return m.To.Rank() == farRank
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// String renders the move in UCI-style coordinate notation, e.g. "e2e4" or,
// for a realized promotion, "e7e8q".
func (m Move) String() string {
	if m.IsPromotion() && m.Promotion != Pawn {
		return fmt.Sprintf("%v%v%c", m.From, m.To, promotionRune(m.Promotion))
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}

// FormatMoves renders a sequence of moves as a space-separated string, for
// log lines and principal-variation printing.
func FormatMoves(moves []Move) string {
	strs := make([]string, len(moves))
	for i, m := range moves {
		strs[i] = m.String()
	}
	return strings.Join(strs, " ")
}

func promotionRune(r Role) rune {
	p := Piece{Team: B, Role: r} // lowercase regardless of the mover's team
	return p.Rune()
}

// ParseMove parses pure algebraic coordinate notation such as "e2e4" or
// "e7e8q" into a (From, To, Promotion) triple. It does not know the moving
// piece or whether the move is castling -- that context comes from the
// Position the move is applied to.
func ParseMove(str string) (from, to Square, promotion Role, err error) {
	runes := []rune(str)
	if len(runes) != 4 && len(runes) != 5 {
		return 0, 0, 0, fmt.Errorf("invalid move: %q", str)
	}

	from, err = ParseSquare(string(runes[0:2]))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid move %q: %w", str, err)
	}
	to, err = ParseSquare(string(runes[2:4]))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid move %q: %w", str, err)
	}

	promotion = Pawn
	if len(runes) == 5 {
		p, ok := PieceFromRune(runes[4])
		if !ok || p.Role == Pawn || p.Role == King {
			return 0, 0, 0, fmt.Errorf("invalid promotion in move: %q", str)
		}
		promotion = p.Role
	}
	return from, to, promotion, nil
}
