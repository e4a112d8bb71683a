package board

import "fmt"

// Role represents a chess piece's function, independent of team. 3 bits.
type Role uint8

const (
	Pawn Role = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

const NumRoles Role = 6

func (r Role) IsValid() bool {
	return r <= King
}

func (r Role) String() string {
	switch r {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "?"
	}
}

// Piece is a (Team, Role) pair. There are exactly twelve.
type Piece struct {
	Team Team
	Role Role
}

// preservationRune is the bijection between Piece and case-distinct ASCII
// runes: team A uppercase, team B lowercase.
var preservationRune = [NumTeams][NumRoles]rune{
	A: {Pawn: 'P', Knight: 'N', Bishop: 'B', Rook: 'R', Queen: 'Q', King: 'K'},
	B: {Pawn: 'p', Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q', King: 'k'},
}

// Rune returns the ASCII preservation rune for the piece (e.g. 'P', 'n').
func (p Piece) Rune() rune {
	return preservationRune[p.Team][p.Role]
}

func (p Piece) String() string {
	return fmt.Sprintf("%c", p.Rune())
}

// PieceFromRune inverts Rune: it recovers the Piece for an ASCII
// preservation rune, e.g. 'P' -> (A, Pawn).
func PieceFromRune(r rune) (Piece, bool) {
	for team := A; team < NumTeams; team++ {
		for role := Pawn; role < NumRoles; role++ {
			if preservationRune[team][role] == r {
				return Piece{Team: team, Role: role}, true
			}
		}
	}
	return Piece{}, false
}
