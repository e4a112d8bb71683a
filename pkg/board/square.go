package board

import "fmt"

// Square represents a square on the board. Index = 8*rank + file, with
// rank 0 == rank "1" and file 0 == file "a", so A1=0, H1=7, A2=8, .., H8=63.
// A square is a 6-bit index into BitBoard.
type Square uint8

const (
	ZeroSquare Square = 0
	NumSquares Square = 64
)

// Well-known squares used by castling and tests.
const (
	A1 Square = 8*0 + 0
	C1 Square = 8*0 + 2
	D1 Square = 8*0 + 3
	E1 Square = 8*0 + 4
	F1 Square = 8*0 + 5
	H1 Square = 8*0 + 7
	E2 Square = 8*1 + 4
	E4 Square = 8*3 + 4
	A8 Square = 8*7 + 0
	E8 Square = 8*7 + 4
	H8 Square = 8*7 + 7
)

// NewSquare returns the square at the given rank and file. Both must be in 0..7.
func NewSquare(rank, file int) Square {
	return Square(8*rank + file)
}

// Rank returns the rank (0..7) of the square.
func (s Square) Rank() int {
	return int(s / 8)
}

// File returns the file (0..7) of the square.
func (s Square) File() int {
	return int(s % 8)
}

// Displace returns the square reached by moving (dr, df) from s. Returns
// false if either resulting coordinate leaves the 0..7 range -- the result
// is absent, never wrapped around the board edge.
func (s Square) Displace(dr, df int) (Square, bool) {
	r := s.Rank() + dr
	f := s.File() + df
	if r < 0 || r > 7 || f < 0 || f > 7 {
		return 0, false
	}
	return NewSquare(r, f), true
}

// String renders the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	return fmt.Sprintf("%c%c", 'a'+rune(s.File()), '1'+rune(s.Rank()))
}

// ParseSquare parses algebraic notation, e.g. "e4", into a Square.
func ParseSquare(str string) (Square, error) {
	runes := []rune(str)
	if len(runes) != 2 {
		return 0, fmt.Errorf("invalid square: %q", str)
	}

	file := runes[0]
	rank := runes[1]
	if file < 'a' || file > 'h' {
		return 0, fmt.Errorf("invalid file in square: %q", str)
	}
	if rank < '1' || rank > '8' {
		return 0, fmt.Errorf("invalid rank in square: %q", str)
	}
	return NewSquare(int(rank-'1'), int(file-'a')), nil
}
