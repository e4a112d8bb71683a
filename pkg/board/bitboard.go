package board

import (
	"math/bits"
	"strings"
)

// BitBoard is a bit-wise representation of a set of squares: bit k set iff
// the square with index k is a member. It relies on CPU support for popcount
// and bit-scan.
type BitBoard uint64

const EmptyBitBoard BitBoard = 0

// Mask returns a BitBoard with only the given square populated.
func Mask(sq Square) BitBoard {
	return BitBoard(1) << sq
}

// Has reports whether sq is a member of b.
func (b BitBoard) Has(sq Square) bool {
	return b&Mask(sq) != 0
}

// Add returns b with sq added.
func (b BitBoard) Add(sq Square) BitBoard {
	return b | Mask(sq)
}

// Remove returns b with sq removed.
func (b BitBoard) Remove(sq Square) BitBoard {
	return b &^ Mask(sq)
}

// Transit returns b with from removed and to added -- the set analogue of
// moving a single piece.
func (b BitBoard) Transit(from, to Square) BitBoard {
	return b.Remove(from).Add(to)
}

// Union returns the union of b and o.
func (b BitBoard) Union(o BitBoard) BitBoard {
	return b | o
}

// Intersect returns the intersection of b and o.
func (b BitBoard) Intersect(o BitBoard) BitBoard {
	return b & o
}

// Complement returns the set complement of b.
func (b BitBoard) Complement() BitBoard {
	return ^b
}

// PopCount returns the number of member squares.
func (b BitBoard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// FirstSquare returns the least-significant member square. Only valid if b != 0.
func (b BitBoard) FirstSquare() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Squares enumerates the member squares in ascending index order.
func (b BitBoard) Squares() []Square {
	ret := make([]Square, 0, b.PopCount())
	for b != 0 {
		sq := b.FirstSquare()
		ret = append(ret, sq)
		b = b.Remove(sq)
	}
	return ret
}

func (b BitBoard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if b.Has(NewSquare(rank, file)) {
				sb.WriteRune('X')
			} else {
				sb.WriteRune('-')
			}
		}
		if rank > 0 {
			sb.WriteRune('/')
		}
	}
	return sb.String()
}

// knightTable and kingTable hold the raw (occupancy-agnostic) destination
// sets for a knight/king from every origin square. Filtering out own-team
// occupancy is the generator's job, not the table's.
var (
	knightTable [NumSquares]BitBoard
	kingTable   [NumSquares]BitBoard
)

var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func init() {
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		var knights, kings BitBoard
		for _, o := range knightOffsets {
			if dest, ok := sq.Displace(o[0], o[1]); ok {
				knights = knights.Add(dest)
			}
		}
		for _, o := range kingOffsets {
			if dest, ok := sq.Displace(o[0], o[1]); ok {
				kings = kings.Add(dest)
			}
		}
		knightTable[sq] = knights
		kingTable[sq] = kings
	}
}

// KnightAttacks returns the raw destination set for a knight on sq.
func KnightAttacks(sq Square) BitBoard {
	return knightTable[sq]
}

// KingAttacks returns the raw destination set for a king on sq.
func KingAttacks(sq Square) BitBoard {
	return kingTable[sq]
}

// diagonalOffsets and orthogonalOffsets drive the sliding-piece ray walks
// used by bishop/rook/queen generation.
var (
	diagonalOffsets   = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	orthogonalOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)
