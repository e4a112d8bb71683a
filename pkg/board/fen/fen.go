// Package fen reads and writes positions in a restricted, three-field FEN
// notation: piece placement, active color, and castling rights. The
// halfmove clock, fullmove number, and en passant target present in full
// FEN are accepted and ignored on parse, and never emitted -- this engine
// core does not model en passant or the fifty-move rule (spec.md §9,
// design note 2).
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leafline-go/leafline/pkg/board"
)

// Initial is the restricted-form starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq"

// Decode parses a position from its restricted or full FEN text. Only the
// first three whitespace-separated fields are consulted; any further
// fields (en passant, halfmove clock, fullmove number) are accepted for
// compatibility with full FEN input and discarded.
func Decode(s string) (board.Position, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) < 3 {
		return board.Position{}, fmt.Errorf("invalid number of sections in FEN: %q", s)
	}

	placements, err := decodePlacement(parts[0])
	if err != nil {
		return board.Position{}, fmt.Errorf("invalid FEN %q: %w", s, err)
	}

	sideToMove, ok := decodeTeam(parts[1])
	if !ok {
		return board.Position{}, fmt.Errorf("invalid active color in FEN: %q", s)
	}

	castling, ok := board.ParseCastling(parts[2])
	if !ok {
		return board.Position{}, fmt.Errorf("invalid castling in FEN: %q", s)
	}

	pos, err := board.NewPosition(placements, castling, sideToMove)
	if err != nil {
		return board.Position{}, fmt.Errorf("invalid FEN %q: %w", s, err)
	}
	return pos, nil
}

// decodePlacement parses FEN's field 1: ranks 8 down to 1, separated by
// "/", each rank's squares given file a through h.
func decodePlacement(field string) ([]board.Placement, error) {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("expected 8 ranks, got %v", len(ranks))
	}

	var placements []board.Placement
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, r := range rankStr {
			switch {
			case r >= '1' && r <= '8':
				file += int(r - '0')
			default:
				piece, ok := board.PieceFromRune(r)
				if !ok {
					return nil, fmt.Errorf("invalid piece rune %q", r)
				}
				if file > 7 {
					return nil, fmt.Errorf("rank %v overflows 8 files", rank+1)
				}
				placements = append(placements, board.Placement{
					Square: board.NewSquare(rank, file),
					Piece:  piece,
				})
				file++
			}
		}
		if file != 8 {
			return nil, fmt.Errorf("rank %v has %v files, want 8", rank+1, file)
		}
	}
	return placements, nil
}

func decodeTeam(field string) (board.Team, bool) {
	switch field {
	case "w", "W":
		return board.A, true
	case "b", "B":
		return board.B, true
	default:
		return 0, false
	}
}

func encodeTeam(t board.Team) string {
	if t == board.A {
		return "w"
	}
	return "b"
}

// Encode renders pos in the restricted three-field form.
func Encode(pos board.Position) string {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		rank := 7 - i
		blanks := 0
		for file := 0; file < 8; file++ {
			piece, ok := pos.PieceAt(board.NewSquare(rank, file))
			if !ok {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(piece.Rune())
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if i < 7 {
			sb.WriteString("/")
		}
	}

	return fmt.Sprintf("%v %v %v", sb.String(), encodeTeam(pos.SideToMove()), pos.Castling())
}
