package board

// Commit is the result of applying a Move: the move itself, paired with the
// Position it produced. Search and perft-style walkers thread Commits rather
// than re-deriving the successor position from (Position, Move) each time.
type Commit struct {
	Move     Move
	Position Position
}
