package board

import "sort"

// generateMoves produces the pseudo-legal moves available to mover in pos.
// With includeCastling false ("reckless" generation) the castling pass is
// skipped entirely, breaking the recursion that would otherwise occur
// between castling generation and AttackedBy (which itself calls
// generateMoves to probe for attackers).
func generateMoves(pos Position, mover Team, includeCastling bool) []Move {
	var moves []Move

	for _, sq := range pos.Board(mover, Pawn).Squares() {
		moves = append(moves, pawnMoves(pos, mover, sq)...)
	}
	for _, sq := range pos.Board(mover, Knight).Squares() {
		moves = append(moves, stepMoves(pos, mover, sq, Knight, KnightAttacks(sq))...)
	}
	for _, sq := range pos.Board(mover, Bishop).Squares() {
		moves = append(moves, rayMoves(pos, mover, sq, Bishop, diagonalOffsets)...)
	}
	for _, sq := range pos.Board(mover, Rook).Squares() {
		moves = append(moves, rayMoves(pos, mover, sq, Rook, orthogonalOffsets)...)
	}
	for _, sq := range pos.Board(mover, Queen).Squares() {
		moves = append(moves, rayMoves(pos, mover, sq, Queen, diagonalOffsets)...)
		moves = append(moves, rayMoves(pos, mover, sq, Queen, orthogonalOffsets)...)
	}
	for _, sq := range pos.Board(mover, King).Squares() {
		moves = append(moves, stepMoves(pos, mover, sq, King, KingAttacks(sq))...)
	}

	if includeCastling {
		moves = append(moves, castlingMoves(pos, mover)...)
	}

	return moves
}

var promotionRoles = [4]Role{Queen, Rook, Bishop, Knight}

func pawnMoves(pos Position, mover Team, from Square) []Move {
	var moves []Move
	piece := Piece{Team: mover, Role: Pawn}

	forward := 1
	startRank := 1
	if mover == B {
		forward = -1
		startRank = 6
	}

	if one, ok := from.Displace(forward, 0); ok && !pos.Occupied().Has(one) {
		moves = append(moves, expandPawnMove(piece, from, one, Piece{}, false)...)

		if from.Rank() == startRank {
			if two, ok := from.Displace(2*forward, 0); ok && !pos.Occupied().Has(two) {
				moves = append(moves, Move{Piece: piece, From: from, To: two})
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to, ok := from.Displace(forward, df)
		if !ok {
			continue
		}
		captured, present := pos.PieceAt(to)
		if present && captured.Team != mover {
			moves = append(moves, expandPawnMove(piece, from, to, captured, true)...)
		}
	}

	return moves
}

func expandPawnMove(piece Piece, from, to Square, captured Piece, capturedOK bool) []Move {
	farRank := 7
	if piece.Team == B {
		farRank = 0
	}
	if to.Rank() != farRank {
		return []Move{{Piece: piece, From: from, To: to, Captured: captured, CapturedOK: capturedOK}}
	}

	moves := make([]Move, 0, len(promotionRoles))
	for _, r := range promotionRoles {
		moves = append(moves, Move{
			Piece: piece, From: from, To: to,
			Captured: captured, CapturedOK: capturedOK,
			Promotion: r,
		})
	}
	return moves
}

func stepMoves(pos Position, mover Team, from Square, role Role, destinations BitBoard) []Move {
	var moves []Move
	piece := Piece{Team: mover, Role: role}

	for _, to := range destinations.Intersect(pos.TeamOccupied(mover).Complement()).Squares() {
		captured, present := pos.PieceAt(to)
		moves = append(moves, Move{Piece: piece, From: from, To: to, Captured: captured, CapturedOK: present})
	}
	return moves
}

func rayMoves(pos Position, mover Team, from Square, role Role, offsets [4][2]int) []Move {
	var moves []Move
	piece := Piece{Team: mover, Role: role}

	for _, o := range offsets {
		to := from
		for {
			next, ok := to.Displace(o[0], o[1])
			if !ok {
				break
			}
			to = next

			captured, present := pos.PieceAt(to)
			if present && captured.Team == mover {
				break
			}
			moves = append(moves, Move{Piece: piece, From: from, To: to, Captured: captured, CapturedOK: present})
			if present {
				break
			}
		}
	}
	return moves
}

// castlingMoves generates the (at most two) pseudo-legal castling moves for
// mover: the king and the relevant rook must sit on their home squares with
// full rights retained, every square between them must be empty, and neither
// the king's home square nor any square it crosses or lands on may be
// attacked by the opposing team.
func castlingMoves(pos Position, mover Team) []Move {
	var moves []Move
	king := kingHomeSquare(mover)
	if pos.KingSquare(mover) != king {
		return nil
	}
	if pos.InCheck(mover) {
		return nil
	}

	for _, kingside := range [2]bool{true, false} {
		right := KingSide(mover)
		if !kingside {
			right = QueenSide(mover)
		}
		if !pos.Castling().Allows(right) {
			continue
		}

		rookSq := rookHomeSquare(mover, kingside)
		if !pos.Board(mover, Rook).Has(rookSq) {
			continue
		}

		between := squaresBetween(king, rookSq)
		if pos.Occupied().Intersect(between) != EmptyBitBoard {
			continue
		}

		crossed := rookCrossedSquare(mover, kingside)
		landing := kingLandingSquare(mover, kingside)
		if pos.AttackedBy(crossed, mover.Opposite()) || pos.AttackedBy(landing, mover.Opposite()) {
			continue
		}

		moves = append(moves, Move{Piece: Piece{Team: mover, Role: King}, From: king, To: landing})
	}
	return moves
}

func kingLandingSquare(t Team, kingside bool) Square {
	if kingside {
		return NewSquare(homeRank(t), 6)
	}
	return NewSquare(homeRank(t), 2)
}

func squaresBetween(a, b Square) BitBoard {
	lo, hi := a.File(), b.File()
	if lo > hi {
		lo, hi = hi, lo
	}
	var ret BitBoard
	for f := lo + 1; f < hi; f++ {
		ret = ret.Add(NewSquare(a.Rank(), f))
	}
	return ret
}

// orderByMVVLVA sorts captures before non-captures, and among captures, by
// descending victim value then ascending attacker value (most-valuable-
// victim/least-valuable-attacker). Ties and non-captures retain generation
// order.
func orderByMVVLVA(moves []Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return mvvLvaKey(moves[i]) > mvvLvaKey(moves[j])
	})
}

// roleValue is ordinal, not the evaluator's material scale: it exists only
// to rank captures relative to one another.
var roleValue = [NumRoles]int{Pawn: 1, Knight: 3, Bishop: 3, Rook: 5, Queen: 9, King: 20}

func mvvLvaKey(m Move) int {
	if !m.CapturedOK {
		return -1
	}
	return roleValue[m.Captured.Role]*32 - roleValue[m.Piece.Role]
}
