package model

import "errors"

// ErrOutOfBounds reports coordinates outside [0,7]. This is a caller bug,
// not a rule rejection, so it is surfaced as an error instead of a silent
// false.
var ErrOutOfBounds = errors.New("square out of bounds")

// IsLegalMove reports whether the piece at from may move to to. It checks,
// in order: occupancy (origin holds a piece, destination is not a friendly
// piece), the piece kind's movement geometry, and for sliding pieces that
// every square strictly between origin and destination is empty. A move
// from a square onto itself is illegal for every kind. The predicate is
// pure and ignores check entirely: a king may move into an attacked square.
func (b Board) IsLegalMove(from, to Square) (bool, error) {
	if !from.InBounds() || !to.InBounds() {
		return false, ErrOutOfBounds
	}
	if from == to {
		return false, nil
	}
	piece := b.PieceAt(from)
	if piece == nil {
		return false, nil
	}
	if target := b.PieceAt(to); target != nil && target.Color == piece.Color {
		return false, nil
	}

	dRow := to.Row - from.Row
	dCol := to.Col - from.Col
	switch piece.Kind {
	case Pawn:
		return b.isLegalPawnMove(piece.Color, from, to), nil
	case Knight:
		return (abs(dRow) == 2 && abs(dCol) == 1) || (abs(dRow) == 1 && abs(dCol) == 2), nil
	case Bishop:
		return abs(dRow) == abs(dCol) && b.pathClear(from, to), nil
	case Rook:
		return (dRow == 0 || dCol == 0) && b.pathClear(from, to), nil
	case Queen:
		return (dRow == 0 || dCol == 0 || abs(dRow) == abs(dCol)) && b.pathClear(from, to), nil
	case King:
		return abs(dRow) <= 1 && abs(dCol) <= 1, nil
	}
	return false, nil
}

func (b Board) isLegalPawnMove(c Color, from, to Square) bool {
	dir := c.forward()
	dRow := to.Row - from.Row
	dCol := to.Col - from.Col
	target := b.PieceAt(to)
	switch {
	case dCol == 0 && dRow == dir:
		// single advance, destination must be empty
		return target == nil
	case dCol == 0 && dRow == 2*dir:
		// double advance only from the starting rank, both squares empty
		return from.Row == c.pawnStartRow() &&
			target == nil &&
			b.PieceAt(Square{Row: from.Row + dir, Col: from.Col}) == nil
	case abs(dCol) == 1 && dRow == dir:
		// diagonal is capture-only
		return target != nil && target.Color != c
	}
	return false
}

// pathClear reports whether every square strictly between from and to is
// empty. Callers guarantee the two squares share a row, column or diagonal.
func (b Board) pathClear(from, to Square) bool {
	rowStep := sign(to.Row - from.Row)
	colStep := sign(to.Col - from.Col)
	sq := Square{Row: from.Row + rowStep, Col: from.Col + colStep}
	for sq != to {
		if b.PieceAt(sq) != nil {
			return false
		}
		sq = Square{Row: sq.Row + rowStep, Col: sq.Col + colStep}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
