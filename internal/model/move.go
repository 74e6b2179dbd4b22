package model

import "fmt"

// Move is a pure transformation request, never persisted as-is.
type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// Ply is one half-move as recorded in the history sent to clients.
type Ply struct {
	Piece    Piece  `json:"piece"`
	From     Square `json:"from"`
	To       Square `json:"to"`
	Captured *Piece `json:"captured"`
	Notation string `json:"notation"`
}

// MoveRecord pairs the white and black plies of one full move.
type MoveRecord struct {
	WhitePly *Ply `json:"whitePly"`
	BlackPly *Ply `json:"blackPly"`
}

// moveNotation renders a move in simple algebraic form against the board
// the move is about to be played on.
func (b Board) moveNotation(m Move) string {
	piece := b.PieceAt(m.From)
	if piece == nil {
		return ""
	}
	capture := ""
	if b.PieceAt(m.To) != nil {
		capture = "x"
	}
	pawnFile := ""
	if piece.Kind == Pawn && m.From.Col != m.To.Col {
		pawnFile = m.From.fileNotation()
	}
	return fmt.Sprintf("%s%s%s%s", piece.Kind.notation(), pawnFile, capture, m.To.Notation())
}
