package model

import (
	"encoding/json"
	"fmt"
)

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// forward is the row delta of a pawn advance. Row 0 is black's back rank,
// so white moves toward smaller rows.
func (c Color) forward() int {
	if c == White {
		return -1
	}
	return 1
}

func (c Color) pawnStartRow() int {
	if c == White {
		return 6
	}
	return 1
}

type PieceKind string

const (
	King   PieceKind = "king"
	Queen  PieceKind = "queen"
	Rook   PieceKind = "rook"
	Bishop PieceKind = "bishop"
	Knight PieceKind = "knight"
	Pawn   PieceKind = "pawn"
)

func (k PieceKind) notation() string {
	switch k {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return ""
	}
	return ""
}

type Piece struct {
	Kind  PieceKind `json:"type"`
	Color Color     `json:"color"`
}

type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

func (s Square) Notation() string {
	return fmt.Sprintf("%c%d", s.Col+'a', 8-s.Row)
}

func (s Square) fileNotation() string {
	return fmt.Sprintf("%c", s.Col+'a')
}

// Board is a value type: assigning or passing it copies the underlying
// array, so ApplyMove can return a new board without touching the old one.
// Pieces are immutable, sharing their pointers across copies is safe.
// The zero value is an empty board.
type Board struct {
	squares [8][8]*Piece
}

// NewBoard returns the standard starting arrangement.
func NewBoard() Board {
	var b Board
	backRank := [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, kind := range backRank {
		b.squares[0][col] = &Piece{Kind: kind, Color: Black}
		b.squares[7][col] = &Piece{Kind: kind, Color: White}
	}
	for col := 0; col < 8; col++ {
		b.squares[1][col] = &Piece{Kind: Pawn, Color: Black}
		b.squares[6][col] = &Piece{Kind: Pawn, Color: White}
	}
	return b
}

func (b Board) PieceAt(sq Square) *Piece {
	return b.squares[sq.Row][sq.Col]
}

func (b Board) place(sq Square, p *Piece) Board {
	b.squares[sq.Row][sq.Col] = p
	return b
}

// ApplyMove relocates the piece at the move's origin and returns the new
// board together with whatever piece previously occupied the destination
// (nil for quiet moves). Overwriting the destination is the sole capture
// mechanism; a captured king ends the game, which the caller is responsible
// for observing. ApplyMove does not re-validate legality and never mutates
// the receiver.
func (b Board) ApplyMove(m Move) (Board, *Piece) {
	captured := b.squares[m.To.Row][m.To.Col]
	b.squares[m.To.Row][m.To.Col] = b.squares[m.From.Row][m.From.Col]
	b.squares[m.From.Row][m.From.Col] = nil
	return b, captured
}

func (b Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.squares)
}
