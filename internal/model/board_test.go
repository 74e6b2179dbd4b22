package model

import "testing"

func TestNewBoardArrangement(t *testing.T) {
	b := NewBoard()

	backRank := [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, kind := range backRank {
		if p := b.PieceAt(Square{0, col}); p == nil || p.Kind != kind || p.Color != Black {
			t.Errorf("square (0,%d) = %+v, want black %s", col, p, kind)
		}
		if p := b.PieceAt(Square{7, col}); p == nil || p.Kind != kind || p.Color != White {
			t.Errorf("square (7,%d) = %+v, want white %s", col, p, kind)
		}
	}
	for col := 0; col < 8; col++ {
		if p := b.PieceAt(Square{1, col}); p == nil || p.Kind != Pawn || p.Color != Black {
			t.Errorf("square (1,%d) = %+v, want black pawn", col, p)
		}
		if p := b.PieceAt(Square{6, col}); p == nil || p.Kind != Pawn || p.Color != White {
			t.Errorf("square (6,%d) = %+v, want white pawn", col, p)
		}
	}
	for row := 2; row < 6; row++ {
		for col := 0; col < 8; col++ {
			if p := b.PieceAt(Square{row, col}); p != nil {
				t.Errorf("square (%d,%d) = %+v, want empty", row, col, p)
			}
		}
	}
}

func TestApplyMoveDoesNotMutateInput(t *testing.T) {
	before := NewBoard()
	move := Move{From: Square{6, 4}, To: Square{4, 4}}

	after, captured := before.ApplyMove(move)

	if captured != nil {
		t.Fatalf("quiet move reported capture %+v", captured)
	}
	if p := before.PieceAt(move.From); p == nil || p.Kind != Pawn {
		t.Error("input board lost its pawn at the origin")
	}
	if p := before.PieceAt(move.To); p != nil {
		t.Error("input board gained a piece at the destination")
	}
	if p := after.PieceAt(move.To); p == nil || p.Kind != Pawn {
		t.Error("new board is missing the moved pawn")
	}
	if p := after.PieceAt(move.From); p != nil {
		t.Error("new board still has a piece at the origin")
	}
}

func TestApplyMoveReturnsCapturedPiece(t *testing.T) {
	b := emptyBoardWith(map[Square]Piece{
		{4, 0}: {Rook, White},
		{4, 7}: {King, Black},
	})

	after, captured := b.ApplyMove(Move{From: Square{4, 0}, To: Square{4, 7}})

	if captured == nil || captured.Kind != King || captured.Color != Black {
		t.Fatalf("captured = %+v, want black king", captured)
	}
	if p := after.PieceAt(Square{4, 7}); p == nil || p.Kind != Rook {
		t.Error("rook did not land on the destination")
	}
}

func TestNonCapturingMoveRoundTrip(t *testing.T) {
	original := NewBoard()
	out := Move{From: Square{7, 1}, To: Square{5, 2}}
	back := Move{From: Square{5, 2}, To: Square{7, 1}}

	there, captured := original.ApplyMove(out)
	if captured != nil {
		t.Fatalf("unexpected capture %+v", captured)
	}
	restored, captured := there.ApplyMove(back)
	if captured != nil {
		t.Fatalf("unexpected capture on the way back %+v", captured)
	}

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := Square{row, col}
			want := original.PieceAt(sq)
			got := restored.PieceAt(sq)
			switch {
			case want == nil && got == nil:
			case want == nil || got == nil || *want != *got:
				t.Errorf("square %v: got %+v, want %+v", sq, got, want)
			}
		}
	}
}

func TestSquareNotation(t *testing.T) {
	tests := []struct {
		sq   Square
		want string
	}{
		{Square{7, 0}, "a1"},
		{Square{0, 7}, "h8"},
		{Square{6, 4}, "e2"},
		{Square{4, 4}, "e4"},
	}
	for _, tt := range tests {
		if got := tt.sq.Notation(); got != tt.want {
			t.Errorf("Notation(%v) = %q, want %q", tt.sq, got, tt.want)
		}
	}
}

func TestMoveNotation(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		move  Move
		want  string
	}{
		{
			name:  "pawn push",
			board: NewBoard(),
			move:  Move{From: Square{6, 4}, To: Square{4, 4}},
			want:  "e4",
		},
		{
			name:  "knight development",
			board: NewBoard(),
			move:  Move{From: Square{7, 6}, To: Square{5, 5}},
			want:  "Nf3",
		},
		{
			name: "pawn capture includes file",
			board: emptyBoardWith(map[Square]Piece{
				{4, 4}: {Pawn, White},
				{3, 3}: {Pawn, Black},
			}),
			move: Move{From: Square{4, 4}, To: Square{3, 3}},
			want: "exd5",
		},
		{
			name: "rook capture",
			board: emptyBoardWith(map[Square]Piece{
				{4, 0}: {Rook, White},
				{4, 7}: {Knight, Black},
			}),
			move: Move{From: Square{4, 0}, To: Square{4, 7}},
			want: "Rxh4",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.board.moveNotation(tt.move); got != tt.want {
				t.Errorf("moveNotation(%v) = %q, want %q", tt.move, got, tt.want)
			}
		})
	}
}
