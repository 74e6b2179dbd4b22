package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/calebwray/botchess-backend/internal/model"
	"github.com/fatih/color"
)

var (
	seed     = flag.Int64("seed", 1, "RNG seed for both sides")
	maxPlies = flag.Int("maxplies", 2000, "abort after this many plies")
	delay    = flag.Duration("delay", 0, "pause between plies, e.g. 50ms")
	quiet    = flag.Bool("quiet", false, "only print the final result")
)

var (
	whitePiece = color.New(color.FgHiWhite, color.Bold)
	blackPiece = color.New(color.FgHiCyan)
	boardDim   = color.New(color.FgHiBlack)
)

// selfplay pits the random selector against itself until a king falls or a
// side runs out of moves. Useful as a soak test of the rules engine.
func main() {
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	selector := model.NewRandomSelector(rng)

	b := model.NewBoard()
	toMove := model.White

	for ply := 1; ply <= *maxPlies; ply++ {
		mv, ok := selector.ChooseMove(b, toMove)
		if !ok {
			fmt.Printf("\n%s has no legal moves after %d plies: draw\n", toMove, ply-1)
			return
		}

		next, captured := b.ApplyMove(mv)
		b = next

		if !*quiet {
			fmt.Printf("\n===== [#%d] %s: %s -> %s\n", (ply+1)/2, toMove, mv.From.Notation(), mv.To.Notation())
			fmt.Println(draw(b))
			if *delay > 0 {
				time.Sleep(*delay)
			}
		}

		if captured != nil && captured.Kind == model.King {
			fmt.Printf("\n%s wins by king capture after %d plies\n", toMove, ply)
			return
		}
		toMove = toMove.Opponent()
	}

	fmt.Printf("\nno result after %d plies\n", *maxPlies)
}

func draw(b model.Board) string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		sb.WriteString(boardDim.Sprintf("%d ", 8-row))
		for col := 0; col < 8; col++ {
			piece := b.PieceAt(model.Square{Row: row, Col: col})
			switch {
			case piece == nil:
				sb.WriteString(boardDim.Sprint(". "))
			case piece.Color == model.White:
				sb.WriteString(whitePiece.Sprintf("%s ", pieceLetter(piece.Kind)))
			default:
				sb.WriteString(blackPiece.Sprintf("%s ", strings.ToLower(pieceLetter(piece.Kind))))
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString(boardDim.Sprint("  a b c d e f g h"))
	return sb.String()
}

func pieceLetter(k model.PieceKind) string {
	switch k {
	case model.King:
		return "K"
	case model.Queen:
		return "Q"
	case model.Rook:
		return "R"
	case model.Bishop:
		return "B"
	case model.Knight:
		return "N"
	case model.Pawn:
		return "P"
	}
	return "?"
}
