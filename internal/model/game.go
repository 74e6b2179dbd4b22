package model

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/calebwray/botchess-backend/internal/ws"
)

const initialClockTime = 600 * time.Second

// Game resolutions reported to clients.
const (
	ResolveWhiteWins = "white_wins"
	ResolveBlackWins = "black_wins"
	ResolveDraw      = "draw"
)

// ErrDuplicateConnection reports a registration attempt for a player who
// already has a healthy connection; the existing one wins.
var ErrDuplicateConnection = errors.New("connection already exists")

// Conn is the slice of the websocket connection the game needs for
// broadcasting state.
type Conn interface {
	WriteJSON(v interface{}) error
}

// GameConnections holds the websocket connections observing one game.
type GameConnections struct {
	connections map[string]Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]Conn),
	}
}

// Game is the turn controller for one human-versus-bot game. It owns the
// game state behind a mutex and is the only component that commits board
// transitions; the rules engine and selector it calls are pure. Exactly one
// side acts at a time: while the bot's reply is pending, human moves are
// rejected, and the bot's move is applied atomically under the same mutex.
type Game struct {
	ID          string
	mu          sync.Mutex
	state       GameState
	connections *GameConnections
	human       Player
	bot         Player
	selector    MoveSelector
	botDelay    time.Duration
	botThinking bool
	whiteClock  *Clock
	blackClock  *Clock
	onResult    func(playerID string, outcome Outcome)
}

type GameState struct {
	Board          Board          `json:"board"`
	ToMove         Color          `json:"toMove"`
	MoveCount      int            `json:"moveCount"`
	MoveHistory    []MoveRecord   `json:"moveHistory"`
	CapturedPieces CapturedPieces `json:"capturedPieces"`
	Resolve        *string        `json:"resolve"`
	LastMove       *Move          `json:"lastMove"`
	BotThinking    bool           `json:"botThinking"`
	Players        struct {
		White ClientPlayer `json:"white"`
		Black ClientPlayer `json:"black"`
	} `json:"players"`
}

// CapturedPieces lists the pieces each side has lost.
type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

func NewGame(id string, human Player, selector MoveSelector, botDelay time.Duration, onResult func(string, Outcome)) *Game {
	g := &Game{
		ID:          id,
		state:       newGameState(),
		connections: NewGameConnections(),
		human:       human,
		bot:         Player{ID: BotID, Color: human.Color.Opponent()},
		selector:    selector,
		botDelay:    botDelay,
		whiteClock:  NewClock(initialClockTime),
		blackClock:  NewClock(initialClockTime),
		onResult:    onResult,
	}
	g.seatPlayer(g.human)
	g.seatPlayer(g.bot)
	return g
}

func newGameState() GameState {
	return GameState{
		Board:       NewBoard(),
		ToMove:      White,
		MoveHistory: make([]MoveRecord, 0),
		CapturedPieces: CapturedPieces{
			White: make([]Piece, 0),
			Black: make([]Piece, 0),
		},
	}
}

func (g *Game) seatPlayer(p Player) {
	cp := ClientPlayer{ID: p.ID, Color: p.Color, TimeLeft: 6000}
	switch p.Color {
	case White:
		g.state.Players.White = cp
	case Black:
		g.state.Players.Black = cp
	}
}

// Start begins the game clock and, when the bot has the first move,
// schedules it.
func (g *Game) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.ToMove == g.bot.Color {
		g.scheduleBotMove()
		return
	}
	g.clockFor(g.state.ToMove).Start()
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.snapshot()
}

// snapshot copies the state with its slices detached from the live game:
// commitMove writes the black ply into the last MoveRecord in place, so a
// shallow copy would let readers outside the lock observe (and race with)
// later commits. Ply values are never mutated after creation, sharing their
// pointers is safe. Callers must hold g.mu.
func (g *Game) snapshot() GameState {
	s := g.state
	s.MoveHistory = append([]MoveRecord(nil), g.state.MoveHistory...)
	s.CapturedPieces.White = append([]Piece(nil), g.state.CapturedPieces.White...)
	s.CapturedPieces.Black = append([]Piece(nil), g.state.CapturedPieces.Black...)
	return s
}

// MakeMove handles a move request from the human player. Illegal moves are
// ordinary rejections the client is expected to re-prompt on; only
// out-of-range coordinates indicate a client bug.
func (g *Game) MakeMove(playerID string, move Move) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Resolve != nil {
		return errors.New("game is over")
	}
	if playerID != g.human.ID {
		return errors.New("player not in game")
	}
	if g.botThinking {
		return errors.New("opponent is moving")
	}

	legal, err := g.state.Board.IsLegalMove(move.From, move.To)
	if err != nil {
		return err
	}
	piece := g.state.Board.PieceAt(move.From)
	if piece == nil {
		return errors.New("no piece at from square")
	}
	if piece.Color != g.human.Color || g.state.ToMove != piece.Color {
		return errors.New("not your turn")
	}
	if !legal {
		return errors.New("illegal move")
	}

	g.commitMove(move)
	if g.state.Resolve == nil {
		g.scheduleBotMove()
	}
	return nil
}

// commitMove applies an already-validated move, updates history, clocks and
// resolution, and broadcasts the new state. Callers must hold g.mu.
func (g *Game) commitMove(move Move) {
	mover := *g.state.Board.PieceAt(move.From)
	ply := Ply{
		Piece:    mover,
		From:     move.From,
		To:       move.To,
		Notation: g.state.Board.moveNotation(move),
	}

	next, captured := g.state.Board.ApplyMove(move)
	g.state.Board = next
	ply.Captured = captured

	if mover.Color == White {
		g.state.MoveHistory = append(g.state.MoveHistory, MoveRecord{WhitePly: &ply})
	} else if n := len(g.state.MoveHistory); n > 0 {
		g.state.MoveHistory[n-1].BlackPly = &ply
	}
	g.state.MoveCount++
	g.state.LastMove = &Move{From: move.From, To: move.To}

	if captured != nil {
		switch captured.Color {
		case White:
			g.state.CapturedPieces.White = append(g.state.CapturedPieces.White, *captured)
		case Black:
			g.state.CapturedPieces.Black = append(g.state.CapturedPieces.Black, *captured)
		}
	}

	g.clockFor(mover.Color).Stop()
	g.state.ToMove = mover.Color.Opponent()

	// A captured king is the sole win condition. Move exhaustion for the
	// side to move ends the game too; the core does not classify it, so the
	// controller records it as a draw.
	switch {
	case captured != nil && captured.Kind == King:
		g.resolve(winResolution(mover.Color), outcomeFor(mover.Color, g.human.Color))
	case len(g.state.Board.LegalMoves(g.state.ToMove)) == 0:
		g.resolve(ResolveDraw, OutcomeDraw)
	default:
		g.clockFor(g.state.ToMove).Start()
	}

	g.state.Players.White.TimeLeft = int(g.whiteClock.GetTimeLeft().Milliseconds() / 100)
	g.state.Players.Black.TimeLeft = int(g.blackClock.GetTimeLeft().Milliseconds() / 100)

	go g.broadcastState()
}

// scheduleBotMove kicks off the bot's reply on a background goroutine after
// a short thinking delay. The selector reads the board only under the game
// mutex and its move is applied in the same critical section, so no partial
// state is ever visible. Callers must hold g.mu.
func (g *Game) scheduleBotMove() {
	g.botThinking = true
	g.state.BotThinking = true
	go func() {
		time.Sleep(g.botDelay)

		g.mu.Lock()
		defer g.mu.Unlock()

		g.botThinking = false
		g.state.BotThinking = false
		if g.state.Resolve != nil {
			return
		}
		move, ok := g.selector.ChooseMove(g.state.Board, g.bot.Color)
		if !ok {
			g.resolve(ResolveDraw, OutcomeDraw)
			go g.broadcastState()
			return
		}
		g.commitMove(move)
	}()
}

func (g *Game) resolve(resolution string, outcome Outcome) {
	g.state.Resolve = &resolution
	g.whiteClock.Stop()
	g.blackClock.Stop()
	if g.onResult != nil {
		g.onResult(g.human.ID, outcome)
	}
}

func (g *Game) clockFor(c Color) *Clock {
	if c == White {
		return g.whiteClock
	}
	return g.blackClock
}

func winResolution(winner Color) string {
	if winner == White {
		return ResolveWhiteWins
	}
	return ResolveBlackWins
}

func outcomeFor(winner, human Color) Outcome {
	if winner == human {
		return OutcomeWin
	}
	return OutcomeLoss
}

// RegisterConnection attaches a websocket connection to this game. Anyone
// may spectate; only the seated human may move. A player who already has a
// connection keeps it and the new one is rejected with
// ErrDuplicateConnection; closing the rejected connection is the caller's
// job.
func (g *Game) RegisterConnection(playerID string, conn Conn) error {
	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		g.connections.mu.Unlock()
		return ErrDuplicateConnection
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()

	go g.broadcastState()
	return nil
}

// UnregisterConnection removes the player's registry entry only when it
// still refers to conn, so tearing down a rejected duplicate cannot evict
// the healthy original.
func (g *Game) UnregisterConnection(playerID string, conn Conn) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if g.connections.connections[playerID] == conn {
		delete(g.connections.connections, playerID)
	}
}

func (g *Game) broadcastState() {
	g.mu.Lock()
	state := g.snapshot()
	g.mu.Unlock()

	jsonGameState, err := json.Marshal(state)
	if err != nil {
		log.Printf("failed to marshal game state: %v", err)
		return
	}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	for playerID, conn := range g.connections.connections {
		if err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(jsonGameState),
		}); err != nil {
			log.Printf("failed to send state to player %s: %v", playerID, err)
			delete(g.connections.connections, playerID)
		}
	}
}
