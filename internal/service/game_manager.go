package service

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/calebwray/botchess-backend/internal/model"
	"github.com/google/uuid"
)

// GameManager owns the registry of live games. It serializes creation and
// lookup; each game serializes its own moves behind its own mutex.
type GameManager struct {
	games    map[string]*model.Game
	scores   *Scoreboard
	botDelay time.Duration
	mu       sync.RWMutex
}

func NewGameManager(scores *Scoreboard, botDelay time.Duration) *GameManager {
	return &GameManager{
		games:    make(map[string]*model.Game),
		scores:   scores,
		botDelay: botDelay,
	}
}

// CreateGame starts a new game against the bot, seating the human on the
// requested color. Each game gets its own time-seeded RNG for the bot's
// move selection.
func (gm *GameManager) CreateGame(playerID string, color model.Color) (string, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	gameID := uuid.New().String()
	if _, exists := gm.games[gameID]; exists {
		return "", errors.New("game already exists")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	selector := model.NewRandomSelector(rng)
	game := model.NewGame(gameID, model.Player{ID: playerID, Color: color}, selector, gm.botDelay, gm.scores.Record)
	gm.games[gameID] = game
	game.Start()

	return gameID, nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, errors.New("game not found")
	}

	return game, nil
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return model.GameState{}, errors.New("game not found")
	}

	return game.GetState(), nil
}

func (gm *GameManager) MakeMove(gameID string, playerID string, move model.Move) error {
	gm.mu.RLock()
	game, exists := gm.games[gameID]
	gm.mu.RUnlock()
	if !exists {
		return errors.New("game not found")
	}

	return game.MakeMove(playerID, move)
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn model.Conn) error {
	gm.mu.RLock()
	game, exists := gm.games[gameID]
	gm.mu.RUnlock()
	if !exists {
		return errors.New("game not found")
	}

	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string, conn model.Conn) {
	gm.mu.RLock()
	game, exists := gm.games[gameID]
	gm.mu.RUnlock()
	if !exists {
		return
	}

	game.UnregisterConnection(playerID, conn)
}
