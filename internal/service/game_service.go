package service

import (
	"fmt"

	"github.com/calebwray/botchess-backend/internal/model"
)

// GameService is the facade the controllers talk to.
type GameService struct {
	gameManager *GameManager
	scores      *Scoreboard
}

func NewGameService(gameManager *GameManager, scores *Scoreboard) *GameService {
	return &GameService{
		gameManager: gameManager,
		scores:      scores,
	}
}

func (gs *GameService) CreateGame(playerID string, color model.Color) (string, error) {
	gameID, err := gs.gameManager.CreateGame(playerID, color)
	if err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, nil
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) HandleMove(gameID string, playerID string, move model.Move) error {
	return gs.gameManager.MakeMove(gameID, playerID, move)
}

func (gs *GameService) GetScore(playerID string) ScoreCard {
	return gs.scores.Get(playerID)
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn model.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string, conn model.Conn) {
	gs.gameManager.UnregisterConnection(gameID, playerID, conn)
}
