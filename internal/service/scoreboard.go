package service

import (
	"sync"

	"github.com/calebwray/botchess-backend/internal/model"
)

// ScoreCard is a player's cumulative record against the bot.
type ScoreCard struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}

// Scoreboard keeps per-player outcome counters. The rules engine knows
// nothing about it; games report their result here once, when resolved.
type Scoreboard struct {
	mu    sync.RWMutex
	cards map[string]*ScoreCard
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{
		cards: make(map[string]*ScoreCard),
	}
}

func (s *Scoreboard) Record(playerID string, outcome model.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, ok := s.cards[playerID]
	if !ok {
		card = &ScoreCard{}
		s.cards[playerID] = card
	}
	switch outcome {
	case model.OutcomeWin:
		card.Wins++
	case model.OutcomeLoss:
		card.Losses++
	case model.OutcomeDraw:
		card.Draws++
	}
}

func (s *Scoreboard) Get(playerID string) ScoreCard {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if card, ok := s.cards[playerID]; ok {
		return *card
	}
	return ScoreCard{}
}
