package bets

import (
	"context"

	"github.com/gkratosBR/Glitch-Arena/internal/model"
)

// ActiveBets - нерассчитанные ставки пользователя
func (s *serv) ActiveBets(ctx context.Context, userID int) ([]model.Bet, error) {
	return s.betRepo.ListByUser(ctx, userID, []string{model.BetPending})
}

// History - рассчитанные ставки пользователя
func (s *serv) History(ctx context.Context, userID int) ([]model.Bet, error) {
	return s.betRepo.ListByUser(ctx, userID, []string{model.BetWon, model.BetLost, model.BetVoid})
}
