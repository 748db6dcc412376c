package converter

import (
	"github.com/gkratosBR/Glitch-Arena/internal/api/dto/bets"
	"github.com/gkratosBR/Glitch-Arena/internal/model"
)

func ToBetResponse(bet model.Bet) bets.BetResponse {
	return bets.BetResponse{
		ID:                bet.ID,
		Amount:            bet.Amount,
		TotalOdd:          bet.TotalOdd,
		PotentialWinnings: bet.PotentialWinnings,
		Items:             bet.Items,
		Status:            bet.Status,
		CreatedAt:         bet.CreatedAt,
		ResolvedAt:        bet.ResolvedAt,
	}
}

func ToBetResponses(list []model.Bet) []bets.BetResponse {
	result := make([]bets.BetResponse, len(list))
	for i, b := range list {
		result[i] = ToBetResponse(b)
	}
	return result
}
