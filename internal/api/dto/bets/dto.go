package bets

import (
	"time"

	"github.com/gkratosBR/Glitch-Arena/internal/model"
)

type PlaceBetRequest struct {
	Amount float64           `json:"betAmount"`
	Items  []model.Challenge `json:"betItems"`
}

type BetResponse struct {
	ID                string            `json:"id"`
	Amount            float64           `json:"betAmount"`
	TotalOdd          float64           `json:"totalOdd"`
	PotentialWinnings float64           `json:"potentialWinnings"`
	Items             []model.Challenge `json:"betItems"`
	Status            string            `json:"status"`
	CreatedAt         time.Time         `json:"createdAt"`
	ResolvedAt        *time.Time        `json:"resolvedAt,omitempty"`
}

type LimitResponse struct {
	Limit float64 `json:"currentBetLimit"`
}
