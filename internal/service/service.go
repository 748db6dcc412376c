package service

import (
	"context"

	"github.com/gkratosBR/Glitch-Arena/internal/config"
	"github.com/gkratosBR/Glitch-Arena/internal/model"
)

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, user *model.User) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

type OddsService interface {
	// Connect - привязка игрового аккаунта с валидацией риска
	Connect(ctx context.Context, userID int, riotID, gameType string) (*model.LinkedAccount, error)
	Disconnect(ctx context.Context, userID int, gameType string) error
	GetChallenges(ctx context.Context, userID int, gameType string) ([]model.Challenge, error)
	RequestCustom(ctx context.Context, userID int, gameType string, target float64) (*model.Challenge, error)
}

type BetService interface {
	PlaceBet(ctx context.Context, userID int, amount float64, items []model.Challenge) (*model.Bet, error)
	ActiveBets(ctx context.Context, userID int) ([]model.Bet, error)
	History(ctx context.Context, userID int) ([]model.Bet, error)
	// BetLimit - действующий лимит ставки с учётом лестницы доверия
	BetLimit(ctx context.Context, userID int) (float64, error)
}

type SettlementService interface {
	// Run - фоновый цикл расчёта ставок, блокируется до отмены контекста
	Run(ctx context.Context)
	// ResolveOnce - один проход по всем pending-ставкам
	ResolveOnce(ctx context.Context) error
}

type WalletService interface {
	Balance(ctx context.Context, userID int) (*model.User, error)
	Deposit(ctx context.Context, userID int, amount float64) error
	Withdraw(ctx context.Context, userID int, amount float64) error
	ConvertBonus(ctx context.Context, userID int) error
	RedeemCoupon(ctx context.Context, userID int, code string) (credited float64, err error)
}

type AdminService interface {
	GetConfig(ctx context.Context) (config.Platform, error)
	UpdateConfig(ctx context.Context, cfg config.Platform) error
	SetKYC(ctx context.Context, userID int, status string) error
}
