package bets

import (
	"context"
	"errors"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"github.com/gkratosBR/Glitch-Arena/internal/config"
	"github.com/gkratosBR/Glitch-Arena/internal/model"
	"github.com/gkratosBR/Glitch-Arena/internal/repository"
)

var (
	ErrInvalidBet        = errors.New("bet amount and legs must be set")
	ErrNoLinkedAccount   = errors.New("no linked account for this game")
	ErrLimitExceeded     = errors.New("bet limit exceeded")
	ErrInsufficientFunds = errors.New("insufficient glitchcoins")
	ErrPlayerInGame      = errors.New("player is currently in a match")
	ErrConflictingLegs   = errors.New("mutually exclusive legs in one bet")
)

// Лестница доверия: пороги поднятия лимита ставки
const (
	baseBetLimit = 3.00

	tierOneBets  = 3
	tierOneLimit = 5.00

	tierTwoBets  = 7
	tierTwoLimit = 10.00

	kycLimit = 20.00

	tierHighDeposited = 100.00
	tierHighWagered   = 250.00
	tierHighLimit     = 50.00

	tierTopDeposited = 500.00
	tierTopWagered   = 1000.00
	tierTopLimit     = 100.00

	// После месяца без ставок высокие лимиты сбрасываются
	limitDecayAfter = 30 * 24 * time.Hour
	decayedLimit    = 20.00

	// Лимит не превышает четверти реального кошелька
	walletShare = 0.25
)

// TelemetryClient - операции Riot API, нужные приёму ставок
type TelemetryClient interface {
	LastMatchID(ctx context.Context, puuid string) (string, error)
	InActiveGame(ctx context.Context, puuid string) (bool, error)
}

type serv struct {
	txManager    trm.Manager
	userRepo     repository.UserRepository
	betRepo      repository.BetRepository
	platformRepo repository.PlatformRepository
	telemetry    TelemetryClient
}

func NewService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	betRepo repository.BetRepository,
	platformRepo repository.PlatformRepository,
	telemetry TelemetryClient,
) *serv {
	return &serv{
		txManager:    txManager,
		userRepo:     userRepo,
		betRepo:      betRepo,
		platformRepo: platformRepo,
		telemetry:    telemetry,
	}
}

// CalculateBetLimit - действующий лимит ставки пользователя.
// Лестница растёт с числом рассчитанных ставок и статусом KYC,
// затухает после месяца простоя и режется долей кошелька
// и глобальным потолком
func CalculateBetLimit(user *model.User, platform config.Platform, now time.Time) float64 {
	limit := baseBetLimit
	if user.TotalBetsMade >= tierOneBets {
		limit = tierOneLimit
	}
	if user.TotalBetsMade >= tierTwoBets {
		limit = tierTwoLimit
	}

	verified := user.KYCStatus == model.KYCVerified
	if verified {
		limit = kycLimit
	}
	if verified && user.TotalDeposited >= tierHighDeposited && user.TotalWagered >= tierHighWagered {
		limit = tierHighLimit
	}
	if verified && user.TotalDeposited >= tierTopDeposited && user.TotalWagered >= tierTopWagered {
		limit = tierTopLimit
	}

	if user.LastBetPlacedAt != nil && now.Sub(*user.LastBetPlacedAt) > limitDecayAfter && limit > decayedLimit {
		limit = decayedLimit
	}

	// Пустой кошелёк не обнуляет лимит: ставить можно из бонуса
	if walletCap := user.Wallet * walletShare; walletCap > 0 && walletCap < limit {
		limit = walletCap
	}
	if limit > platform.Limits.MaxGlobalBetLimit {
		limit = platform.Limits.MaxGlobalBetLimit
	}

	return limit
}

// BetLimit - лимит пользователя; пересчитанное значение сохраняется
func (s *serv) BetLimit(ctx context.Context, userID int) (float64, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return 0, err
	}

	platform, err := s.platformRepo.GetConfig(ctx)
	if err != nil {
		return 0, err
	}

	limit := CalculateBetLimit(user, platform, time.Now())
	if limit != user.CurrentBetLimit {
		if err := s.userRepo.UpdateBetLimit(ctx, userID, limit); err != nil {
			return 0, err
		}
	}

	return limit, nil
}
