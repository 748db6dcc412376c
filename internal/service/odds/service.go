package odds

import (
	"context"
	"errors"
	"time"

	"github.com/gkratosBR/Glitch-Arena/internal/config"
	"github.com/gkratosBR/Glitch-Arena/internal/engine"
	"github.com/gkratosBR/Glitch-Arena/internal/model"
	"github.com/gkratosBR/Glitch-Arena/internal/repository"
)

var (
	ErrUnsupportedGame  = errors.New("unsupported game type")
	ErrNoLinkedAccount  = errors.New("no linked account for this game")
	ErrAccountRejected  = errors.New("account rejected by risk validation")
	ErrStatsUnavailable = errors.New("player stats unavailable")
)

// TelemetryClient - операции Riot API, нужные букмекерской части
type TelemetryClient interface {
	ResolveAccount(ctx context.Context, riotID string) (string, error)
	FetchPlayerStats(ctx context.Context, puuid string) (*model.PlayerStats, error)
}

type serv struct {
	userRepo     repository.UserRepository
	platformRepo repository.PlatformRepository
	statsCache   repository.StatsCacheRepository
	telemetry    TelemetryClient
}

func NewService(
	userRepo repository.UserRepository,
	platformRepo repository.PlatformRepository,
	statsCache repository.StatsCacheRepository,
	telemetry TelemetryClient,
) *serv {
	return &serv{
		userRepo:     userRepo,
		platformRepo: platformRepo,
		statsCache:   statsCache,
		telemetry:    telemetry,
	}
}

// stats - статистика игрока через кеш с фолбэком на Riot API
func (s *serv) stats(ctx context.Context, puuid string, platform config.Platform) (*model.PlayerStats, error) {
	cached, err := s.statsCache.Get(ctx, puuid)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return cached, nil
	}

	fresh, err := s.telemetry.FetchPlayerStats(ctx, puuid)
	if err != nil {
		return nil, err
	}
	if fresh == nil {
		return nil, ErrStatsUnavailable
	}

	ttl := time.Duration(platform.System.StatsTTLMinutes) * time.Minute
	if err := s.statsCache.Set(ctx, puuid, *fresh, ttl); err != nil {
		return nil, err
	}

	return fresh, nil
}

// pricingContext - показатели игрока и платформы для динамической маржи
func (s *serv) pricingContext(ctx context.Context, userID int) (engine.PricingContext, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return engine.PricingContext{}, err
	}

	platformProfit, err := s.platformRepo.GetProfit(ctx)
	if err != nil {
		return engine.PricingContext{}, err
	}

	return engine.PricingContext{
		PlayerProfit:   user.ProfitLoss,
		PlayerBetCount: user.TotalBetsMade,
		PlatformProfit: platformProfit,
	}, nil
}
