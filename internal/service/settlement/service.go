package settlement

import (
	"context"
	"log"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"github.com/gkratosBR/Glitch-Arena/internal/model"
	"github.com/gkratosBR/Glitch-Arena/internal/repository"
)

// TelemetryClient - операции Riot API, нужные расчёту ставок
type TelemetryClient interface {
	LastMatchID(ctx context.Context, puuid string) (string, error)
	MatchDetails(ctx context.Context, matchID string) (*model.Match, error)
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

// Run - фоновый цикл расчёта. Интервал перечитывается из операторского
// конфига на каждой итерации, правка подхватывается без рестарта
func (s *serv) Run(ctx context.Context) {
	for {
		interval := s.resolutionInterval(ctx)

		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
			if err := s.ResolveOnce(ctx); err != nil {
				log.Printf("settlement pass failed: %v", err)
			}
		}
	}
}

func (s *serv) resolutionInterval(ctx context.Context) time.Duration {
	platform, err := s.platformRepo.GetConfig(ctx)
	if err != nil || platform.System.ResolutionIntervalMinutes <= 0 {
		return 10 * time.Minute
	}

	return time.Duration(platform.System.ResolutionIntervalMinutes) * time.Minute
}
