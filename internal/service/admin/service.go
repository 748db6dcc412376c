package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/gkratosBR/Glitch-Arena/internal/config"
	"github.com/gkratosBR/Glitch-Arena/internal/engine"
	"github.com/gkratosBR/Glitch-Arena/internal/model"
	"github.com/gkratosBR/Glitch-Arena/internal/repository"
)

var ErrInvalidConfig = errors.New("invalid platform config")

type serv struct {
	userRepo     repository.UserRepository
	platformRepo repository.PlatformRepository
}

func NewService(userRepo repository.UserRepository, platformRepo repository.PlatformRepository) *serv {
	return &serv{
		userRepo:     userRepo,
		platformRepo: platformRepo,
	}
}

func (s *serv) GetConfig(ctx context.Context) (config.Platform, error) {
	return s.platformRepo.GetConfig(ctx)
}

// UpdateConfig - замена операторского конфига целиком.
// Правка видна сервисам со следующей операции
func (s *serv) UpdateConfig(ctx context.Context, cfg config.Platform) error {
	if err := validate(cfg); err != nil {
		return err
	}

	return s.platformRepo.SetConfig(ctx, cfg)
}

func (s *serv) SetKYC(ctx context.Context, userID int, status string) error {
	if status != model.KYCPending && status != model.KYCVerified {
		return errors.New("unknown kyc status")
	}

	return s.userRepo.UpdateKYC(ctx, userID, status)
}

func validate(cfg config.Platform) error {
	e := cfg.Engine

	switch {
	case e.Margins.Mode != engine.MarginModeStatic && e.Margins.Mode != engine.MarginModeDynamic:
		return fmt.Errorf("%w: unknown margin mode", ErrInvalidConfig)
	case e.Margins.Main < 0 || e.Margins.Stats < 0 || e.Margins.Max < e.Margins.Main:
		return fmt.Errorf("%w: margins out of range", ErrInvalidConfig)
	case e.Difficulty.WinrateBand.Min >= e.Difficulty.WinrateBand.Max:
		return fmt.Errorf("%w: degenerate winrate band", ErrInvalidConfig)
	case e.PriceStep <= 0:
		return fmt.Errorf("%w: price step must be positive", ErrInvalidConfig)
	case cfg.System.ResolutionIntervalMinutes <= 0 || cfg.System.StatsTTLMinutes <= 0:
		return fmt.Errorf("%w: system intervals must be positive", ErrInvalidConfig)
	case cfg.Limits.MaxGlobalBetLimit <= 0:
		return fmt.Errorf("%w: global bet limit must be positive", ErrInvalidConfig)
	}

	return nil
}
