package odds

import (
	"context"

	"github.com/gkratosBR/Glitch-Arena/internal/engine"
	"github.com/gkratosBR/Glitch-Arena/internal/model"
)

// GetChallenges - меню вызовов для привязанного аккаунта пользователя.
// Конфиг движка читается один раз на запрос, всё меню считается
// на одном снимке
func (s *serv) GetChallenges(ctx context.Context, userID int, gameType string) ([]model.Challenge, error) {
	acct, err := s.userRepo.GetLinkedAccount(ctx, userID, gameType)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, ErrNoLinkedAccount
	}

	platform, err := s.platformRepo.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := s.stats(ctx, acct.PUUID, platform)
	if err != nil {
		return nil, err
	}

	pctx, err := s.pricingContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	return engine.GenerateMenu(*stats, gameType, platform.Engine, pctx), nil
}
