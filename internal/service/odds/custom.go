package odds

import (
	"context"

	"github.com/gkratosBR/Glitch-Arena/internal/engine"
	"github.com/gkratosBR/Glitch-Arena/internal/model"
)

// RequestCustom - котировка пользовательской цели "N+ убийств"
func (s *serv) RequestCustom(ctx context.Context, userID int, gameType string, target float64) (*model.Challenge, error) {
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

	challenge, err := engine.PriceCustomTarget(*stats, gameType, target, platform.Engine, pctx)
	if err != nil {
		return nil, err
	}

	return &challenge, nil
}
