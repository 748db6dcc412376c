package odds

import (
	"context"
	"fmt"
	"time"

	"github.com/gkratosBR/Glitch-Arena/internal/engine"
	"github.com/gkratosBR/Glitch-Arena/internal/model"
)

// Connect - привязка игрового аккаунта к пользователю.
// Аккаунт проходит риск-валидацию движка до сохранения
func (s *serv) Connect(ctx context.Context, userID int, riotID, gameType string) (*model.LinkedAccount, error) {
	if gameType != engine.GameTypeLoL {
		return nil, ErrUnsupportedGame
	}

	puuid, err := s.telemetry.ResolveAccount(ctx, riotID)
	if err != nil {
		return nil, err
	}

	stats, err := s.telemetry.FetchPlayerStats(ctx, puuid)
	if err != nil {
		return nil, err
	}

	platform, err := s.platformRepo.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	if v := engine.ValidateAccount(*stats, platform.Engine.Risk); !v.Valid {
		return nil, fmt.Errorf("%w: %s", ErrAccountRejected, v.Reason)
	}

	acct := &model.LinkedAccount{
		UserID:   userID,
		GameType: gameType,
		PlayerID: riotID,
		PUUID:    puuid,
	}
	if err := s.userRepo.SetLinkedAccount(ctx, acct); err != nil {
		return nil, err
	}

	ttl := time.Duration(platform.System.StatsTTLMinutes) * time.Minute
	if err := s.statsCache.Set(ctx, puuid, *stats, ttl); err != nil {
		return nil, err
	}

	return acct, nil
}
