package odds

import (
	"context"

	"github.com/gkratosBR/Glitch-Arena/internal/engine"
)

// Disconnect - отвязка игрового аккаунта от пользователя
func (s *serv) Disconnect(ctx context.Context, userID int, gameType string) error {
	if gameType != engine.GameTypeLoL {
		return ErrUnsupportedGame
	}

	return s.userRepo.DeleteLinkedAccount(ctx, userID, gameType)
}
