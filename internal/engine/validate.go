package engine

import (
	"fmt"

	"github.com/gkratosBR/Glitch-Arena/internal/model"
)

// Validation - результат проверки аккаунта перед привязкой
type Validation struct {
	Valid  bool
	Reason string
}

// ValidateAccount - анти-абьюз фильтр: отсекает аккаунты ниже порога
// уровня и аккаунты с подозрительно высоким историческим винрейтом
func ValidateAccount(stats model.PlayerStats, cfg RiskConfig) Validation {
	if stats.SummonerLevel < cfg.MinAccountLevel {
		return Validation{
			Valid:  false,
			Reason: fmt.Sprintf("insufficient account level %d, minimum %d", stats.SummonerLevel, cfg.MinAccountLevel),
		}
	}
	if stats.WinRate >= cfg.MaxAllowedWinrate {
		return Validation{
			Valid:  false,
			Reason: fmt.Sprintf("account under review: win rate %.0f%% or higher", cfg.MaxAllowedWinrate*100),
		}
	}
	return Validation{Valid: true}
}
