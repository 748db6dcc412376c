package engine

import (
	"testing"

	"github.com/gkratosBR/Glitch-Arena/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStats() model.PlayerStats {
	return model.PlayerStats{
		SummonerLevel: 150,
		WinRate:       0.52,
		AvgKills:      5.0,
		AvgAssists:    7.0,
		AvgDeaths:     5.0,
		RecentWins:    []bool{true, false, true, true, false, true, false},
		RecentKills:   []float64{2, 4, 5, 6, 5, 8, 3},
		RecentAssists: []float64{6, 8, 7, 9, 5, 7, 8},
		RecentDeaths:  []float64{4, 6, 5, 3, 7, 5, 4},
		PlayerRoles:   []string{"MIDDLE", "MID", "TOP"},
	}
}

func TestGenerateMenu_FullMenu(t *testing.T) {
	menu := GenerateMenu(testStats(), GameTypeLoL, DefaultConfig(), PricingContext{})
	require.Len(t, menu, 8)

	byID := make(map[string]model.Challenge, len(menu))
	for _, c := range menu {
		byID[c.ID] = c
		assert.GreaterOrEqual(t, c.Odd, 1.01, "challenge %s", c.ID)
		assert.LessOrEqual(t, c.Odd, 99.0, "challenge %s", c.ID)
		assert.Equal(t, GameTypeLoL, c.GameType)
		assert.NotEmpty(t, c.ConflictKey)
	}

	// Победный рынок присутствует всегда
	win, ok := byID["win_lol"]
	require.True(t, ok)
	assert.Equal(t, "match_outcome", win.ConflictKey)
	assert.Equal(t, "win", win.TargetStat)

	// Счётные рынки получили цели выше/ниже среднего
	assert.Contains(t, byID, "mvp_team")
	assert.Contains(t, byID, "mvp_match")
	assert.Contains(t, byID, "top_damage")
	assert.Contains(t, byID, "top_farm")

	for _, c := range menu {
		switch c.TargetStat {
		case "kills":
			assert.Greater(t, c.TargetValue, 4.76)
		case "deaths":
			assert.Less(t, c.TargetValue, 5.0)
		}
	}
}

func TestGenerateMenu_NonMetricGame(t *testing.T) {
	// Для игры без метрик остаётся только рынок на победу
	menu := GenerateMenu(testStats(), "valorant", DefaultConfig(), PricingContext{})
	require.Len(t, menu, 1)
	assert.Equal(t, "win_valorant", menu[0].ID)
}

func TestGenerateMenu_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	first := GenerateMenu(testStats(), GameTypeLoL, cfg, PricingContext{})
	second := GenerateMenu(testStats(), GameTypeLoL, cfg, PricingContext{})
	assert.Equal(t, first, second)
}

func TestGenerateMenu_SupportRoleCheaperDamageMarket(t *testing.T) {
	cfg := DefaultConfig()

	carry := testStats()
	carry.PlayerRoles = []string{"BOTTOM", "BOTTOM", "BOTTOM"}
	support := testStats()
	support.PlayerRoles = []string{"UTILITY", "UTILITY", "UTILITY"}

	carryOdd := findChallenge(t, GenerateMenu(carry, GameTypeLoL, cfg, PricingContext{}), "top_damage").Odd
	supportOdd := findChallenge(t, GenerateMenu(support, GameTypeLoL, cfg, PricingContext{}), "top_damage").Odd

	// Саппорт реже всех наносит топ-урон, его котировка выше
	assert.Greater(t, supportOdd, carryOdd)
}

func TestPriceCustomTarget(t *testing.T) {
	cfg := DefaultConfig()
	stats := testStats()

	// Сглаженное среднее киллов 4.76: цель 8 валидна
	ch, err := PriceCustomTarget(stats, GameTypeLoL, 8, cfg, PricingContext{})
	require.NoError(t, err)
	assert.Equal(t, "custom_lol_8", ch.ID)
	assert.Equal(t, "kills", ch.TargetStat)
	assert.Equal(t, 8.0, ch.TargetValue)
	assert.GreaterOrEqual(t, ch.Odd, 1.01)

	// Нецелая цель
	_, err = PriceCustomTarget(stats, GameTypeLoL, 7.5, cfg, PricingContext{})
	assert.ErrorIs(t, err, ErrTargetNotInteger)

	// Цель не выше среднего
	_, err = PriceCustomTarget(stats, GameTypeLoL, 4, cfg, PricingContext{})
	assert.ErrorIs(t, err, ErrTargetTooLow)

	// Небывалая цель упирается в порог жизнеспособности
	_, err = PriceCustomTarget(stats, GameTypeLoL, 40, cfg, PricingContext{})
	assert.ErrorIs(t, err, ErrTargetUnviable)
}

func findChallenge(t *testing.T, menu []model.Challenge, id string) model.Challenge {
	t.Helper()
	for _, c := range menu {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("challenge %s not found", id)
	return model.Challenge{}
}
