package engine

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gkratosBR/Glitch-Arena/internal/model"
)

const GameTypeLoL = "lol"

// Фолбэки средних, когда по аккаунту нет истории
const (
	fallbackKills   = 5.0
	fallbackAssists = 7.0
	fallbackDeaths  = 5.0
)

// Минимальная вероятность, при которой кастомная цель коммерчески осмысленна
const minCustomProbability = 0.01

// Весовые таблицы по ролям: семейство рынка -> роль -> вес.
// Кэрри-роли чаще забирают урон и MVP, саппорт - почти никогда
var roleWeights = map[string]map[string]float64{
	"mvp": {
		"BOTTOM": 1.25, "MIDDLE": 1.20, "JUNGLE": 1.10,
		"TOP": 0.90, "UTILITY": 0.55, RoleUnknown: 1.0,
	},
	"damage": {
		"BOTTOM": 1.40, "MIDDLE": 1.30, "JUNGLE": 0.90,
		"TOP": 0.90, "UTILITY": 0.50, RoleUnknown: 1.0,
	},
	"farm": {
		"BOTTOM": 1.25, "MIDDLE": 1.25, "TOP": 1.10,
		"JUNGLE": 1.00, "UTILITY": 0.40, RoleUnknown: 1.0,
	},
}

// Базовые частоты дискретных событий, если частота не посчитана по истории
var baseFrequencies = map[string]float64{
	"mvp_team":   0.10,
	"mvp_match":  0.05,
	"top_damage": 0.05,
	"top_farm":   0.05,
}

// Ошибки валидации кастомной цели. Возвращаются вызывающему как отказ,
// наружу за границу API не пробрасываются
var (
	ErrTargetNotInteger = errors.New("target must be an integer")
	ErrTargetTooLow     = errors.New("target must exceed the current average")
	ErrTargetUnviable   = errors.New("target probability below viability threshold")
)

// GenerateMenu - полное меню челленджей для аккаунта.
// Котировка на победу есть всегда; для метрических игр добавляются
// счётные рынки с целями, усложнёнными по скаляру сложности, и
// частотные рынки, взвешенные по основной роли
func GenerateMenu(stats model.PlayerStats, gameType string, cfg Config, pctx PricingContext) []model.Challenge {
	safety := SafetyReduction(cfg)
	marginMain := EffectiveMargin(cfg.Margins.Main, cfg.Margins, pctx)
	marginStats := EffectiveMargin(cfg.Margins.Stats, cfg.Margins, pctx)

	challenges := make([]model.Challenge, 0, 8)

	// 1. Победа в следующей партии
	winRate := WeightedWinRate(stats.WinRate, stats.RecentWins, cfg.Difficulty.WinrateBand)
	winOdd := Price(ImpliedProbability(winRate, marginMain), safety, cfg.PriceStep)
	challenges = append(challenges, model.Challenge{
		ID:          fmt.Sprintf("win_%s", gameType),
		Title:       "Win the next match",
		Odd:         winOdd,
		ConflictKey: "match_outcome",
		TargetStat:  "win",
		TargetValue: 1,
		GameType:    gameType,
	})

	if gameType != GameTypeLoL {
		return challenges
	}

	scalar := DifficultyScalar(winRate, cfg.Difficulty)

	// 2. Счётные рынки
	avgKills := WeightedAverageStat(orDefault(stats.AvgKills, fallbackKills), stats.RecentKills)
	targetKills := OverTarget(avgKills, scalar)
	challenges = append(challenges, countChallenge(
		"kills", targetKills,
		PoissonAtLeast(targetKills, avgKills),
		marginStats, safety, cfg, gameType,
	))

	avgAssists := WeightedAverageStat(orDefault(stats.AvgAssists, fallbackAssists), stats.RecentAssists)
	targetAssists := OverTarget(avgAssists, scalar)
	challenges = append(challenges, countChallenge(
		"assists", targetAssists,
		PoissonAtLeast(targetAssists, avgAssists),
		marginStats, safety, cfg, gameType,
	))

	// Смерти - рынок "меньше чем": порог читается как target+0.5
	avgDeaths := WeightedAverageStat(orDefault(stats.AvgDeaths, fallbackDeaths), stats.RecentDeaths)
	targetDeaths := UnderTarget(avgDeaths, scalar)
	deathsProb := PoissonBelow(targetDeaths+1, avgDeaths)
	challenges = append(challenges, model.Challenge{
		ID:          fmt.Sprintf("deaths_under_%d", targetDeaths),
		Title:       fmt.Sprintf("Under %.1f deaths", float64(targetDeaths)+0.5),
		Odd:         Price(ImpliedProbability(deathsProb, marginStats), safety, cfg.PriceStep),
		ConflictKey: "deaths_stat",
		TargetStat:  "deaths",
		TargetValue: float64(targetDeaths),
		GameType:    gameType,
	})

	// 3. Частотные рынки, взвешенные по роли
	role := PrimaryRole(stats.PlayerRoles)
	frequencyMarkets := []struct {
		stat        string
		title       string
		conflictKey string
		frequency   float64
	}{
		{"mvp_team", "Team MVP", "mvp_outcome", stats.MVPTeamFrequency},
		{"mvp_match", "Match MVP", "mvp_outcome", stats.MVPMatchFrequency},
		{"top_damage", "Top damage dealer", "top_damage_outcome", stats.TopDamageFrequency},
		{"top_farm", "Top farmer", "top_farm_outcome", stats.TopFarmFrequency},
	}
	for _, m := range frequencyMarkets {
		trueProb := frequencyProbability(m.stat, m.frequency, role)
		challenges = append(challenges, model.Challenge{
			ID:          m.stat,
			Title:       m.title,
			Odd:         Price(ImpliedProbability(trueProb, marginStats), safety, cfg.PriceStep),
			ConflictKey: m.conflictKey,
			TargetStat:  m.stat,
			TargetValue: 1,
			GameType:    gameType,
		})
	}

	return challenges
}

// PriceCustomTarget - котировка на кастомную цель по киллам.
// Цель должна быть целой, строго выше сглаженного среднего и
// достаточно вероятной, иначе возвращается отказ
func PriceCustomTarget(stats model.PlayerStats, gameType string, target float64, cfg Config, pctx PricingContext) (model.Challenge, error) {
	if target != math.Trunc(target) {
		return model.Challenge{}, ErrTargetNotInteger
	}
	targetInt := int(target)

	avgKills := WeightedAverageStat(orDefault(stats.AvgKills, fallbackKills), stats.RecentKills)
	if float64(targetInt) <= avgKills {
		return model.Challenge{}, fmt.Errorf("%w: %.1f", ErrTargetTooLow, avgKills)
	}

	prob := PoissonAtLeast(targetInt, avgKills)
	if prob < minCustomProbability {
		return model.Challenge{}, ErrTargetUnviable
	}

	safety := SafetyReduction(cfg)
	margin := EffectiveMargin(cfg.Margins.Stats, cfg.Margins, pctx)
	odd := Price(ImpliedProbability(prob, margin), safety, cfg.PriceStep)

	return model.Challenge{
		ID:          fmt.Sprintf("custom_%s_%d", gameType, targetInt),
		Title:       fmt.Sprintf("Get %d+ kills", targetInt),
		Odd:         odd,
		ConflictKey: fmt.Sprintf("custom_target_%d", targetInt),
		TargetStat:  "kills",
		TargetValue: float64(targetInt),
		GameType:    gameType,
	}, nil
}

func countChallenge(stat string, target int, prob, margin, safety float64, cfg Config, gameType string) model.Challenge {
	return model.Challenge{
		ID:          fmt.Sprintf("%s_over_%d", stat, target),
		Title:       fmt.Sprintf("Over %.1f %s", float64(target)-0.5, stat),
		Odd:         Price(ImpliedProbability(prob, margin), safety, cfg.PriceStep),
		ConflictKey: fmt.Sprintf("%s_stat", stat),
		TargetStat:  stat,
		TargetValue: float64(target),
		GameType:    gameType,
	}
}

// frequencyProbability - базовая частота рынка, взвешенная по роли игрока
func frequencyProbability(marketStat string, frequency float64, role string) float64 {
	base := frequency
	if base <= 0 {
		base = baseFrequencies[marketStat]
	}
	if base <= 0 {
		base = 0.05
	}

	family := "mvp"
	switch {
	case strings.Contains(marketStat, "damage"):
		family = "damage"
	case strings.Contains(marketStat, "farm"):
		family = "farm"
	}

	weight, ok := roleWeights[family][role]
	if !ok {
		weight = 1.0
	}

	return base * weight
}

func orDefault(v, fallback float64) float64 {
	if v <= 0 {
		return fallback
	}
	return v
}
