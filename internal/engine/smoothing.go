package engine

import "sort"

const (
	// Веса сглаживания: свежая форма против общей истории
	recentWeight  = 0.6
	overallWeight = 0.4
	// Минимум свежих партий для усечённого среднего
	minRecentSamples = 3
	// Окно свежих партий
	recentWindow = 7

	// RoleUnknown - роль не определена по истории
	RoleUnknown = "UNKNOWN"
)

// WeightedAverageStat - сглаженное среднее по счётной метрике (киллы, ассисты, смерти).
// Если свежих партий меньше трёх, возвращает общее среднее как есть.
// Иначе сортирует окно, отбрасывает лучший и худший результат и
// смешивает усечённое среднее с общим в пропорции 0.6/0.4
func WeightedAverageStat(overall float64, recent []float64) float64 {
	if len(recent) > recentWindow {
		recent = recent[:recentWindow]
	}
	if len(recent) < minRecentSamples {
		return overall
	}

	sorted := make([]float64, len(recent))
	copy(sorted, recent)
	sort.Float64s(sorted)

	trimmed := sorted[1 : len(sorted)-1]
	var sum float64
	for _, v := range trimmed {
		sum += v
	}
	recentAvg := sum / float64(len(trimmed))

	return recentAvg*recentWeight + overall*overallWeight
}

// WeightedWinRate - сглаженный винрейт с зажимом в коммерческий коридор.
// Самая старая партия окна принудительно считается победой, чтобы серия
// поражений не обнуляла котировку. Окно упорядочено от новых к старым.
// Без свежих партий возвращается общий винрейт без зажима
func WeightedWinRate(overall float64, recent []bool, band Band) float64 {
	if len(recent) > recentWindow {
		recent = recent[:recentWindow]
	}
	if len(recent) == 0 {
		return overall
	}

	wins := 0
	for i, w := range recent {
		// Последний элемент окна (самая старая партия) - принудительная победа
		if w || i == len(recent)-1 {
			wins++
		}
	}
	recentRate := float64(wins) / float64(len(recent))

	weighted := recentRate*recentWeight + overall*overallWeight
	return clamp(weighted, band.Min, band.Max)
}

// PrimaryRole - основная роль игрока: мода по последним партиям.
// Короткие формы приводятся к каноническим, при равенстве побеждает
// роль, встреченная первой
func PrimaryRole(roles []string) string {
	if len(roles) == 0 {
		return RoleUnknown
	}

	counts := make(map[string]int, len(roles))
	order := make([]string, 0, len(roles))
	for _, r := range roles {
		canon := normalizeRole(r)
		if _, seen := counts[canon]; !seen {
			order = append(order, canon)
		}
		counts[canon]++
	}

	best, bestCount := RoleUnknown, 0
	for _, r := range order {
		if counts[r] > bestCount {
			best, bestCount = r, counts[r]
		}
	}
	return best
}

func normalizeRole(role string) string {
	switch role {
	case "MID":
		return "MIDDLE"
	case "BOT":
		return "BOTTOM"
	case "":
		return RoleUnknown
	default:
		return role
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
