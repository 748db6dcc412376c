package engine

import "math"

// DifficultyScalar - коэффициент усложнения цели по сглаженному винрейту.
// Винрейт зажимается в коридор, нормируется в [0,1] и линейно
// интерполируется между минимальным и максимальным скаляром: сильные
// аккаунты получают более жёсткие цели при тех же номинальных котировках
func DifficultyScalar(winRate float64, cfg DifficultyConfig) float64 {
	band := cfg.WinrateBand
	clamped := clamp(winRate, band.Min, band.Max)

	norm := 0.0
	if band.Max > band.Min {
		norm = (clamped - band.Min) / (band.Max - band.Min)
	}

	return cfg.Min + (cfg.Max-cfg.Min)*norm
}

// OverTarget - цель "больше чем": среднее, надутое скаляром, вверх до целого
func OverTarget(avg, scalar float64) int {
	return int(math.Ceil(avg * (1 + scalar)))
}

// UnderTarget - цель "меньше чем": среднее, сдутое скаляром, вниз до целого
func UnderTarget(avg, scalar float64) int {
	return int(math.Floor(avg * (1 - scalar)))
}
