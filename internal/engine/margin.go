package engine

import "math"

const (
	// Потолок замаржированной вероятности: котировка не схлопывается к 1.00
	maxImpliedProbability = 0.95
	// Сентинел для нулевой/отрицательной вероятности - рынок фактически не предлагается
	maxPriceSentinel = 99.0
	// Минимальная сырая котировка до редуктора
	minRawOdd = 1.05
	// Абсолютный минимум итоговой котировки
	minFinalOdd = 1.01
)

// ImpliedProbability - вероятность с учётом маржи дома, не выше потолка
func ImpliedProbability(trueProb, margin float64) float64 {
	return math.Min(trueProb*(1+margin), maxImpliedProbability)
}

// Price - итоговая десятичная котировка из замаржированной вероятности.
// Редуктор безопасности дополнительно срезает выплату, округление
// всегда вниз к шагу цены - в пользу дома, никогда вверх
func Price(impliedProb, safetyReduction, priceStep float64) float64 {
	if impliedProb <= 0 {
		return maxPriceSentinel
	}

	raw := math.Max(1.0/impliedProb, minRawOdd)
	safe := raw * (1.0 - safetyReduction)

	final := math.Max(safe, minFinalOdd)
	multiplier := 1.0 / priceStep
	return math.Floor(final*multiplier) / multiplier
}

// PricingContext - P/L игрока и платформы для динамического режима маржи
type PricingContext struct {
	PlayerProfit   float64
	PlayerBetCount int
	PlatformProfit float64
}

// EffectiveMargin - рабочая маржа для данного аккаунта.
// В статическом режиме возвращает базовую маржу как есть.
// В динамическом маржа растёт, когда игрок в плюсе после порога по числу
// ставок, и ещё раз, когда платформа в минусе; потолок - Margins.Max,
// ниже базовой маржа не опускается никогда
func EffectiveMargin(base float64, cfg MarginConfig, pctx PricingContext) float64 {
	if cfg.Mode != MarginModeDynamic {
		return base
	}

	margin := base
	if pctx.PlayerBetCount >= cfg.BetCountThreshold && pctx.PlayerProfit > 0 {
		margin += cfg.PlayerStep
	}
	if pctx.PlatformProfit < 0 {
		margin += cfg.PlatformStep
	}

	if margin > cfg.Max {
		margin = cfg.Max
	}
	if margin < base {
		margin = base
	}
	return margin
}

// SafetyReduction - редуктор для выбранного режима: в динамическом
// режиме редуктор не применяется, его роль играет рост маржи
func SafetyReduction(cfg Config) float64 {
	if cfg.Margins.Mode == MarginModeDynamic {
		return 0.0
	}
	return cfg.SafetyReduction
}
