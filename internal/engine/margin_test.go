package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImpliedProbability_MonotonicAndCapped(t *testing.T) {
	prev := 0.0
	for _, margin := range []float64{0, 0.05, 0.15, 0.30, 0.50, 1.0, 5.0} {
		cur := ImpliedProbability(0.40, margin)
		assert.GreaterOrEqual(t, cur, prev)
		assert.LessOrEqual(t, cur, maxImpliedProbability)
		prev = cur
	}

	// Почти достоверное событие упирается в потолок
	assert.Equal(t, maxImpliedProbability, ImpliedProbability(0.99, 0.15))
}

func TestPrice_WorkedExample(t *testing.T) {
	// implied 0.50, маржа 0 -> сырая котировка 2.00;
	// редуктор 10% -> 1.80; шаг 0.05 -> 1.80
	assert.InDelta(t, 1.80, Price(0.50, 0.10, 0.05), 1e-9)
}

func TestPrice_SentinelAndFloors(t *testing.T) {
	assert.Equal(t, maxPriceSentinel, Price(0, 0.10, 0.05))
	assert.Equal(t, maxPriceSentinel, Price(-0.3, 0.10, 0.05))

	// Потолок implied 0.95 держит цену не ниже 1.01 даже с редуктором
	assert.GreaterOrEqual(t, Price(0.95, 0.0, 0.05), minFinalOdd)
}

func TestPrice_StepMultiple(t *testing.T) {
	step := 0.05
	for _, p := range []float64{0.05, 0.17, 0.33, 0.50, 0.77, 0.95} {
		price := Price(p, 0.10, step)
		steps := price / step
		assert.InDelta(t, math.Round(steps), steps, 1e-9, "p=%v price=%v", p, price)
	}
}

func TestPrice_NonIncreasingInSafetyReduction(t *testing.T) {
	prev := math.Inf(1)
	for _, safety := range []float64{0, 0.05, 0.10, 0.20, 0.40} {
		cur := Price(0.40, safety, 0.05)
		assert.LessOrEqual(t, cur, prev, "safety=%v", safety)
		prev = cur
	}
}

func TestEffectiveMargin_StaticMode(t *testing.T) {
	cfg := DefaultConfig().Margins
	pctx := PricingContext{PlayerProfit: 500, PlayerBetCount: 100, PlatformProfit: -1000}

	// В статическом режиме P/L не влияет
	assert.Equal(t, 0.30, EffectiveMargin(0.30, cfg, pctx))
}

func TestEffectiveMargin_DynamicMode(t *testing.T) {
	cfg := DefaultConfig().Margins
	cfg.Mode = MarginModeDynamic

	// Игрок в минусе, платформа в плюсе - базовая маржа
	base := EffectiveMargin(0.30, cfg, PricingContext{PlayerProfit: -10, PlayerBetCount: 20, PlatformProfit: 100})
	assert.Equal(t, 0.30, base)

	// Игрок в плюсе после порога - маржа растёт
	up := EffectiveMargin(0.30, cfg, PricingContext{PlayerProfit: 50, PlayerBetCount: 20, PlatformProfit: 100})
	assert.InDelta(t, 0.35, up, 1e-9)

	// Игрок в плюсе, но порог по числу ставок не пройден
	early := EffectiveMargin(0.30, cfg, PricingContext{PlayerProfit: 50, PlayerBetCount: 2, PlatformProfit: 100})
	assert.Equal(t, 0.30, early)

	// Платформа в минусе - ещё одна ступень
	both := EffectiveMargin(0.30, cfg, PricingContext{PlayerProfit: 50, PlayerBetCount: 20, PlatformProfit: -5})
	assert.InDelta(t, 0.40, both, 1e-9)

	// Потолок
	cfg.Max = 0.32
	capped := EffectiveMargin(0.30, cfg, PricingContext{PlayerProfit: 50, PlayerBetCount: 20, PlatformProfit: -5})
	assert.InDelta(t, 0.32, capped, 1e-9)

	// Ниже базовой маржа не опускается даже при потолке ниже базы
	cfg.Max = 0.10
	floored := EffectiveMargin(0.30, cfg, PricingContext{})
	assert.Equal(t, 0.30, floored)
}

func TestSafetyReduction_DisabledInDynamicMode(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 0.10, SafetyReduction(cfg))

	cfg.Margins.Mode = MarginModeDynamic
	assert.Equal(t, 0.0, SafetyReduction(cfg))
}
