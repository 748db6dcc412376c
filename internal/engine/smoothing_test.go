package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightedAverageStat_TrimmedBlend(t *testing.T) {
	// Сортировка [2,4,5,6,5,8,3] -> отброшены 2 и 8 -> среднее [3,4,5,5,6] = 4.6
	// Смесь: 0.6*4.6 + 0.4*5.0 = 4.76
	got := WeightedAverageStat(5.0, []float64{2, 4, 5, 6, 5, 8, 3})
	assert.InDelta(t, 4.76, got, 1e-9)
}

func TestWeightedAverageStat_FewRecentSamples(t *testing.T) {
	// Меньше трёх свежих партий - общее среднее без изменений
	assert.Equal(t, 6.5, WeightedAverageStat(6.5, []float64{9, 1}))
	assert.Equal(t, 6.5, WeightedAverageStat(6.5, nil))
}

func TestWeightedAverageStat_BlendWithinBounds(t *testing.T) {
	cases := []struct {
		overall float64
		recent  []float64
	}{
		{5.0, []float64{2, 4, 5, 6, 5, 8, 3}},
		{1.0, []float64{10, 12, 9, 11}},
		{12.0, []float64{1, 2, 3}},
	}
	for _, c := range cases {
		blended := WeightedAverageStat(c.overall, c.recent)

		sorted := append([]float64(nil), c.recent...)
		// усечённое среднее пересчитываем вручную
		trimmedSum := 0.0
		min, max := sorted[0], sorted[0]
		for _, v := range sorted {
			trimmedSum += v
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		trimmed := (trimmedSum - min - max) / float64(len(sorted)-2)

		lo := math.Min(trimmed, c.overall)
		hi := math.Max(trimmed, c.overall)
		assert.GreaterOrEqual(t, blended, lo)
		assert.LessOrEqual(t, blended, hi)
	}
}

func TestWeightedWinRate_ClampedToBand(t *testing.T) {
	band := Band{Min: 0.20, Max: 0.70}

	// Семь побед подряд при любом общем винрейте не выше потолка
	allWins := []bool{true, true, true, true, true, true, true}
	assert.Equal(t, 0.70, WeightedWinRate(0.9, allWins, band))
}

func TestWeightedWinRate_NoRecentSamples(t *testing.T) {
	band := Band{Min: 0.20, Max: 0.70}

	// Без свежих партий общий винрейт возвращается как есть,
	// коридор применяется только к смешанному значению
	assert.Equal(t, 0.80, WeightedWinRate(0.80, nil, band))
	assert.Equal(t, 0.05, WeightedWinRate(0.05, nil, band))
}

func TestWeightedWinRate_ForcedWinSmoothing(t *testing.T) {
	band := Band{Min: 0.0, Max: 1.0}

	// Семь поражений: самая старая партия принудительно победа,
	// свежий винрейт 1/7, смесь 0.6*(1/7) + 0.4*0.5
	allLosses := []bool{false, false, false, false, false, false, false}
	want := 0.6*(1.0/7.0) + 0.4*0.5
	assert.InDelta(t, want, WeightedWinRate(0.5, allLosses, band), 1e-9)
}

func TestPrimaryRole(t *testing.T) {
	// Мода с нормализацией коротких форм
	assert.Equal(t, "MIDDLE", PrimaryRole([]string{"MID", "MIDDLE", "TOP"}))
	assert.Equal(t, "BOTTOM", PrimaryRole([]string{"BOT", "BOTTOM", "BOT"}))

	// При равенстве побеждает роль, встреченная первой
	assert.Equal(t, "JUNGLE", PrimaryRole([]string{"JUNGLE", "TOP", "TOP", "JUNGLE"}))

	// Нет данных - явный сентинел
	assert.Equal(t, RoleUnknown, PrimaryRole(nil))
	assert.Equal(t, RoleUnknown, PrimaryRole([]string{""}))
}
