package engine

import "math"

const (
	// Демпфер λ: моделируемая интенсивность занижается относительно
	// сырого среднего, смещая все счётные котировки в пользу дома
	lambdaAdjust = 0.95
	// Пол вероятности, чтобы котировка не уходила в бесконечность
	minProbability = 0.001
)

// PoissonAtLeast - P(X >= k) для пуассоновской величины с параметром lambda.
// Для k <= 0 вероятность равна 1. Результат не опускается ниже пола
func PoissonAtLeast(k int, lambda float64) float64 {
	if k <= 0 {
		return 1.0
	}
	return floorProb(1.0 - poissonCDF(k-1, lambda*lambdaAdjust))
}

// PoissonBelow - P(X < k), дополнение хвоста с тем же полом
func PoissonBelow(k int, lambda float64) float64 {
	if k <= 0 {
		return minProbability
	}
	return floorProb(poissonCDF(k-1, lambda*lambdaAdjust))
}

// poissonCDF - P(X <= k). Члены pmf считаются инкрементально,
// без факториалов, что устойчиво при k до ~50 и λ до ~20
func poissonCDF(k int, lambda float64) float64 {
	if lambda <= 0 {
		return 1.0
	}
	term := math.Exp(-lambda)
	sum := term
	for i := 1; i <= k; i++ {
		term *= lambda / float64(i)
		sum += term
	}
	if sum > 1.0 {
		sum = 1.0
	}
	return sum
}

func floorProb(p float64) float64 {
	if p < minProbability {
		return minProbability
	}
	return p
}
