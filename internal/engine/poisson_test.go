package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoissonAtLeast_ZeroTarget(t *testing.T) {
	assert.Equal(t, 1.0, PoissonAtLeast(0, 4.5))
	assert.Equal(t, 1.0, PoissonAtLeast(-1, 4.5))
}

func TestPoisson_Complement(t *testing.T) {
	// P(X>=k) + P(X<k) = 1 в пределах пола вероятности
	for _, lambda := range []float64{0.5, 2.0, 5.0, 12.0, 20.0} {
		for k := 1; k <= 50; k++ {
			sum := PoissonAtLeast(k, lambda) + PoissonBelow(k, lambda)
			assert.InDelta(t, 1.0, sum, 2*minProbability,
				"lambda=%v k=%d", lambda, k)
		}
	}
}

func TestPoissonAtLeast_NonIncreasingInK(t *testing.T) {
	prev := PoissonAtLeast(0, 5.0)
	for k := 1; k <= 50; k++ {
		cur := PoissonAtLeast(k, 5.0)
		assert.LessOrEqual(t, cur, prev, "k=%d", k)
		prev = cur
	}
}

func TestPoisson_ProbabilityFloor(t *testing.T) {
	// Неправдоподобно большая цель упирается в пол, не в ноль
	assert.Equal(t, minProbability, PoissonAtLeast(50, 1.0))
	assert.Equal(t, minProbability, PoissonBelow(0, 5.0))
}

func TestPoisson_LambdaDamping(t *testing.T) {
	// Демпфер занижает хвост относительно недемпфированной λ:
	// P(X>=k) при λ=5 с демпфером меньше, чем прямой расчёт при λ=5/0.95
	damped := PoissonAtLeast(7, 5.0)
	raw := 1.0 - poissonCDF(6, 5.0)
	assert.Less(t, damped, raw)
}
