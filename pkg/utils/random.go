package utils

import (
	"math/rand"
	"time"
)

// RandRange возвращает равномерное целое из [min, max] включительно.
func RandRange(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

// Chance бросает кубик: true с вероятностью p (0.0 - 1.0).
func Chance(rng *rand.Rand, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return rng.Float64() < p
}

// Pick выбирает случайный элемент слайса. Паникует на пустом слайсе,
// вызывающий обязан проверить длину.
func Pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// RandRangeDuration возвращает равномерную длительность из [0, max).
func RandRangeDuration(rng *rand.Rand, max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(rng.Int63n(int64(max)))
}

// Shuffle перемешивает слайс на месте (Фишер-Йетс).
func Shuffle[T any](rng *rand.Rand, items []T) {
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
