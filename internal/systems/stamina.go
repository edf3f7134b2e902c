package systems

import (
	"math"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
)

// ActionCost считает стоимость действия со скидкой за ловкость.
// Скидка капится на 50%, пол результата не опускается ниже 1,
// поэтому бесплатных действий не бывает.
func ActionCost(baseCost int, p *domain.Player) int {
	discount := float64(p.Stats.Agility) * 0.05
	if discount > 0.5 {
		discount = 0.5
	}
	cost := int(math.Floor(float64(baseCost) * (1 - discount)))
	if cost < 1 {
		cost = 1
	}
	return cost
}

// HasStamina проверяет, хватает ли запаса сил на действие.
func HasStamina(p *domain.Player, cost int) bool {
	return p.Stamina >= cost
}

// Spend списывает запас сил с нижней границей 0.
// Проверку "все выдохлись" вызывающий обязан выполнить синхронно
// сразу после списания (см. GameSession.spendStamina).
func Spend(p *domain.Player, cost int) {
	p.Stamina -= cost
	if p.Stamina < 0 {
		p.Stamina = 0
	}
}

// Refill восстанавливает запас сил до максимума.
func Refill(p *domain.Player) {
	p.Stamina = p.MaxStamina()
}

// AllExhausted - ночь наступает, когда НИ У КОГО из оставшихся
// в игре не осталось сил.
func AllExhausted(players []*domain.Player) bool {
	anyone := false
	for _, p := range players {
		if !p.InGame() {
			continue
		}
		anyone = true
		if p.Stamina >= 1 {
			return false
		}
	}
	return anyone
}
