package systems

import (
	"math/rand"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/utils"
)

// MoveResult - итог проверки перехода.
type MoveResult struct {
	OK     bool
	To     int
	Reason string // почему нельзя (для журнала игрока)
}

// CalculateMove проверяет переход игрока в указанном направлении.
// Сама перестановка игрока и списание сил - на вызывающем.
func CalculateMove(d *domain.Dungeon, p *domain.Player, dir domain.Direction) MoveResult {
	room := d.Room(p.RoomID)
	if room == nil {
		return MoveResult{Reason: "Комната не найдена."}
	}

	to, ok := room.Links[dir]
	if !ok {
		return MoveResult{Reason: "В эту сторону прохода нет."}
	}

	return MoveResult{OK: true, To: to}
}

// SearchYield бросает кубик на добычу при обыске комнаты. Пул
// передается вызывающим по типу комнаты (dungeon.SearchLoot).
// Силы тратятся независимо от результата.
func SearchYield(rng *rand.Rand, pool []domain.LootItem, p *domain.Player) (domain.LootItem, bool) {
	if !utils.Chance(rng, domain.SearchLootChance) {
		return domain.LootItem{}, false
	}
	return RollLoot(rng, pool, p.LootBonus), true
}

// RollLoot тянет предмет из пула. Бонус добычи (в процентах) дает
// шанс заменить бросок на предмет редкости rare и выше.
func RollLoot(rng *rand.Rand, pool []domain.LootItem, lootBonus int) domain.LootItem {
	if lootBonus > 0 && utils.Chance(rng, float64(lootBonus)/100) {
		var rare []domain.LootItem
		for _, it := range pool {
			if it.Rarity == domain.RarityRare || it.Rarity == domain.RarityLegendary {
				rare = append(rare, it)
			}
		}
		if len(rare) > 0 {
			return utils.Pick(rng, rare)
		}
	}
	return utils.Pick(rng, pool)
}

// TreasureDraws - сколько предметов дает сундук.
func TreasureDraws(rng *rand.Rand) int {
	return utils.RandRange(rng, 1, 3)
}

// TrapAvoidChance - шанс увернуться от ловушки, растет с ловкостью.
func TrapAvoidChance(p *domain.Player) float64 {
	chance := domain.TrapAvoidBase + float64(p.Stats.Agility)/50
	if chance > domain.TrapAvoidCap {
		chance = domain.TrapAvoidCap
	}
	return chance
}

// NoiseRooms возвращает id соседних комнат, из которых доносится шум:
// комната с двумя и более игроками шумит с шансом 30%.
func NoiseRooms(d *domain.Dungeon, fromRoomID int, rng *rand.Rand) []int {
	room := d.Room(fromRoomID)
	if room == nil {
		return nil
	}

	var noisy []int
	for _, id := range room.Links {
		adjacent := d.Room(id)
		if adjacent == nil || len(adjacent.PlayersInRoom) < 2 {
			continue
		}
		if utils.Chance(rng, domain.NoiseEventChance) {
			noisy = append(noisy, id)
		}
	}
	return noisy
}
