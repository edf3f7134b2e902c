package systems

import (
	"math/rand"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/utils"
)

// NightKillers - порченые, которые могут действовать этой ночью:
// живые, не сбежавшие. Роли назначены один раз на старте игры
// и ночью не переназначаются.
func NightKillers(roster []*domain.Player) []*domain.Player {
	var killers []*domain.Player
	for _, p := range roster {
		if p.Role == domain.RoleCorrupted && p.InGame() {
			killers = append(killers, p)
		}
	}
	return killers
}

// MurderResult - итог попытки убийства.
type MurderResult struct {
	Victim   *domain.Player // nil: в комнате некого убивать
	Success  bool
	Survived bool // жертва спаслась зарядом защиты или пером феникса
}

// ResolveMurder выбирает случайную непорченую жертву среди соседей
// по комнате и бьет с фиксированным шансом 70%. Заряд защиты или
// перо феникса спасают жертву даже при удачном броске.
func ResolveMurder(d *domain.Dungeon, killer *domain.Player, roster []*domain.Player, rng *rand.Rand) MurderResult {
	room := d.Room(killer.RoomID)
	if room == nil {
		return MurderResult{}
	}

	byID := make(map[string]*domain.Player, len(roster))
	for _, p := range roster {
		byID[p.ID] = p
	}

	var targets []*domain.Player
	for id := range room.PlayersInRoom {
		p := byID[id]
		if p == nil || p.ID == killer.ID || !p.InGame() || p.Role == domain.RoleCorrupted {
			continue
		}
		targets = append(targets, p)
	}
	if len(targets) == 0 {
		return MurderResult{}
	}

	victim := utils.Pick(rng, targets)
	res := MurderResult{Victim: victim}

	if !utils.Chance(rng, domain.MurderSuccessChance) {
		return res
	}
	res.Success = true

	if victim.Protection > 0 {
		victim.Protection--
		res.Survived = true
		return res
	}
	if victim.HasRevive {
		victim.HasRevive = false
		res.Survived = true
		return res
	}

	victim.Alive = false
	victim.HP = 0
	delete(room.PlayersInRoom, victim.ID)
	return res
}
