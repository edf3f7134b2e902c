package systems

import (
	"math/rand"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/utils"
)

// Tally считает простое большинство по не-воздержавшимся голосам.
// Возвращает id лидера и true, либо false при ничьей наверху
// (или полном отсутствии голосов) - тогда никто не выбывает.
func Tally(votes map[string]string) (string, bool) {
	counts := make(map[string]int)
	for _, target := range votes {
		if target != "" {
			counts[target]++
		}
	}

	best, bestCount, tie := "", 0, false
	for id, n := range counts {
		switch {
		case n > bestCount:
			best, bestCount, tie = id, n, false
		case n == bestCount:
			tie = true
		}
	}

	if bestCount == 0 || tie {
		return "", false
	}
	return best, true
}

// AIVote - решение ИИ-игрока: ~20% воздержаться, иначе равновероятная
// цель среди других живых не сбежавших игроков.
func AIVote(rng *rand.Rand, voter *domain.Player, roster []*domain.Player) (string, bool) {
	if utils.Chance(rng, domain.AIAbstainChance) {
		return "", true
	}

	var candidates []string
	for _, p := range roster {
		if p.ID != voter.ID && p.InGame() {
			candidates = append(candidates, p.ID)
		}
	}
	if len(candidates) == 0 {
		return "", true
	}
	return utils.Pick(rng, candidates), false
}

// Verdict - исход проверки условий победы.
type Verdict struct {
	Over   bool
	Winner string // "innocent", "corrupted" или "" (никто: все погибли/сбежали)
	Reason string
}

// CheckWin пересчитывает условия завершения. Считаются только живые
// не сбежавшие игроки: сбежавший недосягаем и для ножа, и для голосования.
func CheckWin(roster []*domain.Player) Verdict {
	corrupted, innocent, inGame := 0, 0, 0
	for _, p := range roster {
		if !p.InGame() {
			continue
		}
		inGame++
		if p.Role == domain.RoleCorrupted {
			corrupted++
		} else {
			innocent++
		}
	}

	if inGame == 0 {
		return Verdict{Over: true, Winner: "", Reason: "Все игроки погибли или сбежали."}
	}
	if corrupted == 0 {
		return Verdict{Over: true, Winner: "innocent", Reason: "Все порченые устранены."}
	}
	if corrupted >= innocent {
		return Verdict{Over: true, Winner: "corrupted", Reason: "Порченые захватили подземелье."}
	}
	return Verdict{}
}
