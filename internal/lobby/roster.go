package lobby

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/utils"
)

// Entry - один реальный игрок из внешнего матчмейкинга.
type Entry struct {
	UserID   string
	Username string
}

var aiNames = []string{
	"Торвальд", "Сигрид", "Бьорн", "Астрид", "Ульф",
	"Ингрид", "Рагнар", "Хельга", "Эйнар", "Сольвейг",
}

// BuildRoster собирает ростер сессии: реальные игроки плюс ИИ
// до fillTo участников. Классы всем раздаются случайно.
func BuildRoster(entries []Entry, fillTo int, rng *rand.Rand) []*domain.Player {
	roster := make([]*domain.Player, 0, fillTo)

	for _, e := range entries {
		class := utils.Pick(rng, domain.CharacterClasses)
		roster = append(roster, domain.NewPlayer(e.UserID, e.Username, class, true))
	}

	names := make([]string, len(aiNames))
	copy(names, aiNames)
	utils.Shuffle(rng, names)

	for i := 0; len(roster) < fillTo; i++ {
		name := fmt.Sprintf("Бот-%d", i+1)
		if i < len(names) {
			name = names[i]
		}
		class := utils.Pick(rng, domain.CharacterClasses)
		roster = append(roster, domain.NewPlayer(uuid.New().String(), name, class, false))
	}

	return roster
}
