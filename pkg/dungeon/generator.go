package dungeon

import (
	"math/rand"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/logger"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/utils"
	"github.com/sirupsen/logrus"
)

// DefaultWidth и DefaultHeight - размер канонической сетки.
const (
	DefaultWidth  = 5
	DefaultHeight = 5
)

// Generate строит связное сеточное подземелье width x height.
// Каждая комната соединена с ортогональными соседями, поэтому
// связность гарантирована конструкцией. Ровно одна комната каждого
// из типов start/key/portal/boss; ключ/портал/босс никогда не
// попадают в стартовую комнату.
func Generate(width, height int, rng *rand.Rand) *domain.Dungeon {
	if width < 2 || height < 2 {
		width, height = DefaultWidth, DefaultHeight
	}

	d := &domain.Dungeon{
		Width:  width,
		Height: height,
		Rooms:  make([]*domain.Room, 0, width*height),
		Round:  1,
	}

	// 1. Комнаты и связи.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			room := &domain.Room{
				ID:            y*width + x,
				X:             x,
				Y:             y,
				Type:          domain.RoomEmpty,
				Links:         make(map[domain.Direction]int),
				PlayersInRoom: make(map[string]bool),
			}
			d.Rooms = append(d.Rooms, room)
		}
	}
	for _, room := range d.Rooms {
		linkNeighbors(d, room)
	}

	// 2. Старт - случайная комната не на краю сетки.
	startX := utils.RandRange(rng, 1, width-2)
	startY := utils.RandRange(rng, 1, height-2)
	d.StartID = startY*width + startX
	d.Rooms[d.StartID].Type = domain.RoomStart

	// 3. Ключ, портал и босс - первые три из перетасованных
	// нестартовых комнат. Без повторов, никогда не старт.
	rest := make([]int, 0, len(d.Rooms)-1)
	for _, room := range d.Rooms {
		if room.ID != d.StartID {
			rest = append(rest, room.ID)
		}
	}
	utils.Shuffle(rng, rest)

	d.KeyID, d.PortalID, d.BossID = rest[0], rest[1], rest[2]
	d.Rooms[d.KeyID].Type = domain.RoomKey
	d.Rooms[d.PortalID].Type = domain.RoomPortal
	d.Rooms[d.BossID].Type = domain.RoomBoss
	d.Rooms[d.BossID].Monster = NewBoss(rng)
	rest = rest[3:]

	// 4. Наполнение остатка: монстры, потом сокровища, потом ловушки.
	monsterCount := int(float64(len(rest)) * domain.MonsterFraction)
	for i := 0; i < monsterCount; i++ {
		room := d.Rooms[rest[i]]
		room.Type = domain.RoomMonster
		room.Monster = NewSmallMonster(rng)
	}
	rest = rest[monsterCount:]

	treasureCount := int(float64(len(rest)) * domain.TreasureFraction)
	for i := 0; i < treasureCount; i++ {
		d.Rooms[rest[i]].Type = domain.RoomTreasure
	}
	rest = rest[treasureCount:]

	trapCount := int(float64(len(rest)) * domain.TrapFraction)
	for i := 0; i < trapCount; i++ {
		d.Rooms[rest[i]].Type = domain.RoomTrap
	}
	rest = rest[trapCount:]

	for _, id := range rest {
		if utils.Chance(rng, domain.HallChance) {
			d.Rooms[id].Type = domain.RoomHall
		}
	}

	// 5. Тексты.
	for _, room := range d.Rooms {
		flavor := FlavorFor(room.Type, rng)
		room.Name = flavor.Name
		room.Description = flavor.Description
	}

	// Нарушение связности - дефект генерации, игроку не показывается.
	if !FullyConnected(d) {
		logger.Log.WithFields(logrus.Fields{
			"component": "dungeon_generator",
			"width":     width,
			"height":    height,
		}).Error("Generated dungeon is not fully connected")
	}

	return d
}

// GenerateDefault строит каноническое подземелье 5x5.
func GenerateDefault(rng *rand.Rand) *domain.Dungeon {
	return Generate(DefaultWidth, DefaultHeight, rng)
}

// linkNeighbors связывает комнату с существующими ортогональными соседями.
func linkNeighbors(d *domain.Dungeon, room *domain.Room) {
	for _, dir := range []domain.Direction{domain.DirNorth, domain.DirSouth, domain.DirEast, domain.DirWest} {
		dx, dy := dir.Delta()
		nx, ny := room.X+dx, room.Y+dy
		if nx < 0 || nx >= d.Width || ny < 0 || ny >= d.Height {
			continue
		}
		room.Links[dir] = ny*d.Width + nx
	}
}

// FullyConnected проверяет достижимость всех комнат от старта (BFS).
func FullyConnected(d *domain.Dungeon) bool {
	if len(d.Rooms) == 0 {
		return false
	}

	visited := make(map[int]bool, len(d.Rooms))
	queue := []int{d.StartID}
	visited[d.StartID] = true

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range d.Rooms[id].Links {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	return len(visited) == len(d.Rooms)
}
