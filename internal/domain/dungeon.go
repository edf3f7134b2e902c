package domain

// Direction - сторона света в сеточном подземелье.
type Direction uint8

const (
	DirNorth Direction = iota
	DirSouth
	DirEast
	DirWest
)

var directionNames = map[Direction]string{
	DirNorth: "north",
	DirSouth: "south",
	DirEast:  "east",
	DirWest:  "west",
}

var directionByName = map[string]Direction{
	"north": DirNorth,
	"south": DirSouth,
	"east":  DirEast,
	"west":  DirWest,
}

func (d Direction) String() string {
	if s, ok := directionNames[d]; ok {
		return s
	}
	return "unknown"
}

// ParseDirection разбирает название стороны. Второй результат false
// для неизвестной строки.
func ParseDirection(s string) (Direction, bool) {
	d, ok := directionByName[s]
	return d, ok
}

// Delta возвращает смещение по сетке (dx, dy).
func (d Direction) Delta() (int, int) {
	switch d {
	case DirNorth:
		return 0, -1
	case DirSouth:
		return 0, 1
	case DirEast:
		return 1, 0
	default:
		return -1, 0
	}
}

// RoomType - тип содержимого комнаты.
type RoomType string

const (
	RoomStart    RoomType = "start"
	RoomKey      RoomType = "key"
	RoomPortal   RoomType = "portal"
	RoomBoss     RoomType = "boss"
	RoomMonster  RoomType = "monster"
	RoomTreasure RoomType = "treasure"
	RoomTrap     RoomType = "trap"
	RoomHall     RoomType = "hall"
	RoomEmpty    RoomType = "empty"
)

// Monster живет в комнате с момента генерации и никогда не воскресает.
type Monster struct {
	Name      string `json:"name"`
	HP        int    `json:"hp"`
	MaxHP     int    `json:"maxHp"`
	Damage    int    `json:"damage"`
	LootCount int    `json:"lootCount"`
	IsBoss    bool   `json:"isBoss"`
	Alive     bool   `json:"alive"`
}

// Room - одна комната сеточного подземелья.
type Room struct {
	ID          int      `json:"id"`
	X           int      `json:"x"`
	Y           int      `json:"y"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        RoomType `json:"type"`

	// Links - выходы в существующие соседние комнаты.
	Links map[Direction]int `json:"-"`

	// PlayersInRoom - множество id игроков, находящихся здесь.
	PlayersInRoom map[string]bool `json:"-"`

	Cleared bool     `json:"cleared"`
	Monster *Monster `json:"monster,omitempty"`

	// KeyTaken - ключ уже подобран (только для комнаты-ключа).
	KeyTaken bool `json:"keyTaken,omitempty"`
}

// Dungeon владеет всеми комнатами; комнаты не переживают подземелье.
type Dungeon struct {
	Width  int
	Height int
	Rooms  []*Room // индекс слайса == Room.ID

	StartID  int
	KeyID    int
	PortalID int
	BossID   int

	Round int
}

// Room возвращает комнату по id или nil.
func (d *Dungeon) Room(id int) *Room {
	if id < 0 || id >= len(d.Rooms) {
		return nil
	}
	return d.Rooms[id]
}

// IsAdjacent проверяет, есть ли прямой переход from -> to.
func (d *Dungeon) IsAdjacent(from, to int) bool {
	room := d.Room(from)
	if room == nil {
		return false
	}
	for _, id := range room.Links {
		if id == to {
			return true
		}
	}
	return false
}

// MovePlayer перекладывает игрока между множествами занятости комнат.
// Валидность перехода проверяет вызывающий.
func (d *Dungeon) MovePlayer(playerID string, from, to int) {
	if r := d.Room(from); r != nil {
		delete(r.PlayersInRoom, playerID)
	}
	if r := d.Room(to); r != nil {
		if r.PlayersInRoom == nil {
			r.PlayersInRoom = make(map[string]bool)
		}
		r.PlayersInRoom[playerID] = true
	}
}
