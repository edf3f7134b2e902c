package dungeon

import (
	"math/rand"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/utils"
)

// RoomFlavor - текстовый шаблон комнаты. На поведение не влияет.
type RoomFlavor struct {
	Name        string
	Description string
}

var roomFlavors = map[domain.RoomType][]RoomFlavor{
	domain.RoomStart: {
		{"Вход в подземелье", "Холодный сквозняк тянет из глубины. Обратной дороги нет."},
	},
	domain.RoomKey: {
		{"Зал хранителя", "На каменном алтаре тускло блестит портальный ключ."},
		{"Забытая сокровищница", "Среди пыли и паутины спрятан ключ от портала."},
	},
	domain.RoomPortal: {
		{"Зал портала", "Арка из обсидиана гудит древней магией."},
	},
	domain.RoomBoss: {
		{"Логово стража", "Пол усеян костями тех, кто пришел раньше."},
	},
	domain.RoomMonster: {
		{"Темный коридор", "Из темноты доносится дыхание."},
		{"Затопленная галерея", "Вода по щиколотку. Что-то шевелится у стены."},
		{"Гнездо", "Стены покрыты чем-то липким."},
	},
	domain.RoomTreasure: {
		{"Сокровищница", "Сундуки и рассыпанные монеты."},
		{"Склеп торговца", "Когда-то здесь прятали товар. Кое-что осталось."},
	},
	domain.RoomTrap: {
		{"Коридор с плитами", "Плиты пола подозрительно ровные."},
		{"Зал с растяжками", "В полумраке поблескивает проволока."},
	},
	domain.RoomHall: {
		{"Большой зал", "Эхо шагов теряется под сводами."},
		{"Колонный зал", "Ряды колонн уходят в темноту."},
	},
	domain.RoomEmpty: {
		{"Пустая комната", "Пыль и тишина."},
		{"Заброшенная келья", "Сгнившая мебель и обрывки ткани."},
	},
}

// FlavorFor возвращает случайный текстовый шаблон для типа комнаты.
func FlavorFor(t domain.RoomType, rng *rand.Rand) RoomFlavor {
	flavors, ok := roomFlavors[t]
	if !ok || len(flavors) == 0 {
		return RoomFlavor{Name: string(t), Description: ""}
	}
	return utils.Pick(rng, flavors)
}

// Границы характеристик монстров.
const (
	bossHPMin, bossHPMax   = 80, 150
	bossDmgMin, bossDmgMax = 15, 30

	smallHPMin, smallHPMax   = 20, 60
	smallDmgMin, smallDmgMax = 5, 20
)

var bossNames = []string{"Страж глубин", "Пожиратель теней", "Костяной колосс"}

var smallMonsterNames = []string{
	"Гуль", "Скелет-копейщик", "Пещерный паук",
	"Слизень", "Крысиный вожак",
}

// NewBoss создает босса охраняющего свою комнату.
func NewBoss(rng *rand.Rand) *domain.Monster {
	hp := utils.RandRange(rng, bossHPMin, bossHPMax)
	return &domain.Monster{
		Name:      utils.Pick(rng, bossNames),
		HP:        hp,
		MaxHP:     hp,
		Damage:    utils.RandRange(rng, bossDmgMin, bossDmgMax),
		LootCount: 3,
		IsBoss:    true,
		Alive:     true,
	}
}

// NewSmallMonster создает рядового обитателя подземелья.
func NewSmallMonster(rng *rand.Rand) *domain.Monster {
	hp := utils.RandRange(rng, smallHPMin, smallHPMax)
	return &domain.Monster{
		Name:      utils.Pick(rng, smallMonsterNames),
		HP:        hp,
		MaxHP:     hp,
		Damage:    utils.RandRange(rng, smallDmgMin, smallDmgMax),
		LootCount: utils.RandRange(rng, 1, 2),
		Alive:     true,
	}
}

// LootPool - базовый пул добычи забега. Эффекты заданы шаблонными
// строками и разбираются один раз при создании предмета.
func LootPool() []domain.LootItem {
	return []domain.LootItem{
		domain.NewLootItem("Лечебный эликсир", "heal:15", domain.RarityCommon),
		domain.NewLootItem("Амулет хранителя", "survive_attack:1", domain.RarityUncommon),
		domain.NewLootItem("Зелье силы", "attack_power:5", domain.RarityCommon),
		domain.NewLootItem("Дымовая шашка", "instant_flee:1", domain.RarityUncommon),
		domain.NewLootItem("Око провидца", "reveal_role:1", domain.RarityRare),
		domain.NewLootItem("Перо феникса", "revive:1", domain.RarityRare),
		domain.NewLootItem("Древний артефакт", "reveal_all_roles:1;loot_bonus:10", domain.RarityLegendary),
	}
}

// SearchLoot - таблица добычи при обыске, своя на каждый тип
// комнаты. В сокровищнице попадается редкое, в ловушечной - хлам
// и средства спасения, у логова монстра - оружие и защита.
// Для типов без собственной таблицы действует базовый пул.
func SearchLoot(t domain.RoomType) []domain.LootItem {
	switch t {
	case domain.RoomTreasure:
		return []domain.LootItem{
			domain.NewLootItem("Око провидца", "reveal_role:1", domain.RarityRare),
			domain.NewLootItem("Перо феникса", "revive:1", domain.RarityRare),
			domain.NewLootItem("Самоцвет удачи", "loot_bonus:15", domain.RarityRare),
			domain.NewLootItem("Древний артефакт", "reveal_all_roles:1;loot_bonus:10", domain.RarityLegendary),
		}

	case domain.RoomMonster, domain.RoomBoss:
		return []domain.LootItem{
			domain.NewLootItem("Зелье силы", "attack_power:5", domain.RarityCommon),
			domain.NewLootItem("Боевой тотем", "attack_power:8", domain.RarityUncommon),
			domain.NewLootItem("Амулет хранителя", "survive_attack:1", domain.RarityUncommon),
			domain.NewLootItem("Кольчужный оберег", "block_attacks:2", domain.RarityRare),
		}

	case domain.RoomTrap:
		return []domain.LootItem{
			domain.NewLootItem("Дымовая шашка", "instant_flee:1", domain.RarityUncommon),
			domain.NewLootItem("Свиток побега", "escape_danger:1", domain.RarityUncommon),
			domain.NewLootItem("Лечебный эликсир", "heal:15", domain.RarityCommon),
		}

	case domain.RoomEmpty, domain.RoomHall:
		return []domain.LootItem{
			domain.NewLootItem("Лечебный эликсир", "heal:15", domain.RarityCommon),
			domain.NewLootItem("Пыльный свиток", "reveal_role:1", domain.RarityUncommon),
			domain.NewLootItem("Дымовая шашка", "instant_flee:1", domain.RarityUncommon),
			domain.NewLootItem("Малый эликсир", "heal:8", domain.RarityCommon),
		}

	default:
		return LootPool()
	}
}
