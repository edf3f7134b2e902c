package domain

// StatBlock - пять характеристик персонажа.
type StatBlock struct {
	Strength     int `json:"strength"`
	Vitality     int `json:"vitality"`
	Agility      int `json:"agility"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
}

// CharacterClass - шаблон класса со стартовыми характеристиками.
type CharacterClass struct {
	Name  string
	Emoji string
	Stats StatBlock
}

// CharacterClasses - доступные классы. ИИ-игрокам класс выдается случайно.
var CharacterClasses = []CharacterClass{
	{Name: "Mage", Emoji: "🔮", Stats: StatBlock{Strength: 3, Vitality: 4, Agility: 4, Intelligence: 10, Wisdom: 7}},
	{Name: "Warrior", Emoji: "⚔️", Stats: StatBlock{Strength: 10, Vitality: 8, Agility: 5, Intelligence: 3, Wisdom: 4}},
	{Name: "Rogue", Emoji: "🗡️", Stats: StatBlock{Strength: 5, Vitality: 5, Agility: 10, Intelligence: 5, Wisdom: 5}},
	{Name: "Seer", Emoji: "🔯", Stats: StatBlock{Strength: 4, Vitality: 5, Agility: 4, Intelligence: 7, Wisdom: 10}},
}

// Player - участник забега: человек или ИИ.
type Player struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Class   string `json:"class"`
	IsHuman bool   `json:"isHuman"`

	Role    Role `json:"-"` // скрыта от других игроков
	Alive   bool `json:"alive"`
	Escaped bool `json:"escaped"`

	Stats   StatBlock `json:"stats"`
	HP      int       `json:"hp"`
	MaxHP   int       `json:"maxHp"`
	Stamina int       `json:"stamina"` // текущая, границы [0, MaxStamina]

	RoomID int `json:"roomId"`

	Inventory []LootItem `json:"inventory"`
	Stash     []LootItem `json:"stash"`

	// Explored - персональный туман войны: множество id комнат,
	// которые ЭТОТ игрок уже видел. Никогда не убывает.
	Explored map[int]bool `json:"-"`

	// Накопленные эффекты предметов.
	Protection  int  `json:"-"` // заряды, поглощающие атаки
	HasRevive   bool `json:"-"`
	CanEscape   bool `json:"-"` // escape_danger / instant_flee
	AttackBonus int  `json:"-"`
	LootBonus   int  `json:"-"` // проценты к качеству добычи

	// LastAction видят игроки в той же комнате (улики для дедукции).
	LastAction string `json:"lastAction,omitempty"`

	// VoteTarget - id цели в текущем раунде голосования, "" = не голосовал.
	VoteTarget string `json:"-"`
	Abstained  bool   `json:"-"`
}

// NewPlayer создает игрока с характеристиками класса.
// Производные величины (HP, запас сил) считаются от vitality.
func NewPlayer(id, name string, class CharacterClass, isHuman bool) *Player {
	maxHP := BaseHP + class.Stats.Vitality*HPPerVitality
	return &Player{
		ID:        id,
		Name:      name,
		Class:     class.Name,
		IsHuman:   isHuman,
		Alive:     true,
		Stats:     class.Stats,
		HP:        maxHP,
		MaxHP:     maxHP,
		Stamina:   class.Stats.Vitality * StaminaPerVitality,
		Inventory: []LootItem{},
		Stash:     []LootItem{},
		Explored:  make(map[int]bool),
	}
}

// MaxStamina - чистая функция от текущей vitality, не кешируется.
func (p *Player) MaxStamina() int {
	return p.Stats.Vitality * StaminaPerVitality
}

// InGame - жив и еще не сбежал, то есть участвует в цикле день/ночь.
func (p *Player) InGame() bool {
	return p.Alive && !p.Escaped
}

// TakeDamage уменьшает HP с нижней границей 0.
// Возвращает true, если игрок погиб от этого удара.
func (p *Player) TakeDamage(dmg int) bool {
	if dmg < 0 {
		dmg = 0
	}
	p.HP -= dmg
	if p.HP <= 0 {
		p.HP = 0
		p.Alive = false
	}
	return !p.Alive
}

// Heal восстанавливает HP с верхней границей MaxHP.
// Возвращает фактически восстановленное количество.
func (p *Player) Heal(amount int) int {
	old := p.HP
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
	return p.HP - old
}

// AddItem кладет предмет в инвентарь.
func (p *Player) AddItem(item LootItem) {
	p.Inventory = append(p.Inventory, item)
}

// RemoveItemAt вынимает предмет по индексу, сохраняя порядок.
func (p *Player) RemoveItemAt(idx int) (LootItem, bool) {
	if idx < 0 || idx >= len(p.Inventory) {
		return LootItem{}, false
	}
	item := p.Inventory[idx]
	p.Inventory = append(p.Inventory[:idx], p.Inventory[idx+1:]...)
	return item, true
}

// FindItem ищет предмет по имени, возвращает индекс или -1.
func (p *Player) FindItem(name string) int {
	for i, it := range p.Inventory {
		if it.Name == name {
			return i
		}
	}
	return -1
}

// MarkExplored отмечает комнату увиденной этим игроком.
func (p *Player) MarkExplored(roomID int) {
	if p.Explored == nil {
		p.Explored = make(map[int]bool)
	}
	p.Explored[roomID] = true
}
