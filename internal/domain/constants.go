package domain

import "time"

// Базовые стоимости действий (до скидки за ловкость).
const (
	BaseCostMove   = 10
	BaseCostSearch = 5
	CostWait       = 1
)

// Формулы персонажа.
const (
	StaminaPerVitality = 5
	BaseHP             = 30
	HPPerVitality      = 4
)

// Шансы и доли генерации (см. pkg/dungeon).
const (
	MonsterFraction  = 0.30
	TreasureFraction = 0.40
	TrapFraction     = 0.30
	HallChance       = 0.50
)

// Шансы исследования.
const (
	SearchLootChance = 0.35
	NoiseEventChance = 0.30
	TrapAvoidBase    = 0.30
	TrapAvoidCap     = 0.90
)

// Ночная фаза и роли.
const (
	CorruptedFraction   = 0.30
	MurderSuccessChance = 0.70
)

// Голосование.
const (
	AIAbstainChance = 0.20
)

// Тайминги фаз и ИИ. Все отложенные задачи идут через планировщик
// сессии, поэтому их можно ускорять в тестах виртуальными часами.
const (
	AITickInterval   = 3 * time.Second
	AIJitterMin      = 2 * time.Second
	AIJitterMax      = 10 * time.Second
	DiscussionWindow = 10 * time.Second
	VotingWindow     = 30 * time.Second
	DayPhaseLimit    = 2 * time.Minute
)
