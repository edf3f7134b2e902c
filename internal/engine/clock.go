package engine

import "time"

// Clock абстрагирует время, чтобы тесты могли гонять фазы
// виртуальными часами вместо реального ожидания.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer - отменяемый отложенный вызов.
type Timer interface {
	Stop() bool
}

type realClock struct{}

// NewRealClock возвращает часы поверх пакета time.
func NewRealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// frozenClock - часы для проигрывания реплеев: время стоит, таймеры
// не срабатывают никогда. Ход симуляции задает только лента действий.
type frozenClock struct {
	t time.Time
}

// NewFrozenClock возвращает остановленные часы.
func NewFrozenClock(t time.Time) Clock {
	return frozenClock{t: t}
}

func (c frozenClock) Now() time.Time {
	return c.t
}

func (frozenClock) AfterFunc(time.Duration, func()) Timer {
	return noopTimer{}
}

type noopTimer struct{}

func (noopTimer) Stop() bool { return false }
