package engine

import (
	"sync"
	"time"
)

// Scheduler - очередь отложенных задач сессии. Все хэндлы таймеров
// учитываются, поэтому при смене фазы или сбросе игры "протухшие"
// колбеки можно снять разом и они не тронут новое состояние.
type Scheduler struct {
	clock Clock

	mu    sync.Mutex
	seq   int
	tasks map[int]Timer
}

func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{
		clock: clock,
		tasks: make(map[int]Timer),
	}
}

// After ставит задачу через d. Возвращает id для точечной отмены.
// Колбек снимает свой хэндл сам, отмена уже сработавшей задачи безвредна.
func (s *Scheduler) After(d time.Duration, f func()) int {
	// Регистрируем задачу ДО создания таймера: очень короткий таймер
	// может сработать раньше, чем мы запишем его хэндл.
	s.mu.Lock()
	s.seq++
	id := s.seq
	s.tasks[id] = nil
	s.mu.Unlock()

	timer := s.clock.AfterFunc(d, func() {
		s.mu.Lock()
		_, pending := s.tasks[id]
		delete(s.tasks, id)
		s.mu.Unlock()

		// Задача могла быть отменена до срабатывания.
		if pending {
			f()
		}
	})

	s.mu.Lock()
	if _, ok := s.tasks[id]; ok {
		s.tasks[id] = timer
	}
	s.mu.Unlock()

	return id
}

// Cancel снимает одну задачу.
func (s *Scheduler) Cancel(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tasks[id]; ok {
		if t != nil {
			t.Stop()
		}
		delete(s.tasks, id)
	}
}

// CancelAll снимает все запланированные задачи (конец фазы, сброс сессии).
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.tasks {
		if t != nil {
			t.Stop()
		}
		delete(s.tasks, id)
	}
}

// Pending - число задач в очереди (для тестов и отладки).
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
