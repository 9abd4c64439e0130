// Package session хранит активные экзамены пользователей в памяти процесса.
// Хранилище живет только до перезапуска процесса: восстановление сессий
// после рестарта не поддерживается.
package session

import (
	"sync"

	"github.com/runkwell/telegram-quiz-bot/internal/domain/exam"
)

// entry — сессия одного пользователя. Собственный мьютекс сериализует
// действия этого пользователя, не блокируя других: курсор и ответы меняются
// некоммутативно, поэтому два действия одного пользователя не должны
// выполняться одновременно.
type entry struct {
	mu       sync.Mutex
	instance *exam.Instance
	done     bool
}

// Store — отображение "пользователь -> активный экзамен". Внешний мьютекс
// защищает только саму карту и держится O(1); вся работа с экзаменом идет
// под мьютексом конкретной сессии.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*entry
}

// NewStore создает пустое хранилище сессий.
func NewStore() *Store {
	return &Store{sessions: make(map[int64]*entry)}
}

// Start регистрирует новый экзамен пользователя. Существующая запись
// замещается без слияния: незавершенный предыдущий экзамен теряется.
func (s *Store) Start(userID int64, inst *exam.Instance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = &entry{instance: inst}
}

// Remove удаляет сессию пользователя, если она есть.
func (s *Store) Remove(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Active сообщает, есть ли у пользователя активный экзамен.
func (s *Store) Active(userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sessions[userID]
	return ok && !e.done
}

// Do выполняет fn над экзаменом пользователя под мьютексом его сессии.
// Если fn возвращает remove=true, сессия завершается и удаляется из карты
// до снятия мьютекса, так что опоздавшее действие того же пользователя
// получит exam.ErrNoActiveSession, а не завершенный экзамен.
func (s *Store) Do(userID int64, fn func(inst *exam.Instance) (remove bool, err error)) error {
	s.mu.RLock()
	e, ok := s.sessions[userID]
	s.mu.RUnlock()
	if !ok {
		return exam.ErrNoActiveSession
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.done {
		return exam.ErrNoActiveSession
	}

	remove, err := fn(e.instance)
	if remove {
		e.done = true
		s.mu.Lock()
		if s.sessions[userID] == e {
			delete(s.sessions, userID)
		}
		s.mu.Unlock()
	}
	return err
}
