package session

import (
	"errors"
	"sync"
	"testing"

	"github.com/runkwell/telegram-quiz-bot/internal/domain/exam"
	"github.com/runkwell/telegram-quiz-bot/internal/domain/model"
)

// newTestInstance создает экзамен из одного вопроса для проверок хранилища.
func newTestInstance() *exam.Instance {
	return &exam.Instance{
		Items: []model.Question{{
			ID:      1,
			Options: []string{"а", "б"},
			Key:     model.ParseAnswerKey("A"),
		}},
		Responses: make(map[int]exam.Response),
	}
}

// TestStore_DoWithoutSession проверяет, что действие без активной сессии
// возвращает ErrNoActiveSession.
func TestStore_DoWithoutSession(t *testing.T) {
	store := NewStore()

	err := store.Do(1, func(_ *exam.Instance) (bool, error) {
		t.Fatal("Функция не должна вызываться без сессии")
		return false, nil
	})
	if !errors.Is(err, exam.ErrNoActiveSession) {
		t.Errorf("Ожидалась ошибка ErrNoActiveSession, получено %v", err)
	}
}

// TestStore_StartReplaces проверяет, что повторный Start замещает сессию.
func TestStore_StartReplaces(t *testing.T) {
	store := NewStore()

	first := newTestInstance()
	second := newTestInstance()
	second.Items[0].ID = 2

	store.Start(1, first)
	store.Start(1, second)

	err := store.Do(1, func(inst *exam.Instance) (bool, error) {
		if inst.Items[0].ID != 2 {
			t.Errorf("Ожидалась замещенная сессия, получен вопрос %d", inst.Items[0].ID)
		}
		return false, nil
	})
	if err != nil {
		t.Fatalf("Do вернул ошибку: %v", err)
	}
}

// TestStore_RemoveOnDone проверяет, что remove=true завершает сессию:
// последующие действия получают ErrNoActiveSession, Active отвечает false.
func TestStore_RemoveOnDone(t *testing.T) {
	store := NewStore()
	store.Start(1, newTestInstance())

	if !store.Active(1) {
		t.Fatal("Сессия должна быть активна после Start")
	}

	err := store.Do(1, func(_ *exam.Instance) (bool, error) {
		return true, nil
	})
	if err != nil {
		t.Fatalf("Do вернул ошибку: %v", err)
	}

	if store.Active(1) {
		t.Error("Сессия должна быть неактивна после завершения")
	}
	err = store.Do(1, func(_ *exam.Instance) (bool, error) { return false, nil })
	if !errors.Is(err, exam.ErrNoActiveSession) {
		t.Errorf("Ожидалась ошибка ErrNoActiveSession, получено %v", err)
	}
}

// TestStore_IsolatedUsers проверяет, что сессии пользователей независимы.
func TestStore_IsolatedUsers(t *testing.T) {
	store := NewStore()
	store.Start(1, newTestInstance())
	store.Start(2, newTestInstance())

	store.Remove(1)

	if store.Active(1) {
		t.Error("Сессия пользователя 1 должна быть удалена")
	}
	if !store.Active(2) {
		t.Error("Сессия пользователя 2 не должна пострадать")
	}
}

// TestStore_SerializedActions проверяет, что действия одного пользователя
// сериализуются: счетчик под мьютексом сессии не теряет инкрементов.
func TestStore_SerializedActions(t *testing.T) {
	store := NewStore()
	store.Start(1, newTestInstance())

	const workers = 8
	const perWorker = 200

	var wg sync.WaitGroup
	counter := 0
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_ = store.Do(1, func(_ *exam.Instance) (bool, error) {
					counter++
					return false, nil
				})
			}
		}()
	}
	wg.Wait()

	if counter != workers*perWorker {
		t.Errorf("Ожидалось %d инкрементов, получено %d", workers*perWorker, counter)
	}
}

// TestStore_ConcurrentUsers проверяет одновременную работу разных
// пользователей без гонок на общей карте.
func TestStore_ConcurrentUsers(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for u := int64(1); u <= 16; u++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			store.Start(userID, newTestInstance())
			for i := 0; i < 100; i++ {
				_ = store.Do(userID, func(inst *exam.Instance) (bool, error) {
					inst.Toggle("A")
					return false, nil
				})
			}
			_ = store.Do(userID, func(_ *exam.Instance) (bool, error) {
				return true, nil
			})
		}(u)
	}
	wg.Wait()

	for u := int64(1); u <= 16; u++ {
		if store.Active(u) {
			t.Errorf("Сессия пользователя %d должна быть завершена", u)
		}
	}
}
