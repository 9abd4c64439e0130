package exam

import (
	"math/rand"

	"github.com/runkwell/telegram-quiz-bot/internal/domain/model"
)

// Assemble собирает новый экзамен из банка: равномерная случайная выборка
// count различных вопросов без повторов, порядок вопросов — порядок выборки,
// а не порядок банка. Каждый вызов независим и дает свежую выборку.
// Если count больше размера банка (или банк пуст), возвращается
// ErrInsufficientPool и никакие состояния не изменяются.
func Assemble(bank []model.Question, count int) (*Instance, error) {
	if count <= 0 || count > len(bank) {
		return nil, ErrInsufficientPool
	}

	indices := make([]int, len(bank))
	for i := range indices {
		indices[i] = i
	}
	rand.Shuffle(len(indices), func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})

	items := make([]model.Question, 0, count)
	for _, idx := range indices[:count] {
		items = append(items, snapshotQuestion(bank[idx]))
	}

	return &Instance{
		Items:     items,
		Cursor:    0,
		Responses: make(map[int]Response),
	}, nil
}

// snapshotQuestion делает независимую копию вопроса, чтобы последующие
// изменения банка не затрагивали уже собранный экзамен.
func snapshotQuestion(q model.Question) model.Question {
	cp := q

	cp.Options = append([]string(nil), q.Options...)
	if q.Images != nil {
		cp.Images = append([]model.ImageRef(nil), q.Images...)
	}
	if q.Key.Letters != nil {
		letters := make(map[string]struct{}, len(q.Key.Letters))
		for l := range q.Key.Letters {
			letters[l] = struct{}{}
		}
		cp.Key.Letters = letters
	}

	return cp
}
