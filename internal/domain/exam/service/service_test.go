package service

import (
	"context"
	"errors"
	"testing"

	"github.com/runkwell/telegram-quiz-bot/internal/domain/exam"
	"github.com/runkwell/telegram-quiz-bot/internal/domain/exam/session"
	"github.com/runkwell/telegram-quiz-bot/internal/domain/model"
)

// fakeProvider отдает фиксированный банк вопросов без обращения к базе.
type fakeProvider struct {
	bank []model.Question
	err  error
}

func (p *fakeProvider) FetchAll(_ context.Context) ([]model.Question, error) {
	return p.bank, p.err
}

// newTestService собирает сервис с банком из n вопросов: нечетные ID — один
// правильный ответ "A", четные — множественный "A,B".
func newTestService(n int) *ExamService {
	bank := make([]model.Question, 0, n)
	for i := 1; i <= n; i++ {
		key := "A"
		if i%2 == 0 {
			key = "A,B"
		}
		bank = append(bank, model.Question{
			ID:      i,
			Text:    "Вопрос",
			Options: []string{"Да", "Нет", "Не уверен"},
			Key:     model.ParseAnswerKey(key),
		})
	}
	return NewExamService(&fakeProvider{bank: bank}, session.NewStore())
}

// TestStart_InsufficientPool проверяет отказ при нехватке вопросов: сессия
// не создается, последующие действия получают ErrNoActiveSession.
func TestStart_InsufficientPool(t *testing.T) {
	svc := newTestService(3)

	_, err := svc.Start(context.Background(), 1, 10)
	if !errors.Is(err, exam.ErrInsufficientPool) {
		t.Fatalf("Ожидалась ошибка ErrInsufficientPool, получено %v", err)
	}

	_, err = svc.Select(1, "A")
	if !errors.Is(err, exam.ErrNoActiveSession) {
		t.Errorf("Сессия не должна была создаться, получено %v", err)
	}
}

// TestSelect_SingleToggle проверяет поведение одиночного выбора: повторный
// выбор той же буквы снимает отметку, выбор другой буквы замещает предыдущую.
func TestSelect_SingleToggle(t *testing.T) {
	svc := newTestService(1) // один вопрос с ключом "A"

	if _, err := svc.Start(context.Background(), 1, 1); err != nil {
		t.Fatalf("Start вернул ошибку: %v", err)
	}

	res, err := svc.Select(1, "A")
	if err != nil {
		t.Fatalf("Select вернул ошибку: %v", err)
	}
	if !res.Selected || !res.View.Marked["A"] {
		t.Errorf("Буква A должна быть выбрана, получено %+v", res)
	}

	// Повторный выбор той же буквы снимает отметку.
	res, err = svc.Select(1, "A")
	if err != nil {
		t.Fatalf("Select вернул ошибку: %v", err)
	}
	if res.Selected || res.View.Marked["A"] {
		t.Errorf("Повторный выбор должен снять отметку, получено %+v", res)
	}

	// Выбор другой буквы замещает предыдущую.
	if _, err := svc.Select(1, "A"); err != nil {
		t.Fatalf("Select вернул ошибку: %v", err)
	}
	res, err = svc.Select(1, "B")
	if err != nil {
		t.Fatalf("Select вернул ошибку: %v", err)
	}
	if !res.View.Marked["B"] || res.View.Marked["A"] {
		t.Errorf("Выбор B должен заместить A, получено %v", res.View.Marked)
	}
}

// TestSelect_MultiToggle проверяет множественный выбор: буквы копятся в
// множестве, пара переключений одной буквы возвращает исходное состояние.
func TestSelect_MultiToggle(t *testing.T) {
	bank := []model.Question{{
		ID:      1,
		Options: []string{"а", "б", "в"},
		Key:     model.ParseAnswerKey("A,C"),
	}}
	svc := NewExamService(&fakeProvider{bank: bank}, session.NewStore())

	if _, err := svc.Start(context.Background(), 1, 1); err != nil {
		t.Fatalf("Start вернул ошибку: %v", err)
	}

	for _, l := range []string{"A", "C"} {
		if _, err := svc.Select(1, l); err != nil {
			t.Fatalf("Select(%s) вернул ошибку: %v", l, err)
		}
	}

	res, err := svc.Select(1, "B")
	if err != nil {
		t.Fatalf("Select вернул ошибку: %v", err)
	}
	if !res.View.Marked["A"] || !res.View.Marked["B"] || !res.View.Marked["C"] {
		t.Errorf("Ожидались отметки A, B, C, получено %v", res.View.Marked)
	}

	// Пара переключений B возвращает состояние {A, C}.
	res, err = svc.Select(1, "B")
	if err != nil {
		t.Fatalf("Select вернул ошибку: %v", err)
	}
	if res.Selected || res.View.Marked["B"] {
		t.Errorf("Повторное переключение должно убрать B, получено %v", res.View.Marked)
	}
}

// TestSelect_InvalidLetter проверяет, что буква вне диапазона вариантов
// отклоняется и не меняет состояние.
func TestSelect_InvalidLetter(t *testing.T) {
	svc := newTestService(1) // у вопроса три варианта: A, B, C

	if _, err := svc.Start(context.Background(), 1, 1); err != nil {
		t.Fatalf("Start вернул ошибку: %v", err)
	}

	_, err := svc.Select(1, "D")
	if !errors.Is(err, exam.ErrInvalidSelect) {
		t.Fatalf("Ожидалась ошибка ErrInvalidSelect, получено %v", err)
	}

	view, err := svc.CurrentView(1)
	if err != nil {
		t.Fatalf("CurrentView вернул ошибку: %v", err)
	}
	if len(view.Marked) != 0 {
		t.Errorf("Неверная буква не должна менять состояние, получено %v", view.Marked)
	}
}

// TestNavigation проверяет перемещение курсора: назад на первом вопросе —
// ничего не происходит, вперед — курсор сдвигается с сохранением ответов.
func TestNavigation(t *testing.T) {
	svc := newTestService(3)

	if _, err := svc.Start(context.Background(), 1, 3); err != nil {
		t.Fatalf("Start вернул ошибку: %v", err)
	}

	// Назад на первом вопросе — ничего не меняется.
	back, err := svc.Retreat(1)
	if err != nil {
		t.Fatalf("Retreat вернул ошибку: %v", err)
	}
	if back.Moved {
		t.Error("Назад с первого вопроса не должно двигать курсор")
	}

	if _, err := svc.Select(1, "B"); err != nil {
		t.Fatalf("Select вернул ошибку: %v", err)
	}

	fwd, err := svc.Advance(1)
	if err != nil {
		t.Fatalf("Advance вернул ошибку: %v", err)
	}
	if fwd.Finished || fwd.View.Position != 1 {
		t.Errorf("Ожидалась позиция 1, получено %+v", fwd)
	}

	// Возврат назад показывает сохраненный ответ.
	back, err = svc.Retreat(1)
	if err != nil {
		t.Fatalf("Retreat вернул ошибку: %v", err)
	}
	if !back.Moved || back.View.Position != 0 {
		t.Errorf("Ожидался возврат на позицию 0, получено %+v", back)
	}
	if !back.View.Marked["B"] {
		t.Errorf("Ответ на первый вопрос должен сохраниться, получено %v", back.View.Marked)
	}
}

// TestAdvance_FinishesOnLast проверяет, что переход вперед с последнего
// вопроса завершает экзамен и удаляет сессию.
func TestAdvance_FinishesOnLast(t *testing.T) {
	svc := newTestService(2)

	if _, err := svc.Start(context.Background(), 1, 2); err != nil {
		t.Fatalf("Start вернул ошибку: %v", err)
	}

	if _, err := svc.Advance(1); err != nil {
		t.Fatalf("Advance вернул ошибку: %v", err)
	}

	res, err := svc.Advance(1)
	if err != nil {
		t.Fatalf("Advance вернул ошибку: %v", err)
	}
	if !res.Finished {
		t.Fatal("Переход с последнего вопроса должен завершить экзамен")
	}
	if res.Summary.Report.Total != 2 {
		t.Errorf("Ожидался итог по 2 вопросам, получено %+v", res.Summary.Report)
	}

	// Любое действие после завершения — нет активной сессии.
	if _, err := svc.Advance(1); !errors.Is(err, exam.ErrNoActiveSession) {
		t.Errorf("Ожидалась ошибка ErrNoActiveSession, получено %v", err)
	}
	if _, err := svc.Select(1, "A"); !errors.Is(err, exam.ErrNoActiveSession) {
		t.Errorf("Ожидалась ошибка ErrNoActiveSession, получено %v", err)
	}
}

// TestFinish_Early проверяет досрочное завершение: итог считается по текущим
// ответам, сессия удаляется.
func TestFinish_Early(t *testing.T) {
	svc := newTestService(3)

	if _, err := svc.Start(context.Background(), 1, 3); err != nil {
		t.Fatalf("Start вернул ошибку: %v", err)
	}

	summary, err := svc.Finish(1)
	if err != nil {
		t.Fatalf("Finish вернул ошибку: %v", err)
	}
	if summary.Report.Total != 3 || summary.Report.Correct != 0 {
		t.Errorf("Ожидался итог 0/3, получено %+v", summary.Report)
	}

	if _, err := svc.Finish(1); !errors.Is(err, exam.ErrNoActiveSession) {
		t.Errorf("Повторное завершение должно вернуть ErrNoActiveSession, получено %v", err)
	}
}

// TestStart_ReplacesSession проверяет, что новый экзамен замещает
// незавершенный предыдущий.
func TestStart_ReplacesSession(t *testing.T) {
	svc := newTestService(3)

	if _, err := svc.Start(context.Background(), 1, 3); err != nil {
		t.Fatalf("Start вернул ошибку: %v", err)
	}
	if _, err := svc.Select(1, "B"); err != nil {
		t.Fatalf("Select вернул ошибку: %v", err)
	}

	view, err := svc.Start(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("Повторный Start вернул ошибку: %v", err)
	}
	if view.Position != 0 || view.Total != 2 || len(view.Marked) != 0 {
		t.Errorf("Новый экзамен должен начаться с чистого состояния, получено %+v", view)
	}
}
