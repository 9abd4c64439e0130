package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/runkwell/telegram-quiz-bot/internal/domain/exam"
	"github.com/runkwell/telegram-quiz-bot/internal/domain/exam/session"
	"github.com/runkwell/telegram-quiz-bot/internal/domain/model"
)

// QuestionProvider — источник вопросов для сборки экзамена.
type QuestionProvider interface {
	FetchAll(ctx context.Context) ([]model.Question, error)
}

// ExamService управляет жизненным циклом экзамена пользователя: сборкой,
// навигацией по вопросам, ответами и подведением итогов. Все обращения к
// внешнему хранилищу выполняются до входа в критическую секцию сессии.
type ExamService struct {
	questions QuestionProvider
	sessions  *session.Store
}

// NewExamService создает новый экземпляр ExamService.
func NewExamService(questions QuestionProvider, sessions *session.Store) *ExamService {
	return &ExamService{
		questions: questions,
		sessions:  sessions,
	}
}

// Start собирает новый экзамен из count случайных вопросов банка и регистрирует
// сессию пользователя. Прежний незавершенный экзамен замещается. При нехватке
// вопросов возвращается exam.ErrInsufficientPool, сессия не создается.
func (s *ExamService) Start(ctx context.Context, userID int64, count int) (exam.View, error) {
	bank, err := s.questions.FetchAll(ctx)
	if err != nil {
		return exam.View{}, fmt.Errorf("failed to load question bank: %w", err)
	}

	inst, err := exam.Assemble(bank, count)
	if err != nil {
		return exam.View{}, err
	}

	s.sessions.Start(userID, inst)
	return inst.View(), nil
}

// SelectResult — итог переключения буквы на текущем вопросе.
type SelectResult struct {
	Letter   string
	Selected bool // true — буква выбрана, false — выбор снят
	View     exam.View
}

// Select переключает букву в ответе на текущий вопрос. Буква вне диапазона
// вариантов текущего вопроса не меняет состояние и возвращает exam.ErrInvalidSelect.
func (s *ExamService) Select(userID int64, letter string) (SelectResult, error) {
	letter = strings.ToUpper(strings.TrimSpace(letter))

	var res SelectResult
	err := s.sessions.Do(userID, func(inst *exam.Instance) (bool, error) {
		if !inst.Current().HasLetter(letter) {
			return false, exam.ErrInvalidSelect
		}
		res.Letter = letter
		res.Selected = inst.Toggle(letter)
		res.View = inst.View()
		return false, nil
	})
	if err != nil {
		return SelectResult{}, err
	}
	return res, nil
}

// AdvanceResult — итог перехода вперед. Если Finished, экзамен завершен:
// Summary заполнен, сессия удалена, View не используется.
type AdvanceResult struct {
	Finished bool
	View     exam.View
	Summary  exam.Summary
}

// Advance переходит к следующему вопросу. Переход с последнего вопроса
// завершает экзамен без подтверждения: считается отчет и сессия удаляется.
func (s *ExamService) Advance(userID int64) (AdvanceResult, error) {
	var res AdvanceResult
	err := s.sessions.Do(userID, func(inst *exam.Instance) (bool, error) {
		if inst.Cursor < len(inst.Items)-1 {
			inst.Cursor++
			res.View = inst.View()
			return false, nil
		}
		res.Finished = true
		res.Summary = exam.Summarize(inst)
		return true, nil
	})
	if err != nil {
		return AdvanceResult{}, err
	}
	return res, nil
}

// RetreatResult — итог перехода назад. Moved=false означает, что курсор уже
// стоял на первом вопросе и ничего не изменилось.
type RetreatResult struct {
	Moved bool
	View  exam.View
}

// Retreat переходит к предыдущему вопросу; на первом вопросе — ничего не делает.
func (s *ExamService) Retreat(userID int64) (RetreatResult, error) {
	var res RetreatResult
	err := s.sessions.Do(userID, func(inst *exam.Instance) (bool, error) {
		if inst.Cursor > 0 {
			inst.Cursor--
			res.Moved = true
			res.View = inst.View()
		}
		return false, nil
	})
	if err != nil {
		return RetreatResult{}, err
	}
	return res, nil
}

// Confirm возвращает немедленный вердикт по текущему вопросу, не меняя
// ни курсор, ни ответы, ни сессию. Может вызываться многократно.
func (s *ExamService) Confirm(userID int64) (exam.Verdict, error) {
	var verdict exam.Verdict
	err := s.sessions.Do(userID, func(inst *exam.Instance) (bool, error) {
		verdict = exam.ConfirmCurrent(inst)
		return false, nil
	})
	if err != nil {
		return exam.Verdict{}, err
	}
	return verdict, nil
}

// Finish досрочно завершает экзамен по явному запросу пользователя:
// считает итог по текущим ответам и удаляет сессию.
func (s *ExamService) Finish(userID int64) (exam.Summary, error) {
	var summary exam.Summary
	err := s.sessions.Do(userID, func(inst *exam.Instance) (bool, error) {
		summary = exam.Summarize(inst)
		return true, nil
	})
	if err != nil {
		return exam.Summary{}, err
	}
	return summary, nil
}

// CurrentView возвращает снимок текущей позиции экзамена для перерисовки.
func (s *ExamService) CurrentView(userID int64) (exam.View, error) {
	var view exam.View
	err := s.sessions.Do(userID, func(inst *exam.Instance) (bool, error) {
		view = inst.View()
		return false, nil
	})
	if err != nil {
		return exam.View{}, err
	}
	return view, nil
}
