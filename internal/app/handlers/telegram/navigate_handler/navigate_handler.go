package navigate_handler

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/telebot.v4"

	"github.com/runkwell/telegram-quiz-bot/internal/app/handlers/telegram/exam_report"
	"github.com/runkwell/telegram-quiz-bot/internal/app/handlers/telegram/question_view"
	"github.com/runkwell/telegram-quiz-bot/internal/domain/exam"
	examService "github.com/runkwell/telegram-quiz-bot/internal/domain/exam/service"
	"github.com/runkwell/telegram-quiz-bot/messages"
)

// NavigateHandler обрабатывает переходы по вопросам: callback "next_<позиция>"
// и "back_<позиция>". Переход вперед с последнего вопроса завершает экзамен.
type NavigateHandler struct {
	examService *examService.ExamService
}

// NewNavigateHandler возвращает новый экземпляр обработчика.
func NewNavigateHandler(examService *examService.ExamService) *NavigateHandler {
	return &NavigateHandler{examService: examService}
}

// Handle принимает уже очищенные данные callback.
func (h *NavigateHandler) Handle(c telebot.Context, data string) error {
	userID := c.Sender().ID

	switch {
	case strings.HasPrefix(data, "next_"):
		res, err := h.examService.Advance(userID)
		if errors.Is(err, exam.ErrNoActiveSession) {
			return c.Respond(&telebot.CallbackResponse{Text: messages.NoActiveExam})
		}
		if err != nil {
			return fmt.Errorf("failed to advance: %w", err)
		}
		if err := c.Respond(); err != nil {
			return err
		}
		if res.Finished {
			// Сессия уже удалена; любое следующее действие пользователя
			// получит приглашение создать новый экзамен.
			return exam_report.Send(c, res.Summary)
		}
		return question_view.Edit(c, res.View)

	case strings.HasPrefix(data, "back_"):
		res, err := h.examService.Retreat(userID)
		if errors.Is(err, exam.ErrNoActiveSession) {
			return c.Respond(&telebot.CallbackResponse{Text: messages.NoActiveExam})
		}
		if err != nil {
			return fmt.Errorf("failed to retreat: %w", err)
		}
		if !res.Moved {
			// На первом вопросе переход назад ничего не меняет.
			return c.Respond(&telebot.CallbackResponse{Text: messages.FirstQuestionNotice})
		}
		if err := c.Respond(); err != nil {
			return err
		}
		return question_view.Edit(c, res.View)
	}

	return nil
}
