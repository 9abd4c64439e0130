package select_answer_handler

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/telebot.v4"

	"github.com/runkwell/telegram-quiz-bot/internal/app/handlers/telegram/question_view"
	"github.com/runkwell/telegram-quiz-bot/internal/domain/exam"
	examService "github.com/runkwell/telegram-quiz-bot/internal/domain/exam/service"
	"github.com/runkwell/telegram-quiz-bot/messages"
)

// SelectAnswerHandler обрабатывает callback выбора буквы ("ans_<позиция>_<буква>"):
// переключает букву в ответе на текущий вопрос и перерисовывает клавиатуру.
type SelectAnswerHandler struct {
	examService *examService.ExamService
}

// NewSelectAnswerHandler возвращает новый экземпляр обработчика.
func NewSelectAnswerHandler(examService *examService.ExamService) *SelectAnswerHandler {
	return &SelectAnswerHandler{examService: examService}
}

// Handle принимает уже очищенные данные callback.
func (h *SelectAnswerHandler) Handle(c telebot.Context, data string) error {
	userID := c.Sender().ID

	// Формат: ans_<позиция>_<буква>. Позиция в данных не используется:
	// выбор всегда применяется к текущему вопросу сессии.
	parts := strings.Split(data, "_")
	if len(parts) != 3 {
		return fmt.Errorf("invalid callback data: %s", data)
	}
	letter := parts[2]

	res, err := h.examService.Select(userID, letter)
	switch {
	case errors.Is(err, exam.ErrNoActiveSession):
		return c.Respond(&telebot.CallbackResponse{Text: messages.NoActiveExam})
	case errors.Is(err, exam.ErrInvalidSelect):
		// Буква вне диапазона вариантов: состояние не изменилось,
		// пользователю показывается отказ.
		return c.Respond(&telebot.CallbackResponse{
			Text: fmt.Sprintf(messages.InvalidLetterFmt, strings.ToUpper(letter)),
		})
	case err != nil:
		return fmt.Errorf("failed to toggle answer: %w", err)
	}

	ack := fmt.Sprintf(messages.SelectedFmt, res.Letter)
	if !res.Selected {
		ack = fmt.Sprintf(messages.DeselectedFmt, res.Letter)
	}
	if err := c.Respond(&telebot.CallbackResponse{Text: ack}); err != nil {
		return err
	}

	return question_view.Refresh(c, res.View)
}
