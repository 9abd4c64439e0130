package confirm_handler

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/telebot.v4"

	"github.com/runkwell/telegram-quiz-bot/internal/domain/exam"
	examService "github.com/runkwell/telegram-quiz-bot/internal/domain/exam/service"
	"github.com/runkwell/telegram-quiz-bot/messages"
)

// ConfirmHandler обрабатывает callback "confirm_<позиция>": немедленная
// проверка текущего вопроса без изменения курсора, ответов и сессии.
// Пользователь может нажимать проверку сколько угодно раз.
type ConfirmHandler struct {
	examService *examService.ExamService
}

// NewConfirmHandler возвращает новый экземпляр обработчика.
func NewConfirmHandler(examService *examService.ExamService) *ConfirmHandler {
	return &ConfirmHandler{examService: examService}
}

// Handle отвечает всплывающим вердиктом на callback.
func (h *ConfirmHandler) Handle(c telebot.Context) error {
	verdict, err := h.examService.Confirm(c.Sender().ID)
	if errors.Is(err, exam.ErrNoActiveSession) {
		return c.Respond(&telebot.CallbackResponse{Text: messages.NoActiveExam})
	}
	if err != nil {
		return fmt.Errorf("failed to confirm answer: %w", err)
	}

	return c.Respond(&telebot.CallbackResponse{Text: verdictText(verdict)})
}

// verdictText формирует текст вердикта: для неверного ответа показываются
// правильные буквы (и текст варианта для вопроса с одним ответом).
func verdictText(v exam.Verdict) string {
	if v.Correct {
		if v.Multiple {
			return messages.ConfirmCorrectAll
		}
		return messages.ConfirmCorrect
	}
	if v.Multiple {
		return fmt.Sprintf(messages.ConfirmWrongMultiFmt, strings.Join(v.CorrectLetters, ", "))
	}
	letter := v.Question.Key.Letter
	return fmt.Sprintf(messages.ConfirmWrongSingleFmt, letter, v.Question.OptionByLetter(letter))
}
