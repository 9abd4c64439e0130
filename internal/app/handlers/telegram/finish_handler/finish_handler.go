package finish_handler

import (
	"errors"
	"fmt"

	"gopkg.in/telebot.v4"

	"github.com/runkwell/telegram-quiz-bot/internal/app/handlers/telegram/exam_report"
	"github.com/runkwell/telegram-quiz-bot/internal/domain/exam"
	examService "github.com/runkwell/telegram-quiz-bot/internal/domain/exam/service"
	"github.com/runkwell/telegram-quiz-bot/messages"
)

// FinishHandler обрабатывает команду /finish_quiz: досрочное завершение
// экзамена с подсчетом по текущим ответам.
type FinishHandler struct {
	examService *examService.ExamService
}

// NewFinishHandler возвращает новый экземпляр обработчика.
func NewFinishHandler(examService *examService.ExamService) *FinishHandler {
	return &FinishHandler{examService: examService}
}

// Handle завершает экзамен и отправляет отчет.
func (h *FinishHandler) Handle(c telebot.Context) error {
	summary, err := h.examService.Finish(c.Sender().ID)
	if errors.Is(err, exam.ErrNoActiveSession) {
		return c.Send(messages.NoActiveExam)
	}
	if err != nil {
		return fmt.Errorf("failed to finish exam: %w", err)
	}

	return exam_report.Send(c, summary)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc.
func (h *FinishHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
