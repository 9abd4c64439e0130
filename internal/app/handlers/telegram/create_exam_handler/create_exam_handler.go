package create_exam_handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/telebot.v4"

	"github.com/runkwell/telegram-quiz-bot/internal/app/handlers/telegram/question_view"
	"github.com/runkwell/telegram-quiz-bot/internal/domain/exam"
	examService "github.com/runkwell/telegram-quiz-bot/internal/domain/exam/service"
	"github.com/runkwell/telegram-quiz-bot/messages"
)

// CreateExamHandler обрабатывает запрос на создание экзамена: командой
// /create_exam [количество] или кнопкой меню (с количеством по умолчанию).
type CreateExamHandler struct {
	examService  *examService.ExamService
	defaultCount int
}

// NewCreateExamHandler возвращает новый экземпляр обработчика.
func NewCreateExamHandler(examService *examService.ExamService, defaultCount int) *CreateExamHandler {
	return &CreateExamHandler{
		examService:  examService,
		defaultCount: defaultCount,
	}
}

// Handle собирает экзамен и показывает первый вопрос. Незавершенный прежний
// экзамен пользователя замещается новым.
func (h *CreateExamHandler) Handle(c telebot.Context) error {
	userID := c.Sender().ID

	// Количество берется из аргументов только для команды: у callback
	// кнопки меню Args() возвращает данные callback, а не аргументы.
	count := h.defaultCount
	if c.Callback() == nil {
		if args := c.Args(); len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				return c.Send(messages.InvalidCount)
			}
			count = n
		}
	}

	view, err := h.examService.Start(context.Background(), userID, count)
	if err != nil {
		if errors.Is(err, exam.ErrInsufficientPool) {
			return c.Send(fmt.Sprintf(messages.InsufficientPoolFmt, count))
		}
		return fmt.Errorf("failed to start exam: %w", err)
	}

	return question_view.Send(c, view)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc.
func (h *CreateExamHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
