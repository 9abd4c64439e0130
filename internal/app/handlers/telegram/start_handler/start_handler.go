package start_handler

import (
	"gopkg.in/telebot.v4"

	"github.com/runkwell/telegram-quiz-bot/messages"
)

// StartHandler обрабатывает команду /start: приветствие и меню действий.
type StartHandler struct{}

// NewStartHandler возвращает новый экземпляр обработчика.
func NewStartHandler() *StartHandler {
	return &StartHandler{}
}

// Handle отправляет меню с кнопками «Добавить вопрос» и «Создать экзамен».
func (h *StartHandler) Handle(c telebot.Context) error {
	markup := &telebot.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data(messages.AddQuestionButton, "add_q")),
		markup.Row(markup.Data(messages.CreateExamButton, "create_exam")),
	)
	return c.Send(messages.WelcomeText, markup)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc.
func (h *StartHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
