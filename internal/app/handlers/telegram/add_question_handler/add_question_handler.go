package add_question_handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/telebot.v4"

	"github.com/runkwell/telegram-quiz-bot/internal/domain/model"
	questionsService "github.com/runkwell/telegram-quiz-bot/internal/domain/questions/service"
	"github.com/runkwell/telegram-quiz-bot/messages"
)

// step — шаг мастера добавления вопроса.
type step int

const (
	stepText step = iota
	stepImage
	stepNumOptions
	stepOptions
	stepCorrect
)

// draft — черновик вопроса одного пользователя. Текущая буква варианта
// определяется количеством уже собранных вариантов.
type draft struct {
	step       step
	text       string
	imageURL   string
	numOptions int
	options    []string
}

// AddQuestionHandler ведет пользователя по линейной форме добавления вопроса:
// текст → картинка (или /skip) → количество вариантов → варианты по буквам →
// правильные ответы. Черновики живут в памяти до завершения или /cancel.
type AddQuestionHandler struct {
	questionService *questionsService.QuestionService

	mu     sync.Mutex
	drafts map[int64]*draft
}

// NewAddQuestionHandler возвращает новый экземпляр обработчика.
func NewAddQuestionHandler(questionService *questionsService.QuestionService) *AddQuestionHandler {
	return &AddQuestionHandler{
		questionService: questionService,
		drafts:          make(map[int64]*draft),
	}
}

// HandleStart начинает мастер по команде /add_question.
func (h *AddQuestionHandler) HandleStart(c telebot.Context) error {
	h.mu.Lock()
	h.drafts[c.Sender().ID] = &draft{step: stepText}
	h.mu.Unlock()
	return c.Send(messages.WizardAskText)
}

// HandleCancel прерывает мастер по команде /cancel.
func (h *AddQuestionHandler) HandleCancel(c telebot.Context) error {
	h.mu.Lock()
	_, active := h.drafts[c.Sender().ID]
	delete(h.drafts, c.Sender().ID)
	h.mu.Unlock()
	if !active {
		return nil
	}
	return c.Send(messages.WizardCancelled)
}

// Active сообщает, находится ли пользователь в мастере.
func (h *AddQuestionHandler) Active(userID int64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.drafts[userID]
	return ok
}

// HandleText обрабатывает очередной ответ пользователя на текущий шаг мастера.
func (h *AddQuestionHandler) HandleText(c telebot.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	h.mu.Lock()
	d, ok := h.drafts[userID]
	if !ok {
		h.mu.Unlock()
		return nil
	}

	switch d.step {
	case stepText:
		d.text = text
		d.step = stepImage
		h.mu.Unlock()
		return c.Send(messages.WizardAskImage)

	case stepImage:
		if text != "/skip" {
			d.imageURL = text
		}
		d.step = stepNumOptions
		h.mu.Unlock()
		return c.Send(messages.WizardAskNumOptions)

	case stepNumOptions:
		n, err := strconv.Atoi(text)
		if err != nil || n < 1 || n > model.MaxOptions {
			h.mu.Unlock()
			return c.Send(messages.WizardBadNumOptions)
		}
		d.numOptions = n
		d.step = stepOptions
		h.mu.Unlock()
		return c.Send(fmt.Sprintf(messages.WizardAskOptionFmt, model.OptionLetter(0)))

	case stepOptions:
		d.options = append(d.options, text)
		if len(d.options) < d.numOptions {
			next := model.OptionLetter(len(d.options))
			h.mu.Unlock()
			return c.Send(fmt.Sprintf(messages.WizardAskOptionFmt, next))
		}
		d.step = stepCorrect
		h.mu.Unlock()
		return c.Send(messages.WizardAskCorrect)

	case stepCorrect:
		normalized := strings.ToUpper(strings.ReplaceAll(text, " ", ""))
		if !lettersInRange(normalized, d.numOptions) {
			lastLetter := model.OptionLetter(d.numOptions - 1)
			h.mu.Unlock()
			return c.Send(fmt.Sprintf(messages.WizardBadCorrectFmt, lastLetter))
		}
		row := buildRow(d, normalized)
		delete(h.drafts, userID)
		h.mu.Unlock()

		if _, err := h.questionService.Insert(context.Background(), row); err != nil {
			return fmt.Errorf("failed to save question: %w", err)
		}
		return c.Send(messages.WizardDone)
	}

	h.mu.Unlock()
	return nil
}

// lettersInRange проверяет, что ключ непуст и все буквы лежат в диапазоне
// заполненных вариантов. Целостность банка обеспечивается именно здесь,
// на этапе ввода, а не при проверке ответов.
func lettersInRange(normalized string, numOptions int) bool {
	if normalized == "" {
		return false
	}
	for _, part := range strings.Split(normalized, ",") {
		if part == "" {
			continue
		}
		idx := model.LetterIndex(part)
		if idx < 0 || idx >= numOptions {
			return false
		}
	}
	return true
}

// buildRow собирает строку банка из завершенного черновика.
func buildRow(d *draft, correct string) model.QuestionRow {
	var row model.QuestionRow
	row.QuestionText = d.text
	row.ImageURL = d.imageURL
	row.NumOptions = d.numOptions
	row.CorrectAnswers = correct
	copy(row.Options[:], d.options)
	return row
}
