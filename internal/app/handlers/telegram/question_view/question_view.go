// Package question_view — единственный путь отрисовки текущего вопроса
// экзамена. И старт экзамена, и любой переход или выбор ответа проходят
// через него: текст, клавиатура с отметками и картинки всегда строятся
// заново из снимка exam.View.
package question_view

import (
	"fmt"
	"strings"

	"gopkg.in/telebot.v4"

	"github.com/runkwell/telegram-quiz-bot/internal/domain/exam"
	"github.com/runkwell/telegram-quiz-bot/messages"
)

// Text формирует текст сообщения с вопросом: номер, текст и подсказка
// о типе выбора.
func Text(v exam.View) string {
	hint := messages.SingleSelectHint
	if v.Multiple {
		hint = messages.MultiSelectHint
	}
	return fmt.Sprintf(messages.QuestionHeaderFmt, v.Position+1, v.Total, v.Question.Text, hint)
}

// Markup строит инлайн-клавиатуру вопроса: по кнопке на каждую букву
// (список букв всегда восстанавливается из количества вариантов), затем
// кнопки навигации и проверки. Отмеченные буквы получают галочку.
func Markup(v exam.View) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}

	rows := make([]telebot.Row, 0, v.Question.OptionCount()+3)
	for i, letter := range v.Question.Letters() {
		label := fmt.Sprintf("%s: %s", letter, v.Question.Options[i])
		if v.Marked[letter] {
			label += " ✅"
		}
		btn := markup.Data(label, fmt.Sprintf("ans_%d_%s", v.Position, letter))
		rows = append(rows, markup.Row(btn))
	}

	rows = append(rows,
		markup.Row(markup.Data(messages.NextButton, fmt.Sprintf("next_%d", v.Position))),
		markup.Row(markup.Data(messages.BackButton, fmt.Sprintf("back_%d", v.Position))),
		markup.Row(markup.Data(messages.ConfirmButton, fmt.Sprintf("confirm_%d", v.Position))),
	)
	markup.Inline(rows...)

	return markup
}

// Send отправляет вопрос новым сообщением и доставляет его картинки.
func Send(c telebot.Context, v exam.View) error {
	if err := c.Send(Text(v), Markup(v)); err != nil {
		return fmt.Errorf("failed to send question: %w", err)
	}
	return deliverImages(c, v)
}

// Edit перерисовывает вопрос в сообщении, из которого пришел callback,
// и доставляет картинки нового вопроса.
func Edit(c telebot.Context, v exam.View) error {
	if err := c.Edit(Text(v), Markup(v)); err != nil {
		return fmt.Errorf("failed to edit question: %w", err)
	}
	return deliverImages(c, v)
}

// Refresh перерисовывает вопрос без повторной доставки картинок —
// используется после переключения буквы, когда меняется только клавиатура.
func Refresh(c telebot.Context, v exam.View) error {
	if err := c.Edit(Text(v), Markup(v)); err != nil {
		return fmt.Errorf("failed to refresh question: %w", err)
	}
	return nil
}

// deliverImages отправляет картинки текущего вопроса: сначала общие,
// затем привязанные к буквам, с подписью соответствующей буквы.
func deliverImages(c telebot.Context, v exam.View) error {
	var general, lettered []int
	for i, img := range v.Question.Images {
		if img.Letter == "" {
			general = append(general, i)
		} else {
			lettered = append(lettered, i)
		}
	}

	for _, i := range general {
		photo := &telebot.Photo{File: telebot.FromURL(v.Question.Images[i].URL)}
		if err := c.Send(photo); err != nil {
			return fmt.Errorf("failed to send question image: %w", err)
		}
	}
	for _, i := range lettered {
		img := v.Question.Images[i]
		photo := &telebot.Photo{
			File:    telebot.FromURL(img.URL),
			Caption: fmt.Sprintf("Вариант %s", strings.ToUpper(img.Letter)),
		}
		if err := c.Send(photo); err != nil {
			return fmt.Errorf("failed to send option image: %w", err)
		}
	}
	return nil
}
