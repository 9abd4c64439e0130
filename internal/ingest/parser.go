package ingest

import (
	"regexp"
	"strings"

	"github.com/runkwell/telegram-quiz-bot/internal/domain/model"
)

// Формат исходного документа: вопросы разделены строками из дефисов,
// внутри блока — заголовок вопроса, необязательная картинка в markdown-разметке
// и список вариантов в виде чекбоксов "- [x] текст" / "- [ ] текст".

var (
	blockSeparator = regexp.MustCompile(`(?m)^-{20,}\s*$`)
	imagePattern   = regexp.MustCompile(`!\[[^\]]*\]\(images/([^)\s]+)\)`)
	headingPattern = regexp.MustCompile(`(?s)^\s*(\d+\.\s.+?)(?:\n\n|\n-|$)`)
	optionPattern  = regexp.MustCompile(`(?m)^-\s+\[([xX ])\]\s+(.+)$`)
)

// минимальный размер блока: всё короче — обрывки разметки, не вопросы
const minBlockLen = 100

// ParseDocument разбирает markdown-документ с вопросами в строки банка.
// Блоки без заголовка или менее чем с двумя вариантами пропускаются.
func ParseDocument(content, imageBase string) []model.QuestionRow {
	var rows []model.QuestionRow
	for _, block := range blockSeparator.Split(content, -1) {
		if len(strings.TrimSpace(block)) < minBlockLen {
			continue
		}
		row, ok := parseBlock(block, imageBase)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// parseBlock извлекает из блока текст вопроса, картинку и варианты.
func parseBlock(block, imageBase string) (model.QuestionRow, bool) {
	var row model.QuestionRow

	if m := imagePattern.FindStringSubmatch(block); m != nil {
		row.ImageURL = imageBase + "/images/" + m[1]
	}
	block = imagePattern.ReplaceAllString(block, "")

	heading := headingPattern.FindStringSubmatch(block)
	if heading == nil {
		return row, false
	}
	row.QuestionText = strings.TrimSpace(heading[1])

	options := optionPattern.FindAllStringSubmatch(block, -1)
	if len(options) < 2 || len(options) > model.MaxOptions {
		return row, false
	}

	var correct []string
	for i, opt := range options {
		row.Options[i] = strings.TrimSpace(opt[2])
		if opt[1] == "x" || opt[1] == "X" {
			correct = append(correct, model.OptionLetter(i))
		}
	}
	row.NumOptions = len(options)
	row.CorrectAnswers = strings.Join(correct, ",")

	return row, true
}
