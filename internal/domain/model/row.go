package model

// QuestionRow — сырая строка таблицы questions до разбора картинок и ключа.
// Колонки option_a..option_g лежат в Options по порядку букв.
type QuestionRow struct {
	ID             int
	QuestionText   string
	ImageURL       string
	Options        [MaxOptions]string
	NumOptions     int
	CorrectAnswers string
}

// QuestionFromRow строит снимок вопроса из строки банка: собирает непрерывный
// префикс заполненных вариантов, разбирает ссылки на картинки и ключ ответов.
// Целостность данных банка (ключ внутри диапазона букв) обеспечивается на этапе
// импорта и здесь не перепроверяется.
func QuestionFromRow(row QuestionRow) Question {
	options := make([]string, 0, MaxOptions)
	for _, opt := range row.Options {
		if opt == "" {
			break
		}
		options = append(options, opt)
	}
	if row.NumOptions > 0 && row.NumOptions < len(options) {
		options = options[:row.NumOptions]
	}

	return Question{
		ID:      row.ID,
		Text:    row.QuestionText,
		Images:  ParseImageRefs(row.ImageURL, row.ID),
		Options: options,
		Key:     ParseAnswerKey(row.CorrectAnswers),
	}
}
