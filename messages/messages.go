// Package messages содержит тексты, которые бот показывает пользователю.
package messages

// Команды и меню.
const (
	WelcomeText       = "Привет! Выберите действие:"
	AddQuestionButton = "Добавить вопрос"
	CreateExamButton  = "Создать экзамен"
	UnknownTextHint   = "Создайте экзамен командой /create_exam или добавьте вопрос через /add_question."
)

// Сессия экзамена.
const (
	NoActiveExam        = "Сначала создайте экзамен командой /create_exam!"
	InsufficientPoolFmt = "В банке недостаточно вопросов для экзамена из %d. Добавьте вопросы или уменьшите размер."
	InvalidCount        = "Количество вопросов должно быть положительным числом. Пример: /create_exam 20"
	FirstQuestionNotice = "Вы на первом вопросе."
	QuestionHeaderFmt   = "Вопрос %d/%d:\n%s\n(Выберите %s)"
	SingleSelectHint    = "один ответ"
	MultiSelectHint     = "все правильные"
	SelectedFmt         = "Выбрано: %s"
	DeselectedFmt       = "Снято: %s"
	InvalidLetterFmt    = "Буквы %s нет среди вариантов этого вопроса."
	NextButton          = "Далее"
	BackButton          = "Назад"
	ConfirmButton       = "Проверить"
)

// Проверка текущего вопроса.
const (
	ConfirmCorrect        = "✅ Верно!"
	ConfirmCorrectAll     = "✅ Все отмечено верно!"
	ConfirmWrongSingleFmt = "❌ Неверно! Правильный ответ %s: %s"
	ConfirmWrongMultiFmt  = "❌ Неверно! Правильные ответы: %s"
)

// Итоги экзамена.
const (
	ReportFmt      = "Результат:\n✅ Верно: %d/%d\n❌ Неверно: %d"
	WrongIDsFmt    = "Номера вопросов с ошибками: %s"
	NoWrongAnswers = "Ошибок нет, отличный результат!"
)

// Мастер добавления вопроса.
const (
	WizardAskText       = "Отправьте текст вопроса:"
	WizardAskImage      = "Отправьте URL картинки (или /skip):"
	WizardAskNumOptions = "Сколько вариантов ответа? (1-7, обычно 4):"
	WizardBadNumOptions = "Нужно число от 1 до 7. Попробуйте еще раз:"
	WizardAskOptionFmt  = "Отправьте вариант %s:"
	WizardAskCorrect    = "Правильный ответ (например: A, либо A,B для нескольких):"
	WizardBadCorrectFmt = "Буквы должны быть в диапазоне A-%s. Попробуйте еще раз:"
	WizardDone          = "Вопрос добавлен!"
	WizardCancelled     = "Добавление отменено."
)
