package model

// MaxOptions — максимально допустимое количество вариантов ответа у вопроса.
const MaxOptions = 7

// optionAlphabet — фиксированный алфавит букв вариантов. Количество вариантов
// вопроса (option_count) ограничивает используемый префикс этого алфавита.
var optionAlphabet = [MaxOptions]string{"A", "B", "C", "D", "E", "F", "G"}

// OptionLetter возвращает букву варианта по индексу (0 -> "A").
// Для индекса вне диапазона возвращается пустая строка.
func OptionLetter(i int) string {
	if i < 0 || i >= MaxOptions {
		return ""
	}
	return optionAlphabet[i]
}

// OptionLetters возвращает срез букв для указанного количества вариантов.
// Значение count за пределами 1..MaxOptions обрезается до допустимого диапазона.
func OptionLetters(count int) []string {
	if count < 0 {
		count = 0
	}
	if count > MaxOptions {
		count = MaxOptions
	}
	return optionAlphabet[:count:count]
}

// LetterIndex возвращает индекс буквы в алфавите вариантов или -1, если буква не входит в него.
func LetterIndex(letter string) int {
	for i, l := range optionAlphabet {
		if l == letter {
			return i
		}
	}
	return -1
}

// Question представляет вопрос банка с ключом правильных ответов.
// После загрузки из хранилища вопрос считается неизменяемым.
type Question struct {
	ID      int        `json:"id"`
	Text    string     `json:"text"`
	Images  []ImageRef `json:"images,omitempty"`
	Options []string   `json:"options"` // индекс 0 соответствует букве A
	Key     AnswerKey  `json:"key"`
}

// OptionCount возвращает количество заполненных вариантов вопроса.
func (q Question) OptionCount() int {
	return len(q.Options)
}

// Letters возвращает буквы вариантов данного вопроса (непрерывно от "A").
func (q Question) Letters() []string {
	return OptionLetters(len(q.Options))
}

// HasLetter сообщает, входит ли буква в диапазон заполненных вариантов вопроса.
func (q Question) HasLetter(letter string) bool {
	idx := LetterIndex(letter)
	return idx >= 0 && idx < len(q.Options)
}

// OptionByLetter возвращает текст варианта по букве или пустую строку,
// если буква вне диапазона.
func (q Question) OptionByLetter(letter string) string {
	idx := LetterIndex(letter)
	if idx < 0 || idx >= len(q.Options) {
		return ""
	}
	return q.Options[idx]
}
