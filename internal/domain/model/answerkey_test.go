package model

import (
	"reflect"
	"testing"
)

// TestParseAnswerKey_Single проверяет разбор ключа с одним правильным ответом.
func TestParseAnswerKey_Single(t *testing.T) {
	cases := []struct {
		raw    string
		letter string
	}{
		{"A", "A"},
		{"c", "C"},
		{" b ", "B"},
	}

	for _, tc := range cases {
		key := ParseAnswerKey(tc.raw)
		if key.Kind != SingleSelect {
			t.Errorf("ParseAnswerKey(%q): ожидался SingleSelect", tc.raw)
		}
		if key.Letter != tc.letter {
			t.Errorf("ParseAnswerKey(%q): ожидалась буква %q, получено %q", tc.raw, tc.letter, key.Letter)
		}
	}
}

// TestParseAnswerKey_Multi проверяет, что запятая в ключе означает
// множественный вопрос, даже если буква одна.
func TestParseAnswerKey_Multi(t *testing.T) {
	key := ParseAnswerKey("a, c,D")
	if key.Kind != MultiSelect {
		t.Fatal("Ожидался MultiSelect")
	}
	if !reflect.DeepEqual(key.SortedLetters(), []string{"A", "C", "D"}) {
		t.Errorf("Ожидались буквы [A C D], получено %v", key.SortedLetters())
	}

	// Висячая запятая: множественный вопрос с одной буквой в ключе.
	key = ParseAnswerKey("B,")
	if key.Kind != MultiSelect {
		t.Fatal("Запятая должна давать MultiSelect")
	}
	if !reflect.DeepEqual(key.SortedLetters(), []string{"B"}) {
		t.Errorf("Ожидались буквы [B], получено %v", key.SortedLetters())
	}
}

// TestQuestionFromRow проверяет сборку вопроса из строки банка: варианты
// обрезаются до num_options, ключ и картинки разбираются.
func TestQuestionFromRow(t *testing.T) {
	row := QuestionRow{
		ID:             7,
		QuestionText:   "Текст вопроса",
		ImageURL:       "https://example.com/pic.png",
		NumOptions:     2,
		CorrectAnswers: "a,b",
	}
	row.Options = [MaxOptions]string{"Да", "Нет", "Лишний"}

	q := QuestionFromRow(row)
	if q.ID != 7 || q.Text != "Текст вопроса" {
		t.Errorf("Неверные поля вопроса: %+v", q)
	}
	if !reflect.DeepEqual(q.Options, []string{"Да", "Нет"}) {
		t.Errorf("Варианты должны обрезаться до num_options, получено %v", q.Options)
	}
	if q.Key.Kind != MultiSelect {
		t.Error("Ожидался MultiSelect по ключу \"a,b\"")
	}
	if len(q.Images) != 1 || q.Images[0].URL != "https://example.com/pic.png" {
		t.Errorf("Ожидалась одна общая картинка, получено %v", q.Images)
	}
}

// TestQuestionLetters проверяет буквенные операции вопроса.
func TestQuestionLetters(t *testing.T) {
	q := Question{Options: []string{"а", "б", "в"}}

	if !reflect.DeepEqual(q.Letters(), []string{"A", "B", "C"}) {
		t.Errorf("Ожидались буквы [A B C], получено %v", q.Letters())
	}
	if !q.HasLetter("C") || q.HasLetter("D") {
		t.Error("HasLetter должен принимать только буквы заполненных вариантов")
	}
	if q.OptionByLetter("B") != "б" {
		t.Errorf("Ожидался вариант \"б\", получено %q", q.OptionByLetter("B"))
	}
	if q.OptionByLetter("G") != "" {
		t.Error("Буква вне диапазона должна давать пустую строку")
	}
}
