package ingest

import (
	"strings"
	"testing"
)

const sampleDocument = `
1. Какой протокол используется для доставки обновлений в Telegram Bot API при лонгпуллинге? Выберите один вариант из предложенных ниже.

- [ ] WebSocket
- [x] HTTPS
- [ ] SMTP
- [ ] FTP

--------------------------------------------------

2. Какие из перечисленных структур данных дают доступ к элементу за O(1)? Отметьте все подходящие варианты из списка.

![схема](images/structures.png)

- [x] Массив
- [ ] Связный список
- [x] Хеш-таблица

--------------------------------------------------

обрывок разметки

--------------------------------------------------

3. Вопрос без вариантов ответа, который должен быть пропущен при разборе, потому что чекбоксов в нем нет вообще ни одного.
`

// TestParseDocument проверяет разбор документа: блоки делятся по линиям
// дефисов, обрывки и блоки без вариантов пропускаются.
func TestParseDocument(t *testing.T) {
	rows := ParseDocument(sampleDocument, "https://cdn.example.com")

	if len(rows) != 2 {
		t.Fatalf("Ожидалось 2 вопроса, получено %d", len(rows))
	}

	first := rows[0]
	if !strings.HasPrefix(first.QuestionText, "1. Какой протокол") {
		t.Errorf("Неверный текст первого вопроса: %q", first.QuestionText)
	}
	if first.NumOptions != 4 {
		t.Errorf("Ожидалось 4 варианта, получено %d", first.NumOptions)
	}
	if first.CorrectAnswers != "B" {
		t.Errorf("Ожидался ключ \"B\", получено %q", first.CorrectAnswers)
	}
	if first.ImageURL != "" {
		t.Errorf("У первого вопроса не должно быть картинки, получено %q", first.ImageURL)
	}

	second := rows[1]
	if second.NumOptions != 3 {
		t.Errorf("Ожидалось 3 варианта, получено %d", second.NumOptions)
	}
	if second.CorrectAnswers != "A,C" {
		t.Errorf("Ожидался ключ \"A,C\", получено %q", second.CorrectAnswers)
	}
	if second.ImageURL != "https://cdn.example.com/images/structures.png" {
		t.Errorf("Неверный URL картинки: %q", second.ImageURL)
	}
	if strings.Contains(second.QuestionText, "![") {
		t.Errorf("Разметка картинки должна убираться из текста: %q", second.QuestionText)
	}
	if second.Options[0] != "Массив" || second.Options[2] != "Хеш-таблица" {
		t.Errorf("Неверные варианты второго вопроса: %v", second.Options)
	}
}

// TestParseDocument_Empty проверяет, что пустой документ дает пустой результат.
func TestParseDocument_Empty(t *testing.T) {
	if rows := ParseDocument("", "base"); len(rows) != 0 {
		t.Errorf("Ожидался пустой результат, получено %v", rows)
	}
}
