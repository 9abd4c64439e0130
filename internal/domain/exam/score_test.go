package exam

import (
	"reflect"
	"testing"

	"github.com/runkwell/telegram-quiz-bot/internal/domain/model"
)

// newTestInstance собирает экзамен напрямую из вопросов, минуя перемешивание.
func newTestInstance(items ...model.Question) *Instance {
	return &Instance{
		Items:     items,
		Responses: make(map[int]Response),
	}
}

// TestScore_MixedRun проверяет подсчет итога на экзамене из двух вопросов:
// один отвечен верно, второй — неверно.
func TestScore_MixedRun(t *testing.T) {
	inst := newTestInstance(
		model.Question{ID: 10, Options: []string{"а", "б"}, Key: model.ParseAnswerKey("A")},
		model.Question{ID: 20, Options: []string{"а", "б", "в"}, Key: model.ParseAnswerKey("B")},
	)

	inst.Toggle("A") // вопрос 10 — верно
	inst.Cursor = 1
	inst.Toggle("C") // вопрос 20 — неверно

	report := Score(inst)
	if report.Total != 2 || report.Correct != 1 || report.Incorrect != 1 {
		t.Errorf("Ожидался итог 1/2, получено %+v", report)
	}
	if !reflect.DeepEqual(report.WrongIDs, []int{20}) {
		t.Errorf("Ожидались неверные ID [20], получено %v", report.WrongIDs)
	}
}

// TestScore_MultiSelectExactMatch проверяет, что множественный ответ
// засчитывается только при точном совпадении множеств, без частичного зачета.
func TestScore_MultiSelectExactMatch(t *testing.T) {
	cases := []struct {
		name    string
		marked  []string
		correct bool
	}{
		{"точное совпадение", []string{"A", "C"}, true},
		{"подмножество ключа", []string{"A"}, false},
		{"надмножество ключа", []string{"A", "B", "C"}, false},
		{"без ответа", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inst := newTestInstance(model.Question{
				ID:      1,
				Options: []string{"а", "б", "в"},
				Key:     model.ParseAnswerKey("A,C"),
			})
			for _, l := range tc.marked {
				inst.Toggle(l)
			}

			report := Score(inst)
			if got := report.Correct == 1; got != tc.correct {
				t.Errorf("Ожидалось correct=%v, получено %+v", tc.correct, report)
			}
		})
	}
}

// TestScore_UnansweredIsWrong проверяет, что вопрос без ответа считается неверным.
func TestScore_UnansweredIsWrong(t *testing.T) {
	inst := newTestInstance(
		model.Question{ID: 5, Options: []string{"а", "б"}, Key: model.ParseAnswerKey("A")},
	)

	report := Score(inst)
	if report.Correct != 0 || report.Incorrect != 1 {
		t.Errorf("Вопрос без ответа должен быть неверным, получено %+v", report)
	}
	if !reflect.DeepEqual(report.WrongIDs, []int{5}) {
		t.Errorf("Ожидались неверные ID [5], получено %v", report.WrongIDs)
	}
}

// TestScore_Idempotent проверяет, что повторный подсчет дает тот же отчет
// и не меняет экзамен.
func TestScore_Idempotent(t *testing.T) {
	inst := newTestInstance(
		model.Question{ID: 1, Options: []string{"а", "б"}, Key: model.ParseAnswerKey("B")},
		model.Question{ID: 2, Options: []string{"а", "б"}, Key: model.ParseAnswerKey("A,B")},
	)
	inst.Toggle("B")
	inst.Cursor = 1
	inst.Toggle("A")
	inst.Toggle("B")

	first := Score(inst)
	second := Score(inst)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Повторный подсчет дал другой отчет: %+v и %+v", first, second)
	}
}

// TestConfirmCurrent проверяет немедленный вердикт без изменения состояния.
func TestConfirmCurrent(t *testing.T) {
	inst := newTestInstance(model.Question{
		ID:      1,
		Options: []string{"а", "б", "в"},
		Key:     model.ParseAnswerKey("B,C"),
	})

	verdict := ConfirmCurrent(inst)
	if verdict.Correct {
		t.Error("Вердикт до ответа должен быть неверным")
	}
	if !verdict.Multiple {
		t.Error("Ожидался множественный вопрос")
	}
	if !reflect.DeepEqual(verdict.CorrectLetters, []string{"B", "C"}) {
		t.Errorf("Ожидались правильные буквы [B C], получено %v", verdict.CorrectLetters)
	}

	inst.Toggle("B")
	inst.Toggle("C")
	verdict = ConfirmCurrent(inst)
	if !verdict.Correct {
		t.Error("Вердикт после полного ответа должен быть верным")
	}
	if inst.Cursor != 0 {
		t.Errorf("Вердикт не должен двигать курсор, получено %d", inst.Cursor)
	}
}

// TestSummarize_Breakdown проверяет поэлементный разбор итога.
func TestSummarize_Breakdown(t *testing.T) {
	inst := newTestInstance(
		model.Question{ID: 1, Options: []string{"а", "б"}, Key: model.ParseAnswerKey("A")},
		model.Question{ID: 2, Options: []string{"а", "б", "в"}, Key: model.ParseAnswerKey("B,C")},
	)
	inst.Toggle("A")
	inst.Cursor = 1
	inst.Toggle("C")
	inst.Toggle("B")

	summary := Summarize(inst)
	if len(summary.Items) != 2 {
		t.Fatalf("Ожидалось 2 элемента разбора, получено %d", len(summary.Items))
	}
	if !summary.Items[0].Correct || !reflect.DeepEqual(summary.Items[0].Given, []string{"A"}) {
		t.Errorf("Неверный разбор первого вопроса: %+v", summary.Items[0])
	}
	// Отмеченные буквы в разборе всегда в алфавитном порядке.
	if !reflect.DeepEqual(summary.Items[1].Given, []string{"B", "C"}) {
		t.Errorf("Ожидались буквы [B C], получено %v", summary.Items[1].Given)
	}
	if summary.Report.Correct != 2 {
		t.Errorf("Ожидался итог 2/2, получено %+v", summary.Report)
	}
}
