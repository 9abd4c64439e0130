package exam

import (
	"sort"

	"github.com/runkwell/telegram-quiz-bot/internal/domain/model"
)

// Score сверяет записанные ответы экзамена с ключами и строит итоговый отчет.
// Сравнение — строгое равенство представления ответа: для одного ответа буква
// к букве, для нескольких — равенство множеств без частичного зачета.
// Отсутствующий ответ сравнивается как пустая строка или пустое множество.
// Функция чистая и идемпотентная: повторный вызов на том же экзамене дает
// тот же отчет.
func Score(inst *Instance) model.Report {
	report := model.Report{Total: len(inst.Items)}

	for i, q := range inst.Items {
		if responseCorrect(q.Key, inst.ResponseAt(i)) {
			report.Correct++
		} else {
			report.WrongIDs = append(report.WrongIDs, q.ID)
		}
	}

	report.Incorrect = report.Total - report.Correct
	return report
}

// responseCorrect проверяет один ответ против ключа вопроса.
func responseCorrect(key model.AnswerKey, resp Response) bool {
	if key.Kind == model.MultiSelect {
		if len(resp.Letters) != len(key.Letters) {
			return false
		}
		for l := range key.Letters {
			if _, ok := resp.Letters[l]; !ok {
				return false
			}
		}
		return true
	}
	return resp.Letter == key.Letter
}

// ConfirmCurrent возвращает вердикт по текущему вопросу без изменения курсора
// и ответов. Пользователь может запрашивать проверку сколько угодно раз,
// в том числе до того, как ответил.
func ConfirmCurrent(inst *Instance) Verdict {
	q := inst.Current()
	return Verdict{
		Correct:        responseCorrect(q.Key, inst.ResponseAt(inst.Cursor)),
		Multiple:       q.Key.Kind == model.MultiSelect,
		CorrectLetters: q.Key.SortedLetters(),
		Question:       q,
	}
}

// Verdict — результат немедленной проверки текущего вопроса.
type Verdict struct {
	Correct        bool
	Multiple       bool
	CorrectLetters []string
	Question       model.Question
}

// ItemResult — разбор одного вопроса завершенного экзамена для отчета.
type ItemResult struct {
	Question model.Question
	Given    []string // отмеченные пользователем буквы, по алфавиту
	Correct  bool
}

// Summary — итог экзамена: отчет плюс поэлементный разбор для развернутого
// (PDF) отчета.
type Summary struct {
	Report model.Report
	Items  []ItemResult
}

// Summarize строит итог экзамена. Как и Score, функция чистая: экзамен
// не изменяется, повторный вызов дает тот же результат.
func Summarize(inst *Instance) Summary {
	items := make([]ItemResult, 0, len(inst.Items))
	for i, q := range inst.Items {
		resp := inst.ResponseAt(i)
		items = append(items, ItemResult{
			Question: q,
			Given:    givenLetters(q.Key.Kind, resp),
			Correct:  responseCorrect(q.Key, resp),
		})
	}
	return Summary{
		Report: Score(inst),
		Items:  items,
	}
}

// givenLetters возвращает отмеченные буквы ответа в алфавитном порядке.
func givenLetters(kind model.AnswerKind, resp Response) []string {
	if kind == model.MultiSelect {
		if len(resp.Letters) == 0 {
			return nil
		}
		letters := make([]string, 0, len(resp.Letters))
		for l := range resp.Letters {
			letters = append(letters, l)
		}
		sort.Strings(letters)
		return letters
	}
	if resp.Letter == "" {
		return nil
	}
	return []string{resp.Letter}
}
