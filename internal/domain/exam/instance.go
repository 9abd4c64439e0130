package exam

import (
	"github.com/runkwell/telegram-quiz-bot/internal/domain/model"
)

// Response — текущий ответ пользователя на один вопрос экзамена.
// Для SingleSelect используется Letter (пустая строка — выбор снят),
// для MultiSelect — множество Letters.
type Response struct {
	Letter  string
	Letters map[string]struct{}
}

// Instance — один собранный экзамен пользователя: упорядоченные снимки
// вопросов, курсор текущей позиции и ответы по индексам. Отсутствие записи
// в Responses означает «без ответа».
type Instance struct {
	Items     []model.Question
	Cursor    int
	Responses map[int]Response
}

// Current возвращает вопрос на текущей позиции курсора.
func (inst *Instance) Current() model.Question {
	return inst.Items[inst.Cursor]
}

// ResponseAt возвращает ответ на вопрос с данным индексом. Для отсутствующей
// записи возвращается пустой ответ соответствующего вида.
func (inst *Instance) ResponseAt(idx int) Response {
	return inst.Responses[idx]
}

// Toggle переключает букву в ответе на текущий вопрос и сообщает, выбрана ли
// буква после переключения. Для вопроса с одним ответом повторный выбор той же
// буквы снимает выбор, выбор другой буквы замещает предыдущий. Для вопроса с
// несколькими ответами буква добавляется или убирается из множества.
func (inst *Instance) Toggle(letter string) bool {
	idx := inst.Cursor
	resp := inst.Responses[idx]

	if inst.Items[idx].Key.Kind == model.MultiSelect {
		if resp.Letters == nil {
			resp.Letters = make(map[string]struct{})
		}
		if _, ok := resp.Letters[letter]; ok {
			delete(resp.Letters, letter)
			inst.Responses[idx] = resp
			return false
		}
		resp.Letters[letter] = struct{}{}
		inst.Responses[idx] = resp
		return true
	}

	if resp.Letter == letter {
		resp.Letter = ""
		inst.Responses[idx] = resp
		return false
	}
	resp.Letter = letter
	inst.Responses[idx] = resp
	return true
}

// View — снимок текущего состояния экзамена для отображения. Список букв
// всегда восстанавливается из количества вариантов вопроса, а Marked содержит
// буквы, отмеченные в текущем ответе.
type View struct {
	Position int // позиция курсора, с нуля
	Total    int
	Question model.Question
	Multiple bool
	Marked   map[string]bool
}

// View строит снимок текущей позиции экзамена. Это единственный источник
// данных для отрисовки вопроса: и при старте экзамена, и после любого перехода.
func (inst *Instance) View() View {
	q := inst.Current()
	resp := inst.ResponseAt(inst.Cursor)

	marked := make(map[string]bool)
	if q.Key.Kind == model.MultiSelect {
		for l := range resp.Letters {
			marked[l] = true
		}
	} else if resp.Letter != "" {
		marked[resp.Letter] = true
	}

	return View{
		Position: inst.Cursor,
		Total:    len(inst.Items),
		Question: q,
		Multiple: q.Key.Kind == model.MultiSelect,
		Marked:   marked,
	}
}
