package model

import (
	"sort"
	"strings"
)

// AnswerKind определяет тип вопроса: один правильный ответ или несколько.
type AnswerKind int

const (
	// SingleSelect — вопрос с одним правильным ответом.
	SingleSelect AnswerKind = iota
	// MultiSelect — вопрос с несколькими правильными ответами.
	MultiSelect
)

// AnswerKey — ключ правильных ответов вопроса. Вид ключа вычисляется один раз
// при построении снимка вопроса из строки банка и дальше не меняется:
// все потребители сверяются с полем Kind, а не выводят тип заново.
type AnswerKey struct {
	Kind    AnswerKind          `json:"kind"`
	Letter  string              `json:"letter,omitempty"`  // для SingleSelect
	Letters map[string]struct{} `json:"letters,omitempty"` // для MultiSelect
}

// ParseAnswerKey разбирает строку correct_answers из банка в ключ ответов.
// Нормализация (верхний регистр, удаление пробелов) выполняется здесь,
// на этапе загрузки, а не при проверке ответов. Вопрос считается
// множественным тогда и только тогда, когда в строке есть запятая.
func ParseAnswerKey(raw string) AnswerKey {
	normalized := strings.ToUpper(strings.ReplaceAll(raw, " ", ""))
	if !strings.Contains(normalized, ",") {
		return AnswerKey{Kind: SingleSelect, Letter: normalized}
	}

	letters := make(map[string]struct{})
	for _, part := range strings.Split(normalized, ",") {
		if part != "" {
			letters[part] = struct{}{}
		}
	}
	return AnswerKey{Kind: MultiSelect, Letters: letters}
}

// SortedLetters возвращает буквы ключа в алфавитном порядке для отображения.
func (k AnswerKey) SortedLetters() []string {
	if k.Kind == SingleSelect {
		if k.Letter == "" {
			return nil
		}
		return []string{k.Letter}
	}
	letters := make([]string, 0, len(k.Letters))
	for l := range k.Letters {
		letters = append(letters, l)
	}
	sort.Strings(letters)
	return letters
}
