package exam

import "errors"

// Ошибки уровня движка экзамена. Все они пользовательские и восстановимые:
// обработчики сообщают о них пользователю и продолжают работу, процесс
// из-за них никогда не завершается.
var (
	// ErrInsufficientPool — в банке меньше вопросов, чем запрошено для экзамена.
	ErrInsufficientPool = errors.New("в банке недостаточно вопросов для экзамена")
	// ErrNoActiveSession — действие пришло от пользователя без активного экзамена.
	ErrNoActiveSession = errors.New("у пользователя нет активного экзамена")
	// ErrInvalidSelect — выбранная буква вне диапазона вариантов текущего вопроса.
	ErrInvalidSelect = errors.New("буква вне диапазона вариантов вопроса")
)
