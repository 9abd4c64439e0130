package model

// Report — итог проверки экзамена.
type Report struct {
	Total     int   `json:"total"`
	Correct   int   `json:"correct"`
	Incorrect int   `json:"incorrect"`
	// WrongIDs содержит id вопросов банка (не позиции в экзамене) в порядке
	// следования вопросов, чтобы пользователь мог найти их для разбора.
	WrongIDs []int `json:"wrong_ids"`
}
