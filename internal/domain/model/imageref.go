package model

import (
	"encoding/json"
	"path"
	"regexp"
	"strconv"
	"strings"
)

// ImageRef — ссылка на изображение вопроса. Letter указывает букву варианта,
// который иллюстрирует картинка; пустая буква означает общую картинку вопроса.
type ImageRef struct {
	URL    string `json:"url"`
	Letter string `json:"letter,omitempty"`
}

// letterSuffixPattern — соглашение об именовании файлов вида "<id>_<буква>.jpg".
var letterSuffixPattern = regexp.MustCompile(`^(\d+)_([A-Ga-g])$`)

// ParseImageRefs разбирает сырое значение image_url из банка в список ссылок.
// Значение может быть пустым, голым URL или JSON-массивом URL. Функция тотальна:
// любой неразбираемый вход деградирует до безопасного варианта (общая картинка
// с исходной строкой), ошибок чтения банка из-за картинок не бывает.
func ParseImageRefs(raw string, questionID int) []ImageRef {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if strings.HasPrefix(raw, "[") {
		var urls []string
		if err := json.Unmarshal([]byte(raw), &urls); err != nil {
			// Битый JSON — считаем всю строку одной общей картинкой.
			return []ImageRef{{URL: raw}}
		}
		refs := make([]ImageRef, 0, len(urls))
		for _, u := range urls {
			u = strings.TrimSpace(u)
			if u == "" {
				continue
			}
			refs = append(refs, classifyImageURL(u, questionID))
		}
		if len(refs) == 0 {
			return nil
		}
		return refs
	}

	return []ImageRef{classifyImageURL(raw, questionID)}
}

// classifyImageURL определяет по имени файла, относится ли картинка к конкретной
// букве варианта. Буквенный суффикс учитывается только если числовая часть имени
// совпадает с id вопроса; любое несовпадение означает общую картинку.
func classifyImageURL(url string, questionID int) ImageRef {
	base := path.Base(url)
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	base = strings.TrimSuffix(base, path.Ext(base))

	m := letterSuffixPattern.FindStringSubmatch(base)
	if m == nil {
		return ImageRef{URL: url}
	}
	id, err := strconv.Atoi(m[1])
	if err != nil || id != questionID {
		return ImageRef{URL: url}
	}
	return ImageRef{URL: url, Letter: strings.ToUpper(m[2])}
}
