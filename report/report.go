package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/runkwell/telegram-quiz-bot/internal/domain/exam"
)

// fontDir возвращает каталог со шрифтами отчёта. По умолчанию это
// report/fonts относительно рабочего каталога процесса; переменная
// окружения REPORT_FONT_DIR позволяет указать другой каталог.
func fontDir() string {
	if dir := os.Getenv("REPORT_FONT_DIR"); dir != "" {
		return dir
	}
	return filepath.Join("report", "fonts")
}

// ReportData содержит данные для формирования отчёта по экзамену.
type ReportData struct {
	UserID            int64
	TelegramFirstName string
	TelegramUsername  string
	Summary           exam.Summary
}

// GeneratePDFReport генерирует PDF‑отчёт по завершенному экзамену и сохраняет
// его в файл. Возвращает имя файла и ошибку, если она произошла.
func GeneratePDFReport(r ReportData) (string, error) {
	// Создаем новый PDF документ формата A4.
	pdf := gofpdf.New("P", "mm", "A4", "")

	// Регистрируем UTF-8 шрифты, поддерживающие кириллицу.
	dir := fontDir()
	pdf.AddUTF8Font("DejaVu", "", filepath.Join(dir, "DejaVuSans.ttf"))
	pdf.AddUTF8Font("DejaVu", "B", filepath.Join(dir, "DejaVuSans-Bold.ttf"))

	pdf.SetFont("DejaVu", "", 14)
	pdf.AddPage()

	// Заголовок отчёта.
	pdf.SetFont("DejaVu", "B", 16)
	pdf.MultiCell(0, 10, "Отчет по экзамену", "", "L", false)
	pdf.Ln(4)

	// Информация о пользователе и итоговый счет.
	rep := r.Summary.Report
	pdf.SetFont("DejaVu", "", 12)
	info := fmt.Sprintf("Имя: %s\nUsername: %s\nUser ID: %d\nРезультат: %d правильных ответов из %d\nОшибок: %d\n",
		r.TelegramFirstName, r.TelegramUsername, r.UserID, rep.Correct, rep.Total, rep.Incorrect)
	pdf.MultiCell(0, 8, info, "", "L", false)

	if len(rep.WrongIDs) > 0 {
		ids := make([]string, 0, len(rep.WrongIDs))
		for _, id := range rep.WrongIDs {
			ids = append(ids, strconv.Itoa(id))
		}
		pdf.MultiCell(0, 8, "Вопросы банка с ошибками: "+strings.Join(ids, ", "), "", "L", false)
	}
	pdf.Ln(4)

	// Для каждого вопроса выводим его данные.
	for i, item := range r.Summary.Items {
		q := item.Question

		verdict := "верно"
		if !item.Correct {
			verdict = "неверно"
		}
		qHeader := fmt.Sprintf("Вопрос %d (id %d) — %s:", i+1, q.ID, verdict)
		pdf.SetFont("DejaVu", "B", 12)
		pdf.MultiCell(0, 8, qHeader, "", "L", false)

		// Выводим текст вопроса, автоматически перенося его.
		pdf.SetFont("DejaVu", "", 12)
		pdf.MultiCell(0, 8, q.Text, "", "L", false)
		pdf.Ln(2)

		// Выводим строку с ответами.
		given := strings.Join(item.Given, ", ")
		if given == "" {
			given = "без ответа"
		}
		answerLine := fmt.Sprintf("Ваш ответ: %s\nПравильный: %s\n",
			given, strings.Join(q.Key.SortedLetters(), ", "))
		pdf.MultiCell(0, 8, answerLine, "", "L", false)
		pdf.Ln(4)
	}

	// Формируем имя файла.
	filename := ""
	if r.TelegramUsername != "" {
		filename = r.TelegramUsername + ".pdf"
	} else {
		filename = "report_" + strconv.FormatInt(r.UserID, 10) + ".pdf"
	}

	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", err
	}
	return filename, nil
}
