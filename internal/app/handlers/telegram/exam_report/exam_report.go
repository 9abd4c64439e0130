// Package exam_report доставляет пользователю итог завершенного экзамена:
// короткую текстовую сводку и развернутый PDF-отчет.
package exam_report

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"gopkg.in/telebot.v4"

	"github.com/runkwell/telegram-quiz-bot/internal/domain/exam"
	"github.com/runkwell/telegram-quiz-bot/messages"
	"github.com/runkwell/telegram-quiz-bot/report"
)

// Send отправляет сводку и PDF-отчет. Ошибка генерации или отправки PDF
// не фатальна: сводка уже доставлена, проблема только логируется.
func Send(c telebot.Context, summary exam.Summary) error {
	rep := summary.Report

	var b strings.Builder
	b.WriteString(fmt.Sprintf(messages.ReportFmt, rep.Correct, rep.Total, rep.Incorrect))
	b.WriteString("\n")
	if len(rep.WrongIDs) == 0 {
		b.WriteString(messages.NoWrongAnswers)
	} else {
		ids := make([]string, 0, len(rep.WrongIDs))
		for _, id := range rep.WrongIDs {
			ids = append(ids, strconv.Itoa(id))
		}
		b.WriteString(fmt.Sprintf(messages.WrongIDsFmt, strings.Join(ids, ", ")))
	}

	if err := c.Send(b.String()); err != nil {
		return fmt.Errorf("failed to send exam report: %w", err)
	}

	sender := c.Sender()
	reportFile, err := report.GeneratePDFReport(report.ReportData{
		UserID:            sender.ID,
		TelegramFirstName: sender.FirstName,
		TelegramUsername:  sender.Username,
		Summary:           summary,
	})
	if err != nil {
		log.Printf("Ошибка генерации отчета: %v", err)
		return nil
	}

	doc := &telebot.Document{
		File:     telebot.FromDisk(reportFile),
		FileName: reportFile,
	}
	if err := c.Send(doc); err != nil {
		log.Printf("Ошибка отправки отчета: %v", err)
	}
	return nil
}
