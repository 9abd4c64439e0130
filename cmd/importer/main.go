package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/runkwell/telegram-quiz-bot/internal/app"
	questionsService "github.com/runkwell/telegram-quiz-bot/internal/domain/questions/service"
	"github.com/runkwell/telegram-quiz-bot/internal/infra/config"
	"github.com/runkwell/telegram-quiz-bot/internal/ingest"
)

func main() {
	configPath := flag.String("config", "configs/values_example.yaml", "путь к файлу конфигурации")
	inputPath := flag.String("input", "", "путь к markdown-документу с вопросами")
	imageBase := flag.String("base", "", "базовый URL для относительных путей картинок")
	verbose := flag.Bool("verbose", false, "логировать каждый импортированный вопрос")
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("flag -input is required")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("config.LoadConfig: %v", err)
	}

	content, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("failed to read input document: %v", err)
	}

	ctx := context.Background()

	repo, closeDB, err := app.OpenBank(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open question bank: %v", err)
	}
	defer closeDB()

	svc := questionsService.NewQuestionService(repo)
	if err := svc.InitSchema(ctx); err != nil {
		log.Fatalf("failed to init schema: %v", err)
	}

	rows := ingest.ParseDocument(string(content), *imageBase)
	if len(rows) == 0 {
		log.Fatal("no questions found in document")
	}

	var inserted, skipped int
	for _, row := range rows {
		exists, err := svc.Exists(ctx, row.QuestionText)
		if err != nil {
			log.Fatalf("failed to check question: %v", err)
		}
		if exists {
			skipped++
			continue
		}

		id, err := svc.Insert(ctx, row)
		if err != nil {
			log.Fatalf("failed to insert question: %v", err)
		}
		inserted++
		if *verbose {
			log.Printf("imported question %d: %.60s", id, row.QuestionText)
		}
	}

	fmt.Printf("import done: %d inserted, %d skipped as duplicates\n", inserted, skipped)
}
