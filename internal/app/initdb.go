package app

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/runkwell/telegram-quiz-bot/internal/domain/questions/repository"
	questionsService "github.com/runkwell/telegram-quiz-bot/internal/domain/questions/service"
	"github.com/runkwell/telegram-quiz-bot/internal/infra/config"
)

// OpenBank открывает хранилище банка вопросов согласно конфигурации
// (postgres или sqlite) и возвращает репозиторий вместе с функцией закрытия.
func OpenBank(ctx context.Context, cfg *config.Config) (questionsService.Repository, func(), error) {
	const op = "app.OpenBank"

	switch cfg.Database.Driver {
	case "postgres":
		connConfig, err := pgxpool.ParseConfig(cfg.PostgresURL())
		if err != nil {
			return nil, nil, fmt.Errorf("%s: failed to parse database config: %w", op, err)
		}

		db, err := pgxpool.NewWithConfig(ctx, connConfig)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: failed to create database pool: %w", op, err)
		}

		if err := db.Ping(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("%s: failed to ping database: %w", op, err)
		}

		log.Println("Database connected successfully!")
		return repository.NewPostgresQuestionRepository(db), db.Close, nil

	case "sqlite":
		db, err := repository.OpenSQLite(cfg.Database.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: failed to open sqlite database: %w", op, err)
		}
		return repository.NewSQLiteQuestionRepository(db), func() { _ = db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("%s: unknown database driver %q", op, cfg.Database.Driver)
	}
}
