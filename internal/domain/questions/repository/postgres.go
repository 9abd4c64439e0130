package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/runkwell/telegram-quiz-bot/internal/domain/model"
)

// PostgresQuestionRepository — репозиторий банка вопросов поверх PostgreSQL.
type PostgresQuestionRepository struct {
	db *pgxpool.Pool
}

// NewPostgresQuestionRepository создает новый экземпляр PostgresQuestionRepository.
func NewPostgresQuestionRepository(db *pgxpool.Pool) *PostgresQuestionRepository {
	return &PostgresQuestionRepository{db: db}
}

// InitSchema создает таблицу questions, если ее еще нет, и добавляет колонки,
// появившиеся в поздних версиях схемы. Выполняется идемпотентно на каждом старте.
func (r *PostgresQuestionRepository) InitSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
                CREATE TABLE IF NOT EXISTS questions (
                        id SERIAL PRIMARY KEY,
                        question_text TEXT NOT NULL,
                        image_url TEXT,
                        option_a TEXT,
                        option_b TEXT,
                        option_c TEXT,
                        option_d TEXT,
                        option_e TEXT,
                        option_f TEXT,
                        option_g TEXT,
                        num_options INTEGER DEFAULT 4,
                        correct_answers TEXT DEFAULT ''
                )
        `)
	if err != nil {
		return fmt.Errorf("failed to create questions table: %w", err)
	}

	// Миграция старых установок: недостающие колонки добавляются по одной.
	alters := []string{
		`ALTER TABLE questions ADD COLUMN IF NOT EXISTS num_options INTEGER DEFAULT 4`,
		`ALTER TABLE questions ADD COLUMN IF NOT EXISTS correct_answers TEXT DEFAULT ''`,
		`ALTER TABLE questions ADD COLUMN IF NOT EXISTS option_e TEXT`,
		`ALTER TABLE questions ADD COLUMN IF NOT EXISTS option_f TEXT`,
		`ALTER TABLE questions ADD COLUMN IF NOT EXISTS option_g TEXT`,
	}
	for _, stmt := range alters {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to migrate questions table: %w", err)
		}
	}

	return nil
}

// FetchAll возвращает все строки банка вопросов.
func (r *PostgresQuestionRepository) FetchAll(ctx context.Context) ([]model.QuestionRow, error) {
	rows, err := r.db.Query(ctx, `
                SELECT id, question_text, COALESCE(image_url, ''),
                       COALESCE(option_a, ''), COALESCE(option_b, ''), COALESCE(option_c, ''),
                       COALESCE(option_d, ''), COALESCE(option_e, ''), COALESCE(option_f, ''),
                       COALESCE(option_g, ''),
                       COALESCE(num_options, 4), COALESCE(correct_answers, '')
                FROM questions
                ORDER BY id
        `)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var result []model.QuestionRow
	for rows.Next() {
		var row model.QuestionRow
		if err := rows.Scan(
			&row.ID, &row.QuestionText, &row.ImageURL,
			&row.Options[0], &row.Options[1], &row.Options[2], &row.Options[3],
			&row.Options[4], &row.Options[5], &row.Options[6],
			&row.NumOptions, &row.CorrectAnswers,
		); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}

	return result, nil
}

// Insert добавляет вопрос в банк и возвращает присвоенный id.
func (r *PostgresQuestionRepository) Insert(ctx context.Context, row model.QuestionRow) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `
                INSERT INTO questions (question_text, image_url, option_a, option_b, option_c,
                                       option_d, option_e, option_f, option_g, num_options, correct_answers)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
                RETURNING id
        `,
		row.QuestionText, row.ImageURL,
		row.Options[0], row.Options[1], row.Options[2], row.Options[3],
		row.Options[4], row.Options[5], row.Options[6],
		row.NumOptions, row.CorrectAnswers,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert question: %w", err)
	}
	return id, nil
}

// ExistsByText проверяет, есть ли в банке вопрос с таким текстом.
func (r *PostgresQuestionRepository) ExistsByText(ctx context.Context, text string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM questions WHERE question_text = $1)`, text,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check question existence: %w", err)
	}
	return exists, nil
}
