package repository

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/runkwell/telegram-quiz-bot/internal/domain/model"
)

// SQLiteQuestionRepository — репозиторий банка вопросов поверх SQLite
// (чистый Go-драйвер modernc.org/sqlite, без cgo).
type SQLiteQuestionRepository struct {
	db *sql.DB
}

// OpenSQLite открывает файл базы SQLite и проверяет соединение.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	return db, nil
}

// NewSQLiteQuestionRepository создает новый экземпляр SQLiteQuestionRepository.
func NewSQLiteQuestionRepository(db *sql.DB) *SQLiteQuestionRepository {
	return &SQLiteQuestionRepository{db: db}
}

// InitSchema создает таблицу questions, если ее еще нет, и добавляет
// недостающие колонки поздних версий схемы. SQLite не поддерживает
// ADD COLUMN IF NOT EXISTS, поэтому список колонок читается из PRAGMA.
func (r *SQLiteQuestionRepository) InitSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
                CREATE TABLE IF NOT EXISTS questions (
                        id INTEGER PRIMARY KEY AUTOINCREMENT,
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

	existing, err := r.columnNames(ctx)
	if err != nil {
		return err
	}

	missing := map[string]string{
		"num_options":     `ALTER TABLE questions ADD COLUMN num_options INTEGER DEFAULT 4`,
		"correct_answers": `ALTER TABLE questions ADD COLUMN correct_answers TEXT DEFAULT ''`,
		"option_e":        `ALTER TABLE questions ADD COLUMN option_e TEXT`,
		"option_f":        `ALTER TABLE questions ADD COLUMN option_f TEXT`,
		"option_g":        `ALTER TABLE questions ADD COLUMN option_g TEXT`,
	}
	for name, stmt := range missing {
		if existing[name] {
			continue
		}
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to add column %s: %w", name, err)
		}
	}

	return nil
}

// columnNames возвращает множество имен колонок таблицы questions.
func (r *SQLiteQuestionRepository) columnNames(ctx context.Context) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx, `PRAGMA table_info(questions)`)
	if err != nil {
		return nil, fmt.Errorf("failed to read table info: %w", err)
	}
	defer rows.Close()

	columns := make(map[string]bool)
	for rows.Next() {
		var (
			cid       int
			name      string
			ctype     string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dfltValue, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan table info: %w", err)
		}
		columns[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate over table info: %w", err)
	}
	return columns, nil
}

// FetchAll возвращает все строки банка вопросов.
func (r *SQLiteQuestionRepository) FetchAll(ctx context.Context) ([]model.QuestionRow, error) {
	rows, err := r.db.QueryContext(ctx, `
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
func (r *SQLiteQuestionRepository) Insert(ctx context.Context, row model.QuestionRow) (int, error) {
	res, err := r.db.ExecContext(ctx, `
                INSERT INTO questions (question_text, image_url, option_a, option_b, option_c,
                                       option_d, option_e, option_f, option_g, num_options, correct_answers)
                VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        `,
		row.QuestionText, row.ImageURL,
		row.Options[0], row.Options[1], row.Options[2], row.Options[3],
		row.Options[4], row.Options[5], row.Options[6],
		row.NumOptions, row.CorrectAnswers,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert question: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted id: %w", err)
	}
	return int(id), nil
}

// ExistsByText проверяет, есть ли в банке вопрос с таким текстом.
func (r *SQLiteQuestionRepository) ExistsByText(ctx context.Context, text string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM questions WHERE question_text = ?`, text,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check question existence: %w", err)
	}
	return count > 0, nil
}
