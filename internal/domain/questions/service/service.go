package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/runkwell/telegram-quiz-bot/internal/domain/model"
)

// Repository — контракт хранилища банка вопросов. Реализуется репозиториями
// PostgreSQL и SQLite; обновление и удаление вопросов в контракт живой сессии
// не входят, экзамен работает со снимками.
type Repository interface {
	InitSchema(ctx context.Context) error
	FetchAll(ctx context.Context) ([]model.QuestionRow, error)
	Insert(ctx context.Context, row model.QuestionRow) (int, error)
	ExistsByText(ctx context.Context, text string) (bool, error)
}

// QuestionService для работы с банком вопросов.
type QuestionService struct {
	repo Repository
}

// NewQuestionService создает новый экземпляр QuestionService.
func NewQuestionService(repo Repository) *QuestionService {
	return &QuestionService{repo: repo}
}

// InitSchema инициализирует схему банка (идемпотентно).
func (s *QuestionService) InitSchema(ctx context.Context) error {
	if err := s.repo.InitSchema(ctx); err != nil {
		return fmt.Errorf("failed to init question schema: %w", err)
	}
	return nil
}

// FetchAll возвращает все вопросы банка, уже разобранные в доменную модель:
// с непрерывным списком вариантов, ключом ответов и ссылками на картинки.
func (s *QuestionService) FetchAll(ctx context.Context) ([]model.Question, error) {
	rows, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch questions: %w", err)
	}

	questions := make([]model.Question, 0, len(rows))
	for _, row := range rows {
		questions = append(questions, model.QuestionFromRow(row))
	}
	return questions, nil
}

// Insert добавляет вопрос в банк. Ключ ответов нормализуется здесь,
// на этапе записи: верхний регистр, без пробелов.
func (s *QuestionService) Insert(ctx context.Context, row model.QuestionRow) (int, error) {
	row.CorrectAnswers = strings.ToUpper(strings.ReplaceAll(row.CorrectAnswers, " ", ""))

	id, err := s.repo.Insert(ctx, row)
	if err != nil {
		return 0, fmt.Errorf("failed to insert question: %w", err)
	}
	return id, nil
}

// Exists проверяет наличие вопроса с данным текстом (для защиты от дублей при импорте).
func (s *QuestionService) Exists(ctx context.Context, text string) (bool, error) {
	exists, err := s.repo.ExistsByText(ctx, text)
	if err != nil {
		return false, fmt.Errorf("failed to check question: %w", err)
	}
	return exists, nil
}
