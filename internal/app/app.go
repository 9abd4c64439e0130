package app

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/telebot.v4"

	"github.com/runkwell/telegram-quiz-bot/internal/app/handlers/telegram/add_question_handler"
	"github.com/runkwell/telegram-quiz-bot/internal/app/handlers/telegram/confirm_handler"
	"github.com/runkwell/telegram-quiz-bot/internal/app/handlers/telegram/create_exam_handler"
	"github.com/runkwell/telegram-quiz-bot/internal/app/handlers/telegram/finish_handler"
	"github.com/runkwell/telegram-quiz-bot/internal/app/handlers/telegram/navigate_handler"
	"github.com/runkwell/telegram-quiz-bot/internal/app/handlers/telegram/select_answer_handler"
	"github.com/runkwell/telegram-quiz-bot/internal/app/handlers/telegram/start_handler"
	"github.com/runkwell/telegram-quiz-bot/internal/app/middleware"
	examService "github.com/runkwell/telegram-quiz-bot/internal/domain/exam/service"
	"github.com/runkwell/telegram-quiz-bot/internal/domain/exam/session"
	questionsService "github.com/runkwell/telegram-quiz-bot/internal/domain/questions/service"
	"github.com/runkwell/telegram-quiz-bot/internal/infra/config"
	"github.com/runkwell/telegram-quiz-bot/internal/infra/poller"
	"github.com/runkwell/telegram-quiz-bot/messages"
)

type Services struct {
	questionService *questionsService.QuestionService
	examService     *examService.ExamService
}

type App struct {
	config  *config.Config
	bot     *telebot.Bot
	closeDB func()

	Services
	wizard *add_question_handler.AddQuestionHandler
}

func NewApp(configPath string) (*App, error) {
	configImpl, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("config.LoadConfig: %w", err)
	}

	repo, closeDB, err := OpenBank(context.Background(), configImpl)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	app := &App{
		config:  configImpl,
		closeDB: closeDB,
	}

	app.initServices(repo)

	if err := app.questionService.InitSchema(context.Background()); err != nil {
		closeDB()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return app, nil
}

// Функция для инициализации сервисов и репозиториев
func (app *App) initServices(repo questionsService.Repository) {
	app.questionService = questionsService.NewQuestionService(repo)
	app.examService = examService.NewExamService(app.questionService, session.NewStore())
	app.wizard = add_question_handler.NewAddQuestionHandler(app.questionService)
}

// ListenAndServeTelegram запускает сервер Telegram бота
func (app *App) ListenAndServeTelegram() error {
	botPoller, err := poller.NewPoller(app.config)
	if err != nil {
		return fmt.Errorf("poller.NewPoller: %w", err)
	}

	bot, err := telebot.NewBot(telebot.Settings{
		Token:  app.config.TelegramBot.Token,
		Poller: botPoller,
	})
	if err != nil {
		return fmt.Errorf("telebot.NewBot: %w", err)
	}
	app.bot = bot

	bot.Use(middleware.Recover())
	if app.config.TelegramBot.Debug {
		bot.Use(middleware.Logger())
	}

	app.bootstrapHandlersTelegram()

	bot.Start()

	return nil
}

// Close освобождает ресурсы приложения.
func (app *App) Close() {
	if app.closeDB != nil {
		app.closeDB()
	}
}

// bootstrapHandlersTelegram - регистрирует обработчики для бота
func (app *App) bootstrapHandlersTelegram() {
	createExam := create_exam_handler.NewCreateExamHandler(app.examService, app.config.Exam.DefaultQuestions)
	selectAnswer := select_answer_handler.NewSelectAnswerHandler(app.examService)
	navigate := navigate_handler.NewNavigateHandler(app.examService)
	confirm := confirm_handler.NewConfirmHandler(app.examService)

	app.bot.Handle("/start", start_handler.NewStartHandler().GetHandlerFunc())
	app.bot.Handle("/create_exam", createExam.GetHandlerFunc())
	app.bot.Handle("/finish_quiz", finish_handler.NewFinishHandler(app.examService).GetHandlerFunc())
	app.bot.Handle("/add_question", app.wizard.HandleStart)
	app.bot.Handle("/cancel", app.wizard.HandleCancel)

	// Текст вне мастера добавления вопроса нам не нужен, отвечаем подсказкой.
	app.bot.Handle(telebot.OnText, func(c telebot.Context) error {
		if c.Sender() != nil && app.wizard.Active(c.Sender().ID) {
			return app.wizard.HandleText(c)
		}
		return c.Send(messages.UnknownTextHint)
	})

	// OnCallback обработчик принимает все inline-кнопки и разводит их по префиксу.
	app.bot.Handle(telebot.OnCallback, func(c telebot.Context) error {
		data := c.Callback().Data // Получаем данные callback

		// Очищаем данные от нестандартных символов
		cleanedData := strings.TrimSpace(data)
		cleanedData = strings.ReplaceAll(cleanedData, "\f", "")  // Удаляем символ form feed
		cleanedData = strings.ReplaceAll(cleanedData, "\\f", "") // Удаляем экранированный символ, если он есть

		switch {
		case strings.HasPrefix(cleanedData, "ans_"):
			return selectAnswer.Handle(c, cleanedData)
		case strings.HasPrefix(cleanedData, "next_"), strings.HasPrefix(cleanedData, "back_"):
			return navigate.Handle(c, cleanedData)
		case strings.HasPrefix(cleanedData, "confirm_"):
			return confirm.Handle(c)
		case cleanedData == "add_q":
			if err := c.Respond(); err != nil {
				return err
			}
			return app.wizard.HandleStart(c)
		case cleanedData == "create_exam":
			if err := c.Respond(); err != nil {
				return err
			}
			return createExam.Handle(c)
		}

		return nil
	})
}
