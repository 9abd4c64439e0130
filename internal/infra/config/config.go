package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config содержит настройки приложения: бота, хранилища банка вопросов
// и параметры экзамена по умолчанию.
type Config struct {
	TelegramBot struct {
		Token        string `yaml:"token"`
		Mode         string `yaml:"mode"` // "polling" или "webhook"
		WebhookURL   string `yaml:"webhook_url"`
		ListenAddr   string `yaml:"listen_addr"`
		PollInterval int    `yaml:"poll_interval"` // секунды, для лонгпуллинга
		Debug        bool   `yaml:"debug"`
	} `yaml:"telegram_bot"`
	Database struct {
		Driver   string `yaml:"driver"` // "postgres" или "sqlite"
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"dbname"`
		Path     string `yaml:"path"` // путь к файлу sqlite
	} `yaml:"database"`
	Exam struct {
		DefaultQuestions int `yaml:"default_questions"`
	} `yaml:"exam"`
}

// LoadConfig загружает конфигурацию из YAML-файла, затем накладывает
// переменные окружения (в том числе из .env, если файл существует).
// Токен бота обязателен; остальные поля имеют значения по умолчанию.
func LoadConfig(filename string) (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}
	if filename != "" {
		f, err := os.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
		defer func(f *os.File) {
			if err := f.Close(); err != nil {
				fmt.Println("f.Close() failed ", err)
			}
		}(f)

		if err := yaml.NewDecoder(f).Decode(config); err != nil {
			return nil, fmt.Errorf("failed to decode config: %w", err)
		}
	}

	applyEnv(config)
	applyDefaults(config)

	if config.TelegramBot.Token == "" {
		return nil, fmt.Errorf("telegram bot token is not set (TELEGRAM_BOT_TOKEN)")
	}

	return config, nil
}

// applyEnv накладывает переменные окружения поверх значений из файла.
func applyEnv(c *Config) {
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.TelegramBot.Token = v
	}
	if v := os.Getenv("BOT_MODE"); v != "" {
		c.TelegramBot.Mode = v
	}
	if v := os.Getenv("WEBHOOK_URL"); v != "" {
		c.TelegramBot.WebhookURL = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.TelegramBot.ListenAddr = v
	}
	if v := os.Getenv("DEBUG"); v == "true" || v == "1" {
		c.TelegramBot.Debug = true
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		c.Database.Port = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		c.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.Database.Name = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("EXAM_QUESTIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Exam.DefaultQuestions = n
		}
	}
}

// applyDefaults заполняет незаданные поля значениями по умолчанию.
func applyDefaults(c *Config) {
	if c.TelegramBot.Mode == "" {
		c.TelegramBot.Mode = "polling"
	}
	if c.TelegramBot.ListenAddr == "" {
		c.TelegramBot.ListenAddr = ":8443"
	}
	if c.TelegramBot.PollInterval <= 0 {
		c.TelegramBot.PollInterval = 10
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Path == "" {
		c.Database.Path = "quiz.db"
	}
	if c.Exam.DefaultQuestions <= 0 {
		c.Exam.DefaultQuestions = 65
	}
}

// PostgresURL собирает строку подключения к PostgreSQL.
func (c *Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}
