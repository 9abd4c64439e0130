package main

import (
	"fmt"
	"os"

	"github.com/runkwell/telegram-quiz-bot/internal/app"
)

func main() {
	fmt.Println("app starting")

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/values_example.yaml"
	}

	a, err := app.NewApp(configPath)
	if err != nil {
		panic(err)
	}
	defer a.Close()

	if err := a.ListenAndServeTelegram(); err != nil {
		panic(err)
	}
}
