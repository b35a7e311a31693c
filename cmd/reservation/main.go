package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/dcastilloq/reservation-service/app"
	"github.com/dcastilloq/reservation-service/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Printf("load envs from .env: %v", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal(err)
	}
}
