package main

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Sole248k/Task-Management-Application/internal/adapter/cli"
	dbadapter "github.com/Sole248k/Task-Management-Application/internal/adapter/db"
	"github.com/Sole248k/Task-Management-Application/internal/app/manager"
	"github.com/Sole248k/Task-Management-Application/internal/config"
	"github.com/Sole248k/Task-Management-Application/pkg/translator"
)

const startupPingTimeout = 5 * time.Second

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder: "pkg/translator/translation",
	})

	cfg := config.LoadConfig()
	database, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	ctx := context.Background()

	pingCtx, cancel := context.WithTimeout(ctx, startupPingTimeout)
	err = database.PingContext(pingCtx)
	cancel()
	if err != nil {
		logger.Fatal("mysql unreachable", zap.Error(err))
	}

	store := dbadapter.NewTaskStore(database)
	if err := store.EnsureSchema(ctx); err != nil {
		logger.Fatal("failed to ensure schema", zap.Error(err))
	}

	tasks := manager.NewTaskManager(store)
	if err := tasks.Load(ctx); err != nil {
		logger.Fatal("failed to load tasks", zap.Error(err))
	}

	shell := cli.NewShell(tasks, os.Stdin, os.Stdout, cfg.Lang)
	if err := shell.Run(ctx); err != nil {
		logger.Fatal("shell terminated", zap.Error(err))
	}
}
