package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/ZetoOfficial/vk-toolkit/internal/app"
	"github.com/ZetoOfficial/vk-toolkit/internal/cli"
	"github.com/ZetoOfficial/vk-toolkit/internal/clients"
	"github.com/ZetoOfficial/vk-toolkit/internal/config"
	"github.com/ZetoOfficial/vk-toolkit/internal/logger"
	"github.com/ZetoOfficial/vk-toolkit/internal/storage"
	"github.com/sirupsen/logrus"
)

func main() {
	args, err := cli.ParseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logrus.Fatalf("parse args: %v", err)
	}

	logFile, err := logger.Setup(args.LogLevel, args.LogFile)
	if err != nil {
		logrus.Fatal(err)
	}
	defer logFile.Close()

	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	vkClient := clients.NewVKClient(cfg)
	neo4jStorage, err := storage.NewNeo4jStorage(cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPassword)
	if err != nil {
		logrus.Fatal(err)
	}
	if err := neo4jStorage.Ping(ctx); err != nil {
		logrus.Fatalf("Не удалось подключиться к Neo4j: %v", err)
	}
	logrus.Info("Подключение к Neo4j успешно установлено")
	defer func() {
		if err := neo4jStorage.Close(ctx); err != nil {
			logrus.Warningf("close neo4j storage: %v", err)
		}
	}()

	myApp := app.NewApp(vkClient, neo4jStorage)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logrus.Infof("Получен сигнал: %s. Завершение работы...", sig)
		cancel()
	}()

	if err := myApp.Run(ctx, args.Request, args.Query); err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("Программа завершена успешно.")
}
