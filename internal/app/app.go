package app

import (
	"context"
	"fmt"

	"github.com/ZetoOfficial/vk-toolkit/internal/models"
	"github.com/sirupsen/logrus"
)

type Storage interface {
	SaveData(ctx context.Context, data *models.Data) error
	RunQuery(ctx context.Context, queryName string) ([]map[string]any, error)
}

type VkApi interface {
	CollectData(ctx context.Context, req models.CollectRequest) (*models.Data, error)
}

type App struct {
	client  VkApi
	storage Storage
}

func NewApp(api VkApi, storage Storage) *App {
	return &App{api, storage}
}

func (a *App) Run(ctx context.Context, req models.CollectRequest, query string) error {
	if query != "" {
		logrus.Infof("Run query: %s", query)
		results, err := a.storage.RunQuery(ctx, query)
		if err != nil {
			return fmt.Errorf("run query: %w", err)
		}
		for _, result := range results {
			logrus.Info(result)
		}
		return nil
	}
	logrus.Info("Starting collect data")
	data, err := a.client.CollectData(ctx, req)
	if err != nil {
		return fmt.Errorf("collect data: %w", err)
	}
	logrus.Info("Save data to storage")
	if err := a.storage.SaveData(ctx, data); err != nil {
		return fmt.Errorf("save data: %w", err)
	}
	return nil
}
