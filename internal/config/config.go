package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	DefaultEnvFile = ".env"
	// VKAPIVersion is the legacy API version whose response shapes
	// (uid, gid, aid) the mapper understands.
	VKAPIVersion = "3.0"
	VKBaseURL    = "https://api.vk.com/method/"
)

type Config struct {
	VKAccessToken string        `env:"VK_ACCESS_TOKEN,required"`
	VKAPIVersion  string        `env:"VK_API_VERSION" envDefault:"3.0"`
	VKBaseURL     string        `env:"VK_BASE_URL" envDefault:"https://api.vk.com/method/"`
	VKTimeout     time.Duration `env:"VK_TIMEOUT" envDefault:"10s"`
	Neo4jURI      string        `env:"NEO4J_URI" envDefault:"neo4j://localhost:7687"`
	Neo4jUser     string        `env:"NEO4J_USER" envDefault:"neo4j"`
	Neo4jPassword string        `env:"NEO4J_PASSWORD"`
}

// Load читает переменные из envFile (если он есть) и окружения.
// Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
