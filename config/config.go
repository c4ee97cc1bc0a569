package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel          string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Redis             Redis  `yaml:"redis"`
	SQLiteStoragePath string `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"tictactoe.db"`
	Game              Game   `yaml:"game"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Game struct {
	BotDelayMS    int    `yaml:"bot-delay-ms" env:"BOT_DELAY_MS" env-default:"500"`
	Difficulty    string `yaml:"difficulty" env:"DIFFICULTY" env-default:"easy"`
	AdaptiveTiers bool   `yaml:"adaptive-tiers" env:"ADAPTIVE_TIERS" env-default:"false"`
}

// MustLoad - load all configurations from a config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Game) BotDelay() time.Duration {
	return time.Duration(that.BotDelayMS) * time.Millisecond
}
