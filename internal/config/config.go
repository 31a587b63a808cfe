package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"   validate:"required"`
	Logger   LoggerConfig   `yaml:"logger"   validate:"required"`
	Gin      GinConfig      `yaml:"gin"      validate:"required"`
	Mongo    MongoConfig    `yaml:"mongo"    validate:"required"`
	Retry    RetryConfig    `yaml:"retry"    validate:"required"`
	Seed     SeedConfig     `yaml:"seed"`
	Telegram TelegramConfig `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type MongoConfig struct {
	URI            string        `yaml:"uri"             env:"MONGO_URI"             env-default:"mongodb://localhost:27017" validate:"required"`
	Database       string        `yaml:"database"        env:"MONGO_DATABASE"        env-default:"afterschool"               validate:"required"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"MONGO_CONNECT_TIMEOUT" env-default:"10s"                       validate:"gt=0"`
}

// RetryConfig настраивает повторы обращений к хранилищу: задержка
// удваивается после каждой неудачной попытки, без джиттера.
type RetryConfig struct {
	Attempts int           `yaml:"attempts" env:"STORE_RETRY_ATTEMPTS" env-default:"3"  validate:"min=1"`
	Delay    time.Duration `yaml:"delay"    env:"STORE_RETRY_DELAY"    env-default:"1s" validate:"gt=0"`
	Backoff  float64       `yaml:"backoff"  env:"STORE_RETRY_BACKOFF"  env-default:"2"  validate:"gt=0"`
}

type SeedConfig struct {
	File string `yaml:"file" env:"SEED_FILE" env-default:"data/lessons.json"`
}

type TelegramConfig struct {
	BotToken    string `yaml:"bot_token"     env:"TELEGRAM_BOT_TOKEN" env-default:""`
	AdminChatID int64  `yaml:"admin_chat_id" env:"TELEGRAM_ADMIN_CHAT_ID" env-default:"0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
