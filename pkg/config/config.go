package config

import (
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	ListenAddr      string        `env:"LISTEN_ADDR" envDefault:":8080"`
	CustomPort      string        `env:"FUNCTIONS_CUSTOMHANDLER_PORT"`
	OpsListenAddr   string        `env:"OPS_LISTEN_ADDR" envDefault:":9090"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	MaxBodyBytes    int64         `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"60s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	BotToken        string        `env:"BOT_TOKEN"`
	TelegramAPIURL  string        `env:"TELEGRAM_API_URL" envDefault:"https://api.telegram.org"`
}

// Load reads the given dotenv files (missing ones are skipped) and then the
// process environment. Variables already set in the environment win.
func Load(envFiles ...string) (*Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return nil, errors.Wrapf(err, "failed to load env file %s", file)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return errors.Mark(errors.Newf("unknown log level %q", c.LogLevel), ErrInvalidConfig)
	}

	switch c.LogFormat {
	case LogFormatJSON, LogFormatConsole:
	default:
		return errors.Mark(errors.Newf("unknown log format %q", c.LogFormat), ErrInvalidConfig)
	}

	if c.ListenAddress() == "" {
		return errors.Mark(errors.New("listen address is empty"), ErrInvalidConfig)
	}

	if c.ShutdownTimeout <= 0 {
		return errors.Mark(errors.Newf("shutdown timeout must be positive, got %s", c.ShutdownTimeout), ErrInvalidConfig)
	}

	return nil
}

// ListenAddress is the webhook listener address. FUNCTIONS_CUSTOMHANDLER_PORT
// takes precedence when the process runs as an Azure Functions custom handler.
func (c *Config) ListenAddress() string {
	if c.CustomPort != "" {
		return ":" + c.CustomPort
	}

	return c.ListenAddr
}

func (c *Config) RequireBotToken() error {
	if c.BotToken == "" {
		return errors.Mark(errors.New("BOT_TOKEN is not set"), ErrInvalidConfig)
	}

	return nil
}

func (c *Config) Logger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.Nop(), errors.Wrap(err, "failed to parse log level")
	}

	if c.LogFormat == LogFormatConsole {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
