package cmd

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"serpapi/serpapi/search"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	ApiKey      string `env:"API_KEY"`
	Engine      string `env:"SERPAPI_ENGINE" envDefault:"google"`
	Logfile     string `env:"LOGFILE,notEmpty" envDefault:"serpapi.log"`
	HistoryPath string `env:"HISTORY_PATH,notEmpty" envDefault:"serpapi_history.db"`

	Port        int `env:"PORT" envDefault:"8000"`
	MetricsPort int `env:"METRICS_PORT" envDefault:"9090"`
}

// Defaults are the parameters every request from the cli carries unless overridden.
func (c *Config) Defaults() search.Params {
	defaults := search.Params{}
	if c.ApiKey != "" {
		defaults["api_key"] = c.ApiKey
	}
	if c.Engine != "" {
		defaults["engine"] = c.Engine
	}
	return defaults
}

func LoadEnvFile(configPath string) error {
	if configPath == "" {
		log.Printf("no env file specified, using os.Environ only")
		return nil
	}

	log.Printf("loading env from file %s", configPath)
	if err := godotenv.Load(configPath); err != nil {
		return fmt.Errorf("error loading .env file '%s': %w", configPath, err)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("error parsing config: %w", err)
	}
	return config, nil
}

func InitLogging(logFile *os.File) {
	log.SetFlags(log.Lshortfile | log.Ltime | log.Ldate)
	log.SetOutput(io.MultiWriter(logFile, os.Stderr))
	slog.Info("logging initialized", "log_file", logFile.Name())
}

// ParseParams parses key=value arguments into request parameters.
func ParseParams(args []string) (search.Params, error) {
	params := make(search.Params, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter '%s', expected key=value", arg)
		}
		params[key] = value
	}
	return params, nil
}
