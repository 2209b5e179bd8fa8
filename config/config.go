package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// PathEnv names the environment variable holding an optional YAML config file path.
const PathEnv = "BOOKX_CONFIG"

// Config defines the app configuration.
type Config struct {
	Server struct {
		Port     int    `yaml:"port" env:"PORT" env-default:"8080"`
		Env      string `yaml:"env" env:"ENV" env-default:"development"`
		BasePath string `yaml:"base_path" env:"BASEPATH" env-default:"/api"`
	} `yaml:"server"`
	Limiter struct {
		RPS     float64 `yaml:"rps" env:"RPS" env-default:"4"`
		Burst   int     `yaml:"burst" env:"BURST" env-default:"8"`
		Enabled bool    `yaml:"enabled" env:"LENABLED" env-default:"true"`
	} `yaml:"limiter"`
	Cors struct {
		TrustedOrigins []string `yaml:"trusted_origins" env:"TRUSTEDORIGINS" env-separator:" "`
	} `yaml:"cors"`
	Metrics struct {
		Enabled bool `yaml:"enabled" env:"MENABLED"`
	} `yaml:"metrics"`
	BasicAuth struct {
		Username string `yaml:"username" env:"USERNAME"`
		Password string `yaml:"password" env:"PASSWORD"`
	} `yaml:"basic_auth"`
	Session struct {
		TTL time.Duration `yaml:"ttl" env:"SESSIONTTL" env-default:"30m"`
	} `yaml:"session"`
	Catalog struct {
		Seed bool `yaml:"seed" env:"SEED"`
	} `yaml:"catalog"`
	Log struct {
		Level string `yaml:"level" env:"LOGLEVEL" env-default:"info"`
	} `yaml:"log"`
}

// Decode builds the configuration from an optional .env file, an optional YAML file named by
// BOOKX_CONFIG and the process environment. Environment variables override file values.
func Decode() (Config, error) {
	var cfg Config
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	if path := os.Getenv(PathEnv); path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return cfg, err
	}
	return cfg, nil
}
