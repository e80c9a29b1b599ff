package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	envPrefix   = "FSHARE"
	confFileEnv = "FSHARE_CONF_FILE"

	AuthStrategyFile = "auth_file"
	AuthStrategyPAM  = "pam"
)

type Config struct {
	Host     string `envconfig:"HOST" default:"127.0.0.1"`
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	UploadDir            string `envconfig:"UPLOAD_DIR"`
	MaxUploadSize        int64  `envconfig:"MAX_UPLOAD_SIZE" default:"1000000000"`
	MaxConcurrentUploads int64  `envconfig:"MAX_CONCURRENT_UPLOADS" default:"4"`

	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"0s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"0s"`

	AuthStrategy   string `envconfig:"AUTH_STRATEGY" default:"auth_file"`
	AuthUsersFile  string `envconfig:"AUTH_USERS_FILE" default:"users.txt"`
	AuthPAMService string `envconfig:"AUTH_PAM_SERVICE"`

	MetricsPath string `envconfig:"METRICS_PATH" default:"/metrics"`
}

// Load reads an optional dotenv file and then the FSHARE_* environment.
// file takes precedence over FSHARE_CONF_FILE; without either, ./.env is
// loaded if present.
func Load(file string) (*Config, error) {
	if file == "" {
		file = os.Getenv(confFileEnv)
	}

	if file != "" {
		if err := godotenv.Load(file); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrConfigFile, file, err)
		}
	} else {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInit, err)
	}

	if cfg.UploadDir == "" {
		cfg.UploadDir = os.TempDir()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("%w: MAX_UPLOAD_SIZE должен быть больше нуля", ErrInit)
	}
	if c.MaxConcurrentUploads <= 0 {
		return fmt.Errorf("%w: MAX_CONCURRENT_UPLOADS должен быть больше нуля", ErrInit)
	}

	switch c.AuthStrategy {
	case AuthStrategyFile:
		if c.AuthUsersFile == "" {
			return fmt.Errorf("%w: не указан AUTH_USERS_FILE", ErrInit)
		}
	case AuthStrategyPAM:
		if c.AuthPAMService == "" {
			return fmt.Errorf("%w: не указан AUTH_PAM_SERVICE", ErrInit)
		}
	default:
		return fmt.Errorf("%w: неизвестная стратегия аутентификации %q", ErrInit, c.AuthStrategy)
	}

	return nil
}

func (c *Config) Address() string {
	return c.Host + ":" + c.HTTPPort
}
