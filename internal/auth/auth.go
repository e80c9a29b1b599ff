package auth

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/sunr3d/fshare/internal/config"
)

type Authenticator interface {
	Authenticate(username, password string) bool
}

// New picks the backend named by cfg.AuthStrategy.
func New(log *zap.Logger, cfg *config.Config) (Authenticator, error) {
	switch cfg.AuthStrategy {
	case config.AuthStrategyFile:
		a, err := NewFile(cfg.AuthUsersFile)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInit, err)
		}
		log.Info("аутентификация по файлу пользователей", zap.String("path", cfg.AuthUsersFile))
		return a, nil
	case config.AuthStrategyPAM:
		a, err := NewPAM(cfg.AuthPAMService)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInit, err)
		}
		log.Info("аутентификация через PAM", zap.String("service", cfg.AuthPAMService))
		return a, nil
	default:
		return nil, fmt.Errorf("%w: неизвестная стратегия %q", ErrInit, cfg.AuthStrategy)
	}
}
