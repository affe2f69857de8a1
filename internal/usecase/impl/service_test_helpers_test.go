package impl

import (
	"io"
	"log/slog"

	"todoapi/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			PasswordHasher:    config.PasswordHasherBcrypt,
			BcryptCost:        4,
			MaxActiveSessions: maxActiveSessions,
		},
	}
}
