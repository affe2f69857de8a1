package auth

import (
	"strings"

	"todoapi/config"
	"todoapi/internal/domain/service"
	"todoapi/internal/errors"
)

// multiHasher hashes with the configured algorithm and checks any supported format,
// so stored hashes keep working after auth.passwordHasher changes.
type multiHasher struct {
	primary service.PasswordHasher
	bcrypt  service.PasswordHasher
	argon2  service.PasswordHasher
}

// NewPasswordHasher builds the PasswordHasher selected by auth.passwordHasher.
func NewPasswordHasher(cfg *config.Config) (service.PasswordHasher, error) {
	authCfg := cfg.Auth
	if authCfg == nil {
		authCfg = &config.AuthConfig{}
	}

	hasher := &multiHasher{
		bcrypt: NewBcryptHasherWithCost(authCfg.BcryptCost),
		argon2: NewArgon2Hasher(argon2ParamsFromConfig(authCfg.Argon2)),
	}

	switch authCfg.PasswordHasher {
	case "", config.PasswordHasherBcrypt:
		hasher.primary = hasher.bcrypt
	case config.PasswordHasherArgon2id:
		hasher.primary = hasher.argon2
	default:
		return nil, errors.Errorf("unknown password hasher: %s", authCfg.PasswordHasher)
	}

	return hasher, nil
}

func (h *multiHasher) Hash(password string) (string, error) {
	return h.primary.Hash(password)
}

func (h *multiHasher) Check(password, hash string) bool {
	if strings.HasPrefix(hash, argon2idPrefix) {
		return h.argon2.Check(password, hash)
	}

	return h.bcrypt.Check(password, hash)
}
