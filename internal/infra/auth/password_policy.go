package auth

import (
	"unicode"
	"unicode/utf8"

	"todoapi/config"
	domainerrors "todoapi/internal/domain/errors"
	"todoapi/internal/domain/service"
)

const (
	defaultPasswordMinLength = 6
	// bcrypt ignores input past 72 bytes.
	defaultPasswordMaxLength = 72
)

type passwordPolicy struct {
	cfg config.PasswordStrengthConfig
}

// NewPasswordPolicy builds the policy from passwordStrength. A nil section yields
// the defaults: 6 to 72 characters and no character class rules.
func NewPasswordPolicy(cfg *config.Config) service.PasswordPolicy {
	policy := config.PasswordStrengthConfig{}
	if cfg != nil && cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}
	if policy.MinLength <= 0 {
		policy.MinLength = defaultPasswordMinLength
	}
	if policy.MaxLength <= 0 {
		policy.MaxLength = defaultPasswordMaxLength
	}

	return &passwordPolicy{cfg: policy}
}

// Validate returns ErrInvalidInput with the first violated rule as details.
func (p *passwordPolicy) Validate(password string) error {
	length := utf8.RuneCountInString(password)
	if length < p.cfg.MinLength {
		return domainerrors.ErrInvalidInput.WithDetails("password is too short")
	}
	if length > p.cfg.MaxLength || len(password) > defaultPasswordMaxLength {
		return domainerrors.ErrInvalidInput.WithDetails("password is too long")
	}
	if p.cfg.RequireUppercase && !containsRune(password, unicode.IsUpper) {
		return domainerrors.ErrInvalidInput.WithDetails("password must contain an uppercase letter")
	}
	if p.cfg.RequireLowercase && !containsRune(password, unicode.IsLower) {
		return domainerrors.ErrInvalidInput.WithDetails("password must contain a lowercase letter")
	}
	if p.cfg.RequireNumbers && !containsRune(password, unicode.IsDigit) {
		return domainerrors.ErrInvalidInput.WithDetails("password must contain a number")
	}
	if p.cfg.RequireSpecial && !containsRune(password, isSpecial) {
		return domainerrors.ErrInvalidInput.WithDetails("password must contain a special character")
	}

	return nil
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func containsRune(s string, match func(rune) bool) bool {
	for _, r := range s {
		if match(r) {
			return true
		}
	}

	return false
}
