package auth

import (
	"strings"
	"testing"

	"todoapi/config"
	domainerrors "todoapi/internal/domain/errors"
	"todoapi/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestPasswordPolicy_Defaults(t *testing.T) {
	policy := NewPasswordPolicy(&config.Config{})

	assert.NoError(t, policy.Validate("abc123"))
	assert.NoError(t, policy.Validate(strings.Repeat("a", 72)))

	err := policy.Validate("abc12")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))

	err = policy.Validate(strings.Repeat("a", 73))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestPasswordPolicy_CharacterClasses(t *testing.T) {
	policy := NewPasswordPolicy(&config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	})

	testCases := []struct {
		password    string
		wantDetails string
	}{
		{"Ab1!", "password is too short"},
		{"password1!", "password must contain an uppercase letter"},
		{"PASSWORD1!", "password must contain a lowercase letter"},
		{"Password!!", "password must contain a number"},
		{"Password11", "password must contain a special character"},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			err := policy.Validate(tc.password)
			appErr, ok := errors.AsType[*domainerrors.BaseError](err)
			if assert.True(t, ok) {
				assert.Equal(t, tc.wantDetails, appErr.Details())
			}
		})
	}

	assert.NoError(t, policy.Validate("Pässwörd1!"))
}
