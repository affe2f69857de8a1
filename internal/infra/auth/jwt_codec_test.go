package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"todoapi/config"
	"todoapi/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "abc123"

func newTestCodec(t *testing.T) *jwtCodec {
	t.Helper()
	codec, err := newJWTCodec(testSecret, func() time.Time { return time.Unix(1_700_000_000, 0) })
	require.NoError(t, err)

	return codec
}

func TestNewJWTCodec_RequiresSecret(t *testing.T) {
	_, err := NewJWTCodec(&config.Config{})
	assert.Error(t, err)

	cfg := &config.Config{}
	cfg.SecretKey.Auth = testSecret
	codec, err := NewJWTCodec(cfg)
	require.NoError(t, err)
	assert.NotNil(t, codec)
}

func TestJWTCodec_RoundTrip(t *testing.T) {
	codec := newTestCodec(t)
	payload := service.TokenPayload{OwnerID: uuid.New(), Purpose: "auth"}

	token, err := codec.Issue(payload)
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	got, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, payload, *got)
}

func TestJWTCodec_IssueIsUnique(t *testing.T) {
	codec := newTestCodec(t)
	payload := service.TokenPayload{OwnerID: uuid.New(), Purpose: "auth"}

	first, err := codec.Issue(payload)
	require.NoError(t, err)
	second, err := codec.Issue(payload)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTCodec_ClaimNames(t *testing.T) {
	codec := newTestCodec(t)
	ownerID := uuid.New()

	token, err := codec.Issue(service.TokenPayload{OwnerID: ownerID, Purpose: "auth"})
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(strings.Split(token, ".")[1])
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, ownerID.String(), body["_id"])
	assert.Equal(t, "auth", body["access"])
	assert.EqualValues(t, 1_700_000_000, body["iat"])
	assert.NotEmpty(t, body["jti"])
	assert.NotContains(t, body, "exp")
}

func TestJWTCodec_FlippedSignatureFails(t *testing.T) {
	codec := newTestCodec(t)
	token, err := codec.Issue(service.TokenPayload{OwnerID: uuid.New(), Purpose: "auth"})
	require.NoError(t, err)

	sigStart := strings.LastIndex(token, ".") + 1
	for i := sigStart; i < len(token); i++ {
		replacement := byte('A')
		if token[i] == 'A' {
			replacement = 'B'
		}
		tampered := token[:i] + string(replacement) + token[i+1:]

		_, err := codec.Verify(tampered)
		assert.ErrorIs(t, err, service.ErrTokenVerification, "position %d", i)
	}
}

func TestJWTCodec_VerifyFailures(t *testing.T) {
	codec := newTestCodec(t)
	other, err := newJWTCodec("another-secret", time.Now)
	require.NoError(t, err)

	foreign, err := other.Issue(service.TokenPayload{OwnerID: uuid.New(), Purpose: "auth"})
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, tokenClaims{
		OwnerID: uuid.NewString(),
		Access:  "auth",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512Token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, tokenClaims{
		OwnerID: uuid.NewString(),
		Access:  "auth",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	badOwner, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		OwnerID: "not-a-uuid",
		Access:  "auth",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noPurpose, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		OwnerID: uuid.NewString(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := map[string]string{
		"empty":           "",
		"not a jwt":       "abc",
		"two segments":    "a.b",
		"wrong secret":    foreign,
		"alg none":        noneToken,
		"alg HS512":       hs512Token,
		"invalid owner":   badOwner,
		"missing purpose": noPurpose,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			payload, err := codec.Verify(token)
			assert.Nil(t, payload)
			assert.ErrorIs(t, err, service.ErrTokenVerification)
		})
	}
}
