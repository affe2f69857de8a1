package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"todoapi/config"
	"todoapi/internal/domain/service"
	"todoapi/internal/errors"
)

// tokenClaims is the signed body: {"_id", "access", "iat", "jti"}.
type tokenClaims struct {
	OwnerID string `json:"_id"`
	Access  string `json:"access"`
	jwt.RegisteredClaims
}

// jwtCodec is a concrete implementation of the TokenCodec interface using HS256 JWTs.
type jwtCodec struct {
	secret []byte
	now    func() time.Time
}

// NewJWTCodec reads secretKey.auth and fails when it is empty.
func NewJWTCodec(cfg *config.Config) (service.TokenCodec, error) {
	return newJWTCodec(cfg.SecretKey.Auth, time.Now)
}

func newJWTCodec(secret string, now func() time.Time) (*jwtCodec, error) {
	if secret == "" {
		return nil, errors.New("auth token secret must be provided")
	}

	return &jwtCodec{secret: []byte(secret), now: now}, nil
}

// Issue signs payload. Each token gets a random jti, so two tokens for the same
// payload never collide.
func (c *jwtCodec) Issue(payload service.TokenPayload) (string, error) {
	claims := tokenClaims{
		OwnerID: payload.OwnerID.String(),
		Access:  payload.Purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(c.now()),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify accepts only HS256 tokens with canonical base64url segments.
func (c *jwtCodec) Verify(token string) (*service.TokenPayload, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithStrictDecoding(),
	)
	if err != nil || !parsed.Valid {
		return nil, service.ErrTokenVerification
	}

	ownerID, err := uuid.Parse(claims.OwnerID)
	if err != nil || claims.Access == "" {
		return nil, service.ErrTokenVerification
	}

	return &service.TokenPayload{OwnerID: ownerID, Purpose: claims.Access}, nil
}
