// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"todoapi/config"
	deliverycontext "todoapi/internal/delivery/context"
	"todoapi/internal/domain/entity"
	domainerrors "todoapi/internal/domain/errors"
	"todoapi/internal/domain/repository"
	"todoapi/internal/domain/service"
	"todoapi/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Operation labels reported to the AuthRecorder.
const (
	authOpRegister = "register"
	authOpLogin    = "login"
	authOpResolve  = "resolve"
	authOpRevoke   = "revoke"
)

// dummyPassword is hashed once and checked against on unknown-email logins.
const dummyPassword = "todoapi-dummy-password"

// fallbackDummyHash is a well-formed bcrypt hash (cost 10) checked against while the
// configured hasher cannot produce a dummy hash, so unknown-email logins still pay for
// one verification.
const fallbackDummyHash = "$2a$10$XajjQvNhvvRt5GSeFk1xFeyqRrsxkhBkUiQeg0dt.wU1qD4aFDcga"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	identityRepo      repository.IdentityRepository
	hasher            service.PasswordHasher
	policy            service.PasswordPolicy
	codec             service.TokenCodec
	publisher         service.EventPublisher
	recorder          service.AuthRecorder
	validate          *validator.Validate
	maxActiveSessions int
	now               func() time.Time
	logger            *slog.Logger

	dummyMu   sync.Mutex
	dummyHash string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	IdentityRepo repository.IdentityRepository
	Hasher       service.PasswordHasher
	Policy       service.PasswordPolicy
	Codec        service.TokenCodec
	Publisher    service.EventPublisher
	Recorder     service.AuthRecorder
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &authService{
		txManager:         params.TxManager,
		identityRepo:      params.IdentityRepo,
		hasher:            params.Hasher,
		policy:            params.Policy,
		codec:             params.Codec,
		publisher:         params.Publisher,
		recorder:          params.Recorder,
		validate:          validator.New(),
		maxActiveSessions: maxActiveSessions,
		now:               time.Now,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the identity and its first token in one transaction.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	output, err := srv.register(ctx, input)
	srv.recorder.RecordAuth(authOpRegister, authOutcome(err))

	return output, err
}

func (srv *authService) register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if err := srv.validate.Var(input.Email, "required,email"); err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("invalid email")
	}
	if err := srv.policy.Validate(input.Password); err != nil {
		return nil, err
	}

	// bcrypt is CPU-bound; keep it outside the transaction.
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	identity := &entity.Identity{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hash,
		Tokens:       []entity.IdentityToken{},
	}

	var token string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.IdentityRepo()

		if err := identityRepo.Create(ctx, identity); err != nil {
			if errors.Is(err, repository.ErrIdentityEmailExists) {
				return domainerrors.ErrEmailInUse
			}

			return errors.Wrap(err, "failed to create identity")
		}

		var issueErr error
		token, issueErr = srv.appendToken(ctx, identityRepo, identity)

		return issueErr
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrEmailInUse) {
			srv.log(ctx).Info("Registration rejected, email in use")

			return nil, err
		}
		srv.log(ctx).Error("Failed to execute registration transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("identityID", identity.ID))
	srv.publish(ctx, service.AuthEventRegistered, identity.ID)
	srv.publish(ctx, service.AuthEventTokenIssued, identity.ID)

	return &usecase.AuthOutput{Identity: identity, Token: token}, nil
}

// Login verifies credentials and issues a new token. Unknown email and wrong
// password are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	output, err := srv.login(ctx, input)
	srv.recorder.RecordAuth(authOpLogin, authOutcome(err))

	return output, err
}

func (srv *authService) login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	identity, err := srv.identityRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			srv.hasher.Check(input.Password, srv.getDummyHash(ctx))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find identity")
	}

	if !srv.hasher.Check(input.Password, identity.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.IssueToken(ctx, identity)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{Identity: identity, Token: token}, nil
}

// IssueToken signs a token for identity and appends it to the persisted list.
// With a session cap configured the oldest tokens are dropped in the same transaction.
func (srv *authService) IssueToken(ctx context.Context, identity *entity.Identity) (string, error) {
	var token string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		token, err = srv.appendToken(ctx, repoFactory.IdentityRepo(), identity)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("identityID", identity.ID), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to issue token")
	}

	srv.publish(ctx, service.AuthEventTokenIssued, identity.ID)

	return token, nil
}

func (srv *authService) appendToken(ctx context.Context, identityRepo repository.IdentityRepository, identity *entity.Identity) (string, error) {
	token, err := srv.codec.Issue(service.TokenPayload{OwnerID: identity.ID, Purpose: entity.TokenAccessAuth})
	if err != nil {
		return "", domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	entry := entity.IdentityToken{Token: token, Access: entity.TokenAccessAuth}
	if err := identityRepo.AppendToken(ctx, identity.ID, entry); err != nil {
		return "", errors.Wrap(err, "failed to store token")
	}
	identity.AddToken(entry.Token, entry.Access)

	if srv.maxActiveSessions > 0 {
		if err := identityRepo.RemoveOldestTokens(ctx, identity.ID, srv.maxActiveSessions); err != nil {
			return "", errors.Wrap(err, "failed to enforce session limit")
		}
		if excess := len(identity.Tokens) - srv.maxActiveSessions; excess > 0 {
			identity.Tokens = identity.Tokens[excess:]
		}
	}

	return token, nil
}

// ResolveToken maps a presented token to its live owner.
func (srv *authService) ResolveToken(ctx context.Context, token string) (*entity.Identity, error) {
	identity, err := srv.resolveToken(ctx, token)
	srv.recorder.RecordAuth(authOpResolve, authOutcome(err))

	return identity, err
}

func (srv *authService) resolveToken(ctx context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	payload, err := srv.codec.Verify(token)
	if err != nil {
		srv.log(ctx).Debug("Token verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthorized
	}
	if payload.Purpose != entity.TokenAccessAuth {
		return nil, domainerrors.ErrUnauthorized
	}

	identity, err := srv.identityRepo.FindByID(ctx, payload.OwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, errors.Wrap(err, "failed to load identity")
	}

	if !identity.HasToken(token) {
		return nil, domainerrors.ErrUnauthorized
	}

	return identity, nil
}

// RevokeToken removes the exact token. Revoking an absent token succeeds.
func (srv *authService) RevokeToken(ctx context.Context, identity *entity.Identity, token string) error {
	err := srv.revokeToken(ctx, identity, token)
	srv.recorder.RecordAuth(authOpRevoke, authOutcome(err))

	return err
}

func (srv *authService) revokeToken(ctx context.Context, identity *entity.Identity, token string) error {
	if identity == nil {
		return domainerrors.ErrUnauthorized
	}

	if err := srv.identityRepo.RemoveToken(ctx, identity.ID, token); err != nil {
		srv.log(ctx).Error("Failed to revoke token", slog.Any("identityID", identity.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke token")
	}

	if identity.RemoveToken(token) {
		srv.publish(ctx, service.AuthEventTokenRevoked, identity.ID)
	}

	return nil
}

// getDummyHash hashes dummyPassword on first use and caches it. A failed attempt is
// retried on the next call and answered with fallbackDummyHash meanwhile.
func (srv *authService) getDummyHash(ctx context.Context) string {
	srv.dummyMu.Lock()
	defer srv.dummyMu.Unlock()

	if srv.dummyHash != "" {
		return srv.dummyHash
	}

	hash, err := srv.hasher.Hash(dummyPassword)
	if err != nil || hash == "" {
		srv.log(ctx).Warn("Failed to prepare dummy hash, using fallback", slog.Any("error", err))

		return fallbackDummyHash
	}
	srv.dummyHash = hash

	return hash
}

// publish sends an auth event. Failures are logged and never surface to the caller.
func (srv *authService) publish(ctx context.Context, eventType service.AuthEventType, identityID uuid.UUID) {
	event := &service.AuthEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		IdentityID: identityID.String(),
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishAuthEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish auth event",
			slog.String("type", string(eventType)),
			slog.Any("identityID", identityID),
			slog.Any("error", err),
		)
	}
}

func authOutcome(err error) string {
	switch {
	case err == nil:
		return service.AuthOutcomeSuccess
	case errors.Is(err, domainerrors.ErrInvalidInput):
		return service.AuthOutcomeInvalidInput
	case errors.Is(err, domainerrors.ErrEmailInUse):
		return service.AuthOutcomeDuplicateEmail
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return service.AuthOutcomeInvalidCredentials
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return service.AuthOutcomeUnauthorized
	default:
		return service.AuthOutcomeError
	}
}
