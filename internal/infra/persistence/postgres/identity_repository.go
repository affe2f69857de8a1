package postgres

import (
	"context"

	"todoapi/internal/domain/entity"
	domainerrors "todoapi/internal/domain/errors"
	"todoapi/internal/domain/repository"
	"todoapi/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// identityRepository implements repository.IdentityRepository using GORM.
type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository returns an IdentityRepository backed by db. db may be a transaction.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{db: db}
}

func preloadTokens(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// FindByID retrieves an identity with its tokens ordered by issuance.
func (repo *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	var identityM model.IdentityModel
	err := repo.db.WithContext(ctx).
		Preload("Tokens", preloadTokens).
		Where("id = ?", id).
		First(&identityM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find identity by id")
	}

	return toIdentityDomain(&identityM), nil
}

// FindByEmail retrieves an identity by exact email.
func (repo *identityRepository) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	var identityM model.IdentityModel
	err := repo.db.WithContext(ctx).
		Preload("Tokens", preloadTokens).
		Where("email = ?", email).
		First(&identityM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find identity by email")
	}

	return toIdentityDomain(&identityM), nil
}

// Create inserts the identity row only. Tokens are written through AppendToken.
func (repo *identityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	if identity.ID == uuid.Nil {
		identity.ID = uuid.New()
	}

	identityM := fromIdentityDomain(identity)
	if err := repo.db.WithContext(ctx).Omit("Tokens").Create(identityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrIdentityEmailExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create identity")
	}

	identity.CreatedAt = identityM.CreatedAt
	identity.UpdatedAt = identityM.UpdatedAt

	return nil
}

// AppendToken inserts one row, so concurrent logins for the same identity never
// overwrite each other. A token already present is skipped with ON CONFLICT DO NOTHING,
// which keeps an enclosing transaction usable.
func (repo *identityRepository) AppendToken(ctx context.Context, identityID uuid.UUID, token entity.IdentityToken) error {
	tokenM := &model.IdentityTokenModel{
		IdentityID: identityID,
		Token:      token.Token,
		Access:     token.Access,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "token"}}, DoNothing: true}).
		Create(tokenM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrIdentityNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append identity token")
	}

	return nil
}

func (repo *identityRepository) RemoveToken(ctx context.Context, identityID uuid.UUID, token string) error {
	err := repo.db.WithContext(ctx).
		Where("identity_id = ? AND token = ?", identityID, token).
		Delete(&model.IdentityTokenModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove identity token")
	}

	return nil
}

func (repo *identityRepository) RemoveOldestTokens(ctx context.Context, identityID uuid.UUID, keep int) error {
	if keep < 0 {
		keep = 0
	}

	newest := repo.db.WithContext(ctx).
		Model(&model.IdentityTokenModel{}).
		Select("id").
		Where("identity_id = ?", identityID).
		Order("id DESC").
		Limit(keep)

	err := repo.db.WithContext(ctx).
		Where("identity_id = ? AND id NOT IN (?)", identityID, newest).
		Delete(&model.IdentityTokenModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to trim identity tokens")
	}

	return nil
}

func toIdentityDomain(data *model.IdentityModel) *entity.Identity {
	if data == nil {
		return nil
	}

	identity := &entity.Identity{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Tokens:       make([]entity.IdentityToken, 0, len(data.Tokens)),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	for _, t := range data.Tokens {
		identity.Tokens = append(identity.Tokens, entity.IdentityToken{Token: t.Token, Access: t.Access})
	}

	return identity
}

func fromIdentityDomain(data *entity.Identity) *model.IdentityModel {
	if data == nil {
		return nil
	}

	return &model.IdentityModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
