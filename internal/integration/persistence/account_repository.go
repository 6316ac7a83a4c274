package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kairos-app/backend/internal/application/adapter"
	"github.com/kairos-app/backend/internal/domain/entity"
	domainerror "github.com/kairos-app/backend/internal/domain/error"
	"github.com/kairos-app/backend/internal/integration/persistence/model"
)

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(db *gorm.DB) adapter.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account in the database.
func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountFromEntity(account)
	result := r.db.WithContext(ctx).Create(accountModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an account by its ID.
func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountModel model.AccountModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAccountNotFound
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// FindByUserID retrieves all non-deleted accounts for a user.
func (r *accountRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error) {
	var accountModels []model.AccountModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for i := range accountModels {
		accounts = append(accounts, accountModels[i].ToEntity())
	}
	return accounts, nil
}
