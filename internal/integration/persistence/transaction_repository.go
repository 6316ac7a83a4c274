package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/kairos-app/backend/internal/application/adapter"
	"github.com/kairos-app/backend/internal/domain/entity"
	domainerror "github.com/kairos-app/backend/internal/domain/error"
	"github.com/kairos-app/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByFilter retrieves non-deleted transactions matching the filter,
// newest first.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.applyFilter(ctx, filter).
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, transactionModels[i].ToEntity())
	}
	return transactions, nil
}

// CountByTypeAndRange counts a user's transactions of one type with a date
// inside [start, end].
func (r *transactionRepository) CountByTypeAndRange(ctx context.Context, userID uuid.UUID, transactionType entity.TransactionType, start, end time.Time) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.TransactionModel{}).
		Where("user_id = ? AND type = ? AND date >= ? AND date <= ?", userID, string(transactionType), start, end).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// GetTotals aggregates credit/debit totals for the filter. Sums run over the
// exact decimal column values, not floats.
func (r *transactionRepository) GetTotals(ctx context.Context, filter adapter.TransactionFilter) (*entity.TransactionTotals, error) {
	var rows []struct {
		Type  string
		Total decimal.Decimal
	}

	result := r.applyFilter(ctx, filter).
		Model(&model.TransactionModel{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Group("type").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	totals := &entity.TransactionTotals{
		CreditTotal: decimal.Zero,
		DebitTotal:  decimal.Zero,
	}
	for _, row := range rows {
		switch entity.TransactionType(row.Type) {
		case entity.TransactionTypeCredit:
			totals.CreditTotal = row.Total
		case entity.TransactionTypeDebit:
			totals.DebitTotal = row.Total
		}
	}
	totals.NetTotal = totals.CreditTotal.Sub(totals.DebitTotal)

	return totals, nil
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Save(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a transaction from the database (soft delete).
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// applyFilter builds the base query for a transaction filter.
func (r *transactionRepository) applyFilter(ctx context.Context, filter adapter.TransactionFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Where("user_id = ?", filter.UserID)

	if filter.AccountID != nil {
		query = query.Where("account_id = ?", *filter.AccountID)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}

	return query
}
