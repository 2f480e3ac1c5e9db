package postgres

import (
	"context"

	"gorm.io/gorm"

	"budget/internal/domain/entity"
	"budget/internal/domain/repository"
	"budget/internal/errors"
	"budget/internal/infra/persistence/model"
)

var transactionConstraints = constraintFallback{
	repository.ForeignKeyViolation: repository.ConstraintTransactionPlace,
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

// withRelations preloads the slim user projection and the place.
func (repo *transactionRepository) withRelations(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Preload("Place")
}

func scopeOwner(db *gorm.DB, ownerID int) *gorm.DB {
	if ownerID == 0 {
		return db
	}

	return db.Where("user_id = ?", ownerID)
}

func (repo *transactionRepository) Find(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	query := repo.withRelations(ctx)
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.PlaceID != 0 {
		query = query.Where("place_id = ?", filter.PlaceID)
	}

	var rows []*model.TransactionModel
	if err := query.Order("date DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	transactions := make([]*entity.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, row.ToDomain())
	}

	return transactions, nil
}

func (repo *transactionRepository) FindByID(ctx context.Context, id, ownerID int) (*entity.Transaction, error) {
	var row model.TransactionModel
	query := scopeOwner(repo.withRelations(ctx).Where("id = ?", id), ownerID)
	if err := query.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrTransactionNotFound)
		}

		return nil, errors.Wrap(err, "failed to find transaction by id")
	}

	return row.ToDomain(), nil
}

func (repo *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	row := model.FromTransactionDomain(transaction)
	if err := repo.db.WithContext(ctx).Omit("User", "Place").Create(row).Error; err != nil {
		return errors.Wrap(toConstraintError(err, transactionConstraints), "failed to create transaction")
	}

	transaction.ID = row.ID
	transaction.CreatedAt = row.CreatedAt
	transaction.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction, ownerID int) error {
	query := repo.db.WithContext(ctx).Model(&model.TransactionModel{}).Where("id = ?", transaction.ID)
	result := scopeOwner(query, ownerID).Updates(map[string]any{
		"amount":   transaction.Amount,
		"date":     transaction.Date,
		"place_id": transaction.PlaceID,
	})
	if result.Error != nil {
		return errors.Wrap(toConstraintError(result.Error, transactionConstraints), "failed to update transaction")
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(repository.ErrTransactionNotFound)
	}

	return nil
}

func (repo *transactionRepository) Delete(ctx context.Context, id, ownerID int) error {
	query := repo.db.WithContext(ctx).Where("id = ?", id)
	result := scopeOwner(query, ownerID).Delete(&model.TransactionModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete transaction")
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(repository.ErrTransactionNotFound)
	}

	return nil
}
