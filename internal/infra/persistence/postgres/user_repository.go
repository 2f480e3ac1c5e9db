// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"budget/internal/domain/entity"
	"budget/internal/domain/repository"
	"budget/internal/errors"
	"budget/internal/infra/persistence/model"
)

var userConstraints = constraintFallback{
	repository.UniqueViolation: repository.ConstraintUserEmailUnique,
}

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindAll returns every user ordered by id.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var rows []*model.UserModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.ToDomain())
	}

	return users, nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id int) (*entity.User, error) {
	var row model.UserModel
	if err := repo.db.WithContext(ctx).First(&row, id).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return row.ToDomain(), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var row model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return row.ToDomain(), nil
}

// Create persists a new user and copies the generated ID and timestamps back.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	row := model.FromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return errors.Wrap(toConstraintError(err, userConstraints), "failed to create user")
	}

	user.ID = row.ID
	user.CreatedAt = row.CreatedAt
	user.UpdatedAt = row.UpdatedAt

	return nil
}

// Update modifies the name and email of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{ID: user.ID}).
		Updates(map[string]any{
			"name":  user.Name,
			"email": user.Email,
		})
	if result.Error != nil {
		return errors.Wrap(toConstraintError(result.Error, userConstraints), "failed to update user")
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(repository.ErrUserNotFound)
	}

	return nil
}

// Delete removes a user; the foreign keys cascade to their transactions.
func (repo *userRepository) Delete(ctx context.Context, id int) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(repository.ErrUserNotFound)
	}

	return nil
}
