package postgres

import (
	"context"

	"gorm.io/gorm"

	"budget/internal/domain/entity"
	"budget/internal/domain/repository"
	"budget/internal/errors"
	"budget/internal/infra/persistence/model"
)

var placeConstraints = constraintFallback{
	repository.UniqueViolation: repository.ConstraintPlaceNameUnique,
}

type placeRepository struct {
	db *gorm.DB
}

// NewPlaceRepository is the constructor for placeRepository.
func NewPlaceRepository(db *gorm.DB) repository.PlaceRepository {
	return &placeRepository{db: db}
}

func (repo *placeRepository) FindAll(ctx context.Context) ([]*entity.Place, error) {
	var rows []*model.PlaceModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list places")
	}

	places := make([]*entity.Place, 0, len(rows))
	for _, row := range rows {
		places = append(places, row.ToDomain())
	}

	return places, nil
}

func (repo *placeRepository) FindByID(ctx context.Context, id int) (*entity.Place, error) {
	var row model.PlaceModel
	if err := repo.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrPlaceNotFound)
		}

		return nil, errors.Wrap(err, "failed to find place by id")
	}

	return row.ToDomain(), nil
}

func (repo *placeRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.PlaceModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check place existence")
	}

	return count > 0, nil
}

func (repo *placeRepository) Create(ctx context.Context, place *entity.Place) error {
	row := model.FromPlaceDomain(place)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return errors.Wrap(toConstraintError(err, placeConstraints), "failed to create place")
	}

	place.ID = row.ID
	place.CreatedAt = row.CreatedAt
	place.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *placeRepository) Update(ctx context.Context, place *entity.Place) error {
	// A map is used so a nil rating clears the column.
	result := repo.db.WithContext(ctx).
		Model(&model.PlaceModel{ID: place.ID}).
		Updates(map[string]any{
			"name":   place.Name,
			"rating": place.Rating,
		})
	if result.Error != nil {
		return errors.Wrap(toConstraintError(result.Error, placeConstraints), "failed to update place")
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(repository.ErrPlaceNotFound)
	}

	return nil
}

func (repo *placeRepository) Delete(ctx context.Context, id int) error {
	result := repo.db.WithContext(ctx).Delete(&model.PlaceModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete place")
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(repository.ErrPlaceNotFound)
	}

	return nil
}
