package repositories

import (
	"context"
	"errors"

	"wander/internal/models/db_models"

	"gorm.io/gorm"
)

type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.SavedTrip) error
	Update(ctx context.Context, trip *db_models.SavedTrip) error
	Delete(ctx context.Context, tripID, userID string) error
	FindByIDForUser(ctx context.Context, tripID, userID string) (*db_models.SavedTrip, error)
	ListByUser(ctx context.Context, userID string) ([]db_models.SavedTrip, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Insert(ctx context.Context, trip *db_models.SavedTrip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) Update(ctx context.Context, trip *db_models.SavedTrip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *tripRepository) Delete(ctx context.Context, tripID, userID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", tripID, userID).
		Delete(&db_models.SavedTrip{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *tripRepository) FindByIDForUser(ctx context.Context, tripID, userID string) (*db_models.SavedTrip, error) {
	var trip db_models.SavedTrip
	err := r.db.WithContext(ctx).
		First(&trip, "id = ? AND user_id = ?", tripID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

// ListByUser orders favorites first, then most recently updated.
func (r *tripRepository) ListByUser(ctx context.Context, userID string) ([]db_models.SavedTrip, error) {
	var trips []db_models.SavedTrip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_favorite DESC").
		Order("updated_at DESC").
		Find(&trips).Error
	return trips, err
}
