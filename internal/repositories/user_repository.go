package repositories

import (
	"context"
	"errors"

	"wander/internal/models/db_models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	Update(ctx context.Context, user *db_models.User) error
	FindByID(ctx context.Context, id string) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	FindByUsername(ctx context.Context, username string) (*db_models.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*db_models.User, error)
	CountTrips(ctx context.Context, userID string) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*db_models.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *userRepository) FindByGoogleID(ctx context.Context, googleID string) (*db_models.User, error) {
	return r.findOne(ctx, "google_id = ?", googleID)
}

func (r *userRepository) CountTrips(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.SavedTrip{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *userRepository) findOne(ctx context.Context, query string, arg interface{}) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, query, arg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
