package user

import (
	"context"

	"gorm.io/gorm"

	"github.com/divinedarshan/divine-darshan-backend/internal/auth"
)

type Repository interface {
	List(ctx context.Context) ([]auth.User, error)
	GetByID(ctx context.Context, id uint) (*auth.User, error)
	GetByEmail(ctx context.Context, email string) (*auth.User, error)
	Create(ctx context.Context, u *auth.User) error
	Update(ctx context.Context, u *auth.User) error
	Delete(ctx context.Context, id uint) error
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) List(ctx context.Context) ([]auth.User, error) {
	var users []auth.User
	err := r.db.WithContext(ctx).Order("id").Find(&users).Error
	return users, err
}

func (r *repository) GetByID(ctx context.Context, id uint) (*auth.User, error) {
	var u auth.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	var u auth.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) Create(ctx context.Context, u *auth.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) Update(ctx context.Context, u *auth.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&auth.User{}, id).Error
}
