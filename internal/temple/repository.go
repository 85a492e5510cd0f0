package temple

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context) ([]Temple, error)
	GetByID(ctx context.Context, id uint) (*Temple, error)
	Create(ctx context.Context, t *Temple) error
	Update(ctx context.Context, t *Temple) error
	Delete(ctx context.Context, id uint) error
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) List(ctx context.Context) ([]Temple, error) {
	var temples []Temple
	err := r.db.WithContext(ctx).Order("id").Find(&temples).Error
	return temples, err
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Temple, error) {
	var t Temple
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Create(ctx context.Context, t *Temple) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// Update replaces the whole row, nested JSONB collections included.
func (r *repository) Update(ctx context.Context, t *Temple) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Temple{}, id).Error
}
