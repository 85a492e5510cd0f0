package subscription

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, s *PrasadSubscription) error
	GetByID(ctx context.Context, id string) (*PrasadSubscription, error)
	Exists(ctx context.Context, paymentID string) (bool, error)
	ListByUser(ctx context.Context, userID uint) ([]PrasadSubscription, error)
	ListAll(ctx context.Context) ([]PrasadSubscription, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(ctx context.Context, s *PrasadSubscription) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*PrasadSubscription, error) {
	var s PrasadSubscription
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Exists(ctx context.Context, paymentID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&PrasadSubscription{}).Where("id = ?", paymentID).Count(&count).Error
	return count > 0, err
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]PrasadSubscription, error) {
	var subs []PrasadSubscription
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}

func (r *repository) ListAll(ctx context.Context) ([]PrasadSubscription, error) {
	var subs []PrasadSubscription
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&subs).Error
	return subs, err
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&PrasadSubscription{}).
		Where("id = ?", id).
		Update("status", status).Error
}
