package booking

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	Exists(ctx context.Context, paymentID string) (bool, error)
	ListByUser(ctx context.Context, userID uint) ([]Booking, error)
	ListAll(ctx context.Context) ([]Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(ctx context.Context, b *Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Booking, error) {
	var b Booking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) Exists(ctx context.Context, paymentID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Booking{}).Where("id = ?", paymentID).Count(&count).Error
	return count > 0, err
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) ListAll(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Booking{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
