package content

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	ListTestimonials(ctx context.Context) ([]Testimonial, error)
	GetTestimonial(ctx context.Context, id uint) (*Testimonial, error)
	CreateTestimonial(ctx context.Context, t *Testimonial) error
	UpdateTestimonial(ctx context.Context, t *Testimonial) error
	DeleteTestimonial(ctx context.Context, id uint) error

	GetSeasonalEvent(ctx context.Context) (*SeasonalEvent, error)
	SaveSeasonalEvent(ctx context.Context, e *SeasonalEvent) error
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) ListTestimonials(ctx context.Context) ([]Testimonial, error) {
	var testimonials []Testimonial
	err := r.db.WithContext(ctx).Order("id").Find(&testimonials).Error
	return testimonials, err
}

func (r *repository) GetTestimonial(ctx context.Context, id uint) (*Testimonial, error) {
	var t Testimonial
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) CreateTestimonial(ctx context.Context, t *Testimonial) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) UpdateTestimonial(ctx context.Context, t *Testimonial) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) DeleteTestimonial(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Testimonial{}, id).Error
}

// GetSeasonalEvent returns the single banner row.
func (r *repository) GetSeasonalEvent(ctx context.Context) (*SeasonalEvent, error) {
	var e SeasonalEvent
	if err := r.db.WithContext(ctx).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) SaveSeasonalEvent(ctx context.Context, e *SeasonalEvent) error {
	return r.db.WithContext(ctx).Save(e).Error
}
