package service

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context) ([]Service, error)
	GetByID(ctx context.Context, id uint) (*Service, error)
	Create(ctx context.Context, s *Service) error
	Update(ctx context.Context, s *Service) error
	Delete(ctx context.Context, id uint) error
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) List(ctx context.Context) ([]Service, error) {
	var services []Service
	err := r.db.WithContext(ctx).Order("id").Find(&services).Error
	return services, err
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Service, error) {
	var s Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Create(ctx context.Context, s *Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) Update(ctx context.Context, s *Service) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Service{}, id).Error
}
