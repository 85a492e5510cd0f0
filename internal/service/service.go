package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/divinedarshan/divine-darshan-backend/utils"
)

type Svc interface {
	List(ctx context.Context) ([]Service, error)
	Create(ctx context.Context, s *Service) (*Service, error)
	Update(ctx context.Context, id uint, s *Service) (*Service, error)
	Delete(ctx context.Context, id uint) error
}

type svc struct {
	repo Repository
}

func NewService(repo Repository) Svc {
	return &svc{repo: repo}
}

func (s *svc) List(ctx context.Context) ([]Service, error) {
	services, err := s.repo.List(ctx)
	if err != nil {
		return nil, utils.PersistenceError(err)
	}
	return services, nil
}

func (s *svc) Create(ctx context.Context, in *Service) (*Service, error) {
	if err := validateService(in); err != nil {
		return nil, err
	}

	in.ID = 0
	if err := s.repo.Create(ctx, in); err != nil {
		return nil, utils.PersistenceError(err)
	}
	return in, nil
}

func (s *svc) Update(ctx context.Context, id uint, in *Service) (*Service, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("service not found")
		}
		return nil, utils.PersistenceError(err)
	}
	if err := validateService(in); err != nil {
		return nil, err
	}

	in.ID = existing.ID
	in.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, in); err != nil {
		return nil, utils.PersistenceError(err)
	}
	return in, nil
}

func (s *svc) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundError("service not found")
		}
		return utils.PersistenceError(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return utils.PersistenceError(err)
	}
	return nil
}

func validateService(in *Service) error {
	fields := map[string]string{}
	if strings.TrimSpace(in.TitleKey) == "" {
		fields["titleKey"] = "title key is required"
	}
	if strings.TrimSpace(in.DescriptionKey) == "" {
		fields["descriptionKey"] = "description key is required"
	}
	if !AllowedIcons[in.Icon] {
		fields["icon"] = "icon must be one of: " + strings.Join(iconNames(), ", ")
	}
	if len(fields) > 0 {
		return utils.FieldValidationError(fields)
	}
	return nil
}

func iconNames() []string {
	names := make([]string, 0, len(AllowedIcons))
	for name := range AllowedIcons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
