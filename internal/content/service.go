package content

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/divinedarshan/divine-darshan-backend/utils"
)

type Service interface {
	ListTestimonials(ctx context.Context) ([]Testimonial, error)
	CreateTestimonial(ctx context.Context, t *Testimonial) (*Testimonial, error)
	UpdateTestimonial(ctx context.Context, id uint, t *Testimonial) (*Testimonial, error)
	DeleteTestimonial(ctx context.Context, id uint) error

	GetSeasonalEvent(ctx context.Context) (*SeasonalEvent, error)
	UpdateSeasonalEvent(ctx context.Context, e *SeasonalEvent) (*SeasonalEvent, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListTestimonials(ctx context.Context) ([]Testimonial, error) {
	testimonials, err := s.repo.ListTestimonials(ctx)
	if err != nil {
		return nil, utils.PersistenceError(err)
	}
	return testimonials, nil
}

func (s *service) CreateTestimonial(ctx context.Context, t *Testimonial) (*Testimonial, error) {
	if err := validateTestimonial(t); err != nil {
		return nil, err
	}

	t.ID = 0
	if err := s.repo.CreateTestimonial(ctx, t); err != nil {
		return nil, utils.PersistenceError(err)
	}
	return t, nil
}

func (s *service) UpdateTestimonial(ctx context.Context, id uint, t *Testimonial) (*Testimonial, error) {
	existing, err := s.repo.GetTestimonial(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("testimonial not found")
		}
		return nil, utils.PersistenceError(err)
	}
	if err := validateTestimonial(t); err != nil {
		return nil, err
	}

	t.ID = existing.ID
	t.CreatedAt = existing.CreatedAt
	if err := s.repo.UpdateTestimonial(ctx, t); err != nil {
		return nil, utils.PersistenceError(err)
	}
	return t, nil
}

func (s *service) DeleteTestimonial(ctx context.Context, id uint) error {
	if _, err := s.repo.GetTestimonial(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundError("testimonial not found")
		}
		return utils.PersistenceError(err)
	}
	if err := s.repo.DeleteTestimonial(ctx, id); err != nil {
		return utils.PersistenceError(err)
	}
	return nil
}

// GetSeasonalEvent returns the banner, or an empty one when none has been
// configured yet so the public page can render without a 404.
func (s *service) GetSeasonalEvent(ctx context.Context) (*SeasonalEvent, error) {
	e, err := s.repo.GetSeasonalEvent(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &SeasonalEvent{}, nil
		}
		return nil, utils.PersistenceError(err)
	}
	return e, nil
}

func (s *service) UpdateSeasonalEvent(ctx context.Context, e *SeasonalEvent) (*SeasonalEvent, error) {
	if err := validateSeasonalEvent(e); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetSeasonalEvent(ctx)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.PersistenceError(err)
	}
	if existing != nil {
		e.ID = existing.ID
	}

	if err := s.repo.SaveSeasonalEvent(ctx, e); err != nil {
		return nil, utils.PersistenceError(err)
	}
	return e, nil
}

func validateTestimonial(t *Testimonial) error {
	fields := map[string]string{}
	if strings.TrimSpace(t.Quote) == "" {
		fields["quote"] = "quote is required"
	}
	if strings.TrimSpace(t.Author) == "" {
		fields["author"] = "author is required"
	}
	if len(fields) > 0 {
		return utils.FieldValidationError(fields)
	}
	return nil
}

func validateSeasonalEvent(e *SeasonalEvent) error {
	fields := map[string]string{}
	if strings.TrimSpace(e.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(e.Description) == "" {
		fields["description"] = "description is required"
	}
	if e.ImageURL != "" && !utils.ValidImageURL(e.ImageURL) {
		fields["imageUrl"] = "image url must start with http:// or https://"
	}
	if len(fields) > 0 {
		return utils.FieldValidationError(fields)
	}
	return nil
}
