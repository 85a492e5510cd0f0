package temple

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/divinedarshan/divine-darshan-backend/utils"
)

type Service interface {
	List(ctx context.Context) ([]Temple, error)
	Get(ctx context.Context, id uint) (*Temple, error)
	Create(ctx context.Context, t *Temple) (*Temple, error)
	Update(ctx context.Context, id uint, t *Temple) (*Temple, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Temple, error) {
	temples, err := s.repo.List(ctx)
	if err != nil {
		return nil, utils.PersistenceError(err)
	}
	return temples, nil
}

func (s *service) Get(ctx context.Context, id uint) (*Temple, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("temple not found")
		}
		return nil, utils.PersistenceError(err)
	}
	return t, nil
}

func (s *service) Create(ctx context.Context, t *Temple) (*Temple, error) {
	if err := validateTemple(t); err != nil {
		return nil, err
	}
	assignCollectionIDs(t)

	t.ID = 0
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, utils.PersistenceError(err)
	}
	return t, nil
}

// Update is a whole-document replacement: the client submits the full temple
// and the stored row is overwritten. New pujas/prasads (id 0) get the next
// free id within the document.
func (s *service) Update(ctx context.Context, id uint, t *Temple) (*Temple, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("temple not found")
		}
		return nil, utils.PersistenceError(err)
	}

	if err := validateTemple(t); err != nil {
		return nil, err
	}
	assignCollectionIDs(t)

	t.ID = existing.ID
	t.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, utils.PersistenceError(err)
	}
	return t, nil
}

// Delete removes the temple only. Bookings keep their denormalized name keys,
// so existing records stay readable after the temple is gone.
func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundError("temple not found")
		}
		return utils.PersistenceError(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return utils.PersistenceError(err)
	}
	return nil
}

func validateTemple(t *Temple) error {
	fields := map[string]string{}
	if t.NameKey == "" {
		fields["nameKey"] = "name is required"
	}
	if t.LocationKey == "" {
		fields["locationKey"] = "location is required"
	}
	if t.DeityKey == "" {
		fields["deityKey"] = "deity is required"
	}
	if t.ImageURL != "" && !utils.ValidImageURL(t.ImageURL) {
		fields["imageUrl"] = "image must be a valid http(s) URL"
	}
	for _, p := range t.Pujas {
		if p.NameKey == "" {
			fields["pujas"] = "every puja needs a name"
		}
		if p.Price < 0 {
			fields["pujas"] = "puja price cannot be negative"
		}
	}
	if len(fields) > 0 {
		return utils.FieldValidationError(fields)
	}
	return nil
}

// assignCollectionIDs gives new embedded entries an id of max(existing)+1,
// scoped to this temple document.
func assignCollectionIDs(t *Temple) {
	var maxPuja uint
	for _, p := range t.Pujas {
		if p.ID > maxPuja {
			maxPuja = p.ID
		}
	}
	for i := range t.Pujas {
		if t.Pujas[i].ID == 0 {
			maxPuja++
			t.Pujas[i].ID = maxPuja
		}
	}

	var maxPrasad uint
	for _, p := range t.AvailablePrasads {
		if p.ID > maxPrasad {
			maxPrasad = p.ID
		}
	}
	for i := range t.AvailablePrasads {
		if t.AvailablePrasads[i].ID == 0 {
			maxPrasad++
			t.AvailablePrasads[i].ID = maxPrasad
		}
	}
}
