package subscription

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/divinedarshan/divine-darshan-backend/internal/auditlog"
	"github.com/divinedarshan/divine-darshan-backend/utils"
)

type CreateInput struct {
	PaymentID     string
	UserID        uint
	UserEmail     string
	PrasadNameKey string
	TempleNameKey string
	Frequency     string
	Price         float64
	FullName      string
	PhoneNumber   string
	Address       string
	IP            string
}

type Service interface {
	Create(ctx context.Context, in CreateInput) (*PrasadSubscription, error)
	ListByUser(ctx context.Context, userID uint) ([]PrasadSubscription, error)
	ListAll(ctx context.Context) ([]PrasadSubscription, error)
	Cancel(ctx context.Context, id string, userID uint, ip string) (*PrasadSubscription, error)
}

type service struct {
	repo     Repository
	auditSvc auditlog.Service
	now      func() time.Time
}

func NewService(repo Repository, auditSvc auditlog.Service) Service {
	return &service{repo: repo, auditSvc: auditSvc, now: time.Now}
}

// Create persists a prasad subscription after a successful checkout. The
// payment id is the subscription identity; the first delivery date is
// derived from the frequency at creation time.
func (s *service) Create(ctx context.Context, in CreateInput) (*PrasadSubscription, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, in.PaymentID)
	if err != nil {
		return nil, utils.PersistenceError(err)
	}
	if exists {
		return nil, utils.ValidationError("a subscription already exists for this payment")
	}

	phone, _ := utils.ValidateMobile(in.PhoneNumber)
	sub := &PrasadSubscription{
		ID:               in.PaymentID,
		UserID:           in.UserID,
		UserEmail:        in.UserEmail,
		PrasadNameKey:    in.PrasadNameKey,
		TempleNameKey:    in.TempleNameKey,
		Frequency:        in.Frequency,
		NextDeliveryDate: nextDelivery(s.now(), in.Frequency),
		Status:           StatusActive,
		Price:            in.Price,
		FullName:         in.FullName,
		PhoneNumber:      phone,
		Address:          in.Address,
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		// Payment is already captured: record the failure for manual
		// reconciliation.
		s.auditSvc.LogAction(ctx, &in.UserID, auditlog.ActionPaymentUnreconciled, map[string]interface{}{
			"payment_id": in.PaymentID,
			"kind":       "subscription",
			"error":      err.Error(),
		}, in.IP, "failure")
		return nil, utils.PersistenceError(err)
	}

	s.auditSvc.LogAction(ctx, &in.UserID, auditlog.ActionSubscriptionCreated, map[string]interface{}{
		"payment_id": in.PaymentID,
		"prasad":     in.PrasadNameKey,
		"frequency":  in.Frequency,
		"amount":     in.Price,
	}, in.IP, "success")
	return sub, nil
}

func (s *service) ListByUser(ctx context.Context, userID uint) ([]PrasadSubscription, error) {
	subs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.PersistenceError(err)
	}
	return subs, nil
}

func (s *service) ListAll(ctx context.Context) ([]PrasadSubscription, error) {
	subs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, utils.PersistenceError(err)
	}
	return subs, nil
}

// Cancel sets a subscription to Cancelled. Only the owner may cancel, and
// the state is terminal: cancelling twice is a no-op.
func (s *service) Cancel(ctx context.Context, id string, userID uint, ip string) (*PrasadSubscription, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("subscription not found")
		}
		return nil, utils.PersistenceError(err)
	}
	if sub.UserID != userID {
		return nil, utils.ForbiddenError("you can only cancel your own subscriptions")
	}
	if sub.Status == StatusCancelled {
		return sub, nil
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return nil, utils.PersistenceError(err)
	}
	sub.Status = StatusCancelled

	s.auditSvc.LogAction(ctx, &userID, auditlog.ActionSubscriptionCancelled, map[string]interface{}{
		"payment_id": id,
	}, ip, "success")
	return sub, nil
}

func nextDelivery(from time.Time, frequency string) string {
	months := 1
	if frequency == FrequencyQuarterly {
		months = 3
	}
	return from.AddDate(0, months, 0).Format("2006-01-02")
}

func validateCreate(in CreateInput) error {
	fields := utils.ContactFields(in.FullName, in.PhoneNumber)
	if in.PaymentID == "" {
		fields["id"] = "payment id is required"
	}
	if in.PrasadNameKey == "" {
		fields["prasadNameKey"] = "prasad is required"
	}
	if in.TempleNameKey == "" {
		fields["templeNameKey"] = "temple is required"
	}
	if in.Frequency != FrequencyMonthly && in.Frequency != FrequencyQuarterly {
		fields["frequency"] = "frequency must be Monthly or Quarterly"
	}
	if !utils.ValidAddress(in.Address) {
		fields["address"] = "delivery address must be at least 10 characters"
	}
	if in.Price <= 0 {
		fields["price"] = "price must be greater than zero"
	}
	if len(fields) > 0 {
		return utils.FieldValidationError(fields)
	}
	return nil
}
