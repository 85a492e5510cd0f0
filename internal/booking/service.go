package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/divinedarshan/divine-darshan-backend/internal/auditlog"
	"github.com/divinedarshan/divine-darshan-backend/utils"
)

type CreateInput struct {
	PaymentID      string
	UserID         uint
	UserEmail      string
	PujaNameKey    string
	TempleNameKey  string
	Date           string
	Price          float64
	IsEPuja        bool
	LiveStreamLink string
	NumDevotees    int
	FullName       string
	PhoneNumber    string
	IP             string
}

type Service interface {
	Create(ctx context.Context, in CreateInput) (*Booking, error)
	ListByUser(ctx context.Context, userID uint) ([]Booking, error)
	ListAll(ctx context.Context) ([]Booking, error)
	Get(ctx context.Context, id string) (*Booking, error)
	Complete(ctx context.Context, id string, adminID uint, ip string) (*Booking, error)
	Receipt(ctx context.Context, id string) ([]byte, string, error)
	ExportAll(ctx context.Context) ([]byte, string, error)
}

type service struct {
	repo     Repository
	auditSvc auditlog.Service
	mailer   *utils.Mailer
}

func NewService(repo Repository, auditSvc auditlog.Service, mailer *utils.Mailer) Service {
	return &service{repo: repo, auditSvc: auditSvc, mailer: mailer}
}

// Create persists a booking after the checkout widget reported a successful
// payment. The payment id is the record identity; a duplicate means the
// client retried a persistence call that already went through.
func (s *service) Create(ctx context.Context, in CreateInput) (*Booking, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, in.PaymentID)
	if err != nil {
		return nil, utils.PersistenceError(err)
	}
	if exists {
		return nil, utils.ValidationError("a booking already exists for this payment")
	}

	phone, _ := utils.ValidateMobile(in.PhoneNumber)
	b := &Booking{
		ID:             in.PaymentID,
		UserID:         in.UserID,
		UserEmail:      in.UserEmail,
		PujaNameKey:    in.PujaNameKey,
		TempleNameKey:  in.TempleNameKey,
		Date:           in.Date,
		Status:         StatusConfirmed,
		Price:          in.Price,
		IsEPuja:        in.IsEPuja,
		LiveStreamLink: in.LiveStreamLink,
		NumDevotees:    in.NumDevotees,
		FullName:       in.FullName,
		PhoneNumber:    phone,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		// The devotee has already paid at this point: record the failure so
		// the payment can be reconciled manually.
		s.auditSvc.LogAction(ctx, &in.UserID, auditlog.ActionPaymentUnreconciled, map[string]interface{}{
			"payment_id": in.PaymentID,
			"kind":       "booking",
			"error":      err.Error(),
		}, in.IP, "failure")
		return nil, utils.PersistenceError(err)
	}

	s.auditSvc.LogAction(ctx, &in.UserID, auditlog.ActionBookingCreated, map[string]interface{}{
		"payment_id": in.PaymentID,
		"puja":       in.PujaNameKey,
		"amount":     in.Price,
	}, in.IP, "success")

	if err := s.mailer.SendBookingConfirmation(b.UserEmail, b.FullName, b.PujaNameKey, b.Date, b.ID); err != nil {
		log.Printf("booking confirmation mail failed for %s: %v", b.ID, err)
	}

	return b, nil
}

func (s *service) ListByUser(ctx context.Context, userID uint) ([]Booking, error) {
	bookings, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.PersistenceError(err)
	}
	return bookings, nil
}

func (s *service) ListAll(ctx context.Context) ([]Booking, error) {
	bookings, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, utils.PersistenceError(err)
	}
	return bookings, nil
}

func (s *service) Get(ctx context.Context, id string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("booking not found")
		}
		return nil, utils.PersistenceError(err)
	}
	return b, nil
}

// Complete marks a confirmed booking as completed. Administrative action,
// outside the payment flow.
func (s *service) Complete(ctx context.Context, id string, adminID uint, ip string) (*Booking, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status == StatusCompleted {
		return b, nil
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCompleted); err != nil {
		return nil, utils.PersistenceError(err)
	}
	b.Status = StatusCompleted

	s.auditSvc.LogAction(ctx, &adminID, auditlog.ActionBookingCompleted, map[string]interface{}{
		"payment_id": id,
	}, ip, "success")
	return b, nil
}

func (s *service) Receipt(ctx context.Context, id string) ([]byte, string, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}

	pdf, err := buildReceiptPDF(b)
	if err != nil {
		return nil, "", utils.PersistenceError(err)
	}
	return pdf, "booking_" + b.ID + ".pdf", nil
}

func (s *service) ExportAll(ctx context.Context) ([]byte, string, error) {
	bookings, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, "", utils.PersistenceError(err)
	}

	data, err := buildBookingsXLSX(bookings)
	if err != nil {
		return nil, "", utils.PersistenceError(err)
	}
	filename := "bookings_" + time.Now().Format("20060102_150405") + ".xlsx"
	return data, filename, nil
}

func validateCreate(in CreateInput) error {
	fields := utils.ContactFields(in.FullName, in.PhoneNumber)
	if in.PaymentID == "" {
		fields["id"] = "payment id is required"
	}
	if in.PujaNameKey == "" {
		fields["pujaNameKey"] = "puja is required"
	}
	if in.TempleNameKey == "" {
		fields["templeNameKey"] = "temple is required"
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		fields["date"] = "date must be in YYYY-MM-DD format"
	}
	if in.NumDevotees < 1 {
		fields["numDevotees"] = "at least one devotee is required"
	}
	if in.Price <= 0 {
		fields["price"] = "price must be positive"
	}
	if len(fields) > 0 {
		return utils.FieldValidationError(fields)
	}
	return nil
}
