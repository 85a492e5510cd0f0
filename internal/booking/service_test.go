package booking

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/divinedarshan/divine-darshan-backend/config"
	"github.com/divinedarshan/divine-darshan-backend/internal/auditlog"
	"github.com/divinedarshan/divine-darshan-backend/utils"
)

type mockRepo struct {
	bookings map[string]Booking
	createE  error
}

func newMockRepo() *mockRepo {
	return &mockRepo{bookings: map[string]Booking{}}
}

func (m *mockRepo) Create(ctx context.Context, b *Booking) error {
	if m.createE != nil {
		return m.createE
	}
	m.bookings[b.ID] = *b
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, id string) (*Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := b
	return &copy, nil
}

func (m *mockRepo) Exists(ctx context.Context, paymentID string) (bool, error) {
	_, ok := m.bookings[paymentID]
	return ok, nil
}

func (m *mockRepo) ListByUser(ctx context.Context, userID uint) ([]Booking, error) {
	var out []Booking
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockRepo) ListAll(ctx context.Context) ([]Booking, error) {
	var out []Booking
	for _, b := range m.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id, status string) error {
	b := m.bookings[id]
	b.Status = status
	m.bookings[id] = b
	return nil
}

func (m *mockRepo) CountByUser(ctx context.Context, userID uint) (int64, error) {
	n, _ := m.ListByUser(ctx, userID)
	return int64(len(n)), nil
}

type noopAudit struct {
	entries []string
}

func (a *noopAudit) LogAction(ctx context.Context, userID *uint, action string, details map[string]interface{}, ip string, status string) error {
	a.entries = append(a.entries, action+":"+status)
	return nil
}

func (a *noopAudit) List(ctx context.Context, filter auditlog.Filter) ([]auditlog.AuditLog, int64, error) {
	return nil, 0, nil
}

func testService(repo Repository, audit auditlog.Service) Service {
	return NewService(repo, audit, utils.NewMailer(&config.Config{}))
}

func validInput() CreateInput {
	return CreateInput{
		PaymentID:     "pay_xyz",
		UserID:        7,
		UserEmail:     "devotee@gmail.com",
		PujaNameKey:   "pujas.rudrabhishek.name",
		TempleNameKey: "temples.kashi.name",
		Date:          "2026-09-15",
		Price:         1100,
		NumDevotees:   2,
		FullName:      "Ramesh Kumar",
		PhoneNumber:   "9876543210",
	}
}

func TestCreatePersistsWithPaymentIdentity(t *testing.T) {
	repo := newMockRepo()
	svc := testService(repo, &noopAudit{})

	b, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.ID != "pay_xyz" {
		t.Errorf("booking id = %q, must equal the gateway payment id", b.ID)
	}
	if b.Status != StatusConfirmed {
		t.Errorf("new booking status = %q, want %q", b.Status, StatusConfirmed)
	}

	mine, err := svc.ListByUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != "pay_xyz" {
		t.Errorf("my-bookings should contain pay_xyz, got %+v", mine)
	}
}

func TestCreateRejectsDuplicatePayment(t *testing.T) {
	repo := newMockRepo()
	svc := testService(repo, &noopAudit{})

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(context.Background(), validInput())
	var appErr *utils.AppError
	if !errors.As(err, &appErr) || appErr.Kind != utils.KindValidation {
		t.Fatalf("expected validation error for duplicate payment id, got %v", err)
	}
}

func TestCreateValidatesContactFields(t *testing.T) {
	svc := testService(newMockRepo(), &noopAudit{})

	in := validInput()
	in.FullName = "Ra"
	in.PhoneNumber = "12345"
	in.Date = "15-09-2026"
	in.NumDevotees = 0

	_, err := svc.Create(context.Background(), in)
	var appErr *utils.AppError
	if !errors.As(err, &appErr) || appErr.Kind != utils.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"fullName", "phoneNumber", "date", "numDevotees"} {
		if _, ok := appErr.Fields[field]; !ok {
			t.Errorf("expected field error for %s, got %v", field, appErr.Fields)
		}
	}
}

func TestCreateFailureAfterPaymentIsAudited(t *testing.T) {
	repo := newMockRepo()
	repo.createE = errors.New("connection reset")
	audit := &noopAudit{}
	svc := testService(repo, audit)

	_, err := svc.Create(context.Background(), validInput())
	if err == nil {
		t.Fatal("expected persistence failure")
	}

	found := false
	for _, e := range audit.entries {
		if e == auditlog.ActionPaymentUnreconciled+":failure" {
			found = true
		}
	}
	if !found {
		t.Error("a persistence failure after payment must leave an unreconciled audit entry")
	}
}

func TestCompleteTransition(t *testing.T) {
	repo := newMockRepo()
	svc := testService(repo, &noopAudit{})

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("create: %v", err)
	}

	b, err := svc.Complete(context.Background(), "pay_xyz", 1, "")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if b.Status != StatusCompleted {
		t.Errorf("status = %q, want %q", b.Status, StatusCompleted)
	}

	// Completing twice is a no-op
	if _, err := svc.Complete(context.Background(), "pay_xyz", 1, ""); err != nil {
		t.Fatalf("second complete: %v", err)
	}
}

func TestReceiptForUnknownBooking(t *testing.T) {
	svc := testService(newMockRepo(), &noopAudit{})

	_, _, err := svc.Receipt(context.Background(), "pay_missing")
	var appErr *utils.AppError
	if !errors.As(err, &appErr) || appErr.Kind != utils.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestReceiptRendersPDF(t *testing.T) {
	repo := newMockRepo()
	svc := testService(repo, &noopAudit{})

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("create: %v", err)
	}

	pdf, filename, err := svc.Receipt(context.Background(), "pay_xyz")
	if err != nil {
		t.Fatalf("receipt: %v", err)
	}
	if len(pdf) == 0 {
		t.Error("receipt PDF is empty")
	}
	if filename != "booking_pay_xyz.pdf" {
		t.Errorf("filename = %q", filename)
	}
}
