package subscription

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/divinedarshan/divine-darshan-backend/internal/auditlog"
	"github.com/divinedarshan/divine-darshan-backend/utils"
)

type mockRepo struct {
	subs    map[string]PrasadSubscription
	createE error
}

func newMockRepo() *mockRepo {
	return &mockRepo{subs: map[string]PrasadSubscription{}}
}

func (m *mockRepo) Create(ctx context.Context, s *PrasadSubscription) error {
	if m.createE != nil {
		return m.createE
	}
	m.subs[s.ID] = *s
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, id string) (*PrasadSubscription, error) {
	s, ok := m.subs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := s
	return &copy, nil
}

func (m *mockRepo) Exists(ctx context.Context, paymentID string) (bool, error) {
	_, ok := m.subs[paymentID]
	return ok, nil
}

func (m *mockRepo) ListByUser(ctx context.Context, userID uint) ([]PrasadSubscription, error) {
	var out []PrasadSubscription
	for _, s := range m.subs {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockRepo) ListAll(ctx context.Context) ([]PrasadSubscription, error) {
	var out []PrasadSubscription
	for _, s := range m.subs {
		out = append(out, s)
	}
	return out, nil
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id, status string) error {
	s := m.subs[id]
	s.Status = status
	m.subs[id] = s
	return nil
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

func fixedService(repo Repository, audit auditlog.Service, at time.Time) Service {
	svc := NewService(repo, audit).(*service)
	svc.now = func() time.Time { return at }
	return svc
}

func validInput() CreateInput {
	return CreateInput{
		PaymentID:     "pay_xyz",
		UserID:        7,
		UserEmail:     "devotee@gmail.com",
		PrasadNameKey: "prasads.laddu.name",
		TempleNameKey: "temples.tirupati.name",
		Frequency:     FrequencyMonthly,
		Price:         500,
		FullName:      "Ramesh Kumar",
		PhoneNumber:   "9876543210",
		Address:       "12 Temple Street, Tirupati, Andhra Pradesh 517501",
	}
}

func TestCheckoutToActiveSubscription(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, &noopAudit{})

	// Checkout reported payment pay_xyz for order order_abc; the record is
	// created with the payment id as its identity.
	sub, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sub.ID != "pay_xyz" {
		t.Errorf("subscription id = %q, must equal the gateway payment id", sub.ID)
	}

	mine, err := svc.ListByUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("my-subscriptions length = %d, want 1", len(mine))
	}
	if mine[0].ID != "pay_xyz" || mine[0].Status != StatusActive {
		t.Errorf("my-subscriptions should contain pay_xyz with status Active, got %+v", mine[0])
	}
}

func TestNextDeliveryDateFromFrequency(t *testing.T) {
	at := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		frequency string
		want      string
	}{
		{FrequencyMonthly, "2026-02-15"},
		{FrequencyQuarterly, "2026-04-15"},
	}
	for _, tc := range cases {
		repo := newMockRepo()
		svc := fixedService(repo, &noopAudit{}, at)

		in := validInput()
		in.Frequency = tc.frequency
		sub, err := svc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("%s: create: %v", tc.frequency, err)
		}
		if sub.NextDeliveryDate != tc.want {
			t.Errorf("%s: next delivery = %q, want %q", tc.frequency, sub.NextDeliveryDate, tc.want)
		}
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newMockRepo(), &noopAudit{})

	in := validInput()
	in.Frequency = "Weekly"
	in.Address = "too short"
	in.PhoneNumber = "0123"

	_, err := svc.Create(context.Background(), in)
	var appErr *utils.AppError
	if !errors.As(err, &appErr) || appErr.Kind != utils.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"frequency", "address", "phoneNumber"} {
		if _, ok := appErr.Fields[field]; !ok {
			t.Errorf("expected field error for %s, got %v", field, appErr.Fields)
		}
	}
}

func TestCreateRejectsDuplicatePayment(t *testing.T) {
	svc := NewService(newMockRepo(), &noopAudit{})

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(context.Background(), validInput())
	var appErr *utils.AppError
	if !errors.As(err, &appErr) || appErr.Kind != utils.KindValidation {
		t.Fatalf("expected validation error for duplicate payment id, got %v", err)
	}
}

func TestCreateFailureAfterPaymentIsAudited(t *testing.T) {
	repo := newMockRepo()
	repo.createE = errors.New("connection reset")
	audit := &noopAudit{}
	svc := NewService(repo, audit)

	if _, err := svc.Create(context.Background(), validInput()); err == nil {
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

func TestCancelIsOwnerScopedAndTerminal(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, &noopAudit{})

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Another user may not cancel.
	_, err := svc.Cancel(context.Background(), "pay_xyz", 99, "")
	var appErr *utils.AppError
	if !errors.As(err, &appErr) || appErr.Kind != utils.KindForbidden {
		t.Fatalf("expected forbidden for non-owner, got %v", err)
	}

	sub, err := svc.Cancel(context.Background(), "pay_xyz", 7, "")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if sub.Status != StatusCancelled {
		t.Errorf("status = %q, want %q", sub.Status, StatusCancelled)
	}

	// Cancelled is terminal; cancelling again is a no-op.
	sub, err = svc.Cancel(context.Background(), "pay_xyz", 7, "")
	if err != nil {
		t.Fatalf("second cancel: %v", err)
	}
	if sub.Status != StatusCancelled {
		t.Errorf("status after second cancel = %q", sub.Status)
	}
}

func TestCancelUnknownSubscription(t *testing.T) {
	svc := NewService(newMockRepo(), &noopAudit{})

	_, err := svc.Cancel(context.Background(), "pay_missing", 7, "")
	var appErr *utils.AppError
	if !errors.As(err, &appErr) || appErr.Kind != utils.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}
