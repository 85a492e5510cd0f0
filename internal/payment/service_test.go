package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/divinedarshan/divine-darshan-backend/config"
	"github.com/divinedarshan/divine-darshan-backend/internal/auditlog"
	"github.com/divinedarshan/divine-darshan-backend/utils"
)

type mockGateway struct {
	calls    int
	receipts []string
	orderID  string
	err      error
}

func (m *mockGateway) CreateOrder(amountPaise int64, receipt string, notes map[string]interface{}) (string, error) {
	m.calls++
	m.receipts = append(m.receipts, receipt)
	if m.err != nil {
		return "", m.err
	}
	return m.orderID, nil
}

type mockAudit struct {
	entries []auditlog.AuditLog
}

func (m *mockAudit) LogAction(ctx context.Context, userID *uint, action string, details map[string]interface{}, ip string, status string) error {
	m.entries = append(m.entries, auditlog.AuditLog{Action: action, Status: status})
	return nil
}

func (m *mockAudit) List(ctx context.Context, filter auditlog.Filter) ([]auditlog.AuditLog, int64, error) {
	return m.entries, int64(len(m.entries)), nil
}

func (m *mockAudit) has(action, status string) bool {
	for _, e := range m.entries {
		if e.Action == action && e.Status == status {
			return true
		}
	}
	return false
}

type mockLookup struct {
	known map[string]bool
}

func (m *mockLookup) Exists(ctx context.Context, paymentID string) (bool, error) {
	return m.known[paymentID], nil
}

const testWebhookSecret = "whsec_test"

func newTestService(gw Gateway, audit auditlog.Service, bookings, subs RecordLookup) Service {
	cfg := &config.Config{
		RazorpayKey:           "rzp_test_key",
		RazorpaySecret:        "rzp_test_secret",
		RazorpayWebhookSecret: testWebhookSecret,
	}
	return NewService(gw, cfg, audit, bookings, subs)
}

func TestCreateOrderRejectsNonPositiveAmount(t *testing.T) {
	gw := &mockGateway{orderID: "order_abc"}
	svc := newTestService(gw, &mockAudit{}, &mockLookup{}, &mockLookup{})

	for _, amount := range []int64{0, -1, -50000} {
		_, err := svc.CreateOrder(context.Background(), 1, amount, "127.0.0.1")
		var appErr *utils.AppError
		if !errors.As(err, &appErr) || appErr.Kind != utils.KindValidation {
			t.Errorf("amount %d: expected validation error, got %v", amount, err)
		}
	}
	if gw.calls != 0 {
		t.Fatalf("gateway must not be called for invalid amounts, got %d calls", gw.calls)
	}
}

func TestCreateOrderReturnsGatewayOrder(t *testing.T) {
	gw := &mockGateway{orderID: "order_abc"}
	audit := &mockAudit{}
	svc := newTestService(gw, audit, &mockLookup{}, &mockLookup{})

	order, err := svc.CreateOrder(context.Background(), 1, 50000, "127.0.0.1")
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if order.OrderID != "order_abc" {
		t.Errorf("order id = %q, want order_abc", order.OrderID)
	}
	if order.KeyID != "rzp_test_key" {
		t.Errorf("key id = %q, want the public gateway key", order.KeyID)
	}
	if !audit.has(auditlog.ActionOrderCreated, "success") {
		t.Error("successful order creation should be audited")
	}
}

func TestCreateOrderReceiptsAreUnique(t *testing.T) {
	gw := &mockGateway{orderID: "order_abc"}
	svc := newTestService(gw, &mockAudit{}, &mockLookup{}, &mockLookup{})

	for i := 0; i < 5; i++ {
		if _, err := svc.CreateOrder(context.Background(), 1, 100, ""); err != nil {
			t.Fatalf("create order: %v", err)
		}
	}

	seen := map[string]bool{}
	for _, r := range gw.receipts {
		if seen[r] {
			t.Fatalf("receipt %q issued twice", r)
		}
		seen[r] = true
	}
}

func TestCreateOrderGatewayFailure(t *testing.T) {
	gw := &mockGateway{err: errors.New("gateway down")}
	audit := &mockAudit{}
	svc := newTestService(gw, audit, &mockLookup{}, &mockLookup{})

	order, err := svc.CreateOrder(context.Background(), 1, 50000, "")
	if order != nil {
		t.Fatal("no order may be fabricated when the gateway fails")
	}
	var appErr *utils.AppError
	if !errors.As(err, &appErr) || appErr.Kind != utils.KindPaymentProvider {
		t.Fatalf("expected payment provider error, got %v", err)
	}
	if !audit.has(auditlog.ActionOrderCreated, "failure") {
		t.Error("gateway failure should be audited")
	}
}

func signWebhook(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

const capturedPayload = `{
	"event": "payment.captured",
	"payload": {"payment": {"entity": {
		"id": "pay_xyz", "order_id": "order_abc", "amount": 50000, "status": "captured", "email": "d@gmail.com"
	}}}
}`

func TestWebhookRejectsBadSignature(t *testing.T) {
	audit := &mockAudit{}
	svc := newTestService(&mockGateway{}, audit, &mockLookup{}, &mockLookup{})

	err := svc.HandleWebhook(context.Background(), []byte(capturedPayload), "deadbeef", "")
	var appErr *utils.AppError
	if !errors.As(err, &appErr) || appErr.Kind != utils.KindValidation {
		t.Fatalf("expected validation error for bad signature, got %v", err)
	}
	if audit.has(auditlog.ActionPaymentUnreconciled, "failure") {
		t.Error("unverified webhooks must not create reconciliation entries")
	}
}

func TestWebhookFlagsUnreconciledPayment(t *testing.T) {
	audit := &mockAudit{}
	svc := newTestService(&mockGateway{}, audit, &mockLookup{known: map[string]bool{}}, &mockLookup{known: map[string]bool{}})

	body := []byte(capturedPayload)
	if err := svc.HandleWebhook(context.Background(), body, signWebhook(body), ""); err != nil {
		t.Fatalf("webhook: %v", err)
	}
	if !audit.has(auditlog.ActionWebhookReceived, "success") {
		t.Error("captured payment webhook should be audited")
	}
	if !audit.has(auditlog.ActionPaymentUnreconciled, "failure") {
		t.Error("a captured payment with no record must be flagged unreconciled")
	}
}

func TestWebhookKnownPaymentIsReconciled(t *testing.T) {
	audit := &mockAudit{}
	svc := newTestService(&mockGateway{}, audit,
		&mockLookup{known: map[string]bool{"pay_xyz": true}}, &mockLookup{})

	body := []byte(capturedPayload)
	if err := svc.HandleWebhook(context.Background(), body, signWebhook(body), ""); err != nil {
		t.Fatalf("webhook: %v", err)
	}
	if audit.has(auditlog.ActionPaymentUnreconciled, "failure") {
		t.Error("a payment with a persisted record must not be flagged")
	}
}

func TestWebhookIgnoresOtherEvents(t *testing.T) {
	audit := &mockAudit{}
	svc := newTestService(&mockGateway{}, audit, &mockLookup{}, &mockLookup{})

	body := []byte(`{"event": "payment.authorized", "payload": {"payment": {"entity": {"id": "pay_1"}}}}`)
	if err := svc.HandleWebhook(context.Background(), body, signWebhook(body), ""); err != nil {
		t.Fatalf("webhook: %v", err)
	}
	if len(audit.entries) != 0 {
		t.Errorf("non-captured events should not be audited, got %d entries", len(audit.entries))
	}
}
