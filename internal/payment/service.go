package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/divinedarshan/divine-darshan-backend/config"
	"github.com/divinedarshan/divine-darshan-backend/internal/auditlog"
	"github.com/divinedarshan/divine-darshan-backend/utils"
)

// RecordLookup answers whether a persisted record exists for a gateway
// payment id. Both the booking and subscription repositories satisfy it.
type RecordLookup interface {
	Exists(ctx context.Context, paymentID string) (bool, error)
}

type OrderResponse struct {
	OrderID string `json:"order_id"`
	KeyID   string `json:"key_id"`
}

type Service interface {
	CreateOrder(ctx context.Context, userID uint, amountPaise int64, ip string) (*OrderResponse, error)
	HandleWebhook(ctx context.Context, body []byte, signature, ip string) error
}

type service struct {
	gateway       Gateway
	keyID         string
	webhookSecret string
	auditSvc      auditlog.Service
	bookings      RecordLookup
	subscriptions RecordLookup
}

func NewService(gateway Gateway, cfg *config.Config, auditSvc auditlog.Service, bookings, subscriptions RecordLookup) Service {
	webhookSecret := cfg.RazorpayWebhookSecret
	if webhookSecret == "" {
		webhookSecret = cfg.RazorpaySecret
	}
	return &service{
		gateway:       gateway,
		keyID:         cfg.RazorpayKey,
		webhookSecret: webhookSecret,
		auditSvc:      auditSvc,
		bookings:      bookings,
		subscriptions: subscriptions,
	}
}

// CreateOrder asks the gateway for an order the checkout widget can bind to.
// Nothing is written locally: until a booking or subscription is persisted the
// authoritative payment record lives only in the gateway. The receipt label is
// a uuid so concurrent requests can never collide.
func (s *service) CreateOrder(ctx context.Context, userID uint, amountPaise int64, ip string) (*OrderResponse, error) {
	if amountPaise <= 0 {
		return nil, utils.ValidationError("please provide a valid amount")
	}

	receipt := fmt.Sprintf("rcpt_%s", uuid.NewString())
	orderID, err := s.gateway.CreateOrder(amountPaise, receipt, map[string]interface{}{
		"user_id": userID,
	})
	if err != nil {
		s.auditSvc.LogAction(ctx, &userID, auditlog.ActionOrderCreated, map[string]interface{}{
			"amount": amountPaise,
			"error":  err.Error(),
		}, ip, "failure")
		return nil, utils.PaymentProviderError("could not create payment order", err)
	}

	s.auditSvc.LogAction(ctx, &userID, auditlog.ActionOrderCreated, map[string]interface{}{
		"amount":   amountPaise,
		"order_id": orderID,
		"receipt":  receipt,
	}, ip, "success")

	return &OrderResponse{OrderID: orderID, KeyID: s.keyID}, nil
}

type webhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
				Amount  int64  `json:"amount"`
				Status  string `json:"status"`
				Email   string `json:"email"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// HandleWebhook is the server-side second path for payment confirmation. It
// verifies the gateway signature over the raw body, records every captured
// payment, and flags payment ids that have no persisted booking or
// subscription as unreconciled. The client's persistence call may still be in
// flight when the webhook lands, so unreconciled entries are reviewed against
// the records, not acted on automatically.
func (s *service) HandleWebhook(ctx context.Context, body []byte, signature, ip string) error {
	if !s.verifySignature(body, signature) {
		s.auditSvc.LogAction(ctx, nil, auditlog.ActionWebhookReceived, map[string]interface{}{
			"reason": "invalid signature",
		}, ip, "failure")
		return utils.ValidationError("invalid webhook signature")
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return utils.ValidationError("malformed webhook payload")
	}

	if event.Event != "payment.captured" {
		// Only captured payments matter for reconciliation
		return nil
	}

	entity := event.Payload.Payment.Entity
	s.auditSvc.LogAction(ctx, nil, auditlog.ActionWebhookReceived, map[string]interface{}{
		"payment_id": entity.ID,
		"order_id":   entity.OrderID,
		"amount":     entity.Amount,
	}, ip, "success")

	recorded, err := s.recordExists(ctx, entity.ID)
	if err != nil {
		return utils.PersistenceError(err)
	}
	if !recorded {
		s.auditSvc.LogAction(ctx, nil, auditlog.ActionPaymentUnreconciled, map[string]interface{}{
			"payment_id": entity.ID,
			"order_id":   entity.OrderID,
			"amount":     entity.Amount,
			"email":      entity.Email,
		}, ip, "failure")
	}
	return nil
}

func (s *service) verifySignature(body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.webhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (s *service) recordExists(ctx context.Context, paymentID string) (bool, error) {
	if ok, err := s.bookings.Exists(ctx, paymentID); err != nil {
		return false, err
	} else if ok {
		return true, nil
	}
	return s.subscriptions.Exists(ctx, paymentID)
}
