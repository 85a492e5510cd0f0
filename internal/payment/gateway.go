package payment

import (
	"errors"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/divinedarshan/divine-darshan-backend/config"
)

// Gateway creates orders against the payment provider. The provider is the
// sole authority for order and payment identity; nothing here fabricates ids.
type Gateway interface {
	CreateOrder(amountPaise int64, receipt string, notes map[string]interface{}) (string, error)
}

type razorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway(cfg *config.Config) Gateway {
	return &razorpayGateway{
		client: razorpay.NewClient(cfg.RazorpayKey, cfg.RazorpaySecret),
	}
}

func (g *razorpayGateway) CreateOrder(amountPaise int64, receipt string, notes map[string]interface{}) (string, error) {
	data := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        "INR",
		"receipt":         receipt,
		"payment_capture": 1,
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}

	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("razorpay order creation failed: %w", err)
	}

	orderID, ok := order["id"].(string)
	if !ok || orderID == "" {
		return "", errors.New("unable to extract order_id from razorpay response")
	}
	return orderID, nil
}
