package payment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/divinedarshan/divine-darshan-backend/middleware"
	"github.com/divinedarshan/divine-darshan-backend/utils"
)

type Handler struct{ svc Service }

func NewHandler(svc Service) *Handler { return &Handler{svc} }

type createOrderRequest struct {
	Amount int64 `json:"amount"`
}

// CreateOrder returns the gateway order id and public key the checkout widget
// binds to. The amount is in paise.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, utils.ValidationError("please provide a valid amount"))
		return
	}

	order, err := h.svc.CreateOrder(c.Request.Context(), middleware.UserID(c), req.Amount, middleware.GetIPFromContext(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}

	// The SPA reads order_id/key_id from the top level of this response.
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"order_id": order.OrderID,
		"key_id":   order.KeyID,
	})
}

// Webhook receives gateway callbacks. There is no bearer token here; the
// HMAC signature over the raw body is the credential.
func (h *Handler) Webhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		utils.Fail(c, utils.ValidationError("unable to read webhook body"))
		return
	}

	signature := c.GetHeader("X-Razorpay-Signature")
	if err := h.svc.HandleWebhook(c.Request.Context(), body, signature, middleware.GetIPFromContext(c)); err != nil {
		utils.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
