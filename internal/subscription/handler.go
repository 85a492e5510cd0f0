package subscription

import (
	"github.com/gin-gonic/gin"

	"github.com/divinedarshan/divine-darshan-backend/middleware"
	"github.com/divinedarshan/divine-darshan-backend/utils"
)

type Handler struct{ svc Service }

func NewHandler(svc Service) *Handler { return &Handler{svc} }

type createRequest struct {
	ID            string  `json:"id" binding:"required"`
	PrasadNameKey string  `json:"prasadNameKey" binding:"required"`
	TempleNameKey string  `json:"templeNameKey" binding:"required"`
	Frequency     string  `json:"frequency" binding:"required"`
	Price         float64 `json:"price" binding:"required"`
	FullName      string  `json:"fullName" binding:"required"`
	PhoneNumber   string  `json:"phoneNumber" binding:"required"`
	Address       string  `json:"address" binding:"required"`
}

// Create persists the prasad subscription for the authenticated caller. The
// id in the payload is the gateway payment id from the checkout success
// callback.
func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, utils.ValidationError(err.Error()))
		return
	}

	sub, err := h.svc.Create(c.Request.Context(), CreateInput{
		PaymentID:     req.ID,
		UserID:        middleware.UserID(c),
		UserEmail:     middleware.UserEmail(c),
		PrasadNameKey: req.PrasadNameKey,
		TempleNameKey: req.TempleNameKey,
		Frequency:     req.Frequency,
		Price:         req.Price,
		FullName:      req.FullName,
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
		IP:            middleware.GetIPFromContext(c),
	})
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.Created(c, sub)
}

func (h *Handler) MySubscriptions(c *gin.Context) {
	subs, err := h.svc.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, subs)
}

func (h *Handler) All(c *gin.Context) {
	subs, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, subs)
}

func (h *Handler) Cancel(c *gin.Context) {
	sub, err := h.svc.Cancel(c.Request.Context(), c.Param("id"), middleware.UserID(c), middleware.GetIPFromContext(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, sub)
}
