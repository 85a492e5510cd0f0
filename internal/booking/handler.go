package booking

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/divinedarshan/divine-darshan-backend/middleware"
	"github.com/divinedarshan/divine-darshan-backend/utils"
)

type Handler struct{ svc Service }

func NewHandler(svc Service) *Handler { return &Handler{svc} }

type createRequest struct {
	ID             string  `json:"id" binding:"required"`
	PujaNameKey    string  `json:"pujaNameKey" binding:"required"`
	TempleNameKey  string  `json:"templeNameKey" binding:"required"`
	Date           string  `json:"date" binding:"required"`
	Price          float64 `json:"price" binding:"required"`
	IsEPuja        bool    `json:"isEPuja"`
	LiveStreamLink string  `json:"liveStreamLink"`
	NumDevotees    int     `json:"numDevotees" binding:"required"`
	FullName       string  `json:"fullName" binding:"required"`
	PhoneNumber    string  `json:"phoneNumber" binding:"required"`
}

// Create persists the booking for the authenticated caller. The id in the
// payload is the gateway payment id from the checkout success callback.
func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, utils.ValidationError(err.Error()))
		return
	}

	b, err := h.svc.Create(c.Request.Context(), CreateInput{
		PaymentID:      req.ID,
		UserID:         middleware.UserID(c),
		UserEmail:      middleware.UserEmail(c),
		PujaNameKey:    req.PujaNameKey,
		TempleNameKey:  req.TempleNameKey,
		Date:           req.Date,
		Price:          req.Price,
		IsEPuja:        req.IsEPuja,
		LiveStreamLink: req.LiveStreamLink,
		NumDevotees:    req.NumDevotees,
		FullName:       req.FullName,
		PhoneNumber:    req.PhoneNumber,
		IP:             middleware.GetIPFromContext(c),
	})
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.Created(c, b)
}

func (h *Handler) MyBookings(c *gin.Context) {
	bookings, err := h.svc.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, bookings)
}

func (h *Handler) All(c *gin.Context) {
	bookings, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, bookings)
}

func (h *Handler) Complete(c *gin.Context) {
	b, err := h.svc.Complete(c.Request.Context(), c.Param("id"), middleware.UserID(c), middleware.GetIPFromContext(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, b)
}

// Receipt streams the booking receipt PDF. Owners download their own
// receipts, admins any.
func (h *Handler) Receipt(c *gin.Context) {
	id := c.Param("id")

	b, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	if middleware.UserRole(c) != middleware.RoleAdmin && b.UserID != middleware.UserID(c) {
		utils.Fail(c, utils.ForbiddenError("you can only download your own receipts"))
		return
	}

	pdf, filename, err := h.svc.Receipt(c.Request.Context(), id)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Export streams all bookings as an XLSX workbook for the admin dashboard.
func (h *Handler) Export(c *gin.Context) {
	data, filename, err := h.svc.ExportAll(c.Request.Context())
	if err != nil {
		utils.Fail(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
