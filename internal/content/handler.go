package content

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/divinedarshan/divine-darshan-backend/utils"
)

type Handler struct{ svc Service }

func NewHandler(svc Service) *Handler { return &Handler{svc} }

func (h *Handler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.svc.ListTestimonials(c.Request.Context())
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, testimonials)
}

func (h *Handler) CreateTestimonial(c *gin.Context) {
	var t Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		utils.Fail(c, utils.ValidationError(err.Error()))
		return
	}

	created, err := h.svc.CreateTestimonial(c.Request.Context(), &t)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Created(c, created)
}

func (h *Handler) UpdateTestimonial(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	var t Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		utils.Fail(c, utils.ValidationError(err.Error()))
		return
	}

	updated, err := h.svc.UpdateTestimonial(c.Request.Context(), id, &t)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, updated)
}

func (h *Handler) DeleteTestimonial(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	if err := h.svc.DeleteTestimonial(c.Request.Context(), id); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Message(c, "testimonial deleted")
}

func (h *Handler) GetSeasonalEvent(c *gin.Context) {
	e, err := h.svc.GetSeasonalEvent(c.Request.Context())
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, e)
}

func (h *Handler) UpdateSeasonalEvent(c *gin.Context) {
	var e SeasonalEvent
	if err := c.ShouldBindJSON(&e); err != nil {
		utils.Fail(c, utils.ValidationError(err.Error()))
		return
	}

	updated, err := h.svc.UpdateSeasonalEvent(c.Request.Context(), &e)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, updated)
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, utils.ValidationError("invalid testimonial id")
	}
	return uint(id), nil
}
