package service

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/divinedarshan/divine-darshan-backend/utils"
)

type Handler struct{ svc Svc }

func NewHandler(svc Svc) *Handler { return &Handler{svc} }

func (h *Handler) List(c *gin.Context) {
	services, err := h.svc.List(c.Request.Context())
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, services)
}

func (h *Handler) Create(c *gin.Context) {
	var s Service
	if err := c.ShouldBindJSON(&s); err != nil {
		utils.Fail(c, utils.ValidationError(err.Error()))
		return
	}

	created, err := h.svc.Create(c.Request.Context(), &s)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Created(c, created)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	var s Service
	if err := c.ShouldBindJSON(&s); err != nil {
		utils.Fail(c, utils.ValidationError(err.Error()))
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), id, &s)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, updated)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Message(c, "service deleted")
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, utils.ValidationError("invalid service id")
	}
	return uint(id), nil
}
