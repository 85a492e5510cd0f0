package temple

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/divinedarshan/divine-darshan-backend/middleware"
	"github.com/divinedarshan/divine-darshan-backend/utils"
)

type Handler struct{ svc Service }

func NewHandler(svc Service) *Handler { return &Handler{svc} }

func (h *Handler) List(c *gin.Context) {
	temples, err := h.svc.List(c.Request.Context())
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, temples)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	t, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, t)
}

func (h *Handler) Create(c *gin.Context) {
	var t Temple
	if err := c.ShouldBindJSON(&t); err != nil {
		utils.Fail(c, utils.ValidationError(err.Error()))
		return
	}

	created, err := h.svc.Create(c.Request.Context(), &t)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Created(c, created)
}

// Update accepts the full temple document. Admins may edit any temple; a
// temple_manager only the one they are assigned to.
func (h *Handler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	if middleware.UserRole(c) == middleware.RoleTempleManager {
		assigned, ok := middleware.AssignedTempleID(c)
		if !ok || assigned != id {
			utils.Fail(c, utils.ForbiddenError("you can only manage your assigned temple"))
			return
		}
	}

	var t Temple
	if err := c.ShouldBindJSON(&t); err != nil {
		utils.Fail(c, utils.ValidationError(err.Error()))
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), id, &t)
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
	utils.Message(c, "temple deleted")
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, utils.ValidationError("invalid temple id")
	}
	return uint(id), nil
}
