package user

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/divinedarshan/divine-darshan-backend/middleware"
	"github.com/divinedarshan/divine-darshan-backend/utils"
)

type Handler struct{ svc Service }

func NewHandler(svc Service) *Handler { return &Handler{svc} }

type createRequest struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required"`
	Password         string `json:"password" binding:"required"`
	Role             string `json:"role" binding:"required"`
	AssignedTempleID *uint  `json:"assignedTempleId"`
	Mobile           string `json:"mobile"`
}

type updateRequest struct {
	Name             string `json:"name"`
	Role             string `json:"role"`
	AssignedTempleID *uint  `json:"assignedTempleId"`
	Mobile           string `json:"mobile"`
	Password         string `json:"password"`
}

func (h *Handler) List(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, users)
}

func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, utils.ValidationError(err.Error()))
		return
	}

	u, err := h.svc.Create(c.Request.Context(), CreateInput{
		FullName:         req.Name,
		Email:            req.Email,
		Password:         req.Password,
		Role:             req.Role,
		AssignedTempleID: req.AssignedTempleID,
		Mobile:           req.Mobile,
	}, middleware.UserID(c), middleware.GetIPFromContext(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Created(c, u)
}

// Update serves both the admin edit and the self-profile edit; the service
// decides what the caller may change.
func (h *Handler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, utils.ValidationError(err.Error()))
		return
	}

	u, err := h.svc.Update(c.Request.Context(), id, UpdateInput{
		FullName:         req.Name,
		Role:             req.Role,
		AssignedTempleID: req.AssignedTempleID,
		Mobile:           req.Mobile,
		Password:         req.Password,
	}, middleware.UserID(c), middleware.UserRole(c), middleware.GetIPFromContext(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, u)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id, middleware.UserID(c), middleware.GetIPFromContext(c)); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Message(c, "user deleted")
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, utils.ValidationError("invalid user id")
	}
	return uint(id), nil
}
