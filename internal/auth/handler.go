package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/divinedarshan/divine-darshan-backend/middleware"
	"github.com/divinedarshan/divine-darshan-backend/utils"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Mobile   string `json:"mobile"`
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, utils.ValidationError(err.Error()))
		return
	}

	user, token, err := h.service.Register(RegisterInput{
		FullName: req.Name,
		Email:    req.Email,
		Password: req.Password,
		Mobile:   req.Mobile,
	})
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.Created(c, gin.H{"token": token, "user": user})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, utils.ValidationError(err.Error()))
		return
	}

	user, token, err := h.service.Login(LoginInput(req))
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.OK(c, gin.H{"token": token, "user": user})
}

// Me resolves the full user record for the authenticated subject.
func (h *Handler) Me(c *gin.Context) {
	user, err := h.service.GetUserByID(middleware.UserID(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, user)
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *Handler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, utils.ValidationError(err.Error()))
		return
	}

	if err := h.service.RequestPasswordReset(req.Email); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Message(c, "if the account exists, a reset link has been sent")
}

type resetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, utils.ValidationError(err.Error()))
		return
	}

	if err := h.service.ResetPassword(req.Token, req.NewPassword); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Message(c, "password updated")
}
