package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/divinedarshan/divine-darshan-backend/config"
	"github.com/divinedarshan/divine-darshan-backend/middleware"
	"github.com/divinedarshan/divine-darshan-backend/utils"
)

type Service interface {
	Register(input RegisterInput) (*User, string, error)
	Login(input LoginInput) (*User, string, error)
	GetUserByID(userID uint) (*User, error)
	RequestPasswordReset(email string) error
	ResetPassword(token, newPassword string) error
}

type service struct {
	repo   Repository
	mailer *utils.Mailer
	secret string
	ttl    time.Duration
}

func NewService(repo Repository, cfg *config.Config, mailer *utils.Mailer) Service {
	return &service{
		repo:   repo,
		mailer: mailer,
		secret: cfg.JWTSecret,
		ttl:    time.Duration(cfg.JWTTTLHours) * time.Hour,
	}
}

type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Mobile   string
}

type LoginInput struct {
	Email    string
	Password string
}

// Register creates a devotee account. Admin and temple_manager accounts are
// only created through the admin user management surface.
func (s *service) Register(in RegisterInput) (*User, string, error) {
	if !utils.ValidName(in.FullName) {
		return nil, "", utils.FieldValidationError(map[string]string{"name": "please enter a name of at least 3 characters"})
	}

	mobile := ""
	if in.Mobile != "" {
		cleaned, ok := utils.ValidateMobile(in.Mobile)
		if !ok {
			return nil, "", utils.FieldValidationError(map[string]string{"mobile": "please enter a valid 10-digit mobile number"})
		}
		mobile = cleaned
	}

	if _, err := s.repo.FindByEmail(strings.ToLower(in.Email)); err == nil {
		return nil, "", utils.ValidationError("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", utils.PersistenceError(err)
	}

	user := &User{
		FullName:     strings.TrimSpace(in.FullName),
		Email:        strings.ToLower(in.Email),
		PasswordHash: string(hash),
		Role:         middleware.RoleUser,
		Mobile:       mobile,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, "", utils.PersistenceError(err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", utils.PersistenceError(err)
	}
	return user, token, nil
}

func (s *service) Login(in LoginInput) (*User, string, error) {
	user, err := s.repo.FindByEmail(strings.ToLower(in.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", utils.UnauthorizedError("invalid credentials")
		}
		return nil, "", utils.PersistenceError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, "", utils.UnauthorizedError("invalid credentials")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", utils.PersistenceError(err)
	}
	return user, token, nil
}

func (s *service) generateToken(user *User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(s.ttl).Unix(),
	}
	if user.AssignedTempleID != nil {
		claims["assigned_temple_id"] = *user.AssignedTempleID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

func (s *service) GetUserByID(userID uint) (*User, error) {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("user not found")
		}
		return nil, utils.PersistenceError(err)
	}
	return user, nil
}

// RequestPasswordReset stores a short-lived token in Redis and mails a reset
// link. An unknown email returns success to avoid account enumeration.
func (s *service) RequestPasswordReset(email string) error {
	user, err := s.repo.FindByEmail(strings.ToLower(email))
	if err != nil {
		return nil
	}

	token := generateSecureToken()
	key := fmt.Sprintf("reset_token:%s", token)
	if err := utils.SetToken(key, fmt.Sprint(user.ID), 15*time.Minute); err != nil {
		return utils.PersistenceError(err)
	}

	if err := s.mailer.SendResetLink(user.Email, token); err != nil {
		return utils.PersistenceError(err)
	}
	return nil
}

func (s *service) ResetPassword(token, newPassword string) error {
	if len(newPassword) < 6 {
		return utils.ValidationError("password must be at least 6 characters")
	}

	key := fmt.Sprintf("reset_token:%s", token)
	val, err := utils.GetToken(key)
	if err != nil {
		return utils.ValidationError("invalid or expired reset token")
	}

	var userID uint
	if _, err := fmt.Sscan(val, &userID); err != nil {
		return utils.ValidationError("invalid reset token")
	}

	user, err := s.repo.FindByID(userID)
	if err != nil {
		return utils.NotFoundError("user not found")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return utils.PersistenceError(err)
	}

	user.PasswordHash = string(hash)
	if err := s.repo.Update(user); err != nil {
		return utils.PersistenceError(err)
	}

	_ = utils.DeleteToken(key)
	return nil
}

func generateSecureToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
