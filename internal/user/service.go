package user

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/divinedarshan/divine-darshan-backend/internal/auditlog"
	"github.com/divinedarshan/divine-darshan-backend/internal/auth"
	"github.com/divinedarshan/divine-darshan-backend/middleware"
	"github.com/divinedarshan/divine-darshan-backend/utils"
)

// BookingCounter reports how many bookings reference a user. Deleting a
// user with bookings would orphan their payment records.
type BookingCounter interface {
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

type CreateInput struct {
	FullName         string
	Email            string
	Password         string
	Role             string
	AssignedTempleID *uint
	Mobile           string
}

type UpdateInput struct {
	FullName         string
	Role             string
	AssignedTempleID *uint
	Mobile           string
	Password         string
}

type Service interface {
	List(ctx context.Context) ([]auth.User, error)
	Create(ctx context.Context, in CreateInput, actorID uint, ip string) (*auth.User, error)
	Update(ctx context.Context, id uint, in UpdateInput, actorID uint, actorRole string, ip string) (*auth.User, error)
	Delete(ctx context.Context, id uint, actorID uint, ip string) error
}

type service struct {
	repo     Repository
	bookings BookingCounter
	auditSvc auditlog.Service
}

func NewService(repo Repository, bookings BookingCounter, auditSvc auditlog.Service) Service {
	return &service{repo: repo, bookings: bookings, auditSvc: auditSvc}
}

func (s *service) List(ctx context.Context) ([]auth.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, utils.PersistenceError(err)
	}
	return users, nil
}

func (s *service) Create(ctx context.Context, in CreateInput, actorID uint, ip string) (*auth.User, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, utils.ValidationError("an account with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.PersistenceError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.PersistenceError(err)
	}

	mobile := ""
	if in.Mobile != "" {
		normalized, ok := utils.ValidateMobile(in.Mobile)
		if !ok {
			return nil, utils.FieldValidationError(map[string]string{"mobile": "please enter a valid 10-digit mobile number"})
		}
		mobile = normalized
	}

	u := &auth.User{
		FullName:         in.FullName,
		Email:            email,
		PasswordHash:     string(hash),
		Role:             in.Role,
		AssignedTempleID: in.AssignedTempleID,
		Mobile:           mobile,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, utils.PersistenceError(err)
	}

	s.auditSvc.LogAction(ctx, &actorID, auditlog.ActionAdminMutation, map[string]interface{}{
		"entity": "user",
		"op":     "create",
		"id":     u.ID,
		"role":   u.Role,
	}, ip, "success")
	return u, nil
}

// Update applies an admin edit, or a self-profile edit. Self edits may not
// change role or temple assignment.
func (s *service) Update(ctx context.Context, id uint, in UpdateInput, actorID uint, actorRole string, ip string) (*auth.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("user not found")
		}
		return nil, utils.PersistenceError(err)
	}

	isSelf := actorID == id
	if actorRole != middleware.RoleAdmin && !isSelf {
		return nil, utils.ForbiddenError("you can only edit your own profile")
	}

	if in.FullName != "" {
		if !utils.ValidName(in.FullName) {
			return nil, utils.FieldValidationError(map[string]string{"name": "please enter a name of at least 3 characters"})
		}
		u.FullName = in.FullName
	}
	if in.Mobile != "" {
		normalized, ok := utils.ValidateMobile(in.Mobile)
		if !ok {
			return nil, utils.FieldValidationError(map[string]string{"mobile": "please enter a valid 10-digit mobile number"})
		}
		u.Mobile = normalized
	}
	if in.Password != "" {
		if len(in.Password) < 6 {
			return nil, utils.FieldValidationError(map[string]string{"password": "password must be at least 6 characters"})
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, utils.PersistenceError(err)
		}
		u.PasswordHash = string(hash)
	}

	if in.Role != "" || in.AssignedTempleID != nil {
		if actorRole != middleware.RoleAdmin {
			return nil, utils.ForbiddenError("only admins can change roles or temple assignments")
		}
		role := u.Role
		if in.Role != "" {
			role = in.Role
		}
		assigned := u.AssignedTempleID
		if in.AssignedTempleID != nil {
			assigned = in.AssignedTempleID
		}
		if err := validateRole(role, assigned); err != nil {
			return nil, err
		}
		u.Role = role
		u.AssignedTempleID = assigned
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, utils.PersistenceError(err)
	}

	if !isSelf {
		s.auditSvc.LogAction(ctx, &actorID, auditlog.ActionAdminMutation, map[string]interface{}{
			"entity": "user",
			"op":     "update",
			"id":     u.ID,
		}, ip, "success")
	}
	return u, nil
}

func (s *service) Delete(ctx context.Context, id uint, actorID uint, ip string) error {
	if id == actorID {
		return utils.ValidationError("you cannot delete your own account")
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundError("user not found")
		}
		return utils.PersistenceError(err)
	}

	count, err := s.bookings.CountByUser(ctx, id)
	if err != nil {
		return utils.PersistenceError(err)
	}
	if count > 0 {
		return utils.ValidationError("this user has bookings and cannot be deleted")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return utils.PersistenceError(err)
	}

	s.auditSvc.LogAction(ctx, &actorID, auditlog.ActionAdminMutation, map[string]interface{}{
		"entity": "user",
		"op":     "delete",
		"id":     id,
	}, ip, "success")
	return nil
}

func validateCreate(in CreateInput) error {
	fields := map[string]string{}
	if !utils.ValidName(in.FullName) {
		fields["name"] = "please enter a name of at least 3 characters"
	}
	if !strings.Contains(in.Email, "@") {
		fields["email"] = "please enter a valid email address"
	}
	if len(in.Password) < 6 {
		fields["password"] = "password must be at least 6 characters"
	}
	if len(fields) > 0 {
		return utils.FieldValidationError(fields)
	}
	return validateRole(in.Role, in.AssignedTempleID)
}

func validateRole(role string, assignedTempleID *uint) error {
	switch role {
	case middleware.RoleUser, middleware.RoleAdmin:
		return nil
	case middleware.RoleTempleManager:
		if assignedTempleID == nil {
			return utils.FieldValidationError(map[string]string{"assignedTempleId": "a temple manager must be assigned a temple"})
		}
		return nil
	default:
		return utils.FieldValidationError(map[string]string{"role": "role must be user, admin or temple_manager"})
	}
}
