package auth

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/divinedarshan/divine-darshan-backend/config"
	"github.com/divinedarshan/divine-darshan-backend/middleware"
	"github.com/divinedarshan/divine-darshan-backend/utils"
)

type mockRepo struct {
	users  map[string]*User
	nextID uint
}

func newMockRepo() *mockRepo {
	return &mockRepo{users: map[string]*User{}, nextID: 1}
}

func (m *mockRepo) Create(user *User) error {
	user.ID = m.nextID
	m.nextID++
	m.users[user.Email] = user
	return nil
}

func (m *mockRepo) FindByEmail(email string) (*User, error) {
	if u, ok := m.users[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRepo) FindByID(userID uint) (*User, error) {
	for _, u := range m.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRepo) Update(user *User) error {
	m.users[user.Email] = user
	return nil
}

func testService(repo Repository) Service {
	cfg := &config.Config{JWTSecret: "test-secret", JWTTTLHours: 1}
	return NewService(repo, cfg, utils.NewMailer(cfg))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := testService(newMockRepo())

	user, token, err := svc.Register(RegisterInput{
		FullName: "Ramesh Kumar",
		Email:    "Ramesh@Gmail.com",
		Password: "secret123",
		Mobile:   "+91 98765 43210",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" {
		t.Fatal("register returned empty token")
	}
	if user.Role != middleware.RoleUser {
		t.Errorf("new accounts must get role %q, got %q", middleware.RoleUser, user.Role)
	}
	if user.Email != "ramesh@gmail.com" {
		t.Errorf("email should be lowercased, got %q", user.Email)
	}
	if user.Mobile != "9876543210" {
		t.Errorf("mobile should be normalized, got %q", user.Mobile)
	}

	_, token, err = svc.Login(LoginInput{Email: "ramesh@gmail.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("login returned empty token")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := testService(newMockRepo())

	if _, _, err := svc.Register(RegisterInput{FullName: "Ramesh Kumar", Email: "r@gmail.com", Password: "secret123"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, _, err := svc.Register(RegisterInput{FullName: "Someone Else", Email: "r@gmail.com", Password: "secret456"})
	if err == nil {
		t.Fatal("expected duplicate email to fail")
	}
	var appErr *utils.AppError
	if !errors.As(err, &appErr) || appErr.Kind != utils.KindValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := testService(newMockRepo())
	if _, _, err := svc.Register(RegisterInput{FullName: "Ramesh Kumar", Email: "r@gmail.com", Password: "secret123"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, err := svc.Login(LoginInput{Email: "r@gmail.com", Password: "wrong"})
	var appErr *utils.AppError
	if !errors.As(err, &appErr) || appErr.Kind != utils.KindUnauthorized {
		t.Errorf("expected unauthorized, got %v", err)
	}
}

func TestLoginUnknownAccount(t *testing.T) {
	svc := testService(newMockRepo())

	_, _, err := svc.Login(LoginInput{Email: "nobody@gmail.com", Password: "whatever"})
	var appErr *utils.AppError
	if !errors.As(err, &appErr) || appErr.Kind != utils.KindUnauthorized {
		t.Errorf("expected unauthorized for unknown account, got %v", err)
	}
}

func TestRegisterRejectsBadMobile(t *testing.T) {
	svc := testService(newMockRepo())

	_, _, err := svc.Register(RegisterInput{FullName: "Ramesh Kumar", Email: "r@gmail.com", Password: "secret123", Mobile: "12345"})
	var appErr *utils.AppError
	if !errors.As(err, &appErr) || appErr.Kind != utils.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := appErr.Fields["mobile"]; !ok {
		t.Error("expected a field-level mobile error")
	}
}
