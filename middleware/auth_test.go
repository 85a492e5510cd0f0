package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/divinedarshan/divine-darshan-backend/config"
)

const testSecret = "unit-test-secret"

func testRouter(roles ...string) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: testSecret}

	reached := false
	r := gin.New()
	group := r.Group("/", AuthMiddleware(cfg))
	if len(roles) > 0 {
		group.Use(Authorize(roles...))
	}
	group.GET("/probe", func(c *gin.Context) {
		reached = true
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
			"id":   UserID(c),
			"role": UserRole(c),
		}})
	})
	return r, &reached
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func userClaims(role string) jwt.MapClaims {
	return jwt.MapClaims{
		"user_id": float64(7),
		"email":   "devotee@gmail.com",
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
}

func TestMissingTokenFailsClosed(t *testing.T) {
	r, reached := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if *reached {
		t.Fatal("handler ran despite missing credential")
	}
}

func TestMalformedHeaderRejected(t *testing.T) {
	r, reached := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Token abc123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if *reached {
		t.Fatal("handler ran despite malformed header")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	r, reached := testRouter()

	claims := userClaims(RoleUser)
	claims["exp"] = time.Now().Add(-time.Hour).Unix()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, claims))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if *reached {
		t.Fatal("handler ran despite expired token")
	}
}

func TestValidTokenPasses(t *testing.T) {
	r, reached := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, userClaims(RoleUser)))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !*reached {
		t.Fatal("handler did not run for a valid token")
	}
}

func TestAuthorizeBlocksWrongRole(t *testing.T) {
	r, reached := testRouter(RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, userClaims(RoleUser)))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if *reached {
		t.Fatal("handler ran for a forbidden role")
	}
}

func TestAuthorizeAllowsListedRole(t *testing.T) {
	r, reached := testRouter(RoleAdmin, RoleTempleManager)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, userClaims(RoleTempleManager)))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !*reached {
		t.Fatal("handler did not run for an allowed role")
	}
}
