package handler

import (
	baseHttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DCSlucifer/quickblog-backend/database"
	"github.com/DCSlucifer/quickblog-backend/database/repository"
	"github.com/DCSlucifer/quickblog-backend/handler/payload"
	"github.com/DCSlucifer/quickblog-backend/metal/env"
	"github.com/DCSlucifer/quickblog-backend/pkg/auth"
	"github.com/DCSlucifer/quickblog-backend/pkg/limiter"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func makeAuth(t *testing.T, admin env.AdminEnvironment, maxFails int) (AuthHandler, *database.Connection) {
	t.Helper()

	conn := setupConnection(t)
	users := repository.Users{DB: conn}

	jwtHandler, err := auth.MakeJWTHandler([]byte(testSecret), time.Hour)
	if err != nil {
		t.Fatalf("jwt handler: %v", err)
	}

	rate := limiter.NewMemoryLimiter(time.Minute, maxFails)

	return MakeAuthHandler(&users, jwtHandler, rate, admin, testValidator()), conn
}

func loginRequest(body string) *baseHttp.Request {
	req := httptest.NewRequest(baseHttp.MethodPost, "/api/admin/login", strings.NewReader(body))
	req.RemoteAddr = "10.0.0.1:50000"

	return req
}

func TestLoginBootstrapsSuperAdmin(t *testing.T) {
	admin := env.AdminEnvironment{Email: "root@example.com", Password: "super-secret"}
	h, conn := makeAuth(t, admin, 5)

	rec := httptest.NewRecorder()
	apiErr := h.Login(rec, loginRequest(`{"email":"root@example.com","password":"super-secret"}`))

	if apiErr != nil {
		t.Fatalf("bootstrap login failed: %+v", apiErr)
	}

	var response payload.LoginResponse
	decodeBody(t, rec, &response)

	if !response.Success || response.Token == "" {
		t.Fatalf("expected a token: %+v", response)
	}

	if response.User.Role != database.RoleSuperAdmin {
		t.Fatalf("bootstrap account must be super_admin, got %q", response.User.Role)
	}

	claims, err := h.JWT.Validate(response.Token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}

	if claims.Role != database.RoleSuperAdmin || claims.UserUUID != response.User.UUID {
		t.Fatalf("claims mismatch: %+v", claims)
	}

	var stored database.User
	if err := conn.Sql().Where("email = ?", "root@example.com").First(&stored).Error; err != nil {
		t.Fatalf("bootstrap user missing: %v", err)
	}

	if stored.PasswordHash == "super-secret" {
		t.Fatalf("password must be stored hashed")
	}
}

func TestLoginBootstrapClosedOnceUsersExist(t *testing.T) {
	admin := env.AdminEnvironment{Email: "root@example.com", Password: "super-secret"}
	h, conn := makeAuth(t, admin, 5)

	hashed, _ := auth.NewPassword("another-password")
	existing := database.User{
		UUID:         "existing",
		Name:         "Existing",
		Email:        "existing@example.com",
		PasswordHash: hashed.GetHash(),
		Role:         database.RoleAdmin,
	}
	if err := conn.Sql().Create(&existing).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	rec := httptest.NewRecorder()
	apiErr := h.Login(rec, loginRequest(`{"email":"root@example.com","password":"super-secret"}`))

	if apiErr == nil || apiErr.Status != baseHttp.StatusUnauthorized {
		t.Fatalf("bootstrap must close once a user exists, got %+v", apiErr)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	h, conn := makeAuth(t, env.AdminEnvironment{}, 5)

	hashed, _ := auth.NewPassword("right-password")
	user := database.User{
		UUID:         "u1",
		Name:         "Editor",
		Email:        "editor@example.com",
		PasswordHash: hashed.GetHash(),
		Role:         database.RoleAdmin,
	}
	if err := conn.Sql().Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	rec := httptest.NewRecorder()
	apiErr := h.Login(rec, loginRequest(`{"email":"editor@example.com","password":"wrong-password"}`))

	if apiErr == nil || apiErr.Status != baseHttp.StatusUnauthorized {
		t.Fatalf("expected 401, got %+v", apiErr)
	}
}

func TestLoginRateLimited(t *testing.T) {
	h, _ := makeAuth(t, env.AdminEnvironment{}, 2)

	body := `{"email":"nobody@example.com","password":"irrelevant"}`

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		if apiErr := h.Login(rec, loginRequest(body)); apiErr == nil || apiErr.Status != baseHttp.StatusUnauthorized {
			t.Fatalf("attempt %d should fail with 401, got %+v", i, apiErr)
		}
	}

	rec := httptest.NewRecorder()
	apiErr := h.Login(rec, loginRequest(body))

	if apiErr == nil || apiErr.Status != baseHttp.StatusTooManyRequests {
		t.Fatalf("expected 429 after repeated failures, got %+v", apiErr)
	}
}

func TestLoginValidation(t *testing.T) {
	h, _ := makeAuth(t, env.AdminEnvironment{}, 5)

	rec := httptest.NewRecorder()
	apiErr := h.Login(rec, loginRequest(`{"email":"not-an-email","password":"short"}`))

	if apiErr == nil || apiErr.Status != baseHttp.StatusBadRequest {
		t.Fatalf("expected 400, got %+v", apiErr)
	}
}
