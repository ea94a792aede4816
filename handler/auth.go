package handler

import (
	"net"
	baseHttp "net/http"
	"strings"

	"github.com/DCSlucifer/quickblog-backend/database"
	"github.com/DCSlucifer/quickblog-backend/database/repository"
	"github.com/DCSlucifer/quickblog-backend/handler/payload"
	"github.com/DCSlucifer/quickblog-backend/metal/env"
	"github.com/DCSlucifer/quickblog-backend/pkg/auth"
	"github.com/DCSlucifer/quickblog-backend/pkg/endpoint"
	"github.com/DCSlucifer/quickblog-backend/pkg/limiter"
	"github.com/DCSlucifer/quickblog-backend/pkg/portal"
)

type AuthHandler struct {
	Users     *repository.Users
	JWT       auth.JWTHandler
	Limiter   *limiter.MemoryLimiter
	Admin     env.AdminEnvironment
	Validator *portal.Validator
}

func MakeAuthHandler(users *repository.Users, jwt auth.JWTHandler, rate *limiter.MemoryLimiter, admin env.AdminEnvironment, validator *portal.Validator) AuthHandler {
	return AuthHandler{
		Users:     users,
		JWT:       jwt,
		Limiter:   rate,
		Admin:     admin,
		Validator: validator,
	}
}

// Login exchanges valid credentials for a 24h token. When the users table is
// still empty, the configured bootstrap credentials mint the first
// super_admin account on the spot.
func (h AuthHandler) Login(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	request, closer, err := endpoint.ParseRequestBody[payload.LoginRequest](r)
	defer closer()

	if err != nil {
		return endpoint.LogBadRequestError("invalid login payload", err)
	}

	if rejects, rulesErr := h.Validator.Rejects(request); rejects {
		return endpoint.ValidationError("invalid login payload", portal.FieldErrorsAsData(rulesErr))
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))
	key := clientIP(r) + "|" + email

	if h.Limiter.TooMany(key) {
		return endpoint.TooManyRequests("too many failed attempts, try again later")
	}

	user := h.Users.FindByEmail(email)

	if user == nil {
		bootstrapped, apiErr := h.bootstrapSuperAdmin(email, request.Password)
		if apiErr != nil {
			return apiErr
		}

		if bootstrapped == nil {
			h.Limiter.Fail(key)

			return endpoint.UnauthorisedError("invalid credentials")
		}

		user = bootstrapped
	} else if !auth.PasswordFromHash(user.PasswordHash).Is(request.Password) {
		h.Limiter.Fail(key)

		return endpoint.UnauthorisedError("invalid credentials")
	}

	token, err := h.JWT.Generate(user.UUID, user.Role)
	if err != nil {
		return endpoint.LogInternalError("could not issue a token", err)
	}

	h.Limiter.Reset(key)

	response := payload.LoginResponse{
		Success: true,
		Token:   token,
		User: payload.LoginUserResponse{
			UUID:  user.UUID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}

	if err := endpoint.RespondOk(w, response); err != nil {
		return endpoint.InternalError(err.Error())
	}

	return nil
}

// bootstrapSuperAdmin creates the first account if and only if the users
// table is empty and the given credentials match the configured pair.
// Once any user exists the bootstrap path is closed for good.
func (h AuthHandler) bootstrapSuperAdmin(email, password string) (*database.User, *endpoint.ApiError) {
	if !h.Admin.HasCredentials() {
		return nil, nil
	}

	if email != strings.ToLower(strings.TrimSpace(h.Admin.Email)) || password != h.Admin.Password {
		return nil, nil
	}

	total, err := h.Users.Count()
	if err != nil {
		return nil, endpoint.LogInternalError("could not inspect the accounts table", err)
	}

	if total > 0 {
		return nil, nil
	}

	hashed, err := auth.NewPassword(password)
	if err != nil {
		return nil, endpoint.LogInternalError("could not hash the bootstrap password", err)
	}

	user, err := h.Users.Create(database.UserAttrs{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hashed.GetHash(),
		Role:         database.RoleSuperAdmin,
	})

	if err != nil {
		return nil, endpoint.LogInternalError("could not create the bootstrap account", err)
	}

	return user, nil
}

func clientIP(r *baseHttp.Request) string {
	if forwarded := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
