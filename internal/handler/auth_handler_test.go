package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"vocab-builder/internal/domain"
	"vocab-builder/internal/dto"
	"vocab-builder/internal/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup_Created(t *testing.T) {
	s := newTestServices()
	s.auth.SignupFunc = func(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
		assert.Equal(t, "user1", req.Username)
		return &dto.AuthResponse{
			Message:      "User registered successfully",
			AccessToken:  "access",
			RefreshToken: "refresh",
			UserID:       "user-id",
		}, nil
	}

	body := dto.SignupRequest{Username: "user1", Email: "user1@example.com", Password: "password123"}
	resp, data := doRequest(t, s.app(), http.MethodPost, "/api/auth/signup", body, false)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))

	var out dto.AuthResponse
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "user-id", out.UserID)
}

func TestSignup_ValidationErrors(t *testing.T) {
	s := newTestServices()
	body := dto.SignupRequest{Username: "x", Email: "not-an-email", Password: "123"}
	resp, data := doRequest(t, s.app(), http.MethodPost, "/api/auth/signup", body, false)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out middleware.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, string(domain.CodeValidation), out.Code)
	assert.Len(t, out.Errors, 3)
}

func TestSignup_Conflict(t *testing.T) {
	s := newTestServices()
	s.auth.SignupFunc = func(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
		return nil, domain.NewConflictError("Username or email already exists.")
	}

	body := dto.SignupRequest{Username: "user1", Email: "user1@example.com", Password: "password123"}
	resp, _ := doRequest(t, s.app(), http.MethodPost, "/api/auth/signup", body, false)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	s := newTestServices()
	s.auth.LoginFunc = func(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
		return nil, domain.NewInvalidCredentialsError()
	}

	body := dto.LoginRequest{Identifier: "user1", Password: "wrong"}
	resp, data := doRequest(t, s.app(), http.MethodPost, "/api/auth/login", body, false)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var out middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, string(domain.CodeInvalidCredentials), out.Code)
}

func TestLogin_Success(t *testing.T) {
	s := newTestServices()
	s.auth.LoginFunc = func(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
		assert.Equal(t, "user1@example.com", req.Identifier)
		return &dto.AuthResponse{Message: "Logged in successfully", AccessToken: "access"}, nil
	}

	body := dto.LoginRequest{Identifier: "user1@example.com", Password: "password123"}
	resp, _ := doRequest(t, s.app(), http.MethodPost, "/api/auth/login", body, false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRefreshToken_MissingToken(t *testing.T) {
	s := newTestServices()
	resp, _ := doRequest(t, s.app(), http.MethodPost, "/api/auth/refresh", dto.RefreshTokenRequest{}, false)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogout(t *testing.T) {
	s := newTestServices()
	var revoked string
	s.auth.LogoutFunc = func(ctx context.Context, claims *dto.AuthClaims) error {
		revoked = claims.ID
		return nil
	}

	resp, data := doRequest(t, s.app(), http.MethodPost, "/api/auth/logout", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
	assert.Equal(t, "jti-1", revoked)
}
