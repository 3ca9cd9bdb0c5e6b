package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vocab-builder/internal/cache"
	"vocab-builder/internal/config"
	"vocab-builder/internal/domain"
	"vocab-builder/internal/dto"
	"vocab-builder/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var ErrInvalidJWTToken = errors.New("invalid jwt token")

// AuthService defines the interface for authentication operations.
type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshTokenString string) (*dto.AuthResponse, error)
	// Logout revokes the token described by claims until it expires.
	Logout(ctx context.Context, claims *dto.AuthClaims) error
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
	CreateJWT(ctx context.Context, userID string, ttl time.Duration, tokenType string) (string, error)
}

type authServiceImpl struct {
	userRepo domain.UserRepository
	cache    domain.Cache
	jwtCfg   config.JWTConfig
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(userRepo domain.UserRepository, cache domain.Cache, jwtCfg config.JWTConfig) (AuthService, error) {
	if len(jwtCfg.SecretKey) < 32 {
		return nil, errors.New("jwt secret key must be at least 32 bytes long")
	}
	return &authServiceImpl{
		userRepo: userRepo,
		cache:    cache,
		jwtCfg:   jwtCfg,
	}, nil
}

// HashPassword hashes a plain password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *authServiceImpl) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	appLogger := logger.Get()

	existing, err := s.userRepo.GetUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, domain.NewInternalError("Failed to create user", err)
	}
	if existing == nil {
		existing, err = s.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
		if err != nil {
			return nil, domain.NewInternalError("Failed to create user", err)
		}
	}
	if existing != nil {
		return nil, domain.NewConflictError("Username or email already exists")
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, domain.NewInternalError("Failed to create user", err)
	}

	user := domain.NewUser(req.Username, req.Email, hash, req.FirstName, req.LastName)
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, domain.NewInternalError("Failed to create user", err)
	}
	appLogger.Info("New user signed up", zap.String("userID", user.ID), zap.String("username", user.Username))

	return s.issueTokens(ctx, user.ID, "User created successfully")
}

// Login accepts either the username or the email as identifier.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	identifier := strings.TrimSpace(req.Identifier)

	user, err := s.userRepo.GetUserByUsername(ctx, identifier)
	if err != nil {
		return nil, domain.NewInternalError("Failed to login", err)
	}
	if user == nil {
		user, err = s.userRepo.GetUserByEmail(ctx, strings.ToLower(identifier))
		if err != nil {
			return nil, domain.NewInternalError("Failed to login", err)
		}
	}
	if user == nil || !CheckPassword(user.PasswordHash, req.Password) {
		logger.Get().Info("Login rejected", zap.String("identifier", identifier))
		return nil, domain.NewInvalidCredentialsError()
	}

	logger.Get().Info("User logged in", zap.String("userID", user.ID))
	return s.issueTokens(ctx, user.ID, "Logged in successfully")
}

func (s *authServiceImpl) issueTokens(ctx context.Context, userID, message string) (*dto.AuthResponse, error) {
	accessToken, err := s.CreateJWT(ctx, userID, s.jwtCfg.AccessTokenTTL, TokenTypeAccess)
	if err != nil {
		return nil, domain.NewInternalError("Failed to create access token", err)
	}
	refreshToken, err := s.CreateJWT(ctx, userID, s.jwtCfg.RefreshTokenTTL, TokenTypeRefresh)
	if err != nil {
		return nil, domain.NewInternalError("Failed to create refresh token", err)
	}
	return &dto.AuthResponse{
		Message:      message,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       userID,
	}, nil
}

func (s *authServiceImpl) CreateJWT(ctx context.Context, userID string, ttl time.Duration, tokenType string) (string, error) {
	now := time.Now()
	claims := dto.AuthClaims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   userID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtCfg.SecretKey))
}

// ValidateJWT parses the token and rejects it when it was revoked by a logout.
func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtCfg.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Debug("JWT token expired", zap.Error(err))
		} else {
			logger.Get().Warn("JWT validation failed", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*dto.AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidJWTToken
	}

	if s.cache != nil && claims.ID != "" {
		revoked, err := s.cache.Exists(ctx, cache.RevokedTokenKey(claims.ID))
		if err != nil {
			return nil, domain.NewInternalError("Failed to check token revocation", err)
		}
		if revoked {
			return nil, domain.NewTokenRevokedError()
		}
	}
	return claims, nil
}

// RefreshToken issues a new pair and revokes the presented refresh token.
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshTokenString string) (*dto.AuthResponse, error) {
	claims, err := s.ValidateJWT(ctx, refreshTokenString)
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) && domainErr.Code != domain.CodeTokenRevoked {
			return nil, err
		}
		return nil, domain.NewUnauthorizedError("Invalid refresh token")
	}
	if claims.TokenType != TokenTypeRefresh {
		return nil, domain.NewUnauthorizedError("Not a refresh token")
	}

	user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to refresh token", err)
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError(claims.UserID)
	}

	// claiming the revocation key is what consumes the refresh token, so two
	// concurrent refreshes cannot both succeed
	claimed, err := s.revokeOnce(ctx, claims)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, domain.NewUnauthorizedError("Invalid refresh token")
	}

	logger.Get().Info("JWT token refreshed", zap.String("userID", user.ID))
	return s.issueTokens(ctx, user.ID, "Token refreshed successfully")
}

func (s *authServiceImpl) Logout(ctx context.Context, claims *dto.AuthClaims) error {
	if claims == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return domain.NewUnauthorizedError("Token cannot be revoked")
	}
	if s.cache == nil {
		return domain.NewInternalError("Token revocation is not available", nil)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.cache.Set(ctx, cache.RevokedTokenKey(claims.ID), claims.UserID, ttl); err != nil {
		return domain.NewInternalError("Failed to logout", err)
	}
	logger.Get().Info("Token revoked", zap.String("userID", claims.UserID), zap.String("tokenType", claims.TokenType))
	return nil
}

// revokeOnce marks the token revoked unless it already is. It reports whether
// this call did the revoking.
func (s *authServiceImpl) revokeOnce(ctx context.Context, claims *dto.AuthClaims) (bool, error) {
	if claims.ID == "" || claims.ExpiresAt == nil {
		return false, domain.NewUnauthorizedError("Token cannot be revoked")
	}
	if s.cache == nil {
		return false, domain.NewInternalError("Token revocation is not available", nil)
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return false, nil
	}
	claimed, err := s.cache.SetNX(ctx, cache.RevokedTokenKey(claims.ID), claims.UserID, ttl)
	if err != nil {
		return false, domain.NewInternalError("Failed to refresh token", err)
	}
	return claimed, nil
}
