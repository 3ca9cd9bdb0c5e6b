package middleware

import (
	"errors"
	"fmt"
	"strings"

	"vocab-builder/internal/domain"
	"vocab-builder/internal/dto"
	"vocab-builder/internal/logger"
	"vocab-builder/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	UserIDKey           = "userID" // Key for storing UserID in fiber.Ctx locals
	ClaimsKey           = "authClaims"
)

// Protected is a middleware function that protects routes by requiring a valid
// access token. It sets the userID and the parsed claims in the context.
func Protected(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// fasthttp strips trailing whitespace, so "Bearer " arrives as "Bearer".
		authHeader := strings.TrimSpace(c.Get(AuthorizationHeader))
		if authHeader == "" {
			return unauthorized(c, "MISSING_AUTH_HEADER", "No token, authorization denied")
		}
		if strings.EqualFold(authHeader, strings.TrimSpace(BearerSchema)) {
			return unauthorized(c, "EMPTY_TOKEN", "Token is empty")
		}
		if !strings.HasPrefix(authHeader, BearerSchema) {
			return unauthorized(c, "INVALID_AUTH_SCHEME", "Authorization scheme is not Bearer")
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
		if tokenString == "" {
			return unauthorized(c, "EMPTY_TOKEN", "Token is empty")
		}

		claims, err := authService.ValidateJWT(c.UserContext(), tokenString)
		if err != nil {
			switch {
			case domain.IsCode(err, domain.CodeTokenRevoked):
				return unauthorized(c, string(domain.CodeTokenRevoked), "Token is invalidated, please log in again.")
			case errors.Is(err, jwt.ErrTokenExpired):
				return unauthorized(c, "TOKEN_EXPIRED", "Token expired, please log in again.")
			case errors.Is(err, service.ErrInvalidJWTToken):
				logger.Get().Debug("JWT validation error", zap.Error(err))
				return unauthorized(c, "INVALID_TOKEN", "Token is not valid")
			default:
				return err
			}
		}

		if claims.TokenType != service.TokenTypeAccess {
			return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{
				Code:    "INVALID_TOKEN_TYPE",
				Message: fmt.Sprintf("Invalid token type: expected access, got %s", claims.TokenType),
				Status:  fiber.StatusForbidden,
			})
		}

		c.Locals(UserIDKey, claims.UserID)
		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}

// ClaimsFromContext returns the claims stored by Protected.
func ClaimsFromContext(c *fiber.Ctx) (*dto.AuthClaims, bool) {
	claims, ok := c.Locals(ClaimsKey).(*dto.AuthClaims)
	return claims, ok
}

func unauthorized(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
		Code:    code,
		Message: message,
		Status:  fiber.StatusUnauthorized,
	})
}
