// Package middleware provides HTTP middleware components for the application.
// It includes authentication and permission checks usable with the fiber web
// framework.
package middleware

import (
	"log"
	"strings"

	"walletstack/internal/config"
	"walletstack/internal/models"
	"walletstack/internal/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthMiddleware resolves the calling actor from either a JWT bearer token
// or an API key and stores the resulting claims in the request context.
type AuthMiddleware struct {
	apiKeys repositories.APIKeyRepository
	users   repositories.UserRepository
}

func NewAuthMiddleware(apiKeys repositories.APIKeyRepository, users repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		apiKeys: apiKeys,
		users:   users,
	}
}

// Handler authenticates the request. It accepts:
//   - Authorization: Bearer <jwt> signed with JWT_SECRET
//   - X-API-Key: <public_id>.<secret>
//
// On success the claims are stored under c.Locals("claims") and the user ID
// under c.Locals("userID").
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	if apiKey := c.Get("X-API-Key"); apiKey != "" {
		return m.handleAPIKey(c, apiKey)
	}

	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing credentials"})
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.ParseWithClaims(tokenString, &models.ActorClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(config.GetEnv("JWT_SECRET", "your-secret-key")), nil
	})
	if err != nil || !token.Valid {
		log.Printf("Token validation error: %v", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	claims, ok := token.Claims.(*models.ActorClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid claims"})
	}

	// Make sure the user behind the token still exists.
	if _, err := m.users.GetByID(c.Context(), claims.UserID); err != nil {
		log.Printf("User %d from token not found", claims.UserID)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	c.Locals("claims", claims)
	c.Locals("userID", claims.UserID)
	return c.Next()
}

func (m *AuthMiddleware) handleAPIKey(c *fiber.Ctx, raw string) error {
	publicID, secret, found := strings.Cut(raw, ".")
	if !found || publicID == "" || secret == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid api key format"})
	}

	key, err := m.apiKeys.GetByPublicID(c.Context(), publicID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid api key"})
	}

	if key.IsRevoked() {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "api key revoked"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(key.SecretHash), []byte(secret)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid api key"})
	}

	if err := m.apiKeys.TouchLastUsed(c.Context(), key.ID); err != nil {
		log.Printf("Failed to update last-used timestamp for api key %s: %v", publicID, err)
	}

	claims := &models.ActorClaims{
		UserID:      key.UserID,
		ActorType:   models.ActorTypeService,
		APIKeyID:    key.ID,
		Permissions: key.PermissionList(),
	}

	c.Locals("claims", claims)
	c.Locals("userID", claims.UserID)
	return c.Next()
}

// RequirePermission returns a middleware that checks for a specific
// permission. JWT-authenticated users carry all permissions; API keys only
// carry what they were minted with.
func RequirePermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("claims").(*models.ActorClaims)
		if !ok || claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}

		if claims.ActorType == models.ActorTypeUser || claims.HasPermission(permission) {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "insufficient permissions"})
	}
}
