package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// LocalOwnerID — ключ c.Locals, под которым лежит владелец заявок из subject токена.
const LocalOwnerID = "ownerId"

// NewAuthMiddleware проверяет Bearer JWT (HS256). Заголовок без префикса
// "Bearer" тоже принимается целиком как токен. Subject должен быть UUID.
func NewAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	secretBytes := []byte(secret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	return func(c *fiber.Ctx) error {
		authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if authHeader == "" {
			return unauthorized(c, "missing Authorization header")
		}
		tokenStr := authHeader
		if scheme, rest, ok := strings.Cut(authHeader, " "); ok && strings.EqualFold(scheme, "Bearer") {
			tokenStr = strings.TrimSpace(rest)
		}
		if tokenStr == "" {
			return unauthorized(c, "empty token")
		}
		claims := &Claims{}
		token, err := parser.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
			return secretBytes, nil
		})
		if err != nil || !token.Valid {
			return unauthorized(c, "invalid or expired token")
		}
		if expectedIssuer != "" && claims.Issuer != expectedIssuer {
			return unauthorized(c, "invalid token issuer")
		}
		ownerID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return unauthorized(c, "invalid token subject")
		}
		c.Locals(LocalOwnerID, ownerID)
		return c.Next()
	}
}

// OwnerID достаёт владельца, положенного middleware.
func OwnerID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(LocalOwnerID).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": message})
}
