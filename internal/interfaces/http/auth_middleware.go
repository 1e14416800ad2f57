package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vstock/ventas-api/internal/application/dto"
	"github.com/vstock/ventas-api/pkg/jwt"
)

// Locals keys para UserID y UserType en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUserType = "user_type"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID y UserType a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, userType, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUserType, userType)
		return c.Next()
	}
}

// RequireType corta con 403 si el tipo de usuario del token no está en la
// lista. Se cuelga después de AuthMiddleware en las rutas de vendedor.
func RequireType(types ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userType := GetUserType(c)
		for _, t := range types {
			if userType == t {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "esta operación requiere una cuenta de vendedor"})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUserType devuelve el UserType del contexto (después del middleware de auth).
func GetUserType(c *fiber.Ctx) string {
	v := c.Locals(LocalUserType)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
