package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/pkg/jwt"
)

// LocalSubject key en c.Locals para el sujeto del token (cliente del API).
const LocalSubject = "subject"

// AuthMiddleware valida el Bearer Token JWT y deja el sujeto en c.Locals.
// Los tokens se emiten fuera de banda (no hay registro de usuarios en este servicio).
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
		subject, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalSubject, subject)
		return c.Next()
	}
}

// GetSubject devuelve el sujeto del token (después del middleware de auth).
func GetSubject(c *fiber.Ctx) string {
	v := c.Locals(LocalSubject)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
