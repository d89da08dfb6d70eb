package http

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/timebox-api/internal/application/dto"
	"github.com/jhoicas/timebox-api/pkg/jwt"
)

// Locals keys para los claims del token en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUserName = "user_name"
	LocalRole     = "role"
)

// AuthMiddleware valida el Bearer Token JWT y deja UserID, nombre y rol en c.Locals.
// Los tokens los emite el servicio de autenticación externo.
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
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUserName, claims.Name)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// RequireRole permite el paso solo si el rol del token está entre los indicados.
// Debe usarse DESPUÉS de AuthMiddleware.
//   - 401 MISSING_ROLE → token sin claim de rol.
//   - 403 FORBIDDEN    → rol no autorizado para la ruta.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		if _, ok := allowed[role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
		}
		return c.Next()
	}
}

// RequireSelfOrRole deja pasar a los roles indicados; el resto solo accede a recursos propios,
// es decir cuando el parámetro de ruta coincide con su UserID o su nombre.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireSelfOrRole(param string, roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		if _, ok := allowed[GetRole(c)]; ok {
			return c.Next()
		}
		owner := pathParam(c, param)
		if owner != "" && (owner == GetUserID(c) || owner == GetUserName(c)) {
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puede consultar sus propios recursos"})
	}
}

// pathParam parámetro de ruta decodificado ("Ana%20P%C3%A9rez" → "Ana Pérez").
func pathParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if s, err := url.PathUnescape(raw); err == nil {
		return s
	}
	return raw
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetUserName devuelve el nombre del usuario del token.
func GetUserName(c *fiber.Ctx) string { return localString(c, LocalUserName) }

// GetRole devuelve el rol del token.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }
