package middleware

import (
	"errors"
	"fmt"
	"iiacademy/config"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// TokenCookie is the fallback cookie checked when no Authorization
// header is present.
const TokenCookie = "ii_token"

// GenerateJWT generates a signed token for the user
func GenerateJWT(userID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"role":   role,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(time.Duration(config.AppConfig.TokenExpMins) * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// extractToken pulls the bearer token from the Authorization header
// ("Bearer <token>" or the bare value), falling back to the ii_token
// cookie.
func extractToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		if strings.HasPrefix(authHeader, "Bearer ") {
			return authHeader[len("Bearer "):]
		}
		// Header provided without the Bearer prefix; treat the whole
		// value as the token.
		if !strings.Contains(authHeader, " ") {
			return authHeader
		}
		return ""
	}

	return c.Cookies(TokenCookie)
}

// JWTMiddleware is a middleware to check for a valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	tokenString := extractToken(c)
	if tokenString == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "No token provided, authorization denied!", nil)
	}

	// Parse and validate the token
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})

	if err != nil || !token.Valid {
		// An expired token means re-login; anything else is treated as
		// hostile and gets a generic rejection.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Token expired!", nil)
		}
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token!", nil)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload!", nil)
	}

	// JWT number claims decode as float64
	userID := claims["userId"].(float64)
	role, _ := claims["role"].(string)

	c.Locals("userId", uint(userID))
	c.Locals("role", role)

	return c.Next()
}

// RequireRole returns a middleware that rejects requests whose token
// role is not in the allowed set. Must run after JWTMiddleware.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Not authenticated!", nil)
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		return JsonResponse(c, fiber.StatusForbidden, false, "Access denied, insufficient privileges!", nil)
	}
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errors)
}
