package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/kalori/internal/models"
	"github.com/terraincognita07/kalori/internal/services"
)

const (
	sessionCookieName = "session_token"
	contextUserKey    = "current_user"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.auth.Authenticate(sessionTokenFromRequest(c))
	if err != nil {
		if errors.Is(err, services.ErrUnauthenticated) {
			return apiError(c, fiber.StatusUnauthorized, "not authenticated")
		}
		return handler.respondServiceError(c, err)
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}

func currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(contextUserKey).(*models.User)
	return user
}

// sessionTokenFromRequest prefers the cookie and falls back to a bearer header.
func sessionTokenFromRequest(c *fiber.Ctx) string {
	if token := strings.TrimSpace(c.Cookies(sessionCookieName)); token != "" {
		return token
	}
	authorization := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	scheme, token, ok := strings.Cut(authorization, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func (handler *Handler) setSessionCookie(c *fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(services.SessionTTL / time.Second),
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: sameSiteMode(handler.cookieSecure),
	})
}

func (handler *Handler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: sameSiteMode(handler.cookieSecure),
	})
}

// Browsers drop SameSite=None cookies that are not Secure.
func sameSiteMode(secure bool) string {
	if secure {
		return fiber.CookieSameSiteNoneMode
	}
	return fiber.CookieSameSiteLaxMode
}
