package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SessionIDKey is the Fiber locals key holding the shopping session ID.
const SessionIDKey = "session_id"

// sessionCookie names the cookie carrying the session ID between requests.
const sessionCookie = "attire_session"

// ShoppingSession is a Fiber middleware that attaches an opaque shopping
// session ID to every request. The ID is taken from the X-Session-ID header or
// the session cookie, and generated when absent. It keys the shopper's cart
// and wishlist; it is not an identity or authentication token.
func ShoppingSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Get("X-Session-ID")
		if sessionID == "" {
			sessionID = c.Cookies(sessionCookie)
		}
		if sessionID == "" {
			sessionID = uuid.New().String()
			c.Cookie(&fiber.Cookie{
				Name:     sessionCookie,
				Value:    sessionID,
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		c.Locals(SessionIDKey, sessionID)
		// Echo the ID so API clients without cookie jars can carry it forward.
		c.Set("X-Session-ID", sessionID)

		return c.Next()
	}
}

// SessionID reads the shopping session ID attached by ShoppingSession.
func SessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals(SessionIDKey).(string); ok {
		return id
	}
	return ""
}
