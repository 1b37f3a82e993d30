package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"coopart/internal/session"
)

// TokenVerifier turns a bearer token into a session.
type TokenVerifier interface {
	Verify(token string) (session.Session, error)
}

// Session resolves the Authorization bearer token into a session.Session in
// the request's user context. Missing or invalid tokens yield an anonymous
// session; handlers decide whether that is acceptable.
func Session(v TokenVerifier, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := session.Anonymous
		if token, ok := bearerToken(c.Get(fiber.HeaderAuthorization)); ok {
			s, err := v.Verify(token)
			if err != nil {
				rid, _ := c.Locals(RequestIDLocalKey).(string)
				log.Debug("session token rejected", zap.String("request_id", rid), zap.Error(err))
			} else {
				sess = s
			}
		}
		c.SetUserContext(session.WithSession(c.UserContext(), sess))
		return c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
