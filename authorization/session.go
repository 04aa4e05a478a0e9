// Package authorization guards the back-office pages with a signed session
// cookie.
package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	CookieName  = "clinicdesk_session"
	userKey     = "username"
	loginTarget = "/login"
)

// SessionParser validates a session token and returns its username.
type SessionParser interface {
	ParseSession(token string) (string, error)
}

// RequireSession redirects to the login page unless the request carries a
// valid session cookie.
func RequireSession(p SessionParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, loginTarget)
			c.Abort()
			return
		}
		username, err := p.ParseSession(token)
		if err != nil {
			log.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("Rejected session")
			c.Redirect(http.StatusFound, loginTarget)
			c.Abort()
			return
		}
		c.Set(userKey, username)
		c.Next()
	}
}

// Username is the logged-in user set by RequireSession.
func Username(c *gin.Context) string {
	return c.GetString(userKey)
}
