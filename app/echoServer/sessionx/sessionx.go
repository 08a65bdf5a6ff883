// app/echoServer/sessionx/sessionx.go
package sessionx

import (
	"errors"
	"net/http"

	sessionrepo "roomrental/repository/session"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const sidCookie = "rr_sid"

// Middleware assigns a session id cookie when absent and resolves the
// stored bearer token into the request context. Handlers decide whether an
// empty bearer is an error; list/action services surface it as
// "authentication required" without calling the backend.
func Middleware(sessions sessionrepo.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := ""
			if ck, err := c.Cookie(sidCookie); err == nil && ck.Value != "" {
				sid = ck.Value
			} else {
				sid = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     sidCookie,
					Value:    sid,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			c.Set("sid", sid)

			token, err := sessions.Token(c.Request().Context(), sid)
			switch {
			case err == nil:
				c.Set("bearer", token)
			case errors.Is(err, sessionrepo.ErrNoSession):
				// signed out; handlers surface "authentication required"
			default:
				// store outage is not "signed out"
				return c.JSON(http.StatusBadGateway, echo.Map{
					"message": "something went wrong, try again later",
				})
			}
			return next(c)
		}
	}
}

// SID returns the request's session id.
func SID(c echo.Context) string {
	sid, _ := c.Get("sid").(string)
	return sid
}

// Bearer returns the resolved backend token, or "" when signed out.
func Bearer(c echo.Context) string {
	tok, _ := c.Get("bearer").(string)
	return tok
}
