// app/echoServer/httperr/httperr.go
package httperr

import (
	"log/slog"
	"net/http"

	"roomrental/repository/backend"
	sessionrepo "roomrental/repository/session"

	"github.com/labstack/echo/v4"
)

// Respond maps a failed backend call onto the response the UI expects.
// A 401 from the backend clears the stored token and tells the client to
// go to the login route; everything else is a non-fatal notice.
func Respond(c echo.Context, log *slog.Logger, sessions sessionrepo.Store, sid string, err error) error {
	switch backend.KindOf(err) {
	case backend.KindAuthMissing:
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": err.Error()})
	case backend.KindUnauthenticated:
		if sessions != nil && sid != "" {
			// idempotent; concurrent 401s may each clear
			_ = sessions.Clear(c.Request().Context(), sid)
		}
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"message":  "session expired",
			"redirect": "/login",
		})
	case backend.KindForbidden:
		return c.JSON(http.StatusForbidden, echo.Map{"message": err.Error()})
	case backend.KindNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": err.Error()})
	case backend.KindValidation:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	case backend.KindServer, backend.KindNetwork:
		return c.JSON(http.StatusBadGateway, echo.Map{"message": err.Error()})
	default:
		rid := c.Response().Header().Get(echo.HeaderXRequestID)
		log.Error("unhandled backend error", "err", err, "req_id", rid, "path", c.Path())
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}
