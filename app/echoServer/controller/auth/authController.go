package auth

import (
	"log/slog"
	"net/http"

	"roomrental/app/echoServer/httperr"
	"roomrental/app/echoServer/sessionx"
	"roomrental/model"
	sessionrepo "roomrental/repository/session"
	authsvc "roomrental/service/auth"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc      authsvc.Service
	Sessions sessionrepo.Store
	V        *validator.Validate
	Log      *slog.Logger
}

// Login
// @Summary      Login
// @Description  Exchange credentials with the backend; the issued bearer is kept server-side in the session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  model.LoginReq  true  "Login payload"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Router       /v1/auth/login [post]
func (ct *Controller) Login(c echo.Context) error {
	var req model.LoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := ct.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	role, err := ct.Svc.Login(c.Request().Context(), sessionx.SID(c), req)
	if err != nil {
		if authsvc.Code(err) == authsvc.ErrInvalidCreds {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid email or password"})
		}
		return httperr.Respond(c, ct.Log, ct.Sessions, sessionx.SID(c), err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "login success", "role": role})
}

// Register
// @Summary      Register user
// @Tags         auth
// @Router       /v1/auth/register [post]
func (ct *Controller) Register(c echo.Context) error {
	var req model.RegisterReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := ct.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	if err := ct.Svc.Register(c.Request().Context(), req); err != nil {
		return httperr.Respond(c, ct.Log, ct.Sessions, sessionx.SID(c), err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "registered, check your email"})
}

// POST /v1/auth/verify-email
func (ct *Controller) VerifyEmail(c echo.Context) error {
	var req model.VerifyEmailReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := ct.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}
	if err := ct.Svc.VerifyEmail(c.Request().Context(), req); err != nil {
		return httperr.Respond(c, ct.Log, ct.Sessions, sessionx.SID(c), err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "email verified"})
}

// POST /v1/auth/resend-verification
func (ct *Controller) ResendVerification(c echo.Context) error {
	var req model.ResendVerificationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := ct.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}
	if err := ct.Svc.ResendVerification(c.Request().Context(), req); err != nil {
		return httperr.Respond(c, ct.Log, ct.Sessions, sessionx.SID(c), err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "verification sent"})
}

// POST /v1/auth/logout
func (ct *Controller) Logout(c echo.Context) error {
	if err := ct.Svc.Logout(c.Request().Context(), sessionx.SID(c)); err != nil {
		ct.Log.Error("logout", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}
