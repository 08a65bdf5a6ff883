package payment

import (
	"log/slog"
	"net/http"

	"roomrental/app/echoServer/httperr"
	"roomrental/app/echoServer/sessionx"
	sessionrepo "roomrental/repository/session"
	paymentsvc "roomrental/service/payment"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc      paymentsvc.Service
	Sessions sessionrepo.Store
	V        *validator.Validate
	Log      *slog.Logger
}

type checkoutReq struct {
	TransactionUUID string `json:"transaction_uuid" validate:"required"`
}

type callbackReq struct {
	TransactionUUID string `json:"transaction_uuid" validate:"required"`
	Event           string `json:"event" validate:"required,oneof=success pending error closed"`
}

// POST /v1/payment/checkout
// @Summary  Begin a gateway checkout: widget descriptor plus snap token
// @Tags     payment
// @Router   /v1/payment/checkout [post]
func (ct *Controller) Checkout(c echo.Context) error {
	var req checkoutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := ct.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}

	out, err := ct.Svc.Begin(c.Request().Context(), sessionx.SID(c), sessionx.Bearer(c), req.TransactionUUID)
	if err != nil {
		if paymentsvc.Code(err) == paymentsvc.ErrBusy {
			return c.JSON(http.StatusConflict, echo.Map{"message": "another payment is in progress"})
		}
		return httperr.Respond(c, ct.Log, ct.Sessions, sessionx.SID(c), err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

// POST /v1/payment/callback  (widget outcome reported by the page)
func (ct *Controller) Callback(c echo.Context) error {
	var req callbackReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := ct.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}

	out, err := ct.Svc.Resolve(sessionx.SID(c), req.TransactionUUID, paymentsvc.Event(req.Event))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "unknown event"})
	}
	return c.JSON(http.StatusOK, out)
}

// GET /payment/:result  (gateway redirect landing)
//
// Pure mapping, no backend call: the result segment becomes the payment
// status query the orders view reads, the order id passes through.
func (ct *Controller) Redirect(c echo.Context) error {
	target := paymentsvc.OrdersRedirectURL(c.Param("result"), c.QueryParam("order_id"))
	return c.Redirect(http.StatusFound, target)
}
