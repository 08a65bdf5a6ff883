package dashboard

import (
	"log/slog"
	"net/http"

	"roomrental/app/echoServer/httperr"
	"roomrental/app/echoServer/sessionx"
	"roomrental/model"
	sessionrepo "roomrental/repository/session"
	dashsvc "roomrental/service/dashboard"
	txsvc "roomrental/service/transaction"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc      dashsvc.Service
	Tx       txsvc.Service
	Sessions sessionrepo.Store
	Log      *slog.Logger
}

// GET /v1/dashboard/summary
//
// Page-local approximation: reduces the tenant's current transaction page.
// The /reports endpoints are the authoritative numbers.
func (ct *Controller) Summary(c echo.Context) error {
	page, err := ct.Tx.List(c.Request().Context(), sessionx.Bearer(c), model.RoleTenant, txsvc.ListParams{Page: 1})
	if err != nil {
		return httperr.Respond(c, ct.Log, ct.Sessions, sessionx.SID(c), err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"data":          ct.Svc.Summarize(page),
		"approximation": true,
	})
}

// GET /v1/dashboard/reports/sales
func (ct *Controller) SalesReport(c echo.Context) error {
	out, err := ct.Svc.SalesReport(c.Request().Context(), sessionx.Bearer(c),
		c.QueryParam("start_date"), c.QueryParam("end_date"))
	if err != nil {
		return httperr.Respond(c, ct.Log, ct.Sessions, sessionx.SID(c), err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

// GET /v1/dashboard/reports/property
func (ct *Controller) PropertyReport(c echo.Context) error {
	out, err := ct.Svc.PropertyReport(c.Request().Context(), sessionx.Bearer(c))
	if err != nil {
		return httperr.Respond(c, ct.Log, ct.Sessions, sessionx.SID(c), err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}
