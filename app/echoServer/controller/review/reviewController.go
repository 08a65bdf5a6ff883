package review

import (
	"log/slog"
	"net/http"
	"strconv"

	"roomrental/app/echoServer/httperr"
	"roomrental/app/echoServer/sessionx"
	"roomrental/model"
	sessionrepo "roomrental/repository/session"
	reviewsvc "roomrental/service/review"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc      reviewsvc.Service
	Sessions sessionrepo.Store
	V        *validator.Validate
	Log      *slog.Logger
}

// POST /v1/reviews
// @Summary  Submit a review for a completed stay
// @Tags     reviews
// @Router   /v1/reviews [post]
func (ct *Controller) Create(c echo.Context) error {
	var req model.CreateReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}

	err := ct.Svc.Submit(c.Request().Context(), sessionx.Bearer(c), req)
	if err != nil {
		switch reviewsvc.Code(err) {
		case reviewsvc.ErrEmptyComment:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "comment must not be empty"})
		case reviewsvc.ErrBadRating:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "rating must be between 1 and 5"})
		}
		return httperr.Respond(c, ct.Log, ct.Sessions, sessionx.SID(c), err)
	}

	// one refetch so the fresh review shows without another round trip
	page, err := ct.Svc.ListByUser(c.Request().Context(), sessionx.Bearer(c), 1, 0)
	if err != nil {
		ct.Log.Warn("review refetch after submit", "err", err)
		return c.JSON(http.StatusCreated, echo.Map{"message": "review submitted"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "review submitted", "data": page})
}

// POST /v1/reviews/reply
func (ct *Controller) Reply(c echo.Context) error {
	var req model.ReplyReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}

	err := ct.Svc.Reply(c.Request().Context(), sessionx.Bearer(c), req)
	if err != nil {
		if reviewsvc.Code(err) == reviewsvc.ErrEmptyComment {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "comment must not be empty"})
		}
		return httperr.Respond(c, ct.Log, ct.Sessions, sessionx.SID(c), err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "reply submitted"})
}

// GET /v1/reviews/property/:id
func (ct *Controller) ListByProperty(c echo.Context) error {
	page, take := pageQuery(c)
	out, err := ct.Svc.ListByProperty(c.Request().Context(), sessionx.Bearer(c), c.Param("id"), page, take)
	if err != nil {
		return httperr.Respond(c, ct.Log, ct.Sessions, sessionx.SID(c), err)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /v1/reviews/user
func (ct *Controller) ListByUser(c echo.Context) error {
	page, take := pageQuery(c)
	out, err := ct.Svc.ListByUser(c.Request().Context(), sessionx.Bearer(c), page, take)
	if err != nil {
		return httperr.Respond(c, ct.Log, ct.Sessions, sessionx.SID(c), err)
	}
	return c.JSON(http.StatusOK, out)
}

func pageQuery(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	take, _ := strconv.Atoi(c.QueryParam("take"))
	return page, take
}
