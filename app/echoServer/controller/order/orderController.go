package order

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"roomrental/app/echoServer/httperr"
	"roomrental/app/echoServer/sessionx"
	"roomrental/model"
	"roomrental/repository/backend"
	sessionrepo "roomrental/repository/session"
	authsvc "roomrental/service/auth"
	txsvc "roomrental/service/transaction"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// listerIdleTTL bounds the cache: entries a session has not touched for
// this long are swept on the next access, matching the redis session TTL
// order of magnitude so anonymous traffic cannot grow the map forever.
const listerIdleTTL = time.Hour

type listerEntry struct {
	l    *txsvc.Lister
	seen time.Time
}

type Controller struct {
	Svc      txsvc.Service
	Auth     authsvc.Service
	Sessions sessionrepo.Store
	V        *validator.Validate
	Log      *slog.Logger

	mu      sync.Mutex
	listers map[string]*listerEntry
	now     func() time.Time
}

// listerFor keeps one Lister per session+role, so local row mutations and
// the stale-fetch guard carry across requests of the same page instance.
// Idle entries are evicted lazily on each lookup.
func (ct *Controller) listerFor(sid string, role model.Role) *txsvc.Lister {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	if ct.listers == nil {
		ct.listers = make(map[string]*listerEntry)
	}
	if ct.now == nil {
		ct.now = time.Now
	}
	now := ct.now()
	for k, e := range ct.listers {
		if now.Sub(e.seen) > listerIdleTTL {
			delete(ct.listers, k)
		}
	}

	key := sid + ":" + string(role)
	e, ok := ct.listers[key]
	if !ok {
		e = &listerEntry{l: txsvc.NewLister(ct.Svc, role)}
		ct.listers[key] = e
	}
	e.seen = now
	return e.l
}

func (ct *Controller) role(c echo.Context) model.Role {
	role, err := ct.Auth.RoleFor(c.Request().Context(), sessionx.SID(c))
	if err != nil {
		return model.RoleUser
	}
	return role
}

// GET /v1/orders
// @Summary  List transactions for the signed-in principal
// @Tags     orders
// @Produce  json
// @Success  200  {object}  map[string]any
// @Failure  401  {object}  map[string]any
// @Router   /v1/orders [get]
func (ct *Controller) List(c echo.Context) error {
	var q ListOrdersQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid query"})
	}
	if err := ct.V.Struct(q); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}

	role := ct.role(c)
	l := ct.listerFor(sessionx.SID(c), role)
	l.Fetch(c.Request().Context(), sessionx.Bearer(c), txsvc.ListParams{
		Page:    q.Page,
		Take:    q.Take,
		SortBy:  q.SortBy,
		SortDir: q.SortDir,
		Status:  model.TransactionStatus(q.Status),
		OrderNo: q.Search,
		Date:    q.Date,
	})

	if msg := l.Err(); msg != "" {
		if l.ErrKind() == backend.KindUnauthenticated {
			return httperr.Respond(c, ct.Log, ct.Sessions, sessionx.SID(c),
				&backend.Error{Kind: backend.KindUnauthenticated, Message: msg, Status: http.StatusUnauthorized})
		}
		// list errors are display strings; the view stays interactive
		return c.JSON(http.StatusOK, echo.Map{"data": nil, "error": msg})
	}

	page := l.Page()
	if page == nil {
		return c.JSON(http.StatusOK, echo.Map{"data": nil, "meta": nil})
	}
	now := time.Now()
	actions := make(map[string]map[txsvc.Action]bool, len(page.Data))
	for _, t := range page.Data {
		actions[t.UUID] = txsvc.PermittedActions(t, now)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"data":    page.Data,
		"meta":    page.Meta,
		"actions": actions,
	})
}

// POST /v1/orders
func (ct *Controller) Create(c echo.Context) error {
	var req CreateOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := ct.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	tx, err := ct.Svc.Create(c.Request().Context(), sessionx.Bearer(c), txsvc.CreateReq{
		RoomID:        req.RoomID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Quantity:      req.Quantity,
		PaymentMethod: model.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		return httperr.Respond(c, ct.Log, ct.Sessions, sessionx.SID(c), err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"data": tx})
}

// PATCH /v1/orders/:uuid/confirm  (tenant accepts a proof)
func (ct *Controller) Confirm(c echo.Context) error {
	return ct.action(c, func(c echo.Context, uuid string) (map[string]any, error) {
		return ct.Svc.Confirm(c.Request().Context(), sessionx.Bearer(c), uuid)
	}, "confirmed")
}

// PATCH /v1/orders/:uuid/reject  (tenant rejects a proof)
func (ct *Controller) Reject(c echo.Context) error {
	return ct.action(c, func(c echo.Context, uuid string) (map[string]any, error) {
		return ct.Svc.Reject(c.Request().Context(), sessionx.Bearer(c), uuid)
	}, "rejected")
}

// PATCH /v1/orders/:uuid/cancel
func (ct *Controller) Cancel(c echo.Context) error {
	uuid := c.Param("uuid")
	role := ct.role(c)
	raw, err := ct.Svc.Cancel(c.Request().Context(), sessionx.Bearer(c), uuid, role)
	if err != nil {
		if txsvc.Code(err) == txsvc.ErrNotFound {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
		}
		return httperr.Respond(c, ct.Log, ct.Sessions, sessionx.SID(c), err)
	}

	// drop the row locally so the list reflects the cancel immediately
	ct.listerFor(sessionx.SID(c), role).RemoveLocal(uuid)

	return c.JSON(http.StatusOK, echo.Map{"message": "cancelled", "data": raw})
}

// PATCH /v1/orders/:uuid  (edit a not-yet-paid booking)
func (ct *Controller) Update(c echo.Context) error {
	uuid := c.Param("uuid")
	var fields map[string]any
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}

	raw, err := ct.Svc.Update(c.Request().Context(), sessionx.Bearer(c), uuid, fields)
	if err != nil {
		if txsvc.Code(err) == txsvc.ErrNotFound {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
		}
		return httperr.Respond(c, ct.Log, ct.Sessions, sessionx.SID(c), err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "updated", "data": raw})
}

// PATCH /v1/orders/:uuid/proof
func (ct *Controller) UploadProof(c echo.Context) error {
	uuid := c.Param("uuid")
	fh, err := c.FormFile("payment_proof")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "payment proof image required"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "could not read upload"})
	}
	defer f.Close()

	raw, err := ct.Svc.UploadProof(c.Request().Context(), sessionx.Bearer(c), uuid, fh.Filename, f)
	if err != nil {
		if txsvc.Code(err) == txsvc.ErrNotFound {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
		}
		return httperr.Respond(c, ct.Log, ct.Sessions, sessionx.SID(c), err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":  "proof uploaded",
		"data":     raw,
		"redirect": "/orders?upload=" + newUploadRef(),
	})
}

// POST /v1/orders/:uuid/reminder
func (ct *Controller) Reminder(c echo.Context) error {
	return ct.action(c, func(c echo.Context, uuid string) (map[string]any, error) {
		return ct.Svc.Reminder(c.Request().Context(), sessionx.Bearer(c), uuid)
	}, "reminder sent")
}

func (ct *Controller) action(c echo.Context, fn func(echo.Context, string) (map[string]any, error), okMsg string) error {
	uuid := c.Param("uuid")
	raw, err := fn(c, uuid)
	if err != nil {
		if txsvc.Code(err) == txsvc.ErrNotFound {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
		}
		return httperr.Respond(c, ct.Log, ct.Sessions, sessionx.SID(c), err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": okMsg, "data": raw})
}

func newUploadRef() string { return uuid.NewString() }
