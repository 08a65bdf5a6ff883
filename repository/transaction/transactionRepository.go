package transaction

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"roomrental/model"
	"roomrental/repository/backend"
)

// ListParams are the filter criteria forwarded to the backend list
// endpoints. Zero values are omitted from the query string.
type ListParams struct {
	Page     int
	Take     int
	SortBy   string
	SortDir  string
	Status   model.TransactionStatus
	OrderNo  string
	Date     string
}

// CreateReq starts a booking for a room and date range.
type CreateReq struct {
	RoomID        string              `json:"room_id"`
	StartDate     string              `json:"start_date"`
	EndDate       string              `json:"end_date"`
	Quantity      int                 `json:"qty"`
	PaymentMethod model.PaymentMethod `json:"payment_method"`
}

// Repo wraps the backend's transaction endpoints. Validation and state
// transitions happen server-side; every method is a single call.
type Repo interface {
	List(ctx context.Context, token string, role model.Role, p ListParams) (*model.TransactionPage, error)
	Create(ctx context.Context, token string, req CreateReq) (*model.Transaction, error)
	Confirm(ctx context.Context, token, uuid string) (map[string]any, error)
	Reject(ctx context.Context, token, uuid string) (map[string]any, error)
	Cancel(ctx context.Context, token, uuid string) (map[string]any, error)
	CancelTenant(ctx context.Context, token, uuid string) (map[string]any, error)
	Update(ctx context.Context, token, uuid string, fields map[string]any) (map[string]any, error)
	UploadProof(ctx context.Context, token, uuid, filename string, image io.Reader) (map[string]any, error)
	Reminder(ctx context.Context, token, uuid string) (map[string]any, error)
	SnapToken(ctx context.Context, token, uuid string) (string, error)
}

type repo struct{ api *backend.Client }

func New(api *backend.Client) Repo { return &repo{api: api} }

func (r *repo) List(ctx context.Context, token string, role model.Role, p ListParams) (*model.TransactionPage, error) {
	path := "/transactions"
	if role == model.RoleTenant {
		path = "/transactions/tenant"
	}

	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Take > 0 {
		q.Set("take", strconv.Itoa(p.Take))
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	if p.SortDir != "" {
		q.Set("sortOrder", p.SortDir)
	}
	if p.Status != "" {
		q.Set("status", string(p.Status))
	}
	if p.OrderNo != "" {
		q.Set("search", p.OrderNo)
	}
	if p.Date != "" {
		q.Set("date", p.Date)
	}

	var page pageEnvelope
	if err := r.api.Get(ctx, token, path, q, &page); err != nil {
		return nil, err
	}
	return page.toModel(), nil
}

// pageEnvelope tolerates the two shapes the backend has used for the total
// count: meta.total and a top-level total.
type pageEnvelope struct {
	Data  []model.Transaction `json:"data"`
	Meta  *model.PageMeta     `json:"meta"`
	Total int                 `json:"total"`
	Page  int                 `json:"page"`
	Take  int                 `json:"take"`
}

func (e pageEnvelope) toModel() *model.TransactionPage {
	out := &model.TransactionPage{Data: e.Data}
	if e.Meta != nil {
		out.Meta = *e.Meta
		return out
	}
	out.Meta = model.PageMeta{Page: e.Page, Take: e.Take, Total: e.Total}
	return out
}

func (r *repo) Create(ctx context.Context, token string, req CreateReq) (*model.Transaction, error) {
	var out struct {
		Data model.Transaction `json:"data"`
	}
	if err := r.api.PostJSON(ctx, token, "/transactions/create", req, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (r *repo) Confirm(ctx context.Context, token, uuid string) (map[string]any, error) {
	return r.patchAction(ctx, token, "/transactions/confirm", uuid, map[string]any{"accept": true})
}

func (r *repo) Reject(ctx context.Context, token, uuid string) (map[string]any, error) {
	return r.patchAction(ctx, token, "/transactions/confirm", uuid, map[string]any{"accept": false})
}

func (r *repo) Cancel(ctx context.Context, token, uuid string) (map[string]any, error) {
	return r.patchAction(ctx, token, "/transactions/cancel", uuid, nil)
}

func (r *repo) CancelTenant(ctx context.Context, token, uuid string) (map[string]any, error) {
	return r.patchAction(ctx, token, "/transactions/cancel-tenant", uuid, nil)
}

// Update forwards edits to a not-yet-paid booking; which fields are
// editable is the backend's call.
func (r *repo) Update(ctx context.Context, token, uuid string, fields map[string]any) (map[string]any, error) {
	return r.patchAction(ctx, token, "/transactions/update", uuid, fields)
}

func (r *repo) patchAction(ctx context.Context, token, path, uuid string, extra map[string]any) (map[string]any, error) {
	body := map[string]any{"transaction_uuid": uuid}
	for k, v := range extra {
		body[k] = v
	}
	var out map[string]any
	if err := r.api.PatchJSON(ctx, token, path, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) UploadProof(ctx context.Context, token, uuid, filename string, image io.Reader) (map[string]any, error) {
	var out map[string]any
	err := r.api.PatchMultipart(ctx, token, "/transactions/upload-proof", "payment_proof", filename, image,
		map[string]string{"transaction_uuid": uuid}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) Reminder(ctx context.Context, token, uuid string) (map[string]any, error) {
	var out map[string]any
	err := r.api.PostJSON(ctx, token, "/transactions/reminder", map[string]any{"transaction_uuid": uuid}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) SnapToken(ctx context.Context, token, uuid string) (string, error) {
	var out struct {
		Token     string `json:"token"`
		SnapToken string `json:"snap_token"`
	}
	err := r.api.PostJSON(ctx, token, "/transactions/snap-token", map[string]any{"transaction_uuid": uuid}, &out)
	if err != nil {
		return "", err
	}
	if out.Token != "" {
		return out.Token, nil
	}
	return out.SnapToken, nil
}
