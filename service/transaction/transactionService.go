package transaction

import (
	"context"
	"errors"
	"io"

	"roomrental/model"
	"roomrental/repository/backend"
	transactionrepo "roomrental/repository/transaction"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotFound ErrCode = "NOT_FOUND"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type ListParams = transactionrepo.ListParams
type CreateReq = transactionrepo.CreateReq

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

type Service interface {
	// List fetches one role-scoped page. With an empty token it fails
	// before issuing any request.
	List(ctx context.Context, token string, role model.Role, p ListParams) (*model.TransactionPage, error)

	Create(ctx context.Context, token string, req CreateReq) (*model.Transaction, error)
	Confirm(ctx context.Context, token, uuid string) (map[string]any, error)
	Reject(ctx context.Context, token, uuid string) (map[string]any, error)
	Cancel(ctx context.Context, token, uuid string, role model.Role) (map[string]any, error)
	Update(ctx context.Context, token, uuid string, fields map[string]any) (map[string]any, error)
	UploadProof(ctx context.Context, token, uuid, filename string, image io.Reader) (map[string]any, error)
	Reminder(ctx context.Context, token, uuid string) (map[string]any, error)
}

type service struct {
	r Repo
}

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context, token string, role model.Role, p ListParams) (*model.TransactionPage, error) {
	if token == "" {
		return nil, backend.ErrNoToken
	}
	return s.r.List(ctx, token, role, p)
}

func (s *service) Create(ctx context.Context, token string, req CreateReq) (*model.Transaction, error) {
	if token == "" {
		return nil, backend.ErrNoToken
	}
	return s.r.Create(ctx, token, req)
}

func (s *service) Confirm(ctx context.Context, token, uuid string) (map[string]any, error) {
	if uuid == "" {
		return nil, makeErr(ErrNotFound)
	}
	return s.r.Confirm(ctx, token, uuid)
}

func (s *service) Reject(ctx context.Context, token, uuid string) (map[string]any, error) {
	if uuid == "" {
		return nil, makeErr(ErrNotFound)
	}
	return s.r.Reject(ctx, token, uuid)
}

// Cancel picks the role-specific endpoint: tenants reject bookings on
// their property through cancel-tenant, guests cancel their own order.
func (s *service) Cancel(ctx context.Context, token, uuid string, role model.Role) (map[string]any, error) {
	if uuid == "" {
		return nil, makeErr(ErrNotFound)
	}
	if role == model.RoleTenant {
		return s.r.CancelTenant(ctx, token, uuid)
	}
	return s.r.Cancel(ctx, token, uuid)
}

func (s *service) Update(ctx context.Context, token, uuid string, fields map[string]any) (map[string]any, error) {
	if uuid == "" {
		return nil, makeErr(ErrNotFound)
	}
	return s.r.Update(ctx, token, uuid, fields)
}

func (s *service) UploadProof(ctx context.Context, token, uuid, filename string, image io.Reader) (map[string]any, error) {
	if uuid == "" {
		return nil, makeErr(ErrNotFound)
	}
	return s.r.UploadProof(ctx, token, uuid, filename, image)
}

func (s *service) Reminder(ctx context.Context, token, uuid string) (map[string]any, error) {
	if uuid == "" {
		return nil, makeErr(ErrNotFound)
	}
	return s.r.Reminder(ctx, token, uuid)
}
