package review

import (
	"context"
	"errors"
	"strings"

	"roomrental/model"
	"roomrental/repository/backend"
)

// errors used by controllers

type ErrCode string

const (
	ErrEmptyComment ErrCode = "EMPTY_COMMENT"
	ErrBadRating    ErrCode = "BAD_RATING"
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

type Repo interface {
	Create(ctx context.Context, token string, req model.CreateReviewReq) error
	Reply(ctx context.Context, token string, req model.ReplyReviewReq) error
	ListByProperty(ctx context.Context, token, propertyID string, page, take int) (*model.ReviewPage, error)
	ListByUser(ctx context.Context, token string, page, take int) (*model.ReviewPage, error)
}

type Service interface {
	// Submit validates locally first: a blank comment or out-of-range
	// rating never reaches the network.
	Submit(ctx context.Context, token string, req model.CreateReviewReq) error

	// Reply mirrors Submit for a tenant answer; only the comment is
	// checked client-side.
	Reply(ctx context.Context, token string, req model.ReplyReviewReq) error

	ListByProperty(ctx context.Context, token, propertyID string, page, take int) (*model.ReviewPage, error)
	ListByUser(ctx context.Context, token string, page, take int) (*model.ReviewPage, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Submit(ctx context.Context, token string, req model.CreateReviewReq) error {
	if token == "" {
		return backend.ErrNoToken
	}
	if strings.TrimSpace(req.Comment) == "" {
		return makeErr(ErrEmptyComment)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return makeErr(ErrBadRating)
	}
	return s.r.Create(ctx, token, req)
}

func (s *service) Reply(ctx context.Context, token string, req model.ReplyReviewReq) error {
	if token == "" {
		return backend.ErrNoToken
	}
	if strings.TrimSpace(req.Comment) == "" {
		return makeErr(ErrEmptyComment)
	}
	return s.r.Reply(ctx, token, req)
}

func (s *service) ListByProperty(ctx context.Context, token, propertyID string, page, take int) (*model.ReviewPage, error) {
	return s.r.ListByProperty(ctx, token, propertyID, page, take)
}

func (s *service) ListByUser(ctx context.Context, token string, page, take int) (*model.ReviewPage, error) {
	return s.r.ListByUser(ctx, token, page, take)
}
