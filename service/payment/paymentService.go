package payment

import (
	"context"
	"errors"
	"sync"

	"roomrental/repository/backend"
)

// errors used by controllers

type ErrCode string

const (
	ErrBusy         ErrCode = "CHECKOUT_BUSY"
	ErrUnknownEvent ErrCode = "UNKNOWN_EVENT"
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

// TokenRequester mints a one-time snap token for a transaction; the
// backend owns issuance.
type TokenRequester interface {
	SnapToken(ctx context.Context, token, uuid string) (string, error)
}

// Checkout is one session's view of the pay-now flow. At most one
// transaction per session is "processing" at a time; the UI disables that
// row's pay action until the widget reports an outcome. Sessions never
// block each other.
type Checkout struct {
	ID        string `json:"transaction_uuid"`
	SnapToken string `json:"snap_token"`
	Widget    Widget `json:"widget"`
}

// Event is a widget callback outcome.
type Event string

const (
	EventSuccess Event = "success"
	EventPending Event = "pending"
	EventError   Event = "error"
	EventClosed  Event = "closed"
)

// Outcome tells the caller what to do after a widget callback: which
// notice to show and whether to refetch the transaction list.
type Outcome struct {
	Notice  string `json:"notice"`
	Refetch bool   `json:"refetch"`
}

type Service interface {
	// Begin loads the widget, requests a snap token, and marks the
	// session's transaction as processing. Fails fast when no bearer
	// token exists or the same session already has a different
	// transaction mid-checkout.
	Begin(ctx context.Context, sid, bearer, uuid string) (*Checkout, error)

	// Resolve maps a widget callback to its outcome and releases the
	// session's processing marker where the flow has ended.
	Resolve(sid, uuid string, ev Event) (Outcome, error)

	// Processing reports the transaction the session has mid-checkout,
	// or "".
	Processing(sid string) string
}

type service struct {
	tokens TokenRequester
	loader *WidgetLoader

	mu         sync.Mutex
	processing map[string]string // sid -> transaction uuid mid-checkout
}

func New(tokens TokenRequester, loader *WidgetLoader) Service {
	return &service{tokens: tokens, loader: loader, processing: make(map[string]string)}
}

func (s *service) Begin(ctx context.Context, sid, bearer, uuid string) (*Checkout, error) {
	if bearer == "" {
		return nil, backend.ErrNoToken
	}

	s.mu.Lock()
	if cur := s.processing[sid]; cur != "" && cur != uuid {
		s.mu.Unlock()
		return nil, makeErr(ErrBusy)
	}
	s.processing[sid] = uuid
	s.mu.Unlock()

	widget, err := s.loader.Ensure(ctx)
	if err != nil {
		s.release(sid, uuid)
		return nil, err
	}

	snap, err := s.tokens.SnapToken(ctx, bearer, uuid)
	if err != nil {
		s.release(sid, uuid)
		return nil, err
	}

	return &Checkout{ID: uuid, SnapToken: snap, Widget: widget}, nil
}

func (s *service) Resolve(sid, uuid string, ev Event) (Outcome, error) {
	switch ev {
	case EventSuccess:
		s.release(sid, uuid)
		return Outcome{Notice: "payment successful", Refetch: true}, nil
	case EventPending:
		s.release(sid, uuid)
		return Outcome{Notice: "payment is being processed", Refetch: true}, nil
	case EventError:
		// widget stays open for a retry within the same session
		return Outcome{Notice: "payment failed, please try again"}, nil
	case EventClosed:
		// closing without completing frees the row so pay can be retried
		s.release(sid, uuid)
		return Outcome{}, nil
	default:
		return Outcome{}, makeErr(ErrUnknownEvent)
	}
}

func (s *service) Processing(sid string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processing[sid]
}

func (s *service) release(sid, uuid string) {
	s.mu.Lock()
	if s.processing[sid] == uuid {
		delete(s.processing, sid)
	}
	s.mu.Unlock()
}
