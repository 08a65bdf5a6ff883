package auth

import (
	"context"
	"errors"
	"time"

	"roomrental/model"
	"roomrental/repository/backend"
	sessionrepo "roomrental/repository/session"
	"roomrental/util/jwtclaims"
)

// errors used by controllers

type ErrCode string

const (
	ErrInvalidCreds ErrCode = "INVALID_CREDENTIALS"
	ErrNoSession    ErrCode = "NO_SESSION"
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

// Repo wraps the backend's /auth endpoints. Credential checks and token
// issuance are entirely the backend's.
type Repo interface {
	Login(ctx context.Context, req model.LoginReq) (token string, err error)
	Register(ctx context.Context, req model.RegisterReq) error
	VerifyEmail(ctx context.Context, req model.VerifyEmailReq) error
	ResendVerification(ctx context.Context, req model.ResendVerificationReq) error
}

type Service interface {
	// Login exchanges credentials with the backend and persists the
	// issued bearer into the session store.
	Login(ctx context.Context, sid string, req model.LoginReq) (role string, err error)
	Register(ctx context.Context, req model.RegisterReq) error
	VerifyEmail(ctx context.Context, req model.VerifyEmailReq) error
	ResendVerification(ctx context.Context, req model.ResendVerificationReq) error
	Logout(ctx context.Context, sid string) error

	// RoleFor reads the role claim out of the stored bearer, defaulting
	// to the guest role when the token carries none.
	RoleFor(ctx context.Context, sid string) (model.Role, error)
}

type service struct {
	r        Repo
	sessions sessionrepo.Store
}

func New(r Repo, sessions sessionrepo.Store) Service {
	return &service{r: r, sessions: sessions}
}

func (s *service) Login(ctx context.Context, sid string, req model.LoginReq) (string, error) {
	token, err := s.r.Login(ctx, req)
	if err != nil {
		if backend.KindOf(err) == backend.KindUnauthenticated || backend.KindOf(err) == backend.KindValidation {
			return "", makeErr(ErrInvalidCreds)
		}
		return "", err
	}
	if err := s.sessions.Save(ctx, sid, token); err != nil {
		return "", err
	}

	role := "user"
	if c, err := jwtclaims.Parse(token); err == nil && c.Role != "" {
		role = c.Role
	}
	return role, nil
}

func (s *service) Register(ctx context.Context, req model.RegisterReq) error {
	return s.r.Register(ctx, req)
}

func (s *service) VerifyEmail(ctx context.Context, req model.VerifyEmailReq) error {
	return s.r.VerifyEmail(ctx, req)
}

func (s *service) ResendVerification(ctx context.Context, req model.ResendVerificationReq) error {
	return s.r.ResendVerification(ctx, req)
}

func (s *service) Logout(ctx context.Context, sid string) error {
	return s.sessions.Clear(ctx, sid)
}

func (s *service) RoleFor(ctx context.Context, sid string) (model.Role, error) {
	token, err := s.sessions.Token(ctx, sid)
	if err != nil {
		if errors.Is(err, sessionrepo.ErrNoSession) {
			return "", makeErr(ErrNoSession)
		}
		return "", err
	}
	c, err := jwtclaims.Parse(token)
	if err != nil {
		return model.RoleUser, nil
	}
	if c.Expired(time.Now()) {
		// expired bearer behaves like no session; the backend would 401
		_ = s.sessions.Clear(ctx, sid)
		return "", makeErr(ErrNoSession)
	}
	if c.Role == string(model.RoleTenant) {
		return model.RoleTenant, nil
	}
	return model.RoleUser, nil
}
