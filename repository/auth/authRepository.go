package auth

import (
	"context"
	"errors"

	"roomrental/model"
	"roomrental/repository/backend"
)

type Repo interface {
	Login(ctx context.Context, req model.LoginReq) (string, error)
	Register(ctx context.Context, req model.RegisterReq) error
	VerifyEmail(ctx context.Context, req model.VerifyEmailReq) error
	ResendVerification(ctx context.Context, req model.ResendVerificationReq) error
}

type repo struct{ api *backend.Client }

func New(api *backend.Client) Repo { return &repo{api: api} }

func (r *repo) Login(ctx context.Context, req model.LoginReq) (string, error) {
	var out struct {
		Token       string `json:"token"`
		AccessToken string `json:"access_token"`
	}
	if err := r.api.PostJSON(ctx, "", "/auth/login", req, &out); err != nil {
		return "", err
	}
	if out.Token != "" {
		return out.Token, nil
	}
	if out.AccessToken != "" {
		return out.AccessToken, nil
	}
	return "", errors.New("login response carried no token")
}

func (r *repo) Register(ctx context.Context, req model.RegisterReq) error {
	return r.api.PostJSON(ctx, "", "/auth/register", req, nil)
}

func (r *repo) VerifyEmail(ctx context.Context, req model.VerifyEmailReq) error {
	return r.api.PostJSON(ctx, "", "/auth/verify-email", req, nil)
}

func (r *repo) ResendVerification(ctx context.Context, req model.ResendVerificationReq) error {
	return r.api.PostJSON(ctx, "", "/auth/resend-verification", req, nil)
}
