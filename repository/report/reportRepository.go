package report

import (
	"context"
	"net/url"

	"roomrental/model"
	"roomrental/repository/backend"
)

type Repo interface {
	Sales(ctx context.Context, token string, startDate, endDate string) (*model.SalesReport, error)
	Property(ctx context.Context, token string) (*model.PropertyReport, error)
}

type repo struct{ api *backend.Client }

func New(api *backend.Client) Repo { return &repo{api: api} }

func (r *repo) Sales(ctx context.Context, token, startDate, endDate string) (*model.SalesReport, error) {
	q := url.Values{}
	if startDate != "" {
		q.Set("start_date", startDate)
	}
	if endDate != "" {
		q.Set("end_date", endDate)
	}
	var out struct {
		Data model.SalesReport `json:"data"`
	}
	if err := r.api.Get(ctx, token, "/reports/sales", q, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (r *repo) Property(ctx context.Context, token string) (*model.PropertyReport, error) {
	var out struct {
		Data model.PropertyReport `json:"data"`
	}
	if err := r.api.Get(ctx, token, "/reports/property", nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
