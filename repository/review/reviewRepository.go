package review

import (
	"context"
	"net/url"
	"strconv"

	"roomrental/model"
	"roomrental/repository/backend"
)

type Repo interface {
	Create(ctx context.Context, token string, req model.CreateReviewReq) error
	Reply(ctx context.Context, token string, req model.ReplyReviewReq) error
	ListByProperty(ctx context.Context, token, propertyID string, page, take int) (*model.ReviewPage, error)
	ListByUser(ctx context.Context, token string, page, take int) (*model.ReviewPage, error)
}

type repo struct{ api *backend.Client }

func New(api *backend.Client) Repo { return &repo{api: api} }

func (r *repo) Create(ctx context.Context, token string, req model.CreateReviewReq) error {
	return r.api.PostJSON(ctx, token, "/reviews/create", req, nil)
}

func (r *repo) Reply(ctx context.Context, token string, req model.ReplyReviewReq) error {
	return r.api.PostJSON(ctx, token, "/reviews/reply", req, nil)
}

func (r *repo) ListByProperty(ctx context.Context, token, propertyID string, page, take int) (*model.ReviewPage, error) {
	return r.list(ctx, token, "/reviews/property/"+url.PathEscape(propertyID), page, take)
}

func (r *repo) ListByUser(ctx context.Context, token string, page, take int) (*model.ReviewPage, error) {
	return r.list(ctx, token, "/reviews/user", page, take)
}

func (r *repo) list(ctx context.Context, token, path string, page, take int) (*model.ReviewPage, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if take > 0 {
		q.Set("take", strconv.Itoa(take))
	}

	var env reviewEnvelope
	if err := r.api.Get(ctx, token, path, q, &env); err != nil {
		return nil, err
	}
	return env.toModel(), nil
}

// reviewEnvelope reads the aggregate defensively: the backend has shipped
// averageRating and meta.total under shifting names, so absent fields fall
// back to a computed mean and a top-level total.
type reviewEnvelope struct {
	Data          []model.Review  `json:"data"`
	Meta          *model.PageMeta `json:"meta"`
	Total         int             `json:"total"`
	Page          int             `json:"page"`
	Take          int             `json:"take"`
	AverageRating *float64        `json:"averageRating"`
	AvgRating     *float64        `json:"average_rating"`
}

func (e reviewEnvelope) toModel() *model.ReviewPage {
	out := &model.ReviewPage{Data: e.Data}
	if e.Meta != nil {
		out.Meta = *e.Meta
	} else {
		out.Meta = model.PageMeta{Page: e.Page, Take: e.Take, Total: e.Total}
	}

	switch {
	case e.AverageRating != nil:
		out.AverageRating = *e.AverageRating
	case e.AvgRating != nil:
		out.AverageRating = *e.AvgRating
	case len(e.Data) > 0:
		sum := 0
		for _, rv := range e.Data {
			sum += rv.Rating
		}
		out.AverageRating = float64(sum) / float64(len(e.Data))
	}
	return out
}
