package dashboard

import (
	"context"

	"roomrental/model"
	reportrepo "roomrental/repository/report"
)

// Stats is a page-local approximation for the dashboard header. It reduces
// only the currently loaded page, so it is NOT authoritative for
// reporting; the /reports endpoints are.
type Stats struct {
	Revenue    float64 `json:"revenue"`
	Bookings   int     `json:"bookings"`
	Properties int     `json:"properties"`
}

// Summarize computes revenue from PAID rows, the row count, and the number
// of distinct properties referenced on the page.
func Summarize(page *model.TransactionPage) Stats {
	var st Stats
	if page == nil {
		return st
	}
	props := make(map[string]struct{})
	for _, t := range page.Data {
		st.Bookings++
		if t.Status == model.StatusPaid {
			st.Revenue += t.Total
		}
		if t.PropertyID != "" {
			props[t.PropertyID] = struct{}{}
		}
	}
	st.Properties = len(props)
	return st
}

type Service interface {
	Summarize(page *model.TransactionPage) Stats
	SalesReport(ctx context.Context, token, startDate, endDate string) (*model.SalesReport, error)
	PropertyReport(ctx context.Context, token string) (*model.PropertyReport, error)
}

type service struct{ reports reportrepo.Repo }

func New(reports reportrepo.Repo) Service { return &service{reports: reports} }

func (s *service) Summarize(page *model.TransactionPage) Stats { return Summarize(page) }

func (s *service) SalesReport(ctx context.Context, token, startDate, endDate string) (*model.SalesReport, error) {
	return s.reports.Sales(ctx, token, startDate, endDate)
}

func (s *service) PropertyReport(ctx context.Context, token string) (*model.PropertyReport, error) {
	return s.reports.Property(ctx, token)
}
