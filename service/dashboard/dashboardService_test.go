package dashboard

import (
	"testing"

	"roomrental/model"

	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	page := &model.TransactionPage{
		Data: []model.Transaction{
			{UUID: "a", PropertyID: "p1", Total: 100, Status: model.StatusPaid},
			{UUID: "b", PropertyID: "p1", Total: 200, Status: model.StatusWaitingPayment},
			{UUID: "c", PropertyID: "p2", Total: 300, Status: model.StatusPaid},
			{UUID: "d", PropertyID: "p3", Total: 400, Status: model.StatusCancelled},
		},
		Meta: model.PageMeta{Total: 40},
	}

	st := Summarize(page)
	require.Equal(t, float64(400), st.Revenue) // only PAID rows
	require.Equal(t, 4, st.Bookings)           // page rows, not meta total
	require.Equal(t, 3, st.Properties)
}

func TestSummarize_EmptyAndNil(t *testing.T) {
	require.Equal(t, Stats{}, Summarize(nil))
	require.Equal(t, Stats{}, Summarize(&model.TransactionPage{}))
}

func TestSummarize_MissingPropertyIDNotCounted(t *testing.T) {
	page := &model.TransactionPage{
		Data: []model.Transaction{
			{UUID: "a", Total: 100, Status: model.StatusPaid},
		},
	}
	st := Summarize(page)
	require.Equal(t, 0, st.Properties)
	require.Equal(t, 1, st.Bookings)
}
