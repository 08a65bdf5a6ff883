package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func samplePage() *TransactionPage {
	return &TransactionPage{
		Data: []Transaction{
			{UUID: "a", Total: 100, Status: StatusWaitingPayment},
			{UUID: "b", Total: 200, Status: StatusPaid},
			{UUID: "c", Total: 300, Status: StatusPaid},
		},
		Meta: PageMeta{Page: 1, Take: 10, Total: 3},
	}
}

func TestRemoveRow(t *testing.T) {
	p := samplePage()
	p.RemoveRow("b")

	require.Len(t, p.Data, 2)
	require.Equal(t, 2, p.Meta.Total)
	require.Equal(t, "a", p.Data[0].UUID)
	require.Equal(t, "c", p.Data[1].UUID)
}

func TestRemoveRow_UnknownIDIsNoop(t *testing.T) {
	p := samplePage()
	p.RemoveRow("nope")

	require.Len(t, p.Data, 3)
	require.Equal(t, 3, p.Meta.Total)
}

func TestUpdateRow(t *testing.T) {
	p := samplePage()
	p.UpdateRow(Transaction{UUID: "b", Total: 250, Status: StatusCancelled})

	require.Equal(t, 3, p.Meta.Total)
	require.Equal(t, float64(100), p.Data[0].Total)
	require.Equal(t, float64(250), p.Data[1].Total)
	require.Equal(t, StatusCancelled, p.Data[1].Status)
	require.Equal(t, float64(300), p.Data[2].Total)
}

func TestUpdateRow_UnknownIDIsNoop(t *testing.T) {
	p := samplePage()
	p.UpdateRow(Transaction{UUID: "zz", Total: 999})

	require.Equal(t, samplePage(), p)
}

func TestHasProof(t *testing.T) {
	empty := ""
	url := "https://img/proof.jpg"

	require.False(t, Transaction{}.HasProof())
	require.False(t, Transaction{PaymentProof: &empty}.HasProof())
	require.True(t, Transaction{PaymentProof: &url}.HasProof())
}
