package payment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapRedirectResult(t *testing.T) {
	cases := map[string]string{
		"finish":   "success",
		"unfinish": "pending",
		"error":    "error",
		"bogus":    "",
		"":         "",
		"FINISH":   "", // segments are case-sensitive
	}
	for in, want := range cases {
		require.Equal(t, want, MapRedirectResult(in), "segment %q", in)
	}
}

func TestOrdersRedirectURL(t *testing.T) {
	require.Equal(t, "/orders?order=ord-1&payment=success", OrdersRedirectURL("finish", "ord-1"))
	require.Equal(t, "/orders?order=ord-2&payment=pending", OrdersRedirectURL("unfinish", "ord-2"))
	require.Equal(t, "/orders?order=ord-3&payment=error", OrdersRedirectURL("error", "ord-3"))

	// unknown segment: no status token, id still passes through
	require.Equal(t, "/orders?order=ord-4", OrdersRedirectURL("surprise", "ord-4"))

	// missing id: omitted entirely
	require.Equal(t, "/orders?payment=success", OrdersRedirectURL("finish", ""))
	require.Equal(t, "/orders", OrdersRedirectURL("surprise", ""))
}
