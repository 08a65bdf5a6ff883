package payment

import "net/url"

// The checkout widget hands control back through a static redirect path
// whose last segment says how the session ended. That segment is mapped to
// the status token the orders view reads from its query string.

const (
	ResultFinish   = "finish"
	ResultUnfinish = "unfinish"
	ResultError    = "error"
)

// MapRedirectResult translates the gateway's path segment. Unrecognized
// segments map to the empty status rather than failing.
func MapRedirectResult(segment string) string {
	switch segment {
	case ResultFinish:
		return "success"
	case ResultUnfinish:
		return "pending"
	case ResultError:
		return "error"
	default:
		return ""
	}
}

// OrdersRedirectURL builds the client-side redirect target for the orders
// view. The order id passes through unchanged when present and is omitted
// when absent.
func OrdersRedirectURL(segment, orderID string) string {
	q := url.Values{}
	if status := MapRedirectResult(segment); status != "" {
		q.Set("payment", status)
	}
	if orderID != "" {
		q.Set("order", orderID)
	}
	if len(q) == 0 {
		return "/orders"
	}
	return "/orders?" + q.Encode()
}
