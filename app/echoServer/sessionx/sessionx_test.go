package sessionx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sessionrepo "roomrental/repository/session"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type storeMock struct {
	token string
	err   error
}

var _ sessionrepo.Store = (*storeMock)(nil)

func (m *storeMock) Save(ctx context.Context, sid, token string) error { return nil }
func (m *storeMock) Token(ctx context.Context, sid string) (string, error) {
	return m.token, m.err
}
func (m *storeMock) Clear(ctx context.Context, sid string) error { return nil }

func run(t *testing.T, store sessionrepo.Store, cookie string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "rr_sid", Value: cookie})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := Middleware(store)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, c, called
}

func TestMiddleware_ResolvesBearer(t *testing.T) {
	_, c, called := run(t, &storeMock{token: "tok-1"}, "sid-abc")

	require.True(t, called)
	require.Equal(t, "sid-abc", SID(c))
	require.Equal(t, "tok-1", Bearer(c))
}

func TestMiddleware_NoSessionRunsSignedOut(t *testing.T) {
	_, c, called := run(t, &storeMock{err: sessionrepo.ErrNoSession}, "sid-abc")

	require.True(t, called)
	require.Empty(t, Bearer(c))
}

func TestMiddleware_StoreOutageIsNotSignedOut(t *testing.T) {
	rec, _, called := run(t, &storeMock{err: errors.New("dial tcp: connection refused")}, "sid-abc")

	require.False(t, called)
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Contains(t, rec.Body.String(), "something went wrong")
}

func TestMiddleware_AssignsSessionCookie(t *testing.T) {
	rec, c, called := run(t, &storeMock{err: sessionrepo.ErrNoSession}, "")

	require.True(t, called)
	require.NotEmpty(t, SID(c))
	require.True(t, strings.Contains(rec.Header().Get("Set-Cookie"), "rr_sid="))
}
