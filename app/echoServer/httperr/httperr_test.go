package httperr

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"roomrental/repository/backend"
	sessionrepo "roomrental/repository/session"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type storeMock struct {
	clearCalls int
	clearedSID string
}

var _ sessionrepo.Store = (*storeMock)(nil)

func (m *storeMock) Save(ctx context.Context, sid, token string) error { return nil }
func (m *storeMock) Token(ctx context.Context, sid string) (string, error) {
	return "", sessionrepo.ErrNoSession
}
func (m *storeMock) Clear(ctx context.Context, sid string) error {
	m.clearCalls++
	m.clearedSID = sid
	return nil
}

func respond(t *testing.T, sessions sessionrepo.Store, sid string, err error) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))

	require.NoError(t, Respond(c, log, sessions, sid, err))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestRespond_UnauthenticatedClearsSessionAndRedirects(t *testing.T) {
	m := &storeMock{}
	rec, body := respond(t, m, "sid-1",
		&backend.Error{Kind: backend.KindUnauthenticated, Message: "session expired", Status: 401})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, 1, m.clearCalls)
	require.Equal(t, "sid-1", m.clearedSID)
	require.Equal(t, "session expired", body["message"])
	require.Equal(t, "/login", body["redirect"])
}

func TestRespond_AuthMissingDoesNotClear(t *testing.T) {
	m := &storeMock{}
	rec, body := respond(t, m, "sid-1", backend.ErrNoToken)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Zero(t, m.clearCalls)
	require.Equal(t, "authentication required", body["message"])
	require.Empty(t, body["redirect"])
}

func TestRespond_StatusPerKind(t *testing.T) {
	cases := []struct {
		err  *backend.Error
		want int
	}{
		{&backend.Error{Kind: backend.KindForbidden, Message: "not yours"}, http.StatusForbidden},
		{&backend.Error{Kind: backend.KindNotFound, Message: "gone"}, http.StatusNotFound},
		{&backend.Error{Kind: backend.KindValidation, Message: "bad dates"}, http.StatusBadRequest},
		{&backend.Error{Kind: backend.KindServer, Message: "something went wrong, try again later"}, http.StatusBadGateway},
		{&backend.Error{Kind: backend.KindNetwork, Message: "could not reach server"}, http.StatusBadGateway},
	}
	for _, tc := range cases {
		m := &storeMock{}
		rec, body := respond(t, m, "sid-1", tc.err)
		require.Equal(t, tc.want, rec.Code, "kind %s", tc.err.Kind)
		require.Equal(t, tc.err.Message, body["message"])
		require.Zero(t, m.clearCalls)
	}
}
