package auth

import (
	"context"
	"testing"
	"time"

	"roomrental/model"
	"roomrental/repository/backend"
	sessionrepo "roomrental/repository/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

type repoMock struct {
	loginFn func(ctx context.Context, req model.LoginReq) (string, error)
}

var _ Repo = (*repoMock)(nil)

func (m *repoMock) Login(ctx context.Context, req model.LoginReq) (string, error) {
	if m.loginFn == nil {
		return "", nil
	}
	return m.loginFn(ctx, req)
}
func (m *repoMock) Register(ctx context.Context, req model.RegisterReq) error        { return nil }
func (m *repoMock) VerifyEmail(ctx context.Context, req model.VerifyEmailReq) error  { return nil }
func (m *repoMock) ResendVerification(ctx context.Context, req model.ResendVerificationReq) error {
	return nil
}

// sessionMock is an in-memory Store; the redis-backed one is wiring only.
type sessionMock struct {
	saved      map[string]string
	clearCalls int
}

var _ sessionrepo.Store = (*sessionMock)(nil)

func newSessionMock() *sessionMock { return &sessionMock{saved: map[string]string{}} }

func (m *sessionMock) Save(ctx context.Context, sid, token string) error {
	m.saved[sid] = token
	return nil
}
func (m *sessionMock) Token(ctx context.Context, sid string) (string, error) {
	tok, ok := m.saved[sid]
	if !ok {
		return "", sessionrepo.ErrNoSession
	}
	return tok, nil
}
func (m *sessionMock) Clear(ctx context.Context, sid string) error {
	m.clearCalls++
	delete(m.saved, sid)
	return nil
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return tok
}

func TestLogin_StoresTokenAndExtractsRole(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"sub":  "user-1",
		"role": "tenant",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	m := &repoMock{loginFn: func(ctx context.Context, req model.LoginReq) (string, error) {
		require.Equal(t, "user@example.com", req.Email)
		return token, nil
	}}
	sess := newSessionMock()
	svc := New(m, sess)

	role, err := svc.Login(context.Background(), "sid-1", model.LoginReq{
		Email:    "user@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.Equal(t, "tenant", role)
	require.Equal(t, token, sess.saved["sid-1"])
}

func TestLogin_BackendRejects(t *testing.T) {
	m := &repoMock{loginFn: func(ctx context.Context, req model.LoginReq) (string, error) {
		return "", &backend.Error{Kind: backend.KindUnauthenticated, Message: "invalid credentials", Status: 401}
	}}
	sess := newSessionMock()
	svc := New(m, sess)

	_, err := svc.Login(context.Background(), "sid-1", model.LoginReq{Email: "x@y.z", Password: "nope"})
	require.Equal(t, ErrInvalidCreds, Code(err))
	require.Empty(t, sess.saved)
}

func TestLogout_ClearsSession(t *testing.T) {
	sess := newSessionMock()
	sess.saved["sid-1"] = "tok"
	svc := New(&repoMock{}, sess)

	require.NoError(t, svc.Logout(context.Background(), "sid-1"))
	require.Empty(t, sess.saved)
	require.Equal(t, 1, sess.clearCalls)
}

func TestRoleFor(t *testing.T) {
	sess := newSessionMock()
	sess.saved["tenant-sid"] = signedToken(t, jwt.MapClaims{
		"sub": "u1", "role": "tenant", "exp": time.Now().Add(time.Hour).Unix(),
	})
	sess.saved["user-sid"] = signedToken(t, jwt.MapClaims{
		"sub": "u2", "exp": time.Now().Add(time.Hour).Unix(),
	})
	svc := New(&repoMock{}, sess)

	role, err := svc.RoleFor(context.Background(), "tenant-sid")
	require.NoError(t, err)
	require.Equal(t, model.RoleTenant, role)

	role, err = svc.RoleFor(context.Background(), "user-sid")
	require.NoError(t, err)
	require.Equal(t, model.RoleUser, role)

	_, err = svc.RoleFor(context.Background(), "missing-sid")
	require.Equal(t, ErrNoSession, Code(err))
}

func TestRoleFor_ExpiredTokenClearsSession(t *testing.T) {
	sess := newSessionMock()
	sess.saved["sid-1"] = signedToken(t, jwt.MapClaims{
		"sub": "u1", "role": "tenant", "exp": time.Now().Add(-time.Hour).Unix(),
	})
	svc := New(&repoMock{}, sess)

	_, err := svc.RoleFor(context.Background(), "sid-1")
	require.Equal(t, ErrNoSession, Code(err))
	require.Equal(t, 1, sess.clearCalls)
}
