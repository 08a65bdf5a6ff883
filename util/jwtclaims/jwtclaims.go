package jwtclaims

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The backend signs and verifies its own tokens; this tier never holds the
// signing secret. Claims are parsed unverified, for display and endpoint
// selection only; authorization decisions remain the backend's.

var ErrMissingToken = errors.New("missing token")

type Claims struct {
	Subject string
	Role    string
	Email   string
	Expiry  time.Time
}

func Parse(token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	if token == "" {
		return nil, ErrMissingToken
	}

	tok, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, err
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	out := &Claims{}
	if s, ok := mc["sub"].(string); ok {
		out.Subject = s
	}
	if s, ok := mc["role"].(string); ok {
		out.Role = s
	}
	if s, ok := mc["email"].(string); ok {
		out.Email = s
	}
	if f, ok := mc["exp"].(float64); ok {
		out.Expiry = time.Unix(int64(f), 0)
	}
	return out, nil
}

// Expired reports whether the token carries an exp claim in the past.
func (c *Claims) Expired(now time.Time) bool {
	return !c.Expiry.IsZero() && now.After(c.Expiry)
}
