package order

import (
	"testing"
	"time"

	"roomrental/model"

	"github.com/stretchr/testify/require"
)

func TestListerFor_SameSessionSameLister(t *testing.T) {
	ct := &Controller{}

	a := ct.listerFor("sid-1", model.RoleUser)
	b := ct.listerFor("sid-1", model.RoleUser)
	require.Same(t, a, b)

	// a different role gets its own lister under the same session
	c := ct.listerFor("sid-1", model.RoleTenant)
	require.NotSame(t, a, c)
}

func TestListerFor_IdleEntriesEvicted(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cur := base
	ct := &Controller{now: func() time.Time { return cur }}

	stale := ct.listerFor("sid-old", model.RoleUser)
	ct.listerFor("sid-old", model.RoleTenant)

	cur = base.Add(listerIdleTTL + time.Minute)
	ct.listerFor("sid-new", model.RoleUser)

	ct.mu.Lock()
	_, oldUser := ct.listers["sid-old:user"]
	_, oldTenant := ct.listers["sid-old:tenant"]
	_, newUser := ct.listers["sid-new:user"]
	ct.mu.Unlock()
	require.False(t, oldUser)
	require.False(t, oldTenant)
	require.True(t, newUser)

	// coming back after eviction starts from a fresh lister
	require.NotSame(t, stale, ct.listerFor("sid-old", model.RoleUser))
}

func TestListerFor_AccessRefreshesIdleClock(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cur := base
	ct := &Controller{now: func() time.Time { return cur }}

	kept := ct.listerFor("sid-1", model.RoleUser)

	// touched halfway through the window, so a full window later it lives
	cur = base.Add(listerIdleTTL / 2)
	ct.listerFor("sid-1", model.RoleUser)

	cur = base.Add(listerIdleTTL/2 + listerIdleTTL - time.Minute)
	require.Same(t, kept, ct.listerFor("sid-1", model.RoleUser))
}
