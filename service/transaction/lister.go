package transaction

import (
	"context"
	"errors"
	"sync"

	"roomrental/model"
	"roomrental/repository/backend"
)

// Lister holds one view's cached transaction page and serializes refetches.
// Each fetch is stamped with a generation; a slow response whose generation
// is no longer current is discarded instead of overwriting newer data.
type Lister struct {
	svc  Service
	role model.Role

	mu       sync.Mutex
	gen      uint64
	page     *model.TransactionPage
	lastErr  string
	lastKind backend.Kind
	loading  bool
}

func NewLister(svc Service, role model.Role) *Lister {
	return &Lister{svc: svc, role: role}
}

// Fetch issues one list call and installs the result unless a newer fetch
// started meanwhile. Errors are stored as display strings, never returned
// up into rendering.
func (l *Lister) Fetch(ctx context.Context, token string, p ListParams) {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.loading = true
	l.mu.Unlock()

	page, err := l.svc.List(ctx, token, l.role, p)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		// stale response, a newer fetch owns the state now
		return
	}
	l.loading = false
	if err != nil {
		l.lastErr = displayMessage(err)
		l.lastKind = backend.KindOf(err)
		return
	}
	l.lastErr = ""
	l.lastKind = ""
	l.page = page
}

func displayMessage(err error) string {
	var be *backend.Error
	if errors.As(err, &be) && be.Message != "" {
		return be.Message
	}
	return "something went wrong, try again later"
}

// UpdateLocal patches one row in place so an action's effect shows without
// a round trip. RemoveLocal also decrements the reported total.
func (l *Lister) UpdateLocal(tx model.Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.page != nil {
		l.page.UpdateRow(tx)
	}
}

func (l *Lister) RemoveLocal(uuid string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.page != nil {
		l.page.RemoveRow(uuid)
	}
}

// Page returns the cached page, or nil before the first successful fetch.
func (l *Lister) Page() *model.TransactionPage {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.page == nil {
		return nil
	}
	cp := *l.page
	cp.Data = append([]model.Transaction(nil), l.page.Data...)
	return &cp
}

func (l *Lister) Err() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

// ErrKind reports the classification of the last error, "" when the last
// fetch succeeded.
func (l *Lister) ErrKind() backend.Kind {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastKind
}

func (l *Lister) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}
