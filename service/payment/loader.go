package payment

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

const (
	snapScriptSandbox    = "https://app.sandbox.midtrans.com/snap/snap.js"
	snapScriptProduction = "https://app.midtrans.com/snap/snap.js"
)

// Widget describes the checkout script a page must embed: one script tag
// carrying the public client key.
type Widget struct {
	ScriptURL string `json:"script_url"`
	ClientKey string `json:"client_key"`
}

// WidgetLoader hands out the widget descriptor at most once per process.
// Concurrent first callers collapse onto a single in-flight load instead
// of each injecting the script.
type WidgetLoader struct {
	clientKey  string
	production bool

	group  singleflight.Group
	once   sync.Once
	loaded chan struct{}
	widget Widget
}

func NewWidgetLoader(clientKey string, production bool) *WidgetLoader {
	return &WidgetLoader{
		clientKey:  clientKey,
		production: production,
		loaded:     make(chan struct{}),
	}
}

// Ensure resolves the widget descriptor, performing the load exactly once.
// Later calls return the cached descriptor immediately.
func (w *WidgetLoader) Ensure(ctx context.Context) (Widget, error) {
	select {
	case <-w.loaded:
		return w.widget, nil
	default:
	}

	ch := w.group.DoChan("snap-script", func() (any, error) {
		w.once.Do(func() {
			url := snapScriptSandbox
			if w.production {
				url = snapScriptProduction
			}
			w.widget = Widget{ScriptURL: url, ClientKey: w.clientKey}
			close(w.loaded)
		})
		return w.widget, nil
	})

	select {
	case <-ctx.Done():
		return Widget{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Widget{}, res.Err
		}
		return res.Val.(Widget), nil
	}
}
