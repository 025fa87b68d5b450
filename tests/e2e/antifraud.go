//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
)

// FakeAntifraud は外部アンチフロードサービスの代替
type FakeAntifraud struct {
	server *httptest.Server

	mu         sync.Mutex
	denied     map[string]bool
	cacheUntil string
	calls      atomic.Int32
}

func newFakeAntifraud(t *testing.T) *FakeAntifraud {
	t.Helper()

	f := &FakeAntifraud{denied: map[string]bool{}}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("POST /api/validate", f.validate)
	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *FakeAntifraud) URL() string {
	return f.server.URL
}

func (f *FakeAntifraud) Deny(email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.denied[email] = true
}

// CacheUntil 以降のレスポンスに cache_until を付与する
func (f *FakeAntifraud) CacheUntil(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cacheUntil = v
}

func (f *FakeAntifraud) Calls() int {
	return int(f.calls.Load())
}

func (f *FakeAntifraud) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.denied = map[string]bool{}
	f.cacheUntil = ""
	f.calls.Store(0)
}

func (f *FakeAntifraud) validate(w http.ResponseWriter, r *http.Request) {
	f.calls.Add(1)

	var req struct {
		UserEmail string `json:"user_email"`
		PromoID   string `json:"promo_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	resp := map[string]any{"ok": !f.denied[req.UserEmail]}
	if f.cacheUntil != "" {
		resp["cache_until"] = f.cacheUntil
	}
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
