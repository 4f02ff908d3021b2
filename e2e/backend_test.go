//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
)

// fakeBackend serves the endpoints the client uses with canned data
type fakeBackend struct {
	mu      sync.Mutex
	logins  int
	listed  []string
	created []map[string]any
}

func newFakeBackend(t *testing.T) (*fakeBackend, *httptest.Server) {
	t.Helper()
	fb := &fakeBackend{}
	r := mux.NewRouter()

	r.HandleFunc("/api/auth/token", func(w http.ResponseWriter, req *http.Request) {
		_ = req.ParseForm()
		fb.mu.Lock()
		fb.logins++
		fb.mu.Unlock()
		if req.PostForm.Get("password") != "secret123" {
			http.Error(w, `{"detail":"Incorrect username or password"}`, http.StatusUnauthorized)
			return
		}
		writeJSON(w, map[string]any{"access_token": "e2e-token", "token_type": "bearer", "expires_in": 3600})
	}).Methods(http.MethodPost)

	r.HandleFunc("/api/transactions/", func(w http.ResponseWriter, req *http.Request) {
		fb.mu.Lock()
		fb.listed = append(fb.listed, req.URL.Query().Get("page"))
		fb.mu.Unlock()
		writeJSON(w, map[string]any{
			"items": []map[string]any{
				{"id": "7d7e6a0c-1b43-4f0e-9f3a-2a0f8f6c1d01", "income": false, "description": "Lunch box", "amount": 120, "type": "Food", "time": "2024-05-02T04:00:00"},
				{"id": "7d7e6a0c-1b43-4f0e-9f3a-2a0f8f6c1d02", "income": true, "description": "Salary", "amount": 50000, "type": "Other", "time": "2024-05-01T01:00:00"},
			},
			"metadata": map[string]any{"page": 1, "page_size": 20, "total_items": 2, "total_pages": 1, "has_next": false, "has_previous": false},
		})
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/transactions/", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(req.Body).Decode(&body)
		fb.mu.Lock()
		fb.created = append(fb.created, body)
		fb.mu.Unlock()
		body["id"] = "7d7e6a0c-1b43-4f0e-9f3a-2a0f8f6c1d03"
		body["time"] = "2024-05-03T02:00:00"
		writeJSON(w, body)
	}).Methods(http.MethodPost)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return fb, srv
}

func (fb *fakeBackend) createdCount() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return len(fb.created)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
