package rbac

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHas(t *testing.T) {
	cases := []struct {
		role, perm string
		want       bool
	}{
		{"learner", "card:view", true},
		{"learner", "card:create", false},
		{"author", "card:create", true},
		{"author", "card:view-full", true}, // wildcard card:*
		{"author", "users:bulk_upsert", false},
		{"admin", "anything:at_all", true},
		{"", "card:view", false},
		{"ghost", "card:view", false},
	}
	for _, c := range cases {
		if got := Has(c.role, c.perm); got != c.want {
			t.Errorf("Has(%q, %q) = %t, want %t", c.role, c.perm, got, c.want)
		}
	}
}

func TestRequire(t *testing.T) {
	h := Require("card:create")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/cards", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req.WithContext(WithRole(req.Context(), "author")))
	if w.Code != http.StatusOK {
		t.Errorf("author: status %d", w.Code)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, req.WithContext(WithRole(req.Context(), "learner")))
	if w.Code != http.StatusForbidden {
		t.Errorf("learner: status %d", w.Code)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("no role: status %d", w.Code)
	}
}
