package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quizit-app/quizit-core/internal/rbac"
)

func TestIssueAndParseJWT(t *testing.T) {
	svc := NewAuthService("test-secret")
	tok, err := svc.IssueJWT("alice", "author")
	if err != nil {
		t.Fatal(err)
	}
	claims, err := svc.Parse(tok)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Sub != "alice" || claims.Role != "author" {
		t.Errorf("claims = %+v", claims)
	}

	if _, err := NewAuthService("other-secret").Parse(tok); err == nil {
		t.Error("token verified with wrong secret")
	}
}

func TestJWTMiddleware(t *testing.T) {
	svc := NewAuthService("test-secret")
	var gotSub, gotRole string
	h := JWTMiddleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSub = SubjectFromContext(r.Context())
		gotRole = rbac.RoleFromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("missing bearer: status %d", w.Code)
	}

	tok, _ := svc.IssueJWT("bob", "learner")
	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if gotSub != "bob" || gotRole != "learner" {
		t.Errorf("context sub=%q role=%q", gotSub, gotRole)
	}
}
