package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lionhard83/sample-server-tests/internal/model"
)

type stubVerifier struct {
	identity model.UserResponse
	err      error
}

func (s *stubVerifier) WhoAmI(ctx context.Context, token string) (model.UserResponse, error) {
	if s.err != nil {
		return model.UserResponse{}, s.err
	}
	return s.identity, nil
}

func TestBearerToken(t *testing.T) {
	if got := BearerToken("Bearer abc123"); got != "abc123" {
		t.Errorf("BearerToken() = %q, want %q", got, "abc123")
	}
	if got := BearerToken("abc123"); got != "abc123" {
		t.Errorf("BearerToken() = %q, want bare token passed through", got)
	}
	if got := BearerToken(""); got != "" {
		t.Errorf("BearerToken() = %q, want empty", got)
	}
}

func TestAuthMissingHeader(t *testing.T) {
	handler := Auth(&stubVerifier{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", res.Code)
	}
}

func TestAuthInvalidToken(t *testing.T) {
	verifier := &stubVerifier{err: errors.New("token not valid")}
	handler := Auth(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	req.Header.Set("Authorization", "garbage")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", res.Code)
	}
}

func TestAuthValidToken(t *testing.T) {
	identity := model.UserResponse{ID: "id-1", Name: "Carlo", Surname: "Leonardi", Email: "carlo@example.com"}
	verifier := &stubVerifier{identity: identity}

	var fromCtx model.UserResponse
	var found bool
	handler := Auth(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx, found = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.Code)
	}
	if !found {
		t.Fatal("identity missing from request context")
	}
	if fromCtx != identity {
		t.Errorf("identity = %+v, want %+v", fromCtx, identity)
	}
}
