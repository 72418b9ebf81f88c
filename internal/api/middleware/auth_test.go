package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubVerifier struct {
	valid map[string]string
	seen  []string
}

func (v *stubVerifier) VerifyToken(token string) (string, error) {
	v.seen = append(v.seen, token)
	if id, ok := v.valid[token]; ok {
		return id, nil
	}
	return "", errors.New("invalid token")
}

func newStubVerifier() *stubVerifier {
	return &stubVerifier{valid: map[string]string{"good-token": "user-1"}}
}

func runAuth(t *testing.T, verifier *stubVerifier, header string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(verifier)(func(c echo.Context) error {
		called = true
		if c.Get(ContextKeyUserID) != "user-1" {
			t.Fatalf("user id not set, got %v", c.Get(ContextKeyUserID))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestAuthMiddleware_RawToken(t *testing.T) {
	rec, called := runAuth(t, newStubVerifier(), "good-token")

	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	verifier := newStubVerifier()
	rec, called := runAuth(t, verifier, "bearer  good-token ")

	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected 200 and next called, got %d (called=%v)", rec.Code, called)
	}
	if verifier.seen[0] != "good-token" {
		t.Fatalf("expected scheme to be stripped, verifier saw %q", verifier.seen[0])
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	verifier := newStubVerifier()
	rec, called := runAuth(t, verifier, "")

	if called {
		t.Fatalf("should not reach next")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if len(verifier.seen) != 0 {
		t.Fatalf("verifier must not be called without a header")
	}
}

func TestAuthMiddleware_EmptyBearer(t *testing.T) {
	rec, called := runAuth(t, newStubVerifier(), "Bearer ")

	if called || rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without calling next, got %d (called=%v)", rec.Code, called)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	rec, called := runAuth(t, newStubVerifier(), "Bearer not-a-token")

	if called {
		t.Fatalf("should not reach next")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
