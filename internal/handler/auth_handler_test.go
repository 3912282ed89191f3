package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Towhid-Raiyan/college-selector-server/internal/service"

	"github.com/go-chi/chi/v5"
)

func newAuthRouter(tokens *service.TokenService) http.Handler {
	h := NewAuthHandler(tokens)
	r := chi.NewRouter()
	r.Post("/jwt", h.IssueToken)
	r.Group(func(r chi.Router) {
		r.Use(RequireJWT(tokens))
		r.Get("/me", h.Me)
	})
	return r
}

func TestIssueToken(t *testing.T) {
	t.Parallel()

	tokens := service.NewTokenService("test-secret")
	router := newAuthRouter(tokens)

	t.Run("issues a verifiable token for any payload", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"a@b.com","name":"A"}`))
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("response is not JSON: %v", err)
		}
		if body["token"] == "" {
			t.Fatal("no token in response")
		}

		claims, err := tokens.Verify(body["token"])
		if err != nil {
			t.Fatalf("Verify() error: %v", err)
		}
		if claims["email"] != "a@b.com" {
			t.Errorf("email claim = %v, want a@b.com", claims["email"])
		}
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{not json`))
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("issued token opens the protected route", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"me@b.com"}`))
		router.ServeHTTP(rec, req)

		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("response is not JSON: %v", err)
		}

		rec = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+body["token"])
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		var claims map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &claims); err != nil {
			t.Fatalf("response is not JSON: %v", err)
		}
		if claims["email"] != "me@b.com" {
			t.Errorf("email = %v, want me@b.com", claims["email"])
		}
	})
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Body.String(); got != "Server is Running..." {
		t.Errorf("body = %q, want %q", got, "Server is Running...")
	}
}
