package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Towhid-Raiyan/college-selector-server/internal/service"
)

type ctxKey string

// CtxClaims holds the verified token payload for handlers behind RequireJWT.
const CtxClaims ctxKey = "claims"

// RequireJWT gates a route behind a Bearer token. A missing or malformed
// Authorization header is unauthorized (401); a present but unverifiable
// token, whatever the reason, is forbidden (403).
func RequireJWT(tokens *service.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			tokenStr, found := strings.CutPrefix(authHeader, "Bearer ")
			if authHeader == "" || !found {
				writeAuthError(w, http.StatusUnauthorized, "Unauthorized Access!!!")
				return
			}

			claims, err := tokens.Verify(tokenStr)
			if err != nil {
				writeAuthError(w, http.StatusForbidden, "Forbidden Access!!!")
				return
			}

			ctx := context.WithValue(r.Context(), CtxClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"error": true, "message": msg})
}

// ClaimsFromContext returns the verified payload, or nil outside RequireJWT.
func ClaimsFromContext(ctx context.Context) map[string]any {
	if v, ok := ctx.Value(CtxClaims).(map[string]any); ok {
		return v
	}
	return nil
}
