package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Towhid-Raiyan/college-selector-server/internal/service"
)

type AuthHandler struct {
	svc *service.TokenService
}

func NewAuthHandler(s *service.TokenService) *AuthHandler {
	return &AuthHandler{svc: s}
}

// @Summary Issue token
// @Description Signs the posted payload into a bearer token valid for 2 hours. Any JSON object is accepted.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body object true "payload"
// @Success 200 {object} map[string]string
// @Failure 400 {string} string
// @Router /jwt [post]
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := h.svc.Issue(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// @Summary Who am I
// @Description Echoes the payload of the presented bearer token.
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]any
// @Router /me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ClaimsFromContext(r.Context()))
}
