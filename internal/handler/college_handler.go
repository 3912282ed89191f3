// internal/handler/college_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Towhid-Raiyan/college-selector-server/internal/logger"
	"github.com/Towhid-Raiyan/college-selector-server/internal/models"
	"github.com/Towhid-Raiyan/college-selector-server/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CollegeHandler struct {
	svc *service.CatalogService
}

func NewCollegeHandler(s *service.CatalogService) *CollegeHandler {
	return &CollegeHandler{svc: s}
}

// @Summary All colleges
// @Tags colleges
// @Produce json
// @Success 200 {array} object
// @Router /allCollege [get]
func (h *CollegeHandler) All(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	colleges, err := h.svc.AllColleges(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if colleges == nil {
		colleges = []models.CollegeDoc{}
	}
	_ = json.NewEncoder(w).Encode(colleges)
}

// @Summary Popular colleges
// @Description Top 3 by college_ratings, descending.
// @Tags colleges
// @Produce json
// @Success 200 {array} object
// @Failure 500 {object} map[string]string
// @Router /popularCollege [get]
func (h *CollegeHandler) Popular(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	colleges, err := h.svc.PopularColleges(r.Context())
	if err != nil {
		logger.Logger.Error("fetching popular colleges", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
		return
	}
	if colleges == nil {
		colleges = []models.CollegeDoc{}
	}
	_ = json.NewEncoder(w).Encode(colleges)
}

// @Summary College by id
// @Description The matching document, or null when the id is unknown.
// @Tags colleges
// @Produce json
// @Param id path string true "hex ObjectID"
// @Success 200 {object} object
// @Failure 400 {object} map[string]string
// @Router /allCollege/{id} [get]
func (h *CollegeHandler) ByID(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	college, err := h.svc.CollegeByID(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, service.ErrInvalidID) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": service.ErrInvalidID.Error()})
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// a nil document encodes as null, matching the lookup contract
	_ = json.NewEncoder(w).Encode(college)
}
