package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Towhid-Raiyan/college-selector-server/internal/models"
	"github.com/Towhid-Raiyan/college-selector-server/internal/service"
)

type RegistrationHandler struct {
	svc *service.RegistrationService
}

func NewRegistrationHandler(s *service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{svc: s}
}

// insertAck mirrors Mongo's insert-one acknowledgment shape, which is what
// clients already consume on a fresh insert.
type insertAck struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// @Summary Register user
// @Description Stores the document verbatim unless the email is already registered. A duplicate answers 200 with an informational message.
// @Tags registration
// @Accept json
// @Produce json
// @Param body body object true "user document, email required"
// @Success 200 {object} map[string]any
// @Failure 400 {string} string
// @Router /users [post]
func (h *RegistrationHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var u models.UserDoc
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if u.Email == "" {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}

	res, err := h.svc.RegisterUser(r.Context(), &u)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if res.AlreadyExists {
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "User already exists!"})
		return
	}
	_ = json.NewEncoder(w).Encode(insertAck{Acknowledged: true, InsertedID: res.InsertedID.Hex()})
}

// @Summary Register student
// @Description Same contract as /users against the students collection.
// @Tags registration
// @Accept json
// @Produce json
// @Param body body object true "student document, email required"
// @Success 200 {object} map[string]any
// @Failure 400 {string} string
// @Router /student [post]
func (h *RegistrationHandler) RegisterStudent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var st models.StudentDoc
	if err := json.NewDecoder(r.Body).Decode(&st); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if st.Email == "" {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}

	res, err := h.svc.RegisterStudent(r.Context(), &st)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if res.AlreadyExists {
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Student already exists!"})
		return
	}
	_ = json.NewEncoder(w).Encode(insertAck{Acknowledged: true, InsertedID: res.InsertedID.Hex()})
}
