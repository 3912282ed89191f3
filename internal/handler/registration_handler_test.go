package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Towhid-Raiyan/college-selector-server/internal/models"
	"github.com/Towhid-Raiyan/college-selector-server/internal/service"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memUserStore struct {
	byEmail map[string]*models.UserDoc
}

func (m *memUserStore) FindByEmail(_ context.Context, email string) (*models.UserDoc, error) {
	return m.byEmail[email], nil
}

func (m *memUserStore) Insert(_ context.Context, u *models.UserDoc) (primitive.ObjectID, error) {
	m.byEmail[u.Email] = u
	return primitive.NewObjectID(), nil
}

type memStudentStore struct {
	byEmail map[string]*models.StudentDoc
}

func (m *memStudentStore) FindByEmail(_ context.Context, email string) (*models.StudentDoc, error) {
	return m.byEmail[email], nil
}

func (m *memStudentStore) Insert(_ context.Context, s *models.StudentDoc) (primitive.ObjectID, error) {
	m.byEmail[s.Email] = s
	return primitive.NewObjectID(), nil
}

func newRegistrationRouter() (http.Handler, *memUserStore, *memStudentStore) {
	users := &memUserStore{byEmail: map[string]*models.UserDoc{}}
	students := &memStudentStore{byEmail: map[string]*models.StudentDoc{}}
	h := NewRegistrationHandler(service.NewRegistrationService(users, students))

	r := chi.NewRouter()
	r.Post("/users", h.RegisterUser)
	r.Post("/student", h.RegisterStudent)
	return r, users, students
}

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterUser(t *testing.T) {
	t.Parallel()

	t.Run("fresh email answers an insertion acknowledgment", func(t *testing.T) {
		t.Parallel()

		router, users, _ := newRegistrationRouter()
		rec := postJSON(t, router, "/users", `{"email":"a@b.com","name":"Ada","address":"Dhaka"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		var body map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("response is not JSON: %v", err)
		}
		if body["acknowledged"] != true {
			t.Errorf("acknowledged = %v, want true", body["acknowledged"])
		}
		id, _ := body["insertedId"].(string)
		if len(id) != 24 {
			t.Errorf("insertedId = %q, want a 24-char hex id", id)
		}

		stored := users.byEmail["a@b.com"]
		if stored == nil {
			t.Fatal("document not stored")
		}
		if stored.Extra["name"] != "Ada" || stored.Extra["address"] != "Dhaka" {
			t.Errorf("extra fields not stored verbatim: %v", stored.Extra)
		}
	})

	t.Run("duplicate email answers the informational message", func(t *testing.T) {
		t.Parallel()

		router, users, _ := newRegistrationRouter()
		postJSON(t, router, "/users", `{"email":"a@b.com"}`)
		rec := postJSON(t, router, "/users", `{"email":"a@b.com"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("response is not JSON: %v", err)
		}
		if body["message"] != "User already exists!" {
			t.Errorf("message = %q, want %q", body["message"], "User already exists!")
		}
		if len(users.byEmail) != 1 {
			t.Errorf("stored users = %d, want 1", len(users.byEmail))
		}
	})

	t.Run("malformed body is a client error", func(t *testing.T) {
		t.Parallel()

		router, _, _ := newRegistrationRouter()
		if rec := postJSON(t, router, "/users", `{broken`); rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("missing email is a client error", func(t *testing.T) {
		t.Parallel()

		router, _, _ := newRegistrationRouter()
		if rec := postJSON(t, router, "/users", `{"name":"no email"}`); rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func TestRegisterStudent(t *testing.T) {
	t.Parallel()

	t.Run("uses the students collection and message", func(t *testing.T) {
		t.Parallel()

		router, _, students := newRegistrationRouter()
		postJSON(t, router, "/student", `{"email":"s@b.com"}`)
		rec := postJSON(t, router, "/student", `{"email":"s@b.com"}`)

		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("response is not JSON: %v", err)
		}
		if body["message"] != "Student already exists!" {
			t.Errorf("message = %q, want %q", body["message"], "Student already exists!")
		}
		if len(students.byEmail) != 1 {
			t.Errorf("stored students = %d, want 1", len(students.byEmail))
		}
	})

	t.Run("a user with the same email is not a duplicate", func(t *testing.T) {
		t.Parallel()

		router, users, students := newRegistrationRouter()
		postJSON(t, router, "/users", `{"email":"same@b.com"}`)
		rec := postJSON(t, router, "/student", `{"email":"same@b.com"}`)

		var body map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("response is not JSON: %v", err)
		}
		if body["acknowledged"] != true {
			t.Errorf("student registration blocked by user with same email: %v", body)
		}
		if len(users.byEmail) != 1 || len(students.byEmail) != 1 {
			t.Errorf("stored = %d users / %d students, want 1 / 1", len(users.byEmail), len(students.byEmail))
		}
	})
}
