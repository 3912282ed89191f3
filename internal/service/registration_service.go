package service

import (
	"context"

	"github.com/Towhid-Raiyan/college-selector-server/internal/logger"
	"github.com/Towhid-Raiyan/college-selector-server/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// UserStore and StudentStore are what the registration flow needs from the
// users and students collections.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.UserDoc, error)
	Insert(ctx context.Context, u *models.UserDoc) (primitive.ObjectID, error)
}

type StudentStore interface {
	FindByEmail(ctx context.Context, email string) (*models.StudentDoc, error)
	Insert(ctx context.Context, s *models.StudentDoc) (primitive.ObjectID, error)
}

// RegistrationResult reports either the store acknowledgment of a fresh
// insert or that a document with the same email already existed. A
// duplicate is not an error.
type RegistrationResult struct {
	AlreadyExists bool
	InsertedID    primitive.ObjectID
}

type RegistrationService struct {
	users    UserStore
	students StudentStore
}

func NewRegistrationService(users UserStore, students StudentStore) *RegistrationService {
	return &RegistrationService{users: users, students: students}
}

// RegisterUser inserts the document verbatim unless a user with the same
// email is already stored. The check and the insert are two separate
// roundtrips, so concurrent registrations with the same email can race;
// that is the documented behavior of the endpoint, no unique index backs it.
func (s *RegistrationService) RegisterUser(ctx context.Context, u *models.UserDoc) (*RegistrationResult, error) {
	existing, err := s.users.FindByEmail(ctx, u.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &RegistrationResult{AlreadyExists: true}, nil
	}

	logger.Logger.Info("registering user", zap.String("email", u.Email))

	id, err := s.users.Insert(ctx, u)
	if err != nil {
		return nil, err
	}
	return &RegistrationResult{InsertedID: id}, nil
}

// RegisterStudent is the same contract against the students collection.
// A user and a student sharing an email are not duplicates of each other.
func (s *RegistrationService) RegisterStudent(ctx context.Context, st *models.StudentDoc) (*RegistrationResult, error) {
	existing, err := s.students.FindByEmail(ctx, st.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &RegistrationResult{AlreadyExists: true}, nil
	}

	logger.Logger.Info("registering student", zap.String("email", st.Email))

	id, err := s.students.Insert(ctx, st)
	if err != nil {
		return nil, err
	}
	return &RegistrationResult{InsertedID: id}, nil
}
