package repository

import (
	"context"

	"github.com/Towhid-Raiyan/college-selector-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type StudentRepository struct {
	col *mongo.Collection
}

func NewStudentRepository(database *mongo.Database) *StudentRepository {
	return &StudentRepository{col: database.Collection("students")}
}

func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (*models.StudentDoc, error) {
	var s models.StudentDoc
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepository) Insert(ctx context.Context, s *models.StudentDoc) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, s)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}
