// internal/repository/college_repo.go
package repository

import (
	"context"

	"github.com/Towhid-Raiyan/college-selector-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CollegeRepository struct {
	col *mongo.Collection
}

func NewCollegeRepository(database *mongo.Database) *CollegeRepository {
	return &CollegeRepository{col: database.Collection("college")}
}

// FindAll returns the whole catalog in natural order, no filter.
func (r *CollegeRepository) FindAll(ctx context.Context) ([]models.CollegeDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.CollegeDoc
	for cur.Next(ctx) {
		var c models.CollegeDoc
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, cur.Err()
}

// FindTopRated sorts by college_ratings descending; ties keep Mongo's
// stable order for the dataset.
func (r *CollegeRepository) FindTopRated(ctx context.Context, limit int) ([]models.CollegeDoc, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "college_ratings", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.CollegeDoc
	for cur.Next(ctx) {
		var c models.CollegeDoc
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, cur.Err()
}

func (r *CollegeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.CollegeDoc, error) {
	var c models.CollegeDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
