package service

import (
	"context"
	"errors"

	"github.com/Towhid-Raiyan/college-selector-server/internal/cache"
	"github.com/Towhid-Raiyan/college-selector-server/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID reports a college id that cannot be parsed into an ObjectID.
var ErrInvalidID = errors.New("invalid college id")

const (
	popularCount = 3

	cacheKeyAll     = "colleges:all"
	cacheKeyPopular = "colleges:popular"
	cacheTTLSeconds = 60
)

type CollegeStore interface {
	FindAll(ctx context.Context) ([]models.CollegeDoc, error)
	FindTopRated(ctx context.Context, limit int) ([]models.CollegeDoc, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.CollegeDoc, error)
}

type CatalogService struct {
	colleges CollegeStore
}

func NewCatalogService(colleges CollegeStore) *CatalogService {
	return &CatalogService{colleges: colleges}
}

// AllColleges returns every catalog document. When the optional cache is
// connected the list is served from it for a short window; a cache failure
// never fails the request.
func (s *CatalogService) AllColleges(ctx context.Context) ([]models.CollegeDoc, error) {
	var cached []models.CollegeDoc
	if hit, err := cache.GetJSON(ctx, cacheKeyAll, &cached); err == nil && hit {
		return cached, nil
	}

	out, err := s.colleges.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	_ = cache.SetJSON(ctx, cacheKeyAll, out, cacheTTLSeconds)
	return out, nil
}

// PopularColleges returns the top 3 by rating, descending.
func (s *CatalogService) PopularColleges(ctx context.Context) ([]models.CollegeDoc, error) {
	var cached []models.CollegeDoc
	if hit, err := cache.GetJSON(ctx, cacheKeyPopular, &cached); err == nil && hit {
		return cached, nil
	}

	out, err := s.colleges.FindTopRated(ctx, popularCount)
	if err != nil {
		return nil, err
	}
	_ = cache.SetJSON(ctx, cacheKeyPopular, out, cacheTTLSeconds)
	return out, nil
}

// CollegeByID parses the canonical hex id and looks the document up.
// Missing documents are (nil, nil); unparseable ids are ErrInvalidID.
// By-id reads are never cached.
func (s *CatalogService) CollegeByID(ctx context.Context, hex string) (*models.CollegeDoc, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.colleges.FindByID(ctx, id)
}
