package db

import (
	"context"
	"time"

	"github.com/Towhid-Raiyan/college-selector-server/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect opens the shared Mongo client and returns the application
// database handle. The client is owned by main and is intentionally never
// closed: it lives for the whole process and the host releases the
// connection on exit.
func Connect(cfg *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return client.Database(cfg.MongoDB), nil
}
