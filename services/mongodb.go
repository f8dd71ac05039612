package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoService wraps the MongoDB Atlas client for the site database.
type MongoService struct {
	client   *mongo.Client
	database *mongo.Database
}

func NewMongoService(uri, dbName string) (*MongoService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logrus.WithField("db", dbName).Info("Connected to MongoDB Atlas")

	return &MongoService{
		client:   client,
		database: client.Database(dbName),
	}, nil
}

func (s *MongoService) Collection(name string) *mongo.Collection {
	return s.database.Collection(name)
}

func (s *MongoService) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(ctx); err != nil {
		logrus.WithError(err).Warn("failed to disconnect from MongoDB")
	}
}
