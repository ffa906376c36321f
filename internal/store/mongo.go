// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
)

// MongoStore reads movies from a MongoDB collection.
type MongoStore struct {
	client       *mongo.Client
	coll         *mongo.Collection
	collection   string
	queryTimeout time.Duration
}

// Connect opens a client, verifies it with a primary ping and returns the
// store bound to the configured database and collection. The connect and the
// ping share cfg.ConnectTimeout.
func Connect(ctx context.Context, cfg *config.MongoConfig) (*MongoStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName("marquee").
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	start := time.Now()
	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		if derr := client.Disconnect(context.Background()); derr != nil {
			logging.Warn().Err(derr).Msg("Failed to disconnect after ping failure")
		}
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logging.Info().
		Str("database", cfg.Database).
		Str("collection", cfg.Collection).
		Dur("elapsed", time.Since(start)).
		Msg("Connected to MongoDB")

	return &MongoStore{
		client:       client,
		coll:         client.Database(cfg.Database).Collection(cfg.Collection),
		collection:   cfg.Collection,
		queryTimeout: cfg.QueryTimeout,
	}, nil
}

// All returns every movie in natural order.
func (s *MongoStore) All(ctx context.Context) ([]models.Movie, error) {
	return s.find(ctx, "all", bson.M{})
}

// Search returns the movies matching SearchFilter(query) in natural order.
func (s *MongoStore) Search(ctx context.Context, query string) ([]models.Movie, error) {
	return s.find(ctx, "search", SearchFilter(query))
}

// find runs a filter and decodes the whole cursor.
func (s *MongoStore) find(ctx context.Context, operation string, filter bson.M) (movies []models.Movie, err error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	defer func() {
		metrics.RecordStoreQuery(operation, s.collection, time.Since(start), err)
	}()

	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find movies: %w", err)
	}

	movies = make([]models.Movie, 0)
	if err = cursor.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}
	return movies, nil
}

// Count returns the number of documents in the collection.
func (s *MongoStore) Count(ctx context.Context) (n int64, err error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	defer func() {
		metrics.RecordStoreQuery("count", s.collection, time.Since(start), err)
	}()

	n, err = s.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return n, nil
}

// Insert appends movies to the collection in the given order.
func (s *MongoStore) Insert(ctx context.Context, movies []models.Movie) (err error) {
	if len(movies) == 0 {
		return nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	defer func() {
		metrics.RecordStoreQuery("insert", s.collection, time.Since(start), err)
	}()

	docs := make([]interface{}, len(movies))
	for i := range movies {
		docs[i] = movies[i]
	}

	if _, err = s.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return fmt.Errorf("insert movies: %w", err)
	}
	return nil
}

// Ping checks the primary is reachable.
func (s *MongoStore) Ping(ctx context.Context) (err error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	defer func() {
		metrics.RecordStoreQuery("ping", s.collection, time.Since(start), err)
	}()

	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client. Calling Close twice is harmless.
func (s *MongoStore) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil && !errors.Is(err, mongo.ErrClientDisconnected) {
		return fmt.Errorf("disconnect mongodb: %w", err)
	}
	return nil
}

// withTimeout applies the configured per-query timeout, if any.
func (s *MongoStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout > 0 {
		return context.WithTimeout(ctx, s.queryTimeout)
	}
	return context.WithCancel(ctx)
}
