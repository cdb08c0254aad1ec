package database

import (
	"context"
	"fmt"
	"time"

	"clinic-booking/pkg/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names
const (
	CollectionServices = "services"
	CollectionBookings = "bookings"
	CollectionUsers    = "users"
	CollectionDoctors  = "doctors"
	CollectionPayments = "payments"
)

// Store wraps the shared mongo client. One instance lives for the whole
// process and is safe for concurrent use by in-flight requests.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// InitDB creates the mongo client and verifies the connection
func InitDB(config utils.DatabaseConfig) (*Store, error) {
	clientOptions := options.Client().
		ApplyURI(config.URI).
		SetConnectTimeout(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	// Test connection
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo failed: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(config.Name),
	}, nil
}

func (s *Store) Services() *mongo.Collection {
	return s.db.Collection(CollectionServices)
}

func (s *Store) Bookings() *mongo.Collection {
	return s.db.Collection(CollectionBookings)
}

func (s *Store) Users() *mongo.Collection {
	return s.db.Collection(CollectionUsers)
}

func (s *Store) Doctors() *mongo.Collection {
	return s.db.Collection(CollectionDoctors)
}

func (s *Store) Payments() *mongo.Collection {
	return s.db.Collection(CollectionPayments)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
