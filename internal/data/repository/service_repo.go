package repository

import (
	"context"
	"fmt"

	"clinic-booking/internal/data/entity"
	"clinic-booking/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type ServiceRepository interface {
	FindAll(ctx context.Context) ([]*entity.Service, error)
	FindNames(ctx context.Context) ([]*entity.Service, error)
	FindByName(ctx context.Context, name string) (*entity.Service, error)
}

type serviceRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewServiceRepository(store *database.Store, log *zap.Logger) ServiceRepository {
	return &serviceRepository{
		coll: store.Services(),
		log:  log.With(zap.String("repository", "service")),
	}
}

func (r *serviceRepository) FindAll(ctx context.Context) ([]*entity.Service, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		r.log.Error("Failed to find services", zap.Error(err))
		return nil, fmt.Errorf("find services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []*entity.Service
	if err := cursor.All(ctx, &services); err != nil {
		r.log.Error("Failed to decode services", zap.Error(err))
		return nil, fmt.Errorf("decode services: %w", err)
	}

	return services, nil
}

// FindNames returns the catalog projected to names only, for the public
// service listing.
func (r *serviceRepository) FindNames(ctx context.Context) ([]*entity.Service, error) {
	opts := options.Find().SetProjection(bson.M{"name": 1})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Error("Failed to find service names", zap.Error(err))
		return nil, fmt.Errorf("find service names: %w", err)
	}
	defer cursor.Close(ctx)

	var services []*entity.Service
	if err := cursor.All(ctx, &services); err != nil {
		r.log.Error("Failed to decode service names", zap.Error(err))
		return nil, fmt.Errorf("decode service names: %w", err)
	}

	return services, nil
}

func (r *serviceRepository) FindByName(ctx context.Context, name string) (*entity.Service, error) {
	var service entity.Service
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&service)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find service by name %s: %w", name, err)
	}

	return &service, nil
}
