package repository

import (
	"context"
	"fmt"

	"clinic-booking/internal/data/entity"
	"clinic-booking/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type DoctorRepository interface {
	Insert(ctx context.Context, doctor *entity.Doctor) error
	FindAll(ctx context.Context) ([]*entity.Doctor, error)
	DeleteByEmail(ctx context.Context, email string) error
}

type doctorRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewDoctorRepository(store *database.Store, log *zap.Logger) DoctorRepository {
	return &doctorRepository{
		coll: store.Doctors(),
		log:  log.With(zap.String("repository", "doctor")),
	}
}

func (r *doctorRepository) Insert(ctx context.Context, doctor *entity.Doctor) error {
	if doctor.ID.IsZero() {
		doctor.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, doctor); err != nil {
		r.log.Error("Failed to insert doctor",
			zap.Error(err),
			zap.String("email", doctor.Email),
		)
		return fmt.Errorf("insert doctor %s: %w", doctor.Email, err)
	}

	return nil
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]*entity.Doctor, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		r.log.Error("Failed to find doctors", zap.Error(err))
		return nil, fmt.Errorf("find doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var doctors []*entity.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		r.log.Error("Failed to decode doctors", zap.Error(err))
		return nil, fmt.Errorf("decode doctors: %w", err)
	}

	return doctors, nil
}

func (r *doctorRepository) DeleteByEmail(ctx context.Context, email string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		r.log.Error("Failed to delete doctor",
			zap.Error(err),
			zap.String("email", email),
		)
		return fmt.Errorf("delete doctor %s: %w", email, err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("doctor %s not found", email)
	}

	r.log.Info("Doctor deleted", zap.String("email", email))
	return nil
}
