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

type UserRepository interface {
	// Upsert merges the profile fields over the record at the email key,
	// inserting if absent, and returns the stored record.
	Upsert(ctx context.Context, email string, profile map[string]interface{}) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	Promote(ctx context.Context, email string) error
}

type userRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewUserRepository(store *database.Store, log *zap.Logger) UserRepository {
	return &userRepository{
		coll: store.Users(),
		log:  log.With(zap.String("repository", "user")),
	}
}

// mergeProfile builds the $set document for an upsert. The email key always
// wins over whatever the body carries, and _id never moves.
func mergeProfile(email string, profile map[string]interface{}) bson.M {
	set := bson.M{"email": email}
	for k, v := range profile {
		if k == "_id" || k == "email" {
			continue
		}
		set[k] = v
	}
	return set
}

func (r *userRepository) Upsert(ctx context.Context, email string, profile map[string]interface{}) (*entity.User, error) {
	set := mergeProfile(email, profile)

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var user entity.User
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"email": email}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		r.log.Error("Failed to upsert user",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("upsert user %s: %w", email, err)
	}

	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		r.log.Error("Failed to find users", zap.Error(err))
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []*entity.User
	if err := cursor.All(ctx, &users); err != nil {
		r.log.Error("Failed to decode users", zap.Error(err))
		return nil, fmt.Errorf("decode users: %w", err)
	}

	return users, nil
}

func (r *userRepository) Promote(ctx context.Context, email string) error {
	update := bson.M{"$set": bson.M{"role": entity.RoleAdmin}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		r.log.Error("Failed to promote user",
			zap.Error(err),
			zap.String("email", email),
		)
		return fmt.Errorf("promote user %s: %w", email, err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("user %s not found", email)
	}

	return nil
}
