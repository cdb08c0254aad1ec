package repository

import (
	"context"
	"fmt"

	"clinic-booking/internal/data/entity"
	"clinic-booking/pkg/database"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	Insert(ctx context.Context, payment *entity.Payment) error
}

type paymentRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewPaymentRepository(store *database.Store, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		coll: store.Payments(),
		log:  log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Insert(ctx context.Context, payment *entity.Payment) error {
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		r.log.Error("Failed to insert payment",
			zap.Error(err),
			zap.String("transaction_id", payment.TransactionID),
		)
		return fmt.Errorf("insert payment %s: %w", payment.TransactionID, err)
	}

	return nil
}
