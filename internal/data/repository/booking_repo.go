package repository

import (
	"context"
	"fmt"

	"clinic-booking/internal/data/entity"
	"clinic-booking/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// InsertIfAbsent inserts the candidate unless a booking for the same
	// (treatment, date, patient) tuple already exists. Returns the existing
	// record on a duplicate, nil on a successful insert.
	InsertIfAbsent(ctx context.Context, booking *entity.Booking) (*entity.Booking, error)
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	FindByPatient(ctx context.Context, patient string) ([]*entity.Booking, error)
	FindByDate(ctx context.Context, date string) ([]*entity.Booking, error)
	MarkPaid(ctx context.Context, id string, transactionID string) error
}

type bookingRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewBookingRepository(store *database.Store, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		coll: store.Bookings(),
		log:  log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) InsertIfAbsent(ctx context.Context, booking *entity.Booking) (*entity.Booking, error) {
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}

	filter := bson.M{
		"treatment": booking.Treatment,
		"date":      booking.Date,
		"patient":   booking.Patient,
	}

	// Single conditional write: two concurrent identical submissions cannot
	// both insert. The loser of the race sees the winner's record.
	update := bson.M{"$setOnInsert": booking}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.Before)

	var existing entity.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		// No prior record: the candidate was inserted.
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to admit booking",
			zap.Error(err),
			zap.String("treatment", booking.Treatment),
			zap.String("date", booking.Date),
			zap.String("patient", booking.Patient),
		)
		return nil, fmt.Errorf("admit booking for %s on %s: %w", booking.Patient, booking.Date, err)
	}

	return &existing, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID %s: %w", id, err)
	}

	var booking entity.Booking
	err = r.coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id, err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByPatient(ctx context.Context, patient string) ([]*entity.Booking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"patient": patient})
	if err != nil {
		r.log.Error("Failed to find bookings by patient",
			zap.Error(err),
			zap.String("patient", patient),
		)
		return nil, fmt.Errorf("find bookings by patient %s: %w", patient, err)
	}
	defer cursor.Close(ctx)

	var bookings []*entity.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		r.log.Error("Failed to decode bookings", zap.Error(err))
		return nil, fmt.Errorf("decode bookings: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) FindByDate(ctx context.Context, date string) ([]*entity.Booking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"date": date})
	if err != nil {
		r.log.Error("Failed to find bookings by date",
			zap.Error(err),
			zap.String("date", date),
		)
		return nil, fmt.Errorf("find bookings by date %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var bookings []*entity.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		r.log.Error("Failed to decode bookings", zap.Error(err))
		return nil, fmt.Errorf("decode bookings: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) MarkPaid(ctx context.Context, id string, transactionID string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid booking ID %s: %w", id, err)
	}

	update := bson.M{"$set": bson.M{
		"paid":          true,
		"transactionId": transactionID,
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		r.log.Error("Failed to mark booking paid",
			zap.Error(err),
			zap.String("booking_id", id),
			zap.String("transaction_id", transactionID),
		)
		return fmt.Errorf("mark booking %s paid: %w", id, err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found", id)
	}

	return nil
}
