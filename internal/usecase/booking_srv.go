package usecase

import (
	"context"
	"fmt"
	"time"

	"clinic-booking/internal/data/entity"
	"clinic-booking/internal/data/repository"
	"clinic-booking/internal/dto/request"
	"clinic-booking/internal/dto/response"
	"clinic-booking/pkg/mailer"
	"clinic-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	SubmitBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResult, error)
	GetPatientBookings(ctx context.Context, patient string) ([]*entity.Booking, error)
	GetBookingByID(ctx context.Context, bookingID string) (*entity.Booking, error)
	RecordPayment(ctx context.Context, bookingID string, req *request.RecordPaymentRequest) (*entity.Booking, error)
}

type bookingService struct {
	repo   *repository.Repository
	mailer mailer.Mailer
	log    *zap.Logger
}

func NewBookingService(repo *repository.Repository, mail mailer.Mailer, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		mailer: mail,
		log:    log.With(zap.String("service", "booking")),
	}
}

// SubmitBooking admits a booking unless the patient already holds one for
// the same treatment on the same day. A duplicate returns the existing
// record with Accepted=false, which is a normal outcome, not an error.
func (s *bookingService) SubmitBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResult, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking := &entity.Booking{
		Patient:     req.Patient,
		PatientName: req.PatientName,
		Phone:       req.Phone,
		Treatment:   req.Treatment,
		Date:        req.Date,
		Slot:        req.Slot,
		Price:       req.Price,
	}

	existing, err := s.repo.Booking.InsertIfAbsent(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("submit booking: %w", err)
	}

	if existing != nil {
		s.log.Info("Duplicate booking rejected",
			zap.String("patient", req.Patient),
			zap.String("treatment", req.Treatment),
			zap.String("date", req.Date),
		)
		return &response.BookingResult{
			Accepted: false,
			Booking:  existing,
		}, nil
	}

	s.log.Info("Booking admitted",
		zap.String("booking_id", booking.ID.Hex()),
		zap.String("patient", booking.Patient),
		zap.String("treatment", booking.Treatment),
		zap.String("date", booking.Date),
		zap.String("slot", booking.Slot),
	)

	// Fire-and-forget: the admission stands even if delivery fails.
	go s.sendConfirmationEmail(booking)

	return &response.BookingResult{
		Accepted: true,
		Booking:  booking,
	}, nil
}

func (s *bookingService) GetPatientBookings(ctx context.Context, patient string) ([]*entity.Booking, error) {
	bookings, err := s.repo.Booking.FindByPatient(ctx, patient)
	if err != nil {
		return nil, fmt.Errorf("get bookings for %s: %w", patient, err)
	}

	return bookings, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}

	return booking, nil
}

// RecordPayment appends the payment record, then marks the booking paid.
// The two writes are independent: if the second fails the payment record
// still exists and the request fails with the error.
func (s *bookingService) RecordPayment(ctx context.Context, bookingID string, req *request.RecordPaymentRequest) (*entity.Booking, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Record payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	amount := req.Amount
	if amount == 0 {
		amount = booking.Price
	}

	payment := &entity.Payment{
		TransactionID: req.TransactionID,
		Amount:        amount,
		BookingID:     booking.ID,
		Patient:       booking.Patient,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Payment.Insert(ctx, payment); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	if err := s.repo.Booking.MarkPaid(ctx, bookingID, req.TransactionID); err != nil {
		s.log.Error("Payment recorded but booking not marked paid",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("transaction_id", req.TransactionID),
		)
		return nil, fmt.Errorf("mark booking paid: %w", err)
	}

	booking.Paid = true
	booking.TransactionID = req.TransactionID

	s.log.Info("Payment recorded",
		zap.String("booking_id", bookingID),
		zap.String("transaction_id", req.TransactionID),
		zap.Float64("amount", amount),
	)

	go s.sendPaymentEmail(booking)

	return booking, nil
}

func (s *bookingService) sendConfirmationEmail(booking *entity.Booking) {
	subject := fmt.Sprintf("Your appointment for %s is confirmed", booking.Treatment)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour appointment for %s on %s at %s is confirmed.\n\nPlease arrive 10 minutes early.\n",
		booking.PatientName, booking.Treatment, booking.Date, booking.Slot,
	)

	if err := s.mailer.Send(booking.Patient, subject, body); err != nil {
		s.log.Error("Failed to send confirmation email",
			zap.Error(err),
			zap.String("patient", booking.Patient),
			zap.String("booking_id", booking.ID.Hex()),
		)
	}
}

func (s *bookingService) sendPaymentEmail(booking *entity.Booking) {
	subject := fmt.Sprintf("Payment received for %s", booking.Treatment)
	body := fmt.Sprintf(
		"Hello %s,\n\nWe received your payment for %s on %s at %s.\nTransaction: %s\n",
		booking.PatientName, booking.Treatment, booking.Date, booking.Slot, booking.TransactionID,
	)

	if err := s.mailer.Send(booking.Patient, subject, body); err != nil {
		s.log.Error("Failed to send payment email",
			zap.Error(err),
			zap.String("patient", booking.Patient),
			zap.String("booking_id", booking.ID.Hex()),
		)
	}
}
