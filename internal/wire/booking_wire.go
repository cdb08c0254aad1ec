package wire

import (
	"clinic-booking/internal/adaptor"
	"clinic-booking/pkg/middleware"
	"clinic-booking/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	tokens *token.Manager,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /booking - submit a booking (one per patient/treatment/day)
	r.Post("/booking", bookingHandler.SubmitBooking)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))

		// GET /booking?patient= - a patient's own bookings (self-match)
		r.Get("/booking", bookingHandler.GetPatientBookings)

		// GET /booking/{id} - fetch one booking
		r.Get("/booking/{id}", bookingHandler.GetBookingByID)

		// PATCH /booking/{id} - record a payment against a booking
		r.Patch("/booking/{id}", bookingHandler.RecordPayment)
	})
}
