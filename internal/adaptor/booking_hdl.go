package adaptor

import (
	"encoding/json"
	"net/http"

	"clinic-booking/internal/dto/request"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// SubmitBooking handles POST /booking (public)
func (h *BookingHandler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.SubmitBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit booking")
		return
	}

	// A duplicate is a normal outcome: 200 with accepted=false and the
	// existing record, never an HTTP error.
	if !result.Accepted {
		utils.ResponseSuccess(w, "booking already exists", result)
		return
	}

	utils.ResponseCreated(w, "success", result)
}

// GetPatientBookings handles GET /booking?patient= (protected, self-match)
func (h *BookingHandler) GetPatientBookings(w http.ResponseWriter, r *http.Request) {
	email, ok := utils.GetEmailFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	patient := r.URL.Query().Get("patient")
	if patient == "" {
		utils.ResponseBadRequest(w, "patient query parameter is required", nil)
		return
	}

	// One authenticated patient must not read another's bookings.
	if patient != email {
		h.log.Warn("Patient listing identity mismatch",
			zap.String("caller", email),
			zap.String("requested", patient))
		utils.ResponseForbidden(w, "Forbidden access")
		return
	}

	bookings, err := h.service.GetPatientBookings(r.Context(), patient)
	if err != nil {
		handleServiceError(w, h.log, err, "get patient bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingByID handles GET /booking/{id} (protected)
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.GetBookingByID(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking by ID")
		return
	}

	// A miss is an empty result, not a fault.
	utils.ResponseSuccess(w, "success", booking)
}

// RecordPayment handles PATCH /booking/{id} (protected)
func (h *BookingHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.RecordPayment(r.Context(), bookingID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "record payment")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}
