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

type DoctorHandler struct {
	service usecase.DoctorService
	log     *zap.Logger
}

func NewDoctorHandler(service usecase.DoctorService, log *zap.Logger) *DoctorHandler {
	return &DoctorHandler{
		service: service,
		log:     log.With(zap.String("handler", "doctor")),
	}
}

// AddDoctor handles POST /doctor (admin only)
func (h *DoctorHandler) AddDoctor(w http.ResponseWriter, r *http.Request) {
	var req request.AddDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	doctor, err := h.service.AddDoctor(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add doctor")
		return
	}

	utils.ResponseCreated(w, "success", doctor)
}

// ListDoctors handles GET /doctor (admin only)
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.service.ListDoctors(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list doctors")
		return
	}

	utils.ResponseSuccess(w, "success", doctors)
}

// RemoveDoctor handles DELETE /doctor/{email} (admin only)
func (h *DoctorHandler) RemoveDoctor(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required", nil)
		return
	}

	if err := h.service.RemoveDoctor(r.Context(), email); err != nil {
		handleServiceError(w, h.log, err, "remove doctor")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
