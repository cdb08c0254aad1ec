package adaptor

import (
	"encoding/json"
	"net/http"

	"clinic-booking/internal/dto/response"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// UpsertUser handles PUT /user/{email} (public)
func (h *UserHandler) UpsertUser(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required", nil)
		return
	}

	// Profile fields are opaque to the core: whatever the client sends is
	// merged over the record at the email key.
	var profile map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.UpsertUser(r.Context(), email, profile)
	if err != nil {
		handleServiceError(w, h.log, err, "upsert user")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// ListUsers handles GET /user (protected)
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "success", users)
}

// AdminCheck handles GET /admin/{email} (public)
func (h *UserHandler) AdminCheck(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required", nil)
		return
	}

	// A missing user is simply not an admin.
	isAdmin, err := h.service.IsAdmin(r.Context(), email)
	if err != nil {
		handleServiceError(w, h.log, err, "admin check")
		return
	}

	utils.ResponseSuccess(w, "success", &response.AdminCheckResponse{Admin: isAdmin})
}

// Promote handles PUT /user/admin/{email} (admin only)
func (h *UserHandler) Promote(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required", nil)
		return
	}

	user, err := h.service.Promote(r.Context(), email)
	if err != nil {
		handleServiceError(w, h.log, err, "promote user")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}
