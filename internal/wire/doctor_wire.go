package wire

import (
	"clinic-booking/internal/adaptor"
	"clinic-booking/internal/data/repository"
	"clinic-booking/pkg/middleware"
	"clinic-booking/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDoctor(
	r chi.Router,
	doctorHandler *adaptor.DoctorHandler,
	repo *repository.Repository,
	tokens *token.Manager,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/doctor", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.Auth(tokens, log))
		r.Use(middleware.Admin(repo.User, log))

		// POST /doctor - add a doctor
		r.Post("/", doctorHandler.AddDoctor)

		// GET /doctor - list doctors
		r.Get("/", doctorHandler.ListDoctors)

		// DELETE /doctor/{email} - remove a doctor
		r.Delete("/{email}", doctorHandler.RemoveDoctor)
	})
}
