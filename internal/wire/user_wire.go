package wire

import (
	"clinic-booking/internal/adaptor"
	"clinic-booking/internal/data/repository"
	"clinic-booking/pkg/middleware"
	"clinic-booking/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	tokens *token.Manager,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// PUT /user/{email} - upsert the user and issue a fresh token
	r.Put("/user/{email}", userHandler.UpsertUser)

	// GET /admin/{email} - check the admin flag
	r.Get("/admin/{email}", userHandler.AdminCheck)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))

		// GET /user - list all users
		r.Get("/user", userHandler.ListUsers)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.Auth(tokens, log))
		r.Use(middleware.Admin(repo.User, log))

		// PUT /user/admin/{email} - promote a user to admin
		r.Put("/user/admin/{email}", userHandler.Promote)
	})
}
