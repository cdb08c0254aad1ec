// internal/wire/wire.go
package wire

import (
	"net/http"
	"time"

	"clinic-booking/internal/adaptor"
	"clinic-booking/internal/data/repository"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/mailer"
	"clinic-booking/pkg/middleware"
	"clinic-booking/pkg/payment"
	"clinic-booking/pkg/token"
	"clinic-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	tokens := token.NewManager(config.Token.Secret, config.Token.ExpiryHours)
	mail := mailer.NewSMTPMailer(config.Email, logger)
	gateway := payment.NewGateway(config.Payment)

	// Initialize services and handlers
	service := usecase.NewService(repo, tokens, mail, gateway, config, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, repo, tokens, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	tokens *token.Manager,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.AllowedOrigins))
	if config.App.RateLimitPerMin > 0 {
		r.Use(httprate.LimitByIP(config.App.RateLimitPerMin, time.Minute))
	}

	// Apply routes
	wireCatalog(r, handler.Catalog)
	wireBooking(r, handler.Booking, tokens, logger)
	wireUser(r, handler.User, repo, tokens, logger)
	wireDoctor(r, handler.Doctor, repo, tokens, logger)
	wirePayment(r, handler.Payment, tokens, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
