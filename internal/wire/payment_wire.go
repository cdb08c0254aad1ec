package wire

import (
	"clinic-booking/internal/adaptor"
	"clinic-booking/pkg/middleware"
	"clinic-booking/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	tokens *token.Manager,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))

		// POST /create-payment-intent - get a client secret for a charge
		r.Post("/create-payment-intent", paymentHandler.CreateIntent)
	})
}
