package usecase

import (
	"context"
	"fmt"
	"math"

	"clinic-booking/internal/dto/request"
	"clinic-booking/internal/dto/response"
	"clinic-booking/pkg/payment"
	"clinic-booking/pkg/utils"

	"go.uber.org/zap"
)

type PaymentService interface {
	CreateIntent(ctx context.Context, req *request.CreatePaymentIntentRequest) (*response.PaymentIntentResponse, error)
}

type paymentService struct {
	gateway  payment.Gateway
	currency string
	log      *zap.Logger
}

func NewPaymentService(gateway payment.Gateway, config *utils.Config, log *zap.Logger) PaymentService {
	return &paymentService{
		gateway:  gateway,
		currency: config.Payment.Currency,
		log:      log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) CreateIntent(ctx context.Context, req *request.CreatePaymentIntentRequest) (*response.PaymentIntentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create intent validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Gateway amounts are in the currency's minor unit.
	amount := int64(math.Round(req.Price * 100))

	clientSecret, err := s.gateway.CreateIntent(ctx, amount, s.currency)
	if err != nil {
		s.log.Error("Failed to create payment intent",
			zap.Error(err),
			zap.Int64("amount", amount),
		)
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	s.log.Info("Payment intent created", zap.Int64("amount", amount))

	return &response.PaymentIntentResponse{
		ClientSecret: clientSecret,
	}, nil
}
