package usecase

import (
	"clinic-booking/internal/data/repository"
	"clinic-booking/pkg/mailer"
	"clinic-booking/pkg/payment"
	"clinic-booking/pkg/token"
	"clinic-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Catalog CatalogService
	Booking BookingService
	User    UserService
	Doctor  DoctorService
	Payment PaymentService
}

func NewService(
	repo *repository.Repository,
	tokens *token.Manager,
	mail mailer.Mailer,
	gateway payment.Gateway,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Catalog: NewCatalogService(repo, log),
		Booking: NewBookingService(repo, mail, log),
		User:    NewUserService(repo, tokens, log),
		Doctor:  NewDoctorService(repo, log),
		Payment: NewPaymentService(gateway, config, log),
	}
}
