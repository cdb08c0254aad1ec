package repository

import (
	"clinic-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Service ServiceRepository
	Booking BookingRepository
	User    UserRepository
	Doctor  DoctorRepository
	Payment PaymentRepository
}

func NewRepository(store *database.Store, log *zap.Logger) *Repository {
	return &Repository{
		Service: NewServiceRepository(store, log),
		Booking: NewBookingRepository(store, log),
		User:    NewUserRepository(store, log),
		Doctor:  NewDoctorRepository(store, log),
		Payment: NewPaymentRepository(store, log),
	}
}
