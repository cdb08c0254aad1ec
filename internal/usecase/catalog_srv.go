package usecase

import (
	"context"
	"fmt"

	"clinic-booking/internal/data/entity"
	"clinic-booking/internal/data/repository"
	"clinic-booking/internal/dto/response"

	"go.uber.org/zap"
)

type CatalogService interface {
	ListServices(ctx context.Context) ([]*entity.Service, error)
	GetAvailability(ctx context.Context, date string) ([]*response.AvailableService, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListServices(ctx context.Context) ([]*entity.Service, error) {
	services, err := s.repo.Service.FindNames(ctx)
	if err != nil {
		s.log.Error("Failed to list services", zap.Error(err))
		return nil, fmt.Errorf("list services: %w", err)
	}

	return services, nil
}

func (s *catalogService) GetAvailability(ctx context.Context, date string) ([]*response.AvailableService, error) {
	services, err := s.repo.Service.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load service catalog", zap.Error(err))
		return nil, fmt.Errorf("load service catalog: %w", err)
	}

	bookings, err := s.repo.Booking.FindByDate(ctx, date)
	if err != nil {
		s.log.Error("Failed to load bookings for date",
			zap.Error(err),
			zap.String("date", date),
		)
		return nil, fmt.Errorf("load bookings for %s: %w", date, err)
	}

	return ComputeAvailability(date, services, bookings), nil
}
