package usecase

import (
	"context"
	"fmt"

	"clinic-booking/internal/data/entity"
	"clinic-booking/internal/data/repository"
	"clinic-booking/internal/dto/request"
	"clinic-booking/pkg/utils"

	"go.uber.org/zap"
)

type DoctorService interface {
	AddDoctor(ctx context.Context, req *request.AddDoctorRequest) (*entity.Doctor, error)
	ListDoctors(ctx context.Context) ([]*entity.Doctor, error)
	RemoveDoctor(ctx context.Context, email string) error
}

type doctorService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDoctorService(repo *repository.Repository, log *zap.Logger) DoctorService {
	return &doctorService{
		repo: repo,
		log:  log.With(zap.String("service", "doctor")),
	}
}

func (s *doctorService) AddDoctor(ctx context.Context, req *request.AddDoctorRequest) (*entity.Doctor, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add doctor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	doctor := &entity.Doctor{
		Name:      req.Name,
		Email:     req.Email,
		Specialty: req.Specialty,
		Image:     req.Image,
	}

	if err := s.repo.Doctor.Insert(ctx, doctor); err != nil {
		return nil, fmt.Errorf("add doctor: %w", err)
	}

	s.log.Info("Doctor added",
		zap.String("email", doctor.Email),
		zap.String("name", doctor.Name),
	)

	return doctor, nil
}

func (s *doctorService) ListDoctors(ctx context.Context) ([]*entity.Doctor, error) {
	doctors, err := s.repo.Doctor.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}

	return doctors, nil
}

func (s *doctorService) RemoveDoctor(ctx context.Context, email string) error {
	if err := s.repo.Doctor.DeleteByEmail(ctx, email); err != nil {
		return fmt.Errorf("remove doctor: %w", err)
	}

	return nil
}
