package usecase

import (
	"context"
	"fmt"

	"clinic-booking/internal/data/entity"
	"clinic-booking/internal/data/repository"
	"clinic-booking/internal/dto/response"
	"clinic-booking/pkg/token"

	"go.uber.org/zap"
)

type UserService interface {
	// UpsertUser stores the profile at the email key and issues a fresh
	// access token scoped to that email.
	UpsertUser(ctx context.Context, email string, profile map[string]interface{}) (*response.UpsertUserResponse, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	Promote(ctx context.Context, email string) (*entity.User, error)
}

type userService struct {
	repo   *repository.Repository
	tokens *token.Manager
	log    *zap.Logger
}

func NewUserService(repo *repository.Repository, tokens *token.Manager, log *zap.Logger) UserService {
	return &userService{
		repo:   repo,
		tokens: tokens,
		log:    log.With(zap.String("service", "user")),
	}
}

func (s *userService) UpsertUser(ctx context.Context, email string, profile map[string]interface{}) (*response.UpsertUserResponse, error) {
	user, err := s.repo.User.Upsert(ctx, email, profile)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	accessToken, err := s.tokens.Sign(email)
	if err != nil {
		s.log.Error("Failed to issue token after upsert",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("issue token for %s: %w", email, err)
	}

	s.log.Info("User upserted",
		zap.String("email", email),
		zap.String("role", string(user.Role)),
	)

	return &response.UpsertUserResponse{
		User:  user,
		Token: accessToken,
	}, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

// IsAdmin reports the role flag for the email. A missing user is simply
// not an admin, never an error.
func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("check admin for %s: %w", email, err)
	}

	return user.IsAdmin(), nil
}

// Promote sets the admin role. The admin gate on the route guarantees the
// caller already holds admin; this component trusts its caller context.
func (s *userService) Promote(ctx context.Context, email string) (*entity.User, error) {
	if err := s.repo.User.Promote(ctx, email); err != nil {
		return nil, fmt.Errorf("promote user: %w", err)
	}

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("load promoted user %s: %w", email, err)
	}

	s.log.Info("User promoted to admin", zap.String("email", email))

	return user, nil
}
