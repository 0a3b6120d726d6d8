package profileservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/coderr/internal/domain"
	"github.com/GlebRadaev/coderr/internal/permission"
	"go.uber.org/zap"
)

type Repo interface {
	GetProfile(ctx context.Context, userID int) (*domain.Profile, error)
	ListProfiles(ctx context.Context, role domain.Role) ([]domain.Profile, error)
	UpdateProfile(ctx context.Context, userID int, upd domain.ProfileUpdate) (*domain.Profile, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetProfile(ctx context.Context, caller domain.Caller, userID int) (*domain.Profile, error) {
	if err := permission.Check(permission.Authenticated, caller, 0); err != nil {
		return nil, err
	}
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("profile %d: %w", userID, domain.ErrNotFound)
	}
	return profile, nil
}

func (s *Service) ListProfiles(ctx context.Context, caller domain.Caller, role domain.Role) ([]domain.Profile, error) {
	if err := permission.Check(permission.Authenticated, caller, 0); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, domain.NewValidationError("type", "Must be one of: business customer.")
	}
	return s.repo.ListProfiles(ctx, role)
}

// CanEdit reports whether caller owns the profile of userID.
func (s *Service) CanEdit(ctx context.Context, caller domain.Caller, userID int) error {
	if _, err := s.GetProfile(ctx, caller, userID); err != nil {
		return err
	}
	if err := permission.Check(permission.Owner, caller, userID); err != nil {
		zap.L().Info("profile update denied", zap.Int("caller", caller.UserID), zap.Int("profile", userID))
		return err
	}
	return nil
}

// UpdateProfile lets owners edit their own profile. The account type is not editable.
func (s *Service) UpdateProfile(ctx context.Context, caller domain.Caller, userID int, upd domain.ProfileUpdate) (*domain.Profile, error) {
	if err := s.CanEdit(ctx, caller, userID); err != nil {
		return nil, err
	}

	if upd.Email != nil {
		other, err := s.repo.FindByEmail(ctx, *upd.Email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != userID {
			return nil, domain.NewValidationError("email", "A user with this email already exists.")
		}
	}

	profile, err := s.repo.UpdateProfile(ctx, userID, upd)
	if errors.Is(err, domain.ErrConflict) {
		return nil, domain.NewValidationError("email", "A user with this email already exists.")
	}
	if err != nil {
		zap.L().Error("can't update profile", zap.Error(err))
		return nil, err
	}
	return profile, nil
}
