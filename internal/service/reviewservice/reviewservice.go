package reviewservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/GlebRadaev/coderr/internal/domain"
	"github.com/GlebRadaev/coderr/internal/permission"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, review *domain.Review) error
	FindByID(ctx context.Context, id int) (*domain.Review, error)
	List(ctx context.Context, f domain.ReviewFilter) ([]domain.Review, error)
	Update(ctx context.Context, id int, patch domain.ReviewPatch) (*domain.Review, error)
	Delete(ctx context.Context, id int) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

const (
	minRating = 1
	maxRating = 5
)

var orderings = map[string]bool{
	"":            true,
	"updated_at":  true,
	"-updated_at": true,
	"rating":      true,
	"-rating":     true,
}

type Service struct {
	repo     Repo
	userRepo UserRepo
}

func New(repo Repo, userRepo UserRepo) *Service {
	return &Service{
		repo:     repo,
		userRepo: userRepo,
	}
}

// CanCreate reports whether caller may write reviews.
func (s *Service) CanCreate(caller domain.Caller) error {
	return permission.Check(permission.Customer, caller, 0)
}

// CanEdit reports whether caller wrote review id.
func (s *Service) CanEdit(ctx context.Context, caller domain.Caller, id int) error {
	_, err := s.authorFor(ctx, caller, id)
	return err
}

// CreateReview stores a customer's review of a business. A customer reviews a
// business at most once.
func (s *Service) CreateReview(ctx context.Context, caller domain.Caller, review *domain.Review) (*domain.Review, error) {
	if err := s.CanCreate(caller); err != nil {
		return nil, err
	}

	verr := &domain.ValidationError{}
	checkRating(verr, &review.Rating)
	if strings.TrimSpace(review.Description) == "" {
		verr.Add("description", "This field may not be blank.")
	}
	target, err := s.userRepo.FindByID(ctx, review.BusinessUserID)
	if err != nil {
		return nil, err
	}
	if target == nil || target.Role != domain.RoleBusiness {
		verr.Add("business_user", "Must reference a business account.")
	}
	if !verr.Empty() {
		return nil, verr
	}

	review.ReviewerID = caller.UserID
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}
	zap.L().Info("review created", zap.Int("review", review.ID), zap.Int("business", review.BusinessUserID))
	return review, nil
}

func (s *Service) ListReviews(ctx context.Context, caller domain.Caller, filter domain.ReviewFilter) ([]domain.Review, error) {
	if err := permission.Check(permission.Authenticated, caller, 0); err != nil {
		return nil, err
	}
	if !orderings[filter.Ordering] {
		return nil, domain.NewValidationError("ordering", "Must be one of: updated_at -updated_at rating -rating.")
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) UpdateReview(ctx context.Context, caller domain.Caller, id int, patch domain.ReviewPatch) (*domain.Review, error) {
	if _, err := s.authorFor(ctx, caller, id); err != nil {
		return nil, err
	}

	verr := &domain.ValidationError{}
	checkRating(verr, patch.Rating)
	if patch.Description != nil && strings.TrimSpace(*patch.Description) == "" {
		verr.Add("description", "This field may not be blank.")
	}
	if !verr.Empty() {
		return nil, verr
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) DeleteReview(ctx context.Context, caller domain.Caller, id int) error {
	if _, err := s.authorFor(ctx, caller, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// authorFor loads the review and checks that caller wrote it.
func (s *Service) authorFor(ctx context.Context, caller domain.Caller, id int) (*domain.Review, error) {
	if err := permission.Check(permission.Authenticated, caller, 0); err != nil {
		return nil, err
	}
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, fmt.Errorf("review %d: %w", id, domain.ErrNotFound)
	}
	if err := permission.Check(permission.Owner, caller, review.ReviewerID); err != nil {
		return nil, err
	}
	return review, nil
}

func checkRating(verr *domain.ValidationError, rating *int) {
	if rating != nil && (*rating < minRating || *rating > maxRating) {
		verr.Add("rating", fmt.Sprintf("Must be between %d and %d.", minRating, maxRating))
	}
}
