package orderservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/coderr/internal/domain"
	"github.com/GlebRadaev/coderr/internal/permission"
	"go.uber.org/zap"
)

type Repo interface {
	CreateFromDetail(ctx context.Context, customerID, detailID int) (*domain.Order, error)
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	FindByParticipant(ctx context.Context, userID int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int, from, to domain.OrderStatus) (*domain.Order, error)
	Delete(ctx context.Context, id int) error
	CountByBusiness(ctx context.Context, businessUserID int, status domain.OrderStatus) (int, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

var ErrStatusChanged = fmt.Errorf("order status was changed concurrently: %w", domain.ErrInvalidTransition)

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

// CanCreate reports whether caller may place orders.
func (s *Service) CanCreate(caller domain.Caller) error {
	return permission.Check(permission.Customer, caller, 0)
}

// CanChangeStatus reports whether caller is the business side of order id.
func (s *Service) CanChangeStatus(ctx context.Context, caller domain.Caller, id int) error {
	_, err := s.counterpartOf(ctx, caller, id)
	return err
}

func (s *Service) counterpartOf(ctx context.Context, caller domain.Caller, id int) (*domain.Order, error) {
	if err := permission.Check(permission.Authenticated, caller, 0); err != nil {
		return nil, err
	}
	order, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := permission.Check(permission.All(permission.Business, permission.Owner), caller, order.BusinessUserID); err != nil {
		return nil, err
	}
	return order, nil
}

// CreateOrder places an order for the given tier, copying its terms into the order.
func (s *Service) CreateOrder(ctx context.Context, caller domain.Caller, detailID int) (*domain.Order, error) {
	if err := s.CanCreate(caller); err != nil {
		return nil, err
	}
	order, err := s.repo.CreateFromDetail(ctx, caller.UserID, detailID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("offer detail %d: %w", detailID, domain.ErrNotFound)
	}
	zap.L().Info("order placed",
		zap.Int("order", order.ID),
		zap.Int("customer", order.CustomerID),
		zap.Int("business", order.BusinessUserID),
	)
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, caller domain.Caller) ([]domain.Order, error) {
	if err := permission.Check(permission.Authenticated, caller, 0); err != nil {
		return nil, err
	}
	return s.repo.FindByParticipant(ctx, caller.UserID)
}

func (s *Service) UpdateStatus(ctx context.Context, caller domain.Caller, id int, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.counterpartOf(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, domain.NewValidationError("status", "Must be one of: in_progress completed cancelled.")
	}
	if !order.Status.CanTransition(status) {
		return nil, fmt.Errorf("order %d: %s -> %s: %w", id, order.Status, status, domain.ErrInvalidTransition)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, order.Status, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		zap.L().Info("order status race lost", zap.Int("order", id))
		return nil, ErrStatusChanged
	}
	return updated, nil
}

func (s *Service) DeleteOrder(ctx context.Context, caller domain.Caller, id int) error {
	if err := permission.Check(permission.Staff, caller, 0); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// CountOrders counts the orders of a business account that are in the given status.
func (s *Service) CountOrders(ctx context.Context, caller domain.Caller, businessUserID int, status domain.OrderStatus) (int, error) {
	if err := permission.Check(permission.Authenticated, caller, 0); err != nil {
		return 0, err
	}
	user, err := s.userRepo.FindByID(ctx, businessUserID)
	if err != nil {
		return 0, err
	}
	if user == nil || user.Role != domain.RoleBusiness {
		return 0, fmt.Errorf("business user %d: %w", businessUserID, domain.ErrNotFound)
	}
	return s.repo.CountByBusiness(ctx, businessUserID, status)
}

func (s *Service) find(ctx context.Context, id int) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("order %d: %w", id, domain.ErrNotFound)
	}
	return order, nil
}

