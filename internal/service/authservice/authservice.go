package authservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/coderr/internal/config"
	"github.com/GlebRadaev/coderr/internal/domain"
	"github.com/GlebRadaev/coderr/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	PromoteStaff(ctx context.Context, username string) (bool, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	cfg         *config.Config
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, cfg *config.Config) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		cfg:         cfg,
	}
}

var ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", domain.ErrUnauthenticated)

func (s *Service) isReserved(username string) bool {
	for _, reserved := range s.cfg.GuestUsernames() {
		if strings.EqualFold(reserved, username) {
			return true
		}
	}
	return false
}

func (s *Service) Register(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	verr := &domain.ValidationError{}
	if reg.Password != reg.RepeatedPassword {
		verr.Add("repeated_password", "Passwords do not match.")
	}
	if s.isReserved(reg.Username) {
		verr.Add("username", "This username is reserved.")
	}
	if !reg.Type.Valid() {
		verr.Add("type", "Must be one of: business customer.")
	}
	if !verr.Empty() {
		return nil, verr
	}

	existing, err := s.userRepo.FindByUsername(ctx, reg.Username)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		verr.Add("username", "A user with that username already exists.")
	}
	existing, err = s.userRepo.FindByEmail(ctx, reg.Email)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		verr.Add("email", "A user with this email already exists.")
	}
	if !verr.Empty() {
		zap.L().Info("registration rejected", zap.String("username", reg.Username))
		return nil, verr
	}

	hashedPassword, err := s.hashService.HashPassword(reg.Password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	user, err := s.userRepo.Create(ctx, &domain.User{
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: hashedPassword,
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		Role:         reg.Type,
	})
	if errors.Is(err, domain.ErrConflict) {
		return nil, domain.NewValidationError("username", "A user with that username or email already exists.")
	}
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("username", user.Username), zap.String("role", string(user.Role)))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil || !s.hashService.ComparePassword(user.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("username", username))
	return user, nil
}

// GuestLogin hands out the pre-provisioned guest account for the role.
func (s *Service) GuestLogin(ctx context.Context, role domain.Role) (*domain.User, error) {
	var username string
	switch role {
	case domain.RoleCustomer:
		username = s.cfg.GuestCustomerUsername
	case domain.RoleBusiness:
		username = s.cfg.GuestBusinessUsername
	default:
		return nil, domain.NewValidationError("type", "Must be one of: business customer.")
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find guest user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		zap.L().Error("guest account is not provisioned", zap.String("username", username))
		return nil, fmt.Errorf("guest %s: %w", role, domain.ErrNotFound)
	}
	user.IsGuest = true
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	ttl := s.cfg.TokenTTL
	if user.IsGuest {
		ttl = s.cfg.GuestTokenTTL
	}
	caller := domain.Caller{
		UserID:  user.ID,
		Role:    user.Role,
		IsStaff: user.IsStaff,
		IsGuest: user.IsGuest,
	}

	token, err := s.jwtService.GenerateJWT(caller, time.Now().Add(ttl))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}

// Provision makes sure the guest accounts and the optional staff account exist.
// It is safe to run on every start.
func (s *Service) Provision(ctx context.Context) error {
	guests := []struct {
		username string
		role     domain.Role
	}{
		{s.cfg.GuestCustomerUsername, domain.RoleCustomer},
		{s.cfg.GuestBusinessUsername, domain.RoleBusiness},
	}
	for _, g := range guests {
		err := s.ensureAccount(ctx, &domain.User{
			Username: g.username,
			Email:    g.username + "@guest.coderr.local",
			Role:     g.role,
			IsGuest:  true,
		}, s.cfg.GuestPassword)
		if err != nil {
			return fmt.Errorf("can't provision guest %s: %w", g.username, err)
		}
	}

	if s.cfg.AdminUsername == "" || s.cfg.AdminPassword == "" {
		return nil
	}
	err := s.ensureAccount(ctx, &domain.User{
		Username: s.cfg.AdminUsername,
		Email:    s.cfg.AdminEmail,
		Role:     domain.RoleCustomer,
		IsStaff:  true,
	}, s.cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("can't provision staff account: %w", err)
	}
	return nil
}

func (s *Service) ensureAccount(ctx context.Context, user *domain.User, password string) error {
	existing, err := s.userRepo.FindByUsername(ctx, user.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		if user.IsStaff && !existing.IsStaff {
			if _, err := s.userRepo.PromoteStaff(ctx, user.Username); err != nil {
				return err
			}
			zap.L().Info("user promoted to staff", zap.String("username", user.Username))
		}
		return nil
	}

	user.PasswordHash, err = s.hashService.HashPassword(password)
	if err != nil {
		return err
	}
	if _, err = s.userRepo.Create(ctx, user); err != nil && !errors.Is(err, domain.ErrConflict) {
		return err
	}
	zap.L().Info("account provisioned", zap.String("username", user.Username))
	return nil
}
