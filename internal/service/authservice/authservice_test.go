package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/coderr/internal/config"
	"github.com/GlebRadaev/coderr/internal/domain"
	"github.com/GlebRadaev/coderr/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		TokenTTL:              24 * time.Hour,
		GuestTokenTTL:         time.Hour,
		GuestCustomerUsername: "andrey",
		GuestBusinessUsername: "kevin",
		GuestPassword:         "guestpass",
	}
}

func NewMock(t *testing.T, cfg *config.Config) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	return New(repo, hashService, jwtService, cfg), repo, hashService, jwtService
}

func validRegistration() domain.Registration {
	return domain.Registration{
		Username:         "alice",
		Email:            "alice@mail.io",
		Password:         "secret123",
		RepeatedPassword: "secret123",
		Type:             domain.RoleCustomer,
	}
}

func TestRegister(t *testing.T) {
	service, userRepo, hasher, _ := NewMock(t, testConfig())

	tests := []struct {
		name           string
		reg            func() domain.Registration
		prepareMock    func()
		expectedFields map[string]string
		expectedError  error
	}{
		{
			name: "Successful registration",
			reg:  validRegistration,
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(nil, nil)
				userRepo.EXPECT().FindByEmail(gomock.Any(), "alice@mail.io").Return(nil, nil)
				hasher.EXPECT().HashPassword("secret123").Return("hashed", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, u *domain.User) (*domain.User, error) {
					assert.Equal(t, "hashed", u.PasswordHash)
					assert.Equal(t, domain.RoleCustomer, u.Role)
					u.ID = 1
					return u, nil
				})
			},
		},
		{
			name: "Passwords differ",
			reg: func() domain.Registration {
				r := validRegistration()
				r.RepeatedPassword = "other"
				return r
			},
			prepareMock:    func() {},
			expectedFields: map[string]string{"repeated_password": "Passwords do not match."},
		},
		{
			name: "Reserved username",
			reg: func() domain.Registration {
				r := validRegistration()
				r.Username = "Kevin"
				return r
			},
			prepareMock:    func() {},
			expectedFields: map[string]string{"username": "This username is reserved."},
		},
		{
			name: "Unknown type",
			reg: func() domain.Registration {
				r := validRegistration()
				r.Type = "admin"
				return r
			},
			prepareMock:    func() {},
			expectedFields: map[string]string{"type": "Must be one of: business customer."},
		},
		{
			name: "Username and email taken",
			reg:  validRegistration,
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(&domain.User{ID: 2}, nil)
				userRepo.EXPECT().FindByEmail(gomock.Any(), "alice@mail.io").Return(&domain.User{ID: 3}, nil)
			},
			expectedFields: map[string]string{
				"username": "A user with that username already exists.",
				"email":    "A user with this email already exists.",
			},
		},
		{
			name: "Lost race on unique constraint",
			reg:  validRegistration,
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(nil, nil)
				userRepo.EXPECT().FindByEmail(gomock.Any(), "alice@mail.io").Return(nil, nil)
				hasher.EXPECT().HashPassword("secret123").Return("hashed", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrConflict)
			},
			expectedFields: map[string]string{"username": "A user with that username or email already exists."},
		},
		{
			name: "Lookup fails",
			reg:  validRegistration,
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(nil, errors.New("db down"))
			},
			expectedError: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), tt.reg())

			switch {
			case tt.expectedFields != nil:
				var verr *domain.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.expectedFields, verr.Fields)
				assert.Nil(t, user)
			case tt.expectedError != nil:
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, user)
			default:
				require.NoError(t, err)
				assert.Equal(t, 1, user.ID)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, hasher, _ := NewMock(t, testConfig())

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Valid credentials",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(&domain.User{ID: 1, PasswordHash: "hashed"}, nil)
				hasher.EXPECT().ComparePassword("hashed", "secret").Return(true)
			},
		},
		{
			name: "Unknown user",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(nil, nil)
			},
			expectedError: domain.ErrUnauthenticated,
		},
		{
			name: "Wrong password",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(&domain.User{ID: 1, PasswordHash: "hashed"}, nil)
				hasher.EXPECT().ComparePassword("hashed", "secret").Return(false)
			},
			expectedError: domain.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Authenticate(context.Background(), "alice", "secret")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 1, user.ID)
		})
	}
}

func TestGuestLogin(t *testing.T) {
	service, userRepo, _, _ := NewMock(t, testConfig())

	userRepo.EXPECT().FindByUsername(gomock.Any(), "kevin").Return(&domain.User{ID: 4, Role: domain.RoleBusiness}, nil)
	user, err := service.GuestLogin(context.Background(), domain.RoleBusiness)
	require.NoError(t, err)
	assert.True(t, user.IsGuest)
	assert.Equal(t, 4, user.ID)

	userRepo.EXPECT().FindByUsername(gomock.Any(), "andrey").Return(nil, nil)
	_, err = service.GuestLogin(context.Background(), domain.RoleCustomer)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = service.GuestLogin(context.Background(), "staff")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t, testConfig())

	tests := []struct {
		name        string
		user        *domain.User
		expectedTTL time.Duration
	}{
		{name: "regular user", user: &domain.User{ID: 1, Role: domain.RoleCustomer}, expectedTTL: 24 * time.Hour},
		{name: "guest user", user: &domain.User{ID: 4, Role: domain.RoleBusiness, IsGuest: true}, expectedTTL: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService.EXPECT().GenerateJWT(gomock.Any(), gomock.Any()).DoAndReturn(func(c domain.Caller, exp time.Time) (string, error) {
				assert.Equal(t, tt.user.ID, c.UserID)
				assert.Equal(t, tt.user.IsGuest, c.IsGuest)
				assert.WithinDuration(t, time.Now().Add(tt.expectedTTL), exp, time.Minute)
				return "token", nil
			})

			token, err := service.GenerateToken(tt.user)
			assert.NoError(t, err)
			assert.Equal(t, "token", token)
		})
	}

	jwtService.EXPECT().GenerateJWT(gomock.Any(), gomock.Any()).Return("", errors.New("sign failed"))
	_, err := service.GenerateToken(&domain.User{ID: 1})
	assert.Error(t, err)
}

func TestProvision(t *testing.T) {
	t.Run("creates missing guests and promotes admin", func(t *testing.T) {
		cfg := testConfig()
		cfg.AdminUsername = "admin"
		cfg.AdminPassword = "adminpass"
		service, userRepo, hasher, _ := NewMock(t, cfg)

		userRepo.EXPECT().FindByUsername(gomock.Any(), "andrey").Return(nil, nil)
		hasher.EXPECT().HashPassword("guestpass").Return("hashed", nil)
		userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, u *domain.User) (*domain.User, error) {
			assert.Equal(t, "andrey", u.Username)
			assert.True(t, u.IsGuest)
			assert.Equal(t, domain.RoleCustomer, u.Role)
			return u, nil
		})
		userRepo.EXPECT().FindByUsername(gomock.Any(), "kevin").Return(&domain.User{ID: 2, IsGuest: true}, nil)
		userRepo.EXPECT().FindByUsername(gomock.Any(), "admin").Return(&domain.User{ID: 3}, nil)
		userRepo.EXPECT().PromoteStaff(gomock.Any(), "admin").Return(true, nil)

		assert.NoError(t, service.Provision(context.Background()))
	})

	t.Run("skips admin without credentials", func(t *testing.T) {
		service, userRepo, _, _ := NewMock(t, testConfig())

		userRepo.EXPECT().FindByUsername(gomock.Any(), "andrey").Return(&domain.User{ID: 1}, nil)
		userRepo.EXPECT().FindByUsername(gomock.Any(), "kevin").Return(&domain.User{ID: 2}, nil)

		assert.NoError(t, service.Provision(context.Background()))
	})

	t.Run("concurrent provisioning is tolerated", func(t *testing.T) {
		service, userRepo, hasher, _ := NewMock(t, testConfig())

		userRepo.EXPECT().FindByUsername(gomock.Any(), "andrey").Return(nil, nil)
		hasher.EXPECT().HashPassword("guestpass").Return("hashed", nil)
		userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrConflict)
		userRepo.EXPECT().FindByUsername(gomock.Any(), "kevin").Return(&domain.User{ID: 2}, nil)

		assert.NoError(t, service.Provision(context.Background()))
	})

	t.Run("lookup error aborts", func(t *testing.T) {
		service, userRepo, _, _ := NewMock(t, testConfig())

		userRepo.EXPECT().FindByUsername(gomock.Any(), "andrey").Return(nil, errors.New("db down"))

		assert.Error(t, service.Provision(context.Background()))
	})
}
