package service

import (
	"context"

	"github.com/GlebRadaev/coderr/internal/config"
	"github.com/GlebRadaev/coderr/internal/handlers/auth"
	"github.com/GlebRadaev/coderr/internal/handlers/offers"
	"github.com/GlebRadaev/coderr/internal/handlers/orders"
	"github.com/GlebRadaev/coderr/internal/handlers/profiles"
	"github.com/GlebRadaev/coderr/internal/handlers/reviews"
	"github.com/GlebRadaev/coderr/internal/handlers/stats"
	"github.com/GlebRadaev/coderr/internal/repo"
	"github.com/GlebRadaev/coderr/internal/service/authservice"
	"github.com/GlebRadaev/coderr/internal/service/offerservice"
	"github.com/GlebRadaev/coderr/internal/service/orderservice"
	"github.com/GlebRadaev/coderr/internal/service/profileservice"
	"github.com/GlebRadaev/coderr/internal/service/reviewservice"
	"github.com/GlebRadaev/coderr/internal/service/statsservice"
	pkgauth "github.com/GlebRadaev/coderr/pkg/auth"
)

// Provisioner creates the accounts the platform expects at start-up.
type Provisioner interface {
	Provision(ctx context.Context) error
}

type Services struct {
	AuthService    auth.Service
	ProfileService profiles.Service
	OfferService   offers.Service
	OrderService   orders.Service
	ReviewService  reviews.Service
	StatsService   stats.Service
	Provisioner    Provisioner
	TokenValidator pkgauth.TokenValidator
}

func New(repo *repo.Repositories, cfg *config.Config) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService, cfg)

	return &Services{
		AuthService:    authService,
		ProfileService: profileservice.New(repo.UserRepo),
		OfferService:   offerservice.New(repo.OfferRepo, cfg.OffersPageSize, cfg.OffersMaxPageSize),
		OrderService:   orderservice.New(repo.OrderRepo, repo.UserRepo),
		ReviewService:  reviewservice.New(repo.ReviewRepo, repo.UserRepo),
		StatsService:   statsservice.New(repo.StatsRepo),
		Provisioner:    authService,
		TokenValidator: jwtService,
	}
}
