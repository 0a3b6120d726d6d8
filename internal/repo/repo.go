package repo

import (
	"context"

	"github.com/GlebRadaev/coderr/internal/domain"
	"github.com/GlebRadaev/coderr/internal/pg"
	offerrepo "github.com/GlebRadaev/coderr/internal/repo/offer-repo"
	orderrepo "github.com/GlebRadaev/coderr/internal/repo/order-repo"
	reviewrepo "github.com/GlebRadaev/coderr/internal/repo/review-repo"
	statsrepo "github.com/GlebRadaev/coderr/internal/repo/stats-repo"
	userrepo "github.com/GlebRadaev/coderr/internal/repo/user-repo"
	"github.com/GlebRadaev/coderr/internal/service/authservice"
	"github.com/GlebRadaev/coderr/internal/service/offerservice"
	"github.com/GlebRadaev/coderr/internal/service/orderservice"
	"github.com/GlebRadaev/coderr/internal/service/profileservice"
	"github.com/GlebRadaev/coderr/internal/service/reviewservice"
	"github.com/GlebRadaev/coderr/internal/service/statsservice"
)

// UserRepo is the account store shared by the identity, order and review services.
type UserRepo interface {
	authservice.Repo
	profileservice.Repo
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Repositories struct {
	UserRepo   UserRepo
	OfferRepo  offerservice.Repo
	OrderRepo  orderservice.Repo
	ReviewRepo reviewservice.Repo
	StatsRepo  statsservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn, txManager)
	offerRepo := offerrepo.New(conn, txManager)
	orderRepo := orderrepo.New(conn, txManager)
	reviewRepo := reviewrepo.New(conn)
	statsRepo := statsrepo.New(conn)

	return &Repositories{
		UserRepo:   userRepo,
		OfferRepo:  offerRepo,
		OrderRepo:  orderRepo,
		ReviewRepo: reviewRepo,
		StatsRepo:  statsRepo,
	}
}
