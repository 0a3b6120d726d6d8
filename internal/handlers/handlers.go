package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/coderr/docs"
	authhandlers "github.com/GlebRadaev/coderr/internal/handlers/auth"
	offershandlers "github.com/GlebRadaev/coderr/internal/handlers/offers"
	ordershandlers "github.com/GlebRadaev/coderr/internal/handlers/orders"
	profileshandlers "github.com/GlebRadaev/coderr/internal/handlers/profiles"
	reviewshandlers "github.com/GlebRadaev/coderr/internal/handlers/reviews"
	statshandlers "github.com/GlebRadaev/coderr/internal/handlers/stats"
	"github.com/GlebRadaev/coderr/internal/service"
	"github.com/GlebRadaev/coderr/pkg/auth"
	"github.com/GlebRadaev/coderr/pkg/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	GuestLogin(w http.ResponseWriter, r *http.Request)
}

type ProfileHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	ListProfiles(w http.ResponseWriter, r *http.Request)
	ListBusinessProfiles(w http.ResponseWriter, r *http.Request)
	ListCustomerProfiles(w http.ResponseWriter, r *http.Request)
}

type OfferHandler interface {
	ListOffers(w http.ResponseWriter, r *http.Request)
	GetOffer(w http.ResponseWriter, r *http.Request)
	GetOfferDetail(w http.ResponseWriter, r *http.Request)
	CreateOffer(w http.ResponseWriter, r *http.Request)
	ReplaceOffer(w http.ResponseWriter, r *http.Request)
	UpdateOffer(w http.ResponseWriter, r *http.Request)
	DeleteOffer(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	ListOrders(w http.ResponseWriter, r *http.Request)
	UpdateOrder(w http.ResponseWriter, r *http.Request)
	DeleteOrder(w http.ResponseWriter, r *http.Request)
	OrderCount(w http.ResponseWriter, r *http.Request)
	CompletedOrderCount(w http.ResponseWriter, r *http.Request)
}

type ReviewHandler interface {
	ListReviews(w http.ResponseWriter, r *http.Request)
	CreateReview(w http.ResponseWriter, r *http.Request)
	UpdateReview(w http.ResponseWriter, r *http.Request)
	DeleteReview(w http.ResponseWriter, r *http.Request)
}

type StatsHandler interface {
	BaseInfo(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	ProfileHandler ProfileHandler
	OfferHandler   OfferHandler
	OrderHandler   OrderHandler
	ReviewHandler  ReviewHandler
	StatsHandler   StatsHandler

	tokens  auth.TokenValidator
	metrics *metrics.Metrics
}

func New(s *service.Services, m *metrics.Metrics, restrictGuestOffers bool) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		ProfileHandler: profileshandlers.New(s.ProfileService),
		OfferHandler:   offershandlers.New(s.OfferService, restrictGuestOffers),
		OrderHandler:   ordershandlers.New(s.OrderService),
		ReviewHandler:  reviewshandlers.New(s.ReviewService),
		StatsHandler:   statshandlers.New(s.StatsService),
		tokens:         s.TokenValidator,
		metrics:        m,
	}
}

// InitRoutes mounts the API. Trailing slashes are optional on every route.
func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.StripSlashes,
		h.metrics.Middleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", h.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			authRoutes := func(r chi.Router) {
				r.Post("/registration", h.AuthHandler.Register)
				r.Post("/login", h.AuthHandler.Login)
				r.Post("/guest-login", h.AuthHandler.GuestLogin)
			}
			authRoutes(r)
			r.Route("/auth", authRoutes)
			r.Get("/base-info", h.StatsHandler.BaseInfo)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.OptionalMiddleware(h.tokens))
			r.Get("/offers", h.OfferHandler.ListOffers)
			r.Get("/offerdetails/{id}", h.OfferHandler.GetOfferDetail)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.tokens))

			r.Route("/profiles", func(r chi.Router) {
				r.Get("/", h.ProfileHandler.ListProfiles)
				r.Get("/business", h.ProfileHandler.ListBusinessProfiles)
				r.Get("/customer", h.ProfileHandler.ListCustomerProfiles)
				r.Get("/{id}", h.ProfileHandler.GetProfile)
				r.Patch("/{id}", h.ProfileHandler.UpdateProfile)
			})
			r.Get("/profile/{id}", h.ProfileHandler.GetProfile)
			r.Patch("/profile/{id}", h.ProfileHandler.UpdateProfile)

			r.Post("/offers", h.OfferHandler.CreateOffer)
			r.Route("/offers/{id}", func(r chi.Router) {
				r.Get("/", h.OfferHandler.GetOffer)
				r.Put("/", h.OfferHandler.ReplaceOffer)
				r.Patch("/", h.OfferHandler.UpdateOffer)
				r.Delete("/", h.OfferHandler.DeleteOffer)
			})
			r.Route("/orders", func(r chi.Router) {
				r.Get("/", h.OrderHandler.ListOrders)
				r.Post("/", h.OrderHandler.CreateOrder)
				r.Patch("/{id}", h.OrderHandler.UpdateOrder)
				r.Delete("/{id}", h.OrderHandler.DeleteOrder)
			})
			r.Get("/order-count/{business_user_id}", h.OrderHandler.OrderCount)
			r.Get("/completed-order-count/{business_user_id}", h.OrderHandler.CompletedOrderCount)

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", h.ReviewHandler.ListReviews)
				r.Post("/", h.ReviewHandler.CreateReview)
				r.Patch("/{id}", h.ReviewHandler.UpdateReview)
				r.Delete("/{id}", h.ReviewHandler.DeleteReview)
			})
		})
	})

	return r
}
