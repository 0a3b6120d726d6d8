package statsrepo

import (
	"context"

	"github.com/GlebRadaev/coderr/internal/domain"
	"github.com/GlebRadaev/coderr/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) count(ctx context.Context, what, query string, args ...any) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		zap.L().Error("can't count "+what, zap.Error(err))
		return 0, err
	}
	return n, nil
}

func (r *Repository) CountReviews(ctx context.Context) (int, error) {
	return r.count(ctx, "reviews", `SELECT COUNT(*) FROM reviews`)
}

func (r *Repository) CountOffers(ctx context.Context) (int, error) {
	return r.count(ctx, "offers", `SELECT COUNT(*) FROM offers`)
}

func (r *Repository) CountProfiles(ctx context.Context, role domain.Role) (int, error) {
	return r.count(ctx, "profiles",
		`SELECT COUNT(*) FROM profiles p JOIN users u ON u.id = p.user_id WHERE u.role = $1`, role)
}

// AverageRating returns the unrounded mean rating, 0 when there are no reviews.
func (r *Repository) AverageRating(ctx context.Context) (float64, error) {
	var avg float64
	if err := r.db.QueryRow(ctx, `SELECT COALESCE(AVG(rating), 0)::float8 FROM reviews`).Scan(&avg); err != nil {
		zap.L().Error("can't get average rating", zap.Error(err))
		return 0, err
	}
	return avg, nil
}
