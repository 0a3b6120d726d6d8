package reviewrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/GlebRadaev/coderr/internal/domain"
	"github.com/GlebRadaev/coderr/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const reviewColumns = `id, business_user_id, reviewer_id, rating, description, created_at, updated_at`

var orderings = map[string]string{
	"updated_at":  "updated_at ASC",
	"-updated_at": "updated_at DESC",
	"rating":      "rating ASC",
	"-rating":     "rating DESC",
}

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanReview(row pgx.Row) (*domain.Review, error) {
	var rv domain.Review
	err := row.Scan(&rv.ID, &rv.BusinessUserID, &rv.ReviewerID, &rv.Rating, &rv.Description, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

// Create relies on the (reviewer_id, business_user_id) constraint, so of two
// concurrent reviews for the same pair exactly one succeeds.
func (r *Repository) Create(ctx context.Context, review *domain.Review) error {
	query := `
		INSERT INTO reviews (business_user_id, reviewer_id, rating, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, review.BusinessUserID, review.ReviewerID, review.Rating, review.Description).
		Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return fmt.Errorf("you have already reviewed this business: %w", domain.ErrConflict)
		}
		zap.L().Error("can't save review", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Review, error) {
	review, err := scanReview(r.db.QueryRow(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find review", zap.Error(err))
		return nil, err
	}
	return review, nil
}

func (r *Repository) List(ctx context.Context, f domain.ReviewFilter) ([]domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews`
	var filters []string
	var args []any
	argIndex := 1

	if f.BusinessUserID != nil {
		filters = append(filters, fmt.Sprintf("business_user_id = $%d", argIndex))
		args = append(args, *f.BusinessUserID)
		argIndex++
	}
	if f.ReviewerID != nil {
		filters = append(filters, fmt.Sprintf("reviewer_id = $%d", argIndex))
		args = append(args, *f.ReviewerID)
	}
	if len(filters) > 0 {
		query += " WHERE " + strings.Join(filters, " AND ")
	}

	order, ok := orderings[f.Ordering]
	if !ok {
		order = orderings["-updated_at"]
	}
	query += " ORDER BY " + order + ", id DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list reviews", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			zap.L().Error("can't scan review row", zap.Error(err))
			return nil, err
		}
		reviews = append(reviews, *review)
	}
	return reviews, rows.Err()
}

func (r *Repository) Update(ctx context.Context, id int, patch domain.ReviewPatch) (*domain.Review, error) {
	query := `
		UPDATE reviews
		SET rating = COALESCE($2, rating),
		    description = COALESCE($3, description),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + reviewColumns

	review, err := scanReview(r.db.QueryRow(ctx, query, id, patch.Rating, patch.Description))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("review %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		zap.L().Error("failed to update review", zap.Error(err))
		return nil, err
	}
	return review, nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete review", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("review %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
