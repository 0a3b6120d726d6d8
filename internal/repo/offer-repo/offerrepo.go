package offerrepo

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

const offerSelect = `
	SELECT o.id, o.creator_id, o.title, o.description, o.image, o.created_at, o.updated_at,
	       COALESCE(agg.min_price, 0), COALESCE(agg.min_delivery_time, 0),
	       u.first_name, u.last_name, u.username
	FROM offers o
	JOIN users u ON u.id = o.creator_id
	LEFT JOIN LATERAL (
	    SELECT MIN(d.price) AS min_price, MIN(d.delivery_time_in_days) AS min_delivery_time
	    FROM offer_details d
	    WHERE d.offer_id = o.id
	) agg ON TRUE
`

const detailSelect = `
	SELECT d.id, d.offer_id, d.offer_type, d.title, d.revisions, d.delivery_time_in_days, d.price,
	       COALESCE(ARRAY_AGG(f.description ORDER BY f.position) FILTER (WHERE f.id IS NOT NULL), '{}')
	FROM offer_details d
	LEFT JOIN features f ON f.offer_detail_id = d.id
`

var orderings = map[string]string{
	"updated_at":  "o.updated_at ASC",
	"-updated_at": "o.updated_at DESC",
	"min_price":   "agg.min_price ASC",
	"-min_price":  "agg.min_price DESC",
}

const defaultOrdering = "o.created_at DESC"

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanOffer(row pgx.Row) (*domain.Offer, error) {
	var o domain.Offer
	err := row.Scan(&o.ID, &o.CreatorID, &o.Title, &o.Description, &o.Image, &o.CreatedAt, &o.UpdatedAt,
		&o.MinPrice, &o.MinDeliveryTime, &o.Creator.FirstName, &o.Creator.LastName, &o.Creator.Username)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func scanDetail(row pgx.Row) (*domain.OfferDetail, error) {
	var d domain.OfferDetail
	err := row.Scan(&d.ID, &d.OfferID, &d.OfferType, &d.Title, &d.Revisions, &d.DeliveryTimeInDays, &d.Price, &d.Features)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// likeEscaper makes search text match literally inside an ILIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func buildFilters(f domain.OfferFilter) (string, []any) {
	var filters []string
	var args []any
	argIndex := 1

	if f.CreatorID != nil {
		filters = append(filters, fmt.Sprintf("o.creator_id = $%d", argIndex))
		args = append(args, *f.CreatorID)
		argIndex++
	}
	if f.MinPrice != nil {
		filters = append(filters, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM offer_details d WHERE d.offer_id = o.id AND d.price >= $%d)", argIndex))
		args = append(args, *f.MinPrice)
		argIndex++
	}
	if f.MaxDeliveryTime != nil {
		filters = append(filters, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM offer_details d WHERE d.offer_id = o.id AND d.delivery_time_in_days <= $%d)", argIndex))
		args = append(args, *f.MaxDeliveryTime)
		argIndex++
	}
	if f.Search != "" {
		filters = append(filters, fmt.Sprintf(
			`(o.title ILIKE $%d ESCAPE '\' OR o.description ILIKE $%d ESCAPE '\')`, argIndex, argIndex))
		args = append(args, "%"+likeEscaper.Replace(f.Search)+"%")
	}

	if len(filters) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(filters, " AND "), args
}

// List returns one page of offers and the total number of matches.
// Details of listed offers carry only their id and tier.
func (r *Repository) List(ctx context.Context, f domain.OfferFilter) ([]domain.Offer, int, error) {
	where, args := buildFilters(f)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM offers o`+where, args...).Scan(&total); err != nil {
		zap.L().Error("can't count offers", zap.Error(err))
		return nil, 0, err
	}

	order, ok := orderings[f.Ordering]
	if !ok {
		order = defaultOrdering
	}
	query := offerSelect + where +
		fmt.Sprintf(" ORDER BY %s, o.id LIMIT $%d OFFSET $%d", order, len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list offers", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	offers := make([]domain.Offer, 0)
	ids := make([]int, 0)
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			zap.L().Error("can't scan offer row", zap.Error(err))
			return nil, 0, err
		}
		offers = append(offers, *o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if len(ids) == 0 {
		return offers, total, nil
	}

	refs, err := r.detailRefs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range offers {
		offers[i].Details = refs[offers[i].ID]
	}
	return offers, total, nil
}

func (r *Repository) detailRefs(ctx context.Context, offerIDs []int) (map[int][]domain.OfferDetail, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, offer_id, offer_type FROM offer_details WHERE offer_id = ANY($1) ORDER BY offer_id, id`, offerIDs)
	if err != nil {
		zap.L().Error("can't get offer detail refs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	refs := make(map[int][]domain.OfferDetail, len(offerIDs))
	for rows.Next() {
		var d domain.OfferDetail
		if err := rows.Scan(&d.ID, &d.OfferID, &d.OfferType); err != nil {
			zap.L().Error("can't scan offer detail ref", zap.Error(err))
			return nil, err
		}
		refs[d.OfferID] = append(refs[d.OfferID], d)
	}
	return refs, rows.Err()
}

// FindByID returns the offer with full tier details, or nil when absent.
func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Offer, error) {
	offer, err := scanOffer(r.db.QueryRow(ctx, offerSelect+` WHERE o.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find offer", zap.Error(err))
		return nil, err
	}

	rows, err := r.db.Query(ctx, detailSelect+` WHERE d.offer_id = $1 GROUP BY d.id ORDER BY d.id`, id)
	if err != nil {
		zap.L().Error("can't get offer details", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			zap.L().Error("can't scan offer detail", zap.Error(err))
			return nil, err
		}
		offer.Details = append(offer.Details, *d)
	}
	return offer, rows.Err()
}

func (r *Repository) FindDetail(ctx context.Context, id int) (*domain.OfferDetail, error) {
	detail, err := scanDetail(r.db.QueryRow(ctx, detailSelect+` WHERE d.id = $1 GROUP BY d.id`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find offer detail", zap.Error(err))
		return nil, err
	}
	return detail, nil
}

// Create inserts the offer with its details and features in one transaction
// and fills in the generated ids and timestamps.
func (r *Repository) Create(ctx context.Context, offer *domain.Offer) error {
	offerQuery := `
		INSERT INTO offers (creator_id, title, description, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	detailQuery := `
		INSERT INTO offer_details (offer_id, offer_type, title, revisions, delivery_time_in_days, price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, offerQuery, offer.CreatorID, offer.Title, offer.Description, offer.Image).
			Scan(&offer.ID, &offer.CreatedAt, &offer.UpdatedAt)
		if err != nil {
			return err
		}
		for i := range offer.Details {
			d := &offer.Details[i]
			d.OfferID = offer.ID
			err := r.db.QueryRow(ctx, detailQuery, offer.ID, d.OfferType, d.Title, d.Revisions,
				d.DeliveryTimeInDays, d.Price).Scan(&d.ID)
			if err != nil {
				return err
			}
			if err := r.insertFeatures(ctx, d.ID, d.Features); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return fmt.Errorf("offer tiers must be distinct: %w", domain.ErrConflict)
		}
		zap.L().Error("can't save offer", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) insertFeatures(ctx context.Context, detailID int, features []string) error {
	if len(features) == 0 {
		return nil
	}
	query := `
		INSERT INTO features (offer_detail_id, position, description)
		SELECT $1, t.ord, t.description
		FROM unnest($2::text[]) WITH ORDINALITY AS t(description, ord)
	`
	_, err := r.db.Exec(ctx, query, detailID, features)
	return err
}

// Update applies a partial update; details are matched by tier.
func (r *Repository) Update(ctx context.Context, id int, patch domain.OfferPatch) error {
	offerQuery := `
		UPDATE offers
		SET title = COALESCE($2, title),
		    description = COALESCE($3, description),
		    image = COALESCE($4, image),
		    updated_at = NOW()
		WHERE id = $1
	`
	detailQuery := `
		UPDATE offer_details
		SET title = COALESCE($3, title),
		    revisions = COALESCE($4, revisions),
		    delivery_time_in_days = COALESCE($5, delivery_time_in_days),
		    price = COALESCE($6, price)
		WHERE offer_id = $1 AND offer_type = $2
		RETURNING id
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, offerQuery, id, patch.Title, patch.Description, patch.Image)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("offer %d: %w", id, domain.ErrNotFound)
		}
		for _, d := range patch.Details {
			var detailID int
			err := r.db.QueryRow(ctx, detailQuery, id, d.OfferType, d.Title, d.Revisions,
				d.DeliveryTimeInDays, d.Price).Scan(&detailID)
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("offer %d tier %s: %w", id, d.OfferType, domain.ErrNotFound)
			}
			if err != nil {
				return err
			}
			if d.Features == nil {
				continue
			}
			if _, err := r.db.Exec(ctx, `DELETE FROM features WHERE offer_detail_id = $1`, detailID); err != nil {
				return err
			}
			if err := r.insertFeatures(ctx, detailID, *d.Features); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		zap.L().Error("can't update offer", zap.Error(err))
	}
	return err
}

// Delete removes the offer; details and features go with it.
func (r *Repository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete offer", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("offer %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
