package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/coderr/internal/domain"
	"github.com/GlebRadaev/coderr/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const orderColumns = `id, customer_id, business_user_id, offer_detail_id, title, revisions,
	delivery_time_in_days, price, features, offer_type, status, created_at, updated_at`

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

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.CustomerID, &o.BusinessUserID, &o.OfferDetailID, &o.Title, &o.Revisions,
		&o.DeliveryTimeInDays, &o.Price, &o.Features, &o.OfferType, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if o.Features == nil {
		o.Features = []string{}
	}
	return &o, nil
}

// CreateFromDetail places an order for the given tier, copying its current
// terms into the order row. It returns nil when the tier does not exist.
func (r *Repository) CreateFromDetail(ctx context.Context, customerID, detailID int) (*domain.Order, error) {
	query := `
		INSERT INTO orders (customer_id, business_user_id, offer_detail_id, title, revisions,
		                    delivery_time_in_days, price, features, offer_type, status)
		SELECT $1, o.creator_id, d.id, d.title, d.revisions, d.delivery_time_in_days, d.price,
		       COALESCE(ARRAY(SELECT f.description FROM features f WHERE f.offer_detail_id = d.id ORDER BY f.position), '{}'),
		       d.offer_type, $3
		FROM offer_details d
		JOIN offers o ON o.id = d.offer_id
		WHERE d.id = $2
		RETURNING ` + orderColumns

	var order *domain.Order
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		order, err = scanOrder(r.db.QueryRow(ctx, query, customerID, detailID, domain.OrderStatusInProgress))
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't create order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

// FindByParticipant lists orders where the user is either side of the deal.
func (r *Repository) FindByParticipant(ctx context.Context, userID int) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE customer_id = $1 OR business_user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

// UpdateStatus moves the order from one status to another. It returns nil
// when the order is no longer in the from status.
func (r *Repository) UpdateStatus(ctx context.Context, id int, from, to domain.OrderStatus) (*domain.Order, error) {
	query := `
		UPDATE orders
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + orderColumns

	var order *domain.Order
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		order, err = scanOrder(r.db.QueryRow(ctx, query, id, from, to))
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to update order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete order", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repository) CountByBusiness(ctx context.Context, businessUserID int, status domain.OrderStatus) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE business_user_id = $1 AND status = $2`, businessUserID, status).
		Scan(&count)
	if err != nil {
		zap.L().Error("can't count orders", zap.Error(err))
		return 0, err
	}
	return count, nil
}
