package orderrepo

import (
	"context"
	"errors"
	"reflect"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/coderr/internal/domain"
	"github.com/GlebRadaev/coderr/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var orderCols = []string{"id", "customer_id", "business_user_id", "offer_detail_id", "title", "revisions",
	"delivery_time_in_days", "price", "features", "offer_type", "status", "created_at", "updated_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, mockTxManager), mockDB, mockTxManager
}

func passThroughTx(tx *pg.MockTXManager) {
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func orderRow(rows *pgxmock.Rows, id int, status domain.OrderStatus, now time.Time) *pgxmock.Rows {
	detailID := 5
	return rows.AddRow(id, 1, 2, &detailID, "Logo Basic", 2, 7, decimal.NewFromInt(100),
		[]string{"Logo", "Card"}, domain.OfferTypeBasic, status, now, now)
}

func TestRepository_CreateFromDetail(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectNil bool
	}{
		{
			name: "Order snapshot created",
			mockSetup: func() {
				passThroughTx(tx)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
					WithArgs(1, 5, domain.OrderStatusInProgress).
					WillReturnRows(orderRow(pgxmock.NewRows(orderCols), 10, domain.OrderStatusInProgress, now))
			},
		},
		{
			name: "Detail does not exist",
			mockSetup: func() {
				passThroughTx(tx)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
					WithArgs(1, 5, domain.OrderStatusInProgress).
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				passThroughTx(tx)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
					WithArgs(1, 5, domain.OrderStatusInProgress).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			order, err := repo.CreateFromDetail(context.Background(), 1, 5)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, order)
			} else {
				require.NotNil(t, order)
				assert.Equal(t, 10, order.ID)
				assert.Equal(t, 2, order.BusinessUserID)
				assert.Equal(t, []string{"Logo", "Card"}, order.Features)
				assert.Equal(t, domain.OrderStatusInProgress, order.Status)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE id = $1")).
		WithArgs(10).
		WillReturnRows(orderRow(pgxmock.NewRows(orderCols), 10, domain.OrderStatusCompleted, now))
	order, err := repo.FindByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, order.Status)
	assert.Equal(t, 5, *order.OfferDetailID)

	mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE id = $1")).
		WithArgs(11).
		WillReturnError(pgx.ErrNoRows)
	order, err = repo.FindByID(context.Background(), 11)
	assert.NoError(t, err)
	assert.Nil(t, order)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByParticipant(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(orderCols)
	orderRow(rows, 10, domain.OrderStatusInProgress, now)
	orderRow(rows, 9, domain.OrderStatusCancelled, now)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE customer_id = $1 OR business_user_id = $1")).
		WithArgs(2).
		WillReturnRows(rows)

	orders, err := repo.FindByParticipant(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, domain.OrderStatusCancelled, orders[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Now()

	t.Run("Transition applied", func(t *testing.T) {
		passThroughTx(tx)
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE orders SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2")).
			WithArgs(10, domain.OrderStatusInProgress, domain.OrderStatusCompleted).
			WillReturnRows(orderRow(pgxmock.NewRows(orderCols), 10, domain.OrderStatusCompleted, now))

		order, err := repo.UpdateStatus(context.Background(), 10, domain.OrderStatusInProgress, domain.OrderStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCompleted, order.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Status changed concurrently", func(t *testing.T) {
		passThroughTx(tx)
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE orders")).
			WithArgs(10, domain.OrderStatusInProgress, domain.OrderStatusCancelled).
			WillReturnError(pgx.ErrNoRows)

		order, err := repo.UpdateStatus(context.Background(), 10, domain.OrderStatusInProgress, domain.OrderStatusCancelled)
		assert.NoError(t, err)
		assert.Nil(t, order)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM orders WHERE id = $1")).
		WithArgs(10).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(context.Background(), 10))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM orders WHERE id = $1")).
		WithArgs(11).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), 11), domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountByBusiness(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM orders WHERE business_user_id = $1 AND status = $2")).
		WithArgs(2, domain.OrderStatusCompleted).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))
	count, err := repo.CountByBusiness(context.Background(), 2, domain.OrderStatusCompleted)
	assert.NoError(t, err)
	assert.Equal(t, 4, count)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM orders")).
		WithArgs(2, domain.OrderStatusInProgress).
		WillReturnError(errors.New("database error"))
	_, err = repo.CountByBusiness(context.Background(), 2, domain.OrderStatusInProgress)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// wireRow hands text[] values to Scan the way pgx receives them from the
// server: binary encoded, decoded through the type map.
type wireRow struct {
	t      *testing.T
	values []any
}

func (r wireRow) Scan(dest ...any) error {
	m := pgtype.NewMap()
	for i, v := range r.values {
		if arr, ok := v.([]string); ok {
			require.Equal(r.t, int16(pgtype.BinaryFormatCode), m.FormatCodeForOID(pgtype.TextArrayOID))
			buf, err := m.Encode(pgtype.TextArrayOID, pgtype.BinaryFormatCode, arr, nil)
			require.NoError(r.t, err)
			if err := m.Scan(pgtype.TextArrayOID, pgtype.BinaryFormatCode, buf, dest[i]); err != nil {
				return err
			}
			continue
		}
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

func TestScanOrder_BinaryFeatures(t *testing.T) {
	now := time.Now()
	detailID := 5

	tests := []struct {
		name     string
		features []string
		expected []string
	}{
		{name: "Features decoded", features: []string{"Logo", "Card"}, expected: []string{"Logo", "Card"}},
		{name: "Empty snapshot", features: []string{}, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := wireRow{t: t, values: []any{10, 1, 2, &detailID, "Logo Basic", 2, 7, decimal.NewFromInt(100),
				tt.features, domain.OfferTypeBasic, domain.OrderStatusInProgress, now, now}}

			order, err := scanOrder(row)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, order.Features)
			assert.Equal(t, 5, *order.OfferDetailID)
			assert.Equal(t, domain.OrderStatusInProgress, order.Status)
		})
	}
}
