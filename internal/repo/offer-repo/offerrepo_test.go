package offerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/coderr/internal/domain"
	"github.com/GlebRadaev/coderr/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var offerCols = []string{"id", "creator_id", "title", "description", "image", "created_at", "updated_at",
	"min_price", "min_delivery_time", "first_name", "last_name", "username"}

var detailCols = []string{"id", "offer_id", "offer_type", "title", "revisions", "delivery_time_in_days", "price", "features"}

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

func TestBuildFilters(t *testing.T) {
	creator := 3
	minPrice := decimal.NewFromInt(50)
	maxDelivery := 7

	tests := []struct {
		name          string
		filter        domain.OfferFilter
		expectedWhere string
		expectedArgs  []any
	}{
		{name: "no filters", filter: domain.OfferFilter{}, expectedWhere: ""},
		{
			name:          "creator only",
			filter:        domain.OfferFilter{CreatorID: &creator},
			expectedWhere: " WHERE o.creator_id = $1",
			expectedArgs:  []any{3},
		},
		{
			name:   "all filters",
			filter: domain.OfferFilter{CreatorID: &creator, MinPrice: &minPrice, MaxDeliveryTime: &maxDelivery, Search: "logo"},
			expectedWhere: " WHERE o.creator_id = $1" +
				" AND EXISTS (SELECT 1 FROM offer_details d WHERE d.offer_id = o.id AND d.price >= $2)" +
				" AND EXISTS (SELECT 1 FROM offer_details d WHERE d.offer_id = o.id AND d.delivery_time_in_days <= $3)" +
				` AND (o.title ILIKE $4 ESCAPE '\' OR o.description ILIKE $4 ESCAPE '\')`,
			expectedArgs: []any{3, minPrice, 7, "%logo%"},
		},
		{
			name:          "search wildcards matched literally",
			filter:        domain.OfferFilter{Search: `50%_off\`},
			expectedWhere: ` WHERE (o.title ILIKE $1 ESCAPE '\' OR o.description ILIKE $1 ESCAPE '\')`,
			expectedArgs:  []any{`%50\%\_off\\%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildFilters(tt.filter)
			assert.Equal(t, tt.expectedWhere, where)
			assert.Equal(t, len(tt.expectedArgs), len(args))
			for i := range tt.expectedArgs {
				assert.Equal(t, tt.expectedArgs[i], args[i])
			}
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	creator := 2

	t.Run("page with detail refs", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM offers o WHERE o.creator_id = $1")).
			WithArgs(2).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(8))
		mock.ExpectQuery(regexp.QuoteMeta("WHERE o.creator_id = $1 ORDER BY agg.min_price DESC, o.id LIMIT $2 OFFSET $3")).
			WithArgs(2, 6, 6).
			WillReturnRows(pgxmock.NewRows(offerCols).
				AddRow(11, 2, "Logo", "Logo design", nil, now, now, decimal.NewFromInt(100), 3, "Kevin", "K", "kevin").
				AddRow(12, 2, "Web", "Web design", nil, now, now, decimal.NewFromInt(80), 5, "Kevin", "K", "kevin"))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, offer_id, offer_type FROM offer_details WHERE offer_id = ANY($1)")).
			WithArgs([]int{11, 12}).
			WillReturnRows(pgxmock.NewRows([]string{"id", "offer_id", "offer_type"}).
				AddRow(1, 11, domain.OfferTypeBasic).
				AddRow(2, 11, domain.OfferTypeStandard).
				AddRow(4, 12, domain.OfferTypeBasic))

		offers, total, err := repo.List(context.Background(), domain.OfferFilter{
			CreatorID: &creator, Ordering: "-min_price", Limit: 6, Offset: 6,
		})
		require.NoError(t, err)
		assert.Equal(t, 8, total)
		require.Len(t, offers, 2)
		assert.Len(t, offers[0].Details, 2)
		assert.Len(t, offers[1].Details, 1)
		assert.True(t, decimal.NewFromInt(100).Equal(offers[0].MinPrice))
		assert.Equal(t, "kevin", offers[0].Creator.Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty page skips detail lookup", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM offers o")).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY o.created_at DESC, o.id LIMIT $1 OFFSET $2")).
			WithArgs(6, 0).
			WillReturnRows(pgxmock.NewRows(offerCols))

		offers, total, err := repo.List(context.Background(), domain.OfferFilter{Limit: 6})
		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Empty(t, offers)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("count fails", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM offers o")).
			WillReturnError(errors.New("database error"))

		_, _, err := repo.List(context.Background(), domain.OfferFilter{Limit: 6})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	t.Run("offer with details", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE o.id = $1")).
			WithArgs(11).
			WillReturnRows(pgxmock.NewRows(offerCols).
				AddRow(11, 2, "Logo", "Logo design", nil, now, now, decimal.NewFromInt(100), 3, "Kevin", "K", "kevin"))
		mock.ExpectQuery(regexp.QuoteMeta("WHERE d.offer_id = $1 GROUP BY d.id ORDER BY d.id")).
			WithArgs(11).
			WillReturnRows(pgxmock.NewRows(detailCols).
				AddRow(1, 11, domain.OfferTypeBasic, "Basic", 1, 7, decimal.NewFromInt(100), []string{"Logo"}).
				AddRow(2, 11, domain.OfferTypeStandard, "Standard", 3, 5, decimal.NewFromInt(200), []string{"Logo", "Card"}).
				AddRow(3, 11, domain.OfferTypePremium, "Premium", -1, 3, decimal.NewFromInt(500), []string{}))

		offer, err := repo.FindByID(context.Background(), 11)
		require.NoError(t, err)
		require.Len(t, offer.Details, 3)
		assert.Equal(t, []string{"Logo", "Card"}, offer.Details[1].Features)
		assert.Equal(t, domain.UnlimitedRevisions, offer.Details[2].Revisions)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing offer", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE o.id = $1")).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		offer, err := repo.FindByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, offer)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindDetail(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE d.id = $1 GROUP BY d.id")).
		WithArgs(2).
		WillReturnRows(pgxmock.NewRows(detailCols).
			AddRow(2, 11, domain.OfferTypeStandard, "Standard", 3, 5, decimal.NewFromInt(200), []string{"Logo"}))
	detail, err := repo.FindDetail(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, domain.OfferTypeStandard, detail.OfferType)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE d.id = $1 GROUP BY d.id")).
		WithArgs(3).
		WillReturnError(pgx.ErrNoRows)
	detail, err = repo.FindDetail(context.Background(), 3)
	assert.NoError(t, err)
	assert.Nil(t, detail)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Now()

	passThroughTx(tx)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO offers")).
		WithArgs(2, "Logo", "Logo design", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(11, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO offer_details")).
		WithArgs(11, domain.OfferTypeBasic, "Basic", 1, 7, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO features")).
		WithArgs(1, []string{"Logo", "Card"}).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO offer_details")).
		WithArgs(11, domain.OfferTypePremium, "Premium", -1, 3, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(2))

	offer := &domain.Offer{
		CreatorID:   2,
		Title:       "Logo",
		Description: "Logo design",
		Details: []domain.OfferDetail{
			{OfferType: domain.OfferTypeBasic, Title: "Basic", Revisions: 1, DeliveryTimeInDays: 7,
				Price: decimal.NewFromInt(100), Features: []string{"Logo", "Card"}},
			{OfferType: domain.OfferTypePremium, Title: "Premium", Revisions: -1, DeliveryTimeInDays: 3,
				Price: decimal.NewFromInt(500)},
		},
	}
	err := repo.Create(context.Background(), offer)
	require.NoError(t, err)
	assert.Equal(t, 11, offer.ID)
	assert.Equal(t, 1, offer.Details[0].ID)
	assert.Equal(t, 11, offer.Details[1].OfferID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock, tx := NewMock(t)
	title := "New title"
	price := decimal.NewFromInt(150)
	features := []string{"Source files"}

	t.Run("offer and tier updated", func(t *testing.T) {
		passThroughTx(tx)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE offers")).
			WithArgs(11, &title, pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE offer_details")).
			WithArgs(11, domain.OfferTypeBasic, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), &price).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM features WHERE offer_detail_id = $1")).
			WithArgs(1).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO features")).
			WithArgs(1, features).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.Update(context.Background(), 11, domain.OfferPatch{
			Title:   &title,
			Details: []domain.OfferDetailPatch{{OfferType: domain.OfferTypeBasic, Price: &price, Features: &features}},
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("offer missing", func(t *testing.T) {
		passThroughTx(tx)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE offers")).
			WithArgs(99, &title, pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.Update(context.Background(), 99, domain.OfferPatch{Title: &title})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("tier missing", func(t *testing.T) {
		passThroughTx(tx)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE offers")).
			WithArgs(11, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE offer_details")).
			WithArgs(11, domain.OfferTypePremium, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(pgx.ErrNoRows)

		err := repo.Update(context.Background(), 11, domain.OfferPatch{
			Details: []domain.OfferDetailPatch{{OfferType: domain.OfferTypePremium, Price: &price}},
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM offers WHERE id = $1")).
		WithArgs(11).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(context.Background(), 11))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM offers WHERE id = $1")).
		WithArgs(12).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), 12), domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
