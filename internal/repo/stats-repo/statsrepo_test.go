package statsrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/GlebRadaev/coderr/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestRepository_Counts(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		query    string
		args     []any
		call     func() (int, error)
		value    int
		queryErr error
	}{
		{
			name:  "reviews",
			query: "SELECT COUNT(*) FROM reviews",
			call:  func() (int, error) { return repo.CountReviews(ctx) },
			value: 5,
		},
		{
			name:  "offers",
			query: "SELECT COUNT(*) FROM offers",
			call:  func() (int, error) { return repo.CountOffers(ctx) },
			value: 12,
		},
		{
			name:  "business profiles",
			query: "FROM profiles p JOIN users u ON u.id = p.user_id WHERE u.role = $1",
			args:  []any{domain.RoleBusiness},
			call:  func() (int, error) { return repo.CountProfiles(ctx, domain.RoleBusiness) },
			value: 3,
		},
		{
			name:     "query fails",
			query:    "SELECT COUNT(*) FROM offers",
			call:     func() (int, error) { return repo.CountOffers(ctx) },
			queryErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp := mock.ExpectQuery(regexp.QuoteMeta(tt.query))
			if len(tt.args) > 0 {
				exp = exp.WithArgs(tt.args...)
			}
			if tt.queryErr != nil {
				exp.WillReturnError(tt.queryErr)
			} else {
				exp.WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(tt.value))
			}

			got, err := tt.call()
			if tt.queryErr != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.value, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_AverageRating(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(AVG(rating), 0)::float8 FROM reviews")).
		WillReturnRows(pgxmock.NewRows([]string{"avg"}).AddRow(4.25))

	avg, err := repo.AverageRating(context.Background())
	assert.NoError(t, err)
	assert.InDelta(t, 4.25, avg, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}
