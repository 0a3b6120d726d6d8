package repo

import (
	"testing"

	"github.com/GlebRadaev/coderr/internal/pg"
	offerrepo "github.com/GlebRadaev/coderr/internal/repo/offer-repo"
	orderrepo "github.com/GlebRadaev/coderr/internal/repo/order-repo"
	reviewrepo "github.com/GlebRadaev/coderr/internal/repo/review-repo"
	statsrepo "github.com/GlebRadaev/coderr/internal/repo/stats-repo"
	userrepo "github.com/GlebRadaev/coderr/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	mockTxManager := pg.NewMockTXManager(ctrl)
	return New(mockDB, mockTxManager), mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &offerrepo.Repository{}, repo.OfferRepo)
	assert.IsType(t, &orderrepo.Repository{}, repo.OrderRepo)
	assert.IsType(t, &reviewrepo.Repository{}, repo.ReviewRepo)
	assert.IsType(t, &statsrepo.Repository{}, repo.StatsRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
