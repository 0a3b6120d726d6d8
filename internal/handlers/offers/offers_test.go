package offers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GlebRadaev/coderr/internal/domain"
	"github.com/GlebRadaev/coderr/internal/dto"
	"github.com/GlebRadaev/coderr/internal/service/offerservice"
	"github.com/GlebRadaev/coderr/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T, restrictGuests bool) (*OfferHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service, restrictGuests), service
}

var (
	kevin  = domain.Caller{UserID: 2, Role: domain.RoleBusiness}
	andrey = domain.Caller{UserID: 5, Role: domain.RoleCustomer}
	guest = domain.Caller{UserID: 9, Role: domain.RoleCustomer, IsGuest: true}
)

func newRequest(method, target, body, id string, caller domain.Caller) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rctx := chi.NewRouteContext()
	if id != "" {
		rctx.URLParams.Add("id", id)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	return req.WithContext(auth.WithCaller(ctx, caller))
}

func sampleOffer() *domain.Offer {
	return &domain.Offer{
		ID:              1,
		CreatorID:       2,
		Title:           "Grafikdesign-Paket",
		Description:     "Logos",
		MinPrice:        decimal.NewFromInt(100),
		MinDeliveryTime: 5,
		Creator:         domain.UserDetails{FirstName: "Kevin", LastName: "Miller", Username: "kevin_design"},
		Details: []domain.OfferDetail{
			{ID: 1, OfferType: domain.OfferTypeBasic, Title: "Basic", Price: decimal.NewFromInt(100), DeliveryTimeInDays: 5},
			{ID: 2, OfferType: domain.OfferTypeStandard, Title: "Standard", Price: decimal.NewFromInt(200), DeliveryTimeInDays: 4},
			{ID: 3, OfferType: domain.OfferTypePremium, Title: "Premium", Price: decimal.NewFromInt(500), DeliveryTimeInDays: 2},
		},
	}
}

func TestListOffers(t *testing.T) {
	t.Run("Filters and pagination links", func(t *testing.T) {
		handler, service := NewMock(t, true)
		minPrice := decimal.RequireFromString("50.5")
		creator := 2

		service.EXPECT().List(gomock.Any(), domain.OfferFilter{
			CreatorID: &creator,
			MinPrice:  &minPrice,
			Search:    "logo",
			Ordering:  "-min_price",
		}, 2, 1).Return(&offerservice.Page{
			Offers:   []domain.Offer{*sampleOffer()},
			Count:    3,
			Page:     2,
			PageSize: 1,
			HasNext:  true,
		}, nil)

		rr := httptest.NewRecorder()
		target := "/api/offers?creator_id=2&min_price=50.5&search=logo&ordering=-min_price&page=2&page_size=1"
		handler.ListOffers(rr, newRequest(http.MethodGet, target, "", "", domain.Caller{}))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp dto.OfferPageResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 3, resp.Count)
		require.NotNil(t, resp.Next)
		assert.Contains(t, *resp.Next, "page=3")
		require.NotNil(t, resp.Previous)
		assert.Contains(t, *resp.Previous, "page=1")
		require.Len(t, resp.Results, 1)
		assert.Equal(t, "100.00", resp.Results[0].MinPrice)
		assert.Equal(t, "/offerdetails/1/", resp.Results[0].Details[0].URL)
		require.NotNil(t, resp.Results[0].UserDetails)
		assert.Equal(t, "kevin_design", resp.Results[0].UserDetails.Username)
	})

	t.Run("Guest does not see creator", func(t *testing.T) {
		handler, service := NewMock(t, true)
		service.EXPECT().List(gomock.Any(), domain.OfferFilter{}, 1, 0).Return(&offerservice.Page{
			Offers: []domain.Offer{*sampleOffer()},
			Count:  1,
			Page:   1,
		}, nil)

		rr := httptest.NewRecorder()
		handler.ListOffers(rr, newRequest(http.MethodGet, "/api/offers", "", "", guest))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp dto.OfferPageResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Nil(t, resp.Next)
		assert.Nil(t, resp.Previous)
		assert.Nil(t, resp.Results[0].UserDetails)
	})

	t.Run("Guest sees creator when unrestricted", func(t *testing.T) {
		handler, service := NewMock(t, false)
		service.EXPECT().List(gomock.Any(), gomock.Any(), 1, 0).Return(&offerservice.Page{
			Offers: []domain.Offer{*sampleOffer()},
			Count:  1,
			Page:   1,
		}, nil)

		rr := httptest.NewRecorder()
		handler.ListOffers(rr, newRequest(http.MethodGet, "/api/offers", "", "", guest))

		var resp dto.OfferPageResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.NotNil(t, resp.Results[0].UserDetails)
	})

	t.Run("Bad filter value", func(t *testing.T) {
		handler, _ := NewMock(t, true)
		rr := httptest.NewRecorder()
		handler.ListOffers(rr, newRequest(http.MethodGet, "/api/offers?max_delivery_time=soon&min_price=x", "", "", domain.Caller{}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "max_delivery_time")
		assert.Contains(t, rr.Body.String(), "min_price")
	})

	t.Run("Page out of range", func(t *testing.T) {
		handler, service := NewMock(t, true)
		service.EXPECT().List(gomock.Any(), gomock.Any(), 9, 0).Return(nil, domain.ErrNotFound)

		rr := httptest.NewRecorder()
		handler.ListOffers(rr, newRequest(http.MethodGet, "/api/offers?page=9", "", "", domain.Caller{}))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestGetOffer(t *testing.T) {
	handler, service := NewMock(t, true)

	service.EXPECT().GetOffer(gomock.Any(), kevin, 1).Return(sampleOffer(), nil)
	rr := httptest.NewRecorder()
	handler.GetOffer(rr, newRequest(http.MethodGet, "/api/offers/1/", "", "1", kevin))
	assert.Equal(t, http.StatusOK, rr.Code)

	service.EXPECT().GetOffer(gomock.Any(), domain.Caller{}, 1).Return(nil, domain.ErrUnauthenticated)
	rr = httptest.NewRecorder()
	handler.GetOffer(rr, newRequest(http.MethodGet, "/api/offers/1/", "", "1", domain.Caller{}))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetOfferDetail(t *testing.T) {
	handler, service := NewMock(t, true)

	detail := sampleOffer().Details[2]
	detail.Features = []string{"Logo", "Flyer"}
	service.EXPECT().GetDetail(gomock.Any(), 3).Return(&detail, nil)

	rr := httptest.NewRecorder()
	handler.GetOfferDetail(rr, newRequest(http.MethodGet, "/api/offerdetails/3/", "", "3", domain.Caller{}))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp dto.OfferDetailResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "premium", resp.OfferType)
	assert.Equal(t, "500.00", resp.Price)
	assert.Equal(t, []string{"Logo", "Flyer"}, resp.Features)
}

const createBody = `{
	"title": "Grafikdesign-Paket",
	"description": "Logos",
	"details": [
		{"title": "Basic", "revisions": 2, "delivery_time_in_days": 5, "price": 100, "features": ["Logo"], "offer_type": "basic"},
		{"title": "Standard", "revisions": 5, "delivery_time_in_days": 7, "price": 200, "features": ["Logo"], "offer_type": "standard"},
		{"title": "Premium", "revisions": -1, "delivery_time_in_days": 10, "price": 500, "offer_type": "premium"}
	]
}`

func TestCreateOffer(t *testing.T) {
	handler, service := NewMock(t, true)

	tests := []struct {
		name         string
		caller       domain.Caller
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Created",
			caller: kevin,
			body:   createBody,
			prepareMock: func() {
				service.EXPECT().CanCreate(kevin).Return(nil)
				service.EXPECT().CreateOffer(gomock.Any(), kevin, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ domain.Caller, offer *domain.Offer) (*domain.Offer, error) {
						require.Len(t, offer.Details, 3)
						assert.Equal(t, domain.UnlimitedRevisions, offer.Details[2].Revisions)
						assert.NotNil(t, offer.Details[2].Features)
						assert.True(t, offer.Details[1].Price.Equal(decimal.NewFromInt(200)))
						return sampleOffer(), nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:   "Only two tiers",
			caller: kevin,
			body:   `{"title":"x","description":"y","details":[{"title":"a","delivery_time_in_days":1,"price":1,"offer_type":"basic"},{"title":"b","delivery_time_in_days":1,"price":1,"offer_type":"premium"}]}`,
			prepareMock: func() {
				service.EXPECT().CanCreate(kevin).Return(nil)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Customer with incomplete body",
			caller: andrey,
			body:   `{"title":"x"}`,
			prepareMock: func() {
				service.EXPECT().CanCreate(andrey).Return(domain.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "Anonymous",
			caller: domain.Caller{},
			body:   `{}`,
			prepareMock: func() {
				service.EXPECT().CanCreate(domain.Caller{}).Return(domain.ErrUnauthenticated)
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.CreateOffer(rr, newRequest(http.MethodPost, "/api/offers/", tt.body, "", tt.caller))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestReplaceOffer(t *testing.T) {
	handler, service := NewMock(t, true)

	service.EXPECT().CanEdit(gomock.Any(), kevin, 1).Return(nil)
	service.EXPECT().ReplaceOffer(gomock.Any(), kevin, 1, gomock.Any()).Return(sampleOffer(), nil)
	rr := httptest.NewRecorder()
	handler.ReplaceOffer(rr, newRequest(http.MethodPut, "/api/offers/1/", createBody, "1", kevin))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp dto.OfferFullResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp.Details, 3)

	rival := domain.Caller{UserID: 3, Role: domain.RoleBusiness}
	service.EXPECT().CanEdit(gomock.Any(), rival, 1).Return(domain.ErrForbidden)
	rr = httptest.NewRecorder()
	handler.ReplaceOffer(rr, newRequest(http.MethodPut, "/api/offers/1/", `{"title":"x"}`, "1", rival))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestUpdateOffer(t *testing.T) {
	handler, service := NewMock(t, true)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Patch one tier",
			body: `{"title":"Neu","details":[{"offer_type":"basic","price":120,"features":["Logo","Flyer"]}]}`,
			prepareMock: func() {
				service.EXPECT().CanEdit(gomock.Any(), kevin, 1).Return(nil)
				service.EXPECT().UpdateOffer(gomock.Any(), kevin, 1, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ domain.Caller, _ int, patch domain.OfferPatch) (*domain.Offer, error) {
						assert.Equal(t, "Neu", *patch.Title)
						require.Len(t, patch.Details, 1)
						d := patch.Details[0]
						assert.Equal(t, domain.OfferTypeBasic, d.OfferType)
						assert.True(t, d.Price.Equal(decimal.NewFromInt(120)))
						assert.Equal(t, []string{"Logo", "Flyer"}, *d.Features)
						assert.Nil(t, d.Title)
						return sampleOffer(), nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Tier without type",
			body: `{"details":[{"title":"x"}]}`,
			prepareMock: func() {
				service.EXPECT().CanEdit(gomock.Any(), kevin, 1).Return(nil)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Not the owner with invalid body",
			body: `{"details":[{"title":"x"}]}`,
			prepareMock: func() {
				service.EXPECT().CanEdit(gomock.Any(), kevin, 1).Return(domain.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Offer missing",
			body: `{"title":"Neu"}`,
			prepareMock: func() {
				service.EXPECT().CanEdit(gomock.Any(), kevin, 1).Return(domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.UpdateOffer(rr, newRequest(http.MethodPatch, "/api/offers/1/", tt.body, "1", kevin))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestDeleteOffer(t *testing.T) {
	handler, service := NewMock(t, true)

	service.EXPECT().DeleteOffer(gomock.Any(), kevin, 1).Return(nil)
	rr := httptest.NewRecorder()
	handler.DeleteOffer(rr, newRequest(http.MethodDelete, "/api/offers/1/", "", "1", kevin))
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	service.EXPECT().DeleteOffer(gomock.Any(), kevin, 4).Return(domain.ErrNotFound)
	rr = httptest.NewRecorder()
	handler.DeleteOffer(rr, newRequest(http.MethodDelete, "/api/offers/4/", "", "4", kevin))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestWriteChecksRoleBeforePayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := offerservice.NewMockRepo(ctrl)
	handler := New(offerservice.New(repo, 6, 100), false)

	rr := httptest.NewRecorder()
	handler.CreateOffer(rr, newRequest(http.MethodPost, "/api/offers/", `{"title":"x"}`, "", andrey))
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rival := domain.Caller{UserID: 3, Role: domain.RoleBusiness}
	repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Offer{ID: 1, CreatorID: 2}, nil)
	rr = httptest.NewRecorder()
	handler.ReplaceOffer(rr, newRequest(http.MethodPut, "/api/offers/1/", `{"title":"x"}`, "1", rival))
	assert.Equal(t, http.StatusForbidden, rr.Code)

	repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Offer{ID: 1, CreatorID: 2}, nil)
	rr = httptest.NewRecorder()
	handler.UpdateOffer(rr, newRequest(http.MethodPatch, "/api/offers/1/", `{"details":[{"price":-1}]}`, "1", rival))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}
