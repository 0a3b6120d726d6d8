package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GlebRadaev/coderr/internal/domain"
	"github.com/GlebRadaev/coderr/internal/dto"
	"github.com/GlebRadaev/coderr/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*OrderHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

var (
	customer = domain.Caller{UserID: 5, Role: domain.RoleCustomer}
	business = domain.Caller{UserID: 2, Role: domain.RoleBusiness}
)

func newRequest(method, target, body string, params map[string]string, caller domain.Caller) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	return req.WithContext(auth.WithCaller(ctx, caller))
}

func sampleOrder(status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:                 1,
		CustomerID:         5,
		BusinessUserID:     2,
		Title:              "Logo Design",
		Revisions:          3,
		DeliveryTimeInDays: 5,
		Price:              decimal.NewFromInt(150),
		Features:           []string{"Logo Design", "Visitenkarten"},
		OfferType:          domain.OfferTypeBasic,
		Status:             status,
	}
}

func TestCreateOrder(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		caller       domain.Caller
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Order placed",
			caller: customer,
			body:   `{"offer_detail_id":7}`,
			prepareMock: func() {
				service.EXPECT().CanCreate(customer).Return(nil)
				service.EXPECT().CreateOrder(gomock.Any(), customer, 7).Return(sampleOrder(domain.OrderStatusInProgress), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:   "Missing detail id",
			caller: customer,
			body:   `{}`,
			prepareMock: func() {
				service.EXPECT().CanCreate(customer).Return(nil)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Unknown detail",
			caller: customer,
			body:   `{"offer_detail_id":70}`,
			prepareMock: func() {
				service.EXPECT().CanCreate(customer).Return(nil)
				service.EXPECT().CreateOrder(gomock.Any(), customer, 70).Return(nil, domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "Business cannot order",
			caller: business,
			body:   `{}`,
			prepareMock: func() {
				service.EXPECT().CanCreate(business).Return(domain.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.CreateOrder(rr, newRequest(http.MethodPost, "/api/orders/", tt.body, nil, tt.caller))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusCreated {
				var resp dto.OrderResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "150.00", resp.Price)
				assert.Equal(t, "in_progress", resp.Status)
				assert.Equal(t, 2, resp.BusinessUser)
				assert.Equal(t, 5, resp.CustomerUser)
			}
		})
	}
}

func TestListOrders(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListOrders(gomock.Any(), customer).Return([]domain.Order{*sampleOrder(domain.OrderStatusCompleted)}, nil)
	rr := httptest.NewRecorder()
	handler.ListOrders(rr, newRequest(http.MethodGet, "/api/orders/", "", nil, customer))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.OrderResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "completed", resp[0].Status)

	service.EXPECT().ListOrders(gomock.Any(), business).Return(nil, nil)
	rr = httptest.NewRecorder()
	handler.ListOrders(rr, newRequest(http.MethodGet, "/api/orders/", "", nil, business))
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestUpdateOrder(t *testing.T) {
	handler, service := NewMock(t)
	params := map[string]string{"id": "1"}

	tests := []struct {
		name         string
		caller       domain.Caller
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Completed",
			caller: business,
			body:   `{"status":"completed"}`,
			prepareMock: func() {
				service.EXPECT().CanChangeStatus(gomock.Any(), business, 1).Return(nil)
				service.EXPECT().UpdateStatus(gomock.Any(), business, 1, domain.OrderStatusCompleted).
					Return(sampleOrder(domain.OrderStatusCompleted), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Illegal transition",
			caller: business,
			body:   `{"status":"in_progress"}`,
			prepareMock: func() {
				service.EXPECT().CanChangeStatus(gomock.Any(), business, 1).Return(nil)
				service.EXPECT().UpdateStatus(gomock.Any(), business, 1, domain.OrderStatusInProgress).
					Return(nil, domain.ErrInvalidTransition)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Missing status",
			caller: business,
			body:   `{}`,
			prepareMock: func() {
				service.EXPECT().CanChangeStatus(gomock.Any(), business, 1).Return(nil)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Customer with missing status",
			caller: customer,
			body:   `{}`,
			prepareMock: func() {
				service.EXPECT().CanChangeStatus(gomock.Any(), customer, 1).Return(domain.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "Order missing",
			caller: business,
			body:   `{"status":"cancelled"}`,
			prepareMock: func() {
				service.EXPECT().CanChangeStatus(gomock.Any(), business, 1).Return(domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.UpdateOrder(rr, newRequest(http.MethodPatch, "/api/orders/1/", tt.body, params, tt.caller))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestDeleteOrder(t *testing.T) {
	handler, service := NewMock(t)
	admin := domain.Caller{UserID: 1, Role: domain.RoleCustomer, IsStaff: true}

	service.EXPECT().DeleteOrder(gomock.Any(), admin, 1).Return(nil)
	rr := httptest.NewRecorder()
	handler.DeleteOrder(rr, newRequest(http.MethodDelete, "/api/orders/1/", "", map[string]string{"id": "1"}, admin))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	service.EXPECT().DeleteOrder(gomock.Any(), business, 1).Return(domain.ErrForbidden)
	rr = httptest.NewRecorder()
	handler.DeleteOrder(rr, newRequest(http.MethodDelete, "/api/orders/1/", "", map[string]string{"id": "1"}, business))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestOrderCounts(t *testing.T) {
	handler, service := NewMock(t)
	params := map[string]string{"business_user_id": "2"}

	service.EXPECT().CountOrders(gomock.Any(), customer, 2, domain.OrderStatusInProgress).Return(3, nil)
	rr := httptest.NewRecorder()
	handler.OrderCount(rr, newRequest(http.MethodGet, "/api/order-count/2/", "", params, customer))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"order_count":3}`, rr.Body.String())

	service.EXPECT().CountOrders(gomock.Any(), customer, 2, domain.OrderStatusCompleted).Return(1, nil)
	rr = httptest.NewRecorder()
	handler.CompletedOrderCount(rr, newRequest(http.MethodGet, "/api/completed-order-count/2/", "", params, customer))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"completed_order_count":1}`, rr.Body.String())

	service.EXPECT().CountOrders(gomock.Any(), customer, 2, domain.OrderStatusInProgress).Return(0, domain.ErrNotFound)
	rr = httptest.NewRecorder()
	handler.OrderCount(rr, newRequest(http.MethodGet, "/api/order-count/2/", "", params, customer))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	handler.OrderCount(rr, newRequest(http.MethodGet, "/api/order-count/x/", "", map[string]string{"business_user_id": "x"}, customer))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
