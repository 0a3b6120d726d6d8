package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransition(t *testing.T) {
	tests := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{OrderStatusInProgress, OrderStatusCompleted, true},
		{OrderStatusInProgress, OrderStatusCancelled, true},
		{OrderStatusInProgress, OrderStatusInProgress, false},
		{OrderStatusCompleted, OrderStatusInProgress, false},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusCompleted, false},
		{OrderStatusCancelled, OrderStatusInProgress, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestOfferType_Valid(t *testing.T) {
	assert.True(t, OfferTypeBasic.Valid())
	assert.True(t, OfferTypePremium.Valid())
	assert.False(t, OfferType("gold").Valid())
	assert.False(t, OfferType("").Valid())
}

func TestValidationError(t *testing.T) {
	verr := NewValidationError("username", "already taken")
	verr.Add("email", "invalid")

	wrapped := fmt.Errorf("register: %w", verr)
	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.False(t, errors.Is(wrapped, ErrConflict))

	var target *ValidationError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "validation failed: email: invalid; username: already taken", target.Error())
	assert.False(t, target.Empty())
	assert.True(t, (&ValidationError{}).Empty())
}

func TestCaller_Authenticated(t *testing.T) {
	assert.False(t, Caller{}.Authenticated())
	assert.True(t, Caller{UserID: 3, Role: RoleCustomer}.Authenticated())
}
