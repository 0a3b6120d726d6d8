package permission

import (
	"testing"

	"github.com/GlebRadaev/coderr/internal/domain"
	"github.com/stretchr/testify/assert"
)

var (
	anonymous = domain.Caller{}
	customer  = domain.Caller{UserID: 1, Role: domain.RoleCustomer}
	business  = domain.Caller{UserID: 2, Role: domain.RoleBusiness}
	staff     = domain.Caller{UserID: 3, Role: domain.RoleCustomer, IsStaff: true}
)

func TestRules(t *testing.T) {
	tests := []struct {
		name    string
		rule    Rule
		caller  domain.Caller
		ownerID int
		want    error
	}{
		{"authenticated anonymous", Authenticated, anonymous, 0, domain.ErrUnauthenticated},
		{"authenticated customer", Authenticated, customer, 0, nil},
		{"business as business", Business, business, 0, nil},
		{"business as customer", Business, customer, 0, domain.ErrForbidden},
		{"business as anonymous", Business, anonymous, 0, domain.ErrUnauthenticated},
		{"customer as customer", Customer, customer, 0, nil},
		{"customer as business", Customer, business, 0, domain.ErrForbidden},
		{"staff as staff", Staff, staff, 0, nil},
		{"staff as customer", Staff, customer, 0, domain.ErrForbidden},
		{"owner matches", Owner, business, 2, nil},
		{"owner differs", Owner, business, 1, domain.ErrForbidden},
		{"owner anonymous", Owner, anonymous, 0, domain.ErrUnauthenticated},
		{"all business owner", All(Business, Owner), business, 2, nil},
		{"all business not owner", All(Business, Owner), business, 7, domain.ErrForbidden},
		{"any owner or staff via staff", Any(Owner, Staff), staff, 1, nil},
		{"any owner or staff via owner", Any(Owner, Staff), customer, 1, nil},
		{"any owner or staff denied", Any(Owner, Staff), business, 1, domain.ErrForbidden},
		{"any anonymous", Any(Owner, Staff), anonymous, 1, domain.ErrUnauthenticated},
		{"any empty", Any(), anonymous, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.rule, tt.caller, tt.ownerID)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}
