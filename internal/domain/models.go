package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleBusiness Role = "business"
	RoleCustomer Role = "customer"
)

func (r Role) Valid() bool {
	return r == RoleBusiness || r == RoleCustomer
}

type User struct {
	ID           int       `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Role         Role      `db:"role"`
	IsStaff      bool      `db:"is_staff"`
	IsGuest      bool      `db:"is_guest"`
	CreatedAt    time.Time `db:"created_at"`
}

type Registration struct {
	Username         string
	Email            string
	Password         string
	RepeatedPassword string
	Type             Role
	FirstName        string
	LastName         string
}

// Profile is the public face of a User. Type always mirrors User.Role.
type Profile struct {
	UserID       int       `db:"user_id"`
	Username     string    `db:"username"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Email        string    `db:"email"`
	Type         Role      `db:"role"`
	IsGuest      bool      `db:"is_guest"`
	File         string    `db:"file"`
	Location     string    `db:"location"`
	Tel          string    `db:"tel"`
	Description  string    `db:"description"`
	WorkingHours string    `db:"working_hours"`
	CreatedAt    time.Time `db:"created_at"`
}

// ProfileUpdate holds the owner-editable fields; nil means unchanged.
type ProfileUpdate struct {
	FirstName    *string
	LastName     *string
	Email        *string
	File         *string
	Location     *string
	Tel          *string
	Description  *string
	WorkingHours *string
}

type OfferType string

const (
	OfferTypeBasic    OfferType = "basic"
	OfferTypeStandard OfferType = "standard"
	OfferTypePremium  OfferType = "premium"
)

var OfferTypes = []OfferType{OfferTypeBasic, OfferTypeStandard, OfferTypePremium}

func (t OfferType) Valid() bool {
	for _, ot := range OfferTypes {
		if ot == t {
			return true
		}
	}
	return false
}

// UnlimitedRevisions marks a tier without a revision cap.
const UnlimitedRevisions = -1

type OfferDetail struct {
	ID                 int             `db:"id"`
	OfferID            int             `db:"offer_id"`
	OfferType          OfferType       `db:"offer_type"`
	Title              string          `db:"title"`
	Revisions          int             `db:"revisions"`
	DeliveryTimeInDays int             `db:"delivery_time_in_days"`
	Price              decimal.Decimal `db:"price"`
	Features           []string
}

type UserDetails struct {
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Username  string `db:"username"`
}

type Offer struct {
	ID              int       `db:"id"`
	CreatorID       int       `db:"creator_id"`
	Title           string    `db:"title"`
	Description     string    `db:"description"`
	Image           *string   `db:"image"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
	Details         []OfferDetail
	MinPrice        decimal.Decimal `db:"min_price"`
	MinDeliveryTime int             `db:"min_delivery_time"`
	Creator         UserDetails
}

type OfferDetailPatch struct {
	OfferType          OfferType
	Title              *string
	Revisions          *int
	DeliveryTimeInDays *int
	Price              *decimal.Decimal
	Features           *[]string
}

type OfferPatch struct {
	Title       *string
	Description *string
	Image       *string
	Details     []OfferDetailPatch
}

type OfferFilter struct {
	CreatorID       *int
	MinPrice        *decimal.Decimal
	MaxDeliveryTime *int
	Search          string
	Ordering        string
	Limit           int
	Offset          int
}

type OrderStatus string

const (
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusInProgress: {OrderStatusCompleted, OrderStatusCancelled},
}

// CanTransition reports whether an order may move from one status to another.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, next := range orderTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Order keeps a copy of the tier it was placed for; later offer edits do not reach it.
type Order struct {
	ID                 int             `db:"id"`
	CustomerID         int             `db:"customer_id"`
	BusinessUserID     int             `db:"business_user_id"`
	OfferDetailID      *int            `db:"offer_detail_id"`
	Title              string          `db:"title"`
	Revisions          int             `db:"revisions"`
	DeliveryTimeInDays int             `db:"delivery_time_in_days"`
	Price              decimal.Decimal `db:"price"`
	Features           []string        `db:"features"`
	OfferType          OfferType       `db:"offer_type"`
	Status             OrderStatus     `db:"status"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
}

type Review struct {
	ID             int       `db:"id"`
	BusinessUserID int       `db:"business_user_id"`
	ReviewerID     int       `db:"reviewer_id"`
	Rating         int       `db:"rating"`
	Description    string    `db:"description"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type ReviewPatch struct {
	Rating      *int
	Description *string
}

type ReviewFilter struct {
	BusinessUserID *int
	ReviewerID     *int
	Ordering       string
}

type SiteStats struct {
	ReviewCount          int
	AverageRating        float64
	BusinessProfileCount int
	OfferCount           int
}

// Caller is the authenticated principal of a request. The zero value is anonymous.
type Caller struct {
	UserID  int
	Role    Role
	IsStaff bool
	IsGuest bool
}

func (c Caller) Authenticated() bool {
	return c.UserID != 0
}
