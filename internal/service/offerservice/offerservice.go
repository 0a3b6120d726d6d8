package offerservice

import (
	"context"
	"fmt"
	"strconv"

	"github.com/GlebRadaev/coderr/internal/domain"
	"github.com/GlebRadaev/coderr/internal/permission"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repo interface {
	List(ctx context.Context, f domain.OfferFilter) ([]domain.Offer, int, error)
	FindByID(ctx context.Context, id int) (*domain.Offer, error)
	FindDetail(ctx context.Context, id int) (*domain.OfferDetail, error)
	Create(ctx context.Context, offer *domain.Offer) error
	Update(ctx context.Context, id int, patch domain.OfferPatch) error
	Delete(ctx context.Context, id int) error
}

var orderings = map[string]bool{
	"":            true,
	"updated_at":  true,
	"-updated_at": true,
	"min_price":   true,
	"-min_price":  true,
}

type Service struct {
	repo        Repo
	pageSize    int
	maxPageSize int
}

func New(repo Repo, pageSize, maxPageSize int) *Service {
	return &Service{
		repo:        repo,
		pageSize:    pageSize,
		maxPageSize: maxPageSize,
	}
}

// Page is one page of the offer listing.
type Page struct {
	Offers   []domain.Offer
	Count    int
	Page     int
	PageSize int
	HasNext  bool
}

// List pages through offers. A pageSize of zero selects the configured default.
func (s *Service) List(ctx context.Context, filter domain.OfferFilter, page, pageSize int) (*Page, error) {
	verr := &domain.ValidationError{}
	if !orderings[filter.Ordering] {
		verr.Add("ordering", "Must be one of: updated_at -updated_at min_price -min_price.")
	}
	if page < 1 {
		verr.Add("page", "A valid integer >= 1 is required.")
	}
	if pageSize == 0 {
		pageSize = s.pageSize
	}
	if pageSize < 1 || pageSize > s.maxPageSize {
		verr.Add("page_size", "Must be between 1 and "+strconv.Itoa(s.maxPageSize)+".")
	}
	if filter.MinPrice != nil && filter.MinPrice.IsNegative() {
		verr.Add("min_price", "Ensure this value is greater than or equal to 0.")
	}
	if filter.MaxDeliveryTime != nil && *filter.MaxDeliveryTime < 1 {
		verr.Add("max_delivery_time", "Ensure this value is greater than or equal to 1.")
	}
	if !verr.Empty() {
		return nil, verr
	}

	filter.Limit = pageSize
	filter.Offset = (page - 1) * pageSize
	offers, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if page > 1 && len(offers) == 0 {
		return nil, fmt.Errorf("page %d: %w", page, domain.ErrNotFound)
	}
	return &Page{
		Offers:   offers,
		Count:    total,
		Page:     page,
		PageSize: pageSize,
		HasNext:  filter.Offset+len(offers) < total,
	}, nil
}

func (s *Service) GetOffer(ctx context.Context, caller domain.Caller, id int) (*domain.Offer, error) {
	if err := permission.Check(permission.Authenticated, caller, 0); err != nil {
		return nil, err
	}
	return s.find(ctx, id)
}

func (s *Service) find(ctx context.Context, id int) (*domain.Offer, error) {
	offer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, fmt.Errorf("offer %d: %w", id, domain.ErrNotFound)
	}
	return offer, nil
}

// GetDetail is public, like the offer list.
func (s *Service) GetDetail(ctx context.Context, id int) (*domain.OfferDetail, error) {
	detail, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, fmt.Errorf("offer detail %d: %w", id, domain.ErrNotFound)
	}
	return detail, nil
}

// CanCreate reports whether caller may publish offers. Handlers call it before
// looking at the payload.
func (s *Service) CanCreate(caller domain.Caller) error {
	return permission.Check(permission.Business, caller, 0)
}

// CanEdit reports whether caller may change or replace offer id.
func (s *Service) CanEdit(ctx context.Context, caller domain.Caller, id int) error {
	_, err := s.editable(ctx, caller, id)
	return err
}

func (s *Service) editable(ctx context.Context, caller domain.Caller, id int) (*domain.Offer, error) {
	offer, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := permission.Check(permission.All(permission.Business, permission.Owner), caller, offer.CreatorID); err != nil {
		return nil, err
	}
	return offer, nil
}

func (s *Service) CreateOffer(ctx context.Context, caller domain.Caller, offer *domain.Offer) (*domain.Offer, error) {
	if err := s.CanCreate(caller); err != nil {
		return nil, err
	}
	if err := checkFullDetails(offer.Details); err != nil {
		return nil, err
	}

	offer.CreatorID = caller.UserID
	if err := s.repo.Create(ctx, offer); err != nil {
		return nil, err
	}
	zap.L().Info("offer created", zap.Int("offer", offer.ID), zap.Int("creator", offer.CreatorID))
	return s.find(ctx, offer.ID)
}

// UpdateOffer applies a partial update. Only tiers named in the patch are touched.
func (s *Service) UpdateOffer(ctx context.Context, caller domain.Caller, id int, patch domain.OfferPatch) (*domain.Offer, error) {
	if _, err := s.editable(ctx, caller, id); err != nil {
		return nil, err
	}
	return s.applyPatch(ctx, id, patch)
}

func (s *Service) applyPatch(ctx context.Context, id int, patch domain.OfferPatch) (*domain.Offer, error) {
	verr := &domain.ValidationError{}
	seen := make(map[domain.OfferType]bool, len(patch.Details))
	for i, d := range patch.Details {
		field := "details[" + strconv.Itoa(i) + "]"
		if !d.OfferType.Valid() {
			verr.Add(field+".offer_type", "Must be one of: basic standard premium.")
			continue
		}
		if seen[d.OfferType] {
			verr.Add(field+".offer_type", "Each tier may appear only once.")
		}
		seen[d.OfferType] = true
		checkDetailValues(verr, field, d.Revisions, d.DeliveryTimeInDays, d.Price, d.Features)
	}
	if !verr.Empty() {
		return nil, verr
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.find(ctx, id)
}

// ReplaceOffer overwrites the offer and all three tiers.
func (s *Service) ReplaceOffer(ctx context.Context, caller domain.Caller, id int, offer *domain.Offer) (*domain.Offer, error) {
	if _, err := s.editable(ctx, caller, id); err != nil {
		return nil, err
	}
	if err := checkFullDetails(offer.Details); err != nil {
		return nil, err
	}
	patch := domain.OfferPatch{
		Title:       &offer.Title,
		Description: &offer.Description,
		Image:       offer.Image,
	}
	for _, d := range offer.Details {
		d := d
		patch.Details = append(patch.Details, domain.OfferDetailPatch{
			OfferType:          d.OfferType,
			Title:              &d.Title,
			Revisions:          &d.Revisions,
			DeliveryTimeInDays: &d.DeliveryTimeInDays,
			Price:              &d.Price,
			Features:           &d.Features,
		})
	}
	return s.applyPatch(ctx, id, patch)
}

func (s *Service) DeleteOffer(ctx context.Context, caller domain.Caller, id int) error {
	offer, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := permission.Check(permission.Owner, caller, offer.CreatorID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// checkFullDetails requires exactly one detail per tier.
func checkFullDetails(details []domain.OfferDetail) error {
	verr := &domain.ValidationError{}
	if len(details) != len(domain.OfferTypes) {
		verr.Add("details", "An offer must have exactly 3 details: basic, standard and premium.")
		return verr
	}
	seen := make(map[domain.OfferType]bool, len(details))
	for i := range details {
		d := &details[i]
		field := "details[" + strconv.Itoa(i) + "]"
		if !d.OfferType.Valid() {
			verr.Add(field+".offer_type", "Must be one of: basic standard premium.")
			continue
		}
		if seen[d.OfferType] {
			verr.Add("details", "An offer must have exactly 3 details: basic, standard and premium.")
		}
		seen[d.OfferType] = true
		if d.Title == "" {
			verr.Add(field+".title", "This field may not be blank.")
		}
		if d.Features == nil {
			d.Features = []string{}
		}
		checkDetailValues(verr, field, &d.Revisions, &d.DeliveryTimeInDays, &d.Price, &d.Features)
	}
	if verr.Empty() {
		return nil
	}
	return verr
}

func checkDetailValues(verr *domain.ValidationError, field string, revisions, delivery *int, price *decimal.Decimal, features *[]string) {
	if revisions != nil && *revisions < domain.UnlimitedRevisions {
		verr.Add(field+".revisions", "Ensure this value is greater than or equal to -1.")
	}
	if delivery != nil && *delivery < 1 {
		verr.Add(field+".delivery_time_in_days", "Ensure this value is greater than or equal to 1.")
	}
	if price != nil && price.IsNegative() {
		verr.Add(field+".price", "Ensure this value is greater than or equal to 0.")
	}
	if features != nil {
		for _, f := range *features {
			if f == "" {
				verr.Add(field+".features", "Features may not be blank.")
				break
			}
		}
	}
}
