package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/audit"
	"github.com/BruksfildServices01/salon-pos/internal/domain"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/infra/repository"
	"github.com/BruksfildServices01/salon-pos/internal/models"
)

var (
	ErrServiceNameRequired = httperr.ErrBusiness("service_name_required")
	ErrInvalidPriceType    = httperr.ErrBusiness("invalid_price_type")
	ErrInvalidPrice        = httperr.ErrBusiness("invalid_price")
	ErrVariantNameRequired = httperr.ErrBusiness("variant_name_required")
	ErrCategoryNotFound    = httperr.ErrBusiness("category_not_found")
)

// ======================================================
// SERVICES
// ======================================================

// Services manages the predefined service catalog. Deleting a service does
// not touch bills; their items carry their own name and price.
type Services struct {
	services   domain.Repository[models.PredefinedService]
	categories domain.Repository[models.ServiceCategory]
	audit      *audit.Dispatcher
	now        func() time.Time
}

func NewServices(
	services domain.Repository[models.PredefinedService],
	categories domain.Repository[models.ServiceCategory],
	audit *audit.Dispatcher,
	now func() time.Time,
) *Services {
	return &Services{
		services:   services,
		categories: categories,
		audit:      audit,
		now:        now,
	}
}

func (uc *Services) List() []models.PredefinedService {
	return uc.services.List()
}

func (uc *Services) Get(id string) (models.PredefinedService, bool) {
	return uc.services.Get(id)
}

func (uc *Services) Create(ctx context.Context, svc models.PredefinedService) (models.PredefinedService, error) {
	if err := uc.normalize(&svc); err != nil {
		return models.PredefinedService{}, err
	}

	svc = uc.services.Add(ctx, svc)
	uc.audit.Dispatch(audit.Event{Action: "service_created", Entity: "service", EntityID: svc.ID})
	return svc, nil
}

func (uc *Services) Update(ctx context.Context, svc models.PredefinedService) (models.PredefinedService, error) {
	if _, ok := uc.services.Get(svc.ID); !ok {
		return models.PredefinedService{}, httperr.ErrNotFound
	}
	if err := uc.normalize(&svc); err != nil {
		return models.PredefinedService{}, err
	}
	if !uc.services.Update(ctx, svc) {
		return models.PredefinedService{}, httperr.ErrNotFound
	}

	uc.audit.Dispatch(audit.Event{Action: "service_updated", Entity: "service", EntityID: svc.ID})
	return svc, nil
}

func (uc *Services) Delete(ctx context.Context, id string) error {
	if !uc.services.Delete(ctx, id) {
		return httperr.ErrNotFound
	}
	uc.audit.Dispatch(audit.Event{Action: "service_deleted", Entity: "service", EntityID: id})
	return nil
}

func (uc *Services) normalize(svc *models.PredefinedService) error {
	svc.Name = strings.TrimSpace(svc.Name)
	if svc.Name == "" {
		return ErrServiceNameRequired
	}

	switch svc.PriceType {
	case "":
		svc.PriceType = models.PriceFixed
	case models.PriceFixed, models.PriceVariable:
	default:
		return ErrInvalidPriceType
	}
	if svc.Price < 0 {
		return ErrInvalidPrice
	}

	if svc.PriceType == models.PriceFixed {
		svc.Variants = nil
	}
	for i := range svc.Variants {
		v := &svc.Variants[i]
		v.Name = strings.TrimSpace(v.Name)
		if v.Name == "" {
			return ErrVariantNameRequired
		}
		if v.Price < 0 {
			return ErrInvalidPrice
		}
		if v.ID == "" {
			v.ID = repository.NewID(uc.now())
		}
	}

	if svc.CategoryID != "" {
		if _, ok := uc.categories.Get(svc.CategoryID); !ok {
			return ErrCategoryNotFound
		}
	}
	return nil
}
