package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/infra/repository"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/store"
)

func newCatalog(t *testing.T) (*Services, *Categories) {
	t.Helper()
	ctx := context.Background()
	s := store.NewMemoryStore()

	services := repository.NewCollection[models.PredefinedService](ctx, s, store.KeyServices, repository.Options{})
	categories := repository.NewCollection[models.ServiceCategory](ctx, s, store.KeyCategories, repository.Options{})

	return NewServices(services, categories, nil, time.Now), NewCategories(categories, services, nil)
}

func TestCreateServiceValidation(t *testing.T) {
	ctx := context.Background()
	svcs, _ := newCatalog(t)

	tests := []struct {
		name string
		in   models.PredefinedService
		want error
	}{
		{"blank name", models.PredefinedService{Name: " "}, ErrServiceNameRequired},
		{"bad price type", models.PredefinedService{Name: "Gel", PriceType: "hourly"}, ErrInvalidPriceType},
		{"negative price", models.PredefinedService{Name: "Gel", Price: -1}, ErrInvalidPrice},
		{"unknown category", models.PredefinedService{Name: "Gel", CategoryID: "nope"}, ErrCategoryNotFound},
		{"unnamed variant", models.PredefinedService{Name: "Gel", PriceType: models.PriceVariable, Variants: []models.ServiceVariant{{Price: 1}}}, ErrVariantNameRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svcs.Create(ctx, tt.in); !errors.Is(err, tt.want) {
				t.Errorf("Create() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCreateServiceDefaults(t *testing.T) {
	ctx := context.Background()
	svcs, _ := newCatalog(t)

	svc, err := svcs.Create(ctx, models.PredefinedService{
		Name:      " Gel ",
		PriceType: models.PriceVariable,
		Variants:  []models.ServiceVariant{{Name: "Short", Price: 100}, {Name: "Long", Price: 200}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if svc.Name != "Gel" || svc.ID == "" {
		t.Errorf("service = %+v", svc)
	}
	if svc.Variants[0].ID == "" || svc.Variants[0].ID == svc.Variants[1].ID {
		t.Errorf("variant ids = %q, %q", svc.Variants[0].ID, svc.Variants[1].ID)
	}

	fixed, _ := svcs.Create(ctx, models.PredefinedService{Name: "Soak", Price: 50, Variants: []models.ServiceVariant{{Name: "x"}}})
	if fixed.PriceType != models.PriceFixed || fixed.Variants != nil {
		t.Errorf("fixed service = %+v", fixed)
	}
}

func TestDeleteCategoryUnassignsServices(t *testing.T) {
	ctx := context.Background()
	svcs, cats := newCatalog(t)

	hands, _ := cats.Create(ctx, "Hands")
	feet, _ := cats.Create(ctx, "Feet")
	gel, _ := svcs.Create(ctx, models.PredefinedService{Name: "Gel", CategoryID: hands.ID})
	pedi, _ := svcs.Create(ctx, models.PredefinedService{Name: "Pedicure", CategoryID: feet.ID})

	if err := cats.Delete(ctx, hands.ID); err != nil {
		t.Fatal(err)
	}

	if got, _ := svcs.Get(gel.ID); got.CategoryID != "" {
		t.Errorf("gel still in deleted category: %+v", got)
	}
	if got, _ := svcs.Get(pedi.ID); got.CategoryID != feet.ID {
		t.Errorf("pedicure lost its category: %+v", got)
	}
	if err := cats.Delete(ctx, hands.ID); !errors.Is(err, httperr.ErrNotFound) {
		t.Errorf("second delete = %v", err)
	}
}

func TestReorderCategories(t *testing.T) {
	ctx := context.Background()
	_, cats := newCatalog(t)

	a, _ := cats.Create(ctx, "A")
	b, _ := cats.Create(ctx, "B")
	c, _ := cats.Create(ctx, "C")
	if a.Order != 0 || b.Order != 1 || c.Order != 2 {
		t.Fatalf("initial orders = %d %d %d", a.Order, b.Order, c.Order)
	}

	list, err := cats.Reorder(ctx, []string{c.ID, a.ID, b.ID})
	if err != nil {
		t.Fatal(err)
	}
	if list[0].ID != c.ID || list[1].ID != a.ID || list[2].ID != b.ID {
		t.Errorf("order after Reorder() = %v", list)
	}
	if list[0].Order != 0 || list[2].Order != 2 {
		t.Errorf("orders = %d..%d", list[0].Order, list[2].Order)
	}

	bad := [][]string{
		{a.ID, b.ID},
		{a.ID, a.ID, b.ID},
		{a.ID, b.ID, "x"},
	}
	for _, ids := range bad {
		if _, err := cats.Reorder(ctx, ids); !errors.Is(err, ErrInvalidOrder) {
			t.Errorf("Reorder(%v) = %v, want %v", ids, err, ErrInvalidOrder)
		}
	}
}
