package customer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/infra/repository"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/store"
)

func newCustomers(t *testing.T) (*Customers, *repository.Collection[models.Bill]) {
	t.Helper()
	ctx := context.Background()
	s := store.NewMemoryStore()
	bills := repository.NewCollection[models.Bill](ctx, s, store.KeyBills, repository.Options{Prepend: true})
	customers := repository.NewCollection[models.Customer](ctx, s, store.KeyCustomers, repository.Options{Prepend: true})
	return NewCustomers(customers, bills, nil), bills
}

func TestCreateCustomer(t *testing.T) {
	ctx := context.Background()
	uc, _ := newCustomers(t)

	if _, err := uc.Create(ctx, models.Customer{Name: "  "}); !errors.Is(err, ErrNameRequired) {
		t.Errorf("blank name: %v", err)
	}
	if _, err := uc.Create(ctx, models.Customer{Name: "Anna", Phone: "abc"}); !errors.Is(err, ErrInvalidPhone) {
		t.Errorf("bad phone: %v", err)
	}

	c, err := uc.Create(ctx, models.Customer{Name: " Anna ", Phone: "0901 234 567"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != "Anna" || c.Phone != "0901234567" || c.ID == "" {
		t.Errorf("customer = %+v", c)
	}
}

func TestStatsIncludesProfilesAndFilters(t *testing.T) {
	ctx := context.Background()
	uc, bills := newCustomers(t)

	at := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	bills.Add(ctx, models.Bill{Sale: models.Sale{CustomerName: "anna ", Date: at, Total: 100}})
	bills.Add(ctx, models.Bill{Sale: models.Sale{CustomerName: "Anna", Date: at.Add(time.Hour), Total: 50}})
	uc.Create(ctx, models.Customer{Name: "Anna", Phone: "0901234567"})
	uc.Create(ctx, models.Customer{Name: "Binh"})

	all := uc.Stats("")
	if len(all) != 2 {
		t.Fatalf("len(all) = %d, want 2", len(all))
	}
	if all[0].Name != "Anna" || all[0].VisitCount != 2 || all[0].TotalSpent != 150 || all[0].ID == "" {
		t.Errorf("all[0] = %+v", all[0])
	}

	if got := uc.Stats("BIN"); len(got) != 1 || got[0].Name != "Binh" {
		t.Errorf("Stats(BIN) = %+v", got)
	}
	if got := uc.Stats("0901"); len(got) != 1 || got[0].Name != "Anna" {
		t.Errorf("Stats(0901) = %+v", got)
	}
}

func TestCustomerNamesAreUnique(t *testing.T) {
	ctx := context.Background()
	uc, _ := newCustomers(t)

	anna, err := uc.Create(ctx, models.Customer{Name: "Anna"})
	if err != nil {
		t.Fatal(err)
	}
	binh, _ := uc.Create(ctx, models.Customer{Name: "Binh"})

	if _, err := uc.Create(ctx, models.Customer{Name: " ANNA "}); !errors.Is(err, ErrNameTaken) {
		t.Errorf("duplicate create = %v, want %v", err, ErrNameTaken)
	}
	if _, err := uc.Update(ctx, models.Customer{ID: binh.ID, Name: "anna"}); !errors.Is(err, ErrNameTaken) {
		t.Errorf("rename onto existing = %v, want %v", err, ErrNameTaken)
	}
	if _, err := uc.Update(ctx, models.Customer{ID: anna.ID, Name: "Anna", Phone: "0901234567"}); err != nil {
		t.Errorf("updating own profile = %v", err)
	}
}
