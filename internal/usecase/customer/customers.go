package customer

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-pos/internal/audit"
	"github.com/BruksfildServices01/salon-pos/internal/domain"
	"github.com/BruksfildServices01/salon-pos/internal/domain/stats"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/validators"
)

var (
	ErrNameRequired = httperr.ErrBusiness("customer_name_required")
	ErrNameTaken    = httperr.ErrBusiness("customer_name_taken")
	ErrInvalidPhone = httperr.ErrBusiness("invalid_phone")
)

// Customers manages registered profiles. Bills refer to customers by name
// only, so nothing cascades from here.
type Customers struct {
	customers domain.Repository[models.Customer]
	bills     domain.Repository[models.Bill]
	audit     *audit.Dispatcher
}

func NewCustomers(
	customers domain.Repository[models.Customer],
	bills domain.Repository[models.Bill],
	audit *audit.Dispatcher,
) *Customers {
	return &Customers{customers: customers, bills: bills, audit: audit}
}

func (uc *Customers) List() []models.Customer {
	return uc.customers.List()
}

func (uc *Customers) Get(id string) (models.Customer, bool) {
	return uc.customers.Get(id)
}

func (uc *Customers) Create(ctx context.Context, c models.Customer) (models.Customer, error) {
	if err := normalize(&c); err != nil {
		return models.Customer{}, err
	}
	if uc.nameTaken(c.Name, "") {
		return models.Customer{}, ErrNameTaken
	}

	c = uc.customers.Add(ctx, c)
	uc.audit.Dispatch(audit.Event{Action: "customer_created", Entity: "customer", EntityID: c.ID})
	return c, nil
}

func (uc *Customers) Update(ctx context.Context, c models.Customer) (models.Customer, error) {
	if err := normalize(&c); err != nil {
		return models.Customer{}, err
	}
	if uc.nameTaken(c.Name, c.ID) {
		return models.Customer{}, ErrNameTaken
	}
	if !uc.customers.Update(ctx, c) {
		return models.Customer{}, httperr.ErrNotFound
	}

	uc.audit.Dispatch(audit.Event{Action: "customer_updated", Entity: "customer", EntityID: c.ID})
	return c, nil
}

func (uc *Customers) Delete(ctx context.Context, id string) error {
	if !uc.customers.Delete(ctx, id) {
		return httperr.ErrNotFound
	}
	uc.audit.Dispatch(audit.Event{Action: "customer_deleted", Entity: "customer", EntityID: id})
	return nil
}

// Stats merges bill history with the registered profiles. query, when set,
// filters by name or phone substring.
func (uc *Customers) Stats(query string) []stats.CustomerStat {
	all := stats.CustomerStats(uc.bills.List(), uc.customers.List())

	q := stats.NormalizeName(query)
	if q == "" {
		return all
	}

	out := all[:0:0]
	for _, st := range all {
		if strings.Contains(stats.NormalizeName(st.Name), q) || strings.Contains(st.Phone, q) {
			out = append(out, st)
		}
	}
	return out
}

// nameTaken reports whether another profile already uses name. Bills refer
// to customers by name, so two profiles with one name would share history.
func (uc *Customers) nameTaken(name, selfID string) bool {
	key := stats.NormalizeName(name)
	for _, other := range uc.customers.List() {
		if other.ID != selfID && stats.NormalizeName(other.Name) == key {
			return true
		}
	}
	return false
}

func normalize(c *models.Customer) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrNameRequired
	}

	c.Phone = strings.TrimSpace(c.Phone)
	if c.Phone != "" {
		if !validators.IsPhoneValid(c.Phone) {
			return ErrInvalidPhone
		}
		c.Phone = validators.NormalizePhone(c.Phone)
	}
	return nil
}
