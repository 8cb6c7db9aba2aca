package backup

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/BruksfildServices01/salon-pos/internal/audit"
	"github.com/BruksfildServices01/salon-pos/internal/domain/billing"
	"github.com/BruksfildServices01/salon-pos/internal/models"
)

// Summary reports how many records an import wrote.
type Summary struct {
	Bills      int  `json:"bills"`
	Services   int  `json:"services"`
	Categories int  `json:"categories"`
	Bookings   int  `json:"bookings"`
	Customers  int  `json:"customers"`
	Settings   bool `json:"settings"`
}

type parsed struct {
	bills      []models.Bill
	services   []models.PredefinedService
	categories *[]models.ServiceCategory
	settings   *models.ShopSettings
	bookings   *[]models.Booking
	customers  *[]models.Customer
}

// parse checks the document without applying anything. bills and services
// must be JSON arrays.
func parse(raw []byte) (*parsed, error) {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(raw, &sections); err != nil {
		return nil, ErrInvalidBackup
	}

	p := &parsed{}
	if !isArray(sections["bills"]) || !isArray(sections["services"]) {
		return nil, ErrInvalidBackup
	}
	if json.Unmarshal(sections["bills"], &p.bills) != nil ||
		json.Unmarshal(sections["services"], &p.services) != nil {
		return nil, ErrInvalidBackup
	}

	if msg, ok := present(sections, "categories"); ok {
		var v []models.ServiceCategory
		if json.Unmarshal(msg, &v) != nil {
			return nil, ErrInvalidBackup
		}
		p.categories = &v
	}
	if msg, ok := present(sections, "settings"); ok {
		v := models.DefaultShopSettings()
		if json.Unmarshal(msg, &v) != nil {
			return nil, ErrInvalidBackup
		}
		p.settings = &v
	}
	if msg, ok := present(sections, "bookings"); ok {
		var v []models.Booking
		if json.Unmarshal(msg, &v) != nil {
			return nil, ErrInvalidBackup
		}
		p.bookings = &v
	}
	if msg, ok := present(sections, "customers"); ok {
		var v []models.Customer
		if json.Unmarshal(msg, &v) != nil {
			return nil, ErrInvalidBackup
		}
		p.customers = &v
	}
	return p, nil
}

// Import overwrites current state with the document once confirmed, then
// reloads everything from the store.
func (b *Backup) Import(ctx context.Context, raw []byte, confirm bool) (Summary, error) {
	p, err := parse(raw)
	if err != nil {
		return Summary{}, err
	}
	if !confirm {
		return Summary{}, ErrConfirmationRequired
	}

	for i := range p.bills {
		billing.Recalculate(&p.bills[i].Sale)
	}

	sum := Summary{Bills: len(p.bills), Services: len(p.services)}
	b.Bills.Restore(ctx, p.bills)
	b.Services.Restore(ctx, p.services)

	if p.categories != nil {
		b.Categories.Restore(ctx, *p.categories)
		sum.Categories = len(*p.categories)
	}
	if p.settings != nil {
		b.Settings.Save(ctx, *p.settings)
		sum.Settings = true
	}
	if p.bookings != nil {
		for i := range *p.bookings {
			billing.Recalculate(&(*p.bookings)[i].Sale)
		}
		b.Bookings.Restore(ctx, *p.bookings)
		sum.Bookings = len(*p.bookings)
	}
	if p.customers != nil {
		b.Customers.Restore(ctx, *p.customers)
		sum.Customers = len(*p.customers)
	}

	b.reload(ctx)

	b.Audit.Dispatch(audit.Event{
		Action:   "backup_imported",
		Entity:   "backup",
		Metadata: sum,
	})
	return sum, nil
}

func (b *Backup) reload(ctx context.Context) {
	b.Bills.Reload(ctx)
	b.Services.Reload(ctx)
	b.Categories.Reload(ctx)
	b.Bookings.Reload(ctx)
	b.Customers.Reload(ctx)
	b.Settings.Reload(ctx)
	if b.Engine != nil {
		b.Engine.Reset(ctx)
	}
}

func isArray(msg json.RawMessage) bool {
	trimmed := bytes.TrimSpace(msg)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// present treats an explicit null like an absent section.
func present(sections map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	msg, ok := sections[key]
	if !ok || bytes.Equal(bytes.TrimSpace(msg), []byte("null")) {
		return nil, false
	}
	return msg, true
}
