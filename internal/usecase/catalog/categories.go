package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/BruksfildServices01/salon-pos/internal/audit"
	"github.com/BruksfildServices01/salon-pos/internal/domain"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/models"
)

var (
	ErrCategoryNameRequired = httperr.ErrBusiness("category_name_required")
	ErrInvalidOrder         = httperr.ErrBusiness("invalid_category_order")
)

// ======================================================
// CATEGORIES
// ======================================================

type Categories struct {
	categories domain.Repository[models.ServiceCategory]
	services   domain.Repository[models.PredefinedService]
	audit      *audit.Dispatcher
}

func NewCategories(
	categories domain.Repository[models.ServiceCategory],
	services domain.Repository[models.PredefinedService],
	audit *audit.Dispatcher,
) *Categories {
	return &Categories{
		categories: categories,
		services:   services,
		audit:      audit,
	}
}

// List returns categories by their display order.
func (uc *Categories) List() []models.ServiceCategory {
	list := uc.categories.List()
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Order < list[j].Order
	})
	return list
}

// Create appends the category at the end of the display order.
func (uc *Categories) Create(ctx context.Context, name string) (models.ServiceCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.ServiceCategory{}, ErrCategoryNameRequired
	}

	next := 0
	for _, c := range uc.categories.List() {
		if c.Order >= next {
			next = c.Order + 1
		}
	}

	cat := uc.categories.Add(ctx, models.ServiceCategory{Name: name, Order: next})
	uc.audit.Dispatch(audit.Event{Action: "category_created", Entity: "category", EntityID: cat.ID})
	return cat, nil
}

func (uc *Categories) Rename(ctx context.Context, id, name string) (models.ServiceCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.ServiceCategory{}, ErrCategoryNameRequired
	}

	cat, ok := uc.categories.Get(id)
	if !ok {
		return models.ServiceCategory{}, httperr.ErrNotFound
	}
	cat.Name = name
	uc.categories.Update(ctx, cat)
	return cat, nil
}

// Delete removes the category and unassigns services that used it.
func (uc *Categories) Delete(ctx context.Context, id string) error {
	if !uc.categories.Delete(ctx, id) {
		return httperr.ErrNotFound
	}

	n := uc.services.UpdateWhere(ctx, func(s models.PredefinedService) (models.PredefinedService, bool) {
		if s.CategoryID != id {
			return s, false
		}
		s.CategoryID = ""
		return s, true
	})

	uc.audit.Dispatch(audit.Event{
		Action:   "category_deleted",
		Entity:   "category",
		EntityID: id,
		Metadata: map[string]int{"services_unassigned": n},
	})
	return nil
}

// Reorder sets order = position in ids. ids must name every category once.
func (uc *Categories) Reorder(ctx context.Context, ids []string) ([]models.ServiceCategory, error) {
	current := uc.categories.List()
	if len(ids) != len(current) {
		return nil, ErrInvalidOrder
	}

	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		if _, dup := pos[id]; dup {
			return nil, ErrInvalidOrder
		}
		pos[id] = i
	}
	for _, c := range current {
		if _, ok := pos[c.ID]; !ok {
			return nil, ErrInvalidOrder
		}
	}

	uc.categories.UpdateWhere(ctx, func(c models.ServiceCategory) (models.ServiceCategory, bool) {
		if c.Order == pos[c.ID] {
			return c, false
		}
		c.Order = pos[c.ID]
		return c, true
	})

	return uc.List(), nil
}
