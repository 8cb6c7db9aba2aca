package repository

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/store"
)

// SettingsRepository holds the single ShopSettings document.
type SettingsRepository struct {
	mu       sync.RWMutex
	store    store.Store
	log      *zap.Logger
	settings models.ShopSettings
}

func NewSettingsRepository(ctx context.Context, s store.Store, log *zap.Logger) *SettingsRepository {
	if log == nil {
		log = zap.NewNop()
	}
	r := &SettingsRepository{store: s, log: log}
	r.Reload(ctx)
	return r
}

func (r *SettingsRepository) Reload(ctx context.Context) {
	settings := models.DefaultShopSettings()
	if _, err := store.GetJSON(ctx, r.store, store.KeySettings, &settings); err != nil {
		r.log.Warn("settings read failed, using defaults", zap.Error(err))
		settings = models.DefaultShopSettings()
	}

	r.mu.Lock()
	r.settings = settings
	r.mu.Unlock()
}

func (r *SettingsRepository) Get() models.ShopSettings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings
}

func (r *SettingsRepository) Save(ctx context.Context, settings models.ShopSettings) models.ShopSettings {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings = settings
	if err := store.SetJSON(context.WithoutCancel(ctx), r.store, store.KeySettings, settings); err != nil {
		r.log.Error("settings write failed", zap.Error(err))
	}
	return settings
}
