package handlers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-pos/internal/audit"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/httpresp"
	"github.com/BruksfildServices01/salon-pos/internal/models"
)

type SettingsStore interface {
	Get() models.ShopSettings
	Save(ctx context.Context, s models.ShopSettings) models.ShopSettings
}

type SettingsHandler struct {
	settings SettingsStore
	audit    *audit.Dispatcher
}

func NewSettingsHandler(settings SettingsStore, audit *audit.Dispatcher) *SettingsHandler {
	return &SettingsHandler{settings: settings, audit: audit}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	httpresp.OK(c, h.settings.Get())
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req models.ShopSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	req.ShopName = strings.TrimSpace(req.ShopName)
	req.BillTheme = strings.TrimSpace(req.BillTheme)
	if req.ShopName == "" {
		httperr.BadRequest(c, "shop_name_required", "Shop name is required.")
		return
	}
	if req.BillTheme == "" {
		req.BillTheme = models.DefaultShopSettings().BillTheme
	}

	saved := h.settings.Save(c.Request.Context(), req)

	h.audit.Dispatch(audit.Event{
		Action: "settings_updated",
		Entity: "settings",
	})

	httpresp.OK(c, saved)
}
