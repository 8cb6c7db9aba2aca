package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/httpresp"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/usecase/catalog"
)

// ======================================================
// SERVICES
// ======================================================

type ServiceHandler struct {
	services *catalog.Services
}

func NewServiceHandler(services *catalog.Services) *ServiceHandler {
	return &ServiceHandler{services: services}
}

func (h *ServiceHandler) List(c *gin.Context) {
	httpresp.List(c, h.services.List())
}

func (h *ServiceHandler) Get(c *gin.Context) {
	svc, ok := h.services.Get(c.Param("id"))
	if !ok {
		writeError(c, httperr.ErrNotFound)
		return
	}
	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req models.PredefinedService
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	created, err := h.services.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(201, created)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req models.PredefinedService
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	req.ID = c.Param("id")

	updated, err := h.services.Update(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, updated)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.services.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(204)
}

// ======================================================
// CATEGORIES
// ======================================================

type CategoryHandler struct {
	categories *catalog.Categories
}

func NewCategoryHandler(categories *catalog.Categories) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

type categoryRequest struct {
	Name string `json:"name"`
}

type reorderRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

func (h *CategoryHandler) List(c *gin.Context) {
	httpresp.List(c, h.categories.List())
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	created, err := h.categories.Create(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(201, created)
}

func (h *CategoryHandler) Rename(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	updated, err := h.categories.Rename(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, updated)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(204)
}

func (h *CategoryHandler) Reorder(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	list, err := h.categories.Reorder(c.Request.Context(), req.IDs)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, list)
}
