package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/httpresp"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/usecase/customer"
)

type CustomerHandler struct {
	customers *customer.Customers
}

func NewCustomerHandler(customers *customer.Customers) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

func (h *CustomerHandler) List(c *gin.Context) {
	httpresp.List(c, h.customers.List())
}

func (h *CustomerHandler) Get(c *gin.Context) {
	cust, ok := h.customers.Get(c.Param("id"))
	if !ok {
		writeError(c, httperr.ErrNotFound)
		return
	}
	httpresp.OK(c, cust)
}

// Stats merges bill history with registered profiles; ?query= filters by
// name or phone.
func (h *CustomerHandler) Stats(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	httpresp.List(c, h.customers.Stats(query))
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req models.Customer
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	created, err := h.customers.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(201, created)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var req models.Customer
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	req.ID = c.Param("id")

	updated, err := h.customers.Update(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, updated)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.customers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(204)
}
