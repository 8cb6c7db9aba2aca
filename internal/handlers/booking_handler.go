package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-pos/internal/domain/billing"
	"github.com/BruksfildServices01/salon-pos/internal/httpresp"
	"github.com/BruksfildServices01/salon-pos/internal/usecase/booking"
)

type BookingHandler struct {
	list   *booking.ListBookings
	create *booking.CreateBooking
	update *booking.UpdateBooking
	del    *booking.DeleteBooking
}

func NewBookingHandler(
	list *booking.ListBookings,
	create *booking.CreateBooking,
	update *booking.UpdateBooking,
	del *booking.DeleteBooking,
) *BookingHandler {
	return &BookingHandler{
		list:   list,
		create: create,
		update: update,
		del:    del,
	}
}

func (h *BookingHandler) List(c *gin.Context) {
	httpresp.List(c, h.list.Execute())
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req billing.SaleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	created, err := h.create.Execute(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(201, created)
}

func (h *BookingHandler) Update(c *gin.Context) {
	var req billing.SaleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	updated, err := h.update.Execute(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, updated)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.del.Execute(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(204)
}
