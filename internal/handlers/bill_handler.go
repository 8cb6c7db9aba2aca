package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-pos/internal/domain/billing"
	"github.com/BruksfildServices01/salon-pos/internal/httpresp"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/usecase/bill"
)

// ======================================================
// HANDLER
// ======================================================

type BillHandler struct {
	list    *bill.ListBills
	create  *bill.CreateBill
	update  *bill.UpdateBill
	del     *bill.DeleteBill
	restore *bill.RestoreBills
}

func NewBillHandler(
	list *bill.ListBills,
	create *bill.CreateBill,
	update *bill.UpdateBill,
	del *bill.DeleteBill,
	restore *bill.RestoreBills,
) *BillHandler {
	return &BillHandler{
		list:    list,
		create:  create,
		update:  update,
		del:     del,
		restore: restore,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *BillHandler) List(c *gin.Context) {
	httpresp.List(c, h.list.Execute())
}

func (h *BillHandler) Grouped(c *gin.Context) {
	httpresp.OK(c, gin.H{"groups": h.list.Grouped()})
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *BillHandler) Create(c *gin.Context) {
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

func (h *BillHandler) Update(c *gin.Context) {
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

// ======================================================
// DELETE / RESTORE
// ======================================================

func (h *BillHandler) Delete(c *gin.Context) {
	if err := h.del.Execute(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(204)
}

// Restore replaces every bill with the submitted array.
func (h *BillHandler) Restore(c *gin.Context) {
	var req []models.Bill
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	h.restore.Execute(c.Request.Context(), req)
	httpresp.List(c, h.list.Execute())
}
