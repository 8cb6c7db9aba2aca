package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/notification"
	"github.com/BruksfildServices01/salon-pos/internal/usecase/backup"
)

var messages = map[string]string{
	"not_found":              "Record not found.",
	"customer_name_required": "Customer name is required.",
	"customer_name_taken":    "A customer with this name already exists.",
	"items_required":         "Add at least one service.",
	"invalid_discount":       "Invalid discount.",
	"invalid_quantity":       "Quantity must be at least 1.",
	"invalid_price":          "Invalid price.",
	"item_name_required":     "Item name is required.",
	"variant_required":       "Pick a variant.",
	"variant_not_found":      "Variant not found.",
	"booking_date_required":  "Booking date is required.",
	"booking_in_past":        "Booking time is in the past.",
	"invalid_backup":         "Backup file is not valid.",
	"confirmation_required":  "Importing replaces all data. Confirm to continue.",
	"archive_not_configured": "Backup archive is not configured.",
	"due_queue_empty":        "No due bookings.",
	"due_head_changed":       "The due booking changed, refresh and retry.",
	"invalid_snooze":         "Invalid snooze duration.",
	"invalid_phone":          "Invalid phone number.",
	"category_not_found":     "Category not found.",
	"invalid_category_order": "Order must list every category once.",
	"service_name_required":  "Service name is required.",
	"category_name_required": "Category name is required.",
	"variant_name_required":  "Variant name is required.",
	"invalid_price_type":     "Invalid price type.",
}

// writeError maps use case errors to a status and {error_code, message}.
func writeError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Unexpected error.")
		return
	}

	msg, ok := messages[be.Code]
	if !ok {
		msg = "Invalid request."
	}

	switch {
	case errors.Is(err, httperr.ErrNotFound), errors.Is(err, notification.ErrQueueEmpty):
		httperr.NotFound(c, be.Code, msg)
	case errors.Is(err, notification.ErrHeadChanged):
		httperr.Conflict(c, be.Code, msg)
	case errors.Is(err, backup.ErrArchiveDisabled):
		httperr.Unavailable(c, be.Code, msg)
	default:
		httperr.Write(c, http.StatusBadRequest, be.Code, msg)
	}
}

func invalidRequest(c *gin.Context) {
	httperr.BadRequest(c, "invalid_request", "Invalid data.")
}
