package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-pos/internal/httpresp"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/notification"
)

// ======================================================
// HANDLER
// ======================================================

type DueHandler struct {
	engine *notification.Engine
}

func NewDueHandler(engine *notification.Engine) *DueHandler {
	return &DueHandler{engine: engine}
}

// ======================================================
// REQUESTS
// ======================================================

// headRequest names the booking the staff acted on. An empty id acts on
// whatever is at the head.
type headRequest struct {
	ID string `json:"id"`
}

type snoozeRequest struct {
	ID      string `json:"id"`
	Minutes int    `json:"minutes"`
}

type selectRequest struct {
	Minutes int `json:"minutes" binding:"required"`
}

type dueResponse struct {
	Head          *models.Booking  `json:"head"`
	Pending       int              `json:"pending"`
	Queue         []models.Booking `json:"queue"`
	SnoozeMinutes int              `json:"snoozeMinutes"`
}

// ======================================================
// READ
// ======================================================

func (h *DueHandler) Get(c *gin.Context) {
	queue := h.engine.Queue()

	resp := dueResponse{
		Pending:       len(queue),
		Queue:         queue,
		SnoozeMinutes: int(h.engine.SelectedSnooze().Minutes()),
	}
	if len(queue) > 0 {
		resp.Head = &queue[0]
	}

	httpresp.OK(c, resp)
}

// Poll runs a due check right away instead of waiting for the next tick.
func (h *DueHandler) Poll(c *gin.Context) {
	h.engine.Poll(c.Request.Context())
	h.Get(c)
}

// ======================================================
// HEAD ACTIONS
// ======================================================

func (h *DueHandler) Confirm(c *gin.Context) {
	var req headRequest
	if !bindOptional(c, &req) {
		return
	}

	created, err := h.engine.Confirm(c.Request.Context(), req.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(201, created)
}

func (h *DueHandler) Keep(c *gin.Context) {
	var req headRequest
	if !bindOptional(c, &req) {
		return
	}

	if err := h.engine.Keep(c.Request.Context(), req.ID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(204)
}

func (h *DueHandler) Snooze(c *gin.Context) {
	var req snoozeRequest
	if !bindOptional(c, &req) {
		return
	}

	snoozed, err := h.engine.Snooze(c.Request.Context(), req.ID, req.Minutes)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, snoozed)
}

func (h *DueHandler) Delete(c *gin.Context) {
	var req headRequest
	if !bindOptional(c, &req) {
		return
	}

	if err := h.engine.Delete(c.Request.Context(), req.ID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(204)
}

// Select picks the snooze duration for the current head.
func (h *DueHandler) Select(c *gin.Context) {
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	if err := h.engine.SelectSnooze(req.Minutes); err != nil {
		writeError(c, err)
		return
	}
	h.Get(c)
}

// bindOptional accepts an empty body.
func bindOptional(c *gin.Context, out any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(out); err != nil {
		invalidRequest(c)
		return false
	}
	return true
}
