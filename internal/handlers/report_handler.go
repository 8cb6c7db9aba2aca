package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/httpresp"
	"github.com/BruksfildServices01/salon-pos/internal/timezone"
	"github.com/BruksfildServices01/salon-pos/internal/usecase/report"
)

const defaultTopServices = 5

type ReportHandler struct {
	reports *report.Reports
	now     func() time.Time
}

func NewReportHandler(reports *report.Reports, now func() time.Time) *ReportHandler {
	return &ReportHandler{reports: reports, now: now}
}

// Revenue returns day, week and month totals around ?date=YYYY-MM-DD.
func (h *ReportHandler) Revenue(c *gin.Context) {
	ref, ok := dayParam(c, "date", h.reports.Location(), h.now())
	if !ok {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}
	httpresp.OK(c, h.reports.Revenue(ref))
}

// Series returns one point per day of the month containing ?date=.
func (h *ReportHandler) Series(c *gin.Context) {
	ref, ok := dayParam(c, "date", h.reports.Location(), h.now())
	if !ok {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}
	httpresp.List(c, h.reports.Series(ref))
}

// TopServices ranks services by revenue. The range is ?from=&to= (days,
// to inclusive) or a whole ?month=YYYY-MM, defaulting to this month.
func (h *ReportHandler) TopServices(c *gin.Context) {
	loc := h.reports.Location()

	limit := defaultTopServices
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			httperr.BadRequest(c, "invalid_limit", "Limit must be a positive number.")
			return
		}
		limit = n
	}

	var from, to time.Time
	if c.Query("from") != "" || c.Query("to") != "" {
		f, err := timezone.ParseDay(c.Query("from"), loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Dates must be YYYY-MM-DD.")
			return
		}
		t, err := timezone.ParseDay(c.Query("to"), loc)
		if err != nil || t.Before(f) {
			httperr.BadRequest(c, "invalid_date", "Dates must be YYYY-MM-DD.")
			return
		}
		from, to = f, t.AddDate(0, 0, 1)
	} else {
		m, ok := monthParam(c, "month", loc, h.now())
		if !ok {
			httperr.BadRequest(c, "invalid_month", "Month must be YYYY-MM.")
			return
		}
		from, to = m, m.AddDate(0, 1, 0)
	}

	httpresp.List(c, h.reports.TopServices(from, to, limit))
}
