package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-pos/internal/timezone"
)

// dayParam reads a YYYY-MM-DD query value in loc, defaulting to now.
func dayParam(c *gin.Context, name string, loc *time.Location, now time.Time) (time.Time, bool) {
	v := c.Query(name)
	if v == "" {
		return now.In(loc), true
	}
	t, err := timezone.ParseDay(v, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// monthParam reads a YYYY-MM query value in loc, defaulting to the current month.
func monthParam(c *gin.Context, name string, loc *time.Location, now time.Time) (time.Time, bool) {
	v := c.Query(name)
	if v == "" {
		n := now.In(loc)
		return time.Date(n.Year(), n.Month(), 1, 0, 0, 0, 0, loc), true
	}
	t, err := timezone.ParseMonth(v, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
