package stats

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/models"
)

// Window is the revenue of bills dated in [Start, End).
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Total int64     `json:"total"`
	Count int       `json:"count"`
}

func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// StartOfWeek returns Monday 00:00 of the week containing t.
func StartOfWeek(t time.Time, loc *time.Location) time.Time {
	day := StartOfDay(t, loc)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func StartOfMonth(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
}

func sumBetween(bills []models.Bill, start, end time.Time) Window {
	w := Window{Start: start, End: end}
	for _, b := range bills {
		if !b.Date.Before(start) && b.Date.Before(end) {
			w.Total += b.Total
			w.Count++
		}
	}
	return w
}

func RevenueForDay(bills []models.Bill, ref time.Time, loc *time.Location) Window {
	start := StartOfDay(ref, loc)
	return sumBetween(bills, start, start.AddDate(0, 0, 1))
}

func RevenueForWeek(bills []models.Bill, ref time.Time, loc *time.Location) Window {
	start := StartOfWeek(ref, loc)
	return sumBetween(bills, start, start.AddDate(0, 0, 7))
}

func RevenueForMonth(bills []models.Bill, ref time.Time, loc *time.Location) Window {
	start := StartOfMonth(ref, loc)
	return sumBetween(bills, start, start.AddDate(0, 1, 0))
}

// ===============================
// Series
// ===============================

type DayPoint struct {
	Date  string `json:"date"`
	Total int64  `json:"total"`
	Count int    `json:"count"`
}

// DailySeries returns one point per calendar day of the month containing ref.
func DailySeries(bills []models.Bill, ref time.Time, loc *time.Location) []DayPoint {
	start := StartOfMonth(ref, loc)
	end := start.AddDate(0, 1, 0)

	var points []DayPoint
	index := make(map[string]int)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		index[key] = len(points)
		points = append(points, DayPoint{Date: key})
	}

	for _, b := range bills {
		local := b.Date.In(loc)
		if local.Before(start) || !local.Before(end) {
			continue
		}
		i := index[local.Format("2006-01-02")]
		points[i].Total += b.Total
		points[i].Count++
	}
	return points
}

// ===============================
// Top services
// ===============================

type ServiceRevenue struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Revenue  int64  `json:"revenue"`
}

// TopServices ranks item names by revenue for bills in [start, end).
// limit <= 0 returns every service.
func TopServices(bills []models.Bill, start, end time.Time, limit int) []ServiceRevenue {
	byName := make(map[string]*ServiceRevenue)
	var order []string

	for _, b := range bills {
		if b.Date.Before(start) || !b.Date.Before(end) {
			continue
		}
		for _, it := range b.Items {
			sr, ok := byName[it.Name]
			if !ok {
				sr = &ServiceRevenue{Name: it.Name}
				byName[it.Name] = sr
				order = append(order, it.Name)
			}
			sr.Quantity += it.Quantity
			sr.Revenue += it.Price
		}
	}

	out := make([]ServiceRevenue, 0, len(order))
	for _, name := range order {
		out = append(out, *byName[name])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Revenue > out[j].Revenue
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// GrowthPercentage compares current against previous. A rise from zero
// counts as 100%.
func GrowthPercentage(current, previous int64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return float64(current-previous) / float64(previous) * 100
}
