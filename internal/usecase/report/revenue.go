package report

import (
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/domain"
	"github.com/BruksfildServices01/salon-pos/internal/domain/stats"
	"github.com/BruksfildServices01/salon-pos/internal/models"
)

// ======================================================
// OUTPUT
// ======================================================

type PeriodRevenue struct {
	stats.Window
	Previous stats.Window `json:"previous"`
	Growth   float64      `json:"growth"`
}

type RevenueSummary struct {
	Day   PeriodRevenue `json:"day"`
	Week  PeriodRevenue `json:"week"`
	Month PeriodRevenue `json:"month"`
}

// ======================================================
// USE CASE
// ======================================================

// Reports computes revenue views on demand from the current bills.
type Reports struct {
	bills domain.Repository[models.Bill]
	loc   *time.Location
}

func NewReports(bills domain.Repository[models.Bill], loc *time.Location) *Reports {
	return &Reports{bills: bills, loc: loc}
}

func (uc *Reports) Location() *time.Location { return uc.loc }

// Revenue returns the day, week and month containing ref, each compared to
// the period before it.
func (uc *Reports) Revenue(ref time.Time) RevenueSummary {
	bills := uc.bills.List()

	day := stats.RevenueForDay(bills, ref, uc.loc)
	week := stats.RevenueForWeek(bills, ref, uc.loc)
	month := stats.RevenueForMonth(bills, ref, uc.loc)

	prevDay := stats.RevenueForDay(bills, day.Start.AddDate(0, 0, -1), uc.loc)
	prevWeek := stats.RevenueForWeek(bills, week.Start.AddDate(0, 0, -7), uc.loc)
	prevMonth := stats.RevenueForMonth(bills, month.Start.AddDate(0, -1, 0), uc.loc)

	return RevenueSummary{
		Day:   compare(day, prevDay),
		Week:  compare(week, prevWeek),
		Month: compare(month, prevMonth),
	}
}

func compare(cur, prev stats.Window) PeriodRevenue {
	return PeriodRevenue{
		Window:   cur,
		Previous: prev,
		Growth:   stats.GrowthPercentage(cur.Total, prev.Total),
	}
}

func (uc *Reports) Series(ref time.Time) []stats.DayPoint {
	return stats.DailySeries(uc.bills.List(), ref, uc.loc)
}

// TopServices covers [from, to) in the shop time zone.
func (uc *Reports) TopServices(from, to time.Time, limit int) []stats.ServiceRevenue {
	return stats.TopServices(uc.bills.List(), from, to, limit)
}
