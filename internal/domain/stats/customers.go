package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/models"
)

type CustomerStat struct {
	// ID is empty for customers known only from bill history.
	ID         string        `json:"id,omitempty"`
	Name       string        `json:"name"`
	Phone      string        `json:"phone,omitempty"`
	DOB        *time.Time    `json:"dob,omitempty"`
	TotalSpent int64         `json:"totalSpent"`
	VisitCount int           `json:"visitCount"`
	LastVisit  *time.Time    `json:"lastVisit,omitempty"`
	History    []models.Bill `json:"history"`
}

func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CustomerStats groups bills by normalized customer name and merges in the
// registered profiles. Profiles without bills are kept, and so is every
// profile sharing a name with another one. The result is
// ordered by last visit, most recent first, with never-seen profiles last.
func CustomerStats(bills []models.Bill, customers []models.Customer) []CustomerStat {
	byKey := make(map[string]*CustomerStat)
	var order []string

	get := func(key, name string) *CustomerStat {
		if st, ok := byKey[key]; ok {
			return st
		}
		st := &CustomerStat{Name: strings.TrimSpace(name), History: []models.Bill{}}
		byKey[key] = st
		order = append(order, key)
		return st
	}

	for _, c := range customers {
		key := NormalizeName(c.Name)
		if key == "" {
			continue
		}
		st := get(key, c.Name)
		if st.ID != "" {
			// Same name as an earlier profile: bills cannot tell them
			// apart, so the history stays with the first one.
			st = get("#"+c.ID, c.Name)
		}
		st.ID = c.ID
		st.Name = strings.TrimSpace(c.Name)
		st.Phone = c.Phone
		st.DOB = c.DOB
	}

	for _, b := range bills {
		key := NormalizeName(b.CustomerName)
		if key == "" {
			continue
		}
		st := get(key, b.CustomerName)
		st.TotalSpent += b.Total
		st.VisitCount++
		st.History = append(st.History, b)
	}

	out := make([]CustomerStat, 0, len(order))
	for _, key := range order {
		st := byKey[key]
		sort.SliceStable(st.History, func(i, j int) bool {
			return st.History[i].Date.After(st.History[j].Date)
		})
		if len(st.History) > 0 {
			last := st.History[0].Date
			st.LastVisit = &last
		}
		out = append(out, *st)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].LastVisit, out[j].LastVisit
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	return out
}
