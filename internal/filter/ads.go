// Package filter holds the client-side filtering and aggregation the
// dashboard applies on top of upstream responses. Everything here is pure and
// total: unknown values and empty inputs have defined outcomes, never errors.
package filter

import (
	"strings"
	"time"

	"tenalyadmin/internal/domain"
)

// All is the sentinel criteria value that matches everything.
const All = "all"

// Date window selectors for ad listings.
const (
	DateAll   = "all"
	DateToday = "today"
	DateWeek  = "week"
	DateMonth = "month"
)

// AdCriteria is the combined filter state of the ads view. Zero values and
// the "all" sentinel both mean "match everything" for their field.
type AdCriteria struct {
	Status    string `form:"status"`
	Category  string `form:"category"`
	Search    string `form:"search"`
	DateRange string `form:"date"`
}

// Ads applies the criteria with logical AND across predicates, preserving the
// input order. now anchors the date windows to the caller's local day.
func Ads(ads []domain.FlattenedAd, c AdCriteria, now time.Time) []domain.FlattenedAd {
	out := make([]domain.FlattenedAd, 0, len(ads))
	for _, ad := range ads {
		if !matchStatus(ad, c.Status) {
			continue
		}
		if !matchCategory(ad, c.Category) {
			continue
		}
		if !matchSearch(ad, c.Search) {
			continue
		}
		if !matchDate(ad, c.DateRange, now) {
			continue
		}
		out = append(out, ad)
	}
	return out
}

// CountsByStatus tallies the full, unfiltered set so the status tab badges
// stay stable while filters change. Every status appears, zero included.
func CountsByStatus(ads []domain.FlattenedAd) map[domain.AdStatus]int {
	counts := make(map[domain.AdStatus]int, len(domain.AdStatuses))
	for _, s := range domain.AdStatuses {
		counts[s] = 0
	}
	for _, ad := range ads {
		counts[ad.Status]++
	}
	return counts
}

func matchStatus(ad domain.FlattenedAd, status string) bool {
	return status == "" || status == All || string(ad.Status) == status
}

func matchCategory(ad domain.FlattenedAd, category string) bool {
	return category == "" || category == All ||
		strings.EqualFold(ad.AdCategory, category)
}

// matchSearch is a case-insensitive substring match against the seller name,
// business name, or display category label.
func matchSearch(ad domain.FlattenedAd, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(ad.UserName), needle) ||
		strings.Contains(strings.ToLower(ad.BusinessName), needle) ||
		strings.Contains(strings.ToLower(ad.Category), needle)
}

// matchDate keeps ads created on or after the window start. The upper bound
// is open so same-moment and future-dated records pass.
func matchDate(ad domain.FlattenedAd, dateRange string, now time.Time) bool {
	if dateRange == "" || dateRange == DateAll {
		return true
	}

	start := WindowStart(dateRange, now)
	if start.IsZero() {
		// unknown selector matches everything
		return true
	}
	return !ad.CreatedAt.Before(start)
}

// WindowStart resolves a date selector to the inclusive lower bound of the
// window, anchored at the start of now's local day. Unknown selectors yield
// the zero time.
func WindowStart(dateRange string, now time.Time) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch dateRange {
	case DateToday:
		return today
	case DateWeek:
		return today.AddDate(0, 0, -7)
	case DateMonth:
		return today.AddDate(0, -1, 0)
	}
	return time.Time{}
}
