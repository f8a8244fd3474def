package filter

import (
	"strings"
	"time"

	"tenalyadmin/internal/domain"
)

// VerificationCriteria is the filter state of the verification review screen.
// Tab and Status cover the same domain: Tab is the selected status tab and
// wins over the dropdown whenever it is not "all".
type VerificationCriteria struct {
	Search string `form:"search"`
	Type   string `form:"type"`
	Status string `form:"status"`
	Tab    string `form:"tab"`
	Date   string `form:"date"` // exact calendar day, YYYY-MM-DD
}

// EffectiveStatus resolves the tab/dropdown precedence.
func (c VerificationCriteria) EffectiveStatus() string {
	if c.Tab != "" && c.Tab != All {
		return c.Tab
	}
	return c.Status
}

// Verifications filters at two levels: search keeps or drops whole users,
// then type/status/date prune each surviving user's submission list. Users
// whose list empties out are dropped entirely. Order is preserved at both
// levels.
func Verifications(users []domain.UserVerification, c VerificationCriteria) []domain.UserVerification {
	status := c.EffectiveStatus()

	out := make([]domain.UserVerification, 0, len(users))
	for _, u := range users {
		if !matchUser(u, c.Search) {
			continue
		}

		kept := make([]domain.VerificationSubmission, 0, len(u.Verifications))
		for _, sub := range u.Verifications {
			if !matchType(sub, c.Type) {
				continue
			}
			if !matchVerificationStatus(sub, status) {
				continue
			}
			if !matchDay(sub, c.Date) {
				continue
			}
			kept = append(kept, sub)
		}

		if len(kept) == 0 {
			continue
		}
		u.Verifications = kept
		out = append(out, u)
	}
	return out
}

// CountByStatus sums submissions in the given status across all users,
// ignoring any active filters; it backs the status tab badges.
func CountByStatus(users []domain.UserVerification, status domain.VerificationStatus) int {
	n := 0
	for _, u := range users {
		for _, sub := range u.Verifications {
			if sub.Status == status {
				n++
			}
		}
	}
	return n
}

// CountSubmissions is the total across all users regardless of status.
func CountSubmissions(users []domain.UserVerification) int {
	n := 0
	for _, u := range users {
		n += len(u.Verifications)
	}
	return n
}

func matchUser(u domain.UserVerification, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(u.FullName), needle) ||
		strings.Contains(strings.ToLower(u.Email), needle)
}

func matchType(sub domain.VerificationSubmission, typ string) bool {
	return typ == "" || typ == All || string(sub.VerificationType) == typ
}

func matchVerificationStatus(sub domain.VerificationSubmission, status string) bool {
	return status == "" || status == All || string(sub.Status) == status
}

// matchDay compares calendar days in the submission's location. A date that
// does not parse matches nothing, mirroring an invalid date picker value.
func matchDay(sub domain.VerificationSubmission, date string) bool {
	if date == "" {
		return true
	}
	want, err := time.ParseInLocation("2006-01-02", date, sub.DateSubmitted.Location())
	if err != nil {
		return false
	}
	y1, m1, d1 := sub.DateSubmitted.Date()
	y2, m2, d2 := want.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
