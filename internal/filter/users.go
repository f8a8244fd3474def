package filter

import (
	"net/url"
	"strconv"
)

// UserFilters is the state of the user listing filters. All filtering and
// sorting for accounts is delegated to the upstream API; this side only
// assembles the query and interprets the paginated envelope.
type UserFilters struct {
	Search       string `form:"search"`
	Subscription string `form:"subscription"`
	UserType     string `form:"userType"`
	Status       string `form:"status"`
}

// PageRequest is the requested page window.
type PageRequest struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// PageState is the window plus upstream totals, rendered under the listing.
type PageState struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// Clamp normalizes out-of-range page requests: page >= 1, limit in (0, 100].
func (p PageRequest) Clamp() PageRequest {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 10
	}
	return p
}

// BuildUserQuery maps filter state to upstream query parameters. "all"
// sentinels and empty strings are omitted rather than sent literally, so the
// upstream query is never over-constrained.
func BuildUserQuery(f UserFilters, p PageRequest) url.Values {
	p = p.Clamp()

	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(p.Limit))

	setUnlessAll(q, "search", f.Search)
	setUnlessAll(q, "subscription", f.Subscription)
	setUnlessAll(q, "userType", f.UserType)
	setUnlessAll(q, "status", f.Status)
	return q
}

func setUnlessAll(q url.Values, key, value string) {
	if value == "" || value == All {
		return
	}
	q.Set(key, value)
}

// InterpretPage folds the upstream pagination block into the requested
// window. A missing block leaves totals at zero rather than failing.
func InterpretPage(p PageRequest, total, pages int) PageState {
	p = p.Clamp()
	return PageState{
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
		Pages: pages,
	}
}
