package verification

import (
	"tenalyadmin/internal/domain"
	"tenalyadmin/internal/filter"
)

// ListResponse groups submissions by user, the way the review screen shows
// them. Counts cover the whole unfiltered set so the status tabs stay stable.
type ListResponse struct {
	Users            []domain.UserVerification         `json:"users"`
	Counts           map[domain.VerificationStatus]int `json:"counts"`
	TotalSubmissions int                               `json:"totalSubmissions"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

func criteriaFromQuery(search, typ, status, tab, date string) filter.VerificationCriteria {
	c := filter.VerificationCriteria{
		Search: search,
		Type:   typ,
		Status: status,
		Tab:    tab,
		Date:   date,
	}
	if c.Type == "" {
		c.Type = filter.All
	}
	if c.Status == "" {
		c.Status = filter.All
	}
	if c.Tab == "" {
		c.Tab = filter.All
	}
	return c
}
