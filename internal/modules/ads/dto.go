package ads

import (
	"tenalyadmin/internal/domain"
	"tenalyadmin/internal/filter"
	"tenalyadmin/internal/schema"
)

// ListResponse is the ads table payload. Counts are computed over the whole
// unfiltered set so the status tabs stay stable while filters are applied.
type ListResponse struct {
	Ads    []domain.FlattenedAd    `json:"ads"`
	Counts map[domain.AdStatus]int `json:"counts"`
	Total  int                     `json:"total"`
}

// DetailResponse pairs the raw ad record with its schema-projected rows,
// ready to render as a label/value detail table.
type DetailResponse struct {
	Ad   *domain.AdDetails `json:"ad"`
	Rows []schema.Row      `json:"rows"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

// criteriaFromQuery binds the table filter controls from the query string.
func criteriaFromQuery(status, category, search, dateRange string) filter.AdCriteria {
	c := filter.AdCriteria{
		Status:    status,
		Category:  category,
		Search:    search,
		DateRange: dateRange,
	}
	if c.Status == "" {
		c.Status = filter.All
	}
	if c.Category == "" {
		c.Category = filter.All
	}
	if c.DateRange == "" {
		c.DateRange = filter.DateAll
	}
	return c
}
