package users

import (
	"strconv"

	"tenalyadmin/internal/domain"
	"tenalyadmin/internal/filter"
)

// ListResponse is one server-side page of the user directory.
type ListResponse struct {
	Users []domain.UserAccount `json:"users"`
	Page  filter.PageState     `json:"page"`
}

type SuspendRequest struct {
	Suspend bool   `json:"suspend"`
	Reason  string `json:"reason"`
}

// DeleteRequest carries the account email and the admin's typed confirmation.
// The two must match before anything is sent upstream.
type DeleteRequest struct {
	Email        string `json:"email" binding:"required"`
	ConfirmEmail string `json:"confirmEmail" binding:"required"`
}

func filtersFromQuery(search, subscription, userType, status string) filter.UserFilters {
	return filter.UserFilters{
		Search:       search,
		Subscription: subscription,
		UserType:     userType,
		Status:       status,
	}
}

func pageFromQuery(page, limit string) filter.PageRequest {
	p, _ := strconv.Atoi(page)
	l, _ := strconv.Atoi(limit)
	return filter.PageRequest{Page: p, Limit: l}.Clamp()
}
