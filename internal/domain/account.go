package domain

import "time"

type AccountRole string

const (
	RoleBuyer    AccountRole = "buyer"
	RoleSeller   AccountRole = "seller"
	RoleCustomer AccountRole = "customer"
	RoleAdmin    AccountRole = "admin"
)

// UserAccount is one platform account row from the users listing. Filtering
// and pagination for this entity happen upstream; this side only carries the
// page that came back.
type UserAccount struct {
	ID            string      `json:"_id"`
	FullName      string      `json:"fullName"`
	Email         string      `json:"email"`
	PhoneNumber   string      `json:"phoneNumber"`
	Role          AccountRole `json:"role"`
	Image         string      `json:"image,omitempty"`
	Subscription  string      `json:"subscription"`
	IsVerified    bool        `json:"isVerified"`
	IsSuspended   bool        `json:"isSuspended"`
	BusinessCount int         `json:"businessCount"`
	DateJoined    time.Time   `json:"dateJoined"`
}

// UserStats is the aggregate block behind the overview cards. Owned and
// computed upstream; passed through verbatim.
type UserStats struct {
	TotalUsers    int `json:"totalUsers"`
	RoleBreakdown struct {
		Buyer    int `json:"buyer"`
		Seller   int `json:"seller"`
		Admin    int `json:"admin"`
		Customer int `json:"customer"`
	} `json:"roleBreakdown"`
	ProviderBreakdown struct {
		Local  int `json:"local"`
		Google int `json:"google"`
	} `json:"providerBreakdown"`
	VerifiedUsers    int `json:"verifiedUsers"`
	CompleteProfiles int `json:"completeProfiles"`
	RecentActivity   struct {
		Today      int `json:"today"`
		Last7Days  int `json:"last7Days"`
		Last30Days int `json:"last30Days"`
	} `json:"recentActivity"`
}
