package domain

import (
	"encoding/json"
	"time"
)

type AdStatus string

const (
	AdPending  AdStatus = "pending"
	AdApproved AdStatus = "approved"
	AdRejected AdStatus = "rejected"
	AdSold     AdStatus = "sold"
)

// AdStatuses lists every lifecycle status an ad can be in, in tab order.
var AdStatuses = []AdStatus{AdPending, AdApproved, AdRejected, AdSold}

// Ad is one listing row as the upstream API returns it from listed-ads.
// The upstream is inconsistent about the schema tag (adType on list rows,
// adCategory on detail records); both are kept here and resolved by Normalize.
type Ad struct {
	ID              string     `json:"_id"`
	UserID          string     `json:"userId"`
	UserName        string     `json:"userName"`
	BusinessID      string     `json:"businessId"`
	BusinessName    string     `json:"businessName"`
	Category        string     `json:"category"`
	AdType          string     `json:"adType"`
	AdCategory      string     `json:"adCategory"`
	Status          AdStatus   `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	ApprovedAt      *time.Time `json:"approvedAt"`
	RejectedAt      *time.Time `json:"rejectedAt"`
	RejectionReason string     `json:"rejectionReason"`
}

// FlattenedAd is the canonical display row for the ads table. Category is the
// free-text label the seller chose; AdCategory is the closed-set tag that
// selects the attribute schema. The two are distinct and never merged.
type FlattenedAd struct {
	ID              string     `json:"_id"`
	UserID          string     `json:"userId"`
	UserName        string     `json:"userName"`
	BusinessID      string     `json:"businessId"`
	BusinessName    string     `json:"businessName"`
	Category        string     `json:"category"`
	AdCategory      string     `json:"adCategory"`
	Status          AdStatus   `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	ApprovedAt      *time.Time `json:"approvedAt"`
	RejectedAt      *time.Time `json:"rejectedAt"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
}

// Normalize maps a raw upstream ad onto the canonical display shape. It is a
// pure function and never fails: missing optional fields stay zero-valued.
func Normalize(raw Ad) FlattenedAd {
	tag := raw.AdCategory
	if tag == "" {
		tag = raw.AdType
	}

	userName := raw.UserName
	if userName == "" {
		userName = raw.BusinessName
	}

	status := raw.Status
	if status == "" {
		status = AdPending
	}

	return FlattenedAd{
		ID:              raw.ID,
		UserID:          raw.UserID,
		UserName:        userName,
		BusinessID:      raw.BusinessID,
		BusinessName:    raw.BusinessName,
		Category:        raw.Category,
		AdCategory:      tag,
		Status:          status,
		CreatedAt:       raw.CreatedAt,
		ApprovedAt:      raw.ApprovedAt,
		RejectedAt:      raw.RejectedAt,
		RejectionReason: raw.RejectionReason,
	}
}

// NormalizeAll maps a whole upstream page, preserving order.
func NormalizeAll(raw []Ad) []FlattenedAd {
	out := make([]FlattenedAd, 0, len(raw))
	for _, ad := range raw {
		out = append(out, Normalize(ad))
	}
	return out
}

// BulkPriceTier is one entry of the composite bulkPrice attribute.
type BulkPriceTier struct {
	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit"`
	AmountPerUnit float64 `json:"amountPerUnit"`
}

// AdDetails is the full ad record from ad-details/{id}. Common fields are
// typed; the open bag of category-specific attributes is kept in Attrs and
// projected through the category schema.
type AdDetails struct {
	ID              string     `json:"_id"`
	AdCategory      string     `json:"adCategory"`
	Category        string     `json:"category"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Amount          float64    `json:"amount"`
	Location        string     `json:"location"`
	Negotiation     string     `json:"negotiation"`
	Plan            string     `json:"plan"`
	PaymentStatus   string     `json:"paymentStatus"`
	UserID          string     `json:"userId"`
	UserName        string     `json:"userName"`
	UserEmail       string     `json:"userEmail"`
	UserPhone       string     `json:"userPhone"`
	BusinessID      string     `json:"businessId"`
	BusinessName    string     `json:"businessName"`
	Status          AdStatus   `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	ApprovedAt      *time.Time `json:"approvedAt"`
	RejectedAt      *time.Time `json:"rejectedAt"`
	RejectionReason string     `json:"rejectionReason"`
	RejectedBy      string     `json:"rejectedBy"`
	PriorityScore   float64    `json:"priorityScore"`
	ViewCount       int        `json:"viewCount"`
	UniqueViewCount int        `json:"uniqueViewCount"`
	Images          []string   `json:"images"`

	Attrs map[string]any `json:"-"`
}

// UnmarshalJSON decodes the typed fields and keeps the full document as the
// attribute bag, so schema lookups see every category-specific key the
// upstream happened to populate.
func (d *AdDetails) UnmarshalJSON(data []byte) error {
	type plain AdDetails
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var bag map[string]any
	if err := json.Unmarshal(data, &bag); err != nil {
		return err
	}

	p.Attrs = bag
	*d = AdDetails(p)
	return nil
}
