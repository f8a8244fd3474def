package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tenalyadmin/internal/domain"
)

var adsNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func sampleAds() []domain.FlattenedAd {
	return []domain.FlattenedAd{
		{ID: "a1", UserName: "Chidi Okafor", BusinessName: "Okafor Motors", Category: "Cars", AdCategory: "vehicle", Status: domain.AdPending, CreatedAt: adsNow.Add(-2 * time.Hour)},
		{ID: "a2", UserName: "Amaka Eze", BusinessName: "Eze Farms", Category: "Livestock", AdCategory: "agriculture", Status: domain.AdApproved, CreatedAt: adsNow.AddDate(0, 0, -3)},
		{ID: "a3", UserName: "Tunde Bello", BusinessName: "Bello Gadgets", Category: "Phones", AdCategory: "gadget", Status: domain.AdRejected, CreatedAt: adsNow.AddDate(0, 0, -20)},
		{ID: "a4", UserName: "Chidi Okafor", BusinessName: "Okafor Motors", Category: "Trucks", AdCategory: "vehicle", Status: domain.AdApproved, CreatedAt: adsNow.AddDate(0, -2, 0)},
	}
}

func allCriteria() AdCriteria {
	return AdCriteria{Status: All, Category: All, Search: "", DateRange: DateAll}
}

func TestAds_AllCriteriaReturnsEverythingInOrder(t *testing.T) {
	ads := sampleAds()

	got := Ads(ads, allCriteria(), adsNow)

	assert.Equal(t, ads, got)
}

func TestAds_StatusAndSearchCombineWithAnd(t *testing.T) {
	c := allCriteria()
	c.Status = "approved"
	c.Search = "okafor"

	got := Ads(sampleAds(), c, adsNow)

	assert.Len(t, got, 1)
	assert.Equal(t, "a4", got[0].ID)
}

func TestAds_SearchMatchesBusinessNameAndCategory(t *testing.T) {
	c := allCriteria()
	c.Search = "eze farms"
	assert.Len(t, Ads(sampleAds(), c, adsNow), 1)

	c.Search = "phones"
	got := Ads(sampleAds(), c, adsNow)
	assert.Len(t, got, 1)
	assert.Equal(t, "a3", got[0].ID)
}

func TestAds_CategoryMatchIsCaseInsensitive(t *testing.T) {
	c := allCriteria()
	c.Category = "Vehicle"

	got := Ads(sampleAds(), c, adsNow)

	assert.Len(t, got, 2)
	assert.Equal(t, "a1", got[0].ID)
	assert.Equal(t, "a4", got[1].ID)
}

func TestAds_DateWindows(t *testing.T) {
	cases := []struct {
		dateRange string
		wantIDs   []string
	}{
		{DateToday, []string{"a1"}},
		{DateWeek, []string{"a1", "a2"}},
		{DateMonth, []string{"a1", "a2", "a3"}},
		{DateAll, []string{"a1", "a2", "a3", "a4"}},
		{"fortnight", []string{"a1", "a2", "a3", "a4"}}, // unknown selector matches all
	}

	for _, tc := range cases {
		c := allCriteria()
		c.DateRange = tc.dateRange

		got := Ads(sampleAds(), c, adsNow)

		ids := make([]string, 0, len(got))
		for _, ad := range got {
			ids = append(ids, ad.ID)
		}
		assert.Equal(t, tc.wantIDs, ids, "dateRange=%s", tc.dateRange)
	}
}

func TestAds_FilteringIsIdempotent(t *testing.T) {
	c := allCriteria()
	c.Status = "approved"

	once := Ads(sampleAds(), c, adsNow)
	twice := Ads(once, c, adsNow)

	assert.Equal(t, once, twice)
}

func TestCountsByStatus_AlwaysHasAllFourStatuses(t *testing.T) {
	counts := CountsByStatus(nil)

	assert.Len(t, counts, 4)
	for _, status := range domain.AdStatuses {
		assert.Equal(t, 0, counts[status])
	}
}

func TestCountsByStatus_CountsUnfilteredSet(t *testing.T) {
	counts := CountsByStatus(sampleAds())

	assert.Equal(t, 1, counts[domain.AdPending])
	assert.Equal(t, 2, counts[domain.AdApproved])
	assert.Equal(t, 1, counts[domain.AdRejected])
	assert.Equal(t, 0, counts[domain.AdSold])
}

func TestWindowStart_StartsAtMidnight(t *testing.T) {
	start := WindowStart(DateToday, adsNow)

	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), start)
	assert.True(t, WindowStart(DateAll, adsNow).IsZero())
}
