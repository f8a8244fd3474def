package tenaly

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewWithHTTPClient(srv.URL, srv.Client(), zap.NewNop())
}

func TestLogin_Success(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Write([]byte(`{"success":true,"data":{"token":"tok-1","fullName":"Ada Obi","email":"ada@tenaly.com","role":"admin"}}`))
	})

	res, err := c.Login(context.Background(), "ada@tenaly.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "tok-1", res.Token)
	assert.Equal(t, "Ada Obi", res.FullName)
	assert.Equal(t, "admin", res.Role)
}

func TestListedAds_SendsBearerAndQuery(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/profile/admin/listed-ads", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "pending", r.URL.Query().Get("status"))

		w.Write([]byte(`{"success":true,"data":[{"_id":"a1","status":"pending"},{"_id":"a2","status":"pending"}]}`))
	})

	ads, err := c.ListedAds(context.Background(), "tok-1", "pending", "")

	require.NoError(t, err)
	require.Len(t, ads, 2)
	assert.Equal(t, "a1", ads[0].ID)
}

func TestListedAds_AllSentinelOmitsStatus(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("status"))
		w.Write([]byte(`{"success":true,"data":[]}`))
	})

	_, err := c.ListedAds(context.Background(), "tok-1", "all", "")
	require.NoError(t, err)
}

func TestUsers_DecodesPagination(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[{"_id":"u1"}],"pagination":{"total":41,"pages":5}}`))
	})

	users, page, err := c.Users(context.Background(), "tok-1", nil)

	require.NoError(t, err)
	require.Len(t, users, 1)
	require.NotNil(t, page)
	assert.Equal(t, 41, page.Total)
	assert.Equal(t, 5, page.Pages)
}

func TestDo_UpstreamRejectionBecomesAPIError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"success":false,"message":"Access denied: Admin only"}`))
	})

	err := c.ApproveAd(context.Background(), "tok-1", "a1")

	require.Error(t, err)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "Access denied: Admin only", apiErr.Message)
	assert.True(t, IsAccessDenied(err))
}

func TestDo_NonJSONErrorBodyStillMapsStatus(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})

	err := c.VerifySubmission(context.Background(), "tok-1", "v1")

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
}

func TestRejectAd_SendsReasonBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "blurry photos", body["reason"])

		w.Write([]byte(`{"success":true}`))
	})

	err := c.RejectAd(context.Background(), "tok-1", "a1", "blurry photos")
	require.NoError(t, err)
}

func TestExportAdsCSV_ReturnsRawBlob(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/profile/admin/ads/export-csv", r.URL.Path)
		w.Write([]byte("Business,Category\nEze Farms,Livestock\n"))
	})

	data, err := c.ExportAdsCSV(context.Background(), "tok-1", nil)

	require.NoError(t, err)
	assert.Contains(t, string(data), "Eze Farms")
}
