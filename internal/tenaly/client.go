// Package tenaly is the REST client for the upstream Tenaly platform API.
// Every call carries the staff bearer token explicitly; the client holds no
// session state of its own.
package tenaly

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"tenalyadmin/internal/domain"
)

// Pagination is the envelope block upstream listing endpoints attach.
type Pagination struct {
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// envelope is the upstream response wrapper: {success, data, message, pagination}.
type envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Error      string          `json:"error"`
	Pagination *Pagination     `json:"pagination"`
}

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func New(baseURL string, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

// NewWithHTTPClient is used by tests to point the client at a stub server.
func NewWithHTTPClient(baseURL string, hc *http.Client, log *zap.Logger) *Client {
	return &Client{baseURL: baseURL, http: hc, log: log}
}

// -------------------- Auth --------------------

type LoginResult struct {
	Token    string `json:"token"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"login": email, "password": password}

	var res LoginResult
	if _, err := c.do(ctx, http.MethodPost, "/auth/login", "", nil, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// -------------------- Ads --------------------

// ListedAds fetches the moderation feed. status narrows the upstream query
// when it names a concrete lifecycle status; userID narrows to one seller.
// Either may be empty.
func (c *Client) ListedAds(ctx context.Context, token, status, userID string) ([]domain.Ad, error) {
	q := url.Values{}
	if status != "" && status != "all" {
		q.Set("status", status)
	}
	if userID != "" {
		q.Set("userId", userID)
	}

	var ads []domain.Ad
	if _, err := c.do(ctx, http.MethodGet, "/profile/admin/listed-ads", token, q, nil, &ads); err != nil {
		return nil, err
	}
	return ads, nil
}

func (c *Client) AdDetails(ctx context.Context, token, adID string) (*domain.AdDetails, error) {
	var ad domain.AdDetails
	if _, err := c.do(ctx, http.MethodGet, "/profile/admin/ad-details/"+url.PathEscape(adID), token, nil, nil, &ad); err != nil {
		return nil, err
	}
	return &ad, nil
}

func (c *Client) ApproveAd(ctx context.Context, token, adID string) error {
	_, err := c.do(ctx, http.MethodPatch, "/profile/admin/approve-ad/"+url.PathEscape(adID), token, nil, nil, nil)
	return err
}

func (c *Client) RejectAd(ctx context.Context, token, adID, reason string) error {
	body := map[string]string{"reason": reason}
	_, err := c.do(ctx, http.MethodPut, "/profile/admin/reject-ad/"+url.PathEscape(adID), token, nil, body, nil)
	return err
}

// ExportAdsCSV fetches the server-rendered CSV export as an opaque blob.
func (c *Client) ExportAdsCSV(ctx context.Context, token string, q url.Values) ([]byte, error) {
	return c.blob(ctx, "/profile/admin/ads/export-csv", token, q)
}

// -------------------- Users --------------------

func (c *Client) Users(ctx context.Context, token string, q url.Values) ([]domain.UserAccount, *Pagination, error) {
	var users []domain.UserAccount
	page, err := c.do(ctx, http.MethodGet, "/profile/admin/users", token, q, nil, &users)
	if err != nil {
		return nil, nil, err
	}
	return users, page, nil
}

func (c *Client) UserStats(ctx context.Context, token string) (*domain.UserStats, error) {
	var stats domain.UserStats
	if _, err := c.do(ctx, http.MethodGet, "/profile/admin/user-stats", token, nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SuspendUser toggles suspension upstream; reason travels with the request
// and is recorded when the toggle suspends.
func (c *Client) SuspendUser(ctx context.Context, token, userID, reason string) error {
	body := map[string]string{"reason": reason}
	_, err := c.do(ctx, http.MethodPatch, "/profile/admin/users/"+url.PathEscape(userID)+"/suspend", token, nil, body, nil)
	return err
}

func (c *Client) DeleteUser(ctx context.Context, token, userID, confirmEmail string) error {
	body := map[string]string{"confirmEmail": confirmEmail}
	_, err := c.do(ctx, http.MethodDelete, "/profile/admin/delete-user/"+url.PathEscape(userID), token, nil, body, nil)
	return err
}

func (c *Client) ExportUsersCSV(ctx context.Context, token string, q url.Values) ([]byte, error) {
	return c.blob(ctx, "/profile/admin/users/export", token, q)
}

// -------------------- Verification --------------------

func (c *Client) Verifications(ctx context.Context, token string) ([]domain.UserVerification, error) {
	var users []domain.UserVerification
	if _, err := c.do(ctx, http.MethodGet, "/verification/admin/verifications", token, nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) VerifySubmission(ctx context.Context, token, verificationID string) error {
	_, err := c.do(ctx, http.MethodPatch, "/verification/admin/verify/"+url.PathEscape(verificationID), token, nil, nil, nil)
	return err
}

func (c *Client) RejectSubmission(ctx context.Context, token, verificationID, reason string) error {
	body := map[string]string{"rejectionReason": reason}
	_, err := c.do(ctx, http.MethodPatch, "/verification/admin/reject/"+url.PathEscape(verificationID), token, nil, body, nil)
	return err
}

func (c *Client) ExportVerificationsCSV(ctx context.Context, token string, q url.Values) ([]byte, error) {
	return c.blob(ctx, "/verification/admin/verifications/export/csv", token, q)
}

// -------------------- transport --------------------

// do issues one JSON request. A non-2xx answer becomes an *APIError carrying
// the upstream message; transport failures come back wrapped. When out is
// non-nil the envelope's data block is decoded into it.
func (c *Client) do(ctx context.Context, method, path, token string, q url.Values, body, out any) (*Pagination, error) {
	endpoint := c.baseURL + path
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("tenaly: encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return nil, fmt.Errorf("tenaly: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tenaly: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tenaly: read response: %w", err)
	}

	var env envelope
	if len(raw) > 0 {
		// tolerate non-JSON error bodies; status handling below still applies
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Message
		if msg == "" {
			msg = env.Error
		}
		c.log.Warn("upstream rejected request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg),
		)
		return nil, &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("tenaly: decode %s: %w", path, err)
		}
	}
	return env.Pagination, nil
}

// blob fetches a raw export body without envelope decoding.
func (c *Client) blob(ctx context.Context, path, token string, q url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("tenaly: build request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tenaly: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tenaly: read export: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Status: resp.StatusCode}
	}
	return raw, nil
}
