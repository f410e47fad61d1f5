package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dpetrovs/ember/internal/client/dto"
	"github.com/dpetrovs/ember/internal/common"
	"github.com/dpetrovs/ember/internal/logging"
)

// HTTPClient implements Client over JSON/HTTPS.
//
// On a 401 from an authenticated request it attempts a single token refresh
// via POST /auth/refresh and retries the original request once, mirroring
// the usual expired-access-token dance. Login/register 401s are credential
// rejections and are never refreshed.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger

	mu    sync.Mutex
	token string
}

// NewHTTPClient constructs an HTTPClient for the given base URL
// (e.g. "https://api.ember.example/api/v1").
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// request options for a single call.
type callOpts struct {
	// login401 marks credential-exchange endpoints, whose 401 means "bad
	// credentials", not "stale session".
	login401 bool
	// noRefresh disables the refresh-and-retry path (used by the refresh
	// call itself and by logout).
	noRefresh bool
}

func (c *HTTPClient) do(ctx context.Context, method, path string, reqBody any, opts callOpts) ([]byte, error) {
	body, status, err := c.roundTrip(ctx, method, path, reqBody)
	if err != nil {
		return nil, err
	}

	if status == http.StatusUnauthorized && !opts.login401 && !opts.noRefresh && c.Token() != "" {
		if rerr := c.refreshToken(ctx); rerr == nil {
			body, status, err = c.roundTrip(ctx, method, path, reqBody)
			if err != nil {
				return nil, err
			}
		}
	}

	if status >= 200 && status < 300 {
		return body, nil
	}
	return nil, mapStatus(status, opts.login401)
}

func (c *HTTPClient) roundTrip(ctx context.Context, method, path string, reqBody any) ([]byte, int, error) {
	var reader io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return nil, 0, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if t := c.Token(); t != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+t)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", common.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: read body: %v", common.ErrNetworkFailure, err)
	}
	return body, resp.StatusCode, nil
}

// refreshToken exchanges the current token for a fresh one. The caller
// retries the original request on success.
func (c *HTTPClient) refreshToken(ctx context.Context) error {
	body, err := c.do(ctx, http.MethodPost, "/auth/refresh", nil, callOpts{noRefresh: true})
	if err != nil {
		c.log.Warn(ctx, "token refresh failed", "error", err)
		return err
	}
	var out dto.RefreshResponseDTO
	if err := dto.Decode(body, &out); err != nil {
		return fmt.Errorf("decode refresh response: %w", err)
	}
	c.SetToken(out.Token)
	c.log.Debug(ctx, "token refreshed")
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (dto.LoginResponseDTO, error) {
	var out dto.LoginResponseDTO
	body, err := c.do(ctx, http.MethodPost, "/auth/login",
		dto.CredentialsDTO{Email: email, Password: password}, callOpts{login401: true})
	if err != nil {
		return out, err
	}
	if err := dto.Decode(body, &out); err != nil {
		return out, fmt.Errorf("decode login response: %w", err)
	}
	return out, nil
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) (dto.LoginResponseDTO, error) {
	var out dto.LoginResponseDTO
	body, err := c.do(ctx, http.MethodPost, "/auth/register",
		dto.CredentialsDTO{Email: email, Password: password}, callOpts{login401: true})
	if err != nil {
		return out, err
	}
	if err := dto.Decode(body, &out); err != nil {
		return out, fmt.Errorf("decode register response: %w", err)
	}
	return out, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	body, err := c.do(ctx, http.MethodPost, "/auth/logout", nil, callOpts{noRefresh: true})
	if err != nil {
		return err
	}
	return dto.DecodeEmpty(body)
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (dto.UserDTO, error) {
	var out dto.UserDTO
	body, err := c.do(ctx, http.MethodGet, "/users/me", nil, callOpts{})
	if err != nil {
		return out, err
	}
	if err := dto.Decode(body, &out); err != nil {
		return out, fmt.Errorf("decode current user: %w", err)
	}
	return out, nil
}

func (c *HTTPClient) DeleteAccount(ctx context.Context) error {
	body, err := c.do(ctx, http.MethodDelete, "/auth/account", nil, callOpts{})
	if err != nil {
		return err
	}
	return dto.DecodeEmpty(body)
}

func (c *HTTPClient) GetProfile(ctx context.Context) (dto.ProfileDTO, error) {
	return c.getProfile(ctx, "/profiles")
}

func (c *HTTPClient) GetProfileByID(ctx context.Context, id string) (dto.ProfileDTO, error) {
	return c.getProfile(ctx, "/profiles/"+url.PathEscape(id))
}

func (c *HTTPClient) getProfile(ctx context.Context, path string) (dto.ProfileDTO, error) {
	var out dto.ProfileDTO
	body, err := c.do(ctx, http.MethodGet, path, nil, callOpts{})
	if err != nil {
		return out, err
	}
	if err := dto.Decode(body, &out); err != nil {
		return out, fmt.Errorf("decode profile: %w", err)
	}
	return out, nil
}

func (c *HTTPClient) CreateProfile(ctx context.Context, p dto.CreateProfileDTO) (dto.ProfileDTO, error) {
	var out dto.ProfileDTO
	body, err := c.do(ctx, http.MethodPost, "/profiles", p, callOpts{})
	if err != nil {
		return out, err
	}
	if err := dto.Decode(body, &out); err != nil {
		return out, fmt.Errorf("decode created profile: %w", err)
	}
	return out, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, p dto.UpdateProfileDTO) (dto.ProfileDTO, error) {
	var out dto.ProfileDTO
	body, err := c.do(ctx, http.MethodPut, "/profiles", p, callOpts{})
	if err != nil {
		return out, err
	}
	if err := dto.Decode(body, &out); err != nil {
		return out, fmt.Errorf("decode updated profile: %w", err)
	}
	return out, nil
}

func (c *HTTPClient) DeleteProfile(ctx context.Context) error {
	body, err := c.do(ctx, http.MethodDelete, "/profiles", nil, callOpts{})
	if err != nil {
		return err
	}
	return dto.DecodeEmpty(body)
}

func (c *HTTPClient) GetFeed(ctx context.Context, page, limit int) (dto.FeedResponseDTO, error) {
	var out dto.FeedResponseDTO
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	body, err := c.do(ctx, http.MethodGet, "/users/feed?"+q.Encode(), nil, callOpts{})
	if err != nil {
		return out, err
	}
	if err := dto.Decode(body, &out); err != nil {
		return out, fmt.Errorf("decode feed: %w", err)
	}
	return out, nil
}

func (c *HTTPClient) RecordSwipe(ctx context.Context, targetUserID string, isLike bool) (dto.SwipeResponseDTO, error) {
	var out dto.SwipeResponseDTO
	body, err := c.do(ctx, http.MethodPost, "/swipes",
		dto.SwipeRequestDTO{TargetUserID: targetUserID, IsLike: isLike}, callOpts{})
	if err != nil {
		return out, err
	}
	if err := dto.Decode(body, &out); err != nil {
		return out, fmt.Errorf("decode swipe response: %w", err)
	}
	return out, nil
}

var _ Client = (*HTTPClient)(nil)
