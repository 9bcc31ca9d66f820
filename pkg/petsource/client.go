// Package petsource is the client for the third-party adoption catalog
// REST endpoint. Authentication uses OAuth2 client credentials; the access
// token lives in an explicit cache struct with an injected clock instead of
// package-level state.
package petsource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pawhub/pawhub/errors"
)

const defaultPageSize = 100

// Config carries everything the client needs. HTTPClient and Now are
// injectable for tests and default to http.DefaultClient / time.Now.
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	PageSize     int
	HTTPClient   *http.Client
	Now          func() time.Time
}

// Client talks to the upstream catalog
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	pageSize     int
	httpClient   *http.Client
	token        *tokenCache
}

// New creates a client from config
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		pageSize:     pageSize,
		httpClient:   httpClient,
		token:        newTokenCache(now),
	}
}

// Animal is one upstream listing
type Animal struct {
	ID             int64  `json:"id"`
	OrganizationID string `json:"organization_id"`
	Type           string `json:"type"`
	Name           string `json:"name"`
	Gender         string `json:"gender"`
	Age            string `json:"age"`
	Size           string `json:"size"`
	Description    string `json:"description"`
	Status         string `json:"status"`
	Breeds         struct {
		Primary string `json:"primary"`
	} `json:"breeds"`
	Photos []struct {
		Medium string `json:"medium"`
		Full   string `json:"full"`
	} `json:"photos"`
}

// PhotoURL returns the best available photo, empty when none was published
func (a Animal) PhotoURL() string {
	if len(a.Photos) == 0 {
		return ""
	}
	if a.Photos[0].Medium != "" {
		return a.Photos[0].Medium
	}
	return a.Photos[0].Full
}

// Organization is one upstream shelter
type Organization struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address struct {
		City string `json:"city"`
	} `json:"address"`
}

// AnimalPage is one page of upstream listings
type AnimalPage struct {
	Animals    []Animal `json:"animals"`
	Pagination struct {
		CurrentPage int `json:"current_page"`
		TotalPages  int `json:"total_pages"`
		TotalCount  int `json:"total_count"`
	} `json:"pagination"`
}

type organizationPage struct {
	Organizations []Organization `json:"organizations"`
	Pagination    struct {
		CurrentPage int `json:"current_page"`
		TotalPages  int `json:"total_pages"`
	} `json:"pagination"`
}

// ListAnimals fetches one page of listings
func (c *Client) ListAnimals(ctx context.Context, page int) (*AnimalPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(c.pageSize))

	var result AnimalPage
	if err := c.get(ctx, "/v2/animals", query, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// ListOrganizations fetches one page of shelters
func (c *Client) ListOrganizations(ctx context.Context, page int) ([]Organization, int, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(c.pageSize))

	var result organizationPage
	if err := c.get(ctx, "/v2/organizations", query, &result); err != nil {
		return nil, 0, err
	}

	return result.Organizations, result.Pagination.TotalPages, nil
}

// get performs an authenticated GET, refreshing the token when the cache
// has expired
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	token, err := c.token.get(func() (string, time.Duration, error) {
		return c.fetchToken(ctx)
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(errors.UpstreamBadResponse, err.Error())
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		// token revoked server-side; drop it so the next call re-auths
		c.token.invalidate()
		return errors.UpstreamUnauthorized
	case resp.StatusCode != http.StatusOK:
		return errors.Wrapf(errors.UpstreamBadResponse, "GET %s: status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(errors.UpstreamBadResponse, err.Error())
	}

	return nil
}

type tokenResponse struct {
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	AccessToken string `json:"access_token"`
}

// fetchToken exchanges client credentials for an access token
func (c *Client) fetchToken(ctx context.Context) (string, time.Duration, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, errors.Wrap(errors.UpstreamBadResponse, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", 0, errors.UpstreamUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return "", 0, errors.Wrapf(errors.UpstreamBadResponse, "token endpoint status %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", 0, errors.Wrap(errors.UpstreamBadResponse, err.Error())
	}
	if tr.AccessToken == "" {
		return "", 0, fmt.Errorf("%w: empty access token", errors.UpstreamBadResponse)
	}

	return tr.AccessToken, time.Duration(tr.ExpiresIn) * time.Second, nil
}
