package ui

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a minimal API client for the console. It keeps the raw session
// token and attaches it as a Cookie header itself: the server marks the
// cookie Secure, so a cookie jar would refuse to replay it over plain http
// during local use.
type Client struct {
	base  string
	http  *http.Client
	token string
}

func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

type PointsRecord struct {
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	TotalPoints int    `json:"total_points"`
	ValidDays   int    `json:"valid_days"`
}

type UserInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	if c.token != "" {
		req.Header.Set("Cookie", "session="+c.token)
	}
	return c.http.Do(req)
}

// Login authenticates and captures the session token from Set-Cookie.
func (c *Client) Login(username, password string) error {
	form := url.Values{"username": {username}, "password": {password}}
	req, err := http.NewRequest(http.MethodPost, c.base+"/api/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	for _, ck := range resp.Cookies() {
		if ck.Name == "session" {
			c.token = ck.Value
		}
	}
	if c.token == "" {
		return fmt.Errorf("server did not set a session cookie")
	}
	return nil
}

// Check returns the identity behind the current session.
func (c *Client) Check() (*UserInfo, error) {
	req, err := http.NewRequest(http.MethodGet, c.base+"/api/auth/check", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}
	var body struct {
		Authenticated bool      `json:"authenticated"`
		User          *UserInfo `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if !body.Authenticated || body.User == nil {
		return nil, fmt.Errorf("not authenticated")
	}
	return body.User, nil
}

// Leaderboard fetches the admin points listing.
func (c *Client) Leaderboard() ([]PointsRecord, error) {
	req, err := http.NewRequest(http.MethodGet, c.base+"/api/admin/points", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}
	var body struct {
		Success bool           `json:"success"`
		Data    []PointsRecord `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.Data, nil
}

func (c *Client) Logout() error {
	req, err := http.NewRequest(http.MethodPost, c.base+"/api/auth/logout", nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	c.token = ""
	return nil
}

func apiError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return fmt.Errorf("%s (status %d)", body.Error, resp.StatusCode)
	}
	return fmt.Errorf("request failed with status %d", resp.StatusCode)
}
