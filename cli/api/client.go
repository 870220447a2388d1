package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/FM1201/aijohub/pkg/config"
	"github.com/FM1201/aijohub/pkg/logger"
)

const (
	loginPath    = "/api/auth/login"
	supplierPath = "/api/supplier-kain"
)

// Client is a stateless facade over the Aijo Hub backend. It holds no
// session: every call except Login takes the bearer token from the caller.
type Client struct {
	http *resty.Client
}

// NewClient builds a client against the configured backend.
func NewClient(cfg *config.Config) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.API.BaseURL).
		SetTimeout(cfg.API.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Client{http: httpClient}
}

// Login exchanges credentials for a bearer token. Any failure, including
// transport failures and responses lacking a token, comes back as *AuthError.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	log := logger.FromContext(ctx)

	var out loginResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(loginRequest{Username: username, Password: password}).
		SetResult(&out).
		Post(loginPath)
	if err != nil {
		return "", &AuthError{Message: fmt.Sprintf("unable to reach server: %v", err)}
	}
	if resp.IsError() {
		return "", &AuthError{
			Status:  resp.StatusCode(),
			Message: messageFromBody(resp.Body(), "invalid credentials"),
		}
	}
	if out.Token == "" {
		return "", &AuthError{Status: resp.StatusCode(), Message: "missing token in response"}
	}

	log.Debug("login succeeded", "username", username)
	return out.Token, nil
}

// List fetches every supplier record.
func (c *Client) List(ctx context.Context, token string) ([]Supplier, error) {
	var out []Supplier
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&out).
		Get(supplierPath)
	if err != nil {
		return nil, &FetchError{Message: "unable to reach server", Err: err}
	}
	if resp.IsError() {
		return nil, &FetchError{
			Status:  resp.StatusCode(),
			Message: messageFromBody(resp.Body(), "failed to load suppliers"),
		}
	}
	logger.FromContext(ctx).Debug("suppliers fetched", "count", len(out))
	return out, nil
}

// Search fetches suppliers matching the filter. All three parameters are
// always sent; the backend treats empty values as no constraint, so an
// all-empty filter returns the same set as List.
func (c *Client) Search(ctx context.Context, token string, filter SearchFilter) ([]Supplier, error) {
	var out []Supplier
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParam("nama", filter.Nama).
		SetQueryParam("alamat", filter.Alamat).
		SetQueryParam("telepon", filter.Telepon).
		SetResult(&out).
		Get(supplierPath + "/search")
	if err != nil {
		return nil, &FetchError{Message: "unable to reach server", Err: err}
	}
	if resp.IsError() {
		return nil, &FetchError{
			Status:  resp.StatusCode(),
			Message: messageFromBody(resp.Body(), "search failed"),
		}
	}
	logger.FromContext(ctx).Debug("supplier search completed", "count", len(out))
	return out, nil
}

// Create posts a new supplier and returns the record with its assigned ID.
// Any ID on the input is dropped before sending.
func (c *Client) Create(ctx context.Context, token string, s Supplier) (Supplier, error) {
	s.ID = ""
	var out Supplier
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(s).
		SetResult(&out).
		Post(supplierPath)
	if err != nil {
		return Supplier{}, &SaveError{Message: "unable to reach server", Err: err}
	}
	if resp.IsError() {
		return Supplier{}, &SaveError{
			Status:  resp.StatusCode(),
			Message: messageFromBody(resp.Body(), "failed to save supplier"),
		}
	}
	logger.FromContext(ctx).Debug("supplier created", "id", out.ID)
	return out, nil
}

// Update replaces the supplier with the given id. Partial patches are not
// supported by the backend; the full record is sent.
func (c *Client) Update(ctx context.Context, token, id string, s Supplier) (Supplier, error) {
	var out Supplier
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(s).
		SetResult(&out).
		Put(fmt.Sprintf("%s/%s", supplierPath, id))
	if err != nil {
		return Supplier{}, &SaveError{Message: "unable to reach server", Err: err}
	}
	if resp.IsError() {
		return Supplier{}, &SaveError{
			Status:  resp.StatusCode(),
			Message: messageFromBody(resp.Body(), "failed to update supplier"),
		}
	}
	logger.FromContext(ctx).Debug("supplier updated", "id", id)
	return out, nil
}

// messageFromBody extracts the backend's message field from an error
// response body, falling back when the body is empty or not JSON.
func messageFromBody(body []byte, fallback string) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return fallback
}

// StatusOf returns the HTTP status carried by a typed API error, or 0 for
// transport failures and non-API errors.
func StatusOf(err error) int {
	switch e := err.(type) {
	case *AuthError:
		return e.Status
	case *FetchError:
		return e.Status
	case *SaveError:
		return e.Status
	default:
		return 0
	}
}
