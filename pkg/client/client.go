package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/souqlabs/souq/pkg/domain"
)

// defaultTimeout bounds every request when the caller does not configure one.
const defaultTimeout = 30 * time.Second

// Envelope is the uniform response shape of the auth endpoints.
type Envelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	User    *domain.User `json:"user,omitempty"`
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the register payload.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate is the payload for saving profile changes.
type ProfileUpdate struct {
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	Preferences []string `json:"preferences"`
}

// Client is the storefront API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a new API client. A non-positive timeout falls back to the
// default; a nil logger discards diagnostics.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Login authenticates with email and password. A server-side refusal is
// returned as *DeniedError; anything else is a transport fault.
func (c *Client) Login(ctx context.Context, creds Credentials) (*domain.User, error) {
	user, err := c.authRequest(ctx, http.MethodPost, "/api/auth/login", creds)
	if err != nil {
		return nil, fmt.Errorf("client.Login: %w", err)
	}
	return user, nil
}

// Register creates a new account and returns the server's user record.
func (c *Client) Register(ctx context.Context, reg Registration) (*domain.User, error) {
	user, err := c.authRequest(ctx, http.MethodPost, "/api/auth/register", reg)
	if err != nil {
		return nil, fmt.Errorf("client.Register: %w", err)
	}
	return user, nil
}

// GetProfile fetches the current profile record for an email.
func (c *Client) GetProfile(ctx context.Context, email string) (*domain.User, error) {
	params := url.Values{}
	params.Set("email", email)

	user, err := c.authRequest(ctx, http.MethodGet, "/api/auth/profile?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("client.GetProfile: %w", err)
	}
	return user, nil
}

// UpdateProfile submits name and preferences wholesale and returns the
// record the server persisted.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*domain.User, error) {
	user, err := c.authRequest(ctx, http.MethodPut, "/api/auth/profile", update)
	if err != nil {
		return nil, fmt.Errorf("client.UpdateProfile: %w", err)
	}
	return user, nil
}

// authRequest issues a request against an auth endpoint and unwraps the
// envelope. success=false maps to *DeniedError; success=true without a
// decodable user record fails closed.
func (c *Client) authRequest(ctx context.Context, method, path string, body any) (*domain.User, error) {
	var env Envelope
	if err := c.doRequest(ctx, method, path, body, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &DeniedError{Message: env.Message}
	}
	if env.User == nil {
		return nil, fmt.Errorf("envelope: %w", domain.ErrInvalidUser)
	}
	return env.User, nil
}

// ProductsService groups the read-only product queries.
type ProductsService struct {
	c *Client
}

// Products returns the product query group.
func (c *Client) Products() *ProductsService {
	return &ProductsService{c: c}
}

// All fetches the whole catalog.
func (s *ProductsService) All(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := s.c.get(ctx, "/api/products", &products); err != nil {
		return nil, fmt.Errorf("client.Products.All: %w", err)
	}
	return products, nil
}

// ByID fetches a single product.
func (s *ProductsService) ByID(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := s.c.get(ctx, "/api/products/"+url.PathEscape(id), &product); err != nil {
		return nil, fmt.Errorf("client.Products.ByID: %w", err)
	}
	return &product, nil
}

// Search queries the catalog by free text.
func (s *ProductsService) Search(ctx context.Context, query string) ([]domain.Product, error) {
	params := url.Values{}
	params.Set("q", query)

	var products []domain.Product
	if err := s.c.get(ctx, "/api/products/search?"+params.Encode(), &products); err != nil {
		return nil, fmt.Errorf("client.Products.Search: %w", err)
	}
	return products, nil
}

// Recommendations fetches personalized picks for a user.
func (s *ProductsService) Recommendations(ctx context.Context, userID string) ([]domain.Product, error) {
	params := url.Values{}
	params.Set("user_id", userID)

	var products []domain.Product
	if err := s.c.get(ctx, "/api/recommendations?"+params.Encode(), &products); err != nil {
		return nil, fmt.Errorf("client.Products.Recommendations: %w", err)
	}
	return products, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any) error {
	reqID := uuid.NewString()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", reqID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("request failed", "method", method, "path", path, "request_id", reqID, "err", err)
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
		if readErr != nil {
			respBody = nil
		}
		c.logger.Error("request rejected", "method", method, "path", path,
			"request_id", reqID, "status", resp.StatusCode, "body", string(respBody))
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Error}
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.logger.Error("response malformed", "method", method, "path", path, "request_id", reqID, "err", err)
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
