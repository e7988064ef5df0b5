package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/meridianhr/console-backend-go/internal/config"
)

// Client wraps the resource-oriented HTTP API exposed by the HR/ERP backend.
// Every doctype is reachable under /api/resource/{doctype}; whitelisted RPC
// methods live under /api/method/{name}. The console authenticates with a
// token header built from an API key/secret pair.
type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
}

// NewClient creates a client for the ERP backend
func NewClient(cfg config.ERPConfig) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// APIError represents an error response from the ERP backend
type APIError struct {
	StatusCode int
	ExcType    string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("erp API error [%d] %s: %s", e.StatusCode, e.ExcType, e.Message)
}

// ListOptions narrows a doctype listing. Filters use the backend's triplet
// form, e.g. {"employee", "=", "HR-EMP-001"}.
type ListOptions struct {
	Fields  []string
	Filters [][]any
	OrderBy string
	Limit   int
}

// GetList fetches documents of the given doctype into out
func (c *Client) GetList(ctx context.Context, doctype string, opts ListOptions, out any) error {
	query := url.Values{}
	if len(opts.Fields) > 0 {
		fields, err := json.Marshal(opts.Fields)
		if err != nil {
			return fmt.Errorf("encode fields: %w", err)
		}
		query.Set("fields", string(fields))
	}
	if len(opts.Filters) > 0 {
		filters, err := json.Marshal(opts.Filters)
		if err != nil {
			return fmt.Errorf("encode filters: %w", err)
		}
		query.Set("filters", string(filters))
	}
	if opts.OrderBy != "" {
		query.Set("order_by", opts.OrderBy)
	}
	if opts.Limit > 0 {
		query.Set("limit_page_length", strconv.Itoa(opts.Limit))
	}

	return c.do(ctx, http.MethodGet, "/api/resource/"+url.PathEscape(doctype), query, nil, out)
}

// GetDoc fetches a single document by name into out
func (c *Client) GetDoc(ctx context.Context, doctype, name string, out any) error {
	path := "/api/resource/" + url.PathEscape(doctype) + "/" + url.PathEscape(name)
	return c.do(ctx, http.MethodGet, path, nil, nil, out)
}

// CreateDoc creates a new document of the given doctype. The backend enforces
// its own uniqueness rules and answers with a conflict-flavored error when a
// duplicate would result.
func (c *Client) CreateDoc(ctx context.Context, doctype string, doc, out any) error {
	return c.do(ctx, http.MethodPost, "/api/resource/"+url.PathEscape(doctype), nil, doc, out)
}

// LoggedUser verifies an API key/secret pair against the backend and returns
// the user it belongs to. Used by the console login flow; the console stores
// no credentials of its own.
func (c *Client) LoggedUser(ctx context.Context, apiKey, apiSecret string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/method/frappe.auth.get_logged_user", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "token "+apiKey+":"+apiSecret)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erp request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", parseAPIError(resp.StatusCode, body)
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode erp response: %w", err)
	}
	return payload.Message, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "token "+c.apiKey+":"+c.apiSecret)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erp request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return parseAPIError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}

	// Resource endpoints wrap the document(s) in a "data" envelope.
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("decode erp response: %w", err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode erp document: %w", err)
	}
	return nil
}

func parseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	var payload struct {
		ExcType   string `json:"exc_type"`
		Exception string `json:"exception"`
		Message   string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.ExcType = payload.ExcType
		switch {
		case payload.Exception != "":
			apiErr.Message = payload.Exception
		case payload.Message != "":
			apiErr.Message = payload.Message
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = string(body)
	}
	return apiErr
}
