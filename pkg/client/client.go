// Package client provides an HTTP client for the inventory service REST
// API. It is the transport layer behind the list view, return form and
// session components.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"inventory-service/internal/model"
	"inventory-service/internal/report"
)

// Client talks to the inventory service API
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      string
	Logger     *zap.Logger
}

// NewClient creates a new API client instance
func NewClient(baseURL, token string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Token:      token,
		Logger:     logger,
	}
}

// envelope is the `{data}` / `{error}` response wrapper used by every endpoint
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

// ProductInput carries the writable product fields for create and update calls
type ProductInput struct {
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Barcode         string     `json:"barcode"`
	CategoryID      uint       `json:"category_id"`
	UnitPrice       float64    `json:"unit_price"`
	CostPrice       float64    `json:"cost_price"`
	QuantityInStock int        `json:"quantity_in_stock"`
	ReorderLevel    int        `json:"reorder_level"`
	SupplierID      uint       `json:"supplier_id"`
	DateOfEntry     *time.Time `json:"date_of_entry,omitempty"`
	Size            string     `json:"size,omitempty"`
	Color           string     `json:"color,omitempty"`
	Material        string     `json:"material,omitempty"`
	StyleDesign     string     `json:"style_design,omitempty"`
	ProductImage    string     `json:"product_image,omitempty"`
	Dimensions      string     `json:"dimensions,omitempty"`
	Weight          float64    `json:"weight,omitempty"`
	Brand           string     `json:"brand,omitempty"`
	Season          string     `json:"season,omitempty"`
	ExpirationDate  *time.Time `json:"expiration_date,omitempty"`
	Status          string     `json:"status,omitempty"`
	Location        string     `json:"location,omitempty"`
	Discount        float64    `json:"discount,omitempty"`
}

// ReturnInput is a product return record ready for submission. The ID field
// references a product or a sales order depending on Type.
type ReturnInput struct {
	UserID      uint               `json:"user_id"`
	ID          uint               `json:"id"`
	Type        model.ReturnType   `json:"type"`
	Quantity    int                `json:"quantity"`
	Reason      model.ReturnReason `json:"reason"`
	OtherReason string             `json:"otherReason,omitempty"`
}

// ListProducts fetches the full product collection
func (c *Client) ListProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetProduct fetches a single product by ID
func (c *Client) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	path := "/products/" + strconv.FormatUint(uint64(id), 10)
	if err := c.do(ctx, http.MethodGet, path, nil, &product); err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return &product, nil
}

// CreateProduct inserts a new product into the collection
func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (*model.Product, error) {
	var product model.Product
	if err := c.do(ctx, http.MethodPost, "/products", in, &product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &product, nil
}

// UpdateProduct replaces an existing product
func (c *Client) UpdateProduct(ctx context.Context, id uint, in ProductInput) (*model.Product, error) {
	var product model.Product
	path := "/products/" + strconv.FormatUint(uint64(id), 10)
	if err := c.do(ctx, http.MethodPut, path, in, &product); err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}
	return &product, nil
}

// DeleteProduct removes a product from the collection
func (c *Client) DeleteProduct(ctx context.Context, id uint) error {
	path := "/products/" + strconv.FormatUint(uint64(id), 10)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}

// ListActivities fetches the recent-activity feed, most recent first
func (c *Client) ListActivities(ctx context.Context) ([]model.UserActivityLog, error) {
	var activities []model.UserActivityLog
	if err := c.do(ctx, http.MethodGet, "/recent-activity", nil, &activities); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

// CreateActivity appends an entry to the activity log and reports the
// response status so callers can distinguish a created entry
func (c *Client) CreateActivity(ctx context.Context, userID uint, action, details string) (int, error) {
	body := map[string]interface{}{
		"user_id": userID,
		"action":  action,
		"details": details,
	}
	status, err := c.doStatus(ctx, http.MethodPost, "/recent-activity", body, nil)
	if err != nil {
		return status, fmt.Errorf("create activity: %w", err)
	}
	return status, nil
}

// CreateReturn submits a product return record
func (c *Client) CreateReturn(ctx context.Context, in ReturnInput) (*model.ProductReturn, error) {
	var ret model.ProductReturn
	if err := c.do(ctx, http.MethodPost, "/product-returns", in, &ret); err != nil {
		return nil, fmt.Errorf("create return: %w", err)
	}
	return &ret, nil
}

// ReturnsReport fetches monthly return aggregates for the given date range
func (c *Client) ReturnsReport(ctx context.Context, startDate, endDate time.Time) ([]report.Row, error) {
	q := url.Values{}
	q.Set("startDate", startDate.Format("2006-01-02"))
	q.Set("endDate", endDate.Format("2006-01-02"))

	var rows []report.Row
	if err := c.do(ctx, http.MethodGet, "/api/product-returns-report?"+q.Encode(), nil, &rows); err != nil {
		return nil, fmt.Errorf("returns report: %w", err)
	}
	return rows, nil
}

// do issues a request and decodes the enveloped response data into out
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	_, err := c.doStatus(ctx, method, path, body, out)
	return err
}

func (c *Client) doStatus(ctx context.Context, method, path string, body, out interface{}) (int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Error("API request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Logger.Error("Failed to read response body", zap.Error(err))
		return resp.StatusCode, err
	}

	var env envelope
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &env); err != nil {
			c.Logger.Error("Failed to parse response",
				zap.Int("status", resp.StatusCode),
				zap.Error(err))
			return resp.StatusCode, fmt.Errorf("unexpected response: %d %s", resp.StatusCode, string(respBody))
		}
	}

	if resp.StatusCode >= 400 {
		c.Logger.Error("API request returned error status",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("error", env.Error))
		if env.Error != "" {
			return resp.StatusCode, fmt.Errorf("%s", env.Error)
		}
		return resp.StatusCode, fmt.Errorf("request failed: %d %s", resp.StatusCode, string(respBody))
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			c.Logger.Error("Failed to decode response data", zap.Error(err))
			return resp.StatusCode, err
		}
	}

	return resp.StatusCode, nil
}
