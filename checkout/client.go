package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sonmartinn/125SaleIphone-FE/models"
)

// Client talks to the shop API's payment/order endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// checkoutResponse covers every body the endpoint is known to produce:
// the standard confirmation, the gateway handoff, and the structured error.
type checkoutResponse struct {
	OrderID    models.FlexString `json:"order_id"`
	ID         models.FlexString `json:"id"`
	PaymentURL string            `json:"payment_url"`
	Message    string            `json:"message"`
}

// CreateOrder submits the order and decodes whichever success shape comes
// back. Errors are classified: ErrAuthExpired for a rejected token,
// *BusinessRejection for a structured refusal, *TransportError for
// everything infrastructural (unreachable, timeout, non-JSON body).
func (c *Client) CreateOrder(ctx context.Context, token string, req models.CheckoutRequest) (models.CheckoutResult, error) {
	body, err := c.postJSON(ctx, "/payment/checkout", token, req)
	if err != nil {
		return models.CheckoutResult{}, err
	}

	var resp checkoutResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return models.CheckoutResult{}, &TransportError{Message: "order API returned malformed JSON", Err: err}
	}

	orderID := string(resp.OrderID)
	if orderID == "" {
		orderID = string(resp.ID)
	}
	if orderID == "" && resp.PaymentURL == "" {
		return models.CheckoutResult{}, &TransportError{Message: "order API response has neither an order id nor a payment URL"}
	}
	return models.CheckoutResult{OrderID: orderID, PaymentURL: resp.PaymentURL}, nil
}

// Orders fetches the authenticated user's order history.
func (c *Client) Orders(ctx context.Context, token string) ([]models.Order, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/orders", nil)
	if err != nil {
		return nil, err
	}
	setHeaders(httpReq, token)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Message: "failed to reach order API", Err: err}
	}
	defer httpResp.Body.Close()

	body, err := classify(httpResp)
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, &TransportError{Message: "order history is malformed JSON", Err: err}
	}
	return orders, nil
}

func (c *Client) postJSON(ctx context.Context, path, token string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	setHeaders(httpReq, token)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Message: "failed to reach order API", Err: err}
	}
	defer httpResp.Body.Close()

	return classify(httpResp)
}

// classify splits the response into the error taxonomy. A non-JSON body is
// an infrastructure problem regardless of status; a JSON {message} with a
// non-2xx status is the server rejecting the order.
func classify(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Message: "failed to read response", Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrAuthExpired
	}

	if !strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		return nil, &TransportError{
			Message: fmt.Sprintf("order API returned non-JSON (status %d)", resp.StatusCode),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &apiErr)
		if apiErr.Message == "" {
			apiErr.Message = "order submission failed"
		}
		return nil, &BusinessRejection{Status: resp.StatusCode, Message: apiErr.Message}
	}

	return body, nil
}

func setHeaders(req *http.Request, token string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}
