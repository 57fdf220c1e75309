package stock

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mecanica_xpto/internal/usecase/interfaces"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

var ErrMissingStockServiceURL = errors.New("missing STOCK_SERVICE_URL")

const deductionStatusConfirmed = "confirmada"

type availabilityResponse struct {
	ItemID    string `json:"item_id"`
	Available bool   `json:"disponivel"`
	Quantity  int    `json:"quantidade_solicitada"`
	OnHand    int    `json:"quantidade_em_estoque"`
}

type deductionRequest struct {
	ServiceOrderID string `json:"ordem_servico_id"`
	AttemptID      string `json:"tentativa_id,omitempty"`
	Quantity       int    `json:"quantidade"`
}

type deductionResponse struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
}

// HTTPClient talks to the inventory service over its REST API.
//
//   - GET  {base}/estoque/itens/{id}/disponibilidade?quantidade=N
//   - POST {base}/estoque/itens/{id}/baixas
//
// A deduction answered with 200 and status "confirmada" is final. 202, or any
// other status value, means the result will be delivered through the webhook.
type HTTPClient struct {
	baseURL  string
	http     *http.Client
	mockMode bool
	log      zerolog.Logger
}

var _ interfaces.IStockService = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration, mockMode bool, log zerolog.Logger) (*HTTPClient, error) {
	if mockMode {
		log.Info().Msg("[stock][client] mock mode enabled")
		return &HTTPClient{mockMode: true, log: log}, nil
	}
	if baseURL == "" {
		log.Error().Msg("[stock][client] missing STOCK_SERVICE_URL")
		return nil, ErrMissingStockServiceURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid STOCK_SERVICE_URL: %w", err)
	}
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}, nil
}

func (c *HTTPClient) CheckAvailability(ctx context.Context, itemID string, quantity int) (bool, error) {
	if c.mockMode {
		c.log.Debug().Str("item_id", itemID).Int("quantity", quantity).Msg("[stock][client] mock availability")
		return true, nil
	}

	endpoint := fmt.Sprintf("%s/estoque/itens/%s/disponibilidade?quantidade=%d", c.baseURL, url.PathEscape(itemID), quantity)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/json")

	var out availabilityResponse
	status, err := c.do(req, &out)
	if err != nil {
		return false, err
	}
	if status == http.StatusNotFound {
		return false, fmt.Errorf("%w: item %s not found", interfaces.ErrStockRejected, itemID)
	}
	c.log.Debug().Str("item_id", itemID).Int("quantity", quantity).Bool("available", out.Available).Msg("[stock][client] availability checked")
	return out.Available, nil
}

func (c *HTTPClient) DeductQuantity(ctx context.Context, serviceOrderID, attemptID, itemID string, quantity int) (interfaces.StockDeductionAck, error) {
	if c.mockMode {
		id := "mock-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		c.log.Info().Str("os_id", serviceOrderID).Str("item_id", itemID).Int("quantity", quantity).Str("request_id", id).Msg("[stock][client] mock deduction confirmed")
		return interfaces.StockDeductionAck{RequestID: id, Confirmed: true}, nil
	}

	body, err := json.Marshal(deductionRequest{ServiceOrderID: serviceOrderID, AttemptID: attemptID, Quantity: quantity})
	if err != nil {
		return interfaces.StockDeductionAck{}, err
	}
	endpoint := fmt.Sprintf("%s/estoque/itens/%s/baixas", c.baseURL, url.PathEscape(itemID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return interfaces.StockDeductionAck{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Idempotency-Key", idempotencyKey(serviceOrderID, attemptID, itemID))

	var out deductionResponse
	status, err := c.do(req, &out)
	if err != nil {
		c.log.Error().Err(err).Str("os_id", serviceOrderID).Str("item_id", itemID).Msg("[stock][client] deduction failed")
		return interfaces.StockDeductionAck{}, err
	}
	if status == http.StatusNotFound {
		return interfaces.StockDeductionAck{}, fmt.Errorf("%w: item %s not found", interfaces.ErrStockRejected, itemID)
	}

	ack := interfaces.StockDeductionAck{
		RequestID: out.RequestID,
		Confirmed: status == http.StatusOK && out.Status == deductionStatusConfirmed,
	}
	c.log.Info().Str("os_id", serviceOrderID).Str("attempt_id", attemptID).Str("item_id", itemID).Str("request_id", ack.RequestID).Bool("confirmed", ack.Confirmed).Msg("[stock][client] deduction requested")
	return ack, nil
}

// idempotencyKey scopes a deduction to its attempt so that a retried execution
// is not collapsed into the compensated one.
func idempotencyKey(serviceOrderID, attemptID, itemID string) string {
	if attemptID == "" {
		return serviceOrderID + ":" + itemID
	}
	return attemptID + ":" + itemID
}

// do sends the request and decodes a 2xx body into out. 404 is reported to
// the caller through the status; 409 and 422 are definitive refusals; any
// other non-2xx status is a transient error.
func (c *HTTPClient) do(req *http.Request, out any) (int, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return resp.StatusCode, err
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return resp.StatusCode, nil
	case resp.StatusCode == http.StatusConflict, resp.StatusCode == http.StatusUnprocessableEntity:
		return resp.StatusCode, fmt.Errorf("%w: status=%d body=%s", interfaces.ErrStockRejected, resp.StatusCode, bytes.TrimSpace(raw))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return resp.StatusCode, fmt.Errorf("stock service: status=%d body=%s", resp.StatusCode, bytes.TrimSpace(raw))
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return resp.StatusCode, fmt.Errorf("stock service: decode response: %w", err)
	}
	return resp.StatusCode, nil
}
