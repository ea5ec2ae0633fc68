// Package binance implements the exchange gateway against the Binance
// USDT-M futures REST and WebSocket APIs.
package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vishal-ladwa-19/binance-trading-bot/internal/domain"
	"github.com/vishal-ladwa-19/binance-trading-bot/internal/infra"
)

// Client is the REST gateway. It is a thin authenticated call-through:
// exactly one outbound request per method call, no retries, no local state
// beyond the credentials and the shared rate limiters.
type Client struct {
	baseURL      string
	signer       *Signer
	recvWindowMs int
	httpClient   *http.Client
}

// NewClient creates a gateway against the given REST base URL.
func NewClient(baseURL string, signer *Signer, recvWindowMs int) *Client {
	return &Client{
		baseURL:      baseURL,
		signer:       signer,
		recvWindowMs: recvWindowMs,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Close wipes the credentials.
func (c *Client) Close() {
	c.signer.Wipe()
}

// SubmitOrder places one order and normalizes the response.
func (c *Client) SubmitOrder(ctx context.Context, p domain.OrderPayload) (*domain.OrderResult, error) {
	infra.GetOrderLimiter().Wait()

	params := url.Values{}
	params.Set("symbol", p.Symbol)
	params.Set("side", p.Side)
	params.Set("type", p.Type)
	params.Set("quantity", p.Quantity.String())
	if !p.Price.IsZero() {
		params.Set("price", p.Price.String())
	}
	if !p.StopPrice.IsZero() {
		params.Set("stopPrice", p.StopPrice.String())
	}
	if p.TimeInForce != "" {
		params.Set("timeInForce", p.TimeInForce)
	}
	if p.ClientOrderID != "" {
		params.Set("newClientOrderId", p.ClientOrderID)
	}

	body, err := c.signedRequest(ctx, http.MethodPost, endpointOrder, params)
	if err != nil {
		return nil, err
	}
	return decodeOrder(body)
}

// OpenOrders lists open orders, for one symbol when given, otherwise all.
func (c *Client) OpenOrders(ctx context.Context, symbol string) ([]domain.OrderResult, error) {
	infra.GetOrderLimiter().Wait()

	params := url.Values{}
	if symbol != "" {
		params.Set("symbol", symbol)
	}

	body, err := c.signedRequest(ctx, http.MethodGet, endpointOpenOrders, params)
	if err != nil {
		return nil, err
	}

	var raws []orderResponse
	if err := json.Unmarshal(body, &raws); err != nil {
		return nil, domain.NewAPIError(0, fmt.Sprintf("malformed open orders response: %v", err))
	}

	results := make([]domain.OrderResult, 0, len(raws))
	for _, raw := range raws {
		results = append(results, *toResult(raw, nil))
	}
	return results, nil
}

// CancelOrder cancels an open order by exchange order id.
func (c *Client) CancelOrder(ctx context.Context, symbol string, orderID int64) (*domain.OrderResult, error) {
	infra.GetOrderLimiter().Wait()

	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("orderId", strconv.FormatInt(orderID, 10))

	body, err := c.signedRequest(ctx, http.MethodDelete, endpointOrder, params)
	if err != nil {
		return nil, err
	}
	return decodeOrder(body)
}

// Balance returns the non-zero futures wallet balances.
func (c *Client) Balance(ctx context.Context) ([]domain.AssetBalance, error) {
	infra.GetAccountLimiter().Wait()

	body, err := c.signedRequest(ctx, http.MethodGet, endpointBalance, url.Values{})
	if err != nil {
		return nil, err
	}

	var entries []balanceEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, domain.NewAPIError(0, fmt.Sprintf("malformed balance response: %v", err))
	}

	balances := make([]domain.AssetBalance, 0, len(entries))
	for _, e := range entries {
		balances = append(balances, domain.AssetBalance{
			Asset:      e.Asset,
			Balance:    parseDecimal(e.Balance),
			Available:  parseDecimal(e.AvailableBalance),
			CrossUnPnl: parseDecimal(e.CrossUnPnl),
		})
	}
	return balances, nil
}

// Symbols returns the set of instruments currently tradable on the venue.
func (c *Client) Symbols(ctx context.Context) (map[string]struct{}, error) {
	infra.GetMarketLimiter().Wait()

	body, err := c.publicRequest(ctx, endpointExchangeInfo)
	if err != nil {
		return nil, err
	}

	var info exchangeInfoResponse
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, domain.NewAPIError(0, fmt.Sprintf("malformed exchange info: %v", err))
	}

	symbols := make(map[string]struct{}, len(info.Symbols))
	for _, s := range info.Symbols {
		if s.Status == "TRADING" {
			symbols[s.Symbol] = struct{}{}
		}
	}
	return symbols, nil
}

// ServerTime returns the exchange clock in Unix milliseconds. Used as the
// startup connectivity probe.
func (c *Client) ServerTime(ctx context.Context) (int64, error) {
	infra.GetMarketLimiter().Wait()

	body, err := c.publicRequest(ctx, endpointServerTime)
	if err != nil {
		return 0, err
	}

	var st serverTimeResponse
	if err := json.Unmarshal(body, &st); err != nil {
		return 0, domain.NewAPIError(0, fmt.Sprintf("malformed server time: %v", err))
	}
	return st.ServerTime, nil
}

// signedRequest stamps, signs and dispatches one authenticated request.
// Binance signed endpoints accept all parameters in the query string.
func (c *Client) signedRequest(ctx context.Context, method, path string, params url.Values) ([]byte, error) {
	params.Set("timestamp", strconv.FormatInt(time.Now().UnixMilli(), 10))
	params.Set("recvWindow", strconv.Itoa(c.recvWindowMs))

	reqURL := c.baseURL + path + "?" + c.signer.SignQuery(params)

	req, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
	if err != nil {
		return nil, domain.NewNetworkError(err)
	}
	req.Header.Set("X-MBX-APIKEY", c.signer.APIKey())

	return c.do(req)
}

func (c *Client) publicRequest(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, domain.NewNetworkError(err)
	}
	return c.do(req)
}

// do performs the round trip and maps failures onto the closed error
// taxonomy: transport problems become NetworkError, anything the server
// said becomes ApiError.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewNetworkError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewNetworkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Msg != "" {
			return nil, domain.NewAPIError(apiErr.Code, apiErr.Msg)
		}
		return nil, domain.NewAPIError(0, fmt.Sprintf("HTTP %d: %s", resp.StatusCode, string(body)))
	}

	return body, nil
}

func decodeOrder(body []byte) (*domain.OrderResult, error) {
	var raw orderResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, domain.NewAPIError(0, fmt.Sprintf("malformed order response: %v", err))
	}
	return toResult(raw, body), nil
}

func toResult(raw orderResponse, body []byte) *domain.OrderResult {
	return &domain.OrderResult{
		OrderID:       raw.OrderID,
		ClientOrderID: raw.ClientOrderID,
		Symbol:        raw.Symbol,
		Side:          raw.Side,
		Type:          raw.Type,
		Status:        raw.Status,
		OrigQty:       parseDecimal(raw.OrigQty),
		ExecutedQty:   parseDecimal(raw.ExecutedQty),
		AvgPrice:      parseDecimal(raw.AvgPrice),
		Price:         parseDecimal(raw.Price),
		StopPrice:     parseDecimal(raw.StopPrice),
		UpdateTimeMs:  raw.UpdateTime,
		Raw:           body,
	}
}

// parseDecimal tolerates empty or absent numeric strings from the API.
func parseDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
