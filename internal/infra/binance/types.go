package binance

// Binance USDT-M futures REST endpoints.
const (
	endpointOrder        = "/fapi/v1/order"
	endpointOpenOrders   = "/fapi/v1/openOrders"
	endpointBalance      = "/fapi/v2/balance"
	endpointExchangeInfo = "/fapi/v1/exchangeInfo"
	endpointServerTime   = "/fapi/v1/time"
)

// apiError is the exchange error envelope, e.g.
// {"code":-1121,"msg":"Invalid symbol."}
type apiError struct {
	Code int64  `json:"code"`
	Msg  string `json:"msg"`
}

// orderResponse covers the shared shape of place/cancel/query responses.
// Numeric amounts arrive as strings.
type orderResponse struct {
	OrderID       int64  `json:"orderId"`
	ClientOrderID string `json:"clientOrderId"`
	Symbol        string `json:"symbol"`
	Status        string `json:"status"`
	Side          string `json:"side"`
	Type          string `json:"type"`
	TimeInForce   string `json:"timeInForce"`
	OrigQty       string `json:"origQty"`
	ExecutedQty   string `json:"executedQty"`
	AvgPrice      string `json:"avgPrice"`
	Price         string `json:"price"`
	StopPrice     string `json:"stopPrice"`
	UpdateTime    int64  `json:"updateTime"`
}

type balanceEntry struct {
	Asset            string `json:"asset"`
	Balance          string `json:"balance"`
	AvailableBalance string `json:"availableBalance"`
	CrossUnPnl       string `json:"crossUnPnl"`
}

type exchangeInfoResponse struct {
	Symbols []struct {
		Symbol string `json:"symbol"`
		Status string `json:"status"`
	} `json:"symbols"`
}

type serverTimeResponse struct {
	ServerTime int64 `json:"serverTime"`
}

// markPriceEvent is one message from the <symbol>@markPrice stream.
type markPriceEvent struct {
	Event     string `json:"e"` // "markPriceUpdate"
	EventTime int64  `json:"E"`
	Symbol    string `json:"s"`
	MarkPrice string `json:"p"`
}
