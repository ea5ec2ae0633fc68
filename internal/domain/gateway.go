package domain

import "context"

// Gateway abstracts the remote trading venue. The concrete implementation
// is a thin authenticated REST call-through; a mock stands in for tests.
// Every method performs at most one outbound call and never retries.
type Gateway interface {
	// SubmitOrder places one order and returns the normalized response.
	SubmitOrder(ctx context.Context, p OrderPayload) (*OrderResult, error)

	// OpenOrders lists currently open orders, optionally for one symbol.
	OpenOrders(ctx context.Context, symbol string) ([]OrderResult, error)

	// CancelOrder cancels an open order by exchange order id.
	CancelOrder(ctx context.Context, symbol string, orderID int64) (*OrderResult, error)

	// Balance returns the futures wallet balances.
	Balance(ctx context.Context) ([]AssetBalance, error)

	// Symbols returns the set of instruments tradable on the venue.
	Symbols(ctx context.Context) (map[string]struct{}, error)
}
