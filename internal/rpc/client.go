// Package rpc provides the ledger-query client for the Sui fullnode JSON-RPC
// interface. The advisor treats this as an opaque external collaborator: four
// read operations, no retries, no caching.
package rpc

import (
	"context"
	"fmt"

	"github.com/sui-advisor/internal/types"
)

// LedgerClient defines the read operations the advisor consumes.
// Implementations must be safe for reentrant use; each call is independent.
type LedgerClient interface {
	// GetAllBalances retrieves all aggregated coin balances for an address.
	// Address format checking is the fullnode's responsibility; malformed
	// addresses surface as query failures.
	GetAllBalances(ctx context.Context, owner string) ([]types.CoinBalance, error)

	// GetOwnedObjects retrieves the objects owned by an address, following
	// pagination up to the configured page cap.
	GetOwnedObjects(ctx context.Context, owner string) ([]types.OwnedObject, error)

	// GetValidatorsApy retrieves the current validator APY set.
	GetValidatorsApy(ctx context.Context) ([]types.ValidatorAPY, error)

	// GetReferenceGasPrice retrieves the network's reference gas price in MIST.
	GetReferenceGasPrice(ctx context.Context) (uint64, error)

	// Close releases the underlying transport.
	Close()
}

// Common error values for ledger queries

var (
	// ErrProviderUnavailable indicates the fullnode endpoint is unavailable
	ErrProviderUnavailable = fmt.Errorf("ledger provider unavailable")

	// ErrMalformedResponse indicates the fullnode returned data the client
	// could not interpret
	ErrMalformedResponse = fmt.Errorf("malformed provider response")
)

// QueryError wraps a failed ledger query with operation context
type QueryError struct {
	Op      string // Operation that failed (e.g., "GetAllBalances")
	Err     error
	Details map[string]interface{}
}

func (e *QueryError) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("ledger query error [%s]: %v (details: %+v)", e.Op, e.Err, e.Details)
	}
	return fmt.Sprintf("ledger query error [%s]: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// NewQueryError creates a new query error with context
func NewQueryError(op string, err error, details map[string]interface{}) *QueryError {
	return &QueryError{Op: op, Err: err, Details: details}
}
