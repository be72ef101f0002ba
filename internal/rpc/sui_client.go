package rpc

import (
	"context"
	"fmt"
	"strconv"
	"time"

	gethrpc "github.com/ethereum/go-ethereum/rpc"

	"github.com/sui-advisor/internal/config"
	"github.com/sui-advisor/internal/types"
)

const (
	// objectPageLimit is the page size requested from suix_getOwnedObjects
	objectPageLimit = 50

	defaultRequestTimeout = 15 * time.Second
	defaultMaxObjectPages = 10
)

// SuiClient implements LedgerClient against a Sui fullnode JSON-RPC endpoint.
// It reuses the chain-agnostic JSON-RPC 2.0 client from go-ethereum; Sui's
// read API speaks plain JSON-RPC 2.0 with positional parameters.
type SuiClient struct {
	client         *gethrpc.Client
	endpoint       string
	requestTimeout time.Duration
	maxObjectPages int
}

// NewSuiClient dials the configured fullnode endpoint. The secondary endpoint,
// when set, is used only if the primary cannot be dialed at startup.
func NewSuiClient(ctx context.Context, cfg *config.SuiConfig) (*SuiClient, error) {
	if cfg == nil || cfg.RPCPrimary == "" {
		return nil, fmt.Errorf("sui RPC endpoint is required")
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	maxPages := cfg.MaxObjectPages
	if maxPages <= 0 {
		maxPages = defaultMaxObjectPages
	}

	endpoint := cfg.RPCPrimary
	client, err := gethrpc.DialContext(ctx, endpoint)
	if err != nil && cfg.RPCSecondary != "" {
		endpoint = cfg.RPCSecondary
		client, err = gethrpc.DialContext(ctx, endpoint)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	return &SuiClient{
		client:         client,
		endpoint:       endpoint,
		requestTimeout: timeout,
		maxObjectPages: maxPages,
	}, nil
}

// Endpoint returns the endpoint the client is connected to
func (c *SuiClient) Endpoint() string {
	return c.endpoint
}

// Close releases the underlying transport
func (c *SuiClient) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

func (c *SuiClient) call(ctx context.Context, result interface{}, method string, args ...interface{}) error {
	callCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()
	return c.client.CallContext(callCtx, result, method, args...)
}

// suiBalance mirrors the suix_getAllBalances result entry
type suiBalance struct {
	CoinType        string `json:"coinType"`
	CoinObjectCount int    `json:"coinObjectCount"`
	TotalBalance    string `json:"totalBalance"`
}

// GetAllBalances retrieves all aggregated coin balances for an address
func (c *SuiClient) GetAllBalances(ctx context.Context, owner string) ([]types.CoinBalance, error) {
	var raw []suiBalance
	if err := c.call(ctx, &raw, "suix_getAllBalances", owner); err != nil {
		return nil, NewQueryError("GetAllBalances", err, map[string]interface{}{"owner": owner})
	}

	balances := make([]types.CoinBalance, 0, len(raw))
	for _, b := range raw {
		balances = append(balances, types.CoinBalance{
			CoinType:        b.CoinType,
			CoinObjectCount: b.CoinObjectCount,
			TotalBalance:    b.TotalBalance,
		})
	}
	return balances, nil
}

// Wire shapes for suix_getOwnedObjects

type suiObjectInfo struct {
	ObjectID string `json:"objectId"`
	Version  string `json:"version"`
	Digest   string `json:"digest"`
	Type     string `json:"type"`
}

type suiObjectEntry struct {
	Data *suiObjectInfo `json:"data"`
}

type suiObjectPage struct {
	Data        []suiObjectEntry `json:"data"`
	NextCursor  *string          `json:"nextCursor"`
	HasNextPage bool             `json:"hasNextPage"`
}

// GetOwnedObjects retrieves the objects owned by an address, following
// pagination up to the configured page cap.
func (c *SuiClient) GetOwnedObjects(ctx context.Context, owner string) ([]types.OwnedObject, error) {
	query := map[string]interface{}{
		"options": map[string]bool{"showType": true},
	}

	var objects []types.OwnedObject
	var cursor *string

	for page := 0; page < c.maxObjectPages; page++ {
		var result suiObjectPage
		if err := c.call(ctx, &result, "suix_getOwnedObjects", owner, query, cursor, objectPageLimit); err != nil {
			return nil, NewQueryError("GetOwnedObjects", err, map[string]interface{}{
				"owner": owner,
				"page":  page,
			})
		}

		for _, entry := range result.Data {
			if entry.Data == nil {
				continue
			}
			objects = append(objects, types.OwnedObject{
				ObjectID: entry.Data.ObjectID,
				Type:     entry.Data.Type,
				Version:  entry.Data.Version,
				Digest:   entry.Data.Digest,
			})
		}

		if !result.HasNextPage || result.NextCursor == nil {
			break
		}
		cursor = result.NextCursor
	}

	return objects, nil
}

// Wire shape for suix_getValidatorsApy

type suiValidatorApys struct {
	Apys []struct {
		Address string  `json:"address"`
		Apy     float64 `json:"apy"`
	} `json:"apys"`
	Epoch string `json:"epoch"`
}

// GetValidatorsApy retrieves the current validator APY set
func (c *SuiClient) GetValidatorsApy(ctx context.Context) ([]types.ValidatorAPY, error) {
	var raw suiValidatorApys
	if err := c.call(ctx, &raw, "suix_getValidatorsApy"); err != nil {
		return nil, NewQueryError("GetValidatorsApy", err, nil)
	}

	validators := make([]types.ValidatorAPY, 0, len(raw.Apys))
	for _, v := range raw.Apys {
		validators = append(validators, types.ValidatorAPY{Address: v.Address, APY: v.Apy})
	}
	return validators, nil
}

// GetReferenceGasPrice retrieves the network's reference gas price in MIST.
// The fullnode returns the price as a decimal string.
func (c *SuiClient) GetReferenceGasPrice(ctx context.Context) (uint64, error) {
	var raw string
	if err := c.call(ctx, &raw, "suix_getReferenceGasPrice"); err != nil {
		return 0, NewQueryError("GetReferenceGasPrice", err, nil)
	}

	price, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, NewQueryError("GetReferenceGasPrice",
			fmt.Errorf("%w: gas price %q is not an unsigned integer", ErrMalformedResponse, raw), nil)
	}
	return price, nil
}
