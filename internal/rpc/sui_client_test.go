package rpc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sui-advisor/internal/config"
)

// jsonrpcRequest mirrors the wire request shape for the stub fullnode
type jsonrpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// stubFullnode serves canned JSON-RPC results keyed by method name.
// Handlers receive the raw positional params and return the result payload.
type stubFullnode struct {
	handlers map[string]func(params []json.RawMessage) (interface{}, *jsonrpcError)
	calls    map[string]int
}

type jsonrpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newStubFullnode() *stubFullnode {
	return &stubFullnode{
		handlers: make(map[string]func([]json.RawMessage) (interface{}, *jsonrpcError)),
		calls:    make(map[string]int),
	}
}

func (s *stubFullnode) on(method string, handler func([]json.RawMessage) (interface{}, *jsonrpcError)) {
	s.handlers[method] = handler
}

func (s *stubFullnode) result(method string, result interface{}) {
	s.on(method, func([]json.RawMessage) (interface{}, *jsonrpcError) {
		return result, nil
	})
}

func (s *stubFullnode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req jsonrpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.calls[req.Method]++

	resp := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      req.ID,
	}

	handler, ok := s.handlers[req.Method]
	if !ok {
		resp["error"] = &jsonrpcError{Code: -32601, Message: "method not found"}
	} else if result, rpcErr := handler(req.Params); rpcErr != nil {
		resp["error"] = rpcErr
	} else {
		resp["result"] = result
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func newTestClient(t *testing.T, stub *stubFullnode) *SuiClient {
	t.Helper()

	server := httptest.NewServer(stub)
	t.Cleanup(server.Close)

	client, err := NewSuiClient(context.Background(), &config.SuiConfig{
		RPCPrimary:     server.URL,
		RequestTimeout: 5 * time.Second,
		MaxObjectPages: 10,
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	return client
}

func TestNewSuiClient_RequiresEndpoint(t *testing.T) {
	_, err := NewSuiClient(context.Background(), &config.SuiConfig{})
	assert.Error(t, err)

	_, err = NewSuiClient(context.Background(), nil)
	assert.Error(t, err)
}

func TestGetAllBalances(t *testing.T) {
	stub := newStubFullnode()
	stub.result("suix_getAllBalances", []map[string]interface{}{
		{"coinType": "0x2::sui::SUI", "coinObjectCount": 3, "totalBalance": "5000000000"},
		{"coinType": "0xdead::usdc::USDC", "coinObjectCount": 1, "totalBalance": "120000"},
	})

	client := newTestClient(t, stub)

	balances, err := client.GetAllBalances(context.Background(), "0xabc")
	require.NoError(t, err)
	require.Len(t, balances, 2)
	assert.Equal(t, "0x2::sui::SUI", balances[0].CoinType)
	assert.Equal(t, 3, balances[0].CoinObjectCount)
	assert.Equal(t, "5000000000", balances[0].TotalBalance)
}

func TestGetAllBalances_Empty(t *testing.T) {
	stub := newStubFullnode()
	stub.result("suix_getAllBalances", []map[string]interface{}{})

	client := newTestClient(t, stub)

	balances, err := client.GetAllBalances(context.Background(), "0xabc")
	require.NoError(t, err)
	assert.Empty(t, balances)
	assert.NotNil(t, balances)
}

func TestGetAllBalances_ProviderError(t *testing.T) {
	stub := newStubFullnode()
	stub.on("suix_getAllBalances", func([]json.RawMessage) (interface{}, *jsonrpcError) {
		return nil, &jsonrpcError{Code: -32602, Message: "Invalid params"}
	})

	client := newTestClient(t, stub)

	_, err := client.GetAllBalances(context.Background(), "not-an-address")
	require.Error(t, err)

	var queryErr *QueryError
	require.ErrorAs(t, err, &queryErr)
	assert.Equal(t, "GetAllBalances", queryErr.Op)
	assert.Equal(t, "not-an-address", queryErr.Details["owner"])
}

func TestGetOwnedObjects_Pagination(t *testing.T) {
	stub := newStubFullnode()
	cursor := "0xcursor1"
	pages := []map[string]interface{}{
		{
			"data": []map[string]interface{}{
				{"data": map[string]string{"objectId": "0x1", "version": "10", "digest": "d1", "type": "0x2::coin::Coin<0x2::sui::SUI>"}},
				{"data": map[string]string{"objectId": "0x2", "version": "11", "digest": "d2", "type": "0xnavi::pool::Deposit"}},
			},
			"nextCursor":  cursor,
			"hasNextPage": true,
		},
		{
			"data": []map[string]interface{}{
				{"data": map[string]string{"objectId": "0x3", "version": "12", "digest": "d3", "type": "0xsuins::suins_registration::SuinsRegistration"}},
			},
			"hasNextPage": false,
		},
	}
	stub.on("suix_getOwnedObjects", func(params []json.RawMessage) (interface{}, *jsonrpcError) {
		page := stub.calls["suix_getOwnedObjects"] - 1
		if page >= len(pages) {
			return nil, &jsonrpcError{Code: -32000, Message: "unexpected extra page request"}
		}
		return pages[page], nil
	})

	client := newTestClient(t, stub)

	objects, err := client.GetOwnedObjects(context.Background(), "0xabc")
	require.NoError(t, err)
	require.Len(t, objects, 3)
	assert.Equal(t, "0x1", objects[0].ObjectID)
	assert.Equal(t, "0xnavi::pool::Deposit", objects[1].Type)
	assert.Equal(t, 2, stub.calls["suix_getOwnedObjects"])
}

func TestGetOwnedObjects_PageCap(t *testing.T) {
	stub := newStubFullnode()
	cursor := "0xloop"
	stub.on("suix_getOwnedObjects", func([]json.RawMessage) (interface{}, *jsonrpcError) {
		return map[string]interface{}{
			"data": []map[string]interface{}{
				{"data": map[string]string{"objectId": "0x1", "type": "0x2::thing::Thing"}},
			},
			"nextCursor":  cursor,
			"hasNextPage": true,
		}, nil
	})

	server := httptest.NewServer(stub)
	t.Cleanup(server.Close)

	client, err := NewSuiClient(context.Background(), &config.SuiConfig{
		RPCPrimary:     server.URL,
		RequestTimeout: 5 * time.Second,
		MaxObjectPages: 3,
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	objects, err := client.GetOwnedObjects(context.Background(), "0xabc")
	require.NoError(t, err)
	assert.Len(t, objects, 3)
	assert.Equal(t, 3, stub.calls["suix_getOwnedObjects"])
}

func TestGetValidatorsApy(t *testing.T) {
	stub := newStubFullnode()
	stub.result("suix_getValidatorsApy", map[string]interface{}{
		"apys": []map[string]interface{}{
			{"address": "0xv1", "apy": 0.045},
			{"address": "0xv2", "apy": 0.031},
		},
		"epoch": "421",
	})

	client := newTestClient(t, stub)

	validators, err := client.GetValidatorsApy(context.Background())
	require.NoError(t, err)
	require.Len(t, validators, 2)
	assert.Equal(t, "0xv1", validators[0].Address)
	assert.InDelta(t, 0.045, validators[0].APY, 1e-9)
}

func TestGetReferenceGasPrice(t *testing.T) {
	stub := newStubFullnode()
	stub.result("suix_getReferenceGasPrice", "1000")

	client := newTestClient(t, stub)

	price, err := client.GetReferenceGasPrice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), price)
}

func TestGetReferenceGasPrice_Malformed(t *testing.T) {
	stub := newStubFullnode()
	stub.result("suix_getReferenceGasPrice", "not-a-number")

	client := newTestClient(t, stub)

	_, err := client.GetReferenceGasPrice(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}
