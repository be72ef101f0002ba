// Package types provides common type definitions for the Sui advisor system.
package types

// UserTier represents the service tier level
type UserTier string

const (
	// TierFree represents the free service tier with limited features
	TierFree UserTier = "free"
	// TierPaid represents the paid service tier with full features
	TierPaid UserTier = "paid"
)

// RiskLevel represents the coarse portfolio risk bucket
type RiskLevel string

const (
	// RiskHigh represents portfolios with zero or one coin balance entry
	RiskHigh RiskLevel = "High"
	// RiskMedium represents portfolios with two or three coin balance entries
	RiskMedium RiskLevel = "Medium"
	// RiskLow represents portfolios with four or more coin balance entries
	RiskLow RiskLevel = "Low"
)

// ServiceError represents a structured error response
type ServiceError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *ServiceError) Error() string {
	return e.Message
}

// CoinBalance represents an aggregated coin balance entry for an address, as
// reported by the ledger. TotalBalance stays a string because on-chain amounts
// can exceed int64.
type CoinBalance struct {
	CoinType        string `json:"coinType"`
	CoinObjectCount int    `json:"coinObjectCount"`
	TotalBalance    string `json:"totalBalance"`
}

// OwnedObject represents an on-chain object attributed to an address.
// Only the identity and type string are carried; contents are never inspected.
type OwnedObject struct {
	ObjectID string `json:"objectId"`
	Type     string `json:"type"`
	Version  string `json:"version,omitempty"`
	Digest   string `json:"digest,omitempty"`
}

// ValidatorAPY represents the annualized yield estimate for one validator
type ValidatorAPY struct {
	Address string  `json:"address"`
	APY     float64 `json:"apy"`
}
