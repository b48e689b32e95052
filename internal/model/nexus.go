package model

import (
	"github.com/shopspring/decimal"
)

// NexusRule stores economic-nexus thresholds for one jurisdiction.
// The fallback rule applies to every state code absent from the rule table.
type NexusRule struct {
	StateCode            string          `gorm:"type:varchar(16);primaryKey" json:"state_code"`
	RevenueThreshold     decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"revenue_threshold"`
	TransactionThreshold int             `gorm:"not null;default:0" json:"transaction_threshold"` // 0 = not evaluated
	Fallback             bool            `gorm:"not null;default:false;index" json:"fallback"`
}

// TableName pins the catalog table name
func (NexusRule) TableName() string {
	return "nexus_rules"
}

// SalesRecord is one uploaded sales row
type SalesRecord struct {
	StateCode string          `json:"state_code"`
	Amount    decimal.Decimal `json:"amount"`
}

// StateAggregate is the per-state sum of uploaded sales
type StateAggregate struct {
	StateCode         string          `json:"state_code"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalTransactions int             `json:"total_transactions"`
}

// NexusVerdict is the breach status of one aggregate against its rule
type NexusVerdict struct {
	StateCode         string          `json:"state_code"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalTransactions int             `json:"total_transactions"`
	IsLiable          bool            `json:"is_liable"`
	Rule              NexusRule       `json:"rule"`
}
