package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shareholder is an entitlement record from the issue register.
// Loaded out-of-band (tools/registerloader) and read-only to the API.
type Shareholder struct {
	ID               uint            `json:"id" gorm:"primary_key"`
	RegAccountNumber string          `json:"reg_account_number" gorm:"type:varchar(50);not null;unique_index"`
	Name             string          `json:"name" gorm:"type:varchar(255);not null;index"`
	Holdings         decimal.Decimal `json:"holdings" gorm:"type:decimal(15,2)"`
	RightsIssue      decimal.Decimal `json:"rights_issue" gorm:"type:decimal(15,2)"`
	HoldingsAfter    decimal.Decimal `json:"holdings_after" gorm:"type:decimal(15,2)"`
	AmountDue        decimal.Decimal `json:"amount_due" gorm:"type:decimal(15,2)"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
