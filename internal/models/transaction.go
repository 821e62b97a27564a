package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a financial movement recorded by the user.
// Transactions are immutable once created: there is no update path,
// deletion soft-removes the record.
type Transaction struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Category    string          `gorm:"not null" json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
}
