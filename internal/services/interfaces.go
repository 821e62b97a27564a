package services

import (
	"time"

	"github.com/shopspring/decimal"

	"centavo/internal/cycle"
	"centavo/internal/distribution"
	"centavo/internal/models"
	"centavo/internal/pagination"
)

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate  *time.Time
	ToDate    *time.Time
	Type      *models.TransactionType
	Category  *string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID string, transactionType models.TransactionType, category, description string, amount decimal.Decimal, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetCycleTransactions(userID string) ([]models.Transaction, cycle.Range, error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

// ProfileServicer defines the contract for user-profile business logic.
type ProfileServicer interface {
	GetProfile(userID string) (*models.UserProfile, error)
	UpdateProfile(userID, name, currencySymbol string, cycleStartDay *int) (*models.UserProfile, error)
}

// CycleSummary is the aggregate view behind the balance card and breakdown
// chart for the active financial cycle.
type CycleSummary struct {
	Range           cycle.Range         `json:"range"`
	Label           string              `json:"label"`
	Income          decimal.Decimal     `json:"income"`
	Expenses        decimal.Decimal     `json:"expenses"`
	Balance         decimal.Decimal     `json:"balance"`
	IncomeCompact   string              `json:"income_compact"`
	ExpensesCompact string              `json:"expenses_compact"`
	BalanceCompact  string              `json:"balance_compact"`
	Distribution    []distribution.Item `json:"distribution"`
}

// SummaryServicer defines the contract for cycle summary computation.
type SummaryServicer interface {
	GetCycleSummary(userID string) (*CycleSummary, error)
}
