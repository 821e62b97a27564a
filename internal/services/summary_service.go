package services

import (
	"github.com/shopspring/decimal"

	"centavo/internal/cycle"
	"centavo/internal/distribution"
	"centavo/internal/models"
	"centavo/internal/money"
)

// summaryService composes the cycle engine, aggregator, and formatter into
// the per-cycle view the app's home screen renders.
type summaryService struct {
	transactions TransactionServicer
	profiles     ProfileServicer
	locale       cycle.Locale
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(transactions TransactionServicer, profiles ProfileServicer, locale cycle.Locale) SummaryServicer {
	if locale.Tag == "" {
		locale = cycle.EsCO
	}
	return &summaryService{
		transactions: transactions,
		profiles:     profiles,
		locale:       locale,
	}
}

// GetCycleSummary returns totals and the category distribution for the
// user's active financial cycle. Totals are summed in decimal; the compact
// strings use the profile's currency symbol.
func (s *summaryService) GetCycleSummary(userID string) (*CycleSummary, error) {
	profile, err := s.profiles.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	transactions, r, err := s.transactions.GetCycleTransactions(userID)
	if err != nil {
		return nil, err
	}

	var income, expenses decimal.Decimal
	for _, tx := range transactions {
		switch tx.Type {
		case models.TransactionTypeIncome:
			income = income.Add(tx.Amount)
		case models.TransactionTypeExpense:
			expenses = expenses.Add(tx.Amount)
		}
	}
	balance := income.Sub(expenses)

	symbol := profile.CurrencySymbol
	return &CycleSummary{
		Range:           r,
		Label:           r.Label(s.locale),
		Income:          income,
		Expenses:        expenses,
		Balance:         balance,
		IncomeCompact:   money.FormatCompact(income, symbol),
		ExpensesCompact: money.FormatCompact(expenses, symbol),
		BalanceCompact:  money.FormatCompact(balance, symbol),
		Distribution:    distribution.Map(transactions),
	}, nil
}
