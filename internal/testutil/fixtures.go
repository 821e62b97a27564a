package testutil

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"centavo/internal/models"
	"centavo/internal/uuid"
)

// NewUserID returns a fresh user identifier for scoping fixtures.
func NewUserID() string {
	return uuid.New()
}

// CreateTestProfile creates a profile with the given cycle start day.
func CreateTestProfile(t *testing.T, db *gorm.DB, userID string, cycleStartDay int) *models.UserProfile {
	t.Helper()

	profile := &models.UserProfile{
		UserID:         userID,
		Name:           "Test User",
		CurrencySymbol: "$",
		CycleStartDay:  cycleStartDay,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	return profile
}

// CreateTestTransaction creates a transaction on the given date.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID string, txType models.TransactionType, category string, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:      userID,
		Type:        txType,
		Category:    category,
		Description: "test transaction",
		Amount:      decimal.NewFromInt(amount),
		Date:        date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestExpense creates an expense dated now.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID, category string, amount int64) *models.Transaction {
	t.Helper()
	return CreateTestTransaction(t, db, userID, models.TransactionTypeExpense, category, amount, time.Now())
}

// CreateTestIncome creates an income dated now.
func CreateTestIncome(t *testing.T, db *gorm.DB, userID, category string, amount int64) *models.Transaction {
	t.Helper()
	return CreateTestTransaction(t, db, userID, models.TransactionTypeIncome, category, amount, time.Now())
}
