package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"centavo/internal/cycle"
	apperrors "centavo/internal/errors"
	"centavo/internal/models"
	"centavo/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db       *gorm.DB
	profiles ProfileServicer
	clock    cycle.Clock
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, profiles ProfileServicer, clock cycle.Clock) TransactionServicer {
	if clock == nil {
		clock = cycle.SystemClock
	}
	return &transactionService{
		db:       db,
		profiles: profiles,
		clock:    clock,
	}
}

// CreateTransaction records a new income or expense for the user.
// Transactions are immutable once created; there is no update path.
func (s *transactionService) CreateTransaction(
	userID string,
	transactionType models.TransactionType,
	category string,
	description string,
	amount decimal.Decimal,
	date time.Time,
) (*models.Transaction, error) {
	if transactionType != models.TransactionTypeIncome && transactionType != models.TransactionTypeExpense {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if !amount.IsPositive() {
		return nil, apperrors.ErrNonPositiveAmount
	}
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}

	// Default date to now if not provided
	if date.IsZero() {
		date = s.clock.Now()
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Type:        transactionType,
		Category:    category,
		Description: description,
		Amount:      amount,
		Date:        date,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// GetUserTransactions retrieves a paginated, filtered list of the user's
// transactions, newest first.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.Category != nil {
		q = q.Where("category = ?", *f.Category)
	}
	if f.MinAmount != nil {
		q = q.Where("amount >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		q = q.Where("amount <= ?", *f.MaxAmount)
	}
	return q
}

// GetCycleTransactions returns the transactions inside the user's active
// financial cycle, newest first, along with the cycle range itself. The
// range is recomputed from the profile's cycle start day on every call.
func (s *transactionService) GetCycleTransactions(userID string) ([]models.Transaction, cycle.Range, error) {
	profile, err := s.profiles.GetProfile(userID)
	if err != nil {
		return nil, cycle.Range{}, err
	}

	r := cycle.CurrentRange(profile.CycleStartDay, s.clock.Now())

	var transactions []models.Transaction
	if err := s.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, r.Start, r.End).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, cycle.Range{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transactions, r, nil
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// DeleteTransaction soft-deletes a transaction belonging to the user.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
