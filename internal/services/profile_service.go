package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "centavo/internal/errors"
	"centavo/internal/models"
)

// profileService handles user-profile business logic.
type profileService struct {
	db                   *gorm.DB
	defaultCycleStartDay int
	defaultCurrencySym   string
}

// NewProfileService creates a new ProfileServicer. The defaults are applied
// when a profile is created on first access.
func NewProfileService(db *gorm.DB, defaultCycleStartDay int, defaultCurrencySym string) ProfileServicer {
	if defaultCycleStartDay < 1 || defaultCycleStartDay > 31 {
		defaultCycleStartDay = 1
	}
	if defaultCurrencySym == "" {
		defaultCurrencySym = "$"
	}
	return &profileService{
		db:                   db,
		defaultCycleStartDay: defaultCycleStartDay,
		defaultCurrencySym:   defaultCurrencySym,
	}
}

// GetProfile returns the user's profile, creating one with defaults on
// first access so callers always have a cycle start day to work with.
func (s *profileService) GetProfile(userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	profile = models.UserProfile{
		UserID:         userID,
		CurrencySymbol: s.defaultCurrencySym,
		CycleStartDay:  s.defaultCycleStartDay,
	}
	if err := s.db.Create(&profile).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &profile, nil
}

// UpdateProfile updates the fields that are provided. A cycle start day
// outside 1-31 is rejected; day-of-month clamping within short months
// happens later, when the cycle is computed.
func (s *profileService) UpdateProfile(userID, name, currencySymbol string, cycleStartDay *int) (*models.UserProfile, error) {
	if cycleStartDay != nil && (*cycleStartDay < 1 || *cycleStartDay > 31) {
		return nil, apperrors.ErrInvalidCycleDay
	}

	profile, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if currencySymbol != "" {
		updates["currency_symbol"] = currencySymbol
	}
	if cycleStartDay != nil {
		updates["cycle_start_day"] = *cycleStartDay
	}

	if len(updates) > 0 {
		if err := s.db.Model(profile).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return profile, nil
}
