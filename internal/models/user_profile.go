package models

// UserProfile holds per-user display and cycle preferences.
// CycleStartDay is the day of month (1-31) on which the user's
// financial month begins; days past the end of a month clamp to
// that month's last day when the cycle is computed.
type UserProfile struct {
	Base
	UserID         string `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Name           string `json:"name"`
	CurrencySymbol string `gorm:"default:$" json:"currency_symbol"`
	CycleStartDay  int    `gorm:"default:1" json:"cycle_start_day"`
}
