package models

// MonthlyLimit caps a user's spending for one month. At most one row
// exists per (user, month); the unique index backs the upsert used by
// the limit-setting operation.
type MonthlyLimit struct {
	Base
	UserID uint    `gorm:"not null;uniqueIndex:idx_monthly_limits_user_month" json:"user_id"`
	Month  string  `gorm:"size:7;not null;uniqueIndex:idx_monthly_limits_user_month" json:"month"`
	Amount float64 `gorm:"not null" json:"amount"`
}
