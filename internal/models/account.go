package models

// Account represents a financial account owned by a user. An account
// cannot be deleted while any transaction still references it.
type Account struct {
	Base
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Name   string `gorm:"not null" json:"name"`

	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"transactions,omitempty"`
}
