package models

// User represents a registered user. The password is stored only as a
// bcrypt hash and is never serialized.
type User struct {
	Base
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	Accounts      []Account      `gorm:"foreignKey:UserID" json:"accounts,omitempty"`
	Transactions  []Transaction  `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	MonthlyLimits []MonthlyLimit `gorm:"foreignKey:UserID" json:"monthly_limits,omitempty"`
}
