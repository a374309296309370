package models

import "time"

// TransactionKind represents the kind of transaction.
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "income"
	TransactionKindExpense TransactionKind = "expense"
	TransactionKindDebt    TransactionKind = "debt"
)

// Valid reports whether the kind is one of the supported values.
func (k TransactionKind) Valid() bool {
	switch k {
	case TransactionKindIncome, TransactionKindExpense, TransactionKindDebt:
		return true
	}
	return false
}

// Transaction represents a single ledger entry. Transactions are
// immutable once created; there is no update path, only deletion.
// Month holds the UTC-derived `YYYY-MM` key used for monthly queries.
type Transaction struct {
	Base
	UserID      uint            `gorm:"not null;index:idx_transactions_user_month,priority:1" json:"user_id"`
	AccountID   uint            `gorm:"not null;index" json:"account_id"`
	Kind        TransactionKind `gorm:"not null" json:"kind"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Category    string          `gorm:"not null" json:"category"`
	Subcategory *string         `json:"subcategory,omitempty"`
	Date        time.Time       `gorm:"not null" json:"date"`
	Month       string          `gorm:"size:7;not null;index:idx_transactions_user_month,priority:2" json:"month"`
	ReceiptURL  *string         `json:"receipt_url,omitempty"`

	Account Account `gorm:"foreignKey:AccountID" json:"account,omitempty"`
}
