package services

import (
	"github.com/Danskers/Finances-API/internal/models"
	"github.com/Danskers/Finances-API/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	CreateAccount(userID uint, name string) (*models.Account, error)
	GetUserAccounts(userID uint) ([]models.Account, error)
	GetAccountByID(userID, accountID uint) (*models.Account, error)
	RenameAccount(userID, accountID uint, name string) (*models.Account, error)
	DeleteAccount(userID, accountID uint) error
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID, accountID uint, kind models.TransactionKind, amount float64, category string, subcategory, receiptURL *string) (*models.Transaction, error)
	GetMonthTransactions(userID uint, month string) ([]models.Transaction, error)
	GetAccountTransactions(userID, accountID uint) ([]models.Transaction, error)
	SearchMonth(userID uint, month, query string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID uint) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
}

// LimitServicer defines the contract for monthly-limit business logic.
type LimitServicer interface {
	SetLimit(userID uint, month string, amount float64) (*models.MonthlyLimit, error)
	// GetLimit returns nil without error when no limit is set for the month.
	GetLimit(userID uint, month string) (*models.MonthlyLimit, error)
}
