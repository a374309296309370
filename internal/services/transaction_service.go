package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/Danskers/Finances-API/internal/errors"
	"github.com/Danskers/Finances-API/internal/ledger"
	"github.com/Danskers/Finances-API/internal/models"
	"github.com/Danskers/Finances-API/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db             *gorm.DB
	accountService AccountServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, accountService AccountServicer) TransactionServicer {
	return &transactionService{
		db:             db,
		accountService: accountService,
	}
}

// CreateTransaction records a new ledger entry. The timestamp and the
// month key are stamped here, anchored to UTC, so that monthly views
// always agree with the stamp.
func (s *transactionService) CreateTransaction(
	userID, accountID uint,
	kind models.TransactionKind,
	amount float64,
	category string,
	subcategory, receiptURL *string,
) (*models.Transaction, error) {
	if !kind.Valid() {
		return nil, apperrors.ErrInvalidTransactionKind
	}
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}

	// Ensure the account exists and belongs to the user.
	account, err := s.accountService.GetAccountByID(userID, accountID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	transaction := &models.Transaction{
		UserID:      userID,
		AccountID:   account.ID,
		Kind:        kind,
		Amount:      amount,
		Category:    category,
		Subcategory: subcategory,
		Date:        now,
		Month:       ledger.MonthKey(now),
		ReceiptURL:  receiptURL,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// GetMonthTransactions retrieves a user's transactions for one month,
// newest first.
func (s *transactionService) GetMonthTransactions(userID uint, month string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Where("user_id = ? AND month = ?", userID, month).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// GetAccountTransactions retrieves all transactions of one account,
// verifying ownership first.
func (s *transactionService) GetAccountTransactions(userID, accountID uint) ([]models.Transaction, error) {
	if _, err := s.accountService.GetAccountByID(userID, accountID); err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	if err := s.db.Where("user_id = ? AND account_id = ?", userID, accountID).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// SearchMonth lists a month's transactions, applies the free-text
// filter in memory, and paginates the filtered result.
func (s *transactionService) SearchMonth(userID uint, month, query string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	transactions, err := s.GetMonthTransactions(userID, month)
	if err != nil {
		return nil, err
	}

	page.Defaults()
	filtered := ledger.FilterTransactions(transactions, query)
	result := pagination.Slice(filtered, page)
	return &result, nil
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(userID, transactionID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// DeleteTransaction deletes a transaction owned by the user.
func (s *transactionService) DeleteTransaction(userID, transactionID uint) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
