package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Danskers/Finances-API/internal/ledger"
	"github.com/Danskers/Finances-API/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email. The
// password is always "password123".
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAccount creates an account for the user.
func CreateTestAccount(t *testing.T, db *gorm.DB, userID uint) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID: userID,
		Name:   fmt.Sprintf("Cuenta %d", nextID()),
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestTransaction creates a transaction dated now (UTC).
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, accountID uint, kind models.TransactionKind, amount float64) *models.Transaction {
	t.Helper()
	return CreateTestTransactionOn(t, db, userID, accountID, kind, amount, time.Now().UTC())
}

// CreateTestTransactionOn creates a transaction dated at the given
// time, with the month key derived from it.
func CreateTestTransactionOn(t *testing.T, db *gorm.DB, userID, accountID uint, kind models.TransactionKind, amount float64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:    userID,
		AccountID: accountID,
		Kind:      kind,
		Amount:    amount,
		Category:  fmt.Sprintf("categoria-%d", nextID()),
		Date:      date.UTC(),
		Month:     ledger.MonthKey(date),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestLimit creates a monthly limit for the user.
func CreateTestLimit(t *testing.T, db *gorm.DB, userID uint, month string, amount float64) *models.MonthlyLimit {
	t.Helper()

	limit := &models.MonthlyLimit{
		UserID: userID,
		Month:  month,
		Amount: amount,
	}
	if err := db.Create(limit).Error; err != nil {
		t.Fatalf("failed to create test limit: %v", err)
	}
	return limit
}
