package services

import (
	"testing"

	"github.com/Danskers/Finances-API/internal/models"
	"github.com/Danskers/Finances-API/internal/testutil"
)

func TestCreateAccount(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)

		account, err := svc.CreateAccount(user.ID, "Ahorros")
		testutil.AssertNoError(t, err)

		if account.ID == 0 {
			t.Fatal("expected non-zero account ID")
		}
		if account.Name != "Ahorros" {
			t.Errorf("expected name Ahorros, got %s", account.Name)
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateAccount(user.ID, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetAccountByID(t *testing.T) {
	t.Run("owner_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, owner.ID)

		got, err := svc.GetAccountByID(owner.ID, account.ID)
		testutil.AssertNoError(t, err)
		if got.ID != account.ID {
			t.Errorf("expected account %d, got %d", account.ID, got.ID)
		}

		_, err = svc.GetAccountByID(other.ID, account.ID)
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})
}

func TestRenameAccount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAccountService(db)
	user := testutil.CreateTestUser(t, db)
	account := testutil.CreateTestAccount(t, db, user.ID)

	renamed, err := svc.RenameAccount(user.ID, account.ID, "Gastos fijos")
	testutil.AssertNoError(t, err)
	if renamed.Name != "Gastos fijos" {
		t.Errorf("expected renamed account, got %s", renamed.Name)
	}

	var reloaded models.Account
	if err := db.First(&reloaded, account.ID).Error; err != nil {
		t.Fatalf("failed to reload account: %v", err)
	}
	if reloaded.Name != "Gastos fijos" {
		t.Errorf("expected persisted rename, got %s", reloaded.Name)
	}
}

func TestDeleteAccount(t *testing.T) {
	t.Run("empty_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)

		testutil.AssertNoError(t, svc.DeleteAccount(user.ID, account.ID))

		_, err := svc.GetAccountByID(user.ID, account.ID)
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})

	t.Run("with_transactions_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)
		testutil.CreateTestTransaction(t, db, user.ID, account.ID, models.TransactionKindExpense, 50)

		err := svc.DeleteAccount(user.ID, account.ID)
		testutil.AssertAppError(t, err, "ACCOUNT_HAS_TRANSACTIONS")

		// The account must still exist.
		_, err = svc.GetAccountByID(user.ID, account.ID)
		testutil.AssertNoError(t, err)
	})

	t.Run("foreign_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, owner.ID)

		err := svc.DeleteAccount(other.ID, account.ID)
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})
}
