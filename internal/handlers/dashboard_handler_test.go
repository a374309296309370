package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Danskers/Finances-API/internal/ledger"
	"github.com/Danskers/Finances-API/internal/models"
)

func setupDashboardRouter(handler *DashboardHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUser(&models.User{Base: models.Base{ID: 1}, Email: "user@example.com"}))
	auth.GET("/dashboard", handler.Dashboard)
	return r
}

func TestDashboardHandler_Dashboard(t *testing.T) {
	month := ledger.CurrentMonth()
	now := time.Now().UTC()

	t.Run("computes balances and month totals", func(t *testing.T) {
		accSvc := &mockAccountService{
			getUserAccountsFn: func(_ uint) ([]models.Account, error) {
				return []models.Account{{Base: models.Base{ID: 1}, Name: "Cuenta principal"}}, nil
			},
		}
		txSvc := &mockTransactionService{
			getAccountTransactionsFn: func(_, _ uint) ([]models.Transaction, error) {
				return []models.Transaction{
					{Kind: models.TransactionKindIncome, Amount: 1000, Date: now, Month: month},
					{Kind: models.TransactionKindExpense, Amount: 300, Date: now, Month: month},
				}, nil
			},
			getMonthTransactionsFn: func(_ uint, m string) ([]models.Transaction, error) {
				return []models.Transaction{
					{Kind: models.TransactionKindIncome, Amount: 1000, Date: now, Month: m},
					{Kind: models.TransactionKindExpense, Amount: 300, Date: now, Month: m},
				}, nil
			},
		}
		limitSvc := &mockLimitService{
			getLimitFn: func(_ uint, m string) (*models.MonthlyLimit, error) {
				return &models.MonthlyLimit{UserID: 1, Month: m, Amount: 500}, nil
			},
		}
		handler := NewDashboardHandler(accSvc, txSvc, limitSvc)
		r := setupDashboardRouter(handler)

		rec := doRequest(r, "GET", "/dashboard", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["total_balance"].(float64) != 700 {
			t.Errorf("expected total balance 700, got %v", result["total_balance"])
		}
		if result["income_total"].(float64) != 1000 {
			t.Errorf("expected income total 1000, got %v", result["income_total"])
		}
		if result["expense_total"].(float64) != 300 {
			t.Errorf("expected expense total 300, got %v", result["expense_total"])
		}
		if result["monthly_limit"].(float64) != 500 {
			t.Errorf("expected limit 500, got %v", result["monthly_limit"])
		}
		if result["available_budget"].(float64) != 200 {
			t.Errorf("expected available budget 200, got %v", result["available_budget"])
		}
	})

	t.Run("debt counts as spending", func(t *testing.T) {
		accSvc := &mockAccountService{
			getUserAccountsFn: func(_ uint) ([]models.Account, error) {
				return []models.Account{{Base: models.Base{ID: 1}}}, nil
			},
		}
		txSvc := &mockTransactionService{
			getAccountTransactionsFn: func(_, _ uint) ([]models.Transaction, error) {
				return []models.Transaction{
					{Kind: models.TransactionKindDebt, Amount: 250, Date: now, Month: month},
				}, nil
			},
			getMonthTransactionsFn: func(_ uint, m string) ([]models.Transaction, error) {
				return []models.Transaction{
					{Kind: models.TransactionKindDebt, Amount: 250, Date: now, Month: m},
				}, nil
			},
		}
		handler := NewDashboardHandler(accSvc, txSvc, &mockLimitService{})
		r := setupDashboardRouter(handler)

		rec := doRequest(r, "GET", "/dashboard", "")

		result := parseJSON(t, rec)
		if result["total_balance"].(float64) != -250 {
			t.Errorf("expected balance -250, got %v", result["total_balance"])
		}
		if result["expense_total"].(float64) != 250 {
			t.Errorf("expected expense total 250, got %v", result["expense_total"])
		}
	})

	t.Run("no limit yields null budget", func(t *testing.T) {
		handler := NewDashboardHandler(&mockAccountService{}, &mockTransactionService{}, &mockLimitService{})
		r := setupDashboardRouter(handler)

		rec := doRequest(r, "GET", "/dashboard", "")

		result := parseJSON(t, rec)
		if result["monthly_limit"] != nil {
			t.Errorf("expected null limit, got %v", result["monthly_limit"])
		}
		if result["available_budget"] != nil {
			t.Errorf("expected null budget, got %v", result["available_budget"])
		}
	})
}
