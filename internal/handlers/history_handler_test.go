package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Danskers/Finances-API/internal/ledger"
	"github.com/Danskers/Finances-API/internal/models"
)

func setupHistoryRouter(handler *HistoryHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.GET("/historial", handler.Month)
	return r
}

func TestHistoryHandler_Month(t *testing.T) {
	t.Run("returns totals for the requested month", func(t *testing.T) {
		date, _ := time.Parse("2006-01-02", "2024-03-15")
		txSvc := &mockTransactionService{
			getMonthTransactionsFn: func(_ uint, month string) ([]models.Transaction, error) {
				return []models.Transaction{
					{Kind: models.TransactionKindIncome, Amount: 800, Date: date, Month: month},
					{Kind: models.TransactionKindExpense, Amount: 150, Date: date, Month: month},
				}, nil
			},
		}
		limitSvc := &mockLimitService{
			getLimitFn: func(_ uint, month string) (*models.MonthlyLimit, error) {
				return &models.MonthlyLimit{UserID: 1, Month: month, Amount: 400}, nil
			},
		}
		r := setupHistoryRouter(NewHistoryHandler(txSvc, limitSvc))

		rec := doRequest(r, "GET", "/historial?mes=2024-03", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["month"] != "2024-03" {
			t.Errorf("expected month 2024-03, got %v", result["month"])
		}
		if result["income_total"].(float64) != 800 {
			t.Errorf("expected income 800, got %v", result["income_total"])
		}
		if result["expense_total"].(float64) != 150 {
			t.Errorf("expected expenses 150, got %v", result["expense_total"])
		}
		if result["available_budget"].(float64) != 250 {
			t.Errorf("expected available budget 250, got %v", result["available_budget"])
		}
	})

	t.Run("defaults to the current month", func(t *testing.T) {
		var gotMonth string
		txSvc := &mockTransactionService{
			getMonthTransactionsFn: func(_ uint, month string) ([]models.Transaction, error) {
				gotMonth = month
				return []models.Transaction{}, nil
			},
		}
		r := setupHistoryRouter(NewHistoryHandler(txSvc, &mockLimitService{}))

		rec := doRequest(r, "GET", "/historial", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotMonth != ledger.CurrentMonth() {
			t.Errorf("expected current month %q, got %q", ledger.CurrentMonth(), gotMonth)
		}
	})

	t.Run("empty month yields zero totals", func(t *testing.T) {
		r := setupHistoryRouter(NewHistoryHandler(&mockTransactionService{}, &mockLimitService{}))

		rec := doRequest(r, "GET", "/historial?mes=2020-01", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["income_total"].(float64) != 0 || result["expense_total"].(float64) != 0 {
			t.Errorf("expected zero totals, got %v/%v", result["income_total"], result["expense_total"])
		}
		if result["monthly_limit"] != nil {
			t.Errorf("expected null limit, got %v", result["monthly_limit"])
		}
	})

	t.Run("returns 400 on malformed month", func(t *testing.T) {
		r := setupHistoryRouter(NewHistoryHandler(&mockTransactionService{}, &mockLimitService{}))

		rec := doRequest(r, "GET", "/historial?mes=marzo", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}
