package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Danskers/Finances-API/internal/errors"
	"github.com/Danskers/Finances-API/internal/ledger"
	"github.com/Danskers/Finances-API/internal/services"
)

// HistoryHandler serves the historical monthly summary.
type HistoryHandler struct {
	transactionService services.TransactionServicer
	limitService       services.LimitServicer
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(
	transactionService services.TransactionServicer,
	limitService services.LimitServicer,
) *HistoryHandler {
	return &HistoryHandler{
		transactionService: transactionService,
		limitService:       limitService,
	}
}

// Month returns the summary of an arbitrary month: its transactions,
// income and expense totals, and the limit that applied to it. Months
// with no activity come back with empty totals rather than an error.
// @Summary     Monthly history
// @Tags        history
// @Produce     json
// @Param       mes query string false "Month (YYYY-MM, defaults to current)"
// @Success     200 {object} map[string]interface{} "Month summary"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Router      /historial [get]
func (h *HistoryHandler) Month(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month := c.Query("mes")
	if month == "" {
		month = ledger.CurrentMonth()
	} else if !ledger.ValidMonthKey(month) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Mes inválido, use el formato YYYY-MM"))
		return
	}

	txs, err := h.transactionService.GetMonthTransactions(userID, month)
	if err != nil {
		respondWithError(c, err)
		return
	}
	incomeTotal, expenseTotal := ledger.MonthlyTotals(txs, month)

	limit, err := h.limitService.GetLimit(userID, month)
	if err != nil {
		respondWithError(c, err)
		return
	}
	var limitAmount *float64
	if limit != nil {
		limitAmount = &limit.Amount
	}

	c.JSON(http.StatusOK, gin.H{
		"month":            month,
		"transactions":     txs,
		"income_total":     incomeTotal,
		"expense_total":    expenseTotal,
		"monthly_limit":    limitAmount,
		"available_budget": ledger.AvailableBudget(limitAmount, expenseTotal),
	})
}
