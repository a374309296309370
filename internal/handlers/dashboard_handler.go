package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Danskers/Finances-API/internal/ledger"
	"github.com/Danskers/Finances-API/internal/models"
	"github.com/Danskers/Finances-API/internal/services"
)

// DashboardHandler aggregates the figures shown on the landing page.
type DashboardHandler struct {
	accountService     services.AccountServicer
	transactionService services.TransactionServicer
	limitService       services.LimitServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(
	accountService services.AccountServicer,
	transactionService services.TransactionServicer,
	limitService services.LimitServicer,
) *DashboardHandler {
	return &DashboardHandler{
		accountService:     accountService,
		transactionService: transactionService,
		limitService:       limitService,
	}
}

// AccountBalance pairs an account with its computed balance.
type AccountBalance struct {
	Account models.Account `json:"account"`
	Balance float64        `json:"balance"`
}

// Dashboard returns per-account balances plus the current month's
// totals and remaining budget.
// @Summary     Dashboard summary
// @Description Account balances, current-month totals, and available budget
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} map[string]interface{} "Dashboard figures"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	userID := user.ID

	accounts, err := h.accountService.GetUserAccounts(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	balances := make([]AccountBalance, 0, len(accounts))
	var totalBalance float64
	for _, account := range accounts {
		txs, err := h.transactionService.GetAccountTransactions(userID, account.ID)
		if err != nil {
			respondWithError(c, err)
			return
		}
		balance := ledger.AccountBalance(txs)
		balances = append(balances, AccountBalance{Account: account, Balance: balance})
		totalBalance += balance
	}

	month := ledger.CurrentMonth()
	monthTxs, err := h.transactionService.GetMonthTransactions(userID, month)
	if err != nil {
		respondWithError(c, err)
		return
	}
	incomeTotal, expenseTotal := ledger.MonthlyTotals(monthTxs, month)

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
		"email":            user.Email,
		"month":            month,
		"accounts":         balances,
		"total_balance":    totalBalance,
		"income_total":     incomeTotal,
		"expense_total":    expenseTotal,
		"monthly_limit":    limitAmount,
		"available_budget": ledger.AvailableBudget(limitAmount, expenseTotal),
	})
}
