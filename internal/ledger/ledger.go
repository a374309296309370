// Package ledger holds the pure aggregation logic for the finance
// tracker: account balances, monthly income/expense totals, remaining
// budget against a monthly limit, and the free-text transaction
// filter. Nothing in this package touches the database; callers load
// the transactions and pass them in.
package ledger

import (
	"strconv"
	"strings"
	"time"

	"github.com/Danskers/Finances-API/internal/models"
)

// MonthKey formats a timestamp as the canonical `YYYY-MM` reporting
// key, anchored to UTC. The same function stamps new transactions and
// filters monthly queries, so membership is exact string equality.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// CurrentMonth returns the month key for the current UTC time.
func CurrentMonth() string {
	return MonthKey(time.Now())
}

// ValidMonthKey reports whether s is a well-formed `YYYY-MM` month key.
func ValidMonthKey(s string) bool {
	if len(s) != 7 {
		return false
	}
	_, err := time.Parse("2006-01", s)
	return err == nil
}

// AccountBalance sums transactions into a balance: income adds,
// everything else (expense and debt alike) subtracts.
func AccountBalance(transactions []models.Transaction) float64 {
	var balance float64
	for _, tx := range transactions {
		if tx.Kind == models.TransactionKindIncome {
			balance += tx.Amount
		} else {
			balance -= tx.Amount
		}
	}
	return balance
}

// MonthlyTotals sums income and spending (expense plus debt) for
// transactions whose month key equals month exactly.
func MonthlyTotals(transactions []models.Transaction, month string) (incomeTotal, expenseTotal float64) {
	for _, tx := range transactions {
		if tx.Month != month {
			continue
		}
		switch tx.Kind {
		case models.TransactionKindIncome:
			incomeTotal += tx.Amount
		case models.TransactionKindExpense, models.TransactionKindDebt:
			expenseTotal += tx.Amount
		}
	}
	return incomeTotal, expenseTotal
}

// AvailableBudget returns how much of the monthly limit remains. A nil
// limit means no limit is set and yields nil. A negative result means
// the user overspent; it is not an error.
func AvailableBudget(limit *float64, expenseTotal float64) *float64 {
	if limit == nil {
		return nil
	}
	remaining := *limit - expenseTotal
	return &remaining
}

// CanDeleteAccount reports whether an account may be deleted: only
// when no transaction references it.
func CanDeleteAccount(transactions []models.Transaction) bool {
	return len(transactions) == 0
}

// MatchesQuery reports whether a transaction matches a free-text
// query. The match is a case-insensitive substring test against the
// category, the subcategory (when present), the kind, the decimal
// rendering of the amount, and the ISO date of the timestamp.
func MatchesQuery(tx models.Transaction, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(tx.Category), q) {
		return true
	}
	if tx.Subcategory != nil && strings.Contains(strings.ToLower(*tx.Subcategory), q) {
		return true
	}
	if strings.Contains(strings.ToLower(string(tx.Kind)), q) {
		return true
	}
	if strings.Contains(strconv.FormatFloat(tx.Amount, 'f', -1, 64), q) {
		return true
	}
	return strings.Contains(tx.Date.UTC().Format("2006-01-02"), q)
}

// FilterTransactions returns the transactions matching the query. An
// empty query matches everything.
func FilterTransactions(transactions []models.Transaction, query string) []models.Transaction {
	if query == "" {
		return transactions
	}
	matched := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if MatchesQuery(tx, query) {
			matched = append(matched, tx)
		}
	}
	return matched
}
