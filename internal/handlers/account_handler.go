package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Danskers/Finances-API/internal/errors"
	"github.com/Danskers/Finances-API/internal/services"
)

// AccountHandler handles account-related requests.
type AccountHandler struct {
	accountService services.AccountServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService services.AccountServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// AccountNameRequest represents the account create/rename form payload.
type AccountNameRequest struct {
	Nombre string `form:"nombre" binding:"required,min=1,max=100"`
}

// List returns the user's accounts.
// @Summary     List accounts
// @Tags        accounts
// @Produce     json
// @Success     200 {object} map[string]interface{} "Accounts"
// @Router      /cuentas [get]
func (h *AccountHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accounts, err := h.accountService.GetUserAccounts(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

// Create creates a new account and redirects back to the list.
// @Summary     Create an account
// @Tags        accounts
// @Accept      x-www-form-urlencoded
// @Param       nombre formData string true "Account name"
// @Success     302 "Redirects to /cuentas"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /cuentas [post]
func (h *AccountHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AccountNameRequest
	if err := c.ShouldBind(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if _, err := h.accountService.CreateAccount(userID, req.Nombre); err != nil {
		respondWithError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/cuentas")
}

// Rename changes an account's display name.
// @Summary     Rename an account
// @Tags        accounts
// @Accept      x-www-form-urlencoded
// @Param       id path int true "Account ID"
// @Param       nombre formData string true "New name"
// @Success     302 "Redirects to /cuentas"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /cuentas/editar/{id} [post]
func (h *AccountHandler) Rename(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AccountNameRequest
	if err := c.ShouldBind(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if _, err := h.accountService.RenameAccount(userID, accountID, req.Nombre); err != nil {
		respondWithError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/cuentas")
}

// Delete removes an account that owns no transactions. Deleting an
// account that still has transactions is rejected with a conflict so
// nothing cascades.
// @Summary     Delete an account
// @Tags        accounts
// @Param       id path int true "Account ID"
// @Success     302 "Redirects to /cuentas"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     409 {object} ErrorResponse "Account still has transactions"
// @Router      /cuentas/eliminar/{id} [post]
func (h *AccountHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.accountService.DeleteAccount(userID, accountID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/cuentas")
}
