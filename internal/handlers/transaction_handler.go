package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Danskers/Finances-API/internal/config"
	apperrors "github.com/Danskers/Finances-API/internal/errors"
	"github.com/Danskers/Finances-API/internal/ledger"
	"github.com/Danskers/Finances-API/internal/models"
	"github.com/Danskers/Finances-API/internal/pagination"
	"github.com/Danskers/Finances-API/internal/services"
	"github.com/Danskers/Finances-API/internal/storage"
)

// receiptContentTypes maps the file extensions accepted as transaction
// receipts to the content type sent to object storage.
var receiptContentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".pdf":  "application/pdf",
}

// TransactionHandler handles transaction listing, creation, and deletion.
type TransactionHandler struct {
	accountService     services.AccountServicer
	transactionService services.TransactionServicer
	store              storage.ObjectStore
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(
	accountService services.AccountServicer,
	transactionService services.TransactionServicer,
	store storage.ObjectStore,
) *TransactionHandler {
	return &TransactionHandler{
		accountService:     accountService,
		transactionService: transactionService,
		store:              store,
	}
}

// CreateTransactionRequest represents the new-transaction form payload.
// The receipt file travels alongside it in the same multipart body.
type CreateTransactionRequest struct {
	CuentaID     uint    `form:"cuenta_id" binding:"required"`
	Tipo         string  `form:"tipo" binding:"required,transaction_kind"`
	Monto        float64 `form:"monto" binding:"required,gte=0"`
	Categoria    string  `form:"categoria" binding:"required,max=100"`
	Subcategoria string  `form:"subcategoria" binding:"omitempty,max=100"`
}

// List returns the transactions of a month, optionally filtered by a
// free-text query and paginated. It also includes the user's accounts
// so the new-transaction form can offer them.
// @Summary     List transactions
// @Description Month's transactions with optional free-text filter
// @Tags        transactions
// @Produce     json
// @Param       mes query string false "Month (YYYY-MM, defaults to current)"
// @Param       q query string false "Free-text filter"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} map[string]interface{} "Transactions page"
// @Router      /transacciones [get]
func (h *TransactionHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month := c.Query("mes")
	if month == "" {
		month = ledger.CurrentMonth()
	}
	query := c.Query("q")

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	page.Defaults()

	result, err := h.transactionService.SearchMonth(userID, month, query, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accounts, err := h.accountService.GetUserAccounts(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"month":        month,
		"query":        query,
		"transactions": result,
		"accounts":     accounts,
	})
}

// Create records a transaction. When the multipart body carries a
// "factura" file it is uploaded to object storage first and the
// transaction stores its public URL; an upload failure aborts the whole
// operation and no transaction is written.
// @Summary     Create a transaction
// @Tags        transactions
// @Accept      multipart/form-data
// @Param       cuenta_id formData int true "Account ID"
// @Param       tipo formData string true "Kind (income, expense, debt)"
// @Param       monto formData number true "Amount"
// @Param       categoria formData string true "Category"
// @Param       subcategoria formData string false "Subcategory"
// @Param       factura formData file false "Receipt (PNG, JPG, or PDF)"
// @Success     303 "Redirects to /transacciones"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Receipt upload failed"
// @Router      /transacciones [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBind(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var receiptURL *string
	file, err := c.FormFile("factura")
	if err == nil && file != nil {
		url, err := h.uploadReceipt(c, userID, file)
		if err != nil {
			respondWithError(c, err)
			return
		}
		receiptURL = &url
	}

	var subcategory *string
	if req.Subcategoria != "" {
		subcategory = &req.Subcategoria
	}

	_, err = h.transactionService.CreateTransaction(
		userID,
		req.CuentaID,
		models.TransactionKind(req.Tipo),
		req.Monto,
		req.Categoria,
		subcategory,
		receiptURL,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/transacciones")
}

// Delete removes one of the user's transactions.
// @Summary     Delete a transaction
// @Tags        transactions
// @Param       id path int true "Transaction ID"
// @Success     302 "Redirects to /transacciones"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transaccion/eliminar/{id} [post]
func (h *TransactionHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(userID, transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/transacciones")
}

// uploadReceipt stores a receipt file and returns its public URL. Keys
// are namespaced per user so receipts never collide across users.
func (h *TransactionHandler) uploadReceipt(c *gin.Context, userID uint, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType, ok := receiptContentTypes[ext]
	if !ok {
		return "", apperrors.WithMessage(apperrors.ErrUnsupportedFileType, "Formato no permitido. Solo PNG, JPG o PDF.")
	}

	src, err := file.Open()
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrStorageUpload, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrStorageUpload, err)
	}

	cfg := config.Get()
	key := fmt.Sprintf("%d_%s%s", userID, uuid.New().String(), ext)
	if err := h.store.Upload(c.Request.Context(), cfg.SupabaseBucket, key, data, contentType); err != nil {
		return "", apperrors.Wrap(apperrors.WithMessage(apperrors.ErrStorageUpload, err.Error()), err)
	}

	return h.store.PublicURL(cfg.SupabaseBucket, key), nil
}
