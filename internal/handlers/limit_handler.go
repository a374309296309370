package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Danskers/Finances-API/internal/errors"
	"github.com/Danskers/Finances-API/internal/services"
)

// LimitHandler handles the monthly spending limit.
type LimitHandler struct {
	limitService services.LimitServicer
}

// NewLimitHandler creates a new LimitHandler.
func NewLimitHandler(limitService services.LimitServicer) *LimitHandler {
	return &LimitHandler{limitService: limitService}
}

// SetLimitRequest represents the spending-limit form payload.
type SetLimitRequest struct {
	Mes         string  `form:"mes" binding:"required,month_key"`
	MontoLimite float64 `form:"monto_limite" binding:"required,gte=0"`
}

// Set creates or replaces the spending limit for a month. There is a
// single limit per (user, month); setting it again overwrites the
// previous amount.
// @Summary     Set the monthly spending limit
// @Tags        limits
// @Accept      x-www-form-urlencoded
// @Param       mes formData string true "Month (YYYY-MM)"
// @Param       monto_limite formData number true "Limit amount"
// @Success     302 "Redirects to /dashboard"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /limite [post]
func (h *LimitHandler) Set(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetLimitRequest
	if err := c.ShouldBind(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if _, err := h.limitService.SetLimit(userID, req.Mes, req.MontoLimite); err != nil {
		respondWithError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}
