package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/preqsy/monetra-server/internal/apperrors"
	"github.com/preqsy/monetra-server/internal/core/conversion"
	portssvc "github.com/preqsy/monetra-server/internal/core/ports/services"
	"github.com/preqsy/monetra-server/internal/dto"
	"github.com/preqsy/monetra-server/internal/middleware"
)

// transactionHandler handles HTTP requests related to ledger transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	currencyService    portssvc.CurrencySvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade, cs portssvc.CurrencySvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		currencyService:    cs,
	}
}

// RegisterTransactionRoutes registers routes related to transactions.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, currencyService portssvc.CurrencySvcFacade) {
	h := newTransactionHandler(transactionService, currencyService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:transactionID", h.getTransaction)
	}
}

func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, conversion.ErrNoCurrencies) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Set up a currency first"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		}
		return
	}

	// The stored mirror equals the stored amount at creation time; translate
	// it through the owning entry for the response payload.
	selected, _, err := h.currencyService.GetUserCurrency(c.Request.Context(), userID, txn.UserCurrencyID)
	if err != nil {
		logger.Error("Failed to resolve currency for response", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		return
	}
	amountInDefault, err := conversion.AmountInDefault(txn.AmountInDefault, selected)
	if err != nil {
		logger.Error("Failed to translate amount for response", slog.String("error", err.Error()))
		amountInDefault = decimal.Zero
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn, selected.CurrencyCode, amountInDefault))
}

func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), userID, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		logger.Error("Failed to get transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		return
	}

	c.JSON(http.StatusOK, txn)
}

func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	transactions, err := h.transactionService.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, conversion.ErrNoCurrencies) {
			c.JSON(http.StatusOK, []dto.TransactionResponse{})
			return
		}
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}
