package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/preqsy/monetra-server/internal/apperrors"
	"github.com/preqsy/monetra-server/internal/core/conversion"
	portssvc "github.com/preqsy/monetra-server/internal/core/ports/services"
	"github.com/preqsy/monetra-server/internal/dto"
	"github.com/preqsy/monetra-server/internal/middleware"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// RegisterCurrencyRoutes registers routes related to currencies.
func RegisterCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
	}

	userCurrencies := rg.Group("/users/currencies")
	{
		userCurrencies.POST("", h.addUserCurrency)
		userCurrencies.GET("", h.listUserCurrencies)
		userCurrencies.PUT("/default", h.setDefaultCurrency)
		userCurrencies.POST("/refresh", h.refreshExchangeRates)
	}
}

func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to get currency from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currency"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

func (h *currencyHandler) addUserCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddUserCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddUserCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to add user currency", slog.String("currency_code", req.CurrencyCode))

	userCurrency, err := h.currencyService.AddUserCurrency(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Currency '%s' already added", req.CurrencyCode)})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to add user currency", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add currency"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserCurrencyResponse(userCurrency))
}

func (h *currencyHandler) listUserCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	userCurrencies, err := h.currencyService.ListUserCurrencies(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list user currencies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list user currencies"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListUserCurrencyResponse(userCurrencies))
}

func (h *currencyHandler) setDefaultCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SetDefaultCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetDefaultCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to change default currency", slog.String("user_currency_id", req.UserCurrencyID))

	updated, err := h.currencyService.SetDefaultCurrency(c.Request.Context(), userID, req.UserCurrencyID)
	if err != nil {
		h.respondCurrencySetError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListUserCurrencyResponse(updated))
}

func (h *currencyHandler) refreshExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.currencyService.RefreshExchangeRates(c.Request.Context(), userID)
	if err != nil {
		h.respondCurrencySetError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListUserCurrencyResponse(updated))
}

// respondCurrencySetError maps currency-set operation failures onto HTTP
// statuses. Invariant violations are logged loudly: a user set with no
// default flagged means corrupted data, not a bad request.
func (h *currencyHandler) respondCurrencySetError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, conversion.ErrNoCurrencies):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Set up a currency first"})
	case errors.Is(err, conversion.ErrNoDefaultCurrency), errors.Is(err, apperrors.ErrInconsistentData):
		logger.Error("Currency set invariant violation", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User currency not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Currency set operation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update currencies"})
	}
}
