package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fxcalc/currency-calculator-api/internal/apperrors"
	portssvc "github.com/fxcalc/currency-calculator-api/internal/core/ports/services"
	"github.com/fxcalc/currency-calculator-api/internal/dto"
	"github.com/fxcalc/currency-calculator-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeHandler handles HTTP requests related to currency conversion.
type exchangeHandler struct {
	exchangeService portssvc.ExchangeSvcFacade
}

// newExchangeHandler creates a new exchangeHandler.
func newExchangeHandler(es portssvc.ExchangeSvcFacade) *exchangeHandler {
	return &exchangeHandler{
		exchangeService: es,
	}
}

// registerExchangeRoutes registers routes related to currency conversion.
func registerExchangeRoutes(rg *gin.RouterGroup, exchangeService portssvc.ExchangeSvcFacade) {
	h := newExchangeHandler(exchangeService)

	currency := rg.Group("/currency")
	{
		currency.POST("/exchange", h.exchange)
	}
}

// exchange godoc
// @Summary Convert an amount between currencies
// @Description Converts an amount using the fixed in-memory rate table. The result is rounded to 2 fractional digits (half up); identity conversions return the amount unchanged.
// @Tags currency
// @Accept  json
// @Produce  plain
// @Param   exchange body dto.ExchangeRequest true "Conversion details"
// @Success 200 {string} string "Converted amount, e.g. 400.00"
// @Failure 400 {string} string "unknown currency:<code>"
// @Router /currency/exchange [post]
func (h *exchangeHandler) exchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Exchange", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("from", req.From), slog.String("to", req.To))
	logger.Info("Received request to convert currency")

	result, err := h.exchangeService.Convert(c.Request.Context(), req.Amount, req.From, req.To)
	if err != nil {
		var unknownErr *apperrors.UnknownCurrencyError
		if errors.As(err, &unknownErr) {
			logger.Warn("Unknown currency in conversion request", slog.String("currency_code", unknownErr.Code))
			c.String(http.StatusBadRequest, unknownErr.Error())
		} else {
			logger.Error("Failed to convert currency in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert currency"})
		}
		return
	}

	logger.Info("Currency converted successfully")

	// Identity conversions skip the rate math entirely, so the body is not
	// forced into two fractional digits on that branch.
	if req.From == req.To {
		c.String(http.StatusOK, result.String())
		return
	}
	c.String(http.StatusOK, result.StringFixed(2))
}
