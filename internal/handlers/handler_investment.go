package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fintrack-labs/expense_tracker_api/internal/core/ports/services"
	"github.com/fintrack-labs/expense_tracker_api/internal/dto"
	"github.com/fintrack-labs/expense_tracker_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// investmentHandler handles HTTP requests for investment accounts and their
// transactions.
type investmentHandler struct {
	investmentService portssvc.InvestmentSvcFacade
}

// registerInvestmentRoutes registers routes related to investments.
func registerInvestmentRoutes(rg *gin.RouterGroup, investmentService portssvc.InvestmentSvcFacade) {
	h := &investmentHandler{investmentService: investmentService}

	investments := rg.Group("/investments")
	{
		accounts := investments.Group("/accounts")
		{
			accounts.POST("", h.createAccount)
			accounts.GET("", h.listAccounts)
			accounts.PUT("/:accountID", h.updateAccount)
			accounts.DELETE("/:accountID", h.deleteAccount)
		}

		transactions := investments.Group("/transactions")
		{
			transactions.POST("", h.createTransaction)
			transactions.GET("", h.listTransactions)
			transactions.DELETE("/:transactionID", h.deleteTransaction)
		}
	}
}

// createAccount godoc
// @Summary Create an investment account
// @Tags investments
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateInvestmentAccountRequest true "Investment account details"
// @Success 201 {object} dto.InvestmentAccountResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 500 {object} map[string]string "Failed to create investment account"
// @Router /investments/accounts [post]
func (h *investmentHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvestmentAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvestmentAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.investmentService.CreateInvestmentAccount(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create investment account")
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvestmentAccountResponse(account))
}

// listAccounts godoc
// @Summary List investment accounts
// @Tags investments
// @Produce  json
// @Success 200 {array} dto.InvestmentAccountResponse
// @Failure 500 {object} map[string]string "Failed to list investment accounts"
// @Router /investments/accounts [get]
func (h *investmentHandler) listAccounts(c *gin.Context) {
	accounts, err := h.investmentService.ListInvestmentAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list investment accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvestmentAccountResponse(accounts))
}

// updateAccount godoc
// @Summary Update an investment account
// @Description Replaces the account's company, agent and status
// @Tags investments
// @Accept  json
// @Produce  json
// @Param   accountID path int true "Investment account ID"
// @Param   account body dto.UpdateInvestmentAccountRequest true "New field values"
// @Success 200 {object} dto.InvestmentAccountResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 404 {object} map[string]string "Investment account not found"
// @Failure 500 {object} map[string]string "Failed to update investment account"
// @Router /investments/accounts/{accountID} [put]
func (h *investmentHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseIDParam(c, "accountID")
	if !ok {
		return
	}

	var req dto.UpdateInvestmentAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateInvestmentAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.investmentService.UpdateInvestmentAccount(c.Request.Context(), accountID, req)
	if err != nil {
		respondError(c, err, "Failed to update investment account")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentAccountResponse(account))
}

// deleteAccount godoc
// @Summary Delete an investment account
// @Description Removes an investment account and all its transactions atomically
// @Tags investments
// @Produce  json
// @Param   accountID path int true "Investment account ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Investment account not found"
// @Failure 500 {object} map[string]string "Failed to delete investment account"
// @Router /investments/accounts/{accountID} [delete]
func (h *investmentHandler) deleteAccount(c *gin.Context) {
	accountID, ok := parseIDParam(c, "accountID")
	if !ok {
		return
	}

	if err := h.investmentService.DeleteInvestmentAccount(c.Request.Context(), accountID); err != nil {
		respondError(c, err, "Failed to delete investment account")
		return
	}

	c.Status(http.StatusNoContent)
}

// createTransaction godoc
// @Summary Record an investment transaction
// @Description Records a deposit or withdrawal against an investment account, with an optional realized profit
// @Tags investments
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateInvestmentTransactionRequest true "Transaction details"
// @Success 201 {object} dto.InvestmentTransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Investment account not found"
// @Failure 500 {object} map[string]string "Failed to create investment transaction"
// @Router /investments/transactions [post]
func (h *investmentHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvestmentTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvestmentTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.investmentService.CreateInvestmentTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create investment transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvestmentTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List investment transactions
// @Tags investments
// @Produce  json
// @Success 200 {array} dto.InvestmentTransactionResponse
// @Failure 500 {object} map[string]string "Failed to list investment transactions"
// @Router /investments/transactions [get]
func (h *investmentHandler) listTransactions(c *gin.Context) {
	txns, err := h.investmentService.ListInvestmentTransactions(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list investment transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvestmentTransactionResponse(txns))
}

// deleteTransaction godoc
// @Summary Delete an investment transaction
// @Tags investments
// @Produce  json
// @Param   transactionID path int true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to delete investment transaction"
// @Router /investments/transactions/{transactionID} [delete]
func (h *investmentHandler) deleteTransaction(c *gin.Context) {
	transactionID, ok := parseIDParam(c, "transactionID")
	if !ok {
		return
	}

	if err := h.investmentService.DeleteInvestmentTransaction(c.Request.Context(), transactionID); err != nil {
		respondError(c, err, "Failed to delete investment transaction")
		return
	}

	c.Status(http.StatusNoContent)
}
