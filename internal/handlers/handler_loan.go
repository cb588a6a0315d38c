package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fintrack-labs/expense_tracker_api/internal/core/ports/services"
	"github.com/fintrack-labs/expense_tracker_api/internal/dto"
	"github.com/fintrack-labs/expense_tracker_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// loanHandler handles HTTP requests related to loans.
type loanHandler struct {
	loanService      portssvc.LoanSvcFacade
	dashboardService portssvc.DashboardSvcFacade
}

// registerLoanRoutes registers routes related to loans.
func registerLoanRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvcFacade, dashboardService portssvc.DashboardSvcFacade) {
	h := &loanHandler{loanService: loanService, dashboardService: dashboardService}

	loans := rg.Group("/loans")
	{
		loans.POST("", h.createLoan)
		loans.GET("", h.listLoans)
		loans.GET("/dashboard", h.getDashboard)
		loans.PUT("/:loanID", h.updateLoan)
		loans.DELETE("/:loanID", h.deleteLoan)
	}
}

// createLoan godoc
// @Summary Record a loan
// @Description Records money lent (GIVEN) or borrowed (TAKEN). Loans never affect account balances.
// @Tags loans
// @Accept  json
// @Produce  json
// @Param   loan body dto.CreateLoanRequest true "Loan details"
// @Success 201 {object} dto.LoanResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create loan"
// @Router /loans [post]
func (h *loanHandler) createLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateLoan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	loan, err := h.loanService.CreateLoan(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create loan")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLoanResponse(loan))
}

// listLoans godoc
// @Summary List loans
// @Description Retrieves all loans, newest first
// @Tags loans
// @Produce  json
// @Success 200 {array} dto.LoanResponse
// @Failure 500 {object} map[string]string "Failed to list loans"
// @Router /loans [get]
func (h *loanHandler) listLoans(c *gin.Context) {
	loans, err := h.loanService.ListLoans(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list loans")
		return
	}

	c.JSON(http.StatusOK, dto.ToListLoanResponse(loans))
}

// getDashboard godoc
// @Summary Loan dashboard
// @Description Returns all-time totals of loans given and taken, and the net position
// @Tags loans
// @Produce  json
// @Success 200 {object} dto.LoanDashboardResponse
// @Failure 500 {object} map[string]string "Failed to compute loan dashboard"
// @Router /loans/dashboard [get]
func (h *loanHandler) getDashboard(c *gin.Context) {
	dashboard, err := h.dashboardService.GetLoanDashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute loan dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanDashboardResponse(dashboard))
}

// updateLoan godoc
// @Summary Update a loan
// @Description Applies partial updates to a loan record
// @Tags loans
// @Accept  json
// @Produce  json
// @Param   loanID path int true "Loan ID"
// @Param   loan body dto.UpdateLoanRequest true "Fields to update"
// @Success 200 {object} dto.LoanResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Loan not found"
// @Failure 500 {object} map[string]string "Failed to update loan"
// @Router /loans/{loanID} [put]
func (h *loanHandler) updateLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loanID, ok := parseIDParam(c, "loanID")
	if !ok {
		return
	}

	var req dto.UpdateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateLoan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	loan, err := h.loanService.UpdateLoan(c.Request.Context(), loanID, req)
	if err != nil {
		respondError(c, err, "Failed to update loan")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

// deleteLoan godoc
// @Summary Delete a loan
// @Tags loans
// @Produce  json
// @Param   loanID path int true "Loan ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Loan not found"
// @Failure 500 {object} map[string]string "Failed to delete loan"
// @Router /loans/{loanID} [delete]
func (h *loanHandler) deleteLoan(c *gin.Context) {
	loanID, ok := parseIDParam(c, "loanID")
	if !ok {
		return
	}

	if err := h.loanService.DeleteLoan(c.Request.Context(), loanID); err != nil {
		respondError(c, err, "Failed to delete loan")
		return
	}

	c.Status(http.StatusNoContent)
}
