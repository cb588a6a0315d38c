package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
	portssvc "github.com/fintrack-labs/expense_tracker_api/internal/core/ports/services"
	"github.com/fintrack-labs/expense_tracker_api/internal/dto"
	"github.com/fintrack-labs/expense_tracker_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// entryHandler handles HTTP requests for one ledger entry kind. The same
// handler serves /expenses and /income; only the kind differs.
type entryHandler struct {
	kind             domain.EntryKind
	ledgerService    portssvc.LedgerSvcFacade
	dashboardService portssvc.DashboardSvcFacade
}

// registerEntryRoutes registers the CRUD and dashboard routes for one entry
// kind on the given group (e.g. /api/v1/expenses).
func registerEntryRoutes(rg *gin.RouterGroup, kind domain.EntryKind, ledgerService portssvc.LedgerSvcFacade, dashboardService portssvc.DashboardSvcFacade) {
	h := &entryHandler{
		kind:             kind,
		ledgerService:    ledgerService,
		dashboardService: dashboardService,
	}

	rg.POST("", h.createEntry)
	rg.GET("", h.listEntries)
	rg.GET("/dashboard", h.getDashboard)
	rg.GET("/:entryID", h.getEntry)
	rg.PUT("/:entryID", h.updateEntry)
	rg.DELETE("/:entryID", h.deleteEntry)
}

// createEntry godoc
// @Summary Create a ledger entry
// @Description Creates an expense or income entry. Linking an account applies the entry's effect to its balance atomically.
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateEntryRequest true "Entry details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Referenced account not found"
// @Failure 500 {object} map[string]string "Failed to create entry"
// @Router /expenses [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntry",
			slog.String("kind", string(h.kind)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.ledgerService.CreateEntry(c.Request.Context(), h.kind, req)
	if err != nil {
		respondError(c, err, "Failed to create entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary List ledger entries
// @Description Retrieves a paginated list of entries of this kind, most recent first
// @Tags entries
// @Produce  json
// @Param   limit query int false "Max results" default(100)
// @Param   skip query int false "Offset" default(0)
// @Success 200 {array} dto.EntryResponse
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Router /expenses [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.ledgerService.ListEntries(c.Request.Context(), h.kind, params)
	if err != nil {
		respondError(c, err, "Failed to list entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToListEntryResponse(entries))
}

// getDashboard godoc
// @Summary Ledger dashboard
// @Description Returns the month-to-date total and the five most recent entries of this kind
// @Tags entries
// @Produce  json
// @Success 200 {object} dto.LedgerDashboardResponse
// @Failure 500 {object} map[string]string "Failed to compute dashboard"
// @Router /expenses/dashboard [get]
func (h *entryHandler) getDashboard(c *gin.Context) {
	dashboard, err := h.dashboardService.GetLedgerDashboard(c.Request.Context(), h.kind)
	if err != nil {
		respondError(c, err, "Failed to compute dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerDashboardResponse(dashboard))
}

// getEntry godoc
// @Summary Get a ledger entry by ID
// @Tags entries
// @Produce  json
// @Param   entryID path int true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve entry"
// @Router /expenses/{entryID} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	entryID, ok := parseIDParam(c, "entryID")
	if !ok {
		return
	}

	entry, err := h.ledgerService.GetEntryByID(c.Request.Context(), h.kind, entryID)
	if err != nil {
		respondError(c, err, "Failed to retrieve entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// updateEntry godoc
// @Summary Update a ledger entry
// @Description Applies partial updates. Changing the linked account moves the entry's balance effect; setting accountID to null detaches it.
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entryID path int true "Entry ID"
// @Param   entry body dto.UpdateEntryRequest true "Fields to update"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Entry or referenced account not found"
// @Failure 500 {object} map[string]string "Failed to update entry"
// @Router /expenses/{entryID} [put]
func (h *entryHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, ok := parseIDParam(c, "entryID")
	if !ok {
		return
	}

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEntry",
			slog.String("kind", string(h.kind)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.ledgerService.UpdateEntry(c.Request.Context(), h.kind, entryID, req)
	if err != nil {
		respondError(c, err, "Failed to update entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a ledger entry
// @Description Removes an entry and reverts its effect on the linked account balance
// @Tags entries
// @Produce  json
// @Param   entryID path int true "Entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to delete entry"
// @Router /expenses/{entryID} [delete]
func (h *entryHandler) deleteEntry(c *gin.Context) {
	entryID, ok := parseIDParam(c, "entryID")
	if !ok {
		return
	}

	if err := h.ledgerService.DeleteEntry(c.Request.Context(), h.kind, entryID); err != nil {
		respondError(c, err, "Failed to delete entry")
		return
	}

	c.Status(http.StatusNoContent)
}
