package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	portssvc "github.com/SscSPs/scan_payroll_app/internal/core/ports/services"
	"github.com/SscSPs/scan_payroll_app/internal/dto"
	"github.com/SscSPs/scan_payroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// legacyStageRoutes keeps the per-stage endpoints older clients call.
var legacyStageRoutes = map[string]domain.Stage{
	"verify":          domain.StageSupervisor,
	"approve-center":  domain.StageCenter,
	"approve-project": domain.StageProject,
	"approve-finance": domain.StageFinance,
}

type scanEntryHandler struct {
	workflowService portssvc.WorkflowSvcFacade
}

func newScanEntryHandler(ws portssvc.WorkflowSvcFacade) *scanEntryHandler {
	return &scanEntryHandler{workflowService: ws}
}

func registerScanEntryRoutes(rg *gin.RouterGroup, workflowService portssvc.WorkflowSvcFacade) {
	h := newScanEntryHandler(workflowService)

	entries := rg.Group("/scan-entries")
	{
		entries.POST("", h.submitEntry)
		entries.GET("/mine", h.listMyEntries)
		entries.GET("/pending", h.listPending)
		entries.GET("/approved", h.listApproved)
		entries.GET("/:entryID", h.getEntry)
		entries.PUT("/:entryID/stages/:stage", h.advanceStage)
		entries.PUT("/:entryID/lock", h.lockEntry)
		for path, stage := range legacyStageRoutes {
			entries.PUT("/:entryID/"+path, h.advanceFixedStage(stage))
		}
	}
}

// submitEntry godoc
// @Summary Submit a scan entry
// @Description Records the caller's scan count for a project. The entry starts in the entered status.
// @Tags scan-entries
// @Accept json
// @Produce json
// @Param entry body dto.SubmitEntryRequest true "Scan entry"
// @Success 201 {object} dto.ScanEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /scan-entries [post]
func (h *scanEntryHandler) submitEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	var req dto.SubmitEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SubmitEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.workflowService.Submit(c.Request.Context(), actor, req)
	if err != nil {
		handleServiceError(c, logger, "submit_entry", err)
		return
	}

	logger.Info("Scan entry submitted", slog.String("entry_id", entry.EntryID), slog.Int("scans", entry.Scans))
	c.JSON(http.StatusCreated, dto.ToScanEntryResponse(entry))
}

// listMyEntries godoc
// @Summary List my scan entries
// @Description Lists the caller's own submissions, newest first.
// @Tags scan-entries
// @Produce json
// @Success 200 {object} dto.ListScanEntriesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /scan-entries/mine [get]
func (h *scanEntryHandler) listMyEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	entries, err := h.workflowService.ListMyEntries(c.Request.Context(), actor)
	if err != nil {
		handleServiceError(c, logger, "list_my_entries", err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListScanEntriesResponse(entries))
}

// listPending godoc
// @Summary List pending scan entries
// @Description Lists the entries waiting on the caller's role. Admin sees every entry that is not locked.
// @Tags scan-entries
// @Produce json
// @Success 200 {object} dto.ListScanEntriesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /scan-entries/pending [get]
func (h *scanEntryHandler) listPending(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	entries, err := h.workflowService.ListPending(c.Request.Context(), actor)
	if err != nil {
		handleServiceError(c, logger, "list_pending", err)
		return
	}
	logger.Debug("Listed pending entries", slog.Int("count", len(entries)))
	c.JSON(http.StatusOK, dto.ToListScanEntriesResponse(entries))
}

// listApproved godoc
// @Summary List approved scan entries
// @Description Lists every finance-approved entry. Admin and finance only.
// @Tags scan-entries
// @Produce json
// @Success 200 {object} dto.ListScanEntriesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /scan-entries/approved [get]
func (h *scanEntryHandler) listApproved(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	entries, err := h.workflowService.ListApproved(c.Request.Context(), actor)
	if err != nil {
		handleServiceError(c, logger, "list_approved", err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListScanEntriesResponse(entries))
}

// getEntry godoc
// @Summary Get a scan entry
// @Description Returns one entry with its full audit trail.
// @Tags scan-entries
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.ScanEntryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /scan-entries/{entryID} [get]
func (h *scanEntryHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	entryID := c.Param("entryID")
	entry, err := h.workflowService.GetEntry(c.Request.Context(), actor, entryID)
	if err != nil {
		handleServiceError(c, logger.With(slog.String("entry_id", entryID)), "get_entry", err)
		return
	}
	c.JSON(http.StatusOK, dto.ToScanEntryResponse(entry))
}

// advanceStage godoc
// @Summary Clear an approval stage
// @Description Records the caller's approval of the named stage. The entry must be in the status the stage requires.
// @Tags scan-entries
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param stage path string true "Stage" Enums(supervisor, center, project, finance)
// @Success 200 {object} dto.ScanEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Entry is not in the status this stage requires"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /scan-entries/{entryID}/stages/{stage} [put]
func (h *scanEntryHandler) advanceStage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var uri dto.AdvanceStageURI
	if err := c.ShouldBindUri(&uri); err != nil {
		logger.Warn("Invalid stage path", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stage: " + c.Param("stage")})
		return
	}
	h.advance(c, logger, uri.EntryID, domain.Stage(uri.Stage))
}

// advanceFixedStage serves the legacy per-stage endpoints.
func (h *scanEntryHandler) advanceFixedStage(stage domain.Stage) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.advance(c, middleware.GetLoggerFromCtx(c.Request.Context()), c.Param("entryID"), stage)
	}
}

func (h *scanEntryHandler) advance(c *gin.Context, logger *slog.Logger, entryID string, stage domain.Stage) {
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("entry_id", entryID), slog.String("stage", string(stage)))

	entry, err := h.workflowService.AdvanceStage(c.Request.Context(), entryID, stage, actor)
	if err != nil {
		handleServiceError(c, logger, "advance_stage", err)
		return
	}

	logger.Info("Stage cleared", slog.String("status", string(entry.Status)), slog.Int("version", entry.Version))
	c.JSON(http.StatusOK, dto.ToScanEntryResponse(entry))
}

// lockEntry godoc
// @Summary Lock a scan entry
// @Description Freezes the entry. Admin only; a locked entry accepts no further transitions.
// @Tags scan-entries
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param body body dto.LockEntryRequest false "Lock reason"
// @Success 200 {object} dto.ScanEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Entry already locked"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /scan-entries/{entryID}/lock [put]
func (h *scanEntryHandler) lockEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	var req dto.LockEntryRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for LockEntry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	entryID := c.Param("entryID")
	logger = logger.With(slog.String("entry_id", entryID))
	entry, err := h.workflowService.LockEntry(c.Request.Context(), entryID, actor, req.Reason)
	if err != nil {
		handleServiceError(c, logger, "lock_entry", err)
		return
	}

	logger.Info("Entry locked")
	c.JSON(http.StatusOK, dto.ToScanEntryResponse(entry))
}
