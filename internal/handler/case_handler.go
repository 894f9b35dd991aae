package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/domain"
	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/service"
)

// CaseHandler handles case intake CRUD and snapshot endpoints.
type CaseHandler struct {
	caseService service.CaseService
}

// NewCaseHandler creates a new CaseHandler.
func NewCaseHandler(caseService service.CaseService) *CaseHandler {
	return &CaseHandler{caseService: caseService}
}

type createCaseRequest struct {
	Name string `json:"name"`
}

type renameCaseRequest struct {
	Name string `json:"name" binding:"required"`
}

type saveSnapshotRequest struct {
	Kind    string          `json:"kind" binding:"required"`
	Payload json.RawMessage `json:"payload" binding:"required"`
}

// Create handles POST /api/v1/cases
func (h *CaseHandler) Create(c *gin.Context) {
	var req createCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	created, err := h.caseService.Create(c.Request.Context(), req.Name)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, created)
}

// List handles GET /api/v1/cases
func (h *CaseHandler) List(c *gin.Context) {
	cases, err := h.caseService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, cases)
}

// GetByID handles GET /api/v1/cases/:id
func (h *CaseHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	found, err := h.caseService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, found)
}

// Rename handles PUT /api/v1/cases/:id
func (h *CaseHandler) Rename(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req renameCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if err := h.caseService.Rename(c.Request.Context(), id, req.Name); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"id": id, "name": req.Name})
}

// UpdateDetails handles PUT /api/v1/cases/:id/details
func (h *CaseHandler) UpdateDetails(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var details domain.CaseDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if err := h.caseService.UpdateDetails(c.Request.Context(), id, details); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"id": id})
}

// Delete handles DELETE /api/v1/cases/:id
func (h *CaseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.caseService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"id": id})
}

// SaveSnapshot handles POST /api/v1/cases/:id/snapshots
func (h *CaseHandler) SaveSnapshot(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req saveSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	snap, err := h.caseService.SaveSnapshot(c.Request.Context(), id, domain.AnalysisKind(req.Kind), req.Payload)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, snap)
}

// ListSnapshots handles GET /api/v1/cases/:id/snapshots
func (h *CaseHandler) ListSnapshots(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	snaps, err := h.caseService.ListSnapshots(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, snaps)
}

// LatestSnapshot handles GET /api/v1/cases/:id/snapshots/latest?kind=...
func (h *CaseHandler) LatestSnapshot(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	kind, ok := domain.AllowedAnalysisKinds[c.Query("kind")]
	if !ok {
		RespondError(c, http.StatusBadRequest, "INVALID_SNAPSHOT_KIND", "invalid analysis snapshot kind")
		return
	}

	snap, err := h.caseService.LatestSnapshot(c.Request.Context(), id, kind)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, snap)
}

// parseID extracts the :id path parameter as a UUID. Returns false if the
// parameter is invalid (error response already written).
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "id must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}
