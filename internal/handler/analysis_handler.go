package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/domain"
	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/export"
	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/service"
)

// AnalysisHandler handles the one-shot AI analysis endpoints.
type AnalysisHandler struct {
	analysisService service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// analysisRequest carries the case context submitted for any analysis flow.
type analysisRequest struct {
	CaseDetails       string   `json:"caseDetails"`
	UploadedDocuments []string `json:"uploadedDocuments"`
}

func (r *analysisRequest) context() domain.CaseContext {
	return domain.CaseContext{
		CaseDetailsJSON: r.CaseDetails,
		Documents:       r.UploadedDocuments,
	}
}

// outlineRequest carries the intake fields for the presentation outline flow.
type outlineRequest struct {
	Details           domain.CaseDetails `json:"details"`
	UploadedDocuments []string           `json:"uploadedDocuments"`
}

// exportRequest carries previously generated stages for spreadsheet export.
type exportRequest struct {
	Stages []domain.CaseStageCost `json:"stages" binding:"required"`
}

// GenerateCaseAnalysis handles POST /api/v1/analysis/case
func (h *AnalysisHandler) GenerateCaseAnalysis(c *gin.Context) {
	var req analysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	out, err := h.analysisService.GenerateCaseAnalysis(c.Request.Context(), req.context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, out)
}

// GenerateKeyPoints handles POST /api/v1/analysis/key-points
func (h *AnalysisHandler) GenerateKeyPoints(c *gin.Context) {
	var req analysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	out, err := h.analysisService.GenerateKeyPoints(c.Request.Context(), req.context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, out)
}

// GenerateStrategy handles POST /api/v1/analysis/strategy
func (h *AnalysisHandler) GenerateStrategy(c *gin.Context) {
	var req analysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	out, err := h.analysisService.GenerateStrategySnapshot(c.Request.Context(), req.context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, out)
}

// GenerateRoadmap handles POST /api/v1/analysis/roadmap
func (h *AnalysisHandler) GenerateRoadmap(c *gin.Context) {
	var req analysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	out, err := h.analysisService.GenerateCostRoadmap(c.Request.Context(), req.context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, out)
}

// GenerateOutline handles POST /api/v1/analysis/outline
func (h *AnalysisHandler) GenerateOutline(c *gin.Context) {
	var req outlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	out, err := h.analysisService.GenerateOutline(c.Request.Context(), req.Details, req.UploadedDocuments)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, out)
}

// ExportRoadmap handles POST /api/v1/analysis/roadmap/export
// The stages from a prior roadmap generation are streamed back as an XLSX
// download.
func (h *AnalysisHandler) ExportRoadmap(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	filename := fmt.Sprintf("cost-roadmap-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := export.WriteRoadmapXLSX(c.Writer, req.Stages); err != nil {
		HandleError(c, err)
		return
	}
}
