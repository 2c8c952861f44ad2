package handler

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"category-audit-backend/internal/errors"
	"category-audit-backend/internal/models"
	"category-audit-backend/internal/services/audit"
	"category-audit-backend/internal/services/report"
	"category-audit-backend/internal/viewer"
)

// Error prefixes shown to API consumers when an upstream fetch fails.
const (
	fetchCategoriesPrefix = "Failed to fetch categories from model: "
	fetchInstancesPrefix  = "Failed to fetch family instances: "
)

// auditRequest is the shared request body of the audit views. Every field
// is optional except version_urn, which the viewer requires.
type auditRequest struct {
	Required   []models.RequiredCategory `json:"required_categories"`
	ModelLabel string                    `json:"model_label"`
	VersionURN string                    `json:"version_urn"`
}

// GetInstances lists family instances of the requested categories. Without
// a category query parameter the default instance categories are used.
func (h *AuditHandler) GetInstances(c *gin.Context) {
	groupID := c.Param("groupId")
	categories := c.QueryArray("category")

	records, err := h.serviceFor(c).FamilyInstances(c.Request.Context(), groupID, categories)
	if err != nil {
		respondError(c, err, fetchInstancesPrefix)
		return
	}

	if len(records) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"elements": []models.ElementRecord{},
			"count":    0,
			"message":  "No family instances found in the selected categories",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"elements": records, "count": len(records)})
}

// GetCategories returns the element count of every category used in the model.
func (h *AuditHandler) GetCategories(c *gin.Context) {
	counts, err := h.serviceFor(c).CategoryCounts(c.Request.Context(), c.Param("groupId"))
	if err != nil {
		respondError(c, err, fetchCategoriesPrefix)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": counts})
}

// GetSummary cross-checks the master category list against the contract
// from the request body and the live model.
func (h *AuditHandler) GetSummary(c *gin.Context) {
	_, contract, ok := bindRequest(c)
	if !ok {
		return
	}

	summary, err := h.serviceFor(c).Summarize(c.Request.Context(), c.Param("groupId"), contract)
	if err != nil {
		respondError(c, err, fetchCategoriesPrefix)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetDataSummary returns the summary grouped by classification.
func (h *AuditHandler) GetDataSummary(c *gin.Context) {
	_, contract, ok := bindRequest(c)
	if !ok {
		return
	}

	summary, err := h.serviceFor(c).DataSummary(c.Request.Context(), c.Param("groupId"), contract)
	if err != nil {
		respondError(c, err, fetchCategoriesPrefix)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetReport renders the category summary as a downloadable PDF.
func (h *AuditHandler) GetReport(c *gin.Context) {
	payload, contract, ok := bindRequest(c)
	if !ok {
		return
	}

	summary, err := h.serviceFor(c).Summarize(c.Request.Context(), c.Param("groupId"), contract)
	if err != nil {
		respondError(c, err, fetchCategoriesPrefix)
		return
	}

	now := time.Now()
	pdf, err := report.Build(report.Params{
		ModelLabel:  payload.ModelLabel,
		Rows:        summary.Rows,
		GeneratedAt: now,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+report.Filename(now)+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GetViewerPage renders the APS viewer with every contract category's
// elements isolated and colored.
func (h *AuditHandler) GetViewerPage(c *gin.Context) {
	payload, contract, ok := bindRequest(c)
	if !ok {
		return
	}
	if payload.VersionURN == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "version_urn required"})
		return
	}

	svc := h.serviceFor(c)
	token, err := svc.Client().AccessToken(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}

	colored := svc.ColoredCategories(c.Request.Context(), c.Param("groupId"), contract)
	overlay := viewer.BuildOverlay(colored)

	var buf bytes.Buffer
	if err := viewer.RenderPage(&buf, token, payload.VersionURN, overlay); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// bindRequest parses the optional request body and resolves the contract,
// falling back to the default contract when none is supplied.
func bindRequest(c *gin.Context) (*auditRequest, *models.Contract, bool) {
	var payload auditRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
			return nil, nil, false
		}
	}

	contract := models.DefaultContract()
	if len(payload.Required) > 0 {
		contract = &models.Contract{Required: payload.Required}
	}
	contract.Normalize()
	if err := contract.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}

	return &payload, contract, true
}

// serviceFor applies the optional region query override.
func (h *AuditHandler) serviceFor(c *gin.Context) *audit.Service {
	if region := c.Query("region"); region != "" {
		return h.service.WithRegion(region)
	}
	return h.service
}

func respondError(c *gin.Context, err error, prefix string) {
	msg := prefix + err.Error()

	switch {
	case errors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, errors.ErrTokenRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
	case errors.IsRateLimited(err):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": msg})
	default:
		var apiErr *errors.APIError
		var queryErr *errors.QueryError
		if errors.As(err, &apiErr) || errors.As(err, &queryErr) {
			c.JSON(http.StatusBadGateway, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

type AuditHandler struct {
	service *audit.Service
}

func NewAuditHandler(s *audit.Service) *AuditHandler {
	return &AuditHandler{service: s}
}
