package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/domain"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/service"
)

type Handler struct {
	orchestrator *service.Orchestrator
}

func NewHandler(orchestrator *service.Orchestrator) *Handler {
	return &Handler{orchestrator: orchestrator}
}

// Analyze runs the full pipeline for one brand and returns the aggregate
// report plus its snapshot projection.
func (h *Handler) Analyze(c *gin.Context) {
	var body analyzeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req, opts := body.toDomain()
	report, err := h.orchestrator.Run(c.Request.Context(), req, opts)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "analysis failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// History lists run summaries for a brand, most recent first.
func (h *Handler) History(c *gin.Context) {
	brand := c.Param("brand")
	if brand == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "brand is required"})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	summaries, err := h.orchestrator.History(c.Request.Context(), brand, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read history"})
		return
	}
	if summaries == nil {
		summaries = []domain.RunSummary{}
	}

	c.JSON(http.StatusOK, gin.H{"brand": brand, "runs": summaries})
}

// RunByID returns one stored run in full.
func (h *Handler) RunByID(c *gin.Context) {
	runID := c.Param("id")

	run, err := h.orchestrator.RunByID(c.Request.Context(), runID)
	if err != nil {
		if errors.Is(err, domain.ErrRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get run"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"run": run})
}

// Snapshot serves the stable projection of the latest run for a brand.
func (h *Handler) Snapshot(c *gin.Context) {
	brand := c.Param("brand")

	snap, err := h.orchestrator.LatestSnapshot(c.Request.Context(), brand)
	if err != nil {
		if errors.Is(err, domain.ErrNoRuns) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no runs recorded for brand"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build snapshot"})
		return
	}

	c.JSON(http.StatusOK, snap)
}
