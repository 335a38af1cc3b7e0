package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projectstage/config-backend/internal/projects/domain"
	"github.com/projectstage/config-backend/internal/projects/parser"
)

type uploadReq struct {
	Data string `json:"data"`
}

// upload stages the submitted configuration and synchronously drains the
// whole staging area. The response is "ok" once the payload is staged;
// ingestion failures of the staged entry surface in logs and in the batch
// audit, not in this response.
func (h *Handler) upload(c *gin.Context) {
	var req uploadReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Data == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data missing"})
		return
	}

	id, err := parser.ExtractID([]byte(req.Data))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.staging.Put(id, []byte(req.Data)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.pipeline.Run(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"response": "ok"})
}

func (h *Handler) status(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	p, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": p.Status})
}

type updateStatusReq struct {
	ProjectID string `json:"projectId"`
	NewStatus string `json:"newStatus"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil || req.ProjectID == "" || req.NewStatus == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project ID and new status are required"})
		return
	}

	ctx := c.Request.Context()
	next := domain.Status(req.NewStatus)

	current, err := h.repo.FindByID(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.statuses.Validate(current.Status, next); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	updated, err := h.repo.UpdateStatus(ctx, req.ProjectID, next)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "project status updated successfully",
		"project": updated,
	})
}
