package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lostpaws/petfinder-api/internal/httperr"
	"github.com/lostpaws/petfinder-api/internal/httpresp"
	"github.com/lostpaws/petfinder-api/internal/models"
)

// Admin-only view over the moderation audit trail.
type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "not authenticated")
		return
	}
	if !caller.IsAdmin() {
		httperr.Forbidden(c, "admin_only", "only an admin may read audit logs")
		return
	}

	action := c.Query("action")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})

	if action != "" {
		q = q.Where("action = ?", action)
	}

	if fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("created_at <= ?", to.Add(24*time.Hour))
		}
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(200).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", "something went wrong")
		return
	}

	httpresp.List(c, logs)
}
