package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/lostpaws/petfinder-api/internal/domain/report"
	"github.com/lostpaws/petfinder-api/internal/httperr"
	"github.com/lostpaws/petfinder-api/internal/middleware"
	"github.com/lostpaws/petfinder-api/internal/models"
)

// callerFrom rebuilds the caller identity the auth middleware resolved.
func callerFrom(c *gin.Context) (domain.Caller, bool) {
	idVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return domain.Caller{}, false
	}
	id, ok := idVal.(uint)
	if !ok {
		return domain.Caller{}, false
	}

	caller := domain.Caller{ID: id, Role: models.RoleUser}
	if roleVal, ok := c.Get(middleware.ContextUserRole); ok {
		if role, ok := roleVal.(models.Role); ok {
			caller.Role = role
		}
	}
	if v, ok := c.Get(middleware.ContextEmail); ok {
		caller.Email, _ = v.(string)
	}
	if v, ok := c.Get(middleware.ContextFullName); ok {
		caller.FullName, _ = v.(string)
	}
	return caller, true
}

func parseReportID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, httperr.ErrBadRequest("invalid_report_id", "report id must be numeric")
	}
	return uint(id), nil
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

func parseDate(v string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, httperr.ErrValidation("invalid_date", "invalid date format")
}
