package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/threadfolio/threadfolio-api/internal/httperr"
	"github.com/threadfolio/threadfolio-api/internal/middleware"
	"github.com/threadfolio/threadfolio-api/internal/models"
)

type AuditLogHandler struct {
	db *gorm.DB
}

func NewAuditLogHandler(db *gorm.DB) *AuditLogHandler {
	return &AuditLogHandler{db: db}
}

// List returns the shop's audit trail, newest first, with optional
// action/entity filters and page/limit pagination.
func (h *AuditLogHandler) List(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 || limit > 200 {
		limit = 50
	}

	q := h.db.WithContext(c.Request.Context()).
		Model(&models.AuditLog{}).
		Where("shop_id = ?", shopID)

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_count_logs", "Could not count audit logs.")
		return
	}

	var logs []models.AuditLog
	err := q.Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		httperr.Internal(c, "failed_to_list_logs", "Could not list audit logs.")
		return
	}

	c.JSON(200, gin.H{
		"data":  logs,
		"page":  page,
		"limit": limit,
		"total": total,
	})
}
