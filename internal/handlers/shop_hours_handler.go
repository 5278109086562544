package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/threadfolio/threadfolio-api/internal/cache"
	"github.com/threadfolio/threadfolio-api/internal/middleware"
	"github.com/threadfolio/threadfolio-api/internal/models"
)

type ShopHoursHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewShopHoursHandler(db *gorm.DB, cc *cache.Cache) *ShopHoursHandler {
	return &ShopHoursHandler{db: db, cache: cc}
}

type ShopDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	IsClosed  bool   `json:"is_closed"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

type ShopHoursUpdateRequest struct {
	Days []ShopDayConfig `json:"days" binding:"required"`
}

func (h *ShopHoursHandler) Get(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var hours []models.ShopHours
	if err := h.db.
		Where("shop_id = ?", shopID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_shop_hours"})
		return
	}

	c.JSON(http.StatusOK, hours)
}

// Update replaces the whole week in one shot; partial weeks leave the
// unmentioned days closed.
func (h *ShopHoursHandler) Update(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var req ShopHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if err := h.db.Where("shop_id = ?", shopID).Delete(&models.ShopHours{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_clear_existing_hours"})
		return
	}

	var toCreate []models.ShopHours
	for _, d := range req.Days {
		wh := models.ShopHours{
			ShopID:    shopID,
			Weekday:   d.Weekday,
			IsClosed:  d.IsClosed,
			OpenTime:  d.OpenTime,
			CloseTime: d.CloseTime,
		}
		toCreate = append(toCreate, wh)
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_shop_hours"})
			return
		}
	}

	var shop models.Shop
	if err := h.db.First(&shop, shopID).Error; err == nil {
		h.cache.Invalidate(context.Background(), cache.PublicShopKey(shop.Slug))
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
