package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/threadfolio/threadfolio-api/internal/audit"
	"github.com/threadfolio/threadfolio-api/internal/domain/invoice"
	"github.com/threadfolio/threadfolio-api/internal/httperr"
	"github.com/threadfolio/threadfolio-api/internal/middleware"
	"github.com/threadfolio/threadfolio-api/internal/models"
)

// ServiceHandler manages the billable line items attached to garments.
type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: dispatcher}
}

type AddServiceRequest struct {
	Name           string `json:"name" binding:"required"`
	Quantity       int    `json:"quantity"`
	Unit           string `json:"unit"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

type UpdateServiceRequest struct {
	Removed       *bool   `json:"removed,omitempty"`
	RemovalReason *string `json:"removal_reason,omitempty"`
	Completed     *bool   `json:"completed,omitempty"`
}

func (h *ServiceHandler) ListForGarment(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	garmentID := c.Param("id")

	if !h.garmentBelongsToShop(c, garmentID, shopID) {
		return
	}

	var items []models.ServiceItem
	if err := h.db.
		Where("garment_id = ?", garmentID).
		Order("id ASC").
		Find(&items).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *ServiceHandler) AddToGarment(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)
	garmentID := c.Param("id")

	var req AddServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	unit := req.Unit
	if unit == "" {
		unit = models.UnitFlatRate
	}
	if !models.ValidUnit(unit) {
		httperr.BadRequest(c, "invalid_unit", "Service unit must be flat_rate, hour, day or item.")
		return
	}
	if req.UnitPriceCents < 0 {
		httperr.BadRequest(c, "invalid_price", "Unit price must be zero or positive cents.")
		return
	}

	if !h.garmentBelongsToShop(c, garmentID, shopID) {
		return
	}

	var garment models.Garment
	if err := h.db.First(&garment, garmentID).Error; err != nil {
		httperr.NotFound(c, "garment_not_found", "Garment not found.")
		return
	}

	qty := req.Quantity
	if qty < 1 {
		qty = 1
	}

	item := models.ServiceItem{
		GarmentID:      garment.ID,
		Name:           req.Name,
		Quantity:       qty,
		Unit:           unit,
		UnitPriceCents: req.UnitPriceCents,
		LineTotalCents: invoice.LineTotal(qty, req.UnitPriceCents),
	}

	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create the service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		UserID:   &userID,
		Action:   "service_added",
		Entity:   "service_item",
		EntityID: &item.ID,
	})

	c.JSON(http.StatusCreated, item)
}

// Update toggles the removal and completion flags. Removing a line item
// takes it out of the invoice total; the row itself stays for history.
func (h *ServiceHandler) Update(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var item models.ServiceItem
	err := h.db.
		Joins("JOIN garments ON garments.id = service_items.garment_id").
		Joins("JOIN orders ON orders.id = garments.order_id").
		Where("service_items.id = ? AND orders.shop_id = ?", id, shopID).
		First(&item).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Could not load the service.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Removed != nil {
		item.Removed = *req.Removed
		if !item.Removed {
			item.RemovalReason = ""
		}
	}
	if req.RemovalReason != nil {
		item.RemovalReason = *req.RemovalReason
	}
	if req.Completed != nil {
		item.Completed = *req.Completed
	}

	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update the service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		UserID:   &userID,
		Action:   "service_updated",
		Entity:   "service_item",
		EntityID: &item.ID,
		Metadata: map[string]any{"removed": item.Removed, "completed": item.Completed},
	})

	c.JSON(http.StatusOK, item)
}

func (h *ServiceHandler) garmentBelongsToShop(c *gin.Context, garmentID string, shopID uint) bool {
	var count int64
	err := h.db.
		Model(&models.Garment{}).
		Joins("JOIN orders ON orders.id = garments.order_id").
		Where("garments.id = ? AND orders.shop_id = ?", garmentID, shopID).
		Count(&count).Error
	if err != nil {
		httperr.Internal(c, "failed_to_get_garment", "Could not load the garment.")
		return false
	}
	if count == 0 {
		httperr.NotFound(c, "garment_not_found", "Garment not found.")
		return false
	}
	return true
}
