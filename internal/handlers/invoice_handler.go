package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/threadfolio/threadfolio-api/internal/domain/invoice"
	"github.com/threadfolio/threadfolio-api/internal/httperr"
	"github.com/threadfolio/threadfolio-api/internal/middleware"
	"github.com/threadfolio/threadfolio-api/internal/models"
)

// InvoiceHandler serves the derived invoice view. Nothing here is stored;
// the summary is recomputed from line items and payments on every request.
type InvoiceHandler struct {
	db *gorm.DB
}

func NewInvoiceHandler(db *gorm.DB) *InvoiceHandler {
	return &InvoiceHandler{db: db}
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	orderID := c.Param("id")

	var order models.Order
	err := h.db.
		Preload("Client").
		Preload("Garments.Services").
		Preload("Payments").
		Where("id = ? AND shop_id = ?", orderID, shopID).
		First(&order).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "order_not_found", "Order not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_order", "Could not load the order.")
		return
	}

	var items []models.ServiceItem
	for _, g := range order.Garments {
		items = append(items, g.Services...)
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"client_name":  order.Client.FullName(),
		"items":        items,
		"payments":     order.Payments,
		"summary":      invoice.Summarize(items, order.Payments),
	})
}
