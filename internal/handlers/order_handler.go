package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/threadfolio/threadfolio-api/internal/audit"
	garmentdom "github.com/threadfolio/threadfolio-api/internal/domain/garment"
	"github.com/threadfolio/threadfolio-api/internal/domain/invoice"
	"github.com/threadfolio/threadfolio-api/internal/httperr"
	"github.com/threadfolio/threadfolio-api/internal/middleware"
	"github.com/threadfolio/threadfolio-api/internal/models"
)

type OrderHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewOrderHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *OrderHandler {
	return &OrderHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type CreateServiceItemRequest struct {
	Name           string `json:"name" binding:"required"`
	Quantity       int    `json:"quantity"`
	Unit           string `json:"unit"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

type CreateGarmentRequest struct {
	Name      string                     `json:"name"`
	DueDate   *string                    `json:"due_date"`
	EventDate *string                    `json:"event_date"`
	Notes     string                     `json:"notes"`
	Icon      string                     `json:"icon"`
	Services  []CreateServiceItemRequest `json:"services"`
}

type CreateOrderRequest struct {
	ClientID uint                   `json:"client_id" binding:"required"`
	Notes    string                 `json:"notes"`
	Garments []CreateGarmentRequest `json:"garments" binding:"required,min=1"`
}

// --------- Handlers ---------

// Create writes the order, its garments and their line items inside one
// transaction. A failed garment insert must never leave an orphaned order
// behind.
func (h *OrderHandler) Create(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var shop models.Shop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		httperr.Unauthorized(c, "shop_not_found", "No shop context.")
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var client models.Client
	if err := h.db.
		Where("id = ? AND shop_id = ?", req.ClientID, shopID).
		First(&client).Error; err != nil {
		httperr.BadRequest(c, "client_not_found", "Client not found.")
		return
	}

	loc := locationFromShop(&shop)

	type parsedGarment struct {
		due   *time.Time
		event *time.Time
	}
	parsed := make([]parsedGarment, len(req.Garments))
	names := make([]string, len(req.Garments))

	for i, g := range req.Garments {
		names[i] = g.Name

		due, err := parseOptionalDate(g.DueDate, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_due_date", "Garment due date must be YYYY-MM-DD.")
			return
		}
		event, err := parseOptionalDate(g.EventDate, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_event_date", "Garment event date must be YYYY-MM-DD.")
			return
		}
		parsed[i] = parsedGarment{due: due, event: event}

		for _, s := range g.Services {
			if s.Unit != "" && !models.ValidUnit(s.Unit) {
				httperr.BadRequest(c, "invalid_unit", "Service unit must be flat_rate, hour, day or item.")
				return
			}
			if s.UnitPriceCents < 0 {
				httperr.BadRequest(c, "invalid_price", "Unit price must be zero or positive cents.")
				return
			}
		}
	}

	names = garmentdom.ApplyDefaultNames(names)

	var created models.Order

	err := h.db.Transaction(func(tx *gorm.DB) error {

		order := models.Order{
			ShopID:      shopID,
			ClientID:    client.ID,
			OrderNumber: fmt.Sprintf("TF-%d", time.Now().UnixNano()%1_000_000_000),
			Status:      models.OrderStatusInProgress,
			Notes:       req.Notes,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for i, g := range req.Garments {
			garment := models.Garment{
				OrderID:   order.ID,
				Name:      names[i],
				Stage:     string(garmentdom.StageNew),
				DueDate:   parsed[i].due,
				EventDate: parsed[i].event,
				Notes:     g.Notes,
				Icon:      g.Icon,
			}
			if err := tx.Create(&garment).Error; err != nil {
				return err
			}

			for _, s := range g.Services {
				qty := s.Quantity
				if qty < 1 {
					qty = 1
				}
				unit := s.Unit
				if unit == "" {
					unit = models.UnitFlatRate
				}
				item := models.ServiceItem{
					GarmentID:      garment.ID,
					Name:           s.Name,
					Quantity:       qty,
					Unit:           unit,
					UnitPriceCents: s.UnitPriceCents,
					LineTotalCents: invoice.LineTotal(qty, s.UnitPriceCents),
				}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
			}
		}

		created = order
		return nil
	})

	if err != nil {
		httperr.Internal(c, "failed_to_create_order", "Could not create the order.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		UserID:   &userID,
		Action:   "order_created",
		Entity:   "order",
		EntityID: &created.ID,
	})

	var full models.Order
	h.db.
		Preload("Client").
		Preload("Garments.Services").
		First(&full, created.ID)

	c.JSON(http.StatusCreated, full)
}

func (h *OrderHandler) List(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	status := c.Query("status")

	q := h.db.Where("shop_id = ?", shopID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var orders []models.Order
	if err := q.
		Preload("Client").
		Preload("Garments").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {

		httperr.Internal(c, "failed_to_list_orders", "Could not list orders.")
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	id := c.Param("id")

	var order models.Order
	if err := h.db.
		Preload("Client").
		Preload("Garments.Services").
		Preload("Garments.Events").
		Preload("Payments").
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&order).Error; err != nil {

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
		"order":   order,
		"invoice": invoice.Summarize(items, order.Payments),
	})
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	switch req.Status {
	case models.OrderStatusInProgress, models.OrderStatusCompleted, models.OrderStatusCancelled:
	default:
		httperr.BadRequest(c, "invalid_status", "Unknown order status.")
		return
	}

	var order models.Order
	if err := h.db.
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&order).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "order_not_found", "Order not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_order", "Could not load the order.")
		return
	}

	order.Status = req.Status
	if err := h.db.Save(&order).Error; err != nil {
		httperr.Internal(c, "failed_to_update_order", "Could not update the order.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		UserID:   &userID,
		Action:   "order_status_changed",
		Entity:   "order",
		EntityID: &order.ID,
		Metadata: map[string]any{"status": order.Status},
	})

	c.JSON(http.StatusOK, order)
}
