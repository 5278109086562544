package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/threadfolio/threadfolio-api/internal/audit"
	"github.com/threadfolio/threadfolio-api/internal/domain/invoice"
	"github.com/threadfolio/threadfolio-api/internal/httperr"
	"github.com/threadfolio/threadfolio-api/internal/middleware"
	"github.com/threadfolio/threadfolio-api/internal/models"
	"github.com/threadfolio/threadfolio-api/internal/payments"
)

type PaymentHandler struct {
	db       *gorm.DB
	audit    *audit.Dispatcher
	checkout *payments.Checkout
}

func NewPaymentHandler(db *gorm.DB, dispatcher *audit.Dispatcher, checkout *payments.Checkout) *PaymentHandler {
	return &PaymentHandler{db: db, audit: dispatcher, checkout: checkout}
}

type RecordPaymentRequest struct {
	Type        string `json:"type"`
	Method      string `json:"method"`
	AmountCents int64  `json:"amount_cents" binding:"required"`
}

// Record stores an in-person payment against an order. Collection is only
// allowed while the invoice shows a positive amount due.
func (h *PaymentHandler) Record(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)
	orderID := c.Param("id")

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}
	if req.AmountCents <= 0 {
		httperr.BadRequest(c, "invalid_amount", "Payment amount must be positive cents.")
		return
	}

	order, summary, ok := h.loadOrderInvoice(c, orderID, shopID)
	if !ok {
		return
	}

	if !summary.CanCollectPayment {
		httperr.BadRequest(c, "nothing_due", "The invoice has no amount due to collect.")
		return
	}

	payment := models.Payment{
		ShopID:      shopID,
		OrderID:     order.ID,
		Type:        defaultString(req.Type, "remainder"),
		Method:      defaultString(req.Method, "cash"),
		AmountCents: req.AmountCents,
		Status:      models.PaymentStatusCompleted,
	}

	if err := h.db.Create(&payment).Error; err != nil {
		httperr.Internal(c, "failed_to_record_payment", "Could not record the payment.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		UserID:   &userID,
		Action:   "payment_recorded",
		Entity:   "payment",
		EntityID: &payment.ID,
		Metadata: map[string]any{"amount_cents": payment.AmountCents, "method": payment.Method},
	})

	c.JSON(http.StatusCreated, payment)
}

// CreateCheckout asks the card gateway for a hosted checkout link covering
// the current amount due and stashes a pending payment row keyed by the
// external reference.
func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)
	orderID := c.Param("id")

	if !h.checkout.Configured() {
		httperr.ServiceUnavailable(c, "payments_not_configured", "The payment gateway is not configured.")
		return
	}

	order, summary, ok := h.loadOrderInvoice(c, orderID, shopID)
	if !ok {
		return
	}

	if !summary.CanCollectPayment {
		httperr.BadRequest(c, "nothing_due", "The invoice has no amount due to collect.")
		return
	}

	externalRef := uuid.NewString()
	title := fmt.Sprintf("Threadfolio order %s", order.OrderNumber)

	link, err := h.checkout.CreateLink(
		c.Request.Context(),
		externalRef,
		title,
		summary.AmountDueCents,
	)
	if err != nil {
		httperr.Internal(c, "checkout_failed", "Could not create the checkout link.")
		return
	}

	payment := models.Payment{
		ShopID:            shopID,
		OrderID:           order.ID,
		Type:              "remainder",
		Method:            "external",
		AmountCents:       summary.AmountDueCents,
		Status:            models.PaymentStatusPending,
		ExternalReference: externalRef,
	}
	if err := h.db.Create(&payment).Error; err != nil {
		httperr.Internal(c, "failed_to_record_payment", "Could not record the pending payment.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		UserID:   &userID,
		Action:   "checkout_created",
		Entity:   "payment",
		EntityID: &payment.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"payment_id": payment.ID,
		"checkout":   link,
	})
}

func (h *PaymentHandler) loadOrderInvoice(c *gin.Context, orderID string, shopID uint) (*models.Order, *invoice.Summary, bool) {
	var order models.Order
	err := h.db.
		Preload("Garments.Services").
		Preload("Payments").
		Where("id = ? AND shop_id = ?", orderID, shopID).
		First(&order).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "order_not_found", "Order not found.")
		} else {
			httperr.Internal(c, "failed_to_get_order", "Could not load the order.")
		}
		return nil, nil, false
	}

	var items []models.ServiceItem
	for _, g := range order.Garments {
		items = append(items, g.Services...)
	}

	summary := invoice.Summarize(items, order.Payments)
	return &order, &summary, true
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
