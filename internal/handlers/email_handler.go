package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/threadfolio/threadfolio-api/internal/domain/invoice"
	"github.com/threadfolio/threadfolio-api/internal/httperr"
	"github.com/threadfolio/threadfolio-api/internal/httpresp"
	"github.com/threadfolio/threadfolio-api/internal/mailer"
	"github.com/threadfolio/threadfolio-api/internal/middleware"
	"github.com/threadfolio/threadfolio-api/internal/models"
	"github.com/threadfolio/threadfolio-api/internal/validators"
)

type EmailHandler struct {
	db     *gorm.DB
	mailer *mailer.Mailer
}

func NewEmailHandler(db *gorm.DB, m *mailer.Mailer) *EmailHandler {
	return &EmailHandler{db: db, mailer: m}
}

type SendTestEmailRequest struct {
	To string `json:"to" binding:"required,email"`
}

// SendTest lets the owner confirm SMTP settings before relying on them.
func (h *EmailHandler) SendTest(c *gin.Context) {
	var req SendTestEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A valid destination email is required.")
		return
	}

	if !validators.IsEmailDomainValid(req.To) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not accept mail.")
		return
	}

	shopID := c.MustGet(middleware.ContextShopID).(uint)
	var shop models.Shop
	if err := h.db.WithContext(c.Request.Context()).First(&shop, shopID).Error; err != nil {
		httperr.Internal(c, "failed_to_load_shop", "Could not load the shop.")
		return
	}

	body := fmt.Sprintf("This is a test message from %s.\r\n\r\nIf you received it, outgoing email is working.", shop.Name)
	if err := h.mailer.Send([]string{req.To}, shop.Name+" email test", body); err != nil {
		httperr.Internal(c, "email_send_failed", "Could not send the test email.")
		return
	}

	httpresp.OK(c, gin.H{"sent": true, "preview": h.mailer.Preview()})
}

// NotifyPickupReady emails the order's client that garments are ready,
// including the current balance due.
func (h *EmailHandler) NotifyPickupReady(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Order id must be numeric.")
		return
	}

	ctx := c.Request.Context()

	var order models.Order
	err = h.db.WithContext(ctx).
		Preload("Client").
		Preload("Garments").
		Preload("Garments.Services").
		Preload("Payments").
		Where("id = ? AND shop_id = ?", orderID, shopID).
		First(&order).Error
	if err != nil {
		httperr.NotFound(c, "order_not_found", "Order not found.")
		return
	}

	if order.Client.Email == "" {
		httperr.BadRequest(c, "client_has_no_email", "The client has no email address on file.")
		return
	}

	var shop models.Shop
	if err := h.db.WithContext(ctx).First(&shop, shopID).Error; err != nil {
		httperr.Internal(c, "failed_to_load_shop", "Could not load the shop.")
		return
	}

	var items []models.ServiceItem
	for _, g := range order.Garments {
		items = append(items, g.Services...)
	}
	summary := invoice.Summarize(items, order.Payments)

	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour order %s at %s is ready for pickup.\r\nBalance due: %s\r\n\r\nSee you soon!",
		order.Client.FirstName,
		order.OrderNumber,
		shop.Name,
		summary.AmountDueDisplay,
	)

	if err := h.mailer.Send([]string{order.Client.Email}, "Your order is ready for pickup", body); err != nil {
		httperr.Internal(c, "email_send_failed", "Could not send the notification.")
		return
	}

	httpresp.OK(c, gin.H{"sent": true, "preview": h.mailer.Preview()})
}
