package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/threadfolio/threadfolio-api/internal/cache"
	domainAppointment "github.com/threadfolio/threadfolio-api/internal/domain/appointment"
	"github.com/threadfolio/threadfolio-api/internal/httperr"
	"github.com/threadfolio/threadfolio-api/internal/httpresp"
	"github.com/threadfolio/threadfolio-api/internal/models"
	ucAppointment "github.com/threadfolio/threadfolio-api/internal/usecase/appointment"
)

// PublicHandler serves the unauthenticated booking surface: shop profile,
// open hours, availability and self-service appointment creation.
type PublicHandler struct {
	db             *gorm.DB
	cache          *cache.Cache
	availabilityUC *ucAppointment.GetAvailability
	createUC       *ucAppointment.CreateAppointment
}

func NewPublicHandler(
	db *gorm.DB,
	c *cache.Cache,
	availabilityUC *ucAppointment.GetAvailability,
	createUC *ucAppointment.CreateAppointment,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		cache:          c,
		availabilityUC: availabilityUC,
		createUC:       createUC,
	}
}

type publicShopDTO struct {
	Name     string              `json:"name"`
	Slug     string              `json:"slug"`
	Phone    string              `json:"phone"`
	Address  string              `json:"address"`
	Timezone string              `json:"timezone"`
	Hours    []publicShopHourDTO `json:"hours"`
}

type publicShopHourDTO struct {
	Weekday   int    `json:"weekday"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	IsClosed  bool   `json:"is_closed"`
}

func (h *PublicHandler) resolveShop(c *gin.Context) (*models.Shop, bool) {
	slug := c.Param("slug")

	var shop models.Shop
	err := h.db.WithContext(c.Request.Context()).
		Where("slug = ?", slug).
		First(&shop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "shop_not_found", "Shop not found.")
		} else {
			httperr.Internal(c, "failed_to_load_shop", "Could not load the shop.")
		}
		return nil, false
	}
	return &shop, true
}

// GetShop returns the public shop profile with its weekly hours. The
// response is cached because this is the hottest unauthenticated read.
func (h *PublicHandler) GetShop(c *gin.Context) {
	slug := c.Param("slug")
	ctx := c.Request.Context()

	var cached publicShopDTO
	if h.cache.GetJSON(ctx, cache.PublicShopKey(slug), &cached) {
		httpresp.OK(c, cached)
		return
	}

	shop, ok := h.resolveShop(c)
	if !ok {
		return
	}

	var hours []models.ShopHours
	if err := h.db.WithContext(ctx).
		Where("shop_id = ?", shop.ID).
		Order("weekday asc").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_load_hours", "Could not load shop hours.")
		return
	}

	out := publicShopDTO{
		Name:     shop.Name,
		Slug:     shop.Slug,
		Phone:    shop.Phone,
		Address:  shop.Address,
		Timezone: shop.Timezone,
		Hours:    make([]publicShopHourDTO, 0, len(hours)),
	}
	for _, wh := range hours {
		out.Hours = append(out.Hours, publicShopHourDTO{
			Weekday:   wh.Weekday,
			OpenTime:  wh.OpenTime,
			CloseTime: wh.CloseTime,
			IsClosed:  wh.IsClosed,
		})
	}

	h.cache.SetJSON(ctx, cache.PublicShopKey(slug), out, cache.PublicShopTTL)
	httpresp.OK(c, out)
}

// GetAvailability lists the free slots for a given date.
func (h *PublicHandler) GetAvailability(c *gin.Context) {
	shop, ok := h.resolveShop(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Query parameter date is required.")
		return
	}

	date, err := parseDateInShop(shop, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	if domainAppointment.IsPastDate(date, time.Now().In(locationFromShop(shop))) {
		httpresp.List(c, []domainAppointment.TimeSlot{})
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), domainAppointment.AvailabilityInput{
		ShopID:      shop.ID,
		Date:        date,
		DurationMin: 30,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_load_availability", "Could not compute availability.")
		return
	}

	httpresp.List(c, slots)
}

type PublicCreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

// CreateAppointment books a slot on behalf of a walk-in visitor. Same
// rules as the authenticated path, but no acting user is recorded.
func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	shop, ok := h.resolveShop(c)
	if !ok {
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ShopID:      shop.ID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.Created(c, ap)
}
