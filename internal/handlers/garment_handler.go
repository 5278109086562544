package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/threadfolio/threadfolio-api/internal/audit"
	garmentdom "github.com/threadfolio/threadfolio-api/internal/domain/garment"
	"github.com/threadfolio/threadfolio-api/internal/httperr"
	"github.com/threadfolio/threadfolio-api/internal/media"
	"github.com/threadfolio/threadfolio-api/internal/middleware"
	"github.com/threadfolio/threadfolio-api/internal/models"
)

type GarmentHandler struct {
	db      *gorm.DB
	audit   *audit.Dispatcher
	storage *media.Storage
}

func NewGarmentHandler(db *gorm.DB, dispatcher *audit.Dispatcher, storage *media.Storage) *GarmentHandler {
	return &GarmentHandler{db: db, audit: dispatcher, storage: storage}
}

// List returns the shop's garments on open orders, sorted by due-date
// urgency and optionally grouped per client.
func (h *GarmentHandler) List(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	mode := garmentdom.SortMode(c.DefaultQuery("sort", string(garmentdom.SortOverdue)))
	if mode != garmentdom.SortOverdue && mode != garmentdom.SortDueSoon {
		httperr.BadRequest(c, "invalid_sort_mode", "Sort mode must be overdue or due_soon.")
		return
	}

	dir := garmentdom.SortDirection(c.DefaultQuery("direction", string(garmentdom.SortAsc)))
	if dir != garmentdom.SortAsc && dir != garmentdom.SortDesc {
		httperr.BadRequest(c, "invalid_direction", "Direction must be asc or desc.")
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		httperr.Unauthorized(c, "shop_not_found", "No shop context.")
		return
	}

	var garments []models.Garment
	if err := h.db.
		Joins("JOIN orders ON orders.id = garments.order_id").
		Where("orders.shop_id = ? AND orders.status = ?", shopID, models.OrderStatusInProgress).
		Find(&garments).Error; err != nil {

		httperr.Internal(c, "failed_to_list_garments", "Could not list garments.")
		return
	}

	if len(garments) == 0 {
		c.JSON(http.StatusOK, gin.H{"garments": []garmentdom.ListRow{}})
		return
	}

	orderIDs := make([]uint, 0, len(garments))
	for _, g := range garments {
		orderIDs = append(orderIDs, g.OrderID)
	}

	var orders []models.Order
	h.db.Preload("Client").Where("id IN ?", orderIDs).Find(&orders)

	orderByID := make(map[uint]models.Order, len(orders))
	for _, o := range orders {
		orderByID[o.ID] = o
	}

	rows := make([]garmentdom.ListRow, 0, len(garments))
	for _, g := range garments {
		o := orderByID[g.OrderID]
		rows = append(rows, garmentdom.ListRow{
			ID:          g.ID,
			OrderID:     g.OrderID,
			OrderNumber: o.OrderNumber,
			Name:        g.Name,
			Stage:       g.Stage,
			DueDate:     g.DueDate,
			ClientName:  o.Client.FullName(),
			Icon:        g.Icon,
		})
	}

	today := nowInShop(&shop)
	garmentdom.Sort(rows, mode, dir, today)

	if c.Query("group_by") == "client" {
		c.JSON(http.StatusOK, gin.H{
			"groups": garmentdom.GroupByClientName(rows, dir),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"garments": rows})
}

// --------- Stage change ---------

type UpdateStageRequest struct {
	Stage string `json:"stage" binding:"required"`
}

// UpdateStage moves a garment to a new stage and appends the history entry
// the client timeline renders. The stage set is validated; arbitrary jumps
// within it are allowed.
func (h *GarmentHandler) UpdateStage(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var req UpdateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if !garmentdom.ValidStage(req.Stage) {
		httperr.BadRequest(c, "invalid_stage", "Stage must be New, In Progress, Ready For Pickup or Done.")
		return
	}

	garment, ok := h.getShopGarment(c, id, shopID)
	if !ok {
		return
	}

	if garment.Stage == req.Stage {
		c.JSON(http.StatusOK, garment)
		return
	}

	previous := garment.Stage

	err := h.db.Transaction(func(tx *gorm.DB) error {
		garment.Stage = req.Stage
		if err := tx.Save(garment).Error; err != nil {
			return err
		}

		event := models.GarmentEvent{
			GarmentID:   garment.ID,
			UserID:      &userID,
			Kind:        "stage_change",
			Description: garmentdom.StageChangeDescription(previous, req.Stage),
		}
		return tx.Create(&event).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_stage", "Could not update the garment stage.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		UserID:   &userID,
		Action:   "garment_stage_changed",
		Entity:   "garment",
		EntityID: &garment.ID,
		Metadata: map[string]any{"from": previous, "to": req.Stage},
	})

	c.JSON(http.StatusOK, garment)
}

// --------- Photos ---------

func (h *GarmentHandler) UploadPhoto(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	if !h.storage.Configured() {
		httperr.ServiceUnavailable(c, "media_not_configured", "Photo storage is not configured.")
		return
	}

	garment, ok := h.getShopGarment(c, id, shopID)
	if !ok {
		return
	}

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Multipart field photo is required.")
		return
	}
	defer file.Close()

	key, err := h.storage.UploadGarmentPhoto(c.Request.Context(), shopID, file)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Could not store the photo.")
		return
	}

	// A replaced photo is deleted best-effort; the new key is already safe.
	if garment.PhotoKey != "" {
		_ = h.storage.Delete(c.Request.Context(), garment.PhotoKey)
	}

	garment.PhotoKey = key
	if err := h.db.Save(garment).Error; err != nil {
		httperr.Internal(c, "failed_to_save_photo_key", "Could not save the photo reference.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		UserID:   &userID,
		Action:   "garment_photo_uploaded",
		Entity:   "garment",
		EntityID: &garment.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"photo_key": key,
		"photo_url": h.storage.PublicURL(key),
	})
}

func (h *GarmentHandler) DeletePhoto(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	if !h.storage.Configured() {
		httperr.ServiceUnavailable(c, "media_not_configured", "Photo storage is not configured.")
		return
	}

	garment, ok := h.getShopGarment(c, id, shopID)
	if !ok {
		return
	}

	if garment.PhotoKey == "" {
		httperr.NotFound(c, "photo_not_found", "The garment has no photo.")
		return
	}

	if err := h.storage.Delete(c.Request.Context(), garment.PhotoKey); err != nil {
		httperr.Internal(c, "failed_to_delete_photo", "Could not delete the photo.")
		return
	}

	garment.PhotoKey = ""
	if err := h.db.Save(garment).Error; err != nil {
		httperr.Internal(c, "failed_to_save_photo_key", "Could not clear the photo reference.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		UserID:   &userID,
		Action:   "garment_photo_deleted",
		Entity:   "garment",
		EntityID: &garment.ID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// getShopGarment loads a garment and proves it belongs to the caller's shop
// through its order. Writes the error response itself on failure.
func (h *GarmentHandler) getShopGarment(c *gin.Context, id string, shopID uint) (*models.Garment, bool) {
	var garment models.Garment
	err := h.db.
		Joins("JOIN orders ON orders.id = garments.order_id").
		Where("garments.id = ? AND orders.shop_id = ?", id, shopID).
		First(&garment).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "garment_not_found", "Garment not found.")
		} else {
			httperr.Internal(c, "failed_to_get_garment", "Could not load the garment.")
		}
		return nil, false
	}
	return &garment, true
}
