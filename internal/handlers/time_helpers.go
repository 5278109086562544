package handlers

import (
	"time"

	"github.com/threadfolio/threadfolio-api/internal/models"
	"github.com/threadfolio/threadfolio-api/internal/timezone"
)

// Shop-local time handling: every date the API accepts or renders is
// interpreted in the owning shop's timezone.

func locationFromShop(shop *models.Shop) *time.Location {
	if shop != nil {
		return timezone.Location(shop.Timezone)
	}
	return timezone.Location("")
}

func nowInShop(shop *models.Shop) time.Time {
	return time.Now().In(locationFromShop(shop))
}

func parseDateInShop(shop *models.Shop, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromShop(shop),
	)
}

func parseOptionalDate(dateStr *string, loc *time.Location) (*time.Time, error) {
	if dateStr == nil || *dateStr == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", *dateStr, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
