package services

import (
	"strings"

	"hotel-rate-monitor/models"
)

// keySanitizer makes the key safe as a storage document id: whitespace is
// stripped and path separators escaped.
var keySanitizer = strings.NewReplacer(" ", "", "\t", "", "\n", "", "/", "_")

// IdentityKey derives the deterministic upsert key for an observation from
// (targetDate, hotel, roomLabel, channel). Price and observation time are
// not part of the key, so re-observing the same logical listing across runs
// maps onto the same stored document.
func IdentityKey(o *models.Observation) string {
	return keySanitizer.Replace(
		o.TargetDate + "_" + o.Hotel + "_" + o.RoomLabel + "_" + o.Channel)
}
