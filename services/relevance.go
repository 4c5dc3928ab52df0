package services

import (
	"strings"

	"hotel-rate-monitor/models"
)

// RelevanceFilter decides whether one fragment is a genuine base-rate listing
// for the hotel under investigation. Each fragment is judged on its own; no
// state is carried between calls.
type RelevanceFilter struct {
	currencyMarker    string
	addOnKeywords     []string
	crossPromoMarkers []string
	denylist          []string
}

// NewRelevanceFilter builds a filter from the catalog keyword sets.
func NewRelevanceFilter(currencyMarker string, addOns, crossPromo, denylist []string) *RelevanceFilter {
	return &RelevanceFilter{
		currencyMarker:    currencyMarker,
		addOnKeywords:     addOns,
		crossPromoMarkers: crossPromo,
		denylist:          denylist,
	}
}

// Accept returns whether the fragment should produce an observation for the
// entity. On rejection the second return value names the tripped rule, for
// debug logging only.
func (f *RelevanceFilter) Accept(entity models.MonitoredEntity, roomLabel, text string) (bool, string) {
	if !strings.Contains(text, f.currencyMarker) {
		return false, "no currency marker"
	}

	lower := strings.ToLower(text)
	if kw := containsAny(lower, f.addOnKeywords); kw != "" {
		return false, "add-on product: " + kw
	}
	if kw := containsAny(text, f.crossPromoMarkers); kw != "" {
		return false, "cross-promotion: " + kw
	}
	if kw := containsAny(text, f.denylist); kw != "" {
		return false, "denylisted property: " + kw
	}

	if entity.Policy.StrictWhitelist {
		// Room-type whitelist match on the label, whitespace stripped so
		// "그린 밸리" and "그린밸리" compare equal.
		compact := strings.ReplaceAll(roomLabel, " ", "")
		if containsAny(compact, entity.Policy.IdentityKeywords) == "" {
			return false, "room label outside whitelist"
		}
	} else if containsAny(text, entity.Policy.IdentityKeywords) == "" {
		return false, "entity name not present"
	}

	return true, ""
}

// containsAny returns the first keyword found in s, or "" when none match.
func containsAny(s string, keywords []string) string {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return kw
		}
	}
	return ""
}
