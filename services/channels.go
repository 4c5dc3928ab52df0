package services

import (
	"strings"

	"hotel-rate-monitor/models"
)

// ChannelClassifier assigns exactly one sales-channel identity to a fragment.
// Rules are scanned in catalog order and the first alias hit wins. When an
// embedded widget mentions two platforms, configuration order is the
// tie-break, not content. Fragments matching nothing get the fallback
// (direct-booking) channel.
type ChannelClassifier struct {
	rules    []models.ChannelRule
	fallback string
}

func NewChannelClassifier(rules []models.ChannelRule, fallback string) *ChannelClassifier {
	return &ChannelClassifier{rules: rules, fallback: fallback}
}

// Classify matches aliases against the lower-cased text and markup.
func (c *ChannelClassifier) Classify(text, markup string) string {
	text = strings.ToLower(text)
	markup = strings.ToLower(markup)

	for _, rule := range c.rules {
		for _, alias := range rule.Aliases {
			if strings.Contains(text, alias) || strings.Contains(markup, alias) {
				return rule.Name
			}
		}
	}
	return c.fallback
}
