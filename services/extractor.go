package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"hotel-rate-monitor/models"
	"hotel-rate-monitor/utils"
)

// nonDigitRegexp strips everything but digits from a price line.
var nonDigitRegexp = regexp.MustCompile(`[^0-9]`)

// Extractor turns one raw fragment into zero or one price observation.
type Extractor struct {
	relevance *RelevanceFilter
	channels  *ChannelClassifier
	minPrice  int
	maxLabel  int
	logger    *utils.Logger
}

// NewExtractor wires the filter and classifier policies into an Extractor.
// minPrice is the smallest plausible nightly rate; anything at or below it is
// treated as numeric noise (points balances, phone-number-like tokens).
func NewExtractor(relevance *RelevanceFilter, channels *ChannelClassifier,
	minPrice, maxLabel int, logger *utils.Logger) *Extractor {
	return &Extractor{
		relevance: relevance,
		channels:  channels,
		minPrice:  minPrice,
		maxLabel:  maxLabel,
		logger:    logger,
	}
}

// Extract parses a fragment observed for (entity, targetDate). The boolean is
// false when the fragment carries no usable signal, an expected and frequent
// outcome, not an error.
func (e *Extractor) Extract(entity models.MonitoredEntity, frag models.RawFragment,
	targetDate string, now time.Time) (*models.Observation, bool) {

	lines := nonEmptyLines(frag.Text)
	if len(lines) == 0 {
		return nil, false
	}
	roomLabel := capLabel(lines[0], e.maxLabel)

	if ok, reason := e.relevance.Accept(entity, roomLabel, frag.Text); !ok {
		e.logger.Debug("[extract] %s / %s: dropped %q (%s)",
			entity.DisplayName, targetDate, roomLabel, reason)
		return nil, false
	}

	channel := e.channels.Classify(frag.Text, frag.Markup)

	// The largest number adjacent to the currency marker is the full,
	// tax-inclusive total; smaller ones are discounts or partial amounts.
	price, ok := e.bestPrice(lines)
	if !ok {
		return nil, false
	}
	if price <= e.minPrice {
		e.logger.Debug("[extract] %s / %s: %q price %d below threshold",
			entity.DisplayName, targetDate, roomLabel, price)
		return nil, false
	}

	return &models.Observation{
		Hotel:      entity.DisplayName,
		RoomLabel:  roomLabel,
		Channel:    channel,
		Price:      price,
		TargetDate: targetDate,
		ObservedAt: now,
	}, true
}

// bestPrice parses every line carrying the currency marker and returns the
// maximum value found.
func (e *Extractor) bestPrice(lines []string) (int, bool) {
	best := 0
	found := false
	for _, line := range lines {
		if !strings.Contains(line, e.relevance.currencyMarker) {
			continue
		}
		digits := nonDigitRegexp.ReplaceAllString(line, "")
		if digits == "" {
			continue
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}
		if !found || n > best {
			best = n
			found = true
		}
	}
	return best, found
}

func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func capLabel(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
