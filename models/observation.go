package models

import "time"

// RawFragment is one rendered listing box lifted from the rate page.
// Text is the visible innerText (possibly multi-line), Markup the innerHTML.
// Fragments live only for the duration of one extraction pass.
type RawFragment struct {
	Text   string
	Markup string
}

// EntityPolicy controls how the relevance filter ties a fragment to a hotel.
// Strict entities require an identity keyword inside the room label itself;
// the rest only need one of their keywords somewhere in the fragment text.
type EntityPolicy struct {
	IdentityKeywords []string
	StrictWhitelist  bool
}

// MonitoredEntity is one hotel in the monitoring catalog. Immutable during a run.
type MonitoredEntity struct {
	DisplayName string
	ExternalID  string
	Policy      EntityPolicy
}

// ChannelRule maps a sales channel to its alias keywords. Rules are matched
// in catalog order; the first hit wins.
type ChannelRule struct {
	Name    string
	Aliases []string
}

// Observation is one accepted per-room price sighting for a (hotel, date) pass.
type Observation struct {
	Hotel      string
	RoomLabel  string
	Channel    string
	Price      int
	TargetDate string
	ObservedAt time.Time
}

// PriceRecord is the storage shape of a selected observation. DocID is the
// deterministic upsert key, so re-observing the same room/channel/date never
// creates a second row.
type PriceRecord struct {
	DocID       string
	CollectedAt time.Time
	HotelName   string
	RoomName    string
	Channel     string
	Price       int
	TargetDate  string
}

// RunReport holds the summary computed over one full monitoring run.
type RunReport struct {
	PassesAttempted int
	PassesWithData  int
	RecordsStored   int
	ByChannel       map[string]int
	ByHotel         map[string]int
	Cheapest        *PriceRecord
}
