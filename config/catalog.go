package config

import (
	"fmt"
	"time"

	"hotel-rate-monitor/models"
)

// Catalog is the versioned monitoring configuration: which hotels to watch,
// which calendar dates matter, how fragments are filtered and how channels
// are recognized. It is built once at startup and never mutated.
type Catalog struct {
	Entities []models.MonitoredEntity

	// Date rules.
	Holidays        []string
	PeakDates       []string
	NearWindowStart int
	NearWindowEnd   int
	MidweekDay      time.Weekday
	WeekendDay      time.Weekday
	MonthsAhead     int

	// Fragment filtering.
	CurrencyMarker    string
	AddOnKeywords     []string
	CrossPromoMarkers []string
	Denylist          []string

	// Channel recognition. Rules are matched in order; DefaultChannel is
	// used when nothing matches.
	Channels       []models.ChannelRule
	DefaultChannel string

	// Observation bounds.
	MinPrice        int
	MaxRoomLabelLen int
	TopChannels     int
	RoomsPerChannel int
}

// DefaultCatalog returns the governing Jeju monitoring configuration.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Entities: []models.MonitoredEntity{
			{DisplayName: "엠버퓨어힐", ExternalID: "N5302461", Policy: models.EntityPolicy{
				StrictWhitelist:  true,
				IdentityKeywords: []string{"그린밸리", "포레스트", "힐파인", "힐엠버", "힐루나", "프라이빗"},
			}},
			{DisplayName: "그랜드하얏트", ExternalID: "N5281539", Policy: models.EntityPolicy{IdentityKeywords: []string{"하얏트"}}},
			{DisplayName: "파르나스", ExternalID: "N5287649", Policy: models.EntityPolicy{IdentityKeywords: []string{"파르나스"}}},
			{DisplayName: "신라호텔", ExternalID: "N1496601", Policy: models.EntityPolicy{IdentityKeywords: []string{"신라"}}},
			{DisplayName: "롯데호텔", ExternalID: "N1053569", Policy: models.EntityPolicy{IdentityKeywords: []string{"롯데"}}},
			{DisplayName: "그랜드조선제주", ExternalID: "N5279751", Policy: models.EntityPolicy{IdentityKeywords: []string{"조선"}}},
			{DisplayName: "신라스테이", ExternalID: "N5305249", Policy: models.EntityPolicy{IdentityKeywords: []string{"신라스테이"}}},
			{DisplayName: "해비치", ExternalID: "N1053576", Policy: models.EntityPolicy{IdentityKeywords: []string{"해비치"}}},
			{DisplayName: "신화메리어트", ExternalID: "N3610024", Policy: models.EntityPolicy{IdentityKeywords: []string{"메리어트"}}},
			{DisplayName: "히든클리프", ExternalID: "N2982178", Policy: models.EntityPolicy{IdentityKeywords: []string{"히든클리프"}}},
			{DisplayName: "더시에나", ExternalID: "N2662081", Policy: models.EntityPolicy{IdentityKeywords: []string{"시에나"}}},
			{DisplayName: "조선힐스위트", ExternalID: "KYK10391783", Policy: models.EntityPolicy{IdentityKeywords: []string{"힐스위트"}}},
			{DisplayName: "메종글래드", ExternalID: "N1053566", Policy: models.EntityPolicy{IdentityKeywords: []string{"메종글래드"}}},
		},

		Holidays: []string{
			"2026-02-13", "2026-02-16", "2026-02-21", "2026-03-01", "2026-05-05",
			"2026-05-24", "2026-06-06", "2026-08-15", "2026-09-24", "2026-09-25",
			"2026-09-26", "2026-10-03", "2026-10-09", "2026-12-25",
		},
		PeakDates:       []string{"2026-07-29", "2026-08-01"},
		NearWindowStart: 7,
		NearWindowEnd:   21,
		MidweekDay:      time.Wednesday,
		WeekendDay:      time.Saturday,
		MonthsAhead:     3,

		CurrencyMarker:    "원",
		AddOnKeywords:     []string{"조식", "패키지", "라운지", "와인", "연박"},
		CrossPromoMarkers: []string{"추천", "비슷한", "주변", "거리"},
		Denylist: []string{
			"아이미", "노블레스", "오션스위츠", "모텔",
			"게스트하우스", "비치", "관광호텔", "리조트텔",
		},

		Channels: []models.ChannelRule{
			{Name: "아고다", Aliases: []string{"agoda", "아고다"}},
			{Name: "트립닷컴", Aliases: []string{"trip.com", "트립닷컴", "tripcom"}},
			{Name: "트립비토즈", Aliases: []string{"tripbtoz", "트립비토즈"}},
			{Name: "부킹닷컴", Aliases: []string{"booking.com", "부킹닷컴"}},
			{Name: "야놀자", Aliases: []string{"yanolja", "nol", "놀", "야놀자"}},
			{Name: "여기어때", Aliases: []string{"goodchoice", "여기어때"}},
			{Name: "익스피디아", Aliases: []string{"expedia", "익스피디아"}},
			{Name: "호텔스닷컴", Aliases: []string{"hotels.com", "호텔스닷컴"}},
			{Name: "시크릿몰", Aliases: []string{"secretmall", "시크릿몰"}},
			{Name: "호텔패스", Aliases: []string{"hotelpass", "호텔패스"}},
			{Name: "네이버", Aliases: []string{"naver", "네이버", "npay", "호텔에서 결제"}},
		},
		DefaultChannel: "네이버",

		MinPrice:        100000,
		MaxRoomLabelLen: 80,
		TopChannels:     5,
		RoomsPerChannel: 3,
	}
}

// Validate reports the first malformed entry found. A broken catalog is a
// startup-fatal condition, never handled per fragment.
func (c *Catalog) Validate() error {
	if len(c.Entities) == 0 {
		return fmt.Errorf("catalog: no monitored entities configured")
	}
	for _, e := range c.Entities {
		if e.DisplayName == "" {
			return fmt.Errorf("catalog: entity with empty display name")
		}
		if e.ExternalID == "" {
			return fmt.Errorf("catalog: entity %q has no external id", e.DisplayName)
		}
		if len(e.Policy.IdentityKeywords) == 0 {
			return fmt.Errorf("catalog: entity %q has no identity keywords", e.DisplayName)
		}
	}

	if len(c.Channels) == 0 {
		return fmt.Errorf("catalog: no channel rules configured")
	}
	for _, ch := range c.Channels {
		if ch.Name == "" || len(ch.Aliases) == 0 {
			return fmt.Errorf("catalog: channel rule %q is missing a name or aliases", ch.Name)
		}
	}
	if c.DefaultChannel == "" {
		return fmt.Errorf("catalog: no default channel configured")
	}

	for _, d := range append(append([]string{}, c.Holidays...), c.PeakDates...) {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return fmt.Errorf("catalog: bad calendar date %q: %w", d, err)
		}
	}

	if c.CurrencyMarker == "" {
		return fmt.Errorf("catalog: no currency marker configured")
	}
	if c.MinPrice <= 0 {
		return fmt.Errorf("catalog: minimum price must be positive, got %d", c.MinPrice)
	}
	if c.TopChannels <= 0 || c.RoomsPerChannel <= 0 {
		return fmt.Errorf("catalog: selection bounds must be positive (channels=%d, rooms=%d)",
			c.TopChannels, c.RoomsPerChannel)
	}
	if c.NearWindowStart < 0 || c.NearWindowEnd < c.NearWindowStart {
		return fmt.Errorf("catalog: bad near-term window [%d, %d]", c.NearWindowStart, c.NearWindowEnd)
	}
	return nil
}
