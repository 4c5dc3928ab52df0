package services

import (
	"testing"

	"hotel-rate-monitor/models"
)

func newTestClassifier() *ChannelClassifier {
	return NewChannelClassifier([]models.ChannelRule{
		{Name: "아고다", Aliases: []string{"agoda", "아고다"}},
		{Name: "트립닷컴", Aliases: []string{"trip.com", "트립닷컴", "tripcom"}},
		{Name: "부킹닷컴", Aliases: []string{"booking.com", "부킹닷컴"}},
		{Name: "야놀자", Aliases: []string{"yanolja", "nol", "놀", "야놀자"}},
		{Name: "네이버", Aliases: []string{"naver", "네이버", "npay", "호텔에서 결제"}},
	}, "네이버")
}

func TestClassifyByTextAndMarkup(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		text   string
		markup string
		want   string
	}{
		{"그린밸리 디럭스\n아고다\n250,000원", "", "아고다"},
		{"디럭스 더블", `<a href="https://www.AGODA.com/deal">예약</a>`, "아고다"},
		{"스위트", `<img src="cdn/booking.com/logo.png">`, "부킹닷컴"},
		{"Yanolja 단독특가", "", "야놀자"},
		{"트립닷컴 할인", "", "트립닷컴"},
		{"호텔에서 결제", "", "네이버"},
	}
	for _, tt := range tests {
		got := c.Classify(tt.text, tt.markup)
		if got != tt.want {
			t.Errorf("Classify(%q, %q) = %q; want %q", tt.text, tt.markup, got, tt.want)
		}
	}
}

func TestClassifyFallsBackToDefault(t *testing.T) {
	c := newTestClassifier()
	if got := c.Classify("그린밸리 디럭스 더블\n250,000원", "<div>plain</div>"); got != "네이버" {
		t.Errorf("unmatched fragment: got %q, want fallback 네이버", got)
	}
}

func TestClassifyFirstRuleWins(t *testing.T) {
	c := newTestClassifier()

	// A widget mentioning two platforms resolves by configuration order,
	// never by which alias is longer or more specific.
	tests := []struct {
		text string
		want string
	}{
		{"부킹닷컴 아고다 비교", "아고다"},
		{"야놀자 trip.com 연동", "트립닷컴"},
	}
	for _, tt := range tests {
		if got := c.Classify(tt.text, ""); got != tt.want {
			t.Errorf("Classify(%q) = %q; want %q (configuration order)", tt.text, got, tt.want)
		}
	}
}
