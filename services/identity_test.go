package services

import (
	"strings"
	"testing"
	"time"

	"hotel-rate-monitor/models"
)

func TestIdentityKeyIgnoresPriceAndTime(t *testing.T) {
	a := &models.Observation{
		Hotel: "엠버퓨어힐", RoomLabel: "그린밸리 디럭스", Channel: "아고다",
		TargetDate: "2026-05-04", Price: 250000, ObservedAt: time.Now(),
	}
	b := &models.Observation{
		Hotel: "엠버퓨어힐", RoomLabel: "그린밸리 디럭스", Channel: "아고다",
		TargetDate: "2026-05-04", Price: 199000, ObservedAt: time.Now().Add(48 * time.Hour),
	}

	if IdentityKey(a) != IdentityKey(b) {
		t.Errorf("same logical observation must share a key: %q vs %q",
			IdentityKey(a), IdentityKey(b))
	}
}

func TestIdentityKeySanitizesUnsafeCharacters(t *testing.T) {
	o := &models.Observation{
		Hotel: "엠버퓨어힐", RoomLabel: "디럭스 더블/트윈", Channel: "아고다",
		TargetDate: "2026-05-04",
	}

	key := IdentityKey(o)
	if key != "2026-05-04_엠버퓨어힐_디럭스더블_트윈_아고다" {
		t.Errorf("key: got %q", key)
	}
	if strings.ContainsAny(key, " /\t\n") {
		t.Errorf("key contains unsafe characters: %q", key)
	}
}

func TestIdentityKeyDistinguishesFields(t *testing.T) {
	base := &models.Observation{
		Hotel: "엠버퓨어힐", RoomLabel: "디럭스", Channel: "아고다", TargetDate: "2026-05-04",
	}

	variants := []*models.Observation{
		{Hotel: "파르나스", RoomLabel: "디럭스", Channel: "아고다", TargetDate: "2026-05-04"},
		{Hotel: "엠버퓨어힐", RoomLabel: "스위트", Channel: "아고다", TargetDate: "2026-05-04"},
		{Hotel: "엠버퓨어힐", RoomLabel: "디럭스", Channel: "네이버", TargetDate: "2026-05-04"},
		{Hotel: "엠버퓨어힐", RoomLabel: "디럭스", Channel: "아고다", TargetDate: "2026-05-05"},
	}
	for _, v := range variants {
		if IdentityKey(base) == IdentityKey(v) {
			t.Errorf("distinct observations share key %q: %+v", IdentityKey(v), v)
		}
	}
}
