package services

import (
	"testing"
	"time"

	"hotel-rate-monitor/models"
)

func sampleRecords() []*models.PriceRecord {
	now := time.Now()
	return []*models.PriceRecord{
		{DocID: "a", CollectedAt: now, HotelName: "엠버퓨어힐", RoomName: "그린밸리 디럭스", Channel: "아고다", Price: 250000, TargetDate: "2026-05-04"},
		{DocID: "b", CollectedAt: now, HotelName: "엠버퓨어힐", RoomName: "포레스트 스위트", Channel: "아고다", Price: 410000, TargetDate: "2026-05-04"},
		{DocID: "c", CollectedAt: now, HotelName: "파르나스", RoomName: "디럭스 오션", Channel: "네이버", Price: 195000, TargetDate: "2026-05-04"},
		{DocID: "d", CollectedAt: now, HotelName: "파르나스", RoomName: "스위트", Channel: "야놀자", Price: 520000, TargetDate: "2026-05-05"},
	}
}

func TestReportCounts(t *testing.T) {
	svc := NewReportService(newTestLogger())
	r := svc.Generate(sampleRecords(), 12, 2)

	if r.PassesAttempted != 12 || r.PassesWithData != 2 {
		t.Errorf("pass counts: got %d/%d, want 12/2", r.PassesAttempted, r.PassesWithData)
	}
	if r.RecordsStored != 4 {
		t.Errorf("RecordsStored: got %d, want 4", r.RecordsStored)
	}
	if r.ByChannel["아고다"] != 2 || r.ByChannel["네이버"] != 1 {
		t.Errorf("ByChannel: got %v", r.ByChannel)
	}
	if r.ByHotel["파르나스"] != 2 {
		t.Errorf("ByHotel: got %v", r.ByHotel)
	}
}

func TestReportCheapest(t *testing.T) {
	svc := NewReportService(newTestLogger())
	r := svc.Generate(sampleRecords(), 12, 2)

	if r.Cheapest == nil {
		t.Fatal("Cheapest should not be nil")
	}
	if r.Cheapest.DocID != "c" {
		t.Errorf("Cheapest: got %q, want record c", r.Cheapest.DocID)
	}
}

func TestReportEmptyRun(t *testing.T) {
	svc := NewReportService(newTestLogger())
	r := svc.Generate(nil, 5, 0)

	if r.RecordsStored != 0 || r.Cheapest != nil {
		t.Errorf("empty run: got %d records, cheapest %v", r.RecordsStored, r.Cheapest)
	}
}

func TestFormatWon(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{950, "950"},
		{1000, "1,000"},
		{100000, "100,000"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := FormatWon(tt.in); got != tt.want {
			t.Errorf("FormatWon(%d) = %q; want %q", tt.in, got, tt.want)
		}
	}
}
