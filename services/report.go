package services

import (
	"fmt"
	"sort"
	"strings"

	"hotel-rate-monitor/models"
	"hotel-rate-monitor/utils"
)

type ReportService struct {
	logger *utils.Logger
}

func NewReportService(logger *utils.Logger) *ReportService {
	return &ReportService{logger: logger}
}

// Generate summarizes one full monitoring run over the records it stored.
func (s *ReportService) Generate(records []*models.PriceRecord, passesAttempted, passesWithData int) *models.RunReport {
	report := &models.RunReport{
		PassesAttempted: passesAttempted,
		PassesWithData:  passesWithData,
		ByChannel:       make(map[string]int),
		ByHotel:         make(map[string]int),
	}

	report.RecordsStored = len(records)
	for _, r := range records {
		report.ByChannel[r.Channel]++
		report.ByHotel[r.HotelName]++
		if report.Cheapest == nil || r.Price < report.Cheapest.Price {
			report.Cheapest = r
		}
	}
	return report
}

func (s *ReportService) Print(r *models.RunReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📊 HOTEL RATE MONITORING RUN\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Passes attempted  : \033[1m%d\033[0m\n", r.PassesAttempted)
	fmt.Printf("  Passes with data  : \033[1m%d\033[0m\n", r.PassesWithData)
	fmt.Printf("  Records stored    : \033[1m%d\033[0m\n", r.RecordsStored)
	fmt.Println()

	if r.Cheapest != nil {
		fmt.Printf("\033[1;33m  Cheapest Observation\033[0m\n")
		fmt.Printf("  %s\n", thin)
		fmt.Printf("  %s — %s\n", r.Cheapest.HotelName, truncate(r.Cheapest.RoomName, 40))
		fmt.Printf("  %s on %s : \033[1;32m%s원\033[0m\n",
			r.Cheapest.Channel, r.Cheapest.TargetDate, FormatWon(r.Cheapest.Price))
		fmt.Println()
	}

	fmt.Printf("\033[1;33m  Records by Channel\033[0m\n")
	fmt.Printf("  %s\n", thin)
	printCountTable(r.ByChannel)
	fmt.Println()

	fmt.Printf("\033[1;33m  Records by Hotel\033[0m\n")
	fmt.Printf("  %s\n", thin)
	printCountTable(r.ByHotel)

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func printCountTable(counts map[string]int) {
	if len(counts) == 0 {
		fmt.Printf("  No data\n")
		return
	}

	type entry struct {
		name  string
		count int
	}
	var entries []entry
	for name, count := range counts {
		entries = append(entries, entry{name, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})
	for _, e := range entries {
		bar := strings.Repeat("█", e.count)
		fmt.Printf("  %-24s %s (%d)\n", truncate(e.name, 22), bar, e.count)
	}
}

// FormatWon renders an amount with thousands separators, e.g. 250000 → "250,000".
func FormatWon(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
