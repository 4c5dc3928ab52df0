package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"hotel-rate-monitor/config"
	"hotel-rate-monitor/models"
	"hotel-rate-monitor/scraper/naver"
	"hotel-rate-monitor/services"
	"hotel-rate-monitor/storage"
	"hotel-rate-monitor/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger(cfg.Verbose)

	catalog := config.DefaultCatalog()
	if err := catalog.Validate(); err != nil {
		logger.Error("Invalid monitoring catalog: %v", err)
		os.Exit(1)
	}

	if cfg.CronSpec == "" {
		if err := runOnce(cfg, catalog, logger); err != nil {
			logger.Error("Monitoring run failed: %v", err)
			os.Exit(1)
		}
		return
	}

	// Daemon mode: repeat the run on the configured cron schedule.
	c := cron.New()
	if _, err := c.AddFunc(cfg.CronSpec, func() {
		if err := runOnce(cfg, catalog, logger); err != nil {
			logger.Error("Scheduled run failed: %v", err)
		}
	}); err != nil {
		logger.Error("Bad cron spec %q: %v", cfg.CronSpec, err)
		os.Exit(1)
	}

	logger.Info("Daemon mode — running on schedule %q", cfg.CronSpec)
	c.Start()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info("Shutting down — waiting for the current run to finish")
	<-c.Stop().Done()
}

// runOnce executes one full monitoring run: plan dates, then for every
// (hotel, date) pair render, extract, select and upsert. Passes are strictly
// sequential: one browser session is shared across all of them.
func runOnce(cfg *config.Config, catalog *config.Catalog, logger *utils.Logger) error {
	logger.Info("=== Hotel Rate Monitor starting ===")

	rules, err := services.NewDateRules(services.DateRuleConfig{
		NearStart:   catalog.NearWindowStart,
		NearEnd:     catalog.NearWindowEnd,
		MidweekDay:  catalog.MidweekDay,
		WeekendDay:  catalog.WeekendDay,
		MonthsAhead: catalog.MonthsAhead,
		Holidays:    catalog.Holidays,
		PeakDates:   catalog.PeakDates,
	})
	if err != nil {
		return err
	}
	dates := rules.TargetDates(time.Now())
	logger.Info("Targeting %d stay dates across %d hotels", len(dates), len(catalog.Entities))

	csvWriter, err := storage.NewCSVWriter(cfg.CSVOutputPath)
	if err != nil {
		return err
	}
	defer csvWriter.Close()

	pgWriter, err := storage.NewPostgresWriter(cfg.DSN())
	if err != nil {
		return err
	}
	defer pgWriter.Close()

	scraper := naver.New(cfg, logger)
	defer scraper.Close()

	extractor := services.NewExtractor(
		services.NewRelevanceFilter(catalog.CurrencyMarker,
			catalog.AddOnKeywords, catalog.CrossPromoMarkers, catalog.Denylist),
		services.NewChannelClassifier(catalog.Channels, catalog.DefaultChannel),
		catalog.MinPrice, catalog.MaxRoomLabelLen, logger,
	)
	selector := services.NewSelector(catalog.TopChannels, catalog.RoomsPerChannel)
	pacer := utils.NewPacer(
		time.Duration(cfg.PassDelayMinMs)*time.Millisecond,
		time.Duration(cfg.PassDelayMaxMs)*time.Millisecond,
	)

	var stored []*models.PriceRecord
	passes, passesWithData := 0, 0

	for _, entity := range catalog.Entities {
		logger.Info("Analyzing %s (%s)...", entity.DisplayName, entity.ExternalID)

		for _, date := range dates {
			passes++

			fragments, err := scraper.FetchRateFragments(entity.ExternalID, date, cfg.PartySize)
			if err != nil {
				logger.Warn("%s %s: render failed: %v — skipping pass", entity.DisplayName, date, err)
				pacer.Wait()
				continue
			}

			now := time.Now()
			var batch []*models.Observation
			for _, frag := range fragments {
				if obs, ok := extractor.Extract(entity, frag, date, now); ok {
					batch = append(batch, obs)
				}
			}

			selected := selector.Select(batch)
			if len(selected) == 0 {
				logger.Debug("%s %s: nothing listed", entity.DisplayName, date)
				pacer.Wait()
				continue
			}
			passesWithData++

			records := make([]*models.PriceRecord, 0, len(selected))
			for _, o := range selected {
				records = append(records, &models.PriceRecord{
					DocID:       services.IdentityKey(o),
					CollectedAt: o.ObservedAt,
					HotelName:   o.Hotel,
					RoomName:    o.RoomLabel,
					Channel:     o.Channel,
					Price:       o.Price,
					TargetDate:  o.TargetDate,
				})
				logger.Info("  🔎 [%s] %s: %s원", o.Channel, o.RoomLabel, services.FormatWon(o.Price))
			}

			if err := pgWriter.Upsert(records); err != nil {
				logger.Error("%s %s: store failed: %v", entity.DisplayName, date, err)
			} else {
				stored = append(stored, records...)
			}
			if err := csvWriter.Append(records); err != nil {
				logger.Error("%s %s: audit write failed: %v", entity.DisplayName, date, err)
			}

			pacer.Wait()
		}
	}

	reportSvc := services.NewReportService(logger)
	reportSvc.Print(reportSvc.Generate(stored, passes, passesWithData))

	logger.Info("=== Monitoring run complete ===")
	return nil
}
