package naver

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/chromedp/chromedp"

	"hotel-rate-monitor/config"
	"hotel-rate-monitor/models"
	"hotel-rate-monitor/utils"
)

const rateURLFormat = "https://hotels.naver.com/detail/hotels/%s/rates?checkIn=%s&checkOut=%s&adultCnt=%d"

// Scraper renders one Naver Hotels rate page at a time and lifts the raw
// listing fragments out of it. One browser session is shared across all
// passes, so callers must drive it sequentially.
type Scraper struct {
	cfg    *config.Config
	logger *utils.Logger
	retry  *utils.RetryConfig
	settle *utils.Pacer

	allocCtx context.Context
	cancels  []context.CancelFunc
}

// New creates a Scraper with a headless Chrome allocator configured for
// Korean pages and a low automation profile.
func New(cfg *config.Config, logger *utils.Logger) *Scraper {
	chromeBin := findChromeBinary(cfg.ChromeBin)
	logger.Info("[naver] Using browser binary: %s", chromeBin)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("lang", "ko_KR"),
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 "+
			"(KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36"),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)

	// Suppress chromedp log noise
	silentCtx, cancelSilent := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	return &Scraper{
		cfg:    cfg,
		logger: logger,
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   2 * time.Second,
			Logger:      logger,
		},
		settle: utils.NewPacer(
			time.Duration(cfg.SettleMinMs)*time.Millisecond,
			time.Duration(cfg.SettleMaxMs)*time.Millisecond,
		),
		allocCtx: silentCtx,
		cancels:  []context.CancelFunc{cancelSilent, cancelAlloc},
	}
}

// Close tears down the shared browser session.
func (s *Scraper) Close() {
	for _, cancel := range s.cancels {
		cancel()
	}
}

// FetchRateFragments renders the rate page for a one-night stay starting at
// checkIn and returns every listing box that mentions the currency marker.
// An empty slice with a nil error means the page simply listed nothing.
func (s *Scraper) FetchRateFragments(hotelID, checkIn string, partySize int) ([]models.RawFragment, error) {
	start, err := time.Parse("2006-01-02", checkIn)
	if err != nil {
		return nil, fmt.Errorf("naver: bad check-in date %q: %w", checkIn, err)
	}
	checkOut := start.AddDate(0, 0, 1).Format("2006-01-02")
	url := fmt.Sprintf(rateURLFormat, hotelID, checkIn, checkOut, partySize)

	var fragments []models.RawFragment

	err = s.retry.Do("rate-page "+hotelID+" "+checkIn, func() error {
		ctx, cancel := chromedp.NewContext(s.allocCtx)
		defer cancel()

		ctx, cancelTimeout := context.WithTimeout(ctx, 90*time.Second)
		defer cancelTimeout()

		type fragData struct {
			Text string `json:"text"`
			HTML string `json:"html"`
		}

		var priceVisible bool
		var raw []fragData

		err := chromedp.Run(ctx,
			chromedp.Navigate(url),

			// Let the page settle like a human reader would.
			chromedp.Sleep(s.settle.Next()),

			// Bail out early when no price element ever renders: a blocked
			// or sold-out page, no point scrolling it.
			chromedp.Evaluate(`!!(document.body && document.body.innerText.indexOf('원') !== -1)`, &priceVisible),
		)
		if err != nil {
			return fmt.Errorf("chromedp navigate: %w", err)
		}
		if !priceVisible {
			s.logger.Warn("[naver] %s %s: no price elements rendered (blocked or empty)", hotelID, checkIn)
			return nil
		}

		err = chromedp.Run(ctx,
			// Staged scrolls activate the lazily loaded lower listings.
			chromedp.Evaluate(`window.scrollTo(0, 1200)`, nil),
			chromedp.Sleep(1200*time.Millisecond),
			chromedp.Evaluate(`window.scrollTo(0, 2400)`, nil),
			chromedp.Sleep(1200*time.Millisecond),
			chromedp.Evaluate(`window.scrollTo(0, 3600)`, nil),
			chromedp.Sleep(1200*time.Millisecond),

			// Expand collapsed seller lists ("판매처 더보기") so every
			// channel's offer is present in the DOM.
			chromedp.Evaluate(`
				(function() {
					var clicked = 0;
					var nodes = document.querySelectorAll('button, a, span[role="button"]');
					for (var i = 0; i < nodes.length && clicked < 8; i++) {
						var t = nodes[i].textContent || '';
						if (t.indexOf('판매처') !== -1 && t.indexOf('더보기') !== -1) {
							try { nodes[i].click(); clicked++; } catch (e) {}
						}
					}
					return clicked;
				})()
			`, nil),
			chromedp.Sleep(1500*time.Millisecond),

			// Lift every listing box that mentions a price. Containers that
			// wrap smaller listing boxes are skipped so each fragment is one
			// room/offer unit.
			chromedp.Evaluate(`
				(function() {
					var results = [];
					var nodes = document.querySelectorAll('li, div[class*="item"]');
					for (var i = 0; i < nodes.length && results.length < 150; i++) {
						var el = nodes[i];
						var text = el.innerText || '';
						if (text.indexOf('원') === -1) continue;
						if (el.querySelector('li')) continue;
						results.push({ text: text.trim(), html: el.innerHTML });
					}
					return results;
				})()
			`, &raw),
		)
		if err != nil {
			return fmt.Errorf("chromedp extract: %w", err)
		}

		fragments = fragments[:0]
		for _, f := range raw {
			fragments = append(fragments, models.RawFragment{Text: f.Text, Markup: f.HTML})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("[naver] %s %s: %d fragments", hotelID, checkIn, len(fragments))
	return fragments, nil
}

// findChromeBinary locates Chrome/Chromium binary.
func findChromeBinary(configured string) string {
	if configured != "" {
		return configured
	}
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		return bin
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
