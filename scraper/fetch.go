package scraper

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"time"

	"github.com/DataHenHQ/useragent"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"github.com/trymee/pricescout/models"
	"github.com/ysmood/gson"
)

// RenderedPage is the outcome of one comparison-page fetch.
type RenderedPage struct {
	HTML     string
	Title    string
	FinalURL string
}

// Renderer supplies rendered documents. The HTTP layer depends on this
// interface rather than on *Scraper so handler tests can substitute a
// fixture renderer.
type Renderer interface {
	Fetch(ctx context.Context, pageURL string) (*RenderedPage, error)
}

// Fetch renders one comparison page and returns its final HTML.
//
// There is exactly one attempt per request. The navigation budget plus the
// fixed settle delay bound the whole operation; a page that has not rendered
// by then fails with FETCH_TIMEOUT.
//
// Lifecycle:
//
//  1. Deadline guard      – navigation budget + settle delay
//  2. Acquire page        – borrow a tab from the pool (or create one)
//  3. DEFER: cleanup      – about:blank + return to pool, every exit path
//  4. Stealth injection   – mask navigator.webdriver etc. (before navigation)
//  5. User-Agent + Referer
//  6. Navigate            – bound to the request context
//  7. Wait                – DOM stable, then the fixed settle delay so
//     client-side rendering can fill the comparison widgets
//  8. Extract             – page.HTML() + document.title + final URL
//
// Steps 4-5 must precede step 6: the stealth script and headers only apply
// to navigations installed after them. Step 3 uses the original page
// reference (no request context), so cleanup succeeds even after a timeout.
func (s *Scraper) Fetch(ctx context.Context, pageURL string) (*RenderedPage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.scraperCfg.NavigationTimeout+s.scraperCfg.SettleDelay)
	defer cancel()

	s.activePages.Add(1)
	defer s.activePages.Add(-1)

	page, acquireErr := s.pagePool.Get(func() (*rod.Page, error) {
		return s.browser.Page(proto.TargetCreateTarget{})
	})
	if acquireErr != nil {
		return nil, models.NewScrapeError(
			models.ErrCodeBrowserCrash,
			"failed to acquire page from pool",
			acquireErr,
		)
	}

	defer func() {
		if navErr := page.Navigate("about:blank"); navErr != nil {
			slog.Warn("cleanup: failed to navigate to about:blank",
				"error", navErr,
			)
		}
		s.pagePool.Put(page)
	}()

	if _, evalErr := page.EvalOnNewDocument(stealth.JS); evalErr != nil {
		slog.Warn("stealth injection failed, proceeding without stealth",
			"error", evalErr,
		)
	}

	if ua, uaErr := useragent.Desktop(); uaErr == nil {
		_ = page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: ua})
	}

	// Make the visit look like a search-engine arrival.
	if u, parseErr := url.Parse(pageURL); parseErr == nil {
		_ = proto.NetworkSetExtraHTTPHeaders{
			Headers: proto.NetworkHeaders{
				"Referer": gson.New("https://www.google.com/search?q=" + url.QueryEscape(u.Hostname())),
			},
		}.Call(page)
	}

	p := page.Context(ctx)

	if navErr := p.Navigate(pageURL); navErr != nil {
		return nil, categorizeError(navErr, "navigation to comparison page failed")
	}

	if stableErr := p.WaitDOMStable(300*time.Millisecond, 0.1); stableErr != nil {
		slog.Debug("WaitDOMStable did not converge, proceeding with current DOM",
			"error", stableErr,
		)
	}

	// Fixed settle buffer: the offer widgets are filled in client-side
	// after the DOM quiets down.
	select {
	case <-ctx.Done():
		return nil, categorizeError(ctx.Err(), "page did not settle within budget")
	case <-time.After(s.scraperCfg.SettleDelay):
	}

	rawHTML, htmlErr := p.HTML()
	if htmlErr != nil {
		return nil, categorizeError(htmlErr, "failed to extract page HTML")
	}

	title := evalStringOrEmpty(p, `() => document.title`)
	finalURL := evalStringOrEmpty(p, `() => window.location.href`)
	if finalURL == "" {
		finalURL = pageURL
	}

	return &RenderedPage{
		HTML:     rawHTML,
		Title:    title,
		FinalURL: finalURL,
	}, nil
}

// evalStringOrEmpty evaluates a JS expression and returns the string result,
// swallowing any errors (useful for optional metadata extraction).
func evalStringOrEmpty(page *rod.Page, js string) string {
	res, err := page.Eval(js)
	if err != nil {
		return ""
	}
	return res.Value.Str()
}

// categorizeError wraps raw errors into typed ScrapeErrors so the API layer
// can map them to appropriate HTTP status codes.
func categorizeError(err error, msg string) *models.ScrapeError {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return models.NewScrapeError(models.ErrCodeFetchTimeout, msg, err)
	case errors.Is(err, context.Canceled):
		return models.NewScrapeError(models.ErrCodeFetchTimeout, "request canceled", err)
	default:
		return models.NewScrapeError(models.ErrCodeFetchFailed, msg, err)
	}
}
