package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/trymee/pricescout/extractor"
	"github.com/trymee/pricescout/models"
	"github.com/trymee/pricescout/scraper"
)

const (
	// comparisonURLTemplate is the fixed Buyhatke search template the
	// product URL is encoded into.
	comparisonURLTemplate = "https://buyhatke.com/price-comparison?q=%s"

	scrapedFrom = "Buyhatke"
)

// ComparisonURL builds the comparison-site URL for a product page.
func ComparisonURL(productURL string) string {
	return fmt.Sprintf(comparisonURLTemplate, url.QueryEscape(productURL))
}

// Scrape returns the handler for POST /api/scrape-buyhatke.
//
// Orchestration flow:
//  1. Parse & validate the request (missing productUrl → 400).
//  2. Build the comparison-site URL.
//  3. Renderer.Fetch → rendered HTML (fetch fault → 500).
//  4. Extractor cascade over the parsed document (zero candidates → 404).
//  5. Post-process + product name, return 200.
func Scrape(rend scraper.Renderer, ext *extractor.Extractor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ScrapeRequest
		// A malformed body and a missing URL get the same answer: the
		// caller did not tell us what product to look up.
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ProductURL) == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Error:   "Product URL required",
			})
			return
		}

		comparisonURL := ComparisonURL(req.ProductURL)

		page, err := rend.Fetch(c.Request.Context(), comparisonURL)
		if err != nil {
			respondFault(c, err)
			return
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
		if err != nil {
			respondFault(c, models.NewScrapeError(
				models.ErrCodeExtraction,
				"failed to parse rendered page",
				err,
			))
			return
		}

		result := ext.Extract(doc, req.ProductURL)
		if len(result.Candidates) == 0 {
			slog.Info("no offers extracted",
				"productUrl", req.ProductURL,
				"attempted", result.Attempted,
			)
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success:     false,
				Error:       "No price comparison data found for this product",
				Message:     "The comparison page rendered but no offers could be extracted",
				BuyhatkeURL: comparisonURL,
			})
			return
		}

		offers, total := extractor.Process(result.Candidates, req.ProductURL)
		slog.Info("offers extracted",
			"productUrl", req.ProductURL,
			"strategy", result.Strategy,
			"offers", len(offers),
			"total", total,
		)

		c.JSON(http.StatusOK, models.ScrapeResponse{
			Success:     true,
			ProductName: extractor.ProductName(doc),
			OriginalURL: req.ProductURL,
			BuyhatkeURL: comparisonURL,
			Offers:      offers,
			TotalOffers: total,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
			ScrapedFrom: scrapedFrom,
		})
	}
}

// respondFault maps a fetch or extraction fault to a 500 JSON body.
func respondFault(c *gin.Context, err error) {
	scrapeErr, ok := err.(*models.ScrapeError)
	if !ok {
		scrapeErr = models.NewScrapeError(models.ErrCodeInternal, err.Error(), err)
	}

	slog.Error("scrape failed",
		"code", scrapeErr.Code,
		"error", scrapeErr.Details(),
	)

	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Success: false,
		Error:   "Failed to scrape price comparison data",
		Message: scrapeErr.Message,
		Details: scrapeErr.Details(),
	})
}
