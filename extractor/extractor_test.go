package extractor

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const productURL = "https://example.com/item/1"

func parseDoc(t *testing.T, rawHTML string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		t.Fatalf("failed to parse fixture HTML: %v", err)
	}
	return doc
}

const tabularFixture = `
<html><body>
  <h1 class="product-name">Acme Trail Shoe</h1>
  <table class="comparison-table">
    <tr class="header-row"><th>Store</th><th>Price</th><th>Rating</th></tr>
    <tr>
      <td class="store-name">Amazon</td>
      <td class="price">₹1,500</td>
      <td class="rating">4.2 out of 5</td>
      <td class="reviews">1,204 ratings</td>
      <td class="delivery">1-2 days</td>
      <td><a class="buy-now" href="https://www.amazon.in/dp/X1">Buy</a></td>
    </tr>
    <tr>
      <td class="store-name">Flipkart</td>
      <td class="price">₹1,200</td>
      <td class="original-price">₹1,500</td>
      <td class="stock">Only 2 left</td>
    </tr>
    <tr>
      <td class="store-name">!</td>
      <td class="price">₹900</td>
    </tr>
    <tr>
      <td class="store-name">Myntra</td>
      <td class="price">contact seller</td>
    </tr>
  </table>
</body></html>`

func TestExtract_TabularLayout(t *testing.T) {
	res := New().Extract(parseDoc(t, tabularFixture), productURL)

	if res.Strategy != "tabular" {
		t.Fatalf("Strategy = %q, want tabular", res.Strategy)
	}
	if len(res.Candidates) != 2 {
		t.Fatalf("got %d candidates, want 2 (header and malformed rows skipped)", len(res.Candidates))
	}

	amazon := res.Candidates[0]
	if amazon.Platform != "Amazon" {
		t.Errorf("Platform = %q, want Amazon", amazon.Platform)
	}
	if amazon.Price != "₹1,500" {
		t.Errorf("Price = %q, want ₹1,500", amazon.Price)
	}
	if amazon.Rating != "4.2" {
		t.Errorf("Rating = %q, want 4.2", amazon.Rating)
	}
	if amazon.Reviews != "1,204" {
		t.Errorf("Reviews = %q, want 1,204", amazon.Reviews)
	}
	if amazon.DeliveryTime != "1-2 days" {
		t.Errorf("DeliveryTime = %q, want 1-2 days", amazon.DeliveryTime)
	}
	if amazon.Availability != "In Stock" {
		t.Errorf("Availability = %q, want default In Stock", amazon.Availability)
	}
	if amazon.BuyURL != "https://www.amazon.in/dp/X1" {
		t.Errorf("BuyURL = %q, want the retailer anchor", amazon.BuyURL)
	}

	flipkart := res.Candidates[1]
	if flipkart.OriginalPrice != "₹1,500" {
		t.Errorf("OriginalPrice = %q, want ₹1,500", flipkart.OriginalPrice)
	}
	if flipkart.Availability != "Only 2 left" {
		t.Errorf("Availability = %q, want page value", flipkart.Availability)
	}
	if flipkart.BuyURL != productURL {
		t.Errorf("BuyURL = %q, want product URL fallback", flipkart.BuyURL)
	}
}

func TestExtract_TabularWinsStopsCascade(t *testing.T) {
	// Table and cards both present: only the tabular strategy may run.
	fixture := tabularFixture + `
	<div class="offer-card"><h3>Snapdeal</h3><div class="price">₹800</div></div>`

	res := New().Extract(parseDoc(t, fixture), productURL)

	if len(res.Attempted) != 1 || res.Attempted[0] != "tabular" {
		t.Fatalf("Attempted = %v, want [tabular] only", res.Attempted)
	}
	for _, c := range res.Candidates {
		if c.Platform == "Snapdeal" {
			t.Error("card candidate emitted even though the tabular strategy succeeded")
		}
	}
}

const cardsFixture = `
<html><body>
  <div class="offer-card">
    <h3>Myntra</h3>
    <div class="price">₹799</div>
    <div class="rating">4.5</div>
    <a href="https://www.myntra.com/acme-shoe">View deal</a>
  </div>
  <div class="offer-card">
    <h3>Ajio</h3>
    <div class="price">₹849</div>
  </div>
  <div class="offer-card">
    <h3>Nykaa</h3>
    <div class="price">unavailable</div>
  </div>
</body></html>`

func TestExtract_CardLayoutFallback(t *testing.T) {
	res := New().Extract(parseDoc(t, cardsFixture), productURL)

	if res.Strategy != "cards" {
		t.Fatalf("Strategy = %q, want cards", res.Strategy)
	}
	if len(res.Attempted) != 2 {
		t.Fatalf("Attempted = %v, want tabular then cards", res.Attempted)
	}
	if len(res.Candidates) != 2 {
		t.Fatalf("got %d candidates, want 2 (priceless card skipped)", len(res.Candidates))
	}

	myntra := res.Candidates[0]
	if myntra.Availability != "Available" {
		t.Errorf("Availability = %q, want card default Available", myntra.Availability)
	}
	if myntra.BuyURL != "https://www.myntra.com/acme-shoe" {
		t.Errorf("BuyURL = %q, want first card anchor", myntra.BuyURL)
	}
	if myntra.OriginalPrice != "" {
		t.Errorf("OriginalPrice = %q, want absent on the card path", myntra.OriginalPrice)
	}

	if res.Candidates[1].BuyURL != productURL {
		t.Errorf("anchorless card BuyURL = %q, want product URL", res.Candidates[1].BuyURL)
	}
}

const heuristicFixture = `
<html><body>
  <p>Random intro text with no prices.</p>
  <div><span>Amazon</span> <span>₹999</span></div>
  <div><span>Flipkart deal</span> <span>₹1,049</span></div>
  <div><span>Amazon again</span> <span>₹950</span></div>
  <div><span>Unknown Store</span> <span>₹500</span></div>
</body></html>`

func TestExtract_HeuristicFallback(t *testing.T) {
	res := New().Extract(parseDoc(t, heuristicFixture), productURL)

	if res.Strategy != "heuristic" {
		t.Fatalf("Strategy = %q, want heuristic", res.Strategy)
	}
	if len(res.Attempted) != 3 {
		t.Fatalf("Attempted = %v, want all three strategies", res.Attempted)
	}
	// Amazon matches once (seen-set), the unknown store never matches.
	if len(res.Candidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(res.Candidates))
	}

	amazon := res.Candidates[0]
	if amazon.Platform != "Amazon" || amazon.Price != "₹999" {
		t.Errorf("first candidate = %s %s, want Amazon ₹999", amazon.Platform, amazon.Price)
	}
	if amazon.Rating != "" || amazon.Reviews != "" || amazon.OriginalPrice != "" {
		t.Error("heuristic candidate carries fabricated rating/review/original-price data")
	}
	if amazon.Availability != "Check Availability" {
		t.Errorf("Availability = %q, want Check Availability", amazon.Availability)
	}
	if amazon.BuyURL != productURL {
		t.Errorf("BuyURL = %q, want product URL", amazon.BuyURL)
	}
}

func TestExtract_HeuristicCap(t *testing.T) {
	fixture := `<html><body>
	  <div>Amazon ₹100</div>
	  <div>Flipkart ₹200</div>
	  <div>Myntra ₹300</div>
	  <div>Ajio ₹400</div>
	  <div>Nykaa ₹500</div>
	  <div>Snapdeal ₹600</div>
	</body></html>`

	res := New().Extract(parseDoc(t, fixture), productURL)
	if len(res.Candidates) != 5 {
		t.Fatalf("got %d candidates, want cap of 5", len(res.Candidates))
	}
}

func TestExtract_ScriptTextIgnored(t *testing.T) {
	fixture := `<html><body>
	  <script>var x = "Amazon ₹999";</script>
	  <p>Nothing to see.</p>
	</body></html>`

	res := New().Extract(parseDoc(t, fixture), productURL)
	if len(res.Candidates) != 0 {
		t.Fatalf("got %d candidates from script text, want 0", len(res.Candidates))
	}
}

func TestExtract_EmptyDocument(t *testing.T) {
	res := New().Extract(parseDoc(t, `<html><body><p>hello</p></body></html>`), productURL)
	if len(res.Candidates) != 0 {
		t.Fatalf("got %d candidates, want 0", len(res.Candidates))
	}
	if res.Strategy != "" {
		t.Errorf("Strategy = %q, want empty on total miss", res.Strategy)
	}
}

func TestProductName_FallbackChain(t *testing.T) {
	cases := []struct {
		name string
		html string
		want string
	}{
		{"heading", `<html><head><title>ignored</title></head><body><h1 class="product-name">Acme Shoe</h1></body></html>`, "Acme Shoe"},
		{"og title", `<html><head><meta property="og:title" content="Acme Shoe - Compare"></head><body></body></html>`, "Acme Shoe - Compare"},
		{"page title stripped", `<html><head><title>Acme Shoe | Best Price!</title></head><body></body></html>`, "Acme Shoe Best Price"},
		{"nothing", `<html><body></body></html>`, "Product"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ProductName(parseDoc(t, c.html)); got != c.want {
				t.Errorf("ProductName = %q, want %q", got, c.want)
			}
		})
	}
}
