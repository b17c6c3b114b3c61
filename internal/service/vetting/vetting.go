package vetting

import "strings"

const (
	// Chains accumulate review counts far beyond what independents reach.
	massReviewThreshold = 3000
	// Price tiers 3 and 4 ($$$ / $$$$) lean corporate or premium-brand.
	corporatePriceLevel = 3
	// Records with no price data are assumed modest and independent.
	defaultPriceLevel = 1
)

// chainBlocklist holds lowercase name fragments of recognized national and
// large regional brands.
var chainBlocklist = []string{
	"starbucks", "mcdonald", "walmart", "target", "cvs", "walgreens",
	"subway", "dunkin", "7-eleven", "home depot", "lowe's", "costco",
	"whole foods", "trader joe", "best buy", "autozone", "dollar tree",
	"dollar general", "burger king", "wendy's", "taco bell", "pizza hut",
	"domino's", "kfc", "chick-fil-a", "panera", "chipotle", "olive garden",
}

// Candidate carries the signals used to judge whether a place is a
// small/independent business.
type Candidate struct {
	Name        string
	ReviewCount int
	PriceLevel  *int
}

// IsSmallBusiness reports whether the candidate looks like a small or
// independent business. The check is deliberately conservative: a blocklist
// name match, a massive review count, or a high price tier each exclude the
// candidate on their own.
func IsSmallBusiness(c Candidate) bool {
	name := strings.ToLower(c.Name)
	for _, chain := range chainBlocklist {
		if strings.Contains(name, chain) {
			return false
		}
	}
	if c.ReviewCount > massReviewThreshold {
		return false
	}
	price := defaultPriceLevel
	if c.PriceLevel != nil {
		price = *c.PriceLevel
	}
	return price < corporatePriceLevel
}
