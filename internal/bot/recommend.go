package bot

import (
	"context"
	"fmt"
	"strings"

	"chefbot/internal/catalog"
	"chefbot/internal/models"
)

// PriceCeiling is the most an item may cost to be recommended
const PriceCeiling = 500.0

// Pick is one recommended item
type Pick struct {
	Category string
	Item     models.MenuItem
}

// Recommendation groups the picks from one restaurant
type Recommendation struct {
	Restaurant string
	Picks      []Pick
}

// FindRecommendations returns items priced at or under ceiling whose name
// contains keyword, ignoring case. An empty keyword matches every item.
// Restaurants keep catalog order and only those with picks are returned.
func FindRecommendations(c *catalog.Catalog, keyword string, ceiling float64) []Recommendation {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	var recs []Recommendation
	for _, r := range c.All() {
		menu := r.Menu()
		var picks []Pick
		for _, category := range menu.Categories() {
			for _, item := range menu[category] {
				if item.Price > ceiling {
					continue
				}
				if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
					continue
				}
				picks = append(picks, Pick{Category: category, Item: item})
			}
		}
		if len(picks) > 0 {
			recs = append(recs, Recommendation{Restaurant: r.Name(), Picks: picks})
		}
	}
	return recs
}

// Recommend lists affordable items, prompting for a keyword when none is given
func (b *Bot) Recommend(ctx context.Context, keyword string) ([]Recommendation, error) {
	if keyword == "" {
		answer, err := b.ask(ctx, "Enter item keyword (burger, pizza, pasta, wrap, sandwich) or press Enter for all: ")
		if err != nil {
			return nil, err
		}
		keyword = strings.TrimSpace(answer)
	}

	header := fmt.Sprintf(" RECOMMENDATIONS UNDER %s", formatPrice(PriceCeiling))
	if keyword != "" {
		header += fmt.Sprintf(" (Keyword: %s)", keyword)
	}
	b.println("\n" + b.styles.title.Render(header+":"))
	b.println(rule("-", 50))

	recs := FindRecommendations(b.catalog, keyword, PriceCeiling)
	b.monitor.RecordRecommendation(len(recs) > 0)
	if len(recs) == 0 {
		msg := fmt.Sprintf(" No matching items found under %s", formatPrice(PriceCeiling))
		if keyword != "" {
			msg += fmt.Sprintf(" with keyword '%s'", keyword)
		}
		b.println(msg + ".")
		return nil, nil
	}

	for _, rec := range recs {
		b.printf("\n %s:\n", rec.Restaurant)
		for _, pick := range rec.Picks {
			b.printf("   • %s (%s) - %s\n", pick.Item.Name, pick.Category, formatPrice(pick.Item.Price))
		}
	}
	b.println(rule("-", 50))
	b.println(b.styles.info.Render(" Use 'order' command to place an order!"))

	if err := b.journal.RecordRecommendation(keyword, PriceCeiling); err != nil {
		b.monitor.RecordJournalFailure("recommendations")
		b.logger.Printf("Failed to record recommendation: %v", err)
	}
	return recs, nil
}
