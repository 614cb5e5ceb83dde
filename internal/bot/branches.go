package bot

import (
	"context"
	"strings"

	"chefbot/internal/catalog"
	"chefbot/internal/models"
)

// BranchMatch groups the branches of one restaurant found in a city
type BranchMatch struct {
	Restaurant string
	Locations  []models.Location
}

// FindBranches returns, per restaurant in catalog order, the branches whose
// address contains city, ignoring case
func FindBranches(c *catalog.Catalog, city string) []BranchMatch {
	var matches []BranchMatch
	for _, r := range c.All() {
		if locations := r.LocationsIn(city); len(locations) > 0 {
			matches = append(matches, BranchMatch{Restaurant: r.Name(), Locations: locations})
		}
	}
	return matches
}

// NearestBranch asks for a city and lists the branches located there
func (b *Bot) NearestBranch(ctx context.Context) ([]BranchMatch, error) {
	b.println("\n" + b.styles.title.Render(" BRANCH FINDER"))
	b.println(rule("-", 20))
	answer, err := b.ask(ctx, "Enter city name (e.g., Islamabad, Lahore): ")
	if err != nil {
		return nil, err
	}
	city := strings.TrimSpace(answer)

	matches := FindBranches(b.catalog, city)
	if len(matches) == 0 {
		return nil, &LookupError{Err: ErrNoBranches, Query: city, Available: catalog.SupportedCities}
	}

	b.printf("\n Branches in %s:\n", city)
	b.println(rule("-", 30))
	for _, match := range matches {
		b.printf("\n %s:\n", match.Restaurant)
		for _, loc := range match.Locations {
			b.printf("   • %s Branch\n", loc.Branch)
			b.printf("     %s\n", loc.Address)
		}
	}
	return matches, nil
}
