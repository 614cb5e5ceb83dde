// Package catalog holds the fixed set of restaurants the assistant knows about.
package catalog

import (
	"fmt"

	"chefbot/internal/models"
)

// Catalog is an ordered, read-only collection of restaurants
type Catalog struct {
	restaurants []*models.Restaurant
}

// New builds a catalog from restaurants, keeping their order
func New(restaurants ...*models.Restaurant) (*Catalog, error) {
	c := &Catalog{restaurants: make([]*models.Restaurant, 0, len(restaurants))}
	for _, r := range restaurants {
		if _, exists := c.Lookup(r.Name()); exists {
			return nil, fmt.Errorf("duplicate restaurant %q", r.Name())
		}
		c.restaurants = append(c.restaurants, r)
	}
	return c, nil
}

// Default builds the built-in catalog of Cheezious, Ranchers and Howdy
func Default() (*Catalog, error) {
	restaurants := make([]*models.Restaurant, 0, len(tables))
	for _, t := range tables {
		r, err := models.NewRestaurant(t.name, t.branches, t.addresses, t.rating, t.menu)
		if err != nil {
			return nil, fmt.Errorf("failed to load restaurant %s: %w", t.name, err)
		}
		restaurants = append(restaurants, r)
	}
	return New(restaurants...)
}

// All returns the restaurants in catalog order
func (c *Catalog) All() []*models.Restaurant {
	return append([]*models.Restaurant(nil), c.restaurants...)
}

// Names returns the restaurant names in catalog order
func (c *Catalog) Names() []string {
	names := make([]string, len(c.restaurants))
	for i, r := range c.restaurants {
		names[i] = r.Name()
	}
	return names
}

// Lookup finds a restaurant by exact name, ignoring case
func (c *Catalog) Lookup(name string) (*models.Restaurant, bool) {
	for _, r := range c.restaurants {
		if r.IsNamed(name) {
			return r, true
		}
	}
	return nil, false
}
