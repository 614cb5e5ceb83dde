package models

import (
	"fmt"
	"strings"
)

// Location pairs a branch name with its street address
type Location struct {
	Branch  string
	Address string
}

// Restaurant is a read-only restaurant profile
type Restaurant struct {
	name      string
	branches  []string
	addresses []string
	rating    float64
	menu      Menu
}

// NewRestaurant builds a restaurant and checks its invariants
func NewRestaurant(name string, branches, addresses []string, rating float64, menu Menu) (*Restaurant, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("restaurant name is required")
	}
	if len(branches) != len(addresses) {
		return nil, fmt.Errorf("restaurant %s: %d branches but %d addresses", name, len(branches), len(addresses))
	}
	if rating < 0 || rating > 5 {
		return nil, fmt.Errorf("restaurant %s: rating %v out of range [0,5]", name, rating)
	}
	for category, items := range menu {
		if strings.TrimSpace(category) == "" {
			return nil, fmt.Errorf("restaurant %s: empty category name", name)
		}
		for _, item := range items {
			if err := ValidateMenuItem(item); err != nil {
				return nil, fmt.Errorf("restaurant %s, category %s: %w", name, category, err)
			}
		}
	}

	return &Restaurant{
		name:      name,
		branches:  append([]string(nil), branches...),
		addresses: append([]string(nil), addresses...),
		rating:    rating,
		menu:      menu.clone(),
	}, nil
}

// Name returns the restaurant's display name
func (r *Restaurant) Name() string { return r.name }

// Rating returns the rating out of 5
func (r *Restaurant) Rating() float64 { return r.rating }

// Branches returns the branch names in listing order
func (r *Restaurant) Branches() []string { return append([]string(nil), r.branches...) }

// Addresses returns the branch addresses, parallel to Branches
func (r *Restaurant) Addresses() []string { return append([]string(nil), r.addresses...) }

// Locations returns branch/address pairs in listing order
func (r *Restaurant) Locations() []Location {
	locations := make([]Location, len(r.branches))
	for i := range r.branches {
		locations[i] = Location{Branch: r.branches[i], Address: r.addresses[i]}
	}
	return locations
}

// LocationsIn returns the branches whose address mentions city, ignoring case
func (r *Restaurant) LocationsIn(city string) []Location {
	needle := strings.ToLower(city)
	var matches []Location
	for _, loc := range r.Locations() {
		if strings.Contains(strings.ToLower(loc.Address), needle) {
			matches = append(matches, loc)
		}
	}
	return matches
}

// Menu returns a copy of the categorized menu
func (r *Restaurant) Menu() Menu { return r.menu.clone() }

// Categories returns the menu's category names in display order
func (r *Restaurant) Categories() []string { return r.menu.Categories() }

// Category looks up one menu category ignoring case
func (r *Restaurant) Category(name string) (string, []MenuItem, bool) {
	canonical, items, ok := r.menu.Category(name)
	if !ok {
		return "", nil, false
	}
	return canonical, append([]MenuItem(nil), items...), true
}

// IsNamed reports whether name matches the restaurant ignoring case
func (r *Restaurant) IsNamed(name string) bool {
	return strings.EqualFold(r.name, strings.TrimSpace(name))
}
