package models

import (
	"fmt"
	"sort"
	"strings"
)

// MenuItem represents a dish on a restaurant's menu
type MenuItem struct {
	Name  string
	Price float64
}

// Menu maps a category name to its items in listing order
type Menu map[string][]MenuItem

// ValidateMenuItem validates a menu item
func ValidateMenuItem(item MenuItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("menu item name is required")
	}
	if item.Price < 0 {
		return fmt.Errorf("menu item %q price must not be negative", item.Name)
	}
	return nil
}

// Categories returns the category names in display order
func (m Menu) Categories() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Category looks up a category ignoring case and returns its canonical name
func (m Menu) Category(name string) (string, []MenuItem, bool) {
	for _, canonical := range m.Categories() {
		if strings.EqualFold(canonical, strings.TrimSpace(name)) {
			return canonical, m[canonical], true
		}
	}
	return "", nil, false
}

// FindItem returns the item whose name matches ignoring case
func FindItem(items []MenuItem, name string) (MenuItem, bool) {
	name = strings.TrimSpace(name)
	for _, item := range items {
		if strings.EqualFold(item.Name, name) {
			return item, true
		}
	}
	return MenuItem{}, false
}

// clone returns a deep copy so callers cannot mutate the owner's menu
func (m Menu) clone() Menu {
	out := make(Menu, len(m))
	for category, items := range m {
		out[category] = append([]MenuItem(nil), items...)
	}
	return out
}
