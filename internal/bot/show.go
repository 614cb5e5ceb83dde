package bot

// fieldHint lists the field names ShowByField understands
var fieldHint = []string{"names", "ratings", "menu", "addresses", "branches"}

// ShowAll prints full details for every restaurant in catalog order
func (b *Bot) ShowAll() {
	b.println("\n" + b.styles.title.Render(" ALL RESTAURANTS INFORMATION:"))
	for _, r := range b.catalog.All() {
		b.showDetails(r)
	}
}

// ShowRestaurants prints full details for each named restaurant
func (b *Bot) ShowRestaurants(names []string) error {
	for _, name := range names {
		r, ok := b.catalog.Lookup(name)
		if !ok {
			return &LookupError{Err: ErrRestaurantNotFound, Query: name, Available: b.catalog.Names()}
		}
		b.showDetails(r)
	}
	return nil
}

// ShowByField prints one attribute of every restaurant
func (b *Bot) ShowByField(field string) error {
	restaurants := b.catalog.All()
	switch field {
	case "name":
		b.println("\n" + b.styles.title.Render(" RESTAURANT NAMES:"))
		for _, r := range restaurants {
			b.printf("   • %s\n", r.Name())
		}
	case "rating":
		b.println("\n" + b.styles.title.Render(" RESTAURANT RATINGS:"))
		for _, r := range restaurants {
			b.printf("   • %s: %s/5\n", r.Name(), formatRating(r.Rating()))
		}
	case "menu", "prices":
		b.println("\n" + b.styles.title.Render(" ALL RESTAURANT MENUS:"))
		for _, r := range restaurants {
			b.printf("\n%s:\n", r.Name())
			b.showMenu(r)
		}
	case "address", "branches":
		b.println("\n" + b.styles.title.Render(" RESTAURANT ADDRESSES:"))
		for _, r := range restaurants {
			b.printf("\n%s:\n", r.Name())
			for _, address := range r.Addresses() {
				b.printf("   • %s\n", address)
			}
		}
	default:
		return &LookupError{Err: ErrUnknownField, Query: field, Available: fieldHint}
	}
	return nil
}
