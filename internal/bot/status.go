package bot

import "fmt"

// CheckOpenStatus reports whether the named restaurant is open right now.
// A clock failure counts as closed.
func (b *Bot) CheckOpenStatus(name string) (bool, error) {
	r, ok := b.catalog.Lookup(name)
	if !ok {
		return false, &LookupError{Err: ErrRestaurantNotFound, Query: name, Available: b.catalog.Names()}
	}

	b.println("\n" + b.styles.title.Render(" OPENING STATUS:"))
	b.println(rule("-", 20))

	open := false
	now, err := b.clock()
	if err != nil {
		b.println(b.styles.warning.Render(fmt.Sprintf(" Error getting current time: %v", err)))
		b.logger.Printf("Clock read failed: %v", err)
	} else {
		open = b.hours.IsOpenAt(now)
	}

	if open {
		b.println(b.styles.success.Render(fmt.Sprintf(" %s is OPEN now! (%s)", r.Name(), b.hours)))
	} else {
		b.println(b.styles.failure.Render(fmt.Sprintf(" %s is CLOSED now.", r.Name())))
		b.printf("Opening hours: %s\n", b.hours)
	}
	return open, nil
}
