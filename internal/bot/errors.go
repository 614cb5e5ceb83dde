package bot

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrItemNotFound       = errors.New("item not found")
	ErrUnknownField       = errors.New("unknown field")
	ErrNoBranches         = errors.New("no branches found")
)

// LookupError reports a name the user typed that matched nothing, along
// with the values that would have matched
type LookupError struct {
	Err       error
	Query     string
	Scope     string
	Available []string
}

func (e *LookupError) Error() string {
	if e.Scope != "" {
		return fmt.Sprintf("%v in %s: %q", e.Err, e.Scope, e.Query)
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Query)
}

func (e *LookupError) Unwrap() error { return e.Err }

// reportLookup prints the not-found message and the valid alternatives
func (b *Bot) reportLookup(e *LookupError) {
	available := strings.Join(e.Available, ", ")
	switch {
	case errors.Is(e, ErrRestaurantNotFound):
		b.println(b.styles.failure.Render(fmt.Sprintf(" '%s' is not a recognized restaurant.", e.Query)))
		b.println("Available restaurants: " + available)
	case errors.Is(e, ErrCategoryNotFound):
		b.println(b.styles.failure.Render(fmt.Sprintf(" Category '%s' not found.", e.Query)))
		b.println("Available categories: " + available)
	case errors.Is(e, ErrItemNotFound):
		b.println(b.styles.failure.Render(fmt.Sprintf(" Item '%s' not found in %s.", e.Query, e.Scope)))
		b.println("Available items: " + available)
	case errors.Is(e, ErrUnknownField):
		b.println(b.styles.failure.Render(" Sorry, I don't understand that field."))
		b.println("Try: " + available)
	case errors.Is(e, ErrNoBranches):
		b.println(b.styles.failure.Render(fmt.Sprintf(" No branches found in '%s'.", e.Query)))
		b.println("Available cities: " + available)
	default:
		b.println(b.styles.failure.Render(" " + e.Error()))
	}
}
