package intent

import (
	"slices"
	"strings"
)

// rule is one step of the decision list
type rule struct {
	kind    Kind
	matches func(text string) bool
	// extract fills in parameters and may refine the kind
	extract func(d *Dispatcher, text string, in *Intent)
}

// Dispatcher maps raw input to an Intent
type Dispatcher struct {
	restaurants []string
	rules       []rule
}

// NewDispatcher creates a dispatcher that recognises the given restaurant
// names. Names are matched case-insensitively in the order given.
func NewDispatcher(restaurants []string) *Dispatcher {
	d := &Dispatcher{restaurants: make([]string, len(restaurants))}
	for i, name := range restaurants {
		d.restaurants[i] = strings.ToLower(name)
	}
	d.rules = []rule{
		{
			kind: KindHelp,
			matches: func(text string) bool {
				return slices.Contains(HelpPhrases, text)
			},
		},
		{
			kind: KindRecommend,
			matches: func(text string) bool {
				return strings.Contains(text, "recommend") ||
					(strings.Contains(text, phraseTellMeAbout) && strings.Contains(text, phraseUnder))
			},
			extract: func(_ *Dispatcher, text string, in *Intent) {
				in.Keyword = firstContained(text, RecommendKeywords)
			},
		},
		{
			kind: KindOrder,
			matches: func(text string) bool {
				return containsAny(text, "order", "place order")
			},
		},
		{
			kind: KindBranchFinder,
			matches: func(text string) bool {
				return containsAny(text, "nearest", "branch", "find branches")
			},
		},
		{
			kind: KindOpenStatus,
			matches: func(text string) bool {
				return containsAny(text, "open now", "open status")
			},
			extract: func(d *Dispatcher, text string, in *Intent) {
				if name := firstContained(text, d.restaurants); name != "" {
					in.Restaurants = []string{name}
				}
			},
		},
		{
			kind: KindVague,
			matches: func(text string) bool {
				return strings.Contains(text, phraseTellMeAbout)
			},
			extract: (*Dispatcher).refineTellMeAbout,
		},
	}
	return d
}

// Classify returns the intent for one line of input
func (d *Dispatcher) Classify(input string) Intent {
	text := strings.ToLower(input)
	for _, r := range d.rules {
		if !r.matches(text) {
			continue
		}
		in := Intent{Kind: r.kind, Input: input}
		if r.extract != nil {
			r.extract(d, text, &in)
		}
		return in
	}
	return Intent{Kind: KindUnknown, Input: input}
}

// refineTellMeAbout sub-classifies a "tell me about" request: restaurant
// names first, then field keywords, then the catch-all "restaurants".
func (d *Dispatcher) refineTellMeAbout(text string, in *Intent) {
	for _, name := range d.restaurants {
		if strings.Contains(text, name) {
			in.Restaurants = append(in.Restaurants, name)
		}
	}
	switch {
	case len(in.Restaurants) > 0:
		in.Kind = KindShowRestaurant
	case firstContained(text, FieldKeywords) != "":
		in.Kind = KindShowField
		in.Field = firstContained(text, FieldKeywords)
	case strings.Contains(text, phraseRestaurants):
		in.Kind = KindShowAll
	default:
		in.Kind = KindVague
	}
}
