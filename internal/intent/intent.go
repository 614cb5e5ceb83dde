// Package intent classifies a line of free text into one of the assistant's
// commands using ordered substring rules. The first rule that matches wins;
// the order of the rules is part of the behaviour and must not be changed.
package intent

import "strings"

// Kind identifies what the user asked for
type Kind string

const (
	KindHelp           Kind = "help"
	KindRecommend      Kind = "recommend"
	KindOrder          Kind = "order"
	KindBranchFinder   Kind = "branch_finder"
	KindOpenStatus     Kind = "open_status"
	KindShowRestaurant Kind = "show_restaurant"
	KindShowField      Kind = "show_field"
	KindShowAll        Kind = "show_all"
	KindVague          Kind = "vague"
	KindUnknown        Kind = "unknown"
)

// Intent is the classification of one input line
type Intent struct {
	Kind Kind
	// Input is the line as typed, before lowering
	Input string
	// Keyword filters recommendations; empty means no filter
	Keyword string
	// Restaurants holds lower-cased names mentioned in the line, in catalog order.
	// Open-status uses at most the first one.
	Restaurants []string
	// Field is the attribute requested by a show-field intent
	Field string
}

// Target returns the first restaurant named by the intent, if any
func (i Intent) Target() (string, bool) {
	if len(i.Restaurants) == 0 {
		return "", false
	}
	return i.Restaurants[0], true
}

var (
	// HelpPhrases must equal the whole input to count as a help request
	HelpPhrases = []string{"help", "commands", "what can you do"}

	// RecommendKeywords are checked in this order; the first one present is used
	RecommendKeywords = []string{"burger", "pizza", "pasta", "wrap", "sandwich"}

	// FieldKeywords are checked in this order; only the first match is shown
	FieldKeywords = []string{"name", "address", "menu", "branches", "rating", "prices"}
)

const (
	phraseTellMeAbout = "tell me about"
	phraseUnder       = "under"
	phraseRestaurants = "restaurants"
)

func containsAny(text string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

func firstContained(text string, needles []string) string {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return n
		}
	}
	return ""
}
