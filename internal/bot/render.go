package bot

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chefbot/internal/models"
)

// styles are applied to single lines only; lipgloss pads multi-line blocks
type styles struct {
	title   lipgloss.Style
	info    lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
}

func newStyles(out io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(out)
	if !color {
		plain := r.NewStyle()
		return styles{title: plain, info: plain, success: plain, warning: plain, failure: plain}
	}
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		info:    r.NewStyle().Foreground(lipgloss.Color("#0a84ff")),
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#30d158")),
		warning: r.NewStyle().Foreground(lipgloss.Color("#ff9f0a")),
		failure: r.NewStyle().Foreground(lipgloss.Color("#ff453a")),
	}
}

func (b *Bot) print(s string) {
	fmt.Fprint(b.out, s)
}

func (b *Bot) println(s string) {
	fmt.Fprintln(b.out, s)
}

func (b *Bot) printf(format string, args ...any) {
	fmt.Fprintf(b.out, format, args...)
}

func rule(char string, width int) string {
	return strings.Repeat(char, width)
}

// formatPrice renders a menu price the way menus show it: Rs 450
func formatPrice(price float64) string {
	return "Rs " + strconv.FormatFloat(price, 'f', -1, 64)
}

// formatAmount renders a bill amount with two decimals: Rs 67.50
func formatAmount(amount float64) string {
	return fmt.Sprintf("Rs %.2f", amount)
}

func formatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64)
}

func (b *Bot) showItems(items []models.MenuItem) {
	for _, item := range items {
		b.printf("   - %s: %s\n", item.Name, formatPrice(item.Price))
	}
}

func (b *Bot) showMenu(r *models.Restaurant) {
	menu := r.Menu()
	for _, category := range menu.Categories() {
		b.printf("  %s:\n", category)
		b.showItems(menu[category])
	}
}

func (b *Bot) showDetails(r *models.Restaurant) {
	b.println("\n" + rule("=", 50))
	b.println(b.styles.title.Render(fmt.Sprintf("  %s (Rating: %s/5)", r.Name(), formatRating(r.Rating()))))
	b.println(rule("=", 50))
	b.println(" Branches:")
	for _, loc := range r.Locations() {
		b.printf("   • %s %s - %s\n", r.Name(), loc.Branch, loc.Address)
	}
	b.println("\n Menu:")
	b.showMenu(r)
	b.println(rule("=", 50))
}
