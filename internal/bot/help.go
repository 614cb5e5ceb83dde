package bot

import "strings"

var helpText = []string{
	" INFORMATION COMMANDS:",
	"   • 'tell me about restaurants' - Show all restaurant info",
	"   • 'tell me about [restaurant name]' - Show specific restaurant",
	"     Examples: 'tell me about cheezious'",
	"               'tell me about ranchers'",
	"               'tell me about howdy'",
	"   • 'tell me about names' - Show restaurant names",
	"   • 'tell me about ratings' - Show restaurant ratings",
	"   • 'tell me about menu' - Show all menus",
	"   • 'tell me about addresses' - Show all addresses",
	"   • 'tell me about branches' - Show all branches",
	"",
	" ORDERING COMMANDS:",
	"   • 'order' - Start the ordering process",
	"   • 'place order' - Alternative ordering command",
	"",
	" RECOMMENDATION COMMANDS:",
	"   • 'recommend' - Show all items under Rs 500",
	"   • 'recommend burger' - Show burger recommendations",
	"   • 'recommend pizza' - Show pizza recommendations",
	"   • 'recommend pasta' - Show pasta recommendations",
	"   • 'recommend wrap' - Show wrap recommendations",
	"   • 'recommend sandwich' - Show sandwich recommendations",
	"",
	" LOCATION COMMANDS:",
	"   • 'nearest branch' - Find branches in your city",
	"   • 'find branches' - Alternative branch finder",
	"",
	" STATUS COMMANDS:",
	"   • '[restaurant name] open now' - Check if restaurant is open",
	"     Examples: 'cheezious open now'",
	"               'ranchers open status'",
	"               'howdy open now'",
	"",
	" HELP & EXIT:",
	"   • 'help' - Show this command guide",
	"   • 'commands' - Show available commands",
	"   • 'exit' - Quit ChefBot",
}

var quickCommands = []string{
	"• help - Show full command guide",
	"• tell me about restaurants - Show all info",
	"• order - Place an order",
	"• recommend - Get recommendations under Rs 500",
	"• nearest branch - Find branches near you",
	"• [restaurant] open now - Check opening status",
	"• exit - Quit ChefBot",
}

// ShowHelp prints the full command guide
func (b *Bot) ShowHelp() {
	b.println("\n" + rule("=", 50))
	b.println(b.styles.title.Render(" CHEFBOT COMMAND GUIDE"))
	b.println(rule("=", 50))
	b.println(strings.Join(helpText, "\n"))
	b.println(rule("=", 50))
	b.println(b.styles.info.Render(" TIP: Commands are not case-sensitive!"))
	b.println(rule("=", 50))
}

// ShowQuickCommands prints the short command summary
func (b *Bot) ShowQuickCommands() {
	b.println("\n Quick Commands:")
	b.println(strings.Join(quickCommands, "\n"))
}

func (b *Bot) greet() {
	b.println("\n" + rule("=", 60))
	b.println(b.styles.title.Render(" Welcome to ChefBot - Your Food Ordering Assistant!"))
	b.println(rule("=", 60))
	b.println("Type 'help' to see all available commands or 'exit' to quit.")
	b.println(rule("=", 60))
}

func (b *Bot) farewell() {
	b.println("\n" + rule("=", 40))
	b.println(b.styles.success.Render(" Thank you for using ChefBot!"))
	b.println(" Happy eating and see you next time!")
	b.println(rule("=", 40))
}
