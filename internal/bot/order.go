package bot

import (
	"context"
	"strings"

	"chefbot/internal/models"
)

// Order walks the user through choosing a restaurant, a category and an
// item, then asks for confirmation. Any unknown answer aborts the order.
// It returns the confirmed order, or nil when the user cancels.
func (b *Bot) Order(ctx context.Context) (*models.Order, error) {
	status := models.OrderStatusAborted
	defer func() { b.monitor.RecordOrder(string(status)) }()

	b.println("\n" + b.styles.title.Render(" ORDER PROCESS STARTED"))
	b.println(rule("-", 30))
	b.println("Which restaurant would you like to order from?")
	b.println("Available: " + strings.Join(b.catalog.Names(), ", "))

	// restaurant
	answer, err := b.ask(ctx, "Enter restaurant name: ")
	if err != nil {
		return nil, err
	}
	r, ok := b.catalog.Lookup(answer)
	if !ok {
		return nil, &LookupError{Err: ErrRestaurantNotFound, Query: answer, Available: b.catalog.Names()}
	}
	b.showDetails(r)

	// category
	answer, err = b.ask(ctx, "\nWhich category would you like to order from? ")
	if err != nil {
		return nil, err
	}
	category, items, ok := r.Category(answer)
	if !ok {
		return nil, &LookupError{Err: ErrCategoryNotFound, Query: answer, Available: r.Categories()}
	}
	b.printf("\n Available items in %s:\n", category)
	b.showItems(items)

	// item
	answer, err = b.ask(ctx, "\nEnter item name: ")
	if err != nil {
		return nil, err
	}
	item, ok := models.FindItem(items, answer)
	if !ok {
		names := make([]string, len(items))
		for i, it := range items {
			names[i] = it.Name
		}
		return nil, &LookupError{Err: ErrItemNotFound, Query: answer, Scope: category, Available: names}
	}

	b.println("\n" + b.styles.title.Render(" ORDER SUMMARY:"))
	b.printf("Restaurant: %s\n", r.Name())
	b.printf("Item: %s\n", item.Name)
	b.printf("Price: %s\n", formatPrice(item.Price))

	// confirmation
	answer, err = b.ask(ctx, "\nConfirm order? (yes/no): ")
	if err != nil {
		return nil, err
	}
	if !isYes(answer) {
		status = models.OrderStatusCancelled
		b.println(b.styles.warning.Render(" Order canceled."))
		return nil, nil
	}

	placed := models.NewOrder(r.Name(), item)
	status = models.OrderStatusConfirmed
	b.printBill(placed)

	if err := b.journal.RecordOrder(placed); err != nil {
		b.monitor.RecordJournalFailure("orders")
		b.logger.Printf("Failed to record order: %v", err)
		b.println(b.styles.warning.Render(" Warning: Could not log order to file."))
	} else {
		b.println(" Order logged successfully.")
	}
	b.println(" Your order will be prepared shortly!")
	return &placed, nil
}

func (b *Bot) printBill(order models.Order) {
	b.println("\n" + b.styles.success.Render(" ORDER CONFIRMED!"))
	b.println(rule("-", 25))
	b.println(" BILL SUMMARY:")
	b.printf("Item: %s - %s\n", order.Item.Name, formatAmount(order.Item.Price))
	b.printf("Tax (%d%%): %s\n", int(models.TaxRate*100), formatAmount(order.Tax))
	b.printf("Total: %s\n", formatAmount(order.Total))
	b.println(rule("-", 25))
}
