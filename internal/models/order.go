package models

// TaxRate is the flat surcharge applied when an order is confirmed
const TaxRate = 0.15

// OrderStatus represents the possible outcomes of an order interaction
type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusAborted   OrderStatus = "aborted"
)

// Order is a confirmed purchase of a single item
type Order struct {
	Restaurant string
	Item       MenuItem
	Tax        float64
	Total      float64
}

// NewOrder prices an item for restaurant, adding tax
func NewOrder(restaurant string, item MenuItem) Order {
	tax := TaxRate * item.Price
	return Order{
		Restaurant: restaurant,
		Item:       item,
		Tax:        tax,
		Total:      item.Price + tax,
	}
}
