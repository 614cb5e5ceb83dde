package catalog

import "chefbot/internal/models"

// restaurantTable is the literal data for one restaurant
type restaurantTable struct {
	name      string
	branches  []string
	addresses []string
	rating    float64
	menu      models.Menu
}

var tables = []restaurantTable{
	{
		name:      "Cheezious",
		branches:  []string{"I-8", "G-10", "F-11"},
		addresses: []string{"I-8 Islamabad", "G-10 Islamabad", "F-11 Islamabad"},
		rating:    4.5,
		menu: models.Menu{
			"Burgers": {
				{Name: "Zinger Burger", Price: 450},
				{Name: "Cheese Zinger", Price: 480},
				{Name: "Double Zinger", Price: 650},
				{Name: "Spicy Zinger", Price: 500},
			},
			"Pizzas": {
				{Name: "Fajita Pizza", Price: 900},
				{Name: "Pepperoni Pizza", Price: 950},
			},
			"Pastas": {
				{Name: "Creamy Pasta", Price: 600},
				{Name: "Spicy Pasta", Price: 650},
			},
		},
	},
	{
		name:      "Ranchers",
		branches:  []string{"G-9", "F-6", "DHA"},
		addresses: []string{"G-9 Islamabad", "F-6 Islamabad", "DHA Lahore"},
		rating:    4.2,
		menu: models.Menu{
			"Burgers": {
				{Name: "Beef Burger", Price: 480},
				{Name: "Cheesy Beef Burger", Price: 520},
				{Name: "Ranch Beef Burger", Price: 580},
				{Name: "Double Decker", Price: 620},
			},
			"Wraps": {
				{Name: "Grilled Wrap", Price: 300},
				{Name: "Zinger Wrap", Price: 350},
			},
			"Sandwiches": {
				{Name: "Club Sandwich", Price: 400},
				{Name: "Cheese Sandwich", Price: 370},
			},
		},
	},
	{
		name:      "Howdy",
		branches:  []string{"Giga Mall", "Blue Area", "PWD"},
		addresses: []string{"Giga Mall Islamabad", "Blue Area Islamabad", "PWD Islamabad"},
		rating:    4.0,
		menu: models.Menu{
			"Burgers": {
				{Name: "Howdy Burger", Price: 550},
				{Name: "Cheese Gun Burger", Price: 580},
				{Name: "Wild West Burger", Price: 700},
				{Name: "Bacon BBQ Burger", Price: 680},
			},
			"BBQ": {
				{Name: "BBQ Platter", Price: 1200},
				{Name: "BBQ Ribs", Price: 1300},
			},
			"Steaks": {
				{Name: "Ribeye Steak", Price: 1400},
				{Name: "T-Bone Steak", Price: 1600},
			},
		},
	},
}

// SupportedCities is the hint shown when a branch search finds nothing
var SupportedCities = []string{"Islamabad", "Lahore"}
