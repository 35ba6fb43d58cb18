package seed

import "github.com/user/recipevault/internal/model"

// Catalog categories every installation starts with, seeded in this order
var Catalog = []model.Category{
	{
		Name:        "Breakfast",
		Description: "Start your day with pancakes, omelettes, granola and other morning favourites.",
		Image:       "/images/categories/breakfast.jpg",
	},
	{
		Name:        "Appetizers",
		Description: "Small bites, dips and starters to open any meal.",
		Image:       "/images/categories/appetizers.jpg",
	},
	{
		Name:        "Soups",
		Description: "Comforting broths, chowders and stews for every season.",
		Image:       "/images/categories/soups.jpg",
	},
	{
		Name:        "Salads",
		Description: "Fresh greens, grain bowls and vibrant sides.",
		Image:       "/images/categories/salads.jpg",
	},
	{
		Name:        "Main Dishes",
		Description: "Hearty dinners and weeknight staples the whole family will love.",
		Image:       "/images/categories/main-dishes.jpg",
	},
	{
		Name:        "Vegetarian",
		Description: "Meat-free recipes packed with flavour.",
		Image:       "/images/categories/vegetarian.jpg",
	},
	{
		Name:        "Desserts",
		Description: "Cakes, cookies, pies and sweet treats.",
		Image:       "/images/categories/desserts.jpg",
	},
	{
		Name:        "Beverages",
		Description: "Smoothies, mocktails, coffees and teas.",
		Image:       "/images/categories/beverages.jpg",
	},
}
