package menu

// SampleItems is the built-in catalog served when no database is
// configured, or as the fallback when a catalog query fails.
func SampleItems() []MenuItem {
	return []MenuItem{
		{
			ID:              "item-1",
			Name:            "Margherita Pizza",
			Description:     "Wood-fired pizza with tomato, fresh mozzarella and basil",
			Price:           9.50,
			Category:        "Mains",
			Tags:            []string{"vegetarian"},
			PreparationTime: 15,
			Popular:         true,
		},
		{
			ID:              "item-2",
			Name:            "Spaghetti Carbonara",
			Description:     "Guanciale, egg yolk, pecorino and black pepper",
			Price:           12.00,
			Category:        "Mains",
			PreparationTime: 20,
		},
		{
			ID:              "item-3",
			Name:            "Grilled Chicken Burger",
			Description:     "Char-grilled chicken, lettuce, aioli, brioche bun",
			Price:           10.50,
			Category:        "Mains",
			PreparationTime: 18,
			Popular:         true,
		},
		{
			ID:              "item-4",
			Name:            "Caesar Salad",
			Description:     "Romaine, parmesan, croutons, house dressing",
			Price:           7.50,
			Category:        "Starters",
			Tags:            []string{"light"},
			PreparationTime: 10,
		},
		{
			ID:              "item-5",
			Name:            "Garlic Bread",
			Description:     "Toasted ciabatta with garlic butter and herbs",
			Price:           4.00,
			Category:        "Starters",
			Tags:            []string{"vegetarian"},
			PreparationTime: 8,
		},
		{
			ID:              "item-6",
			Name:            "Tomato Soup",
			Description:     "Roasted tomato soup with basil oil",
			Price:           5.50,
			Category:        "Starters",
			Tags:            []string{"vegan", "gluten-free"},
			PreparationTime: 10,
		},
		{
			ID:              "item-7",
			Name:            "Tiramisu",
			Description:     "Espresso-soaked savoiardi with mascarpone cream",
			Price:           6.00,
			Category:        "Desserts",
			PreparationTime: 5,
			Popular:         true,
		},
		{
			ID:              "item-8",
			Name:            "Chocolate Lava Cake",
			Description:     "Warm chocolate cake with a molten centre",
			Price:           6.50,
			Category:        "Desserts",
			PreparationTime: 14,
		},
		{
			ID:          "item-9",
			Name:        "Fresh Lemonade",
			Description: "House-made lemonade with mint",
			Price:       3.50,
			Category:    "Drinks",
			Tags:        []string{"vegan"},
		},
		{
			ID:          "item-10",
			Name:        "Espresso",
			Description: "Double shot",
			Price:       2.50,
			Category:    "Drinks",
		},
	}
}
