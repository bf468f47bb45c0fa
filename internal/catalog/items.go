package catalog

func defaultItems() []Item {
	return []Item{
		{ID: "fish", Type: TypeFood, Name: "Dried Fish", Description: "A favourite snack", Cost: 10, Satiety: 10, Happiness: 5, Exp: 5},
		{ID: "cat_food", Type: TypeFood, Name: "Cat Food", Description: "Everyday kibble", Cost: 20, Satiety: 25, Happiness: 10, Energy: 10, Exp: 10},
		{ID: "premium_cat_food", Type: TypeFood, Name: "Premium Cat Food", Description: "Nutritious and tasty", Cost: 50, Satiety: 50, Happiness: 20, Energy: 20, Exp: 20},
		{ID: "canned", Type: TypeFood, Name: "Canned Tuna", Description: "A delicious tin", Cost: 80, Satiety: 30, Happiness: 40, Energy: 10, Exp: 30},
		{ID: "salmon", Type: TypeFood, Name: "Salmon", Description: "Premium ingredient", Cost: 100, Satiety: 40, Happiness: 50, Energy: 20, Exp: 40},
		{ID: "yarn_ball", Type: TypeToy, Name: "Yarn Ball", Description: "Roll it, chase it", Cost: 30, Happiness: 15, Energy: -5, Exp: 8},
		{ID: "feather_wand", Type: TypeToy, Name: "Feather Wand", Description: "Irresistible fluttering", Cost: 60, Happiness: 25, Energy: -10, Exp: 15},
		{ID: "laser_pointer", Type: TypeToy, Name: "Laser Pointer", Description: "The red dot returns", Cost: 120, Happiness: 35, Energy: -15, Exp: 25},
		{ID: "catnip", Type: TypeSpecial, Name: "Catnip", Description: "Instant good mood", Cost: 150, Happiness: 60, Energy: 30, Exp: 10},
	}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultItems()...)
	if err != nil {
		panic(err)
	}
	return c
}
