package category

const otherColor = "#9E9E9E"

// DefaultRules is the grocery rule table. Order matters: classification
// checks rules top to bottom and returns the first hit.
var DefaultRules = []Rule{
	{
		Name: "Produce",
		Keywords: []string{
			"apple", "banana", "orange", "grape", "berry", "strawberry",
			"lettuce", "tomato", "potato", "onion", "carrot", "broccoli",
			"spinach", "celery", "pepper", "avocado", "cucumber", "fruit",
			"vegetable", "salad", "melon", "peach", "pear", "plum", "mango",
			"pineapple", "kale", "cabbage", "squash", "zucchini", "corn",
		},
		Color: "#4CAF50",
	},
	{
		Name: "Meat & Seafood",
		Keywords: []string{
			"chicken", "beef", "pork", "turkey", "fish", "salmon", "tuna",
			"shrimp", "meat", "steak", "ground", "bacon", "sausage", "ham",
			"lamb", "tilapia", "cod", "ribeye", "sirloin", "brisket",
		},
		Color: "#F44336",
	},
	{
		Name: "Dairy & Eggs",
		Keywords: []string{
			"milk", "cheese", "yogurt", "butter", "cream", "egg",
			"sour cream", "cottage", "cheddar", "mozzarella", "parmesan",
			"ice cream", "whipped", "half and half", "dairy",
		},
		Color: "#FFF9C4",
	},
	{
		Name: "Bakery & Bread",
		Keywords: []string{
			"bread", "bagel", "roll", "bun", "baguette", "croissant",
			"muffin", "donut", "cake", "cookie", "pastry", "tortilla",
			"wrap", "pita", "bakery",
		},
		Color: "#D7CCC8",
	},
	{
		Name: "Pantry & Canned",
		Keywords: []string{
			"pasta", "rice", "bean", "sauce", "soup", "cereal", "oats",
			"flour", "sugar", "salt", "pepper", "spice", "oil", "vinegar",
			"can", "canned", "jar", "box", "bag", "chips", "crackers",
			"peanut butter", "jelly", "jam", "honey", "syrup",
		},
		Color: "#FF9800",
	},
	{
		Name: "Beverages",
		Keywords: []string{
			"water", "juice", "soda", "coffee", "tea", "beer", "wine",
			"alcohol", "drink", "beverage", "lemonade", "cola", "sprite",
			"energy drink", "sports drink", "smoothie",
		},
		Color: "#2196F3",
	},
	{
		Name: "Frozen",
		Keywords: []string{
			"frozen", "ice", "pizza", "freezer", "popsicle", "ice cream",
		},
		Color: "#B3E5FC",
	},
	{
		Name: "Snacks & Sweets",
		Keywords: []string{
			"candy", "chocolate", "snack", "chip", "popcorn", "pretzel",
			"cracker", "granola", "bar", "gum", "mint", "cookie",
		},
		Color: "#E91E63",
	},
	{
		Name: "Condiments & Sauces",
		Keywords: []string{
			"ketchup", "mustard", "mayo", "mayonnaise", "dressing",
			"salsa", "hot sauce", "bbq", "marinade", "soy sauce",
			"worcestershire", "relish", "pickle",
		},
		Color: "#795548",
	},
	{
		Name:     Other,
		Keywords: []string{},
		Color:    otherColor,
	},
}
