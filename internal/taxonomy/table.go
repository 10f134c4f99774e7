package taxonomy

// defaultOrder fixes the scan order for categorization. CategoryOther is the
// fallback and carries no keywords.
var defaultOrder = []Category{
	CategoryVegetables,
	CategoryFruits,
	CategoryMeat,
	CategoryFish,
	CategoryDairy,
	CategoryGrains,
	CategoryHerbsSpices,
	CategoryOilsCondiments,
	CategoryPantry,
	CategoryBeverages,
	CategoryFrozen,
	CategorySnacks,
	CategoryBakery,
	CategoryHousehold,
}

// defaultKeywords is the built-in keyword table, tuned for UK grocery naming.
// Bread and other baked goods live under bakery rather than grains.
var defaultKeywords = map[Category][]string{
	CategoryVegetables: {
		"onion", "onions", "potato", "potatoes", "carrot", "carrots", "celery", "broccoli",
		"cauliflower", "cabbage", "lettuce", "spinach", "kale", "rocket", "arugula",
		"tomato", "tomatoes", "cucumber", "courgette", "zucchini", "aubergine", "eggplant",
		"pepper", "peppers", "chilli", "chili", "garlic", "ginger", "leek", "beetroot",
		"radish", "turnip", "parsnip", "swede", "sprouts", "brussels sprouts", "sweetcorn",
		"corn", "peas", "green beans", "broad beans", "runner beans", "mushroom", "mushrooms",
		"asparagus", "artichoke", "fennel", "bok choy", "pak choi", "spring onion", "scallion",
	},

	CategoryFruits: {
		"apple", "apples", "banana", "bananas", "orange", "oranges", "lemon", "lemons",
		"lime", "limes", "strawberry", "strawberries", "raspberry", "raspberries",
		"blueberry", "blueberries", "blackberry", "blackberries", "grape", "grapes",
		"pear", "pears", "peach", "peaches", "plum", "plums", "cherry", "cherries",
		"pineapple", "mango", "mangoes", "avocado", "avocados", "kiwi", "passion fruit",
		"watermelon", "melon", "cantaloupe", "honeydew", "grapefruit", "pomegranate",
		"cranberry", "cranberries", "gooseberry", "gooseberries", "rhubarb", "fig", "figs",
		"date", "dates", "apricot", "apricots", "nectarine", "papaya", "coconut",
	},

	CategoryMeat: {
		"chicken", "beef", "pork", "lamb", "turkey", "duck", "bacon", "ham", "sausage",
		"sausages", "mince", "minced beef", "ground beef", "steak", "chop", "chops",
		"breast", "thigh", "leg", "wing", "wings", "ribs", "brisket", "roast",
		"venison", "rabbit", "pheasant", "chorizo", "salami", "prosciutto", "pancetta",
		"gammon", "black pudding", "liver", "kidney", "heart", "tongue", "oxtail",
	},

	CategoryFish: {
		"salmon", "cod", "haddock", "tuna", "mackerel", "sardines", "anchovies",
		"herring", "trout", "sea bass", "sea bream", "halibut", "sole", "plaice",
		"monkfish", "john dory", "red mullet", "prawns", "shrimp", "crab", "lobster",
		"scallops", "mussels", "clams", "oysters", "squid", "octopus", "cuttlefish",
		"fish", "seafood", "shellfish", "smoked salmon", "kipper", "eel",
	},

	CategoryDairy: {
		"milk", "cream", "butter", "cheese", "cheddar", "mozzarella", "parmesan",
		"brie", "camembert", "goats cheese", "feta", "ricotta", "cottage cheese",
		"cream cheese", "mascarpone", "yogurt", "yoghurt", "greek yogurt", "crème fraîche",
		"sour cream", "double cream", "single cream", "whipping cream", "buttermilk",
		"condensed milk", "evaporated milk", "skimmed milk", "whole milk", "semi-skimmed",
		"eggs",
	},

	CategoryGrains: {
		"rice", "pasta", "flour", "oats", "quinoa", "barley", "bulgur",
		"couscous", "polenta", "cornmeal", "noodles", "spaghetti",
		"penne", "fusilli", "tagliatelle", "lasagne", "ravioli",
		"cereal", "porridge", "muesli",
	},

	CategoryHerbsSpices: {
		"basil", "oregano", "thyme", "rosemary", "sage", "parsley", "coriander", "cilantro",
		"mint", "dill", "chives", "tarragon", "bay leaves", "bay leaf", "marjoram",
		"salt", "pepper", "paprika", "cumin", "turmeric", "cinnamon", "nutmeg",
		"cardamom", "cloves", "allspice", "garam masala", "curry powder", "chili powder",
		"cayenne", "smoked paprika", "saffron", "vanilla", "star anise", "fennel seeds",
		"coriander seeds", "mustard seeds", "sesame seeds", "poppy seeds", "herbs", "spices",
	},

	CategoryOilsCondiments: {
		"olive oil", "vegetable oil", "sunflower oil", "coconut oil", "sesame oil",
		"rapeseed oil", "groundnut oil", "vinegar", "balsamic vinegar", "white wine vinegar",
		"red wine vinegar", "apple cider vinegar", "soy sauce", "worcestershire sauce",
		"hot sauce", "ketchup", "mayonnaise", "mustard", "honey", "maple syrup",
		"jam", "marmalade", "peanut butter", "tahini", "hummus", "pesto", "tomato paste",
		"tomato puree", "coconut milk", "stock", "broth", "bouillon", "marmite", "vegemite",
	},

	CategoryPantry: {
		"sugar", "brown sugar", "icing sugar", "caster sugar", "baking powder", "bicarbonate of soda",
		"baking soda", "yeast", "cornflour", "cornstarch", "arrowroot", "gelatin", "gelatine",
		"cocoa powder", "chocolate", "dark chocolate", "milk chocolate", "white chocolate",
		"nuts", "almonds", "walnuts", "pecans", "cashews", "pistachios", "hazelnuts",
		"pine nuts", "peanuts", "chestnuts", "raisins", "sultanas", "currants", "dried fruit",
		"beans", "lentils", "chickpeas", "kidney beans", "black beans", "cannellini beans",
		"butter beans", "flageolet beans", "split peas", "red lentils", "green lentils",
		"tinned tomatoes", "canned tomatoes", "passata", "coconut cream", "desiccated coconut",
	},

	CategoryBeverages: {
		"water", "sparkling water", "juice", "orange juice", "apple juice", "squash",
		"coffee", "tea", "green tea", "herbal tea", "hot chocolate", "cola", "lemonade",
		"soda", "tonic", "beer", "lager", "cider", "wine", "red wine", "white wine",
		"prosecco", "gin", "whisky", "vodka", "rum", "kombucha", "smoothie",
	},

	CategoryFrozen: {
		"frozen", "ice cream", "ice lolly", "ice lollies", "sorbet", "frozen peas",
		"frozen sweetcorn", "frozen berries", "fish fingers", "frozen pizza",
		"frozen chips", "oven chips", "frozen pastry", "ice cubes",
	},

	CategorySnacks: {
		"crisps", "crackers", "popcorn", "pretzels", "biscuits", "cookies",
		"sweets", "candy", "chocolate bar", "cereal bar", "granola bar", "flapjack",
		"trail mix", "popadoms", "dips", "olives",
	},

	CategoryBakery: {
		"bread", "white bread", "brown bread", "rye bread", "wholemeal", "sourdough",
		"baguette", "bagel", "muffin", "muffins", "croissant", "croissants", "brioche",
		"pitta", "naan", "tortilla", "wrap", "rolls", "buns", "crumpets", "scones",
		"cake", "pastry", "pastries", "doughnut", "donut", "teacake", "breadcrumbs",
	},

	CategoryHousehold: {
		"washing up liquid", "dish soap", "laundry detergent", "washing powder",
		"fabric softener", "toilet roll", "toilet paper", "kitchen roll", "paper towels",
		"bin bags", "bin liners", "foil", "aluminium foil", "cling film", "baking paper",
		"greaseproof paper", "sponges", "bleach", "surface cleaner", "disinfectant",
		"soap", "hand wash", "shampoo", "toothpaste", "batteries", "candles", "matches",
	},
}
