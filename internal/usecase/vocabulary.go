package usecase

// Vocabulary is the immutable lookup structure behind normalization and
// ingredient matching. It is injected at construction so the tables can
// be extended and tested independently of the algorithms that consume
// them. Callers must not mutate a Vocabulary after handing it out.
type Vocabulary struct {
	// Abbreviations maps a whole word to its expansion. A single word
	// may expand to multiple words ("ff" -> "fat free").
	Abbreviations map[string][]string

	// Synonyms maps an ingredient word to its canonical form.
	Synonyms map[string]string

	// Descriptors are adjectives stripped during normalization: size,
	// cut, cooking state, color, temperature, texture, trim.
	Descriptors map[string]bool

	// Units are count, weight and volume words stripped during
	// normalization, including their common abbreviations.
	Units map[string]bool
}

// DefaultVocabulary returns the built-in tables
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Abbreviations: defaultAbbreviations,
		Synonyms:      defaultSynonyms,
		Descriptors:   defaultDescriptors,
		Units:         defaultUnits,
	}
}

// defaultAbbreviations covers the truncated forms grocery receipts use
var defaultAbbreviations = map[string][]string{
	// Qualifiers
	"org":  {"organic"},
	"nat":  {"natural"},
	"ff":   {"fat", "free"},
	"lf":   {"low", "fat"},
	"rf":   {"reduced", "fat"},
	"sf":   {"sugar", "free"},
	"gf":   {"gluten", "free"},
	"whl":  {"whole"},
	"frsh": {"fresh"},
	"frzn": {"frozen"},
	// Proteins
	"chkn":  {"chicken"},
	"ckn":   {"chicken"},
	"bf":    {"beef"},
	"grnd":  {"ground"},
	"brst":  {"breast"},
	"bnls":  {"boneless"},
	"sknls": {"skinless"},
	"sausg": {"sausage"},
	// Dairy
	"mlk":  {"milk"},
	"chse": {"cheese"},
	"chz":  {"cheese"},
	"yog":  {"yogurt"},
	"btr":  {"butter"},
	"crm":  {"cream"},
	// Produce
	"veg":  {"vegetable"},
	"vegs": {"vegetables"},
	"frt":  {"fruit"},
	"bana": {"banana"},
	"tom":  {"tomato"},
	"pot":  {"potato"},
	"on":   {"onion"},
	"lett": {"lettuce"},
	"strw": {"strawberry"},
	// Pantry
	"brd": {"bread"},
	"flr": {"flour"},
	"sgr": {"sugar"},
	"jce": {"juice"},
	"cer": {"cereal"},
	"pnt": {"peanut"},
	"choc": {"chocolate"},
	// Colors
	"wht": {"white"},
	"brn": {"brown"},
	"grn": {"green"},
	"yel": {"yellow"},
	"blk": {"black"},
	// Sizes and units spelled out so expanded text still token-matches
	"gal": {"gallon"},
	"qt":  {"quart"},
	"pt":  {"pint"},
	"lrg": {"large"},
	"med": {"medium"},
	"sml": {"small"},
	"pkg": {"package"},
	"btl": {"bottle"},
	"dz":  {"dozen"},
	"doz": {"dozen"},
}

// defaultSynonyms collapses regional and trade names onto one canonical
// word so "aubergine" and "eggplant" compare equal
var defaultSynonyms = map[string]string{
	"aubergine":  "eggplant",
	"courgette":  "zucchini",
	"garbanzo":   "chickpea",
	"garbanzos":  "chickpea",
	"cilantro":   "coriander",
	"scallion":   "green onion",
	"scallions":  "green onion",
	"capsicum":   "bell pepper",
	"rocket":     "arugula",
	"beetroot":   "beet",
	"maize":      "corn",
	"confectioners": "powdered",
	"icing":      "powdered",
}

// defaultDescriptors are adjectives that never change what an
// ingredient is: size, cut, cooking state, color, temperature,
// texture, trim
var defaultDescriptors = map[string]bool{
	// Size
	"large": true, "medium": true, "small": true, "jumbo": true,
	"mini": true, "extra": true, "giant": true,
	// Cut
	"diced": true, "sliced": true, "chopped": true, "minced": true,
	"shredded": true, "grated": true, "crushed": true, "cubed": true,
	"halved": true, "quartered": true, "peeled": true, "julienned": true,
	// Cooking state
	"cooked": true, "raw": true, "roasted": true, "grilled": true,
	"baked": true, "fried": true, "steamed": true, "smoked": true,
	"toasted": true, "blanched": true, "melted": true, "softened": true,
	"beaten": true,
	// Color
	"red": true, "green": true, "yellow": true, "white": true,
	"brown": true, "black": true, "purple": true,
	// Temperature
	"cold": true, "warm": true, "hot": true, "chilled": true,
	"frozen": true, "fresh": true,
	// Texture
	"soft": true, "firm": true, "ripe": true, "crisp": true,
	"creamy": true, "chunky": true, "smooth": true,
	// Trim
	"lean": true, "boneless": true, "skinless": true, "trimmed": true,
	"pitted": true, "seeded": true, "stemmed": true, "deveined": true,
	// Adverb forms that ride along with cuts
	"finely": true, "coarsely": true, "thinly": true, "roughly": true,
	"lightly": true, "freshly": true,
}

// defaultUnits covers count, weight and volume words and their common
// abbreviations
var defaultUnits = map[string]bool{
	// Count
	"count": true, "ct": true, "each": true, "ea": true, "pack": true,
	"pk": true, "pkg": true, "piece": true, "pieces": true, "pc": true,
	"pcs": true, "dozen": true, "dz": true, "doz": true,
	// Weight
	"lb": true, "lbs": true, "pound": true, "pounds": true,
	"oz": true, "ounce": true, "ounces": true, "g": true, "gram": true,
	"grams": true, "kg": true, "kilogram": true, "kilograms": true,
	// Volume
	"ml": true, "milliliter": true, "milliliters": true, "l": true,
	"liter": true, "liters": true, "litre": true, "litres": true,
	"gal": true, "gallon": true, "gallons": true, "qt": true,
	"quart": true, "quarts": true, "pt": true, "pint": true,
	"pints": true, "cup": true, "cups": true, "fl": true,
	"tbsp": true, "tablespoon": true, "tablespoons": true,
	"tsp": true, "teaspoon": true, "teaspoons": true,
	// Kitchen measures
	"pinch": true, "dash": true, "clove": true, "cloves": true,
	"stick": true, "sticks": true, "can": true, "cans": true,
	"jar": true, "bottle": true, "bag": true, "box": true,
}

// vulgarFractions maps Unicode fraction runes to nothing during
// normalization; they are quantity tokens like any other digit
var vulgarFractions = map[rune]bool{
	'½': true, '⅓': true, '⅔': true, '¼': true, '¾': true,
	'⅕': true, '⅖': true, '⅗': true, '⅘': true, '⅙': true,
	'⅚': true, '⅐': true, '⅛': true, '⅜': true, '⅝': true,
	'⅞': true, '⅑': true, '⅒': true,
}
