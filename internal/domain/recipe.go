package domain

// RecipeOrigin distinguishes user-authored recipes from externally
// sourced ones. User recipes win ties when ranking by match percentage.
type RecipeOrigin string

const (
	RecipeOriginUser     RecipeOrigin = "user"
	RecipeOriginExternal RecipeOrigin = "external"
)

// RecipeIngredient is one ingredient line of a recipe
type RecipeIngredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure,omitempty"`
}

// Recipe is a candidate recipe for suggestion ranking
type Recipe struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Origin      RecipeOrigin       `json:"origin"`
	Ingredients []RecipeIngredient `json:"ingredients"`
}

// RecipeIngredientMatch is one ingredient annotated with whether the
// household has it on hand
type RecipeIngredientMatch struct {
	Name    string `json:"name"`
	Measure string `json:"measure,omitempty"`
	InStock bool   `json:"inStock"`
}

// RecipeMatch is a recipe scored against the household's on-hand
// ingredients
type RecipeMatch struct {
	Recipe       Recipe                  `json:"recipe"`
	Ingredients  []RecipeIngredientMatch `json:"ingredients"`
	MatchedCount int                     `json:"matchedCount"`
	MatchPercent float64                 `json:"matchPercent"`
}

// ImportedIngredient is one ingredient line parsed from pasted recipe text
type ImportedIngredient struct {
	RawText  string `json:"rawText"`
	Quantity string `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
	Name     string `json:"name"`
	Notes    string `json:"notes,omitempty"`
}

// ImportedRecipe is the result of parsing pasted recipe text
type ImportedRecipe struct {
	Title        string               `json:"title,omitempty"`
	Ingredients  []ImportedIngredient `json:"ingredients"`
	Instructions []string             `json:"instructions"`
}
