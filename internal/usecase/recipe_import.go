package usecase

import (
	"regexp"
	"strings"

	"github.com/pantrylens/backend/internal/domain"
)

// Section headers recognized in pasted recipe text
var (
	ingredientHeaderRegex  = regexp.MustCompile(`(?i)^\s*ingredients?\s*:?\s*$`)
	instructionHeaderRegex = regexp.MustCompile(`(?i)^\s*(instructions?|directions?|method|steps?|preparation)\s*:?\s*$`)

	// "2 cups flour, sifted" / "- ½ tsp salt" / "3 eggs"
	ingredientLineRegex = regexp.MustCompile(`(?i)^\s*[-*•]?\s*([\d/.\s½⅓⅔¼¾⅕⅛⅜⅝⅞]+)?\s*` +
		`(cups?|tablespoons?|tbsp|teaspoons?|tsp|ounces?|oz|pounds?|lbs?|grams?|g|kg|ml|l|liters?|` +
		`cloves?|cans?|sticks?|slices?|pinch|dash|packages?|pkg|bunch(?:es)?)?\.?\s+(.+)$`)

	instructionStepRegex = regexp.MustCompile(`^\s*(?:\d+[.)]|[-*•])\s*`)
)

// RecipeImporter parses pasted recipe text into a structured recipe.
// It shares the pipeline's normalization conventions but performs no
// matching itself.
type RecipeImporter struct{}

// NewRecipeImporter creates a recipe importer
func NewRecipeImporter() *RecipeImporter {
	return &RecipeImporter{}
}

// ParseRecipeText detects ingredient/instruction sections and parses
// each ingredient line into quantity, unit, name and notes. It never
// fails; unrecognizable text yields an empty recipe.
func (ri *RecipeImporter) ParseRecipeText(text string) domain.ImportedRecipe {
	recipe := domain.ImportedRecipe{
		Ingredients:  []domain.ImportedIngredient{},
		Instructions: []string{},
	}

	// Sections: lines before any header may carry the title; without
	// headers everything is treated as ingredients.
	section := "ingredients"
	sawHeader := false

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		switch {
		case ingredientHeaderRegex.MatchString(trimmed):
			section = "ingredients"
			sawHeader = true
			continue
		case instructionHeaderRegex.MatchString(trimmed):
			section = "instructions"
			sawHeader = true
			continue
		}

		if !sawHeader && recipe.Title == "" && len(recipe.Ingredients) == 0 && !looksLikeIngredient(trimmed) {
			recipe.Title = trimmed
			continue
		}

		if section == "instructions" {
			step := instructionStepRegex.ReplaceAllString(trimmed, "")
			if step != "" {
				recipe.Instructions = append(recipe.Instructions, step)
			}
			continue
		}

		recipe.Ingredients = append(recipe.Ingredients, parseIngredientLine(trimmed))
	}

	return recipe
}

// parseIngredientLine extracts quantity, unit, name and notes from one
// ingredient line. Notes are everything after the first comma.
func parseIngredientLine(line string) domain.ImportedIngredient {
	ingredient := domain.ImportedIngredient{RawText: line}

	name := line
	if m := ingredientLineRegex.FindStringSubmatch(line); m != nil {
		ingredient.Quantity = strings.TrimSpace(m[1])
		ingredient.Unit = strings.ToLower(strings.TrimSpace(m[2]))
		name = strings.TrimSpace(m[3])
	} else {
		name = strings.TrimSpace(strings.TrimLeft(name, "-*• \t"))
	}

	if idx := strings.Index(name, ","); idx > 0 {
		ingredient.Notes = strings.TrimSpace(name[idx+1:])
		name = strings.TrimSpace(name[:idx])
	}

	ingredient.Name = name
	return ingredient
}

// looksLikeIngredient reports whether a headerless first line reads
// like an ingredient rather than a title
func looksLikeIngredient(line string) bool {
	if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") || strings.HasPrefix(line, "•") {
		return true
	}
	m := ingredientLineRegex.FindStringSubmatch(line)
	return m != nil && (strings.TrimSpace(m[1]) != "" || strings.TrimSpace(m[2]) != "")
}
