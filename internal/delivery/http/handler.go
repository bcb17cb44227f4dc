package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pantrylens/backend/internal/domain"
	"github.com/pantrylens/backend/internal/usecase"
)

// externalSearchIngredients caps how many on-hand ingredients are used
// to query the external recipe database per suggestion request
const externalSearchIngredients = 3

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog         domain.CatalogRepository
	recipeSource    domain.RecipeSource
	parser          *usecase.ReceiptParser
	matcher         *usecase.MatchingService
	recipeMatcher   *usecase.RecipeMatcher
	importer        *usecase.RecipeImporter
	maxReceiptChars int
}

// NewHandler creates a new HTTP handler. recipeSource may be nil when
// the external recipe database is disabled.
func NewHandler(
	catalog domain.CatalogRepository,
	recipeSource domain.RecipeSource,
	parser *usecase.ReceiptParser,
	matcher *usecase.MatchingService,
	recipeMatcher *usecase.RecipeMatcher,
	importer *usecase.RecipeImporter,
	maxReceiptChars int,
) *Handler {
	return &Handler{
		catalog:         catalog,
		recipeSource:    recipeSource,
		parser:          parser,
		matcher:         matcher,
		recipeMatcher:   recipeMatcher,
		importer:        importer,
		maxReceiptChars: maxReceiptChars,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pantrylens-backend",
		"version": "1.0.0",
	})
}

// ScanReceipt parses pasted or OCR receipt text and links each parsed
// item to the household's catalog
func (h *Handler) ScanReceipt(c *gin.Context) {
	var req domain.ReceiptScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "householdId and text are required"})
		return
	}

	// The core defines no timeout; this bound keeps worst-case
	// per-candidate edit distance cost acceptable
	text := req.Text
	if len(text) > h.maxReceiptChars {
		text = text[:h.maxReceiptChars]
	}

	parsed := h.parser.ParseReceipt(text)

	candidates, err := h.assembleCandidates(c, req.HouseholdID)
	if err != nil {
		if errors.Is(err, domain.ErrHouseholdNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "household not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load catalog"})
		return
	}

	items := make([]domain.MatchedReceiptItem, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		items = append(items, domain.MatchedReceiptItem{
			ParsedItem: item,
			Match:      h.matcher.FindBestMatch(item.CleanedName, candidates),
		})
	}

	var store *domain.DetectedStore
	if knownStores, err := h.catalog.KnownStores(c, req.HouseholdID); err == nil {
		store = usecase.DetectStore(text, knownStores)
	}

	c.JSON(http.StatusOK, domain.ReceiptScanResponse{
		Items:        items,
		Store:        store,
		SkippedLines: parsed.SkippedLines,
	})
}

// assembleCandidates builds the prioritized candidate list: unchecked
// shopping list first, then depleted inventory, then the full catalog,
// de-duplicated by item id across stages. This ordering is the
// documented tie-break contract.
func (h *Handler) assembleCandidates(c *gin.Context, householdID string) ([]domain.MatchCandidate, error) {
	assembler := usecase.NewCandidateAssembler()

	shoppingList, err := h.catalog.UncheckedShoppingList(c, householdID)
	if err != nil {
		return nil, err
	}
	for _, entry := range shoppingList {
		assembler.Add(domain.MatchCandidate{
			ID:             entry.ItemID,
			Name:           entry.Name,
			Source:         domain.SourceShoppingList,
			ShoppingListID: entry.ID,
		})
	}

	inventory, err := h.catalog.DepletedInventory(c, householdID)
	if err != nil {
		return nil, err
	}
	for _, entry := range inventory {
		assembler.Add(domain.MatchCandidate{
			ID:          entry.ItemID,
			Name:        entry.Name,
			Source:      domain.SourceInventory,
			InventoryID: entry.ID,
			ShelfID:     entry.ShelfID,
		})
	}

	items, err := h.catalog.Items(c, householdID)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		assembler.Add(domain.MatchCandidate{
			ID:      item.ID,
			Name:    item.Name,
			Source:  domain.SourceItems,
			ShelfID: item.ShelfID,
		})
	}

	return assembler.Candidates(), nil
}

// SuggestRecipes ranks the household's recipes, plus externally
// sourced ones, by how much of their ingredient list is on hand
func (h *Handler) SuggestRecipes(c *gin.Context) {
	var req domain.RecipeSuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "householdId and ingredients are required"})
		return
	}

	recipes, err := h.catalog.Recipes(c, req.HouseholdID)
	if err != nil {
		if errors.Is(err, domain.ErrHouseholdNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "household not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recipes"})
		return
	}

	recipes = append(recipes, h.externalRecipes(c, req.Ingredients, recipes)...)

	c.JSON(http.StatusOK, domain.RecipeSuggestionsResponse{
		Recipes: h.recipeMatcher.MatchRecipes(recipes, req.Ingredients),
	})
}

// externalRecipes consults the external recipe database for the first
// few on-hand ingredients. Failures are logged and skipped; external
// suggestions are best effort.
func (h *Handler) externalRecipes(c *gin.Context, ingredients []string, existing []domain.Recipe) []domain.Recipe {
	if h.recipeSource == nil {
		return nil
	}

	seen := make(map[string]bool, len(existing))
	for _, recipe := range existing {
		seen[recipe.ID] = true
	}

	limit := len(ingredients)
	if limit > externalSearchIngredients {
		limit = externalSearchIngredients
	}

	var external []domain.Recipe
	for _, ingredient := range ingredients[:limit] {
		found, err := h.recipeSource.SearchByIngredient(c, ingredient)
		if err != nil {
			if !errors.Is(err, domain.ErrRecipeNotFound) {
				log.Printf("[RECIPES] external search failed for %q: %v", ingredient, err)
			}
			continue
		}
		for _, recipe := range found {
			if seen[recipe.ID] {
				continue
			}
			seen[recipe.ID] = true
			external = append(external, recipe)
		}
	}

	return external
}

// ImportRecipe parses pasted recipe text into structured ingredients
// and instructions. Nothing is persisted here.
func (h *Handler) ImportRecipe(c *gin.Context) {
	var req domain.RecipeImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	text := req.Text
	if len(text) > h.maxReceiptChars {
		text = text[:h.maxReceiptChars]
	}

	c.JSON(http.StatusOK, h.importer.ParseRecipeText(text))
}
