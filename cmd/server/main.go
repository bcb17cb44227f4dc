package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pantrylens/backend/config"
	httpDelivery "github.com/pantrylens/backend/internal/delivery/http"
	"github.com/pantrylens/backend/internal/domain"
	"github.com/pantrylens/backend/internal/infrastructure/catalog"
	"github.com/pantrylens/backend/internal/infrastructure/mealdb"
	"github.com/pantrylens/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PantryLens Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Max receipt chars: %d", cfg.Limits.MaxReceiptChars)

	// Matching core: one vocabulary shared by every component
	vocab := usecase.DefaultVocabulary()
	normalizer := usecase.NewNormalizer(vocab)
	scorer := usecase.NewScorer(normalizer)
	parser := usecase.NewReceiptParser(normalizer, cfg.Matching.EnableDebugLogging)
	matcher := usecase.NewMatchingService(scorer, cfg.Matching.EnableDebugLogging)
	recipeMatcher := usecase.NewRecipeMatcher(normalizer, vocab)
	importer := usecase.NewRecipeImporter()

	// Infrastructure
	store := catalog.NewMemoryStore()
	if cfg.Server.Environment == "development" {
		seedDemoHousehold(store)
	}

	var recipeSource domain.RecipeSource
	if cfg.Recipes.Enabled {
		client := mealdb.NewClient(cfg.Recipes.BaseURL)
		if cfg.Server.Environment == "development" {
			client.SetDebug(true)
		}
		recipeSource = client
		log.Printf("External recipe source: %s", cfg.Recipes.BaseURL)
	} else {
		log.Printf("External recipe source disabled")
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(
		store,
		recipeSource,
		parser,
		matcher,
		recipeMatcher,
		importer,
		cfg.Limits.MaxReceiptChars,
	)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// seedDemoHousehold loads a small catalog so the endpoints are
// exercisable out of the box in development
func seedDemoHousehold(store *catalog.MemoryStore) {
	id := store.CreateHousehold()

	milk, _ := store.AddItem(id, "Whole Milk", "fridge")
	eggs, _ := store.AddItem(id, "Eggs", "fridge")
	bread, _ := store.AddItem(id, "Wheat Bread", "pantry")
	bananas, _ := store.AddItem(id, "Bananas", "counter")

	store.AddShoppingListEntry(id, milk.ID, milk.Name, false)
	store.AddShoppingListEntry(id, bananas.ID, bananas.Name, false)
	store.AddInventoryEntry(id, eggs.ID, eggs.Name, "fridge", 0)
	store.AddInventoryEntry(id, bread.ID, bread.Name, "pantry", 1)
	store.AddKnownStore(id, "Target")
	store.AddRecipe(id, "French Toast", []domain.RecipeIngredient{
		{Name: "eggs", Measure: "2"},
		{Name: "whole milk", Measure: "1/4 cup"},
		{Name: "bread", Measure: "4 slices"},
	})

	log.Printf("Seeded demo household: %s", id)
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
