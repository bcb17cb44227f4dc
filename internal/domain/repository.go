package domain

import "context"

// ShoppingListEntry is one row of a household's shopping list
type ShoppingListEntry struct {
	ID      string `json:"id"`
	ItemID  string `json:"itemId"`
	Name    string `json:"name"`
	Checked bool   `json:"checked"`
}

// InventoryEntry is one row of a household's inventory
type InventoryEntry struct {
	ID       string `json:"id"`
	ItemID   string `json:"itemId"`
	Name     string `json:"name"`
	ShelfID  string `json:"shelfId,omitempty"`
	Quantity int    `json:"quantity"`
}

// Item is one entry of a household's item catalog
type Item struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	ShelfID string `json:"shelfId,omitempty"`
}

// CatalogRepository supplies the household data the matching pipeline
// runs against. Persistence of match results stays with the caller.
type CatalogRepository interface {
	UncheckedShoppingList(ctx context.Context, householdID string) ([]ShoppingListEntry, error)
	DepletedInventory(ctx context.Context, householdID string) ([]InventoryEntry, error)
	Items(ctx context.Context, householdID string) ([]Item, error)
	KnownStores(ctx context.Context, householdID string) ([]KnownStore, error)
	Recipes(ctx context.Context, householdID string) ([]Recipe, error)
}

// RecipeSource defines the interface for an external recipe database
// consulted for suggestions
type RecipeSource interface {
	SearchByIngredient(ctx context.Context, ingredient string) ([]Recipe, error)
}
