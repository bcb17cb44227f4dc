package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/pantrylens/backend/internal/domain"
)

// household holds one household's catalog data
type household struct {
	shoppingList []domain.ShoppingListEntry
	inventory    []domain.InventoryEntry
	items        []domain.Item
	stores       []domain.KnownStore
	recipes      []domain.Recipe
}

// MemoryStore is a thread-safe in-memory CatalogRepository. The real
// deployment keeps this data in the surrounding application's
// database; this store exists so the matching service runs end to end
// and integration tests have a collaborator to talk to.
type MemoryStore struct {
	mu         sync.RWMutex
	households map[string]*household
}

// NewMemoryStore creates an empty in-memory catalog
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{households: make(map[string]*household)}
}

// CreateHousehold registers a household and returns its id
func (s *MemoryStore) CreateHousehold() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.households[id] = &household{}
	return id
}

// AddItem adds a catalog item to a household
func (s *MemoryStore) AddItem(householdID, name, shelfID string) (domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.households[householdID]
	if !ok {
		return domain.Item{}, domain.ErrHouseholdNotFound
	}

	item := domain.Item{ID: uuid.NewString(), Name: name, ShelfID: shelfID}
	h.items = append(h.items, item)
	return item, nil
}

// AddShoppingListEntry adds a shopping list row referencing an item
func (s *MemoryStore) AddShoppingListEntry(householdID, itemID, name string, checked bool) (domain.ShoppingListEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.households[householdID]
	if !ok {
		return domain.ShoppingListEntry{}, domain.ErrHouseholdNotFound
	}

	entry := domain.ShoppingListEntry{
		ID:      uuid.NewString(),
		ItemID:  itemID,
		Name:    name,
		Checked: checked,
	}
	h.shoppingList = append(h.shoppingList, entry)
	return entry, nil
}

// AddInventoryEntry adds an inventory row referencing an item
func (s *MemoryStore) AddInventoryEntry(householdID, itemID, name, shelfID string, quantity int) (domain.InventoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.households[householdID]
	if !ok {
		return domain.InventoryEntry{}, domain.ErrHouseholdNotFound
	}

	entry := domain.InventoryEntry{
		ID:       uuid.NewString(),
		ItemID:   itemID,
		Name:     name,
		ShelfID:  shelfID,
		Quantity: quantity,
	}
	h.inventory = append(h.inventory, entry)
	return entry, nil
}

// AddKnownStore records a store the household shops at
func (s *MemoryStore) AddKnownStore(householdID, name string) (domain.KnownStore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.households[householdID]
	if !ok {
		return domain.KnownStore{}, domain.ErrHouseholdNotFound
	}

	store := domain.KnownStore{ID: uuid.NewString(), Name: name}
	h.stores = append(h.stores, store)
	return store, nil
}

// AddRecipe records a user-authored recipe
func (s *MemoryStore) AddRecipe(householdID, title string, ingredients []domain.RecipeIngredient) (domain.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.households[householdID]
	if !ok {
		return domain.Recipe{}, domain.ErrHouseholdNotFound
	}

	recipe := domain.Recipe{
		ID:          uuid.NewString(),
		Title:       title,
		Origin:      domain.RecipeOriginUser,
		Ingredients: ingredients,
	}
	h.recipes = append(h.recipes, recipe)
	return recipe, nil
}

// UncheckedShoppingList returns the household's open shopping list rows
func (s *MemoryStore) UncheckedShoppingList(ctx context.Context, householdID string) ([]domain.ShoppingListEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.households[householdID]
	if !ok {
		return nil, domain.ErrHouseholdNotFound
	}

	entries := make([]domain.ShoppingListEntry, 0, len(h.shoppingList))
	for _, entry := range h.shoppingList {
		if !entry.Checked {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// DepletedInventory returns inventory rows with quantity zero
func (s *MemoryStore) DepletedInventory(ctx context.Context, householdID string) ([]domain.InventoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.households[householdID]
	if !ok {
		return nil, domain.ErrHouseholdNotFound
	}

	entries := make([]domain.InventoryEntry, 0)
	for _, entry := range h.inventory {
		if entry.Quantity == 0 {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// Items returns the household's full item catalog
func (s *MemoryStore) Items(ctx context.Context, householdID string) ([]domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.households[householdID]
	if !ok {
		return nil, domain.ErrHouseholdNotFound
	}

	items := make([]domain.Item, len(h.items))
	copy(items, h.items)
	return items, nil
}

// KnownStores returns the household's recorded stores
func (s *MemoryStore) KnownStores(ctx context.Context, householdID string) ([]domain.KnownStore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.households[householdID]
	if !ok {
		return nil, domain.ErrHouseholdNotFound
	}

	stores := make([]domain.KnownStore, len(h.stores))
	copy(stores, h.stores)
	return stores, nil
}

// Recipes returns the household's user-authored recipes
func (s *MemoryStore) Recipes(ctx context.Context, householdID string) ([]domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.households[householdID]
	if !ok {
		return nil, domain.ErrHouseholdNotFound
	}

	recipes := make([]domain.Recipe, len(h.recipes))
	copy(recipes, h.recipes)
	return recipes, nil
}
