package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/pantrylens/backend/internal/domain"
)

func TestMemoryStoreHouseholdScoping(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	t.Run("unknown household returns sentinel error", func(t *testing.T) {
		_, err := store.Items(ctx, "nope")
		if !errors.Is(err, domain.ErrHouseholdNotFound) {
			t.Errorf("err = %v, want ErrHouseholdNotFound", err)
		}
		_, err = store.AddItem("nope", "Milk", "")
		if !errors.Is(err, domain.ErrHouseholdNotFound) {
			t.Errorf("AddItem err = %v, want ErrHouseholdNotFound", err)
		}
	})

	t.Run("households do not see each other's data", func(t *testing.T) {
		h1 := store.CreateHousehold()
		h2 := store.CreateHousehold()

		if _, err := store.AddItem(h1, "Milk", "shelf-1"); err != nil {
			t.Fatalf("AddItem: %v", err)
		}

		items, err := store.Items(ctx, h2)
		if err != nil {
			t.Fatalf("Items: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("h2 items = %d, want 0", len(items))
		}
	})
}

func TestMemoryStoreShoppingList(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	hid := store.CreateHousehold()

	item, err := store.AddItem(hid, "Milk", "")
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, err := store.AddShoppingListEntry(hid, item.ID, "Milk", false); err != nil {
		t.Fatalf("AddShoppingListEntry: %v", err)
	}
	if _, err := store.AddShoppingListEntry(hid, "", "Cookies", true); err != nil {
		t.Fatalf("AddShoppingListEntry: %v", err)
	}

	entries, err := store.UncheckedShoppingList(ctx, hid)
	if err != nil {
		t.Fatalf("UncheckedShoppingList: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1 (checked rows excluded)", len(entries))
	}
	if entries[0].Name != "Milk" || entries[0].ItemID != item.ID {
		t.Errorf("entry = %+v, want Milk referencing %s", entries[0], item.ID)
	}
}

func TestMemoryStoreDepletedInventory(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	hid := store.CreateHousehold()

	if _, err := store.AddInventoryEntry(hid, "", "Eggs", "", 0); err != nil {
		t.Fatalf("AddInventoryEntry: %v", err)
	}
	if _, err := store.AddInventoryEntry(hid, "", "Butter", "", 2); err != nil {
		t.Fatalf("AddInventoryEntry: %v", err)
	}

	entries, err := store.DepletedInventory(ctx, hid)
	if err != nil {
		t.Fatalf("DepletedInventory: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "Eggs" {
		t.Errorf("entries = %+v, want only the zero-quantity row", entries)
	}
}

func TestMemoryStoreRecipes(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	hid := store.CreateHousehold()

	added, err := store.AddRecipe(hid, "French Toast", []domain.RecipeIngredient{
		{Name: "eggs", Measure: "2"},
		{Name: "milk", Measure: "1/2 cup"},
	})
	if err != nil {
		t.Fatalf("AddRecipe: %v", err)
	}
	if added.Origin != domain.RecipeOriginUser {
		t.Errorf("Origin = %q, want %q", added.Origin, domain.RecipeOriginUser)
	}

	recipes, err := store.Recipes(ctx, hid)
	if err != nil {
		t.Fatalf("Recipes: %v", err)
	}
	if len(recipes) != 1 || recipes[0].Title != "French Toast" {
		t.Errorf("recipes = %+v, want the added recipe", recipes)
	}

	// Mutating the returned slice must not leak into the store
	recipes[0].Title = "mutated"
	again, _ := store.Recipes(ctx, hid)
	if again[0].Title != "French Toast" {
		t.Errorf("store leaked a reference: %q", again[0].Title)
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	hid := store.CreateHousehold()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.AddItem(hid, "Milk", "")
		}()
		go func() {
			defer wg.Done()
			store.Items(ctx, hid)
		}()
	}
	wg.Wait()

	items, err := store.Items(ctx, hid)
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 10 {
		t.Errorf("items = %d, want 10", len(items))
	}
}
