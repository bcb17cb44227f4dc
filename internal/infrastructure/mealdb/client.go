package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pantrylens/backend/internal/domain"
	"golang.org/x/time/rate"
)

// maxDetailLookups caps how many filter results get a full detail
// lookup per search
const maxDetailLookups = 5

// mealIngredientSlots: the API carries ingredients in numbered fields
// strIngredient1..strIngredient20
const mealIngredientSlots = 20

// Client handles communication with a TheMealDB-compatible recipe API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new recipe API client
func NewClient(baseURL string) *Client {
	// The free tier tolerates roughly one request per second
	limiter := rate.NewLimiter(rate.Limit(1), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug toggles request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// filterResponse is the shape of filter.php results
type filterResponse struct {
	Meals []struct {
		ID    string `json:"idMeal"`
		Title string `json:"strMeal"`
	} `json:"meals"`
}

// SearchByIngredient lists recipes containing the given ingredient and
// resolves full ingredient lists for the top results
func (c *Client) SearchByIngredient(ctx context.Context, ingredient string) ([]domain.Recipe, error) {
	if strings.TrimSpace(ingredient) == "" {
		return nil, domain.ErrInvalidRequest
	}

	if c.debug {
		log.Printf("[MEALDB] SearchByIngredient: %q", ingredient)
	}

	params := url.Values{}
	params.Add("i", ingredient)
	reqURL := fmt.Sprintf("%s/filter.php?%s", c.baseURL, params.Encode())

	body, err := c.getWithRetry(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var filtered filterResponse
	if err := json.Unmarshal(body, &filtered); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(filtered.Meals) == 0 {
		return nil, domain.ErrRecipeNotFound
	}

	limit := len(filtered.Meals)
	if limit > maxDetailLookups {
		limit = maxDetailLookups
	}

	recipes := make([]domain.Recipe, 0, limit)
	for _, meal := range filtered.Meals[:limit] {
		recipe, err := c.LookupRecipe(ctx, meal.ID)
		if err != nil {
			log.Printf("[MEALDB] lookup failed for %s: %v", meal.ID, err)
			continue
		}
		recipes = append(recipes, *recipe)
	}

	if len(recipes) == 0 {
		return nil, domain.ErrRecipeNotFound
	}
	return recipes, nil
}

// LookupRecipe fetches one recipe with its full ingredient list
func (c *Client) LookupRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	params := url.Values{}
	params.Add("i", id)
	reqURL := fmt.Sprintf("%s/lookup.php?%s", c.baseURL, params.Encode())

	body, err := c.getWithRetry(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var lookup struct {
		Meals []map[string]any `json:"meals"`
	}
	if err := json.Unmarshal(body, &lookup); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(lookup.Meals) == 0 {
		return nil, domain.ErrRecipeNotFound
	}

	meal := lookup.Meals[0]
	recipe := &domain.Recipe{
		ID:          stringField(meal, "idMeal"),
		Title:       stringField(meal, "strMeal"),
		Origin:      domain.RecipeOriginExternal,
		Ingredients: mealIngredients(meal),
	}
	return recipe, nil
}

// getWithRetry executes a rate-limited GET, retrying transient
// failures with a linear backoff
func (c *Client) getWithRetry(ctx context.Context, reqURL string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", "PantryLens/1.0")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if c.debug {
				log.Printf("[MEALDB] request error (attempt %d): %v", attempt, err)
			}
			lastErr = fmt.Errorf("%w: %v", domain.ErrRecipeSourceFailure, err)
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return nil, domain.ErrRecipeNotFound
		}
		if resp.StatusCode != http.StatusOK {
			if c.debug {
				log.Printf("[MEALDB] status %d (attempt %d): %s", resp.StatusCode, attempt, string(body))
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrRecipeSourceFailure, resp.StatusCode)
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		return body, nil
	}

	return nil, lastErr
}

// mealIngredients collects the numbered strIngredientN/strMeasureN
// pairs into a clean ingredient list
func mealIngredients(meal map[string]any) []domain.RecipeIngredient {
	ingredients := make([]domain.RecipeIngredient, 0, mealIngredientSlots)
	for i := 1; i <= mealIngredientSlots; i++ {
		name := strings.TrimSpace(stringField(meal, fmt.Sprintf("strIngredient%d", i)))
		if name == "" {
			continue
		}
		measure := strings.TrimSpace(stringField(meal, fmt.Sprintf("strMeasure%d", i)))
		ingredients = append(ingredients, domain.RecipeIngredient{
			Name:    name,
			Measure: measure,
		})
	}
	return ingredients
}

// stringField reads a string value from the decoded meal object,
// tolerating null and missing keys
func stringField(meal map[string]any, key string) string {
	if value, ok := meal[key].(string); ok {
		return value
	}
	return ""
}
