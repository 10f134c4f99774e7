package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	"shopperwise/internal/api"
	"shopperwise/internal/auth"
	"shopperwise/internal/models"
	"shopperwise/internal/shopping"
	"shopperwise/internal/taxonomy"
)

const (
	testSecret = "test-secret"
	testFamily = "family-1"
	testUser   = "user-1"
)

// memStore is an in-memory api.Store used by handler tests.
type memStore struct {
	recipes   map[string]*models.Recipe
	inventory map[string]*models.InventoryItem
	plans     map[string]*models.MealPlan
	lists     map[string]*models.ShoppingList
	profiles  map[string]*models.Profile
}

func newMemStore() *memStore {
	return &memStore{
		recipes:   make(map[string]*models.Recipe),
		inventory: make(map[string]*models.InventoryItem),
		plans:     make(map[string]*models.MealPlan),
		lists:     make(map[string]*models.ShoppingList),
		profiles:  make(map[string]*models.Profile),
	}
}

func (m *memStore) ListRecipes(ctx context.Context, familyID string) ([]models.Recipe, error) {
	var out []models.Recipe
	for _, r := range m.recipes {
		if r.FamilyID == familyID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memStore) GetRecipe(ctx context.Context, familyID, recipeID string) (*models.Recipe, error) {
	if r, ok := m.recipes[recipeID]; ok && r.FamilyID == familyID {
		copied := *r
		return &copied, nil
	}
	return nil, fmt.Errorf("recipe %s: not found", recipeID)
}

func (m *memStore) SaveRecipe(ctx context.Context, recipe *models.Recipe) error {
	copied := *recipe
	m.recipes[recipe.RecipeID] = &copied
	return nil
}

func (m *memStore) DeleteRecipe(ctx context.Context, familyID, recipeID string) error {
	if r, ok := m.recipes[recipeID]; ok && r.FamilyID == familyID {
		delete(m.recipes, recipeID)
		return nil
	}
	return fmt.Errorf("recipe %s: not found", recipeID)
}

func (m *memStore) ListInventory(ctx context.Context, familyID string) ([]models.InventoryItem, error) {
	var out []models.InventoryItem
	for _, item := range m.inventory {
		if item.FamilyID == familyID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (m *memStore) GetInventoryItem(ctx context.Context, familyID, itemID string) (*models.InventoryItem, error) {
	if item, ok := m.inventory[itemID]; ok && item.FamilyID == familyID {
		copied := *item
		return &copied, nil
	}
	return nil, fmt.Errorf("inventory item %s: not found", itemID)
}

func (m *memStore) SaveInventoryItem(ctx context.Context, item *models.InventoryItem) error {
	copied := *item
	m.inventory[item.ItemID] = &copied
	return nil
}

func (m *memStore) DeleteInventoryItem(ctx context.Context, familyID, itemID string) error {
	if item, ok := m.inventory[itemID]; ok && item.FamilyID == familyID {
		delete(m.inventory, itemID)
		return nil
	}
	return fmt.Errorf("inventory item %s: not found", itemID)
}

func (m *memStore) ListMealPlans(ctx context.Context, familyID string) ([]models.MealPlan, error) {
	var out []models.MealPlan
	for _, p := range m.plans {
		if p.FamilyID == familyID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memStore) GetMealPlan(ctx context.Context, familyID, planID string) (*models.MealPlan, error) {
	if p, ok := m.plans[planID]; ok && p.FamilyID == familyID {
		copied := *p
		return &copied, nil
	}
	return nil, fmt.Errorf("meal plan %s: not found", planID)
}

func (m *memStore) SaveMealPlan(ctx context.Context, plan *models.MealPlan) error {
	copied := *plan
	m.plans[plan.PlanID] = &copied
	return nil
}

func (m *memStore) DeleteMealPlan(ctx context.Context, familyID, planID string) error {
	if p, ok := m.plans[planID]; ok && p.FamilyID == familyID {
		delete(m.plans, planID)
		return nil
	}
	return fmt.Errorf("meal plan %s: not found", planID)
}

func (m *memStore) ListShoppingLists(ctx context.Context, familyID string) ([]models.ShoppingList, error) {
	var out []models.ShoppingList
	for _, l := range m.lists {
		if l.FamilyID == familyID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (m *memStore) GetShoppingList(ctx context.Context, familyID, listID string) (*models.ShoppingList, error) {
	if l, ok := m.lists[listID]; ok && l.FamilyID == familyID {
		copied := *l
		return &copied, nil
	}
	return nil, fmt.Errorf("shopping list %s: not found", listID)
}

func (m *memStore) SaveShoppingList(ctx context.Context, list *models.ShoppingList) error {
	copied := *list
	m.lists[list.ListID] = &copied
	return nil
}

func (m *memStore) DeleteShoppingList(ctx context.Context, familyID, listID string) error {
	if l, ok := m.lists[listID]; ok && l.FamilyID == familyID {
		delete(m.lists, listID)
		return nil
	}
	return fmt.Errorf("shopping list %s: not found", listID)
}

func (m *memStore) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	if p, ok := m.profiles[userID]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, fmt.Errorf("profile %s: not found", userID)
}

func (m *memStore) SaveProfile(ctx context.Context, profile *models.Profile) error {
	copied := *profile
	m.profiles[profile.UserID] = &copied
	return nil
}

func newTestAPI(store *memStore) *api.API {
	gin.SetMode(gin.TestMode)
	return api.New(api.Options{
		DB:       store,
		Deriver:  shopping.NewDeriver(taxonomy.Default()),
		Verifier: auth.NewVerifier(testSecret),
	})
}

func signToken(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":       testUser,
		"family_id": testFamily,
		"email":     "user@example.com",
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

// doJSON performs an authenticated request against the API and returns the
// response recorder.
func doJSON(t *testing.T, a *api.API, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+signToken(t))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decoding response %q: %v", w.Body.String(), err)
	}
}
