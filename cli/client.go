package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ApiClient handles requests to the ShopperWise API
type ApiClient struct {
	httpClient *http.Client
	BaseURL    string
	Token      string
	UseMock    bool
}

// NewApiClient creates a new API client
func NewApiClient() *ApiClient {
	baseURL := os.Getenv("SHOPPERWISE_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	client := &ApiClient{
		httpClient: &http.Client{
			Timeout: time.Second * 10,
		},
		BaseURL: baseURL,
		Token:   os.Getenv("SHOPPERWISE_TOKEN"),
		UseMock: false,
	}

	// Verify connectivity - if server is not available, use mock data
	if !client.ping() {
		fmt.Printf("Warning: API server at %s is not available. Using mock data.\n", baseURL)
		client.UseMock = true
	}

	return client
}

// ping checks if the API server is available
func (c *ApiClient) ping() bool {
	resp, err := c.httpClient.Get(c.BaseURL + "/health")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// ShoppingList represents a shopping list returned by the API
type ShoppingList struct {
	ListID      string             `json:"list_id"`
	Name        string             `json:"name"`
	TargetStore string             `json:"target_store"`
	Status      string             `json:"status"`
	Items       []ShoppingListItem `json:"items"`
}

// ShoppingListItem represents one line of a shopping list
type ShoppingListItem struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Quantity       string   `json:"quantity"`
	Unit           string   `json:"unit"`
	Category       string   `json:"category"`
	Notes          string   `json:"notes"`
	EstimatedPrice float64  `json:"estimated_price"`
	Priority       int      `json:"priority"`
	Recipes        []string `json:"recipes"`
	Purchased      bool     `json:"purchased"`
}

// Recipe represents a recipe summary
type Recipe struct {
	RecipeID    string `json:"recipe_id"`
	Name        string `json:"name"`
	Cuisine     string `json:"cuisine"`
	Servings    int    `json:"servings"`
	IsFavourite bool   `json:"is_favourite"`
}

// InventoryItem represents a pantry item
type InventoryItem struct {
	ItemID         string  `json:"item_id"`
	IngredientName string  `json:"ingredient_name"`
	Category       string  `json:"category"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	Location       string  `json:"location"`
	ExpiryStatus   string  `json:"expiry_status,omitempty"`
}

func (c *ApiClient) get(path string, out interface{}) error {
	req, err := http.NewRequest("GET", c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("request failed (%d): %s", resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *ApiClient) post(path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest("POST", c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("request failed (%d): %s", resp.StatusCode, string(data))
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *ApiClient) authorize(req *http.Request) {
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
}

// GetShoppingLists retrieves all shopping lists
func (c *ApiClient) GetShoppingLists() ([]ShoppingList, error) {
	if c.UseMock {
		return c.getMockLists(), nil
	}

	var lists []ShoppingList
	if err := c.get("/api/v1/shopping-lists", &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// GetShoppingList retrieves one list with its items
func (c *ApiClient) GetShoppingList(id string) (*ShoppingList, error) {
	if c.UseMock {
		return c.getMockList(id), nil
	}

	var list ShoppingList
	if err := c.get("/api/v1/shopping-lists/"+id, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// TogglePurchased flips an item's purchased flag and returns the updated list
func (c *ApiClient) TogglePurchased(listID, itemID string) (*ShoppingList, error) {
	if c.UseMock {
		list := c.getMockList(listID)
		for i := range list.Items {
			if list.Items[i].ID == itemID {
				list.Items[i].Purchased = !list.Items[i].Purchased
			}
		}
		return list, nil
	}

	var list ShoppingList
	path := fmt.Sprintf("/api/v1/shopping-lists/%s/items/%s/purchase", listID, itemID)
	if err := c.post(path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetRecipes retrieves all recipes
func (c *ApiClient) GetRecipes() ([]Recipe, error) {
	if c.UseMock {
		return c.getMockRecipes(), nil
	}

	var recipes []Recipe
	if err := c.get("/api/v1/recipes", &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetInventory retrieves the current pantry contents
func (c *ApiClient) GetInventory() ([]InventoryItem, error) {
	if c.UseMock {
		return c.getMockInventory(), nil
	}

	var items []InventoryItem
	if err := c.get("/api/v1/inventory", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Mock data generators

func (c *ApiClient) getMockLists() []ShoppingList {
	return []ShoppingList{
		{
			ListID:      "mock-1",
			Name:        "Weekly Shop",
			TargetStore: "Tesco",
			Status:      "active",
			Items: []ShoppingListItem{
				{ID: "chicken breast", Name: "Chicken breast", Quantity: "4", Category: "meat", EstimatedPrice: 8.00, Priority: 3, Recipes: []string{"Chicken Curry"}},
				{ID: "basmati rice", Name: "Basmati rice", Quantity: "500", Unit: "g", Category: "grains", EstimatedPrice: 2.00, Priority: 3},
				{ID: "milk", Name: "Milk", Quantity: "2", Unit: "pints", Category: "dairy", EstimatedPrice: 3.50, Priority: 5, Purchased: true},
				{ID: "chocolate", Name: "Chocolate", Quantity: "1", Category: "snacks", EstimatedPrice: 3.00, Priority: 2},
			},
		},
		{
			ListID:      "mock-2",
			Name:        "Corner shop run",
			TargetStore: "Co-op",
			Status:      "planning",
			Items: []ShoppingListItem{
				{ID: "bread", Name: "Bread", Quantity: "1", Category: "bakery", EstimatedPrice: 2.00, Priority: 4},
			},
		},
	}
}

func (c *ApiClient) getMockList(id string) *ShoppingList {
	for _, list := range c.getMockLists() {
		if list.ListID == id {
			return &list
		}
	}
	return &ShoppingList{ListID: id, Name: "Unknown list"}
}

func (c *ApiClient) getMockRecipes() []Recipe {
	return []Recipe{
		{RecipeID: "r1", Name: "Chicken Curry", Cuisine: "Indian", Servings: 4, IsFavourite: true},
		{RecipeID: "r2", Name: "Spaghetti Bolognese", Cuisine: "Italian", Servings: 4},
		{RecipeID: "r3", Name: "Salmon Risotto", Cuisine: "Italian", Servings: 2},
	}
}

func (c *ApiClient) getMockInventory() []InventoryItem {
	return []InventoryItem{
		{ItemID: "i1", IngredientName: "Basmati rice", Category: "grains", Quantity: 1000, Unit: "g", Location: "pantry"},
		{ItemID: "i2", IngredientName: "Milk", Category: "dairy", Quantity: 1, Unit: "pints", Location: "fridge", ExpiryStatus: "expiring"},
		{ItemID: "i3", IngredientName: "Frozen peas", Category: "frozen", Quantity: 500, Unit: "g", Location: "freezer"},
	}
}
