package database

import (
	"context"
	"fmt"

	"github.com/jinzhu/gorm"

	"shopperwise/internal/models"
)

// Store provides family-scoped persistence on top of gorm. Every query is
// filtered by family ID so one household can never read another's data.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Recipes

func (s *Store) ListRecipes(ctx context.Context, familyID string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.Where("family_id = ?", familyID).Order("name").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	return recipes, nil
}

func (s *Store) GetRecipe(ctx context.Context, familyID, recipeID string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.Where("family_id = ? AND recipe_id = ?", familyID, recipeID).First(&recipe).Error
	if err != nil {
		return nil, fmt.Errorf("recipe %s: %w", recipeID, err)
	}
	return &recipe, nil
}

func (s *Store) SaveRecipe(ctx context.Context, recipe *models.Recipe) error {
	return s.db.Save(recipe).Error
}

func (s *Store) DeleteRecipe(ctx context.Context, familyID, recipeID string) error {
	res := s.db.Where("family_id = ? AND recipe_id = ?", familyID, recipeID).Delete(&models.Recipe{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Inventory

func (s *Store) ListInventory(ctx context.Context, familyID string) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := s.db.Where("family_id = ?", familyID).Order("ingredient_name").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("listing inventory: %w", err)
	}
	return items, nil
}

func (s *Store) GetInventoryItem(ctx context.Context, familyID, itemID string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := s.db.Where("family_id = ? AND item_id = ?", familyID, itemID).First(&item).Error
	if err != nil {
		return nil, fmt.Errorf("inventory item %s: %w", itemID, err)
	}
	return &item, nil
}

func (s *Store) SaveInventoryItem(ctx context.Context, item *models.InventoryItem) error {
	return s.db.Save(item).Error
}

func (s *Store) DeleteInventoryItem(ctx context.Context, familyID, itemID string) error {
	res := s.db.Where("family_id = ? AND item_id = ?", familyID, itemID).Delete(&models.InventoryItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Meal plans

func (s *Store) ListMealPlans(ctx context.Context, familyID string) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	if err := s.db.Where("family_id = ?", familyID).Order("week_start desc").Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("listing meal plans: %w", err)
	}
	return plans, nil
}

func (s *Store) GetMealPlan(ctx context.Context, familyID, planID string) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := s.db.Where("family_id = ? AND plan_id = ?", familyID, planID).First(&plan).Error
	if err != nil {
		return nil, fmt.Errorf("meal plan %s: %w", planID, err)
	}
	return &plan, nil
}

func (s *Store) SaveMealPlan(ctx context.Context, plan *models.MealPlan) error {
	return s.db.Save(plan).Error
}

func (s *Store) DeleteMealPlan(ctx context.Context, familyID, planID string) error {
	res := s.db.Where("family_id = ? AND plan_id = ?", familyID, planID).Delete(&models.MealPlan{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Shopping lists

func (s *Store) ListShoppingLists(ctx context.Context, familyID string) ([]models.ShoppingList, error) {
	var lists []models.ShoppingList
	if err := s.db.Where("family_id = ?", familyID).Order("created_at desc").Find(&lists).Error; err != nil {
		return nil, fmt.Errorf("listing shopping lists: %w", err)
	}
	return lists, nil
}

func (s *Store) GetShoppingList(ctx context.Context, familyID, listID string) (*models.ShoppingList, error) {
	var list models.ShoppingList
	err := s.db.Where("family_id = ? AND list_id = ?", familyID, listID).First(&list).Error
	if err != nil {
		return nil, fmt.Errorf("shopping list %s: %w", listID, err)
	}
	return &list, nil
}

func (s *Store) SaveShoppingList(ctx context.Context, list *models.ShoppingList) error {
	return s.db.Save(list).Error
}

func (s *Store) DeleteShoppingList(ctx context.Context, familyID, listID string) error {
	res := s.db.Where("family_id = ? AND list_id = ?", familyID, listID).Delete(&models.ShoppingList{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Profiles

func (s *Store) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", userID, err)
	}
	return &profile, nil
}

func (s *Store) SaveProfile(ctx context.Context, profile *models.Profile) error {
	return s.db.Save(profile).Error
}
