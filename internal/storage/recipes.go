// ABOUTME: Record-level CRUD for saved recipes and health products.
// ABOUTME: Recipes can be edited and starred; products are add-and-delete.
package storage

import (
	"fmt"
	"slices"

	"github.com/harperreed/lifeos/internal/models"
)

// AddRecipe validates and appends a recipe.
func (s *Store) AddRecipe(r *models.Recipe) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("add recipe: %w", err)
	}
	return s.update(func(doc *models.Document) error {
		if hasID(doc.Recipes, r.ID) {
			return fmt.Errorf("add recipe: duplicate id %s", r.ID)
		}
		doc.Recipes = append(doc.Recipes, *r)
		return nil
	})
}

// GetRecipe retrieves a recipe by ID or prefix.
func (s *Store) GetRecipe(idOrPrefix string) (*models.Recipe, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	i, err := resolveIndex(doc.Recipes, idOrPrefix)
	if err != nil {
		return nil, err
	}
	r := doc.Recipes[i]
	return &r, nil
}

// UpdateRecipe replaces the stored recipe with the same ID.
func (s *Store) UpdateRecipe(r *models.Recipe) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	return s.update(func(doc *models.Document) error {
		i := slices.IndexFunc(doc.Recipes, func(o models.Recipe) bool { return o.ID == r.ID })
		if i < 0 {
			return fmt.Errorf("update recipe: %w: %s", ErrNotFound, r.ID)
		}
		doc.Recipes[i] = *r
		return nil
	})
}

// ToggleFavorite flips the favorite flag of a recipe and returns the result.
func (s *Store) ToggleFavorite(idOrPrefix string) (*models.Recipe, error) {
	var toggled models.Recipe
	err := s.update(func(doc *models.Document) error {
		i, err := resolveIndex(doc.Recipes, idOrPrefix)
		if err != nil {
			return fmt.Errorf("toggle favorite: %w", err)
		}
		doc.Recipes[i].Favorite = !doc.Recipes[i].Favorite
		toggled = doc.Recipes[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &toggled, nil
}

// DeleteRecipe removes a recipe by ID or prefix and returns it.
func (s *Store) DeleteRecipe(idOrPrefix string) (*models.Recipe, error) {
	var removed models.Recipe
	err := s.update(func(doc *models.Document) error {
		i, err := resolveIndex(doc.Recipes, idOrPrefix)
		if err != nil {
			return fmt.Errorf("delete recipe: %w", err)
		}
		removed = doc.Recipes[i]
		doc.Recipes = slices.Delete(doc.Recipes, i, i+1)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &removed, nil
}

// AddHealthProduct validates and appends a product.
func (s *Store) AddHealthProduct(p *models.HealthProduct) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("add product: %w", err)
	}
	return s.update(func(doc *models.Document) error {
		if hasID(doc.HealthProducts, p.ID) {
			return fmt.Errorf("add product: duplicate id %s", p.ID)
		}
		doc.HealthProducts = append(doc.HealthProducts, *p)
		return nil
	})
}

// DeleteHealthProduct removes a product by ID or prefix and returns it.
func (s *Store) DeleteHealthProduct(idOrPrefix string) (*models.HealthProduct, error) {
	var removed models.HealthProduct
	err := s.update(func(doc *models.Document) error {
		i, err := resolveIndex(doc.HealthProducts, idOrPrefix)
		if err != nil {
			return fmt.Errorf("delete product: %w", err)
		}
		removed = doc.HealthProducts[i]
		doc.HealthProducts = slices.Delete(doc.HealthProducts, i, i+1)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &removed, nil
}
