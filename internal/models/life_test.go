// ABOUTME: Tests for recipe and health product records.
// ABOUTME: Covers constructors, validation, and search matching.
package models

import (
	"errors"
	"testing"
)

func TestNewRecipe(t *testing.T) {
	r := NewRecipe("Lentil soup", 420)

	if r.ID == "" {
		t.Error("expected ID to be set")
	}
	if r.Ingredients == nil {
		t.Error("Ingredients should be an empty list, not nil")
	}
	if r.Favorite {
		t.Error("new recipes should not be favorites")
	}
	if err := r.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestRecipeValidate(t *testing.T) {
	negative := -5.0
	tests := []struct {
		name   string
		mutate func(r *Recipe)
	}{
		{"no id", func(r *Recipe) { r.ID = "" }},
		{"empty title", func(r *Recipe) { r.Title = " " }},
		{"negative calories", func(r *Recipe) { r.Calories = -1 }},
		{"negative prep time", func(r *Recipe) { r.PrepTime = &negative }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecipe("Oats", 350)
			tt.mutate(r)
			if err := r.Validate(); !errors.Is(err, ErrInvalidRecord) {
				t.Errorf("Validate() = %v, want ErrInvalidRecord", err)
			}
		})
	}
}

func TestRecipeMatches(t *testing.T) {
	r := Recipe{Title: "Chicken Curry", Category: "Main"}

	tests := []struct {
		query string
		want  bool
	}{
		{"curry", true},
		{"MAIN", true},
		{"", true},
		{"dessert", false},
	}
	for _, tt := range tests {
		if got := r.Matches(tt.query); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestHealthProductValidate(t *testing.T) {
	p := NewHealthProduct("Whey isolate", "supplement", "Corner store", 39.9)
	if p.ID == "" {
		t.Fatal("expected ID to be set")
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	if !p.Matches("SUPP") {
		t.Error("expected category match")
	}

	tests := []struct {
		name   string
		mutate func(p *HealthProduct)
	}{
		{"no id", func(p *HealthProduct) { p.ID = "" }},
		{"empty name", func(p *HealthProduct) { p.Name = "" }},
		{"negative price", func(p *HealthProduct) { p.Price = -0.01 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := *p
			tt.mutate(&bad)
			if err := bad.Validate(); !errors.Is(err, ErrInvalidRecord) {
				t.Errorf("Validate() = %v, want ErrInvalidRecord", err)
			}
		})
	}
}
