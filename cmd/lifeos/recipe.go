// ABOUTME: CLI commands for saved recipes.
// ABOUTME: Supports add, list, show, edit, favorite, and delete with ID prefixes.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/lifeos/internal/models"
	"github.com/spf13/cobra"
)

var (
	recipeIngredients  []string
	recipeInstructions string
	recipePrepTime     float64
	recipeCategory     string
	recipeFavorite     bool
	recipeTitle        string
	recipeKcal         float64
	recipeFavorites    bool
	recipeSearch       string
)

var recipeCmd = &cobra.Command{
	Use:     "recipe",
	Aliases: []string{"r", "recipes"},
	Short:   "Manage saved recipes",
	Long: `Keep recipes you cook often. Favorites are counted on the dashboard.

EXAMPLES:

  lifeos recipe add "Lentil soup" 420 -i lentils -i carrot -i onion --prep-time 35
  lifeos recipe list --favorites
  lifeos recipe show abc12345
  lifeos recipe favorite abc12345
  lifeos recipe edit abc12345 --calories 380
  lifeos recipe delete abc12345`,
}

var recipeAddCmd = &cobra.Command{
	Use:   "add <title> <calories>",
	Short: "Save a recipe",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kcal, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid calories: %s", args[1])
		}

		r := models.NewRecipe(args[0], kcal)
		r.Ingredients = cleanIngredients(recipeIngredients)
		r.Instructions = recipeInstructions
		r.Category = recipeCategory
		r.Favorite = recipeFavorite
		if cmd.Flags().Changed("prep-time") {
			prep := recipePrepTime
			r.PrepTime = &prep
		}

		if err := repo.AddRecipe(r); err != nil {
			return fmt.Errorf("failed to add recipe: %w", err)
		}

		color.Green("✓ Saved %s", r.Title)
		fmt.Printf("  %s %.0f kcal, %d ingredients\n",
			color.New(color.Faint).Sprint(shortID(r.ID)), r.Calories, len(r.Ingredients))

		return nil
	},
}

var recipeListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		recipes, err := repo.Recipes()
		if err != nil {
			return fmt.Errorf("failed to list recipes: %w", err)
		}

		var shown []models.Recipe
		for _, r := range recipes {
			if recipeFavorites && !r.Favorite {
				continue
			}
			if recipeSearch != "" && !r.Matches(recipeSearch) {
				continue
			}
			shown = append(shown, r)
		}

		if len(shown) == 0 {
			fmt.Println("No recipes found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range shown {
			star := " "
			if r.Favorite {
				star = color.YellowString("★")
			}
			prep := ""
			if r.PrepTime != nil {
				prep = fmt.Sprintf("%3.0f min", *r.PrepTime)
			}
			fmt.Printf("%s %s %s %s %5.0f kcal %s\n",
				faint.Sprint(shortID(r.ID)),
				star,
				padRight(truncate(r.Title, 28), 28),
				faint.Sprint(padRight(truncate(r.Category, 12), 12)),
				r.Calories,
				prep)
		}

		return nil
	},
}

var recipeShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a recipe's ingredients and instructions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := repo.GetRecipe(args[0])
		if err != nil {
			return fmt.Errorf("failed to get recipe: %w", err)
		}

		title := r.Title
		if r.Favorite {
			title += " ★"
		}
		color.New(color.Bold).Println(title)
		faint := color.New(color.Faint)
		fmt.Printf("%s %.0f kcal", faint.Sprint(shortID(r.ID)), r.Calories)
		if r.PrepTime != nil {
			fmt.Printf(", %.0f min", *r.PrepTime)
		}
		if r.Category != "" {
			fmt.Printf(", %s", r.Category)
		}
		fmt.Println()

		if len(r.Ingredients) > 0 {
			fmt.Println()
			fmt.Println("Ingredients:")
			for _, ing := range r.Ingredients {
				fmt.Printf("  - %s\n", ing)
			}
		}
		if r.Instructions != "" {
			fmt.Println()
			fmt.Println("Instructions:")
			fmt.Println(r.Instructions)
		}

		return nil
	},
}

var recipeEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a recipe",
	Long:  `Edit a recipe. Passing --ingredient replaces the whole ingredient list.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := repo.GetRecipe(args[0])
		if err != nil {
			return fmt.Errorf("failed to get recipe: %w", err)
		}

		flags := cmd.Flags()
		if flags.Changed("title") {
			r.Title = recipeTitle
		}
		if flags.Changed("calories") {
			r.Calories = recipeKcal
		}
		if flags.Changed("ingredient") {
			r.Ingredients = cleanIngredients(recipeIngredients)
		}
		if flags.Changed("instructions") {
			r.Instructions = recipeInstructions
		}
		if flags.Changed("category") {
			r.Category = recipeCategory
		}
		if flags.Changed("prep-time") {
			prep := recipePrepTime
			r.PrepTime = &prep
			if prep == 0 {
				r.PrepTime = nil
			}
		}

		if err := repo.UpdateRecipe(r); err != nil {
			return fmt.Errorf("failed to update recipe: %w", err)
		}

		color.Green("✓ Updated %s", r.Title)
		fmt.Printf("  %s %.0f kcal\n", color.New(color.Faint).Sprint(shortID(r.ID)), r.Calories)

		return nil
	},
}

var recipeFavoriteCmd = &cobra.Command{
	Use:     "favorite <id>",
	Aliases: []string{"fav", "star"},
	Short:   "Toggle a recipe's favorite star",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := repo.ToggleFavorite(args[0])
		if err != nil {
			return fmt.Errorf("failed to toggle favorite: %w", err)
		}

		if r.Favorite {
			color.Green("★ Starred %s", r.Title)
		} else {
			color.Yellow("☆ Unstarred %s", r.Title)
		}

		return nil
	},
}

var recipeDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a recipe",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := repo.DeleteRecipe(args[0])
		if err != nil {
			return fmt.Errorf("failed to delete recipe: %w", err)
		}

		color.Yellow("✗ Deleted %s", r.Title)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(shortID(r.ID)))

		return nil
	},
}

// cleanIngredients trims items and drops blank ones.
func cleanIngredients(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func init() {
	recipeAddCmd.Flags().StringArrayVarP(&recipeIngredients, "ingredient", "i", nil, "ingredient (repeatable)")
	recipeAddCmd.Flags().StringVar(&recipeInstructions, "instructions", "", "preparation steps")
	recipeAddCmd.Flags().Float64Var(&recipePrepTime, "prep-time", 0, "preparation time in minutes")
	recipeAddCmd.Flags().StringVarP(&recipeCategory, "category", "c", "", "category, e.g. breakfast or dessert")
	recipeAddCmd.Flags().BoolVar(&recipeFavorite, "favorite", false, "star the recipe")

	recipeListCmd.Flags().BoolVarP(&recipeFavorites, "favorites", "f", false, "only starred recipes")
	recipeListCmd.Flags().StringVarP(&recipeSearch, "search", "s", "", "filter by title or category")

	recipeEditCmd.Flags().StringVar(&recipeTitle, "title", "", "recipe title")
	recipeEditCmd.Flags().Float64Var(&recipeKcal, "calories", 0, "calories per serving")
	recipeEditCmd.Flags().StringArrayVarP(&recipeIngredients, "ingredient", "i", nil, "ingredient (repeatable, replaces the list)")
	recipeEditCmd.Flags().StringVar(&recipeInstructions, "instructions", "", "preparation steps")
	recipeEditCmd.Flags().Float64Var(&recipePrepTime, "prep-time", 0, "preparation time in minutes (0 clears)")
	recipeEditCmd.Flags().StringVarP(&recipeCategory, "category", "c", "", "category")

	recipeCmd.AddCommand(recipeAddCmd, recipeListCmd, recipeShowCmd, recipeEditCmd, recipeFavoriteCmd, recipeDeleteCmd)
	rootCmd.AddCommand(recipeCmd)
}
