// ABOUTME: CLI commands for health products worth restocking.
// ABOUTME: Supports add, list, and delete with ID prefixes.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/lifeos/internal/models"
	"github.com/spf13/cobra"
)

var (
	productCategory string
	productLocation string
	productPrice    float64
	productSearch   string
)

var productCmd = &cobra.Command{
	Use:     "product",
	Aliases: []string{"p", "products"},
	Short:   "Track health products and where to buy them",
	Long: `Keep a list of supplements, foods, and other health products along with
where you buy them and what they cost.

EXAMPLES:

  lifeos product add "Whey isolate" --category supplement --location "Corner store" --price 39.90
  lifeos product list --search supplement
  lifeos product delete abc12345`,
}

var productAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := models.NewHealthProduct(args[0], productCategory, productLocation, productPrice)

		if err := repo.AddHealthProduct(p); err != nil {
			return fmt.Errorf("failed to add product: %w", err)
		}

		color.Green("✓ Added %s", p.Name)
		fmt.Printf("  %s %.2f\n", color.New(color.Faint).Sprint(shortID(p.ID)), p.Price)

		return nil
	},
}

var productListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List products",
	RunE: func(cmd *cobra.Command, args []string) error {
		products, err := repo.HealthProducts()
		if err != nil {
			return fmt.Errorf("failed to list products: %w", err)
		}

		var shown []models.HealthProduct
		for _, p := range products {
			if productSearch == "" || p.Matches(productSearch) {
				shown = append(shown, p)
			}
		}

		if len(shown) == 0 {
			fmt.Println("No products found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, p := range shown {
			fmt.Printf("%s %s %s %s %8.2f\n",
				faint.Sprint(shortID(p.ID)),
				padRight(truncate(p.Name, 24), 24),
				padRight(truncate(p.Category, 14), 14),
				faint.Sprint(padRight(truncate(p.Location, 18), 18)),
				p.Price)
		}

		return nil
	},
}

var productDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a product",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.DeleteHealthProduct(args[0])
		if err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}

		color.Yellow("✗ Deleted %s", p.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(shortID(p.ID)))

		return nil
	},
}

func init() {
	productAddCmd.Flags().StringVarP(&productCategory, "category", "c", "", "product category")
	productAddCmd.Flags().StringVarP(&productLocation, "location", "l", "", "where to buy it")
	productAddCmd.Flags().Float64Var(&productPrice, "price", 0, "price")

	productListCmd.Flags().StringVarP(&productSearch, "search", "s", "", "filter by name or category")

	productCmd.AddCommand(productAddCmd, productListCmd, productDeleteCmd)
	rootCmd.AddCommand(productCmd)
}
