// internal/cli/catalog.go
package cli

import (
	"fmt"

	"petbloom/internal/domain/catalog"

	"github.com/spf13/cobra"
)

var petsCmd = &cobra.Command{
	Use:   "pets [id]",
	Short: "Browse adoptable pets",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPets,
}

var productsCmd = &cobra.Command{
	Use:   "products [id]",
	Short: "Browse pet supplies",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProducts,
}

func init() {
	rootCmd.AddCommand(petsCmd, productsCmd)

	petsCmd.Flags().String("species", "", "filter by species")
	petsCmd.Flags().String("breed", "", "filter by breed")
	petsCmd.Flags().Int("limit", 0, "limit results")

	productsCmd.Flags().String("category", "", "filter by category")
	productsCmd.Flags().String("brand", "", "filter by brand")
	productsCmd.Flags().Int("limit", 0, "limit results")
}

func runPets(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if len(args) == 1 {
		pet, err := app.catalog.GetPet(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s — %s (%s), %d y/o, $%.2f\n", pet.Name, pet.Species, pet.Breed, pet.Age, pet.Price)
		if pet.Description != "" {
			fmt.Println(pet.Description)
		}
		return nil
	}

	species, _ := cmd.Flags().GetString("species")
	breed, _ := cmd.Flags().GetString("breed")
	limit, _ := cmd.Flags().GetInt("limit")

	pets, err := app.catalog.ListPets(ctx, catalog.PetFilter{Species: species, Breed: breed, Limit: limit})
	if err != nil {
		return err
	}
	for _, pet := range pets {
		marker := " "
		if !pet.Available {
			marker = "✗"
		}
		fmt.Printf("%s %-22s %-8s %-18s $%.2f  [%s]\n", marker, pet.Name, pet.Species, pet.Breed, pet.Price, pet.ID)
	}
	return nil
}

func runProducts(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if len(args) == 1 {
		product, err := app.catalog.GetProduct(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s — %s / %s, $%.2f (%d in stock)\n", product.Name, product.Category, product.Brand, product.Price, product.Stock)
		if product.Description != "" {
			fmt.Println(product.Description)
		}
		return nil
	}

	category, _ := cmd.Flags().GetString("category")
	brand, _ := cmd.Flags().GetString("brand")
	limit, _ := cmd.Flags().GetInt("limit")

	products, err := app.catalog.ListProducts(ctx, catalog.ProductFilter{Category: category, Brand: brand, Limit: limit})
	if err != nil {
		return err
	}
	for _, product := range products {
		fmt.Printf("%-28s %-10s $%-8.2f stock:%-4d [%s]\n", product.Name, product.Category, product.Price, product.Stock, product.ID)
	}
	return nil
}
