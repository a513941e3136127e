// internal/cli/wishlist.go
package cli

import (
	"fmt"

	"petbloom/internal/domain/commerce"

	"github.com/spf13/cobra"
)

var wishlistCmd = &cobra.Command{
	Use:   "wishlist",
	Short: "Show the wishlist",
	RunE:  runWishlistList,
}

var wishlistAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Save a product or pet for later",
	RunE:  runWishlistAdd,
}

var wishlistRemoveCmd = &cobra.Command{
	Use:   "remove <item-id>",
	Short: "Remove an item from the wishlist",
	Args:  cobra.ExactArgs(1),
	RunE:  runWishlistRemove,
}

var wishlistClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the wishlist",
	RunE:  runWishlistClear,
}

func init() {
	rootCmd.AddCommand(wishlistCmd)
	wishlistCmd.AddCommand(wishlistAddCmd, wishlistRemoveCmd, wishlistClearCmd)

	wishlistAddCmd.Flags().String("product", "", "product id")
	wishlistAddCmd.Flags().String("pet", "", "pet id")
}

func runWishlistList(cmd *cobra.Command, args []string) error {
	items, err := app.wishlist.Items(cmd.Context())
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("Wishlist is empty")
		return nil
	}
	for _, item := range items {
		ref := item.ProductID
		if ref == "" {
			ref = item.PetID + " (pet)"
		}
		fmt.Printf("%-34s [%s]\n", ref, item.ID)
	}
	return nil
}

func runWishlistAdd(cmd *cobra.Command, args []string) error {
	productID, _ := cmd.Flags().GetString("product")
	petID, _ := cmd.Flags().GetString("pet")

	if productID == "" && petID == "" {
		return fmt.Errorf("either --product or --pet is required")
	}

	item, err := app.wishlist.Add(cmd.Context(), commerce.AddWishlistItemRequest{
		ProductID: productID,
		PetID:     petID,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Saved to wishlist (item %s)\n", item.ID)
	return nil
}

func runWishlistRemove(cmd *cobra.Command, args []string) error {
	return app.wishlist.Remove(cmd.Context(), args[0])
}

func runWishlistClear(cmd *cobra.Command, args []string) error {
	return app.wishlist.Clear(cmd.Context())
}
