// internal/cli/cart.go
package cli

import (
	"fmt"

	"petbloom/internal/domain/commerce"
	cartsvc "petbloom/internal/service/cart"

	"github.com/spf13/cobra"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show the cart",
	RunE:  runCartList,
}

var cartAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product or pet to the cart",
	RunE:  runCartAdd,
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <item-id>",
	Short: "Remove an item from the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartRemove,
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE:  runCartClear,
}

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Turn the cart into an order",
	RunE:  runCheckout,
}

func init() {
	rootCmd.AddCommand(cartCmd, checkoutCmd)
	cartCmd.AddCommand(cartAddCmd, cartRemoveCmd, cartClearCmd)

	cartAddCmd.Flags().String("product", "", "product id")
	cartAddCmd.Flags().String("pet", "", "pet id")
	cartAddCmd.Flags().Int("quantity", 1, "quantity")

	checkoutCmd.Flags().String("address", "", "shipping address")
	checkoutCmd.Flags().String("delivery", "standard", "delivery option")
	checkoutCmd.Flags().String("pickup", "", "pickup location")
}

func runCartList(cmd *cobra.Command, args []string) error {
	items, err := app.cart.Items(cmd.Context())
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("Cart is empty")
		return nil
	}
	for _, item := range items {
		ref := item.ProductID
		if ref == "" {
			ref = item.PetID + " (pet)"
		}
		fmt.Printf("%dx %-30s $%-8.2f [%s]\n", item.Quantity, ref, item.Price, item.ID)
	}
	fmt.Printf("Total: $%.2f\n", cartsvc.Total(items))
	return nil
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	productID, _ := cmd.Flags().GetString("product")
	petID, _ := cmd.Flags().GetString("pet")
	quantity, _ := cmd.Flags().GetInt("quantity")

	if productID == "" && petID == "" {
		return fmt.Errorf("either --product or --pet is required")
	}

	item, err := app.cart.Add(cmd.Context(), commerce.AddCartItemRequest{
		ProductID: productID,
		PetID:     petID,
		Quantity:  quantity,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Added to cart (item %s)\n", item.ID)
	return nil
}

func runCartRemove(cmd *cobra.Command, args []string) error {
	return app.cart.Remove(cmd.Context(), args[0])
}

func runCartClear(cmd *cobra.Command, args []string) error {
	return app.cart.Clear(cmd.Context())
}

func runCheckout(cmd *cobra.Command, args []string) error {
	address, _ := cmd.Flags().GetString("address")
	delivery, _ := cmd.Flags().GetString("delivery")
	pickup, _ := cmd.Flags().GetString("pickup")

	order, err := app.orders.Create(cmd.Context(), commerce.CreateOrderRequest{
		ShippingAddress: address,
		DeliveryOption:  delivery,
		PickupLocation:  pickup,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Order %s placed — total $%.2f (%s)\n", order.ID, order.TotalPrice, order.Status)
	return nil
}
